package models

import (
	"regexp"
	"strings"
)

// Listing is one community-aid location (food pantry, meal site, etc.)
// as published in the directory dataset.
//
// Name, Address and ZIP are required by the dataset format but are not
// validated on load; Defaulted fills them so nothing downstream has to
// check. Every other attribute is optional and modeled as present-or-absent:
// a nil pointer (or nil slice) means the dataset did not carry the field,
// while a pointer to "" means it was present but empty.
type Listing struct {
	Name    string `bson:"name" json:"name" yaml:"name"`
	Address string `bson:"address" json:"address" yaml:"address"`
	ZIP     string `bson:"zip" json:"zip" yaml:"zip"`

	Phone       *string `bson:"phone,omitempty" json:"phone,omitempty" yaml:"phone,omitempty"`
	Hours       *string `bson:"hours,omitempty" json:"hours,omitempty" yaml:"hours,omitempty"`
	Description *string `bson:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Community   *string `bson:"community,omitempty" json:"community,omitempty" yaml:"community,omitempty"`
	Region      *string `bson:"region,omitempty" json:"region,omitempty" yaml:"region,omitempty"`

	Services []string `bson:"services,omitempty" json:"services,omitempty" yaml:"services,omitempty"`
	Website  *string  `bson:"website,omitempty" json:"website,omitempty" yaml:"website,omitempty"`

	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty" yaml:"longitude,omitempty"`

	Category    *string `bson:"category,omitempty" json:"category,omitempty" yaml:"category,omitempty"`
	LastUpdated *string `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
}

// Display defaults for optional listing fields.
const (
	DefaultHours       = "Hours not listed"
	DefaultPhone       = "N/A"
	DefaultCategory    = "Food Assistance"
	DefaultLastUpdated = "Oct 2025"
)

var zipPattern = regexp.MustCompile(`\b\d{5}\b`)

// Text returns the value of an optional text field, or "" when absent.
func Text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Str returns a pointer to s. Handy for building listings in code and tests.
func Str(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// ExtractZIP returns the first standalone 5-digit run in address, or "".
func ExtractZIP(address string) string {
	return zipPattern.FindString(address)
}

// HasMap reports whether both coordinates are present.
func (l Listing) HasMap() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// HasServices reports whether the services field was present and non-empty.
func (l Listing) HasServices() bool {
	return len(l.Services) > 0
}

// Defaulted returns a copy of l with the required text fields and the
// categorical fields (region, community, category) trimmed and, if the ZIP
// is missing, one recovered from the address. The receiver is not
// modified; the Services slice is shared with the original.
func (l Listing) Defaulted() Listing {
	out := l
	out.Name = strings.TrimSpace(out.Name)
	out.Address = strings.TrimSpace(out.Address)
	out.ZIP = strings.TrimSpace(out.ZIP)
	if out.ZIP == "" {
		out.ZIP = ExtractZIP(out.Address)
	}
	out.Region = trimmed(out.Region)
	out.Community = trimmed(out.Community)
	out.Category = trimmed(out.Category)
	return out
}

// trimmed returns a new pointer to the trimmed value so the original
// listing's field is left alone. Nil stays nil.
func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
