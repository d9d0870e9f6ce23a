// Package normalize canonicalizes free text and request control values.
//
// Text is the single matching policy used by the directory search: it is
// applied to the visitor's query and to every searchable listing field, so
// a query only has to agree with a listing up to case, accents, punctuation
// and spacing.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Sort keys understood by the search engine.
const (
	SortName   = "name"
	SortZIP    = "zip"
	SortRegion = "region"
)

// AllRegions is the selector sentinel that disables the region filter.
const AllRegions = "All"

// Text lowercases s, strips diacritics, removes every rune that is not a
// letter, digit or whitespace, collapses whitespace runs to a single space
// and trims the result. It never fails; "" maps to "".
func Text(s string) string {
	if s == "" {
		return ""
	}
	folded := fold(s)

	var b strings.Builder
	b.Grow(len(folded))
	space := false
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			space = true
		}
	}
	return b.String()
}

// fold decomposes s, drops combining marks and recomposes it, so "Café"
// becomes "Cafe". A fresh transformer is built per call because
// transform.Chain keeps state.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// QueryParam trims whitespace from a raw query-string value, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Region canonicalizes the region selector value. "All" (any case) and
// blank values return "", meaning no region filter.
func Region(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, AllRegions) {
		return ""
	}
	return s
}

// SortKey maps a selector value to a supported sort key, defaulting to name.
func SortKey(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case SortZIP:
		return SortZIP
	case SortRegion:
		return SortRegion
	default:
		return SortName
	}
}
