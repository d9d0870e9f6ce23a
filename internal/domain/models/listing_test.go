package models

import "testing"

func TestExtractZIP(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"123 Main St, Palo Alto, CA 94301", "94301"},
		{"55 W 34th St, New York, NY 10001-2211", "10001"},
		{"PO Box 123456", ""},
		{"", ""},
		{"no digits here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			if got := ExtractZIP(tt.address); got != tt.want {
				t.Errorf("ExtractZIP(%q) = %q, want %q", tt.address, got, tt.want)
			}
		})
	}
}

func TestDefaulted_FillsMissingZIPFromAddress(t *testing.T) {
	in := Listing{Name: "  Bread of Life ", Address: "10 Elm St, Springfield, IL 62701"}

	out := in.Defaulted()

	if out.ZIP != "62701" {
		t.Errorf("ZIP: got %q, want %q", out.ZIP, "62701")
	}
	if out.Name != "Bread of Life" {
		t.Errorf("Name: got %q, want trimmed", out.Name)
	}
	if in.ZIP != "" || in.Name != "  Bread of Life " {
		t.Error("Defaulted must not modify the receiver")
	}
}

func TestDefaulted_TrimsCategoricalFields(t *testing.T) {
	in := Listing{
		Name:      "Pantry",
		Region:    Str("West "),
		Community: Str("  Palo Alto"),
		Category:  Str(" Food Pantry "),
	}

	out := in.Defaulted()

	if Text(out.Region) != "West" || Text(out.Community) != "Palo Alto" || Text(out.Category) != "Food Pantry" {
		t.Errorf("categorical fields not trimmed: region=%q community=%q category=%q",
			Text(out.Region), Text(out.Community), Text(out.Category))
	}
	if *in.Region != "West " {
		t.Error("Defaulted must not modify the receiver's region")
	}
	if out.Hours != nil || in.Defaulted().Website != nil {
		t.Error("absent optional fields must stay nil")
	}
}

func TestDefaulted_KeepsExistingZIP(t *testing.T) {
	in := Listing{Name: "Pantry", Address: "1 Road 11111", ZIP: "22222"}
	if got := in.Defaulted().ZIP; got != "22222" {
		t.Errorf("ZIP: got %q, want %q", got, "22222")
	}
}

func TestHasMap(t *testing.T) {
	l := Listing{Latitude: Float(37.4)}
	if l.HasMap() {
		t.Error("expected HasMap false with only latitude")
	}
	l.Longitude = Float(-122.1)
	if !l.HasMap() {
		t.Error("expected HasMap true with both coordinates")
	}
}

func TestText(t *testing.T) {
	if Text(nil) != "" {
		t.Error("Text(nil) should be empty")
	}
	if Text(Str("")) != "" {
		t.Error("Text of present-but-empty should be empty")
	}
	if Text(Str("Mon-Fri")) != "Mon-Fri" {
		t.Error("Text should return the value")
	}
}

func TestHasServices(t *testing.T) {
	if (Listing{}).HasServices() {
		t.Error("absent services should report false")
	}
	if (Listing{Services: []string{}}).HasServices() {
		t.Error("present-but-empty services should report false")
	}
	if !(Listing{Services: []string{"Groceries"}}).HasServices() {
		t.Error("expected HasServices true")
	}
}
