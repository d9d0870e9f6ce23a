package fingerprint

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestETag(t *testing.T) {
	a := ETag([]byte(`[{"name":"a"}]`))
	b := ETag([]byte(`[{"name":"b"}]`))

	if a == b {
		t.Error("different bodies should have different tags")
	}
	if a != ETag([]byte(`[{"name":"a"}]`)) {
		t.Error("ETag should be deterministic")
	}
	if !strings.HasPrefix(a, `"`) || !strings.HasSuffix(a, `"`) || len(a) != 34 {
		t.Errorf("unexpected tag shape %q", a)
	}
}

func TestNotModified(t *testing.T) {
	tag := ETag([]byte("body"))

	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{tag, true},
		{`"other", ` + tag, true},
		{"W/" + tag, true},
		{"*", true},
		{`"other"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/listings", nil)
			if tt.header != "" {
				r.Header.Set("If-None-Match", tt.header)
			}
			if got := NotModified(r, tag); got != tt.want {
				t.Errorf("NotModified(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}
