// Package htmlsanitize neutralizes dataset content before it reaches a page.
//
// Listing fields come from a dataset we do not author, so every text value
// is passed through a strict bluemonday policy (all tags dropped, entities
// escaped) and website values must be absolute http(s) URLs before they are
// rendered as links.
package htmlsanitize

import (
	"html/template"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce sync.Once
	strict     *bluemonday.Policy
)

func strictPolicy() *bluemonday.Policy {
	strictOnce.Do(func() {
		strict = bluemonday.StrictPolicy()
	})
	return strict
}

// Text strips all markup from s and returns it as escaped HTML text that
// can be placed directly in element content.
func Text(s string) template.HTML {
	if s == "" {
		return ""
	}
	return template.HTML(strictPolicy().Sanitize(s))
}

// ExternalURL returns the trimmed URL and true when s is an absolute
// http or https URL with a host. Anything else (javascript:, data:,
// relative paths, garbage) returns "", false.
func ExternalURL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	return u.String(), true
}
