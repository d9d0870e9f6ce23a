// Package fingerprint computes content hashes used as HTTP validators.
package fingerprint

import (
	"encoding/hex"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Sum returns the hex BLAKE2b-256 digest of data, truncated to 32 chars.
func Sum(data []byte) string {
	h := blake2b.Sum256(data)
	return hex.EncodeToString(h[:16])
}

// ETag returns a strong entity tag for body.
func ETag(body []byte) string {
	return `"` + Sum(body) + `"`
}

// NotModified reports whether the request's If-None-Match header matches
// etag (or is "*").
func NotModified(r *http.Request, etag string) bool {
	inm := r.Header.Get("If-None-Match")
	if inm == "" {
		return false
	}
	for _, cand := range strings.Split(inm, ",") {
		cand = strings.TrimSpace(cand)
		cand = strings.TrimPrefix(cand, "W/")
		if cand == "*" || cand == etag {
			return true
		}
	}
	return false
}
