// internal/app/store/listings/errors.go
package listingstore

import (
	"errors"
	"fmt"
)

// ErrUnknownSource is returned by New for an unrecognized source kind.
var ErrUnknownSource = errors.New("unknown dataset source")

// ErrTooLarge is the cause of a LoadError when a dataset exceeds MaxBytes.
var ErrTooLarge = errors.New("dataset exceeds size limit")

// LoadError reports that the dataset could not be retrieved: a non-2xx HTTP
// status, a transport failure, an unreadable file, or a failed database
// query. Status is the HTTP status code when one was received, else 0.
type LoadError struct {
	Source string
	Status int
	Cause  error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("load dataset %s: HTTP %d", e.Source, e.Status)
	}
	return fmt.Sprintf("load dataset %s: %v", e.Source, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// ParseError reports that the dataset was retrieved but could not be
// decoded into listings.
type ParseError struct {
	Source string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse dataset %s: %v", e.Source, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// IsLoadError reports whether err is or wraps a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
