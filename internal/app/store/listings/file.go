// internal/app/store/listings/file.go
package listingstore

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dalemusser/aidhub/internal/domain/models"
	"go.uber.org/zap"
)

// FileSource reads the dataset from a JSON file on every Load.
type FileSource struct {
	path string

	// Log receives skipped-record warnings.
	Log *zap.Logger
}

// NewFileSource returns a Source for the JSON array at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, Log: zap.L()}
}

func (s *FileSource) Name() string { return s.path }

// Load reads and decodes the file. The context is only consulted before
// the read starts; local reads are not interruptible.
func (s *FileSource) Load(ctx context.Context) ([]models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: s.path, Cause: err}
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, &LoadError{Source: s.path, Cause: err}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxBytes+1))
	if err != nil {
		return nil, &LoadError{Source: s.path, Cause: err}
	}
	if len(data) > MaxBytes {
		return nil, &LoadError{Source: s.path, Cause: ErrTooLarge}
	}
	return Decode(data, s.path, s.Log)
}

// Check confirms the file exists and is a regular file.
func (s *FileSource) Check(ctx context.Context) error {
	fi, err := os.Stat(s.path)
	if err != nil {
		return &LoadError{Source: s.path, Cause: err}
	}
	if !fi.Mode().IsRegular() {
		return &LoadError{Source: s.path, Cause: fmt.Errorf("not a regular file")}
	}
	return nil
}
