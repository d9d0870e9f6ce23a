// internal/app/store/listings/source.go
package listingstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dalemusser/aidhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Source kinds accepted by New.
const (
	KindFile  = "file"
	KindHTTP  = "http"
	KindMongo = "mongo"
)

// MaxBytes bounds a single dataset read.
const MaxBytes = 16 << 20

// Source loads the complete listing dataset. Every Load is one fresh,
// best-effort read: no retry and no cache between calls. Failures are
// *LoadError or *ParseError.
type Source interface {
	Load(ctx context.Context) ([]models.Listing, error)
	// Check verifies the source is reachable without reading the dataset.
	Check(ctx context.Context) error
	// Name identifies the source in logs (path, URL or collection).
	Name() string
}

// Config selects and parameterizes a Source.
type Config struct {
	Kind string

	// Logger receives skipped-record warnings. Nil means zap.L().
	Logger *zap.Logger

	// file
	Path string

	// http
	URL   string
	OAuth OAuthConfig

	// mongo
	DB         *mongo.Database
	Collection string
}

// New builds the Source described by cfg.
func New(cfg Config) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case KindFile, "":
		if cfg.Path == "" {
			return nil, errors.New("file source requires a dataset path")
		}
		s := NewFileSource(cfg.Path)
		s.Log = loggerOr(cfg.Logger)
		return s, nil
	case KindHTTP:
		if cfg.URL == "" {
			return nil, errors.New("http source requires a dataset URL")
		}
		s := NewHTTPSource(cfg.URL, NewHTTPClient(cfg.OAuth))
		s.Log = loggerOr(cfg.Logger)
		return s, nil
	case KindMongo:
		if cfg.DB == nil {
			return nil, errors.New("mongo source requires a database handle")
		}
		s := NewMongoSource(cfg.DB, cfg.Collection)
		s.Log = loggerOr(cfg.Logger)
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Kind)
	}
}

// Decode parses a JSON array of listings. A top-level null decodes to an
// empty dataset; anything else that is not an array is a *ParseError.
// Elements are decoded one at a time: an element that is not a listing
// object (wrong field types, a bare string, null) is skipped and logged at
// warn level, and the rest of the dataset is kept. Required fields are
// defaulted on every record.
func Decode(data []byte, source string, logger *zap.Logger) ([]models.Listing, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &ParseError{Source: source, Cause: errors.New("empty document")}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &ParseError{Source: source, Cause: err}
	}

	logger = loggerOr(logger)
	out := make([]models.Listing, 0, len(raw))
	for i, elem := range raw {
		l, err := decodeListing(elem)
		if err != nil {
			logger.Warn("skipping undecodable listing",
				zap.String("source", source),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		out = append(out, l.Defaulted())
	}
	return out, nil
}

func decodeListing(elem json.RawMessage) (models.Listing, error) {
	var l models.Listing
	if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
		return l, errors.New("null element")
	}
	if err := json.Unmarshal(elem, &l); err != nil {
		return l, err
	}
	return l, nil
}

func loggerOr(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.L()
	}
	return l
}
