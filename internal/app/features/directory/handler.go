// internal/app/features/directory/handler.go
package directory

import (
	"context"
	"errors"
	"time"

	listingstore "github.com/dalemusser/aidhub/internal/app/store/listings"
	"github.com/dalemusser/aidhub/internal/app/system/cycles"
	"github.com/dalemusser/aidhub/internal/app/system/search"
	"github.com/dalemusser/aidhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Loader is the slice of a data source the directory needs.
type Loader interface {
	Load(ctx context.Context) ([]models.Listing, error)
}

// Handler owns the directory page, the live results fragment and the JSON
// listing endpoint. Every request runs a full cycle: load the dataset,
// filter and sort it, render.
//
// It is constructed once at startup in bootstrap.
type Handler struct {
	Source   Loader
	Views    *templates.Engine
	Cycles   *cycles.Coordinator
	Location *time.Location
	Log      *zap.Logger

	// Now is the clock; tests pin it.
	Now func() time.Time
}

// NewHandler constructs a directory Handler. views must already be booted
// with the "shared" and "directory" sets. A nil location means UTC.
func NewHandler(src Loader, views *templates.Engine, cyc *cycles.Coordinator, loc *time.Location, logger *zap.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	if cyc == nil {
		cyc = cycles.New()
	}
	return &Handler{
		Source:   src,
		Views:    views,
		Cycles:   cyc,
		Location: loc,
		Log:      logger,
		Now:      time.Now,
	}
}

// outcome is one completed load + filter/sort.
type outcome struct {
	Result  search.Result
	Regions []string
	Err     error
}

// run loads the full dataset and applies c. Load failures are logged here
// and returned in the outcome; they never escape as panics.
func (h *Handler) run(ctx context.Context, c search.Criteria) outcome {
	listings, err := h.Source.Load(ctx)
	if err != nil {
		h.logLoadFailure(err, c)
		return outcome{Result: search.Result{Criteria: search.Canonical(c)}, Err: err}
	}
	return outcome{
		Result:  search.Apply(listings, c),
		Regions: search.Regions(listings),
	}
}

func (h *Handler) logLoadFailure(err error, c search.Criteria) {
	var (
		pe *listingstore.ParseError
		le *listingstore.LoadError
	)
	switch {
	case errors.Is(err, context.Canceled):
		h.Log.Debug("dataset load cancelled", zap.Error(err))
	case errors.As(err, &pe):
		h.Log.Error("dataset parse failed",
			zap.String("source", pe.Source),
			zap.String("query", c.Query),
			zap.Error(pe.Cause))
	case errors.As(err, &le):
		h.Log.Error("dataset load failed",
			zap.String("source", le.Source),
			zap.Int("status", le.Status),
			zap.String("query", c.Query),
			zap.NamedError("cause", le.Cause))
	default:
		h.Log.Error("dataset load failed", zap.Error(err))
	}
}

func (h *Handler) now() time.Time {
	return h.Now().In(h.Location)
}
