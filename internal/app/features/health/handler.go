package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/aidhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Checker reports whether the dataset source is reachable.
type Checker interface {
	Check(ctx context.Context) error
	Name() string
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Source Checker
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the dataset source and logger.
func NewHandler(src Checker, logger *zap.Logger) *Handler {
	return &Handler{
		Source: src,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Dataset string `json:"dataset"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "dataset":"reachable", "source":"data/resources.json" }
//
// On source failure: 503 and
//
//	{ "status":"error", "dataset":"unreachable", "message":"Dataset unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Dataset: "reachable",
		Source:  h.Source.Name(),
	}

	if err := h.Source.Check(ctx); err != nil {
		h.Log.Error("health-check: dataset check failed",
			zap.String("source", resp.Source), zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Dataset = "unreachable"
		resp.Message = "Dataset unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
