// internal/app/features/directory/routes.go
package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the directory endpoints. limit wraps the endpoints that
// live search hits on every keystroke; pass nil for no limiting.
//
// Example from bootstrap:
//
//	dir := directory.NewHandler(src, engine, cycles.New(), loc, logger)
//	r.Mount("/", directory.Routes(dir, limiter.Middleware))
func Routes(h *Handler, limit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServePage)

	r.Group(func(lr chi.Router) {
		if limit != nil {
			lr.Use(limit)
		}
		// live search fragment (htmx swap)
		lr.Get("/results", h.ServeResults)
		lr.Get("/api/listings", h.ServeJSON)
	})

	return r
}
