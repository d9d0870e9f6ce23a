// internal/app/features/directory/render.go
package directory

import (
	"io"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Template entry points registered by the "directory" set.
const (
	pageTemplate    = "directory_page"
	resultsTemplate = "directory_results"
)

// RenderResults writes the results fragment for v: the error message, the
// empty-state message, or the card list. The whole fragment replaces the
// results container on every cycle. Output is buffered by the engine, so a
// failed render writes nothing.
func RenderResults(e *templates.Engine, w io.Writer, v View) error {
	return e.RenderSnippet(w, resultsTemplate, v)
}

// RenderPage writes the full directory page inside the shared layout.
func RenderPage(e *templates.Engine, w io.Writer, data pageData) error {
	return e.Render(w, nil, pageTemplate, data)
}
