// internal/app/features/directory/serve.go
package directory

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dalemusser/aidhub/internal/app/system/fingerprint"
	"github.com/dalemusser/aidhub/internal/app/system/httpx"
	"github.com/dalemusser/aidhub/internal/app/system/normalize"
	"github.com/dalemusser/aidhub/internal/app/system/search"
	"github.com/dalemusser/aidhub/internal/app/system/visitor"
	"go.uber.org/zap"
)

// sortOptions populate the sort selector, in display order.
var sortOptions = []SortOption{
	{Value: normalize.SortName, Label: "Sort by name"},
	{Value: normalize.SortZIP, Label: "Sort by ZIP"},
	{Value: normalize.SortRegion, Label: "Sort by region"},
}

func criteriaFrom(r *http.Request) search.Criteria {
	q := r.URL.Query()
	return search.Canonical(search.Criteria{
		Query:  q.Get("q"),
		Region: q.Get("region"),
		Sort:   q.Get("sort"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – directory page                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// ServePage renders the full page with controls and the first result set.
// It also serves the no-JavaScript path: submitting the form reloads "/"
// with the query string.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	c := criteriaFrom(r)
	out := h.run(r.Context(), c)

	data := pageData{
		Title:       "Community Aid Hub",
		Query:       c.Query,
		Region:      c.Region,
		Sort:        c.Sort,
		Regions:     out.Regions,
		SortOptions: sortOptions,
		AllRegions:  normalize.AllRegions,
		Loading:     MsgLoading,
		Results:     BuildView(ViewState{Criteria: c, Result: out.Result, Err: out.Err, Now: h.now()}),
	}

	var buf bytes.Buffer
	if err := RenderPage(h.Views, &buf, data); err != nil {
		h.Log.Error("render directory page failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /results – live results fragment                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeResults renders only the results container. Each call begins a new
// cycle for the visitor; if a newer cycle starts before this one finishes,
// this one answers 204 so the page keeps the newer results.
func (h *Handler) ServeResults(w http.ResponseWriter, r *http.Request) {
	c := criteriaFrom(r)
	key, _ := visitor.ID(r)

	ctx, ticket := h.Cycles.Begin(r.Context(), key)
	defer ticket.Done()

	out := h.run(ctx, c)
	if !ticket.Current() {
		h.Log.Debug("discarding stale results",
			zap.String("visitor", key),
			zap.Uint64("seq", ticket.Seq()))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	view := BuildView(ViewState{Criteria: c, Result: out.Result, Err: out.Err, Now: h.now()})

	var buf bytes.Buffer
	if err := RenderResults(h.Views, &buf, view); err != nil {
		h.Log.Error("render results failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Cycle-Seq", strconv.FormatUint(ticket.Seq(), 10))
	_, _ = buf.WriteTo(w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/listings – JSON                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeJSON returns the filtered, sorted listings as JSON.
//
// On success: 200 and
//
//	{ "count":1, "total":2, "query":"bread", "region":"", "sort":"name", "listings":[…] }
//
// On load failure: 502 and { "error":"…" }.
func (h *Handler) ServeJSON(w http.ResponseWriter, r *http.Request) {
	c := criteriaFrom(r)
	out := h.run(r.Context(), c)
	if out.Err != nil {
		httpx.Error(w, http.StatusBadGateway, MsgError)
		return
	}

	body, err := json.Marshal(listingsResponse{
		Count:    len(out.Result.Listings),
		Total:    out.Result.Total,
		Query:    out.Result.Criteria.Query,
		Region:   out.Result.Criteria.Region,
		Sort:     out.Result.Criteria.Sort,
		Listings: out.Result.Listings,
	})
	if err != nil {
		h.Log.Error("encode listings failed", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	etag := fingerprint.ETag(body)
	w.Header().Set("ETag", etag)
	if fingerprint.NotModified(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	httpx.WriteRaw(w, http.StatusOK, body)
}
