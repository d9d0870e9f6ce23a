package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	listingstore "github.com/dalemusser/aidhub/internal/app/store/listings"
	"github.com/dalemusser/aidhub/internal/app/system/cycles"
	"github.com/dalemusser/aidhub/internal/domain/models"
	"github.com/dalemusser/aidhub/internal/testutil"
	"go.uber.org/zap"
)

type staticLoader struct {
	listings []models.Listing
	err      error
}

func (s staticLoader) Load(ctx context.Context) ([]models.Listing, error) {
	return s.listings, s.err
}

// blockingLoader blocks its first Load until the context ends.
type blockingLoader struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	data    []models.Listing
}

func (b *blockingLoader) Load(ctx context.Context) ([]models.Listing, error) {
	b.mu.Lock()
	b.calls++
	first := b.calls == 1
	b.mu.Unlock()

	if first {
		close(b.started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return b.data, nil
}

func newTestHandler(t *testing.T, src Loader) *Handler {
	t.Helper()
	h := NewHandler(src, testEngine(t), cycles.New(), time.UTC, zap.NewNop())
	h.Now = func() time.Time { return testNow }
	return h
}

func TestServePage(t *testing.T) {
	h := newTestHandler(t, staticLoader{listings: testutil.TwoPantries()})

	rec := testutil.NewRecorder()
	h.ServePage(rec, testutil.NewRequest(http.MethodGet, "/?q=bread&region=All&sort=name"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Bread of Life")
	rec.AssertContains(t, `value="bread"`)
	rec.AssertNotContains(t, "Second Harvest Food Bank</h5>")
}

func TestServeResults_FilterScenarios(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    string
		notWant string
	}{
		{"query bread", "/results?q=bread&region=All&sort=name", "Bread of Life", "Second Harvest"},
		{"region west by zip", "/results?q=&region=West&sort=zip", "Second Harvest Food Bank", "Bread of Life"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, staticLoader{listings: testutil.TwoPantries()})
			rec := testutil.NewRecorder()
			h.ServeResults(rec, testutil.NewVisitorRequest(http.MethodGet, tt.target, "v1"))

			rec.AssertStatus(t, http.StatusOK)
			rec.AssertContains(t, `data-count="1"`)
			rec.AssertContains(t, tt.want)
			rec.AssertNotContains(t, tt.notWant)
			if rec.Header().Get("X-Cycle-Seq") == "" {
				t.Error("missing X-Cycle-Seq header")
			}
		})
	}
}

func TestServeResults_UpstreamFailure(t *testing.T) {
	srv := testutil.DatasetServer(t, http.StatusInternalServerError, []byte("oops"))
	h := newTestHandler(t, listingstore.NewHTTPSource(srv.URL, srv.Client()))

	rec := testutil.NewRecorder()
	h.ServeResults(rec, testutil.NewVisitorRequest(http.MethodGet, "/results?q=bread", "v1"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `data-state="error"`)
	rec.AssertContains(t, MsgError)
	rec.AssertNotContains(t, "card-body")
}

func TestServeResults_MalformedDataset(t *testing.T) {
	path := testutil.WriteDataset(t, []byte(`{"not":"an array"`))
	h := newTestHandler(t, listingstore.NewFileSource(path))

	rec := testutil.NewRecorder()
	h.ServeResults(rec, testutil.NewVisitorRequest(http.MethodGet, "/results", "v1"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, MsgError)
}

func TestServeResults_OneBadRecordKeepsTheRest(t *testing.T) {
	path := testutil.WriteDataset(t, []byte(`[
		{"name":"Bread of Life","address":"55 W 34th St","zip":"10001","region":"East"},
		{"name":"Broken Pantry","address":"1 Main","zip":94301,"services":"Groceries"}
	]`))
	h := newTestHandler(t, listingstore.NewFileSource(path))

	rec := testutil.NewRecorder()
	h.ServeResults(rec, testutil.NewVisitorRequest(http.MethodGet, "/results", "v1"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Bread of Life")
	rec.AssertContains(t, `data-count="1"`)
	rec.AssertNotContains(t, MsgError)
	rec.AssertNotContains(t, "Broken Pantry")
}

func TestServeResults_StaleCycleIsDiscarded(t *testing.T) {
	src := &blockingLoader{started: make(chan struct{}), data: testutil.TwoPantries()}
	h := newTestHandler(t, src)

	first := testutil.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeResults(first, testutil.NewVisitorRequest(http.MethodGet, "/results?q=b", "v1"))
	}()

	<-src.started

	second := testutil.NewRecorder()
	h.ServeResults(second, testutil.NewVisitorRequest(http.MethodGet, "/results?q=bread", "v1"))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("superseded request did not finish")
	}

	first.AssertStatus(t, http.StatusNoContent)
	if first.Body.Len() != 0 {
		t.Errorf("stale response has body %q", first.Body.String())
	}
	second.AssertStatus(t, http.StatusOK)
	second.AssertContains(t, "Bread of Life")

	if n := h.Cycles.Len(); n != 0 {
		t.Errorf("coordinator still tracks %d keys", n)
	}
}

func TestServeResults_OtherVisitorsAreIndependent(t *testing.T) {
	src := &blockingLoader{started: make(chan struct{}), data: testutil.TwoPantries()}
	h := newTestHandler(t, src)

	ctx, cancel := context.WithCancel(context.Background())
	first := testutil.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		req := testutil.NewVisitorRequest(http.MethodGet, "/results", "alice").WithContext(ctx)
		h.ServeResults(first, req)
	}()
	<-src.started

	second := testutil.NewRecorder()
	h.ServeResults(second, testutil.NewVisitorRequest(http.MethodGet, "/results", "bob"))
	second.AssertStatus(t, http.StatusOK)

	// alice's cycle was not superseded; it ends only with her own request.
	cancel()
	<-done
	first.AssertStatus(t, http.StatusOK)
	first.AssertContains(t, MsgError)
}

func TestServeJSON(t *testing.T) {
	h := newTestHandler(t, staticLoader{listings: testutil.TwoPantries()})

	rec := testutil.NewRecorder()
	h.ServeJSON(rec, testutil.NewRequest(http.MethodGet, "/api/listings?q=bread"))
	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Count    int              `json:"count"`
		Total    int              `json:"total"`
		Query    string           `json:"query"`
		Sort     string           `json:"sort"`
		Listings []models.Listing `json:"listings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || body.Total != 2 || body.Query != "bread" || body.Sort != "name" {
		t.Errorf("unexpected envelope: %+v", body)
	}
	if len(body.Listings) != 1 || body.Listings[0].Name != "Bread of Life" {
		t.Errorf("listings = %+v", body.Listings)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := testutil.NewRequest(http.MethodGet, "/api/listings?q=bread")
	req.Header.Set("If-None-Match", etag)
	rec2 := testutil.NewRecorder()
	h.ServeJSON(rec2, req)
	rec2.AssertStatus(t, http.StatusNotModified)
}

func TestServeJSON_LoadFailure(t *testing.T) {
	h := newTestHandler(t, staticLoader{err: &listingstore.LoadError{Source: "test", Status: 500}})

	rec := testutil.NewRecorder()
	h.ServeJSON(rec, testutil.NewRequest(http.MethodGet, "/api/listings"))

	rec.AssertStatus(t, http.StatusBadGateway)
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("body = %q, want error envelope", rec.Body.String())
	}
}

func TestRoutes(t *testing.T) {
	h := newTestHandler(t, staticLoader{listings: testutil.TwoPantries()})
	r := Routes(h, nil)

	for _, path := range []string{"/", "/results", "/api/listings"} {
		rec := testutil.NewRecorder()
		r.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, path))
		rec.AssertStatus(t, http.StatusOK)
	}
}
