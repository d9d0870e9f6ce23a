// internal/app/features/directory/types.go
package directory

import (
	"html/template"
	"time"

	"github.com/dalemusser/aidhub/internal/app/system/search"
)

// ViewKind is the terminal state of one load-filter-render cycle.
type ViewKind string

const (
	KindRendered ViewKind = "rendered"
	KindEmpty    ViewKind = "empty"
	KindError    ViewKind = "error"
)

// User-facing messages. Load and parse failures share one generic message;
// the distinction is kept in the logs.
const (
	MsgLoading = "Loading resources..."
	MsgEmpty   = "No results found. Try another ZIP, region, or keyword."
	MsgError   = "Could not load resource data. Please try again later."
)

// ViewState is everything the view depends on for one cycle.
type ViewState struct {
	Criteria search.Criteria
	Result   search.Result
	Err      error
	Now      time.Time // already in the display time zone
}

// View is the renderable outcome of a cycle.
type View struct {
	Kind     ViewKind
	Message  string
	Cards    []Card
	Count    int
	Total    int
	Criteria search.Criteria
}

// Card is one listing projected for display. Text fields are sanitized
// HTML; URLs have been validated.
type Card struct {
	Name    template.HTML
	Address template.HTML
	Hours   template.HTML
	Phone   template.HTML

	OpenLabel string // "" when the listing has no hours
	Open      bool

	MapURL   string // "" unless both coordinates are present
	Services []template.HTML
	Website  string // "" unless an absolute http(s) URL

	Community template.HTML
	Region    template.HTML

	Category    template.HTML
	LastUpdated template.HTML
}

// SortOption populates the sort selector.
type SortOption struct {
	Value string
	Label string
}

// pageData is the view model for the full directory page.
type pageData struct {
	Title       string
	Query       string
	Region      string
	Sort        string
	Regions     []string
	SortOptions []SortOption
	AllRegions  string
	Loading     string
	Results     View
}

// listingsResponse is the JSON body of GET /api/listings.
type listingsResponse struct {
	Count    int    `json:"count"`
	Total    int    `json:"total"`
	Query    string `json:"query"`
	Region   string `json:"region"`
	Sort     string `json:"sort"`
	Listings any    `json:"listings"`
}
