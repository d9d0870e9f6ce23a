// internal/app/system/search/search.go
package search

import (
	"sort"
	"strings"

	"github.com/dalemusser/aidhub/internal/app/system/normalize"
	"github.com/dalemusser/aidhub/internal/domain/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Criteria is one directory request: keyword, region selector and sort key.
// Values may be raw; Apply canonicalizes them through the normalize package.
type Criteria struct {
	Query  string
	Region string
	Sort   string
}

// Result is the filtered, ordered listing sequence for one Criteria.
type Result struct {
	Criteria Criteria // canonical form of the request
	Listings []models.Listing
	Total    int // size of the dataset before filtering
}

// Empty reports whether nothing matched. This is a normal outcome, not an
// error; the renderer shows the no-results state for it.
func (r Result) Empty() bool {
	return len(r.Listings) == 0
}

// Apply filters listings by keyword and region, then sorts by the
// requested key. The input slice is neither reordered nor modified; the
// result always owns a fresh slice.
//
// Typical usage from a handler:
//
//	all, err := src.Load(ctx)
//	...
//	res := search.Apply(all, search.Criteria{Query: q, Region: region, Sort: sortKey})
//	if res.Empty() { ... }
func Apply(listings []models.Listing, c Criteria) Result {
	c = Canonical(c)
	needle := normalize.Text(c.Query)

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if c.Region != "" && regionOf(l) != c.Region {
			continue
		}
		if needle != "" && !Matches(l, needle) {
			continue
		}
		out = append(out, l)
	}

	Sort(out, c.Sort)

	return Result{Criteria: c, Listings: out, Total: len(listings)}
}

// Canonical returns c with each control value canonicalized.
func Canonical(c Criteria) Criteria {
	return Criteria{
		Query:  normalize.QueryParam(c.Query),
		Region: normalize.Region(c.Region),
		Sort:   normalize.SortKey(c.Sort),
	}
}

// Matches reports whether the already-normalized needle occurs in any
// searchable field of l. Fields are tested one by one so a match never
// straddles two fields.
func Matches(l models.Listing, needle string) bool {
	for _, f := range searchable(l) {
		if f == "" {
			continue
		}
		if strings.Contains(normalize.Text(f), needle) {
			return true
		}
	}
	return false
}

func searchable(l models.Listing) []string {
	return []string{
		l.Name,
		l.Address,
		l.ZIP,
		models.Text(l.Description),
		models.Text(l.Community),
		models.Text(l.Region),
		models.Text(l.Category),
		strings.Join(l.Services, " "),
	}
}

// Sort orders listings in place, ascending by key using English collation.
// Equal keys keep their relative order. A missing key sorts as "".
func Sort(listings []models.Listing, key string) {
	key = normalize.SortKey(key)
	// Collators are not safe for concurrent use; build one per call.
	col := collate.New(language.English)
	sort.SliceStable(listings, func(i, j int) bool {
		return col.CompareString(sortValue(listings[i], key), sortValue(listings[j], key)) < 0
	})
}

func sortValue(l models.Listing, key string) string {
	switch key {
	case normalize.SortZIP:
		return l.ZIP
	case normalize.SortRegion:
		return regionOf(l)
	default:
		return l.Name
	}
}

// Regions returns the distinct, non-empty regions present in listings,
// ordered with the same collation as Sort.
func Regions(listings []models.Listing) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range listings {
		r := regionOf(l)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	col := collate.New(language.English)
	col.SortStrings(out)
	return out
}

// regionOf is the region used for filtering, sorting and the region list,
// so every region offered by Regions matches under Apply.
func regionOf(l models.Listing) string {
	return strings.TrimSpace(models.Text(l.Region))
}
