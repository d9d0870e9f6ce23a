// internal/app/features/directory/view.go
package directory

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/aidhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/aidhub/internal/app/system/openstatus"
	"github.com/dalemusser/aidhub/internal/app/system/search"
	"github.com/dalemusser/aidhub/internal/domain/models"
)

// BuildView turns a cycle's state into its view. It is pure: the same
// state always yields the same view, and no listing is modified.
func BuildView(s ViewState) View {
	v := View{
		Criteria: search.Canonical(s.Criteria),
		Total:    s.Result.Total,
	}

	if s.Err != nil {
		v.Kind = KindError
		v.Message = MsgError
		return v
	}
	if s.Result.Empty() {
		v.Kind = KindEmpty
		v.Message = MsgEmpty
		return v
	}

	v.Kind = KindRendered
	v.Cards = make([]Card, 0, len(s.Result.Listings))
	for _, l := range s.Result.Listings {
		v.Cards = append(v.Cards, NewCard(l, s.Now))
	}
	v.Count = len(v.Cards)
	return v
}

// NewCard projects one listing for display at time now.
func NewCard(l models.Listing, now time.Time) Card {
	status := openstatus.Derive(l.Hours, now)

	c := Card{
		Name:        htmlsanitize.Text(l.Name),
		Address:     htmlsanitize.Text(l.Address),
		Hours:       htmlsanitize.Text(orDefault(l.Hours, models.DefaultHours)),
		Phone:       htmlsanitize.Text(orDefault(l.Phone, models.DefaultPhone)),
		OpenLabel:   status.Label(),
		Open:        status == openstatus.OpenToday,
		Community:   htmlsanitize.Text(strings.TrimSpace(models.Text(l.Community))),
		Region:      htmlsanitize.Text(strings.TrimSpace(models.Text(l.Region))),
		Category:    htmlsanitize.Text(orDefault(l.Category, models.DefaultCategory)),
		LastUpdated: htmlsanitize.Text(orDefault(l.LastUpdated, models.DefaultLastUpdated)),
	}

	if l.HasMap() {
		c.MapURL = MapEmbedURL(*l.Latitude, *l.Longitude)
	}
	for _, s := range l.Services {
		if s = strings.TrimSpace(s); s != "" {
			c.Services = append(c.Services, htmlsanitize.Text(s))
		}
	}
	if site, ok := htmlsanitize.ExternalURL(models.Text(l.Website)); ok {
		c.Website = site
	}
	return c
}

// MapEmbedURL returns the embeddable map URL centered on lat,lng.
func MapEmbedURL(lat, lng float64) string {
	q := url.Values{}
	q.Set("q", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("z", "15")
	q.Set("output", "embed")
	return "https://maps.google.com/maps?" + q.Encode()
}

// orDefault returns the field's value, or def when it is absent or blank.
func orDefault(p *string, def string) string {
	if v := strings.TrimSpace(models.Text(p)); v != "" {
		return v
	}
	return def
}
