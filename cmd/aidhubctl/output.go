package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dalemusser/aidhub/internal/app/system/search"
	"github.com/dalemusser/aidhub/internal/domain/models"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// resultDoc is the json/yaml shape of a search.
type resultDoc struct {
	Count    int              `json:"count" yaml:"count"`
	Total    int              `json:"total" yaml:"total"`
	Query    string           `json:"query" yaml:"query"`
	Region   string           `json:"region" yaml:"region"`
	Sort     string           `json:"sort" yaml:"sort"`
	Listings []models.Listing `json:"listings" yaml:"listings"`
}

func writeResult(w io.Writer, format string, res search.Result, now time.Time) error {
	doc := resultDoc{
		Count:    len(res.Listings),
		Total:    res.Total,
		Query:    res.Criteria.Query,
		Region:   res.Criteria.Region,
		Sort:     res.Criteria.Sort,
		Listings: res.Listings,
	}
	if doc.Listings == nil {
		doc.Listings = []models.Listing{}
	}

	switch strings.ToLower(format) {
	case formatJSON:
		return writeJSON(w, doc)
	case formatYAML:
		return writeYAML(w, doc)
	case formatText, "":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	if res.Empty() {
		_, err := fmt.Fprintln(w, "No results found. Try another ZIP, region, or keyword.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tZIP\tREGION\tHOURS\tSTATUS")
	for _, l := range res.Listings {
		hours := strings.TrimSpace(models.Text(l.Hours))
		if hours == "" {
			hours = models.DefaultHours
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			l.Name, l.ZIP, models.Text(l.Region), hours, statusLabel(l.Hours, now))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d listings\n", doc.Count, doc.Total)
	return err
}

func writeRegions(w io.Writer, format string, regions []string) error {
	if regions == nil {
		regions = []string{}
	}
	switch strings.ToLower(format) {
	case formatJSON:
		return writeJSON(w, regions)
	case formatYAML:
		return writeYAML(w, regions)
	case formatText, "":
		for _, r := range regions {
			if _, err := fmt.Fprintln(w, r); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
