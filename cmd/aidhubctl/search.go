package main

import (
	"time"

	"github.com/dalemusser/aidhub/internal/app/system/openstatus"
	"github.com/dalemusser/aidhub/internal/app/system/search"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	query  string
	region string
	sortBy string
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter and sort listings",
		Long: `Loads the dataset, keeps listings whose searchable fields contain the
query (case, accents and punctuation ignored), narrows by region and sorts.`,
		Args: cobra.NoArgs,
		RunE: runSearch,
	}
	f := cmd.Flags()
	f.StringVarP(&query, "query", "q", "", "search text")
	f.StringVarP(&region, "region", "r", "All", "region filter; All for every region")
	f.StringVarP(&sortBy, "sort", "s", "name", "sort key: name, zip or region")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	listings, err := src.Load(cmd.Context())
	if err != nil {
		return loadFailed(src.Name(), err)
	}

	res := search.Apply(listings, search.Criteria{Query: query, Region: region, Sort: sortBy})
	logger.Debug("search complete",
		zap.String("source", src.Name()),
		zap.Int("total", res.Total),
		zap.Int("matched", len(res.Listings)))

	return writeResult(cmd.OutOrStdout(), output, res, time.Now())
}

func statusLabel(hours *string, now time.Time) string {
	return openstatus.Derive(hours, now).Label()
}
