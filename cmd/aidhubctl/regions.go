package main

import (
	"github.com/dalemusser/aidhub/internal/app/system/search"
	"github.com/spf13/cobra"
)

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the distinct regions in the dataset",
		Args:  cobra.NoArgs,
		RunE:  runRegions,
	}
}

func runRegions(cmd *cobra.Command, args []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	listings, err := src.Load(cmd.Context())
	if err != nil {
		return loadFailed(src.Name(), err)
	}
	return writeRegions(cmd.OutOrStdout(), output, search.Regions(listings))
}
