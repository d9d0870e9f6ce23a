// Command aidhubctl queries a listing dataset from the terminal using the
// same load, filter and sort path as the web directory.
//
// Usage:
//
//	aidhubctl search --file data/resources.json --query bread --sort zip
//	aidhubctl search --url https://example.org/resources.json -o json
//	aidhubctl regions --file data/resources.json
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	listingstore "github.com/dalemusser/aidhub/internal/app/store/listings"
	"github.com/dalemusser/aidhub/internal/app/system/timeouts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	datasetFile string
	datasetURL  string
	timeout     time.Duration
	output      string
	verbose     bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aidhubctl",
		Short:         "Query a Community Aid Hub listing dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger == nil {
				logger = newLogger(verbose)
			}
			timeouts.Configure(timeouts.Config{Fetch: timeout})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&datasetFile, "file", "data/resources.json", "dataset file path")
	pf.StringVar(&datasetURL, "url", "", "dataset URL (overrides --file)")
	pf.DurationVar(&timeout, "timeout", timeouts.DefaultFetch, "dataset load timeout")
	pf.StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(newSearchCmd(), newRegionsCmd())
	return root
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// errLoad is what the user sees when the dataset cannot be loaded; the
// cause is logged at debug level (--verbose).
var errLoad = errors.New("could not load resource data")

func loadFailed(source string, err error) error {
	logger.Debug("dataset load failed", zap.String("source", source), zap.Error(err))
	return errLoad
}

// openSource builds the dataset source from the flags.
func openSource() (listingstore.Source, error) {
	if datasetURL != "" {
		return listingstore.New(listingstore.Config{Kind: listingstore.KindHTTP, URL: datasetURL, Logger: logger})
	}
	return listingstore.New(listingstore.Config{Kind: listingstore.KindFile, Path: datasetFile, Logger: logger})
}

func main() {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
