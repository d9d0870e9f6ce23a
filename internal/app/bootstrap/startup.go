// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/aidhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the dataset
// source is built, but before the HTTP handler is. It applies the load
// timeout and checks the source once so a bad path or URL shows up in the
// startup log. An unreachable source does not abort startup: the page
// renders its error state until the source recovers.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{Fetch: appCfg.FetchTimeout})

	checkCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := deps.Listings.Check(checkCtx); err != nil {
		logger.Warn("dataset source not reachable at startup",
			zap.String("source", deps.Listings.Name()), zap.Error(err))
	}
	return nil
}
