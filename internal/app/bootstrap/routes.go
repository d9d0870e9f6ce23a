// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	directoryfeature "github.com/dalemusser/aidhub/internal/app/features/directory"
	healthfeature "github.com/dalemusser/aidhub/internal/app/features/health"
	"github.com/dalemusser/aidhub/internal/app/resources"
	"github.com/dalemusser/aidhub/internal/app/system/cycles"
	"github.com/dalemusser/aidhub/internal/app/system/ratelimit"
	"github.com/dalemusser/aidhub/internal/app/system/visitor"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// resultsLimiter is stopped in Shutdown.
var resultsLimiter *ratelimit.Limiter

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the dataset source and Startup
// have completed. The visitor middleware runs on every request so live
// search cycles can be sequenced per visitor; the directory owns "/".
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	visitors, err := visitor.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("visitor manager init failed", zap.Error(err))
		return nil, err
	}

	loc, err := time.LoadLocation(appCfg.DisplayTimezone)
	if err != nil {
		logger.Error("display timezone", zap.String("tz", appCfg.DisplayTimezone), zap.Error(err))
		return nil, err
	}

	// Feature sets register in init; the shared layout is registered here.
	resources.LoadSharedTemplates()
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	var limit func(http.Handler) http.Handler
	if appCfg.ResultsRateLimit > 0 {
		resultsLimiter = ratelimit.New(appCfg.ResultsRateLimit, time.Minute)
		limit = resultsLimiter.Middleware
	}

	r := chi.NewRouter()

	r.Use(visitors.Load)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Listings, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Raw dataset files, read-only
	if appCfg.DatasetDir != "" {
		r.Handle("/data/*", fileserver.Handler("/data", appCfg.DatasetDir))
	}

	dirHandler := directoryfeature.NewHandler(deps.Listings, eng, cycles.New(), loc, logger)
	r.Mount("/", directoryfeature.Routes(dirHandler, limit))

	return r, nil
}
