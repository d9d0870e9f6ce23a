// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	listingstore "github.com/dalemusser/aidhub/internal/app/store/listings"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the aid hub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: dataset_source, dataset_path, etc.
//   - Environment variables: AIDHUB_DATASET_SOURCE, AIDHUB_DATASET_PATH, etc.
//   - Command-line flags: --dataset_source, --dataset_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "dataset_source", Default: listingstore.KindFile, Desc: "Dataset source: 'file', 'http' or 'mongo'"},
	{Name: "dataset_path", Default: "data/resources.json", Desc: "Path to the dataset file (file source)"},
	{Name: "dataset_url", Default: "", Desc: "URL of the dataset JSON (http source)"},
	{Name: "dataset_dir", Default: "data", Desc: "Directory served read-only under /data"},

	// OAuth2 client credentials for a protected dataset URL
	{Name: "dataset_oauth_token_url", Default: "", Desc: "OAuth2 token endpoint for the dataset URL"},
	{Name: "dataset_oauth_client_id", Default: "", Desc: "OAuth2 client ID"},
	{Name: "dataset_oauth_client_secret", Default: "", Desc: "OAuth2 client secret"},

	// MongoDB (mongo source)
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "aidhub", Desc: "MongoDB database name"},
	{Name: "mongo_collection", Default: listingstore.DefaultCollection, Desc: "MongoDB collection holding listings"},

	// Visitor cookie
	{Name: "session_key", Default: "", Desc: "Visitor cookie signing key (random per process when blank)"},
	{Name: "session_name", Default: "aidhub-visitor", Desc: "Visitor cookie name"},
	{Name: "session_domain", Default: "", Desc: "Visitor cookie domain (blank means current host)"},

	{Name: "display_timezone", Default: "America/New_York", Desc: "Time zone for the open-today badge"},
	{Name: "fetch_timeout", Default: "10s", Desc: "Dataset load timeout (e.g., 10s, 1m)"},
	{Name: "results_rate_limit", Default: 120, Desc: "Live-search requests per visitor per minute (0 disables)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// WAFFLE_* / AIDHUB_* environment variables and flags, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "AIDHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DatasetSource: strings.ToLower(strings.TrimSpace(appValues.String("dataset_source"))),
		DatasetPath:   appValues.String("dataset_path"),
		DatasetURL:    appValues.String("dataset_url"),
		DatasetDir:    appValues.String("dataset_dir"),

		DatasetOAuthTokenURL:     appValues.String("dataset_oauth_token_url"),
		DatasetOAuthClientID:     appValues.String("dataset_oauth_client_id"),
		DatasetOAuthClientSecret: appValues.String("dataset_oauth_client_secret"),

		MongoURI:        appValues.String("mongo_uri"),
		MongoDatabase:   appValues.String("mongo_database"),
		MongoCollection: appValues.String("mongo_collection"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		DisplayTimezone:  appValues.String("display_timezone"),
		FetchTimeout:     appValues.Duration("fetch_timeout", 10*time.Second),
		ResultsRateLimit: appValues.Int("results_rate_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Each dataset source has its own required settings; they are checked
// here so a misconfigured deployment fails at startup instead of on the
// first page view.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.DatasetSource {
	case listingstore.KindFile:
		if strings.TrimSpace(appCfg.DatasetPath) == "" {
			return fmt.Errorf("dataset_source=file requires dataset_path")
		}
	case listingstore.KindHTTP:
		if strings.TrimSpace(appCfg.DatasetURL) == "" {
			return fmt.Errorf("dataset_source=http requires dataset_url")
		}
		if appCfg.DatasetOAuthTokenURL != "" && appCfg.DatasetOAuthClientID == "" {
			return fmt.Errorf("dataset_oauth_token_url requires dataset_oauth_client_id")
		}
	case listingstore.KindMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("dataset_source=mongo requires mongo_database")
		}
	default:
		return fmt.Errorf("%w: %q", listingstore.ErrUnknownSource, appCfg.DatasetSource)
	}

	if _, err := time.LoadLocation(appCfg.DisplayTimezone); err != nil {
		return fmt.Errorf("invalid display_timezone %q: %w", appCfg.DisplayTimezone, err)
	}
	if appCfg.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}
	if appCfg.ResultsRateLimit < 0 {
		return fmt.Errorf("results_rate_limit must not be negative")
	}
	return nil
}
