// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// ports, TLS, logging level and the like; AppConfig carries what is
// specific to the aid hub: where the dataset lives and how the directory
// behaves.
type AppConfig struct {
	// Dataset source: "file", "http" or "mongo".
	DatasetSource string
	DatasetPath   string // file source: path to resources.json
	DatasetURL    string // http source: URL returning the JSON array
	DatasetDir    string // directory served read-only under /data

	// Optional OAuth2 client-credentials for the http source.
	DatasetOAuthTokenURL     string
	DatasetOAuthClientID     string
	DatasetOAuthClientSecret string

	// MongoDB configuration (mongo source only)
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	// Visitor cookie configuration
	SessionKey    string // Secret key for signing the visitor cookie (random per process when blank)
	SessionName   string // Cookie name (default: aidhub-visitor)
	SessionDomain string // Cookie domain (blank means current host)

	DisplayTimezone  string        // IANA zone used for the open-today badge
	FetchTimeout     time.Duration // per-load budget for the dataset
	ResultsRateLimit int           // /results and /api requests per visitor per minute; 0 disables
}
