package bootstrap

import (
	"errors"
	"strings"
	"testing"
	"time"

	listingstore "github.com/dalemusser/aidhub/internal/app/store/listings"
	"go.uber.org/zap"
)

func validConfig() AppConfig {
	return AppConfig{
		DatasetSource:    listingstore.KindFile,
		DatasetPath:      "data/resources.json",
		DatasetDir:       "data",
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "aidhub",
		DisplayTimezone:  "America/New_York",
		FetchTimeout:     10 * time.Second,
		ResultsRateLimit: 120,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(*AppConfig) {}},
		{
			name:    "file without path",
			mutate:  func(c *AppConfig) { c.DatasetPath = " " },
			wantErr: "dataset_path",
		},
		{
			name:    "http without url",
			mutate:  func(c *AppConfig) { c.DatasetSource = listingstore.KindHTTP },
			wantErr: "dataset_url",
		},
		{
			name: "http with url",
			mutate: func(c *AppConfig) {
				c.DatasetSource = listingstore.KindHTTP
				c.DatasetURL = "https://example.org/resources.json"
			},
		},
		{
			name: "oauth without client id",
			mutate: func(c *AppConfig) {
				c.DatasetSource = listingstore.KindHTTP
				c.DatasetURL = "https://example.org/resources.json"
				c.DatasetOAuthTokenURL = "https://example.org/token"
			},
			wantErr: "dataset_oauth_client_id",
		},
		{
			name: "mongo bad uri",
			mutate: func(c *AppConfig) {
				c.DatasetSource = listingstore.KindMongo
				c.MongoURI = "postgres://nope"
			},
			wantErr: "invalid MongoDB URI",
		},
		{
			name: "mongo without database",
			mutate: func(c *AppConfig) {
				c.DatasetSource = listingstore.KindMongo
				c.MongoDatabase = ""
			},
			wantErr: "mongo_database",
		},
		{
			name:    "bad timezone",
			mutate:  func(c *AppConfig) { c.DisplayTimezone = "Mars/Olympus" },
			wantErr: "display_timezone",
		},
		{
			name:    "zero fetch timeout",
			mutate:  func(c *AppConfig) { c.FetchTimeout = 0 },
			wantErr: "fetch_timeout",
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *AppConfig) { c.ResultsRateLimit = -1 },
			wantErr: "results_rate_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, zap.NewNop())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfig_UnknownSource(t *testing.T) {
	cfg := validConfig()
	cfg.DatasetSource = "ftp"
	err := ValidateConfig(nil, cfg, zap.NewNop())
	if !errors.Is(err, listingstore.ErrUnknownSource) {
		t.Fatalf("error = %v, want ErrUnknownSource", err)
	}
}

func TestSourceConfig(t *testing.T) {
	cfg := validConfig()
	cfg.DatasetSource = listingstore.KindHTTP
	cfg.DatasetURL = "https://example.org/resources.json"
	cfg.DatasetOAuthTokenURL = "https://example.org/token"
	cfg.DatasetOAuthClientID = "id"
	cfg.DatasetOAuthClientSecret = "secret"

	sc := sourceConfig(cfg, DBDeps{}, zap.NewNop())
	if sc.Kind != listingstore.KindHTTP || sc.URL != cfg.DatasetURL {
		t.Errorf("unexpected source config: %+v", sc)
	}
	if !sc.OAuth.Enabled() {
		t.Error("expected OAuth to be enabled")
	}
}
