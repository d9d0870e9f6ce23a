package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/aidhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TwoPantries returns the two-listing dataset used by the directory
// scenarios: one West listing and one East listing.
func TwoPantries() []models.Listing {
	return []models.Listing{
		{
			Name:    "Second Harvest Food Bank",
			Address: "750 Curtner Ave, San Jose, CA 94301",
			ZIP:     "94301",
			Region:  models.Str("West"),
		},
		{
			Name:    "Bread of Life",
			Address: "55 W 34th St, New York, NY 10001",
			ZIP:     "10001",
			Region:  models.Str("East"),
		},
	}
}

// FullListing returns a listing with every optional field present.
func FullListing() models.Listing {
	return models.Listing{
		Name:        "Hope Community Pantry",
		Address:     "12 Orchard Lane, Atlanta, GA 30303",
		ZIP:         "30303",
		Phone:       models.Str("(404) 555-0100"),
		Hours:       models.Str("Mon, Wed 9am-1pm"),
		Description: models.Str("Weekly produce and dry goods."),
		Community:   models.Str("Grant Park"),
		Region:      models.Str("Southeast"),
		Services:    []string{"Groceries", "Diapers"},
		Website:     models.Str("https://hope.example.org"),
		Latitude:    models.Float(33.7490),
		Longitude:   models.Float(-84.3880),
		Category:    models.Str("Food Pantry"),
		LastUpdated: models.Str("Sep 2025"),
	}
}

// MarshalListings encodes listings as the dataset JSON array.
func MarshalListings(t *testing.T, listings []models.Listing) []byte {
	t.Helper()
	data, err := json.Marshal(listings)
	if err != nil {
		t.Fatalf("marshal listings: %v", err)
	}
	return data
}

// WriteDataset writes body to a resources.json file in a temp dir and
// returns its path.
func WriteDataset(t *testing.T, body []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.json")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

// DatasetServer serves body with the given status for every request.
// The server is closed when the test ends.
func DatasetServer(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if r.Method != http.MethodHead {
			_, _ = w.Write(body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// TestContext returns a context with a timeout suitable for tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SetupTestDB connects to the MongoDB named by AIDHUB_TEST_MONGO_URI and
// returns a fresh database that is dropped when the test ends. The test is
// skipped when the variable is unset.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("AIDHUB_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("AIDHUB_TEST_MONGO_URI not set; skipping MongoDB test")
	}

	ctx, cancel := TestContext()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}

	db := client.Database("aidhub_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
	t.Cleanup(func() {
		ctx, cancel := TestContext()
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}
