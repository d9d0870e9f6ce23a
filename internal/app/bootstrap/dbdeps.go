// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	listingstore "github.com/dalemusser/aidhub/internal/app/store/listings"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds back-end dependencies for the app. The Mongo fields are
// set only when the dataset source is mongo.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Listings is the configured dataset source.
	Listings listingstore.Source
}
