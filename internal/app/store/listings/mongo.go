// internal/app/store/listings/mongo.go
package listingstore

import (
	"context"

	"github.com/dalemusser/aidhub/internal/app/system/timeouts"
	"github.com/dalemusser/aidhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// DefaultCollection holds listing documents when none is configured.
const DefaultCollection = "listings"

// MongoSource reads every document of a collection as a listing. It never
// writes; the collection is maintained by whoever curates the dataset.
type MongoSource struct {
	c *mongo.Collection

	// Log receives skipped-record warnings.
	Log *zap.Logger
}

// NewMongoSource returns a Source over db.collection.
func NewMongoSource(db *mongo.Database, collection string) *MongoSource {
	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoSource{c: db.Collection(collection), Log: zap.L()}
}

func (s *MongoSource) Name() string {
	return s.c.Database().Name() + "." + s.c.Name()
}

// Load streams the whole collection. Query and cursor failures are
// *LoadError; a document that does not decode into a listing is skipped
// and logged, like a bad element of a JSON dataset.
func (s *MongoSource) Load(ctx context.Context) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Fetch())
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cur, err := s.c.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, &LoadError{Source: s.Name(), Cause: err}
	}
	defer cur.Close(ctx)

	out := make([]models.Listing, 0, 64)
	for i := 0; cur.Next(ctx); i++ {
		var l models.Listing
		if err := cur.Decode(&l); err != nil {
			loggerOr(s.Log).Warn("skipping undecodable listing",
				zap.String("source", s.Name()),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		out = append(out, l.Defaulted())
	}
	if err := cur.Err(); err != nil {
		return nil, &LoadError{Source: s.Name(), Cause: err}
	}
	return out, nil
}

// Check pings the primary.
func (s *MongoSource) Check(ctx context.Context) error {
	if err := s.c.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return &LoadError{Source: s.Name(), Cause: err}
	}
	return nil
}
