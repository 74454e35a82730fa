package mongodb

import (
	"context"

	"github.com/koffe-supply/koffe-be/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

const (
	UsersCollection    = "users"
	TagsCollection     = "tags"
	TypesCollection    = "types"
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// uniqueFields lists the name field of every collection that must not hold duplicates.
var uniqueFields = map[string]string{
	UsersCollection:    "username",
	TagsCollection:     "tagName",
	TypesCollection:    "typeName",
	ProductsCollection: "productName",
}

func ConnectToMongoDB(ctx context.Context, conf config.MongoDBConfig) (*mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(conf.MongoURI()).
		SetMonitor(otelmongo.NewMonitor())

	ctx, cancel := context.WithTimeout(ctx, conf.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "ping mongodb")
	}

	return client.Database(conf.DBName), nil
}

// EnsureIndexes creates the unique name indexes. It is safe to run repeatedly.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, field := range uniqueFields {
		name, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(field + "_unique"),
		})
		if err != nil {
			return errors.Wrapf(err, "create unique index on %s.%s", collection, field)
		}

		log.Info().Str("component", "EnsureIndexes").Str("collection", collection).Str("index", name).Msg("index ready")
	}

	return nil
}
