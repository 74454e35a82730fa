package repository

import (
	"context"

	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTransactor struct {
	db      *mongo.Database
	enabled bool
}

// CreateMongoTransactor returns a Transactor backed by multi-document
// transactions. Standalone servers do not support them; with enabled false fn
// runs directly.
func CreateMongoTransactor(db *mongo.Database, enabled bool) Transactor {
	return &MongoTransactor{db: db, enabled: enabled}
}

// HandleTrx runs AfterCommit callbacks registered by fn once the transaction
// has committed.
func (t *MongoTransactor) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	trxCtx, runHooks := WithCommitHooks(ctx)

	if !t.enabled {
		if err := fn(trxCtx); err != nil {
			return err
		}
		runHooks(ctx)
		return nil
	}

	session, err := t.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(trxCtx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		return err
	}

	runHooks(ctx)
	return nil
}

func findOptions(filter pkgdto.Filter) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if filter.Paginated() {
		opts.SetLimit(int64(filter.Limit))
		opts.SetSkip(int64(filter.Offset()))
	}

	return opts
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to retrieve %s", coll.Name())
	}
	defer cursor.Close(ctx)

	data := []T{}
	if err = cursor.All(ctx, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", coll.Name())
	}

	return data, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, notFound error) (data T, err error) {
	err = coll.FindOne(ctx, filter).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return data, notFound
	}
	if err != nil {
		return data, errors.Wrapf(err, "failed to retrieve %s", coll.Name())
	}

	return data, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}, duplicate error) (primitive.ObjectID, error) {
	result, err := coll.InsertOne(ctx, doc)
	if duplicate != nil && mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, duplicate
	}
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "failed to insert into %s", coll.Name())
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set bson.M, notFound, duplicate error) error {
	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if duplicate != nil && mongo.IsDuplicateKeyError(err) {
		return duplicate
	}
	if err != nil {
		return errors.Wrapf(err, "failed to update %s", coll.Name())
	}

	if result.MatchedCount == 0 {
		return notFound
	}

	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound error) error {
	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "failed to delete from %s", coll.Name())
	}

	if result.DeletedCount == 0 {
		return notFound
	}

	return nil
}

// deleteUnreferenced removes the document only while its productCount is not
// positive. Documents written before the counter existed count as unreferenced.
func deleteUnreferenced(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound, inUse error) error {
	filter := bson.M{
		"_id":          id,
		"productCount": bson.M{"$not": bson.M{"$gt": 0}},
	}

	result, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return errors.Wrapf(err, "failed to delete from %s", coll.Name())
	}

	if result.DeletedCount == 1 {
		return nil
	}

	count, err := coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "failed to count %s", coll.Name())
	}

	if count == 0 {
		return notFound
	}

	return inUse
}

func incrementProductCount(ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID, delta int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$inc": bson.M{"productCount": delta}},
	)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to adjust product count on %s", coll.Name())
	}

	return result.MatchedCount, nil
}
