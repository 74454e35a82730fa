package repository

import (
	"context"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/infrastructure/database/mongodb"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TypeRepositoryImpl struct {
	db *mongo.Database
}

func CreateTypeRepository(db *mongo.Database) TypeRepository {
	return &TypeRepositoryImpl{db: db}
}

func (r *TypeRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(mongodb.TypesCollection)
}

func (r *TypeRepositoryImpl) AddType(ctx context.Context, data domain.Type) (id primitive.ObjectID, err error) {
	return insertOne(ctx, r.collection(), data, errs.ErrTypeNameAlreadyExists)
}

func (r *TypeRepositoryImpl) GetTypes(ctx context.Context, filter pkgdto.Filter) (data []domain.Type, err error) {
	return findAll[domain.Type](ctx, r.collection(), bson.D{}, findOptions(filter))
}

func (r *TypeRepositoryImpl) GetTypeByID(ctx context.Context, id primitive.ObjectID) (data domain.Type, err error) {
	return findOne[domain.Type](ctx, r.collection(), bson.M{"_id": id}, errs.ErrTypeNotFound)
}

func (r *TypeRepositoryImpl) GetTypeByName(ctx context.Context, name string) (data domain.Type, err error) {
	return findOne[domain.Type](ctx, r.collection(), bson.M{"typeName": name}, errs.ErrTypeNotFound)
}

func (r *TypeRepositoryImpl) GetTypesByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Type, err error) {
	if len(ids) == 0 {
		return []domain.Type{}, nil
	}

	return findAll[domain.Type](ctx, r.collection(), bson.M{"_id": bson.M{"$in": ids}})
}

func (r *TypeRepositoryImpl) UpdateType(ctx context.Context, data domain.Type) (err error) {
	set := bson.M{
		"typeName":    data.TypeName,
		"description": data.Description,
		"updatedAt":   data.UpdatedAt,
	}

	return updateByID(ctx, r.collection(), data.ID, set, errs.ErrTypeNotFound, errs.ErrTypeNameAlreadyExists)
}

func (r *TypeRepositoryImpl) DeleteUnreferencedType(ctx context.Context, id primitive.ObjectID) (err error) {
	return deleteUnreferenced(ctx, r.collection(), id, errs.ErrTypeNotFound, errs.ErrTypeInUse)
}

func (r *TypeRepositoryImpl) IncrementProductCount(ctx context.Context, ids []primitive.ObjectID, delta int64) (matched int64, err error) {
	return incrementProductCount(ctx, r.collection(), ids, delta)
}
