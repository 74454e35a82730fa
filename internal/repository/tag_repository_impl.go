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

type TagRepositoryImpl struct {
	db *mongo.Database
}

func CreateTagRepository(db *mongo.Database) TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(mongodb.TagsCollection)
}

func (r *TagRepositoryImpl) AddTag(ctx context.Context, data domain.Tag) (id primitive.ObjectID, err error) {
	return insertOne(ctx, r.collection(), data, errs.ErrTagNameAlreadyExists)
}

func (r *TagRepositoryImpl) GetTags(ctx context.Context, filter pkgdto.Filter) (data []domain.Tag, err error) {
	return findAll[domain.Tag](ctx, r.collection(), bson.D{}, findOptions(filter))
}

func (r *TagRepositoryImpl) GetTagByID(ctx context.Context, id primitive.ObjectID) (data domain.Tag, err error) {
	return findOne[domain.Tag](ctx, r.collection(), bson.M{"_id": id}, errs.ErrTagNotFound)
}

func (r *TagRepositoryImpl) GetTagByName(ctx context.Context, name string) (data domain.Tag, err error) {
	return findOne[domain.Tag](ctx, r.collection(), bson.M{"tagName": name}, errs.ErrTagNotFound)
}

func (r *TagRepositoryImpl) GetTagsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Tag, err error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	return findAll[domain.Tag](ctx, r.collection(), bson.M{"_id": bson.M{"$in": ids}})
}

func (r *TagRepositoryImpl) UpdateTag(ctx context.Context, data domain.Tag) (err error) {
	set := bson.M{
		"tagName":     data.TagName,
		"description": data.Description,
		"updatedAt":   data.UpdatedAt,
	}

	return updateByID(ctx, r.collection(), data.ID, set, errs.ErrTagNotFound, errs.ErrTagNameAlreadyExists)
}

func (r *TagRepositoryImpl) DeleteUnreferencedTag(ctx context.Context, id primitive.ObjectID) (err error) {
	return deleteUnreferenced(ctx, r.collection(), id, errs.ErrTagNotFound, errs.ErrTagInUse)
}

func (r *TagRepositoryImpl) IncrementProductCount(ctx context.Context, ids []primitive.ObjectID, delta int64) (matched int64, err error) {
	return incrementProductCount(ctx, r.collection(), ids, delta)
}
