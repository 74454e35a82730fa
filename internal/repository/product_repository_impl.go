package repository

import (
	"context"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/infrastructure/database/mongodb"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateProductRepository(db *mongo.Database) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(mongodb.ProductsCollection)
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	return insertOne(ctx, r.collection(), data, errs.ErrProductNameAlreadyExists)
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	return findAll[domain.Product](ctx, r.collection(), bson.D{}, findOptions(filter))
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id primitive.ObjectID) (data domain.Product, err error) {
	return findOne[domain.Product](ctx, r.collection(), bson.M{"_id": id}, errs.ErrProductNotFound)
}

func (r *ProductRepositoryImpl) GetProductForUpdate(ctx context.Context, id primitive.ObjectID) (data domain.Product, err error) {
	return r.GetProductByID(ctx, id)
}

func (r *ProductRepositoryImpl) GetProductByName(ctx context.Context, name string) (data domain.Product, err error) {
	return findOne[domain.Product](ctx, r.collection(), bson.M{"productName": name}, errs.ErrProductNotFound)
}

func (r *ProductRepositoryImpl) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Product, err error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	return findAll[domain.Product](ctx, r.collection(), bson.M{"_id": bson.M{"$in": ids}})
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	set := bson.M{
		"productName":     data.ProductName,
		"tags":            data.Tags,
		"description":     data.Description,
		"descriptionMore": data.DescriptionMore,
		"type":            data.Type,
		"image":           data.Image,
		"imageMore":       data.ImageMore,
		"price":           data.Price,
		"updatedAt":       data.UpdatedAt,
	}

	return updateByID(ctx, r.collection(), data.ID, set, errs.ErrProductNotFound, errs.ErrProductNameAlreadyExists)
}

// DeleteProduct returns the removed document so callers can release its references.
func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id primitive.ObjectID) (deleted domain.Product, err error) {
	err = r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return deleted, errs.ErrProductNotFound
	}
	if err != nil {
		return deleted, errors.Wrap(err, "failed to delete product")
	}

	return deleted, nil
}
