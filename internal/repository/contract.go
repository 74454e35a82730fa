package repository

import (
	"context"

	"github.com/koffe-supply/koffe-be/internal/domain"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transactor runs fn atomically. Repository calls made with the ctx handed to
// fn take part in the transaction.
type Transactor interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, err error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (data domain.User, err error)
	GetUserByUsername(ctx context.Context, username string) (data domain.User, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (err error)
}

type TagRepository interface {
	AddTag(ctx context.Context, data domain.Tag) (id primitive.ObjectID, err error)
	GetTags(ctx context.Context, filter pkgdto.Filter) (data []domain.Tag, err error)
	GetTagByID(ctx context.Context, id primitive.ObjectID) (data domain.Tag, err error)
	GetTagByName(ctx context.Context, name string) (data domain.Tag, err error)
	GetTagsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Tag, err error)
	UpdateTag(ctx context.Context, data domain.Tag) (err error)
	// DeleteUnreferencedTag fails with ErrTagInUse while any product counts the tag.
	DeleteUnreferencedTag(ctx context.Context, id primitive.ObjectID) (err error)
	// IncrementProductCount adds delta to every listed tag and reports how many matched.
	IncrementProductCount(ctx context.Context, ids []primitive.ObjectID, delta int64) (matched int64, err error)
}

type TypeRepository interface {
	AddType(ctx context.Context, data domain.Type) (id primitive.ObjectID, err error)
	GetTypes(ctx context.Context, filter pkgdto.Filter) (data []domain.Type, err error)
	GetTypeByID(ctx context.Context, id primitive.ObjectID) (data domain.Type, err error)
	GetTypeByName(ctx context.Context, name string) (data domain.Type, err error)
	GetTypesByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Type, err error)
	UpdateType(ctx context.Context, data domain.Type) (err error)
	DeleteUnreferencedType(ctx context.Context, id primitive.ObjectID) (err error)
	IncrementProductCount(ctx context.Context, ids []primitive.ObjectID, delta int64) (matched int64, err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (data domain.Product, err error)
	// GetProductForUpdate always reads storage, never a cache, so the result
	// can drive reference counting inside a transaction.
	GetProductForUpdate(ctx context.Context, id primitive.ObjectID) (data domain.Product, err error)
	GetProductByName(ctx context.Context, name string) (data domain.Product, err error)
	GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (deleted domain.Product, err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrders(ctx context.Context, filter pkgdto.Filter) (data []domain.Order, err error)
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (data domain.Order, err error)
	UpdateOrder(ctx context.Context, data domain.Order) (err error)
	DeleteOrder(ctx context.Context, id primitive.ObjectID) (err error)
}
