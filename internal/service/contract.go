package service

import (
	"context"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/dto"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
)

// EventPublisher delivers domain events. Publish never fails the caller.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, data interface{})
}

type UserService interface {
	AddUser(ctx context.Context, req dto.UserRequest) (resp dto.UserResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (resp []dto.UserResponse, err error)
	GetUserByID(ctx context.Context, id string) (resp dto.UserResponse, err error)
	UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (resp dto.UserResponse, err error)
	DeleteUser(ctx context.Context, id string) (err error)
}

type TagService interface {
	AddTag(ctx context.Context, req dto.TagRequest) (resp domain.Tag, err error)
	GetTags(ctx context.Context, filter pkgdto.Filter) (resp []domain.Tag, err error)
	GetTagByID(ctx context.Context, id string) (resp domain.Tag, err error)
	UpdateTag(ctx context.Context, req dto.UpdateTagRequest) (resp domain.Tag, err error)
	DeleteTag(ctx context.Context, id string) (err error)
}

type TypeService interface {
	AddType(ctx context.Context, req dto.TypeRequest) (resp domain.Type, err error)
	GetTypes(ctx context.Context, filter pkgdto.Filter) (resp []domain.Type, err error)
	GetTypeByID(ctx context.Context, id string) (resp domain.Type, err error)
	UpdateType(ctx context.Context, req dto.UpdateTypeRequest) (resp domain.Type, err error)
	DeleteType(ctx context.Context, id string) (err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (resp []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, req dto.UpdateProductRequest) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, req dto.OrderRequest) (resp dto.OrderResponse, err error)
	GetOrders(ctx context.Context, filter pkgdto.Filter) (resp []dto.OrderResponse, err error)
	GetOrderByID(ctx context.Context, id string) (resp dto.OrderResponse, err error)
	UpdateOrder(ctx context.Context, req dto.UpdateOrderRequest) (resp dto.OrderResponse, err error)
	DeleteOrder(ctx context.Context, id string) (err error)
}
