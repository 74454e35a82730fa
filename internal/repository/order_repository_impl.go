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

type OrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateOrderRepository(db *mongo.Database) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(mongodb.OrdersCollection)
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	return insertOne(ctx, r.collection(), data, nil)
}

func (r *OrderRepositoryImpl) GetOrders(ctx context.Context, filter pkgdto.Filter) (data []domain.Order, err error) {
	return findAll[domain.Order](ctx, r.collection(), bson.D{}, findOptions(filter))
}

func (r *OrderRepositoryImpl) GetOrderByID(ctx context.Context, id primitive.ObjectID) (data domain.Order, err error) {
	return findOne[domain.Order](ctx, r.collection(), bson.M{"_id": id}, errs.ErrOrderNotFound)
}

func (r *OrderRepositoryImpl) UpdateOrder(ctx context.Context, data domain.Order) (err error) {
	set := bson.M{
		"orderDetail":   data.OrderDetail,
		"totalPrice":    data.TotalPrice,
		"shippingFee":   data.ShippingFee,
		"customerName":  data.CustomerName,
		"email":         data.Email,
		"address":       data.Address,
		"fullAddress":   data.FullAddress,
		"city":          data.City,
		"postalCode":    data.PostalCode,
		"phone":         data.Phone,
		"payment":       data.Payment,
		"note":          data.Note,
		"approveBy":     data.ApproveBy,
		"orderStatus":   data.OrderStatus,
		"paymentStatus": data.PaymentStatus,
		"updatedAt":     data.UpdatedAt,
	}

	return updateByID(ctx, r.collection(), data.ID, set, errs.ErrOrderNotFound, nil)
}

func (r *OrderRepositoryImpl) DeleteOrder(ctx context.Context, id primitive.ObjectID) (err error) {
	return deleteByID(ctx, r.collection(), id, errs.ErrOrderNotFound)
}
