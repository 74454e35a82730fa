package service

import (
	"context"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/repository"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderServiceImpl struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   EventPublisher
}

func CreateOrderService(repo repository.OrderRepository, productRepo repository.ProductRepository, publisher EventPublisher) OrderService {
	return &OrderServiceImpl{repo: repo, productRepo: productRepo, publisher: publisher}
}

// toOrderDetails converts the request lines and checks that every product exists.
func (s *OrderServiceImpl) toOrderDetails(ctx context.Context, lines []dto.OrderDetailRequest) ([]domain.OrderDetail, error) {
	details := make([]domain.OrderDetail, 0, len(lines))
	productIDs := make([]string, 0, len(lines))

	for _, line := range lines {
		productID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			return nil, errs.ErrInvalidProducts
		}

		productIDs = append(productIDs, line.ProductID)
		details = append(details, domain.OrderDetail{
			ProductID:    productID,
			Quantity:     line.Quantity,
			Price:        line.Price,
			Size:         line.Size,
			Weight:       line.Weight,
			PackageColor: line.PackageColor,
		})
	}

	ids, err := parseReferences(productIDs, errs.ErrInvalidProducts)
	if err != nil {
		return nil, err
	}

	if err = ensureProductsExist(ctx, s.productRepo, ids); err != nil {
		return nil, err
	}

	return details, nil
}

func (s *OrderServiceImpl) AddOrder(ctx context.Context, req dto.OrderRequest) (resp dto.OrderResponse, err error) {
	details, err := s.toOrderDetails(ctx, req.OrderDetail)
	if err != nil {
		return
	}

	timestamp := now()
	order := domain.Order{
		OrderDetail:   details,
		TotalPrice:    req.TotalPrice,
		ShippingFee:   req.ShippingFee,
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Address:       req.Address,
		FullAddress:   req.FullAddress,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Phone:         req.Phone,
		Payment:       req.Payment,
		Note:          req.Note,
		ApproveBy:     req.ApproveBy,
		OrderStatus:   domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     timestamp,
		UpdatedAt:     timestamp,
	}

	if req.OrderStatus != nil {
		order.OrderStatus = *req.OrderStatus
	}

	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}

	order.ID, err = s.repo.AddOrder(ctx, order)
	if err != nil {
		return
	}

	resp, err = s.expandOne(ctx, order)
	if err != nil {
		return
	}

	publish(ctx, s.publisher, "order", EventCreated, resp.ID, order)

	return resp, nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, filter pkgdto.Filter) (resp []dto.OrderResponse, err error) {
	orders, err := s.repo.GetOrders(ctx, filter)
	if err != nil {
		return
	}

	return s.expand(ctx, orders)
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id string) (resp dto.OrderResponse, err error) {
	orderID, err := parseID(id, errs.ErrOrderNotFound)
	if err != nil {
		return
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	return s.expandOne(ctx, order)
}

func (s *OrderServiceImpl) UpdateOrder(ctx context.Context, req dto.UpdateOrderRequest) (resp dto.OrderResponse, err error) {
	orderID, err := parseID(req.ID, errs.ErrOrderNotFound)
	if err != nil {
		return
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if req.OrderDetail != nil {
		order.OrderDetail, err = s.toOrderDetails(ctx, *req.OrderDetail)
		if err != nil {
			return
		}
	}

	applyOrderUpdate(&order, req)
	order.UpdatedAt = now()

	if err = s.repo.UpdateOrder(ctx, order); err != nil {
		return
	}

	resp, err = s.expandOne(ctx, order)
	if err != nil {
		return
	}

	publish(ctx, s.publisher, "order", EventUpdated, resp.ID, order)

	return resp, nil
}

func applyOrderUpdate(order *domain.Order, req dto.UpdateOrderRequest) {
	setIfPresent(&order.TotalPrice, req.TotalPrice)
	setIfPresent(&order.ShippingFee, req.ShippingFee)
	setIfPresent(&order.CustomerName, req.CustomerName)
	setIfPresent(&order.Email, req.Email)
	setIfPresent(&order.Address, req.Address)
	setIfPresent(&order.FullAddress, req.FullAddress)
	setIfPresent(&order.City, req.City)
	setIfPresent(&order.PostalCode, req.PostalCode)
	setIfPresent(&order.Phone, req.Phone)
	setIfPresent(&order.Payment, req.Payment)
	setIfPresent(&order.Note, req.Note)
	setIfPresent(&order.OrderStatus, req.OrderStatus)
	setIfPresent(&order.PaymentStatus, req.PaymentStatus)

	if req.ApproveBy != nil {
		order.ApproveBy = req.ApproveBy
	}
}

func setIfPresent[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, id string) (err error) {
	orderID, err := parseID(id, errs.ErrOrderNotFound)
	if err != nil {
		return
	}

	if err = s.repo.DeleteOrder(ctx, orderID); err != nil {
		return
	}

	publish(ctx, s.publisher, "order", EventDeleted, id, map[string]string{"id": id})

	return nil
}

func (s *OrderServiceImpl) expandOne(ctx context.Context, order domain.Order) (dto.OrderResponse, error) {
	resp, err := s.expand(ctx, []domain.Order{order})
	if err != nil {
		return dto.OrderResponse{}, err
	}

	return resp[0], nil
}

// expand resolves the products of every order line with a single lookup.
func (s *OrderServiceImpl) expand(ctx context.Context, orders []domain.Order) ([]dto.OrderResponse, error) {
	var productIDs []primitive.ObjectID
	for _, order := range orders {
		for _, line := range order.OrderDetail {
			productIDs = append(productIDs, line.ProductID)
		}
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, uniqueIDs(productIDs))
	if err != nil {
		return nil, err
	}

	productsByID := make(map[string]domain.Product, len(products))
	for _, product := range products {
		productsByID[product.ID.Hex()] = product
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, dto.NewOrderResponse(order, productsByID))
	}

	return resp, nil
}
