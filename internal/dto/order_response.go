package dto

import (
	"time"

	"github.com/koffe-supply/koffe-be/internal/domain"
)

type OrderDetailResponse struct {
	ProductID    string          `json:"productId"`
	Product      *domain.Product `json:"product"`
	Quantity     int             `json:"quantity"`
	Price        float64         `json:"price"`
	Size         string          `json:"size,omitempty"`
	Weight       *float64        `json:"weight,omitempty"`
	PackageColor string          `json:"package_color,omitempty"`
}

type OrderResponse struct {
	ID            string                `json:"id"`
	OrderDetail   []OrderDetailResponse `json:"orderDetail"`
	TotalPrice    float64               `json:"totalPrice"`
	ShippingFee   float64               `json:"shippingFee"`
	CustomerName  string                `json:"customerName"`
	Email         string                `json:"email,omitempty"`
	Address       string                `json:"address"`
	FullAddress   string                `json:"fullAddress"`
	City          string                `json:"city"`
	PostalCode    string                `json:"postalCode,omitempty"`
	Phone         string                `json:"phone"`
	Payment       string                `json:"payment"`
	Note          string                `json:"note,omitempty"`
	ApproveBy     *string               `json:"approveBy"`
	OrderStatus   int                   `json:"orderStatus"`
	PaymentStatus int                   `json:"paymentStatus"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// NewOrderResponse resolves every line's product from products; deleted
// products leave Product nil.
func NewOrderResponse(order domain.Order, products map[string]domain.Product) OrderResponse {
	resp := OrderResponse{
		ID:            order.ID.Hex(),
		OrderDetail:   make([]OrderDetailResponse, 0, len(order.OrderDetail)),
		TotalPrice:    order.TotalPrice,
		ShippingFee:   order.ShippingFee,
		CustomerName:  order.CustomerName,
		Email:         order.Email,
		Address:       order.Address,
		FullAddress:   order.FullAddress,
		City:          order.City,
		PostalCode:    order.PostalCode,
		Phone:         order.Phone,
		Payment:       order.Payment,
		Note:          order.Note,
		ApproveBy:     order.ApproveBy,
		OrderStatus:   order.OrderStatus,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}

	for _, line := range order.OrderDetail {
		detail := OrderDetailResponse{
			ProductID:    line.ProductID.Hex(),
			Quantity:     line.Quantity,
			Price:        line.Price,
			Size:         line.Size,
			Weight:       line.Weight,
			PackageColor: line.PackageColor,
		}
		if product, ok := products[line.ProductID.Hex()]; ok {
			detail.Product = &product
		}
		resp.OrderDetail = append(resp.OrderDetail, detail)
	}

	return resp
}
