package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending   = 0
	PaymentStatusPending = 0
)

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderDetail   []OrderDetail      `bson:"orderDetail" json:"orderDetail"`
	TotalPrice    float64            `bson:"totalPrice" json:"totalPrice"`
	ShippingFee   float64            `bson:"shippingFee" json:"shippingFee"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Address       string             `bson:"address" json:"address"`
	FullAddress   string             `bson:"fullAddress" json:"fullAddress"`
	City          string             `bson:"city" json:"city"`
	PostalCode    string             `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Phone         string             `bson:"phone" json:"phone"`
	Payment       string             `bson:"payment" json:"payment"`
	Note          string             `bson:"note,omitempty" json:"note,omitempty"`
	ApproveBy     *string            `bson:"approveBy" json:"approveBy"`
	OrderStatus   int                `bson:"orderStatus" json:"orderStatus"`
	PaymentStatus int                `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderDetail is one line item, embedded in its order.
type OrderDetail struct {
	ProductID    primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Price        float64            `bson:"price" json:"price"`
	Size         string             `bson:"size,omitempty" json:"size,omitempty"`
	Weight       *float64           `bson:"weight,omitempty" json:"weight,omitempty"`
	PackageColor string             `bson:"package_color,omitempty" json:"package_color,omitempty"`
}
