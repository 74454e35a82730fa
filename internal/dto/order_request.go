package dto

type OrderDetailRequest struct {
	ProductID    string   `json:"productId" validate:"required"`
	Quantity     int      `json:"quantity" validate:"gte=1"`
	Price        float64  `json:"price" validate:"gte=0"`
	Size         string   `json:"size"`
	Weight       *float64 `json:"weight" validate:"omitnil,gte=0"`
	PackageColor string   `json:"package_color"`
}

type OrderRequest struct {
	OrderDetail   []OrderDetailRequest `json:"orderDetail" validate:"required,min=1,dive"`
	TotalPrice    float64              `json:"totalPrice" validate:"gte=0"`
	ShippingFee   float64              `json:"shippingFee" validate:"gte=0"`
	CustomerName  string               `json:"customerName"`
	Email         string               `json:"email"`
	Address       string               `json:"address"`
	FullAddress   string               `json:"fullAddress"`
	City          string               `json:"city"`
	PostalCode    string               `json:"postalCode"`
	Phone         string               `json:"phone" validate:"required"`
	Payment       string               `json:"payment"`
	Note          string               `json:"note"`
	ApproveBy     *string              `json:"approveBy"`
	OrderStatus   *int                 `json:"orderStatus" validate:"omitnil,gte=0"`
	PaymentStatus *int                 `json:"paymentStatus" validate:"omitnil,gte=0"`
}

type UpdateOrderRequest struct {
	ID            string                `json:"-"`
	OrderDetail   *[]OrderDetailRequest `json:"orderDetail" validate:"omitnil,min=1,dive"`
	TotalPrice    *float64              `json:"totalPrice" validate:"omitnil,gte=0"`
	ShippingFee   *float64              `json:"shippingFee" validate:"omitnil,gte=0"`
	CustomerName  *string               `json:"customerName"`
	Email         *string               `json:"email"`
	Address       *string               `json:"address"`
	FullAddress   *string               `json:"fullAddress"`
	City          *string               `json:"city"`
	PostalCode    *string               `json:"postalCode"`
	Phone         *string               `json:"phone" validate:"omitnil,min=1"`
	Payment       *string               `json:"payment"`
	Note          *string               `json:"note"`
	ApproveBy     *string               `json:"approveBy"`
	OrderStatus   *int                  `json:"orderStatus" validate:"omitnil,gte=0"`
	PaymentStatus *int                  `json:"paymentStatus" validate:"omitnil,gte=0"`
}
