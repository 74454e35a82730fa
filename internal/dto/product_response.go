package dto

import (
	"time"

	"github.com/koffe-supply/koffe-be/internal/domain"
)

// ProductResponse is a product with its tag and type references resolved.
type ProductResponse struct {
	ID              string                  `json:"id"`
	ProductName     string                  `json:"productName"`
	Tags            []domain.Tag            `json:"tags"`
	Description     string                  `json:"description,omitempty"`
	DescriptionMore *domain.DescriptionMore `json:"descriptionMore"`
	Type            *domain.Type            `json:"type"`
	Image           string                  `json:"image"`
	ImageMore       []string                `json:"imageMore"`
	Price           *float64                `json:"price,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// NewProductResponse expands product against the given lookups. Ids missing
// from the lookups are dropped from Tags and leave Type nil.
func NewProductResponse(product domain.Product, tags map[string]domain.Tag, types map[string]domain.Type) ProductResponse {
	resp := ProductResponse{
		ID:              product.ID.Hex(),
		ProductName:     product.ProductName,
		Tags:            []domain.Tag{},
		Description:     product.Description,
		DescriptionMore: product.DescriptionMore,
		Image:           product.Image,
		ImageMore:       product.ImageMore,
		Price:           product.Price,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}

	for _, id := range product.Tags {
		if tag, ok := tags[id.Hex()]; ok {
			resp.Tags = append(resp.Tags, tag)
		}
	}

	if t, ok := types[product.Type.Hex()]; ok {
		resp.Type = &t
	}

	return resp
}
