package dto

type DescriptionMore struct {
	RoastLevel  string `json:"roast_level"`
	Flavor      string `json:"flavor"`
	Brewing     string `json:"brewing"`
	Altitude    string `json:"altitude"`
	Variety     string `json:"variety"`
	Cultivation string `json:"cultivation"`
}

type ProductRequest struct {
	ProductName     string           `json:"productName" validate:"required"`
	Tags            []string         `json:"tags"`
	Description     string           `json:"description"`
	DescriptionMore *DescriptionMore `json:"descriptionMore"`
	Type            string           `json:"type" validate:"required"`
	Image           string           `json:"image" validate:"required"`
	ImageMore       []string         `json:"imageMore" validate:"required,min=1"`
	Price           *float64         `json:"price" validate:"omitnil,gte=0"`
}

type UpdateProductRequest struct {
	ID              string           `json:"-"`
	ProductName     *string          `json:"productName" validate:"omitnil,min=1"`
	Tags            *[]string        `json:"tags"`
	Description     *string          `json:"description"`
	DescriptionMore *DescriptionMore `json:"descriptionMore"`
	Type            *string          `json:"type" validate:"omitnil,min=1"`
	Image           *string          `json:"image" validate:"omitnil,min=1"`
	ImageMore       *[]string        `json:"imageMore" validate:"omitnil,min=1"`
	Price           *float64         `json:"price" validate:"omitnil,gte=0"`
}
