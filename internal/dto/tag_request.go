package dto

type TagRequest struct {
	TagName     string `json:"tagName" validate:"required"`
	Description string `json:"description"`
}

type UpdateTagRequest struct {
	ID          string  `json:"-"`
	TagName     *string `json:"tagName" validate:"omitnil,min=1"`
	Description *string `json:"description"`
}

type TypeRequest struct {
	TypeName    string `json:"typeName" validate:"required"`
	Description string `json:"description"`
}

type UpdateTypeRequest struct {
	ID          string  `json:"-"`
	TypeName    *string `json:"typeName" validate:"omitnil,min=1"`
	Description *string `json:"description"`
}
