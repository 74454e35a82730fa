package dto

type UserRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
	Phone    string `json:"phone"`
}

// UpdateUserRequest carries only the fields the caller sent; nil keeps the stored value.
type UpdateUserRequest struct {
	ID       string  `json:"-"`
	FullName *string `json:"fullName"`
	Username *string `json:"username" validate:"omitnil,min=1"`
	Password *string `json:"password" validate:"omitnil,min=1,max=72"`
	Phone    *string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}
