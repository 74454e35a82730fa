package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusUnauthorized     = http.StatusUnauthorized
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusDuplicate        = http.StatusBadRequest
	ErrStatusInvalidReference = http.StatusBadRequest
	ErrStatusConflict         = http.StatusConflict
)

// Error kinds. Every error returned across the service boundary is one of
// these or wraps one of them.
var (
	ErrInternalServer   = errors.New("Internal server error")
	ErrClient           = errors.New("Bad request")
	ErrUnauthorized     = errors.New("Unauthorized access")
	ErrNotFound         = errors.New("Resource not found")
	ErrDuplicate        = errors.New("Duplicate record found")
	ErrInvalidReference = errors.New("Invalid reference")
	ErrConflict         = errors.New("Conflicting record found")
)

var (
	ErrInvalidPayload   = New(ErrClient, "Invalid request body")
	ErrValidationFailed = New(ErrClient, "Validation failed")
	ErrPasswordTooLong  = New(ErrClient, "Password must not exceed 72 bytes")

	ErrInvalidCredentials = New(ErrUnauthorized, "Invalid username or password")
	ErrMissingToken       = New(ErrUnauthorized, "Missing token")
	ErrInvalidToken       = New(ErrUnauthorized, "Invalid token")

	ErrUserNotFound    = New(ErrNotFound, "User not found")
	ErrTagNotFound     = New(ErrNotFound, "Tag not found")
	ErrTypeNotFound    = New(ErrNotFound, "Type not found")
	ErrProductNotFound = New(ErrNotFound, "Product not found")
	ErrOrderNotFound   = New(ErrNotFound, "Order not found")

	ErrUsernameAlreadyExists    = New(ErrDuplicate, "Username already exists")
	ErrTagNameAlreadyExists     = New(ErrDuplicate, "Tag name already exists")
	ErrTypeNameAlreadyExists    = New(ErrDuplicate, "Type name already exists")
	ErrProductNameAlreadyExists = New(ErrDuplicate, "Product with this name already exists")

	ErrInvalidTags     = New(ErrInvalidReference, "One or more tags are invalid")
	ErrInvalidType     = New(ErrInvalidReference, "Invalid product type")
	ErrInvalidProducts = New(ErrInvalidReference, "One or more products are invalid")

	ErrTagInUse  = New(ErrConflict, "Tag is still referenced by products")
	ErrTypeInUse = New(ErrConflict, "Type is still referenced by products")
)

var errorMap = map[error]int{
	ErrInternalServer:   ErrStatusInternalServer,
	ErrClient:           ErrStatusClient,
	ErrUnauthorized:     ErrStatusUnauthorized,
	ErrNotFound:         ErrStatusNotFound,
	ErrDuplicate:        ErrStatusDuplicate,
	ErrInvalidReference: ErrStatusInvalidReference,
	ErrConflict:         ErrStatusConflict,
}

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

// New returns an error with its own message that still matches kind with errors.Is.
func New(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

func GetErrorStatusCode(err error) int {
	for kind, statusCode := range errorMap {
		if errors.Is(err, kind) {
			return statusCode
		}
	}

	return errorMap[ErrInternalServer]
}
