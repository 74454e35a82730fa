package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/koffe-supply/koffe-be/pkg/response"
)

type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validator: v}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// ValidationErrors flattens validator failures into the response shape; ok is
// false when err did not come from the validator.
func ValidationErrors(err error) (fields []response.ValidationError, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	for _, fe := range verrs {
		fields = append(fields, response.ValidationError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
		})
	}

	return fields, true
}
