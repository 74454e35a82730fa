package controller

import (
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"github.com/koffe-supply/koffe-be/pkg/response"
	"github.com/koffe-supply/koffe-be/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// bindRequest binds the body into payload and runs the registered validator.
// Validation failures come back as per-field errors for the response body.
func bindRequest(e echo.Context, payload interface{}, component string) ([]response.ValidationError, error) {
	if err := e.Bind(payload); err != nil {
		log.Ctx(e.Request().Context()).Info().Err(err).Str("component", component).Msg("failed to bind request")
		return nil, errs.ErrInvalidPayload
	}

	if err := e.Validate(payload); err != nil {
		if fields, ok := utils.ValidationErrors(err); ok {
			return fields, errs.ErrValidationFailed
		}
		return nil, err
	}

	return nil, nil
}
