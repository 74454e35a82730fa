package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/koffe-supply/koffe-be/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	return writeSuccess(c, http.StatusOK, message, data)
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	return writeSuccess(c, http.StatusCreated, message, data)
}

func writeSuccess(c echo.Context, statusCode int, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Data = data
	resp.Message = message

	return c.JSON(statusCode, resp)
}

// WriteErrorResponse maps err to its status code. Server-side failures are
// logged and answered with a generic message.
func WriteErrorResponse(c echo.Context, err error, fields interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = fields

	if statusCode == http.StatusInternalServerError {
		log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "WriteErrorResponse").
			Str("method", c.Request().Method).Str("path", c.Path()).Msg("")
		resp.Message = errs.ErrInternalServer.Error()
	}

	return c.JSON(statusCode, resp)
}

// HTTPErrorHandler renders errors that escape handlers, such as unknown routes,
// in the same envelope as handler errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		resp := ErrorResponse{Status: "error", Message: fmt.Sprint(he.Message)}
		if jsonErr := c.JSON(he.Code, resp); jsonErr != nil {
			log.Ctx(c.Request().Context()).Error().Err(jsonErr).Str("component", "HTTPErrorHandler").Msg("")
		}
		return
	}

	if writeErr := WriteErrorResponse(c, err, nil); writeErr != nil {
		log.Ctx(c.Request().Context()).Error().Err(writeErr).Str("component", "HTTPErrorHandler").Msg("")
	}
}
