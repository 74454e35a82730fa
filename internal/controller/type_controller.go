package controller

import (
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/service"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/response"
	"github.com/labstack/echo/v4"
)

type TypeController struct {
	service service.TypeService
}

func CreateTypeController(g *echo.Group, svc service.TypeService, isLoggedIn echo.MiddlewareFunc) {
	tc := TypeController{
		service: svc,
	}

	g.POST("/types", tc.AddType, isLoggedIn)
	g.GET("/types", tc.GetTypes)
	g.GET("/types/:id", tc.GetTypeByID)
	g.PUT("/types/:id", tc.UpdateType, isLoggedIn)
	g.DELETE("/types/:id", tc.DeleteType, isLoggedIn)
}

func (c *TypeController) AddType(e echo.Context) error {
	payload := dto.TypeRequest{}
	if fields, err := bindRequest(e, &payload, "AddType"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.AddType(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Type created successfully", resp)
}

func (c *TypeController) GetTypes(e echo.Context) error {
	filter := pkgdto.Filter{}
	if fields, err := bindRequest(e, &filter, "GetTypes"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.GetTypes(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *TypeController) GetTypeByID(e echo.Context) error {
	resp, err := c.service.GetTypeByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *TypeController) UpdateType(e echo.Context) error {
	payload := dto.UpdateTypeRequest{}
	if fields, err := bindRequest(e, &payload, "UpdateType"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	payload.ID = e.Param("id")
	resp, err := c.service.UpdateType(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Type updated successfully", resp)
}

func (c *TypeController) DeleteType(e echo.Context) error {
	if err := c.service.DeleteType(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Type deleted successfully", nil)
}
