package controller

import (
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/service"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/response"
	"github.com/labstack/echo/v4"
)

type TagController struct {
	service service.TagService
}

func CreateTagController(g *echo.Group, svc service.TagService, isLoggedIn echo.MiddlewareFunc) {
	tc := TagController{
		service: svc,
	}

	g.POST("/tags", tc.AddTag, isLoggedIn)
	g.GET("/tags", tc.GetTags)
	g.GET("/tags/:id", tc.GetTagByID)
	g.PUT("/tags/:id", tc.UpdateTag, isLoggedIn)
	g.DELETE("/tags/:id", tc.DeleteTag, isLoggedIn)
}

func (c *TagController) AddTag(e echo.Context) error {
	payload := dto.TagRequest{}
	if fields, err := bindRequest(e, &payload, "AddTag"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.AddTag(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Tag created successfully", resp)
}

func (c *TagController) GetTags(e echo.Context) error {
	filter := pkgdto.Filter{}
	if fields, err := bindRequest(e, &filter, "GetTags"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.GetTags(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *TagController) GetTagByID(e echo.Context) error {
	resp, err := c.service.GetTagByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *TagController) UpdateTag(e echo.Context) error {
	payload := dto.UpdateTagRequest{}
	if fields, err := bindRequest(e, &payload, "UpdateTag"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	payload.ID = e.Param("id")
	resp, err := c.service.UpdateTag(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Tag updated successfully", resp)
}

func (c *TagController) DeleteTag(e echo.Context) error {
	if err := c.service.DeleteTag(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Tag deleted successfully", nil)
}
