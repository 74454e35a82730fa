package controller

import (
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/service"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/response"
	"github.com/labstack/echo/v4"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, svc service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	pc := ProductController{
		service: svc,
	}

	g.POST("/products", pc.AddProduct, isLoggedIn)
	g.GET("/products", pc.GetProducts)
	g.GET("/products/:id", pc.GetProductByID)
	g.PUT("/products/:id", pc.UpdateProduct, isLoggedIn)
	g.DELETE("/products/:id", pc.DeleteProduct, isLoggedIn)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if fields, err := bindRequest(e, &payload, "AddProduct"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product created successfully", resp)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if fields, err := bindRequest(e, &filter, "GetProducts"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	resp, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.UpdateProductRequest{}
	if fields, err := bindRequest(e, &payload, "UpdateProduct"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	payload.ID = e.Param("id")
	resp, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product updated successfully", resp)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	if err := c.service.DeleteProduct(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted successfully", nil)
}
