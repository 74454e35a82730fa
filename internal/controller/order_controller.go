package controller

import (
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/service"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/response"
	"github.com/labstack/echo/v4"
)

type OrderController struct {
	service service.OrderService
}

// CreateOrderController leaves order placement public; reading and managing
// orders requires a token.
func CreateOrderController(g *echo.Group, svc service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	oc := OrderController{
		service: svc,
	}

	g.POST("/orders", oc.AddOrder)
	g.GET("/orders", oc.GetOrders, isLoggedIn)
	g.GET("/orders/:id", oc.GetOrderByID, isLoggedIn)
	g.PUT("/orders/:id", oc.UpdateOrder, isLoggedIn)
	g.DELETE("/orders/:id", oc.DeleteOrder, isLoggedIn)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	if fields, err := bindRequest(e, &payload, "AddOrder"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.AddOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Order created successfully", resp)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	filter := pkgdto.Filter{}
	if fields, err := bindRequest(e, &filter, "GetOrders"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.GetOrders(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	resp, err := c.service.GetOrderByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) UpdateOrder(e echo.Context) error {
	payload := dto.UpdateOrderRequest{}
	if fields, err := bindRequest(e, &payload, "UpdateOrder"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	payload.ID = e.Param("id")
	resp, err := c.service.UpdateOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Order updated successfully", resp)
}

func (c *OrderController) DeleteOrder(e echo.Context) error {
	if err := c.service.DeleteOrder(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Order deleted successfully", nil)
}
