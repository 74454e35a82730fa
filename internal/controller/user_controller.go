package controller

import (
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/service"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/response"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(g *echo.Group, svc service.UserService, isLoggedIn echo.MiddlewareFunc) {
	uc := UserController{
		service: svc,
	}

	g.POST("/users", uc.AddUser)
	g.POST("/users/login", uc.Login)
	g.GET("/users", uc.GetUsers, isLoggedIn)
	g.GET("/users/:id", uc.GetUserByID, isLoggedIn)
	g.PUT("/users/:id", uc.UpdateUser, isLoggedIn)
	g.DELETE("/users/:id", uc.DeleteUser, isLoggedIn)
}

func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	if fields, err := bindRequest(e, &payload, "AddUser"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "User created successfully", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if fields, err := bindRequest(e, &payload, "Login"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Login successful", resp)
}

func (c *UserController) GetUsers(e echo.Context) error {
	filter := pkgdto.Filter{}
	if fields, err := bindRequest(e, &filter, "GetUsers"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	resp, err := c.service.GetUsers(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) GetUserByID(e echo.Context) error {
	resp, err := c.service.GetUserByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) UpdateUser(e echo.Context) error {
	payload := dto.UpdateUserRequest{}
	if fields, err := bindRequest(e, &payload, "UpdateUser"); err != nil {
		return response.WriteErrorResponse(e, err, fields)
	}

	payload.ID = e.Param("id")
	resp, err := c.service.UpdateUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User updated successfully", resp)
}

func (c *UserController) DeleteUser(e echo.Context) error {
	if err := c.service.DeleteUser(e.Request().Context(), e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "User deleted successfully", nil)
}
