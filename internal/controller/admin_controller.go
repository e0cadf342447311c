package controller

import (
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	"github.com/Ihsas01/SR-SHOPPING/internal/service"
	"github.com/Ihsas01/SR-SHOPPING/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	service service.AdminService
}

func CreateAdminController(g *echo.Group, service service.AdminService, isAdmin ...echo.MiddlewareFunc) {
	c := AdminController{
		service: service,
	}
	g.POST("/admin/login", c.Login)
	g.POST("/admin/register", c.Register)
	g.GET("/admin/session", c.GetSession)

	g.POST("/admin/logout", c.Logout, isAdmin...)
	g.GET("/admin/admins", c.GetAdmins, isAdmin...)
	g.DELETE("/admin/admins/:email", c.DeleteAdmin, isAdmin...)
}

func (c *AdminController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AdminController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Registration successful. You are logged in.", resp)
}

func (c *AdminController) GetSession(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.service.GetSession(e.Request().Context()))
}

func (c *AdminController) Logout(e echo.Context) error {
	err := c.service.Logout(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *AdminController) GetAdmins(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.service.GetAdmins(e.Request().Context()))
}

func (c *AdminController) DeleteAdmin(e echo.Context) error {
	err := c.service.DeleteAdmin(e.Request().Context(), pathParam(e, "email"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
