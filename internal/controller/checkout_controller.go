package controller

import (
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	"github.com/Ihsas01/SR-SHOPPING/internal/service"
	"github.com/Ihsas01/SR-SHOPPING/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CheckoutController struct {
	service service.CheckoutService
}

func CreateCheckoutController(g *echo.Group, service service.CheckoutService) {
	c := CheckoutController{
		service: service,
	}
	g.POST("/checkout", c.Checkout)
}

func (c *CheckoutController) Checkout(e echo.Context) error {
	payload := dto.CheckoutRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Checkout").Msg("")
	}

	resp, err := c.service.Checkout(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
