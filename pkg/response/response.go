package response

import (
	"net/http"

	"github.com/Ihsas01/SR-SHOPPING/pkg/errs"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Data = data
	resp.Message = message

	return c.JSON(http.StatusOK, resp)
}

func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = errs.PublicMessage(err)
	resp.Errors = errors

	return c.JSON(statusCode, resp)
}
