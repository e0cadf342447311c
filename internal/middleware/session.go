package middleware

import (
	"net/http"

	"github.com/Ihsas01/SR-SHOPPING/internal/service"
	"github.com/Ihsas01/SR-SHOPPING/pkg/response"
	"github.com/Ihsas01/SR-SHOPPING/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// IsLoggedIn validates the bearer token and stores it under "user".
func IsLoggedIn(secret string) echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(secret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, response.ErrorResponse{
				Status:  "error",
				Message: "Invalid or expired JWT",
			})
		},
	})
}

// RequireSession lets a request through only when its token belongs to the
// admin of the current session. Must run after IsLoggedIn.
func RequireSession(svc service.AdminService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := svc.Authorize(c.Request().Context(), utils.ExtractTokenAdmin(c))
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}
			return next(c)
		}
	}
}
