package controller

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// pathParam returns a path parameter with any percent-encoding removed.
// Category names routinely carry spaces and ampersands.
func pathParam(e echo.Context, name string) string {
	raw := e.Param(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
