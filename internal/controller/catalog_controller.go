package controller

import (
	"net/http"

	"github.com/Ihsas01/SR-SHOPPING/internal/dialog"
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	"github.com/Ihsas01/SR-SHOPPING/internal/service"
	pkgdto "github.com/Ihsas01/SR-SHOPPING/pkg/dto"
	"github.com/Ihsas01/SR-SHOPPING/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	service service.CatalogService
}

func CreateCatalogController(g *echo.Group, service service.CatalogService, isAdmin ...echo.MiddlewareFunc) {
	c := CatalogController{
		service: service,
	}
	g.GET("/products", c.GetProducts)
	g.GET("/products/featured", c.GetFeaturedProducts)
	g.GET("/categories", c.GetCategories)
	g.GET("/categories/:name/products", c.GetCategoryProducts)

	g.GET("/admin/stats", c.GetStats, isAdmin...)
	g.POST("/admin/products/preview", c.PreviewProduct, isAdmin...)
	g.POST("/admin/products", c.AddProduct, isAdmin...)
	g.GET("/admin/products/orphaned", c.GetOrphanedProducts, isAdmin...)
	g.GET("/admin/products/export", c.ExportProducts, isAdmin...)
	g.PATCH("/admin/products/:id", c.QuickUpdateProduct, isAdmin...)
	g.PUT("/admin/products/:id", c.EditProduct, isAdmin...)
	g.DELETE("/admin/products/:id", c.DeleteProduct, isAdmin...)
	g.GET("/admin/products/:id/discount", c.DiscountPrompt, isAdmin...)
	g.PUT("/admin/products/:id/discount", c.SetDiscount, isAdmin...)
	g.GET("/admin/categories/:name/delete", c.DeleteCategoryPrompt, isAdmin...)
	g.DELETE("/admin/categories/:name", c.DeleteCategory, isAdmin...)
	g.POST("/admin/categories/:name/toggle", c.ToggleCategory, isAdmin...)
}

func (c *CatalogController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.service.GetVisibleProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetFeaturedProducts(e echo.Context) error {
	resp, err := c.service.GetFeaturedProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetCategoryProducts(e echo.Context) error {
	resp, err := c.service.GetCategoryProducts(e.Request().Context(), pathParam(e, "name"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetStats(e echo.Context) error {
	resp, err := c.service.GetStats(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetOrphanedProducts(e echo.Context) error {
	resp, err := c.service.GetOrphanedProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) ExportProducts(e echo.Context) error {
	data, err := c.service.ExportProductsCSV(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	e.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sr-shopping-products.csv"`)
	return e.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (c *CatalogController) PreviewProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PreviewProduct").Msg("")
	}

	resp, err := c.service.PreviewProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	resp, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product added", resp)
}

func (c *CatalogController) QuickUpdateProduct(e echo.Context) error {
	payload := dto.QuickUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "QuickUpdateProduct").Msg("")
	}

	resp, err := c.service.QuickUpdateProduct(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) EditProduct(e echo.Context) error {
	payload := dto.ProductEditRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "EditProduct").Msg("")
	}

	resp, err := c.service.EditProduct(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CatalogController) DiscountPrompt(e echo.Context) error {
	resp, err := c.service.DiscountPrompt(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) SetDiscount(e echo.Context) error {
	payload := dialog.Answer{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SetDiscount").Msg("")
	}

	resp, err := c.service.SetDiscount(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) DeleteCategoryPrompt(e echo.Context) error {
	resp, err := c.service.DeleteCategoryPrompt(e.Request().Context(), pathParam(e, "name"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) DeleteCategory(e echo.Context) error {
	payload := dialog.Confirmation{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCategory").Msg("")
	}

	resp, err := c.service.DeleteCategory(e.Request().Context(), pathParam(e, "name"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) ToggleCategory(e echo.Context) error {
	resp, err := c.service.ToggleCategory(e.Request().Context(), pathParam(e, "name"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
