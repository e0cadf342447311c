package app

import (
	"net/http"
	"strings"

	"github.com/Ihsas01/SR-SHOPPING/internal/dialog"
	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	"github.com/labstack/echo/v4"
)

func (s *IntegrationTestSuite) Test_Ping() {
	rec := s.request(http.MethodGet, "/api/v1/ping", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World!", s.decode(rec, nil).Message)
}

func (s *IntegrationTestSuite) Test_GetProducts() {
	type TestCase struct {
		Name           string
		Query          string
		ExpectedStatus int
		AssertResponse func(s *IntegrationTestSuite, resp dto.VisibleProductsResponse)
	}

	testCases := []TestCase{
		{
			Name:           "Default page is capped",
			Query:          "",
			ExpectedStatus: http.StatusOK,
			AssertResponse: func(s *IntegrationTestSuite, resp dto.VisibleProductsResponse) {
				s.Equal(8, resp.Total)
				s.Len(resp.Others, 8)
			},
		},
		{
			Name:           "Show all",
			Query:          "?show_all=true",
			ExpectedStatus: http.StatusOK,
			AssertResponse: func(s *IntegrationTestSuite, resp dto.VisibleProductsResponse) {
				s.Equal(12, resp.Total)
			},
		},
		{
			Name:           "Search by price",
			Query:          "?q=54.5",
			ExpectedStatus: http.StatusOK,
			AssertResponse: func(s *IntegrationTestSuite, resp dto.VisibleProductsResponse) {
				s.Require().Len(resp.Others, 1)
				s.Equal("p-2", resp.Others[0].ID)
			},
		},
		{
			Name:           "Category filter",
			Query:          "?category=Shoes",
			ExpectedStatus: http.StatusOK,
			AssertResponse: func(s *IntegrationTestSuite, resp dto.VisibleProductsResponse) {
				s.Require().Len(resp.Others, 1)
				s.Equal("p-6", resp.Others[0].ID)
			},
		},
		{
			Name:           "All category",
			Query:          "?category=All&q=items",
			ExpectedStatus: http.StatusOK,
			AssertResponse: func(s *IntegrationTestSuite, resp dto.VisibleProductsResponse) {
				s.Equal(7, resp.Total)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			rec := s.request(http.MethodGet, "/api/v1/products"+tc.Query, nil, "")
			s.Equal(tc.ExpectedStatus, rec.Code)

			var resp dto.VisibleProductsResponse
			s.decode(rec, &resp)
			if tc.AssertResponse != nil {
				tc.AssertResponse(s, resp)
			}
		})
	}
}

func (s *IntegrationTestSuite) Test_PublicCatalogViews() {
	rec := s.request(http.MethodGet, "/api/v1/products/featured", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	var featured []domain.Product
	s.decode(rec, &featured)
	s.Len(featured, 5)

	rec = s.request(http.MethodGet, "/api/v1/categories", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	var categories []dto.CategoryResponse
	s.decode(rec, &categories)
	s.Len(categories, 12)

	rec = s.request(http.MethodGet, "/api/v1/categories/Study%20%26%20school%20items/products", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	var products []domain.Product
	s.decode(rec, &products)
	s.Require().Len(products, 1)
	s.Equal("p-5", products[0].ID)

	rec = s.request(http.MethodGet, "/api/v1/categories/Nowhere/products", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *IntegrationTestSuite) Test_AddProduct() {
	token := s.login("admin@srshopping.com")

	type TestCase struct {
		Name           string
		Request        dto.ProductRequest
		ExpectedStatus int
		ExpectedMsg    string
	}

	testCases := []TestCase{
		{
			Name:           "Missing quantity",
			Request:        dto.ProductRequest{Name: "Rake", Price: "10", Category: "Home items"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedMsg:    "Please fill name, price, and quantity.",
		},
		{
			Name:           "Negative price",
			Request:        dto.ProductRequest{Name: "Rake", Price: -3, Quantity: 1, Category: "Home items"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedMsg:    "Price must be a non-negative number",
		},
		{
			Name:           "Valid request with new category",
			Request:        dto.ProductRequest{Name: "Rake", Price: 10, Quantity: 3, Category: domain.NewCategorySelector, NewCategoryName: "Garden"},
			ExpectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			rec := s.request(http.MethodPost, "/api/v1/admin/products/preview", tc.Request, token)
			s.Equal(tc.ExpectedStatus, rec.Code)

			rec = s.request(http.MethodPost, "/api/v1/admin/products", tc.Request, token)
			s.Equal(tc.ExpectedStatus, rec.Code)
			if tc.ExpectedMsg != "" {
				s.Equal(tc.ExpectedMsg, s.decode(rec, nil).Message)
			}
		})
	}

	snap := s.app.Store.Snapshot()
	s.Len(snap.Products, 13)
	s.Equal("Rake", snap.Products[0].Name)
	s.Equal("Garden", snap.Categories[0].Name)
}

func (s *IntegrationTestSuite) Test_QuickUpdateAndEdit() {
	token := s.login("admin@srshopping.com")

	rec := s.request(http.MethodPatch, "/api/v1/admin/products/p-1", map[string]interface{}{"price": "", "quantity": "7"}, token)
	s.Equal(http.StatusOK, rec.Code)
	var product domain.Product
	s.decode(rec, &product)
	s.Equal(18.99, product.Price)
	s.Equal(7, product.Quantity)

	rec = s.request(http.MethodPut, "/api/v1/admin/products/p-1", map[string]interface{}{"name": "", "price": "1", "quantity": "1"}, token)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPut, "/api/v1/admin/products/p-1", map[string]interface{}{
		"name": "Pillow", "price": 20, "quantity": 2, "category": "Retired", "image": "x.png",
	}, token)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/v1/admin/products/orphaned", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	var orphans []domain.Product
	s.decode(rec, &orphans)
	s.Require().Len(orphans, 1)
	s.Equal("Pillow", orphans[0].Name)

	rec = s.request(http.MethodDelete, "/api/v1/admin/products/p-1", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	rec = s.request(http.MethodDelete, "/api/v1/admin/products/p-1", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	s.Len(s.app.Store.Snapshot().Products, 11)
}

func (s *IntegrationTestSuite) Test_DeleteCategoryDialog() {
	token := s.login("admin@srshopping.com")
	path := "/api/v1/admin/categories/Study%20%26%20school%20items"

	rec := s.request(http.MethodGet, path+"/delete", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	var prompt dialog.Prompt
	s.decode(rec, &prompt)
	s.Equal(dialog.KindConfirm, prompt.Kind)
	s.Equal(`Delete category "Study & school items"? Products in this category will become uncategorized.`, prompt.Message)

	rec = s.request(http.MethodDelete, path, dialog.Confirmation{Confirmed: false}, token)
	s.Equal(http.StatusOK, rec.Code)
	var result dialog.Result
	s.decode(rec, &result)
	s.Equal(dialog.OutcomeCancelled, result.Outcome)
	s.Len(s.app.Store.Snapshot().Categories, 12)

	rec = s.request(http.MethodDelete, path, dialog.Confirmation{Confirmed: true}, token)
	s.Equal(http.StatusOK, rec.Code)
	s.decode(rec, &result)
	s.Equal(dialog.OutcomeApplied, result.Outcome)
	s.Len(s.app.Store.Snapshot().Categories, 11)
	s.Len(s.app.Store.Snapshot().OrphanedProducts(), 1)
}

func (s *IntegrationTestSuite) Test_ToggleCategory() {
	token := s.login("admin@srshopping.com")

	rec := s.request(http.MethodPost, "/api/v1/admin/categories/Shoes/toggle", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	var resp dto.ToggleCategoryResponse
	s.decode(rec, &resp)
	s.True(resp.Expanded)

	rec = s.request(http.MethodPost, "/api/v1/admin/categories/Shoes/toggle", nil, token)
	s.decode(rec, &resp)
	s.False(resp.Expanded)
}

func (s *IntegrationTestSuite) Test_SetDiscount() {
	token := s.login("admin@srshopping.com")

	type TestCase struct {
		Name            string
		Answer          dialog.Answer
		ExpectedStatus  int
		ExpectedPercent float64
	}

	testCases := []TestCase{
		{Name: "Valid request", Answer: dialog.Answer{Value: "25"}, ExpectedStatus: http.StatusOK, ExpectedPercent: 25},
		{Name: "Cancelled", Answer: dialog.Answer{Value: "90", Cancelled: true}, ExpectedStatus: http.StatusOK, ExpectedPercent: 25},
		{Name: "Out of range", Answer: dialog.Answer{Value: "150"}, ExpectedStatus: http.StatusBadRequest, ExpectedPercent: 25},
		{Name: "Blank removes", Answer: dialog.Answer{Value: ""}, ExpectedStatus: http.StatusOK, ExpectedPercent: 0},
		{Name: "Hex literal", Answer: dialog.Answer{Value: "0x0A"}, ExpectedStatus: http.StatusOK, ExpectedPercent: 10},
		{Name: "Zero removes", Answer: dialog.Answer{Value: "0"}, ExpectedStatus: http.StatusOK, ExpectedPercent: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			rec := s.request(http.MethodPut, "/api/v1/admin/products/p-5/discount", tc.Answer, token)
			s.Equal(tc.ExpectedStatus, rec.Code)
			s.Equal(tc.ExpectedPercent, s.app.Store.Snapshot().Discounts.Percent("p-5"))
		})
	}

	rec := s.request(http.MethodGet, "/api/v1/admin/products/p-5/discount", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	var prompt dto.DiscountPromptResponse
	s.decode(rec, &prompt)
	s.Equal("0", prompt.Prompt.Default)

	rec = s.request(http.MethodGet, "/api/v1/admin/products/missing/discount", nil, token)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *IntegrationTestSuite) Test_StatsAndExport() {
	token := s.login("admin@srshopping.com")

	rec := s.request(http.MethodGet, "/api/v1/admin/stats", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	var stats dto.StatsResponse
	s.decode(rec, &stats)
	s.Equal(12, stats.Products)
	s.Equal(3, stats.Admins)

	rec = s.request(http.MethodGet, "/api/v1/admin/products/export", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	s.True(strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/csv"))
	s.True(strings.HasPrefix(rec.Body.String(), "id,name,category,price"))
}
