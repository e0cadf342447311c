package app

import (
	"net/http"
	"strings"

	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
)

func (s *IntegrationTestSuite) Test_Checkout() {
	type TestCase struct {
		Name           string
		Request        dto.CheckoutRequest
		ExpectedStatus int
		AssertResponse func(s *IntegrationTestSuite, resp dto.CheckoutResponse)
	}

	testCases := []TestCase{
		{
			Name:           "Valid request",
			Request:        dto.CheckoutRequest{ProductID: "p-6", Customer: "Ravi", Phone: "0770000000", Quantity: 3},
			ExpectedStatus: http.StatusOK,
			AssertResponse: func(s *IntegrationTestSuite, resp dto.CheckoutResponse) {
				s.True(strings.HasPrefix(resp.URL, "https://wa.me/0763913526?text=Hello%20SR%20SHOPPING"))
				s.Contains(resp.Message, "- Product: Casual White Sneakers\n- Quantity: 3")
			},
		},
		{
			Name:           "Unknown product",
			Request:        dto.CheckoutRequest{ProductID: "p-404", Customer: "Ravi", Phone: "0770000000"},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Name:           "Missing customer",
			Request:        dto.CheckoutRequest{ProductID: "p-6", Phone: "0770000000"},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			rec := s.request(http.MethodPost, "/api/v1/checkout", tc.Request, "")
			s.Equal(tc.ExpectedStatus, rec.Code)

			if tc.AssertResponse != nil {
				var resp dto.CheckoutResponse
				s.decode(rec, &resp)
				tc.AssertResponse(s, resp)
			}
		})
	}
}

func (s *IntegrationTestSuite) Test_CheckoutOutOfStock() {
	token := s.login("owner@srshopping.com")

	rec := s.request(http.MethodPatch, "/api/v1/admin/products/p-6", map[string]interface{}{"quantity": 0}, token)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPost, "/api/v1/checkout", dto.CheckoutRequest{ProductID: "p-6", Customer: "Ravi", Phone: "1"}, "")
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("This product is out of stock", s.decode(rec, nil).Message)
}
