package app

import (
	"context"
	"net/http"

	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	"github.com/Ihsas01/SR-SHOPPING/internal/repository"
)

func (s *IntegrationTestSuite) Test_AdminLogin() {
	type TestCase struct {
		Name           string
		Request        dto.LoginRequest
		ExpectedStatus int
		AssertResponse func(s *IntegrationTestSuite, env envelope)
	}

	invalid := "Invalid admin email or password. Use an existing account or register."

	testCases := []TestCase{
		{
			Name:           "Valid request",
			Request:        dto.LoginRequest{Email: "  Owner@SRshopping.com", Password: "admin123"},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "Wrong password",
			Request:        dto.LoginRequest{Email: "owner@srshopping.com", Password: "Admin123"},
			ExpectedStatus: http.StatusUnauthorized,
			AssertResponse: func(s *IntegrationTestSuite, env envelope) {
				s.Equal(invalid, env.Message)
			},
		},
		{
			Name:           "Unknown email",
			Request:        dto.LoginRequest{Email: "ghost@srshopping.com", Password: "admin123"},
			ExpectedStatus: http.StatusUnauthorized,
			AssertResponse: func(s *IntegrationTestSuite, env envelope) {
				s.Equal(invalid, env.Message)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			rec := s.request(http.MethodPost, "/api/v1/admin/login", tc.Request, "")
			s.Equal(tc.ExpectedStatus, rec.Code)

			env := s.decode(rec, nil)
			if tc.AssertResponse != nil {
				tc.AssertResponse(s, env)
			}
		})
	}
}

func (s *IntegrationTestSuite) Test_AdminRegister() {
	type TestCase struct {
		Name           string
		Request        dto.RegisterRequest
		ExpectedStatus int
		ExpectedMsg    string
	}

	testCases := []TestCase{
		{
			Name:           "Missing email",
			Request:        dto.RegisterRequest{Name: "Nia", Password: "pw"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedMsg:    "Please fill name, email, and password.",
		},
		{
			Name:           "Duplicate email",
			Request:        dto.RegisterRequest{Name: "Nia", Email: "Admin@SRShopping.com", Password: "pw"},
			ExpectedStatus: http.StatusConflict,
			ExpectedMsg:    "That email is already registered.",
		},
		{
			Name:           "Valid request",
			Request:        dto.RegisterRequest{Name: "Nia", Email: "Nia@Example.com", Password: "pw", Phone: "077"},
			ExpectedStatus: http.StatusOK,
			ExpectedMsg:    "Registration successful. You are logged in.",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			rec := s.request(http.MethodPost, "/api/v1/admin/register", tc.Request, "")
			s.Equal(tc.ExpectedStatus, rec.Code)
			s.Equal(tc.ExpectedMsg, s.decode(rec, nil).Message)
		})
	}

	rec := s.request(http.MethodGet, "/api/v1/admin/session", nil, "")
	var session dto.SessionResponse
	s.decode(rec, &session)
	s.Equal(domain.StatusLoggedIn, session.Status)
	s.Require().NotNil(session.Admin)
	s.Equal("nia@example.com", session.Admin.Email)
	s.Len(s.app.Store.Snapshot().Admins, domain.MaxAdmins)
}

func (s *IntegrationTestSuite) Test_AdminRoutesRequireCurrentSession() {
	rec := s.request(http.MethodGet, "/api/v1/admin/stats", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.request(http.MethodGet, "/api/v1/admin/stats", nil, "not-a-token")
	s.Equal(http.StatusUnauthorized, rec.Code)

	first := s.login("owner@srshopping.com")
	rec = s.request(http.MethodGet, "/api/v1/admin/stats", nil, first)
	s.Equal(http.StatusOK, rec.Code)

	second := s.login("admin@srshopping.com")
	rec = s.request(http.MethodGet, "/api/v1/admin/stats", nil, first)
	s.Equal(http.StatusUnauthorized, rec.Code)
	rec = s.request(http.MethodGet, "/api/v1/admin/stats", nil, second)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPost, "/api/v1/admin/logout", nil, second)
	s.Equal(http.StatusOK, rec.Code)
	rec = s.request(http.MethodGet, "/api/v1/admin/stats", nil, second)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *IntegrationTestSuite) Test_DeleteAdmin() {
	token := s.login("owner@srshopping.com")

	rec := s.request(http.MethodGet, "/api/v1/admin/admins", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "admin123")
	var admins []dto.AdminResponse
	s.decode(rec, &admins)
	s.Len(admins, 3)

	rec = s.request(http.MethodDelete, "/api/v1/admin/admins/admin@srshopping.com", nil, token)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodDelete, "/api/v1/admin/admins/owner@srshopping.com", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	s.Nil(s.app.Store.Snapshot().Session)

	rec = s.request(http.MethodGet, "/api/v1/admin/admins", nil, token)
	s.Equal(http.StatusUnauthorized, rec.Code)

	token = s.login("Mohamedihsas001@gmail.com")
	rec = s.request(http.MethodDelete, "/api/v1/admin/admins/Mohamedihsas001@gmail.com", nil, token)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("At least one admin required", s.decode(rec, nil).Message)
}

func (s *IntegrationTestSuite) Test_MutationsArePersisted() {
	token := s.login("owner@srshopping.com")

	rec := s.request(http.MethodDelete, "/api/v1/admin/products/p-9", nil, token)
	s.Equal(http.StatusOK, rec.Code)

	reloaded := repository.CreateNewStateRepository(s.app.kv).LoadState(context.Background())
	s.Len(reloaded.Products, 11)
	s.Require().NotNil(reloaded.Session)
	s.Equal("owner@srshopping.com", reloaded.Session.Email)
}
