package dto

import "github.com/Ihsas01/SR-SHOPPING/internal/domain"

// AdminResponse never carries the password.
type AdminResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

func NewAdminResponse(a domain.Admin) AdminResponse {
	return AdminResponse{Name: a.Name, Email: a.Email, Phone: a.Phone}
}

type AuthResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

type SessionResponse struct {
	Status domain.AuthStatus `json:"status"`
	Admin  *AdminResponse    `json:"admin"`
}
