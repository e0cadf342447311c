package domain

import "strings"

type Admin struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// HasEmail compares emails case-insensitively, the way logins and
// registrations identify an admin.
func (a Admin) HasEmail(email string) bool {
	return strings.EqualFold(a.Email, strings.TrimSpace(email))
}

type AuthStatus string

const (
	StatusLoggedOut AuthStatus = "logged_out"
	StatusLoggedIn  AuthStatus = "logged_in"
)

// MaxAdmins caps the admin list on registration; older admins beyond the cap
// are dropped.
const MaxAdmins = 3
