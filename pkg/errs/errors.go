package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrNotLoggedIn        = errors.New("Unauthorized access")
	ErrNotFound           = errors.New("Resource not found")
	ErrInvalidCredentials = errors.New("Invalid admin email or password. Use an existing account or register.")
	ErrMissingAdminFields = errors.New("Please fill name, email, and password.")
	ErrEmailAlreadyUsed   = errors.New("That email is already registered.")
	ErrLastAdmin          = errors.New("At least one admin required")
	ErrInvalidDiscount    = errors.New("Please enter a valid percentage between 0 and 100.")
	ErrMissingProduct     = errors.New("Please fill name, price, and quantity.")
	ErrInvalidPrice       = errors.New("Price must be a non-negative number")
	ErrInvalidQuantity    = errors.New("Quantity must be a non-negative whole number")
	ErrMissingCategory    = errors.New("Please choose a category or enter a new category name.")
	ErrOutOfStock         = errors.New("This product is out of stock")
	ErrInvalidOrder       = errors.New("Please fill your name, WhatsApp number, and a quantity of at least 1.")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusNotLoggedIn,
	ErrNotFound:           ErrStatusNotFound,
	ErrInvalidCredentials: ErrStatusUnauthorized,
	ErrMissingAdminFields: ErrStatusClient,
	ErrEmailAlreadyUsed:   ErrStatusConflict,
	ErrLastAdmin:          ErrStatusConflict,
	ErrInvalidDiscount:    ErrStatusClient,
	ErrMissingProduct:     ErrStatusClient,
	ErrInvalidPrice:       ErrStatusClient,
	ErrInvalidQuantity:    ErrStatusClient,
	ErrMissingCategory:    ErrStatusClient,
	ErrOutOfStock:         ErrStatusConflict,
	ErrInvalidOrder:       ErrStatusClient,
}

// GetErrorStatusCode maps a (possibly wrapped) sentinel error to its HTTP status.
// Unknown errors are treated as internal.
func GetErrorStatusCode(err error) int {
	for target, status := range errorMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return errorMap[ErrInternalServer]
}

// PublicMessage returns the message shown to the caller. Internal errors never
// leak their details.
func PublicMessage(err error) string {
	for target := range errorMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return ErrInternalServer.Error()
}
