// Package state owns the storefront's application state. The only way to
// change it is through the named mutations on Store; every committed change
// is handed to the subscribers (persistence, events, metrics) in order.
package state

import (
	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
)

// Slice names an independently persisted part of the state.
type Slice string

const (
	SliceProducts   Slice = "products"
	SliceCategories Slice = "categories"
	SliceDiscounts  Slice = "discounts"
	SliceAdmins     Slice = "admins"
	SliceSession    Slice = "session"
)

type State struct {
	Products   []domain.Product
	Categories []domain.Category
	Discounts  domain.Discounts
	Admins     []domain.Admin
	// Session is the logged-in admin, nil when logged out.
	Session *domain.Admin
	// Expanded tracks which categories are expanded in the admin panel. It is
	// never persisted.
	Expanded map[string]bool
}

// Defaults is the seed state used on first start.
func Defaults() State {
	return State{
		Products:   domain.DefaultProducts(),
		Categories: domain.DefaultCategories(),
		Discounts:  domain.Discounts{},
		Admins:     domain.DefaultAdmins(),
		Expanded:   map[string]bool{},
	}
}

func (s State) Clone() State {
	out := State{
		Products:   append([]domain.Product(nil), s.Products...),
		Categories: append([]domain.Category(nil), s.Categories...),
		Discounts:  s.Discounts.Clone(),
		Admins:     append([]domain.Admin(nil), s.Admins...),
		Expanded:   make(map[string]bool, len(s.Expanded)),
	}
	if s.Session != nil {
		session := *s.Session
		out.Session = &session
	}
	for k, v := range s.Expanded {
		out.Expanded[k] = v
	}
	return out
}

func (s State) Status() domain.AuthStatus {
	if s.Session == nil {
		return domain.StatusLoggedOut
	}
	return domain.StatusLoggedIn
}

func (s State) findProduct(id string) int {
	for i, p := range s.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s State) findCategory(name string) int {
	for i, c := range s.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (s State) findAdmin(email string) int {
	for i, a := range s.Admins {
		if a.HasEmail(email) {
			return i
		}
	}
	return -1
}

func (s State) Product(id string) (domain.Product, bool) {
	if i := s.findProduct(id); i >= 0 {
		return s.Products[i], true
	}
	return domain.Product{}, false
}

func (s State) Category(name string) (domain.Category, bool) {
	if i := s.findCategory(name); i >= 0 {
		return s.Categories[i], true
	}
	return domain.Category{}, false
}

func (s State) Admin(email string) (domain.Admin, bool) {
	if i := s.findAdmin(email); i >= 0 {
		return s.Admins[i], true
	}
	return domain.Admin{}, false
}
