package state

import (
	"context"
	"strings"
	"sync"

	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
	"github.com/Ihsas01/SR-SHOPPING/pkg/errs"
)

// Change describes one committed mutation.
type Change struct {
	Event  string
	Slices []Slice
	// Subject is the entity the mutation was about, used as the event payload.
	Subject interface{}
}

func (c Change) Touches(slice Slice) bool {
	for _, s := range c.Slices {
		if s == slice {
			return true
		}
	}
	return false
}

// Subscriber reacts to a committed change. It runs synchronously, in
// registration order, before the next mutation can start.
type Subscriber func(ctx context.Context, snapshot State, change Change)

type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []Subscriber
}

func NewStore(initial State) *Store {
	initial = initial.Clone()
	if initial.Discounts == nil {
		initial.Discounts = domain.Discounts{}
	}
	return &Store{state: initial}
}

func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a copy of the current state that is safe to read and keep.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// commit applies fn to a working copy. An error discards the copy. A change
// without slices is applied but not broadcast.
func (s *Store) commit(ctx context.Context, fn func(st *State) (Change, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.Clone()
	change, err := fn(&working)
	if err != nil {
		return err
	}
	s.state = working

	if len(change.Slices) == 0 {
		return nil
	}
	for _, sub := range s.subscribers {
		sub(ctx, s.state.Clone(), change)
	}
	return nil
}

// AddProduct prepends p. When newCategory is set and no category with that
// name exists yet, it is prepended to the categories first. Featured is
// derived from the product count before insertion.
func (s *Store) AddProduct(ctx context.Context, p domain.Product, newCategory *domain.Category) (domain.Product, error) {
	err := s.commit(ctx, func(st *State) (Change, error) {
		if st.findProduct(p.ID) >= 0 {
			return Change{}, errs.ErrClient
		}
		slices := []Slice{SliceProducts}
		if newCategory != nil {
			p.Category = newCategory.Name
			if st.findCategory(newCategory.Name) < 0 {
				st.Categories = append([]domain.Category{*newCategory}, st.Categories...)
				slices = []Slice{SliceCategories, SliceProducts}
			}
		}
		p.Featured = len(st.Products)%2 == 0
		st.Products = append([]domain.Product{p}, st.Products...)
		return Change{Event: "add_product", Slices: slices, Subject: p}, nil
	})
	return p, err
}

// ProductPatch carries the fields of a partial product update; nil fields
// are left alone.
type ProductPatch struct {
	Name     *string
	Price    *float64
	Quantity *int
	Category *string
	Image    *string
}

// UpdateProduct applies patch to the product with the given id. An unknown id
// is a no-op and reports false.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (updated domain.Product, found bool, err error) {
	err = s.commit(ctx, func(st *State) (Change, error) {
		i := st.findProduct(id)
		if i < 0 {
			return Change{}, nil
		}
		p := st.Products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Quantity != nil {
			p.Quantity = *patch.Quantity
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		st.Products[i] = p
		updated, found = p, true
		return Change{Event: "update_product", Slices: []Slice{SliceProducts}, Subject: p}, nil
	})
	return updated, found, err
}

// DeleteProduct removes a product. Its discount entry, if any, stays behind
// and is unreachable.
func (s *Store) DeleteProduct(ctx context.Context, id string) (found bool, err error) {
	err = s.commit(ctx, func(st *State) (Change, error) {
		i := st.findProduct(id)
		if i < 0 {
			return Change{}, nil
		}
		removed := st.Products[i]
		st.Products = append(st.Products[:i], st.Products[i+1:]...)
		found = true
		return Change{Event: "delete_product", Slices: []Slice{SliceProducts}, Subject: removed}, nil
	})
	return found, err
}

// DeleteCategory removes a category and its expanded flag. Products that
// referenced it are kept and become uncategorized.
func (s *Store) DeleteCategory(ctx context.Context, name string) (found bool, err error) {
	err = s.commit(ctx, func(st *State) (Change, error) {
		delete(st.Expanded, name)
		i := st.findCategory(name)
		if i < 0 {
			return Change{}, nil
		}
		removed := st.Categories[i]
		st.Categories = append(st.Categories[:i], st.Categories[i+1:]...)
		found = true
		return Change{Event: "delete_category", Slices: []Slice{SliceCategories}, Subject: removed}, nil
	})
	return found, err
}

// ToggleCategory flips the expanded flag of a category and returns the new
// value.
func (s *Store) ToggleCategory(ctx context.Context, name string) (expanded bool) {
	_ = s.commit(ctx, func(st *State) (Change, error) {
		expanded = !st.Expanded[name]
		st.Expanded[name] = expanded
		return Change{}, nil
	})
	return expanded
}

// SetDiscount stores percent for a product; 0 removes the entry. The caller
// validates the range.
func (s *Store) SetDiscount(ctx context.Context, productID string, percent float64) error {
	return s.commit(ctx, func(st *State) (Change, error) {
		if st.findProduct(productID) < 0 {
			return Change{}, errs.ErrNotFound
		}
		if percent == 0 {
			delete(st.Discounts, productID)
		} else {
			st.Discounts[productID] = percent
		}
		return Change{
			Event:   "set_discount",
			Slices:  []Slice{SliceDiscounts},
			Subject: map[string]interface{}{"product_id": productID, "percent": percent},
		}, nil
	})
}

// Login starts a session for the admin whose email matches case-insensitively
// and whose password matches exactly.
func (s *Store) Login(ctx context.Context, email, password string) (admin domain.Admin, err error) {
	err = s.commit(ctx, func(st *State) (Change, error) {
		i := st.findAdmin(email)
		if i < 0 || st.Admins[i].Password != password {
			return Change{}, errs.ErrInvalidCredentials
		}
		admin = st.Admins[i]
		session := admin
		st.Session = &session
		return Change{Event: "login", Slices: []Slice{SliceSession}, Subject: admin.Email}, nil
	})
	return admin, err
}

// RegisterAdmin prepends admin, keeps only the MaxAdmins most recent admins
// and logs the new admin in.
func (s *Store) RegisterAdmin(ctx context.Context, admin domain.Admin) error {
	return s.commit(ctx, func(st *State) (Change, error) {
		if st.findAdmin(admin.Email) >= 0 {
			return Change{}, errs.ErrEmailAlreadyUsed
		}
		admins := append([]domain.Admin{admin}, st.Admins...)
		if len(admins) > domain.MaxAdmins {
			admins = admins[:domain.MaxAdmins]
		}
		st.Admins = admins
		session := admin
		st.Session = &session
		return Change{Event: "register_admin", Slices: []Slice{SliceAdmins, SliceSession}, Subject: admin.Email}, nil
	})
}

// DeleteAdmin removes an admin by email. The last admin can never be removed.
// Deleting the logged-in admin ends the session.
func (s *Store) DeleteAdmin(ctx context.Context, email string) (found bool, err error) {
	err = s.commit(ctx, func(st *State) (Change, error) {
		if len(st.Admins) <= 1 {
			return Change{}, errs.ErrLastAdmin
		}
		i := st.findAdmin(email)
		if i < 0 {
			return Change{}, nil
		}
		removed := st.Admins[i]
		st.Admins = append(st.Admins[:i], st.Admins[i+1:]...)
		found = true
		slices := []Slice{SliceAdmins}
		if st.Session != nil && strings.EqualFold(st.Session.Email, removed.Email) {
			st.Session = nil
			slices = append(slices, SliceSession)
		}
		return Change{Event: "delete_admin", Slices: slices, Subject: removed.Email}, nil
	})
	return found, err
}

func (s *Store) Logout(ctx context.Context) error {
	return s.commit(ctx, func(st *State) (Change, error) {
		var email string
		if st.Session != nil {
			email = st.Session.Email
		}
		st.Session = nil
		return Change{Event: "logout", Slices: []Slice{SliceSession}, Subject: email}, nil
	})
}
