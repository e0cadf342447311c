package state

import (
	"strconv"
	"strings"

	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
)

// VisibleLimit is how many products the storefront shows before "show all".
const VisibleLimit = 8

type ProductQuery struct {
	Search   string
	Category string
	ShowAll  bool
}

// DiscountedProduct is a product with an active discount and its reduced price.
type DiscountedProduct struct {
	domain.Product
	Percent         float64 `json:"discount_percent"`
	DiscountedPrice float64 `json:"discounted_price"`
}

// FormatPrice renders a price the shortest way that round-trips, which is
// what the storefront search matches against ("54.5", "35").
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// VisibleProducts filters products by category and search text, keeping the
// stored order, and caps the result unless ShowAll is set.
func (s State) VisibleProducts(q ProductQuery) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)

	descriptions := make(map[string]string, len(s.Categories))
	for _, c := range s.Categories {
		descriptions[c.Name] = strings.ToLower(c.Description)
	}

	out := []domain.Product{}
	for _, p := range s.Products {
		if category != "" && category != domain.AllCategories && p.Category != category {
			continue
		}
		if search != "" && !matchesSearch(p, descriptions[p.Category], search) {
			continue
		}
		out = append(out, p)
	}
	if !q.ShowAll && len(out) > VisibleLimit {
		out = out[:VisibleLimit]
	}
	return out
}

func matchesSearch(p domain.Product, description, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Category), search) ||
		strings.Contains(description, search) ||
		strings.Contains(FormatPrice(p.Price), search)
}

// PartitionByDiscount splits products into those with an active discount and
// the rest, each preserving the input order.
func (s State) PartitionByDiscount(products []domain.Product) (discounted []DiscountedProduct, others []domain.Product) {
	discounted = []DiscountedProduct{}
	others = []domain.Product{}
	for _, p := range products {
		if pct := s.Discounts.Percent(p.ID); pct != 0 {
			discounted = append(discounted, DiscountedProduct{
				Product:         p,
				Percent:         pct,
				DiscountedPrice: domain.DiscountedPrice(p.Price, pct),
			})
			continue
		}
		others = append(others, p)
	}
	return discounted, others
}

func (s State) FeaturedProducts() []domain.Product {
	out := []domain.Product{}
	for _, p := range s.Products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (s State) CategoryProducts(name string) []domain.Product {
	out := []domain.Product{}
	for _, p := range s.Products {
		if p.Category == name {
			out = append(out, p)
		}
	}
	return out
}

// OrphanedProducts are products whose category is not in the category list.
func (s State) OrphanedProducts() []domain.Product {
	known := make(map[string]struct{}, len(s.Categories))
	for _, c := range s.Categories {
		known[c.Name] = struct{}{}
	}
	out := []domain.Product{}
	for _, p := range s.Products {
		if _, ok := known[p.Category]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// CategoryCounts returns the number of products per category name.
func (s State) CategoryCounts() map[string]int {
	counts := make(map[string]int, len(s.Categories))
	for _, p := range s.Products {
		counts[p.Category]++
	}
	return counts
}

func (s State) InventoryValue() float64 {
	var total float64
	for _, p := range s.Products {
		total += p.InventoryValue()
	}
	return total
}
