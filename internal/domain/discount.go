package domain

// Discounts maps a product id to a percentage in (0, 100]. A missing entry
// means no discount; 0 is never stored.
type Discounts map[string]float64

// Percent returns the active percentage for a product, or 0.
func (d Discounts) Percent(productID string) float64 {
	if d == nil {
		return 0
	}
	return d[productID]
}

func (d Discounts) Has(productID string) bool {
	return d.Percent(productID) != 0
}

// DiscountedPrice applies a percentage to a price.
func DiscountedPrice(price, percent float64) float64 {
	return price * (1 - percent/100)
}

func (d Discounts) Clone() Discounts {
	out := make(Discounts, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Normalized drops entries outside (0, 100].
func (d Discounts) Normalized() Discounts {
	out := make(Discounts, len(d))
	for k, v := range d {
		if v > 0 && v <= 100 {
			out[k] = v
		}
	}
	return out
}
