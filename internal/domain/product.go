package domain

// Product is a catalog item. Category is a non-enforced reference to a
// Category name; a product whose category no longer exists is uncategorized.
type Product struct {
	ID       string  `json:"id" csv:"id"`
	Name     string  `json:"name" csv:"name"`
	Price    float64 `json:"price" csv:"price"`
	Quantity int     `json:"quantity" csv:"quantity"`
	Category string  `json:"category" csv:"category"`
	Image    string  `json:"image" csv:"image"`
	Featured bool    `json:"featured,omitempty" csv:"featured"`
}

// InventoryValue is price times stock.
func (p Product) InventoryValue() float64 {
	return p.Price * float64(p.Quantity)
}

func (p Product) InStock() bool {
	return p.Quantity > 0
}
