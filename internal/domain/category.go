package domain

// Category names are unique and act as the key products refer to.
type Category struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// NewCategorySelector is the category value that asks for a category to be
// created alongside a product.
const NewCategorySelector = "__new__"

// AllCategories disables category filtering in the visible-products view.
const AllCategories = "All"
