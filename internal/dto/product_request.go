package dto

// ProductRequest is the add-product form. Price and Quantity accept a JSON
// number or a string, the way a form field arrives.
type ProductRequest struct {
	Name     string      `json:"name"`
	Price    interface{} `json:"price"`
	Quantity interface{} `json:"quantity"`
	// Category is an existing category name or "__new__".
	Category         string `json:"category"`
	NewCategoryName  string `json:"new_category_name"`
	NewCategoryImage string `json:"new_category_image"`
	Image            string `json:"image"`
}

// QuickUpdateRequest is the inline price/quantity edit. Blank fields keep the
// current value.
type QuickUpdateRequest struct {
	Price    interface{} `json:"price"`
	Quantity interface{} `json:"quantity"`
}

type ProductEditRequest struct {
	Name     string      `json:"name"`
	Price    interface{} `json:"price"`
	Quantity interface{} `json:"quantity"`
	Category string      `json:"category"`
	Image    string      `json:"image"`
}
