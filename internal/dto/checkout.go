package dto

type CheckoutRequest struct {
	ProductID string `json:"product_id"`
	Customer  string `json:"customer"`
	Phone     string `json:"phone"`
	// Quantity defaults to 1 when omitted.
	Quantity interface{} `json:"quantity"`
}

type CheckoutResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

type OrderEvent struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Customer    string `json:"customer"`
	Phone       string `json:"phone"`
	Quantity    int    `json:"quantity"`
}
