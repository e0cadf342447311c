package dto

// Filter drives the visible-products view.
type Filter struct {
	Q        string `query:"q"`
	Category string `query:"category"`
	ShowAll  bool   `query:"show_all"`
}
