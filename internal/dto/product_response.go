package dto

import (
	"github.com/Ihsas01/SR-SHOPPING/internal/dialog"
	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
	"github.com/Ihsas01/SR-SHOPPING/internal/state"
)

type VisibleProductsResponse struct {
	Discounted []state.DiscountedProduct `json:"discounted"`
	Others     []domain.Product          `json:"others"`
	Total      int                       `json:"total"`
}

type CategoryResponse struct {
	domain.Category
	ItemCount int  `json:"item_count"`
	Expanded  bool `json:"expanded"`
}

// ProductPreviewResponse is the confirmation shown before a product is added.
type ProductPreviewResponse struct {
	Prompt      dialog.Prompt  `json:"prompt"`
	Product     domain.Product `json:"product"`
	NewCategory bool           `json:"new_category"`
}

type DiscountPromptResponse struct {
	ProductID string        `json:"product_id"`
	Prompt    dialog.Prompt `json:"prompt"`
}

type ToggleCategoryResponse struct {
	Name     string `json:"name"`
	Expanded bool   `json:"expanded"`
}

type StatsResponse struct {
	Products         int     `json:"products"`
	Categories       int     `json:"categories"`
	Admins           int     `json:"admins"`
	ActiveDiscounts  int     `json:"active_discounts"`
	OrphanedProducts int     `json:"orphaned_products"`
	InventoryValue   float64 `json:"inventory_value"`
}

// ProductCSVRow is one line of the catalog export.
type ProductCSVRow struct {
	ID              string  `csv:"id"`
	Name            string  `csv:"name"`
	Category        string  `csv:"category"`
	Price           float64 `csv:"price"`
	Quantity        int     `csv:"quantity"`
	DiscountPercent float64 `csv:"discount_percent"`
	Featured        bool    `csv:"featured"`
	Image           string  `csv:"image"`
}
