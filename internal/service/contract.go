package service

import (
	"context"

	"github.com/Ihsas01/SR-SHOPPING/internal/dialog"
	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	pkgdto "github.com/Ihsas01/SR-SHOPPING/pkg/dto"
)

type CatalogService interface {
	GetVisibleProducts(ctx context.Context, filter pkgdto.Filter) (resp dto.VisibleProductsResponse, err error)
	GetFeaturedProducts(ctx context.Context) (data []domain.Product, err error)
	GetCategories(ctx context.Context) (data []dto.CategoryResponse, err error)
	GetCategoryProducts(ctx context.Context, name string) (data []domain.Product, err error)
	GetOrphanedProducts(ctx context.Context) (data []domain.Product, err error)
	GetStats(ctx context.Context) (resp dto.StatsResponse, err error)
	ExportProductsCSV(ctx context.Context) (data []byte, err error)

	PreviewProduct(ctx context.Context, payload dto.ProductRequest) (resp dto.ProductPreviewResponse, err error)
	AddProduct(ctx context.Context, payload dto.ProductRequest) (product domain.Product, err error)
	QuickUpdateProduct(ctx context.Context, id string, payload dto.QuickUpdateRequest) (product *domain.Product, err error)
	EditProduct(ctx context.Context, id string, payload dto.ProductEditRequest) (product *domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)

	DeleteCategoryPrompt(ctx context.Context, name string) (prompt dialog.Prompt, err error)
	DeleteCategory(ctx context.Context, name string, confirmation dialog.Confirmation) (result dialog.Result, err error)
	ToggleCategory(ctx context.Context, name string) (resp dto.ToggleCategoryResponse, err error)

	DiscountPrompt(ctx context.Context, productID string) (resp dto.DiscountPromptResponse, err error)
	SetDiscount(ctx context.Context, productID string, answer dialog.Answer) (result dialog.Result, err error)
}

type AdminService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (resp dto.AuthResponse, err error)
	Register(ctx context.Context, payload dto.RegisterRequest) (resp dto.AuthResponse, err error)
	Logout(ctx context.Context) (err error)
	GetSession(ctx context.Context) (resp dto.SessionResponse)
	GetAdmins(ctx context.Context) (data []dto.AdminResponse)
	DeleteAdmin(ctx context.Context, email string) (err error)
	// Authorize reports ErrNotLoggedIn unless email belongs to the current
	// session.
	Authorize(ctx context.Context, email string) (err error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, payload dto.CheckoutRequest) (resp dto.CheckoutResponse, err error)
}
