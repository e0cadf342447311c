package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ihsas01/SR-SHOPPING/internal/dialog"
	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	"github.com/Ihsas01/SR-SHOPPING/internal/state"
	pkgdto "github.com/Ihsas01/SR-SHOPPING/pkg/dto"
	"github.com/Ihsas01/SR-SHOPPING/pkg/errs"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	discountPromptMessage = "Enter discount percentage (0-100). Use 0 to remove."
	deleteCategoryMessage = "Delete category %q? Products in this category will become uncategorized."
)

type CatalogServiceImpl struct {
	store *state.Store
}

func CreateNewCatalogService(store *state.Store) CatalogService {
	return &CatalogServiceImpl{store: store}
}

func (s *CatalogServiceImpl) GetVisibleProducts(ctx context.Context, filter pkgdto.Filter) (resp dto.VisibleProductsResponse, err error) {
	snap := s.store.Snapshot()

	visible := snap.VisibleProducts(state.ProductQuery{
		Search:   filter.Q,
		Category: filter.Category,
		ShowAll:  filter.ShowAll,
	})
	resp.Discounted, resp.Others = snap.PartitionByDiscount(visible)
	resp.Total = len(visible)

	return resp, nil
}

func (s *CatalogServiceImpl) GetFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.store.Snapshot().FeaturedProducts(), nil
}

func (s *CatalogServiceImpl) GetCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	snap := s.store.Snapshot()
	counts := snap.CategoryCounts()

	data := make([]dto.CategoryResponse, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		data = append(data, dto.CategoryResponse{
			Category:  c,
			ItemCount: counts[c.Name],
			Expanded:  snap.Expanded[c.Name],
		})
	}

	return data, nil
}

func (s *CatalogServiceImpl) GetCategoryProducts(ctx context.Context, name string) ([]domain.Product, error) {
	snap := s.store.Snapshot()
	if _, ok := snap.Category(name); !ok {
		return nil, errs.ErrNotFound
	}

	return snap.CategoryProducts(name), nil
}

func (s *CatalogServiceImpl) GetOrphanedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.store.Snapshot().OrphanedProducts(), nil
}

func (s *CatalogServiceImpl) GetStats(ctx context.Context) (resp dto.StatsResponse, err error) {
	snap := s.store.Snapshot()

	resp.Products = len(snap.Products)
	resp.Categories = len(snap.Categories)
	resp.Admins = len(snap.Admins)
	resp.OrphanedProducts = len(snap.OrphanedProducts())
	resp.InventoryValue = snap.InventoryValue()
	for _, p := range snap.Products {
		if snap.Discounts.Has(p.ID) {
			resp.ActiveDiscounts++
		}
	}

	return resp, nil
}

func (s *CatalogServiceImpl) ExportProductsCSV(ctx context.Context) ([]byte, error) {
	snap := s.store.Snapshot()

	rows := make([]*dto.ProductCSVRow, 0, len(snap.Products))
	for _, p := range snap.Products {
		rows = append(rows, &dto.ProductCSVRow{
			ID:              p.ID,
			Name:            p.Name,
			Category:        p.Category,
			Price:           p.Price,
			Quantity:        p.Quantity,
			DiscountPercent: snap.Discounts.Percent(p.ID),
			Featured:        p.Featured,
			Image:           p.Image,
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ExportProductsCSV").Msg("")
		return nil, err
	}

	return data, nil
}

// buildProduct validates the add-product form against snap. It returns the
// category to create, if any, alongside the product.
func buildProduct(snap state.State, payload dto.ProductRequest) (product domain.Product, newCategory *domain.Category, err error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" || isBlank(payload.Price) || isBlank(payload.Quantity) {
		return product, nil, errs.ErrMissingProduct
	}

	price, _, err := parsePrice(payload.Price)
	if err != nil {
		return product, nil, err
	}

	quantity, _, err := parseQuantity(payload.Quantity)
	if err != nil {
		return product, nil, err
	}

	category := strings.TrimSpace(payload.Category)
	switch category {
	case domain.NewCategorySelector:
		catName := strings.TrimSpace(payload.NewCategoryName)
		if catName == "" {
			return product, nil, errs.ErrMissingCategory
		}
		category = catName
		if _, exists := snap.Category(catName); !exists {
			image := strings.TrimSpace(payload.NewCategoryImage)
			if image == "" {
				image = domain.DefaultCategoryImage
			}
			newCategory = &domain.Category{Name: catName, Image: image}
		}
	case "":
		return product, nil, errs.ErrMissingCategory
	default:
		if _, exists := snap.Category(category); !exists {
			return product, nil, errs.ErrMissingCategory
		}
	}

	image := strings.TrimSpace(payload.Image)
	if image == "" {
		image = domain.DefaultProductImage
	}

	product = domain.Product{
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Category: category,
		Image:    image,
		Featured: len(snap.Products)%2 == 0,
	}

	return product, newCategory, nil
}

func (s *CatalogServiceImpl) PreviewProduct(ctx context.Context, payload dto.ProductRequest) (resp dto.ProductPreviewResponse, err error) {
	product, newCategory, err := buildProduct(s.store.Snapshot(), payload)
	if err != nil {
		return resp, err
	}

	resp.Product = product
	resp.NewCategory = newCategory != nil
	resp.Prompt = dialog.Confirm(fmt.Sprintf(
		"Add this product?\nCategory: %s\nName: %s\nPrice: %s\nQuantity: %d",
		product.Category, product.Name, state.FormatPrice(product.Price), product.Quantity,
	))

	return resp, nil
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest) (domain.Product, error) {
	product, newCategory, err := buildProduct(s.store.Snapshot(), payload)
	if err != nil {
		return product, err
	}

	product.ID = uuid.New().String()

	product, err = s.store.AddProduct(ctx, product, newCategory)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return product, err
	}

	return product, nil
}

func (s *CatalogServiceImpl) QuickUpdateProduct(ctx context.Context, id string, payload dto.QuickUpdateRequest) (*domain.Product, error) {
	var patch state.ProductPatch

	price, blank, err := parsePrice(payload.Price)
	if err != nil {
		return nil, err
	}
	if !blank {
		patch.Price = &price
	}

	quantity, blank, err := parseQuantity(payload.Quantity)
	if err != nil {
		return nil, err
	}
	if !blank {
		patch.Quantity = &quantity
	}

	product, found, err := s.store.UpdateProduct(ctx, id, patch)
	if err != nil || !found {
		return nil, err
	}

	return &product, nil
}

func (s *CatalogServiceImpl) EditProduct(ctx context.Context, id string, payload dto.ProductEditRequest) (*domain.Product, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" || isBlank(payload.Price) || isBlank(payload.Quantity) {
		return nil, errs.ErrMissingProduct
	}

	price, _, err := parsePrice(payload.Price)
	if err != nil {
		return nil, err
	}

	quantity, _, err := parseQuantity(payload.Quantity)
	if err != nil {
		return nil, err
	}

	product, found, err := s.store.UpdateProduct(ctx, id, state.ProductPatch{
		Name:     &name,
		Price:    &price,
		Quantity: &quantity,
		Category: &payload.Category,
		Image:    &payload.Image,
	})
	if err != nil || !found {
		return nil, err
	}

	return &product, nil
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.store.DeleteProduct(ctx, id)
	return err
}

func (s *CatalogServiceImpl) DeleteCategoryPrompt(ctx context.Context, name string) (dialog.Prompt, error) {
	if _, ok := s.store.Snapshot().Category(name); !ok {
		return dialog.Prompt{}, errs.ErrNotFound
	}

	return dialog.Confirm(fmt.Sprintf(deleteCategoryMessage, name)), nil
}

func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, name string, confirmation dialog.Confirmation) (dialog.Result, error) {
	if !confirmation.Confirmed {
		return dialog.Cancelled(), nil
	}

	if _, err := s.store.DeleteCategory(ctx, name); err != nil {
		return dialog.Result{}, err
	}

	return dialog.Applied(), nil
}

func (s *CatalogServiceImpl) ToggleCategory(ctx context.Context, name string) (dto.ToggleCategoryResponse, error) {
	if _, ok := s.store.Snapshot().Category(name); !ok {
		return dto.ToggleCategoryResponse{}, errs.ErrNotFound
	}

	return dto.ToggleCategoryResponse{Name: name, Expanded: s.store.ToggleCategory(ctx, name)}, nil
}

func (s *CatalogServiceImpl) DiscountPrompt(ctx context.Context, productID string) (resp dto.DiscountPromptResponse, err error) {
	snap := s.store.Snapshot()
	if _, ok := snap.Product(productID); !ok {
		return resp, errs.ErrNotFound
	}

	resp.ProductID = productID
	resp.Prompt = dialog.Ask(discountPromptMessage, state.FormatPrice(snap.Discounts.Percent(productID)))

	return resp, nil
}

func (s *CatalogServiceImpl) SetDiscount(ctx context.Context, productID string, answer dialog.Answer) (dialog.Result, error) {
	if answer.Cancelled {
		return dialog.Cancelled(), nil
	}

	percent, err := parsePercent(answer.Value)
	if err != nil {
		return dialog.Result{}, err
	}

	if err := s.store.SetDiscount(ctx, productID, percent); err != nil {
		return dialog.Result{}, err
	}

	return dialog.Applied(), nil
}
