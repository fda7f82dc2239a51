package store

import (
	"context"
	"strconv"

	"marketplace-service/internal/models"
)

// CatalogSource adapts the store to the catalog data source contract,
// serving the live-database side of the USE_FAKE_DATA toggle.
type CatalogSource struct {
	store *Store
}

// NewCatalogSource creates a live catalog source backed by the store
func NewCatalogSource(store *Store) *CatalogSource {
	return &CatalogSource{store: store}
}

// Products returns all products
func (cs *CatalogSource) Products(ctx context.Context) ([]models.Product, error) {
	return cs.store.GetProducts(ctx)
}

// Categories returns all categories
func (cs *CatalogSource) Categories(ctx context.Context) ([]models.Category, error) {
	return cs.store.GetCategories(ctx)
}

// Subcategories returns the direct children of a top-level category
func (cs *CatalogSource) Subcategories(ctx context.Context, parentID int64) ([]models.Category, error) {
	return cs.store.GetSubcategories(ctx, parentID)
}

// ProductByIDOrSlug resolves a product by numeric id or slug
func (cs *CatalogSource) ProductByIDOrSlug(ctx context.Context, idOrSlug string) (*models.Product, error) {
	if id, err := strconv.ParseInt(idOrSlug, 10, 64); err == nil {
		return cs.store.GetProductByID(ctx, id)
	}
	return cs.store.GetProductBySlug(ctx, idOrSlug)
}
