package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"marketplace-service/internal/models"
)

// Source supplies the catalog data the listing pipeline runs over.
// The live implementation reads Postgres; FixtureSource serves an
// in-memory dataset for offline development (USE_FAKE_DATA=true).
type Source interface {
	Products(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Subcategories(ctx context.Context, parentID int64) ([]models.Category, error)
	ProductByIDOrSlug(ctx context.Context, idOrSlug string) (*models.Product, error)
}

// FixtureSource serves a static furniture dataset from memory.
type FixtureSource struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
}

// NewFixtureSource creates a fixture source preloaded with the default
// furniture dataset.
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{
		products:   fixtureProducts(),
		categories: fixtureCategories(),
	}
}

// Products returns a copy of the fixture product list.
func (f *FixtureSource) Products(ctx context.Context) ([]models.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

// Categories returns a copy of the fixture category list.
func (f *FixtureSource) Categories(ctx context.Context) ([]models.Category, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]models.Category, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

// Subcategories returns the fixture categories whose parent is parentID.
func (f *FixtureSource) Subcategories(ctx context.Context, parentID int64) ([]models.Category, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]models.Category, 0)
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ProductByIDOrSlug looks up a single product by numeric id or slug.
func (f *FixtureSource) ProductByIDOrSlug(ctx context.Context, idOrSlug string) (*models.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	id, numeric := parseID(idOrSlug)
	for i := range f.products {
		if (numeric && f.products[i].ID == id) || f.products[i].Slug == idOrSlug {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product not found: %s", idOrSlug)
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil
}
