package catalog

import (
	"testing"

	"marketplace-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex(t *testing.T) *CategoryIndex {
	t.Helper()
	idx, err := NewCategoryIndex(fixtureCategories())
	require.NoError(t, err)
	return idx
}

func TestCategoryIndexRejectsDeepNesting(t *testing.T) {
	cats := []models.Category{
		{ID: 1, Name: "Living Room", Slug: "living-room"},
		{ID: 2, Name: "Sofas", Slug: "sofas", ParentID: ptr(1)},
		{ID: 3, Name: "Sectionals", Slug: "sectionals", ParentID: ptr(2)},
	}
	_, err := NewCategoryIndex(cats)
	assert.Error(t, err)
}

func TestCategoryIndexRejectsMissingParent(t *testing.T) {
	cats := []models.Category{
		{ID: 2, Name: "Sofas", Slug: "sofas", ParentID: ptr(99)},
	}
	_, err := NewCategoryIndex(cats)
	assert.Error(t, err)
}

func TestPriceRangeFilter(t *testing.T) {
	products := []models.Product{
		{ID: 1, Price: 100},
		{ID: 2, Price: 500},
		{ID: 3, Price: 1000},
	}

	f := &FilterState{PriceMin: ptr(0), PriceMax: ptr(500)}
	require.NoError(t, f.Validate())

	got := f.Apply(products, testIndex(t))
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	// Bounds are inclusive.
	exact := &FilterState{PriceMin: ptr(500), PriceMax: ptr(500)}
	assert.Len(t, exact.Apply(products, testIndex(t)), 1)
}

func TestFilterIdempotent(t *testing.T) {
	products := fixtureProducts()
	f := &FilterState{PriceMax: ptr(100000), Availability: AvailabilityInStock}

	idx := testIndex(t)
	once := f.Apply(products, idx)
	twice := f.Apply(once, idx)
	assert.Equal(t, once, twice)
}

func TestTopLevelCategoryIncludesSubcategories(t *testing.T) {
	idx := testIndex(t)
	products := fixtureProducts()

	// Living Room (1) covers Sofas (11) and Coffee Tables (12).
	f := &FilterState{Categories: []int64{1}}
	got := f.Apply(products, idx)

	require.NotEmpty(t, got)
	for _, p := range got {
		assert.True(t, idx.Contains(1, p.CategoryID), "product %d category %d", p.ID, p.CategoryID)
	}

	// A sofa (subcategory 11) appears when only the parent is selected.
	found := false
	for _, p := range got {
		if p.CategoryID == 11 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSubcategoryFilterIsDirect(t *testing.T) {
	f := &FilterState{Subcategories: []int64{31}}
	got := f.Apply(fixtureProducts(), testIndex(t))

	require.Len(t, got, 1)
	assert.Equal(t, "standing-desk-pro", got[0].Slug)
}

func TestAvailabilityFilters(t *testing.T) {
	idx := testIndex(t)
	products := fixtureProducts()

	inStock := (&FilterState{Availability: AvailabilityInStock}).Apply(products, idx)
	for _, p := range inStock {
		assert.Greater(t, p.StockQuantity, 0)
	}

	onSale := (&FilterState{Availability: AvailabilityOnSale}).Apply(products, idx)
	require.NotEmpty(t, onSale)
	for _, p := range onSale {
		assert.True(t, p.IsOnSale)
	}

	// Empty availability filters nothing.
	all := (&FilterState{}).Apply(products, idx)
	assert.Len(t, all, len(products))
}

func TestPredicatesAndCombined(t *testing.T) {
	f := &FilterState{
		Categories:   []int64{1},
		PriceMax:     ptr(100000),
		Availability: AvailabilityInStock,
	}
	got := f.Apply(fixtureProducts(), testIndex(t))

	idx := testIndex(t)
	for _, p := range got {
		assert.True(t, idx.Contains(1, p.CategoryID))
		assert.LessOrEqual(t, p.Price, int64(100000))
		assert.Greater(t, p.StockQuantity, 0)
	}
}

func TestValidateRejectsBadInput(t *testing.T) {
	cases := []FilterState{
		{PriceMin: ptr(-1)},
		{PriceMin: ptr(500), PriceMax: ptr(100)},
		{Availability: "backordered"},
		{Sort: "popularity"},
		{Page: -1},
	}
	for _, f := range cases {
		err := f.Validate()
		var valErr *ValidationError
		assert.ErrorAs(t, err, &valErr)
	}

	ok := FilterState{PriceMin: ptr(0), PriceMax: ptr(100), Availability: AvailabilityOnSale, Sort: SortNewest}
	assert.NoError(t, ok.Validate())
}

func TestPaginate(t *testing.T) {
	products := fixtureProducts() // 8 products

	page := Paginate(products, 1, 3)
	assert.Len(t, page.Products, 3)
	assert.Equal(t, 8, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	last := Paginate(products, 3, 3)
	assert.Len(t, last.Products, 2)

	beyond := Paginate(products, 9, 3)
	assert.Empty(t, beyond.Products)

	// Defaults: page size 12, page 1.
	def := Paginate(products, 0, 0)
	assert.Equal(t, DefaultPageSize, def.Limit)
	assert.Equal(t, 1, def.Page)
	assert.Equal(t, 1, def.TotalPages)
}
