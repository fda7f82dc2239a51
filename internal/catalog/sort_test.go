package catalog

import (
	"testing"

	"marketplace-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSortPriceAscDescAreReverses(t *testing.T) {
	asc := fixtureProducts()
	Sort(asc, SortPriceAsc)

	desc := fixtureProducts()
	Sort(desc, SortPriceDesc)

	// Fixture prices are distinct, so asc and desc are exact reverses.
	// With equal prices the stable tie-break would keep insertion order
	// in both directions instead.
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortNewestFirst(t *testing.T) {
	products := fixtureProducts()
	Sort(products, SortNewest)

	seenOld := false
	for _, p := range products {
		if !p.IsNew {
			seenOld = true
		} else {
			assert.False(t, seenOld, "new product %d after old ones", p.ID)
		}
	}
}

func TestSortNameLexicographic(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Walnut Coffee Table"},
		{ID: 2, Name: "aria Sofa"}, // letter identity orders this before "Glass"; case only breaks ties
		{ID: 3, Name: "Glass Side Table"},
	}

	Sort(products, SortNameAsc)
	assert.Equal(t, int64(2), products[0].ID)
	assert.Equal(t, int64(3), products[1].ID)
	assert.Equal(t, int64(1), products[2].ID)

	Sort(products, SortNameDesc)
	assert.Equal(t, int64(1), products[0].ID)
}

func TestSortStableOnTies(t *testing.T) {
	products := []models.Product{
		{ID: 1, Price: 100},
		{ID: 2, Price: 100},
		{ID: 3, Price: 100},
	}
	Sort(products, SortPriceAsc)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(2), products[1].ID)
	assert.Equal(t, int64(3), products[2].ID)
}

func TestSortUnknownKeyLeavesOrder(t *testing.T) {
	products := fixtureProducts()
	want := make([]models.Product, len(products))
	copy(want, products)

	Sort(products, "")
	assert.Equal(t, want, products)
}
