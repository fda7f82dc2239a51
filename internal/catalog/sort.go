package catalog

import (
	"sort"

	"marketplace-service/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Name comparisons are locale-aware; the storefront is English.
var nameCollator = collate.New(language.English)

// Sort orders products in place by the given sort key. All sorts are
// stable, so equal elements keep their insertion order. An empty or
// unrecognized key leaves the input order untouched (keys are validated
// upstream in FilterState.Validate).
func Sort(products []models.Product, key string) {
	switch key {
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortName, SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return nameCollator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return nameCollator.CompareString(products[i].Name, products[j].Name) > 0
		})
	}
}
