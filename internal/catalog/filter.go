package catalog

import (
	"fmt"

	"marketplace-service/internal/models"
)

// Availability filter values
const (
	AvailabilityInStock = "in-stock"
	AvailabilityOnSale  = "on-sale"
)

// Sort keys
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// DefaultPageSize is the storefront listing page size.
const DefaultPageSize = 12

// ValidationError signals a malformed filter state, surfaced to the
// client as an inline message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid filter: %s %s", e.Field, e.Reason)
}

// FilterState is the validated filter input for a product listing.
// Nil price bounds mean unbounded on that side; an empty Availability
// applies no availability filter. Zero Page/Limit take defaults.
type FilterState struct {
	Categories    []int64 `json:"categories" form:"categories"`
	Subcategories []int64 `json:"subcategories" form:"subcategories"`
	PriceMin      *int64  `json:"price_min" form:"price_min"`
	PriceMax      *int64  `json:"price_max" form:"price_max"`
	Availability  string  `json:"availability" form:"availability"`
	Sort          string  `json:"sort" form:"sort"`
	Page          int     `json:"page" form:"page"`
	Limit         int     `json:"limit" form:"limit"`
}

// Validate checks the filter state at the boundary, before it reaches
// the composer.
func (f *FilterState) Validate() error {
	if f.PriceMin != nil && *f.PriceMin < 0 {
		return &ValidationError{Field: "price_min", Reason: "must be non-negative"}
	}
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return &ValidationError{Field: "price_min", Reason: "exceeds price_max"}
	}
	switch f.Availability {
	case "", AvailabilityInStock, AvailabilityOnSale:
	default:
		return &ValidationError{Field: "availability", Reason: fmt.Sprintf("unknown value %q", f.Availability)}
	}
	switch f.Sort {
	case "", SortNewest, SortPriceAsc, SortPriceDesc, SortName, SortNameAsc, SortNameDesc:
	default:
		return &ValidationError{Field: "sort", Reason: fmt.Sprintf("unknown value %q", f.Sort)}
	}
	if f.Page < 0 {
		return &ValidationError{Field: "page", Reason: "must be non-negative"}
	}
	if f.Limit < 0 {
		return &ValidationError{Field: "limit", Reason: "must be non-negative"}
	}
	return nil
}

// matches reports whether p satisfies every active predicate.
func (f *FilterState) matches(p *models.Product, idx *CategoryIndex) bool {
	if len(f.Categories) > 0 {
		hit := false
		for _, catID := range f.Categories {
			if idx.Contains(catID, p.CategoryID) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if len(f.Subcategories) > 0 {
		hit := false
		for _, subID := range f.Subcategories {
			if p.CategoryID == subID {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}

	switch f.Availability {
	case AvailabilityInStock:
		if p.StockQuantity <= 0 {
			return false
		}
	case AvailabilityOnSale:
		if !p.IsOnSale {
			return false
		}
	}

	return true
}

// Apply filters products with all active predicates AND-combined,
// preserving input order. The result is a fresh slice; filtering an
// already-filtered list with the same state yields an identical list.
func (f *FilterState) Apply(products []models.Product, idx *CategoryIndex) []models.Product {
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if f.matches(&products[i], idx) {
			out = append(out, products[i])
		}
	}
	return out
}

// Page holds one page of a listing along with pagination totals
type Page struct {
	Products   []models.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// Paginate slices products into the requested page. Page numbering is
// 1-based; 0 means the first page. A zero limit takes DefaultPageSize.
func Paginate(products []models.Product, page, limit int) Page {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	total := len(products)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Page{
		Products:   products[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
