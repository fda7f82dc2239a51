package catalog

import (
	"time"

	"marketplace-service/internal/models"
)

func ptr(v int64) *int64 { return &v }

var fixtureStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func fixtureCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Living Room", Slug: "living-room"},
		{ID: 2, Name: "Bedroom", Slug: "bedroom"},
		{ID: 3, Name: "Office", Slug: "office"},
		{ID: 11, Name: "Sofas", Slug: "sofas", ParentID: ptr(1)},
		{ID: 12, Name: "Coffee Tables", Slug: "coffee-tables", ParentID: ptr(1)},
		{ID: 21, Name: "Beds", Slug: "beds", ParentID: ptr(2)},
		{ID: 22, Name: "Wardrobes", Slug: "wardrobes", ParentID: ptr(2)},
		{ID: 31, Name: "Desks", Slug: "desks", ParentID: ptr(3)},
		{ID: 32, Name: "Office Chairs", Slug: "office-chairs", ParentID: ptr(3)},
	}
}

func fixtureProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, VendorID: 1, CategoryID: 11, Name: "Aria 3-Seater Sofa", Slug: "aria-3-seater-sofa",
			Price: 129900, CompareAtPrice: 159900, StockQuantity: 8, IsOnSale: true, IsFeatured: true,
			CreatedAt: fixtureStart,
			Images:    []models.ProductImage{{ID: 1, ProductID: 1, URL: "https://cdn.example.com/aria-sofa.jpg", Position: 0}},
		},
		{
			ID: 2, VendorID: 1, CategoryID: 11, Name: "Maple Loveseat", Slug: "maple-loveseat",
			Price: 84900, StockQuantity: 0, CreatedAt: fixtureStart.AddDate(0, 0, 2),
		},
		{
			ID: 3, VendorID: 2, CategoryID: 12, Name: "Walnut Coffee Table", Slug: "walnut-coffee-table",
			Price: 34900, StockQuantity: 15, IsNew: true, CreatedAt: fixtureStart.AddDate(0, 0, 5),
		},
		{
			ID: 4, VendorID: 2, CategoryID: 21, Name: "Nordic Queen Bed Frame", Slug: "nordic-queen-bed-frame",
			Price: 109900, StockQuantity: 4, IsFeatured: true, CreatedAt: fixtureStart.AddDate(0, 0, 7),
			Variants: []models.ProductVariant{
				{ID: 1, ProductID: 4, Name: "Queen", Price: 109900, Stock: 4},
				{ID: 2, ProductID: 4, Name: "King", Price: 129900, Stock: 2},
			},
		},
		{
			ID: 5, VendorID: 3, CategoryID: 22, Name: "Oak Sliding Wardrobe", Slug: "oak-sliding-wardrobe",
			Price: 174900, CompareAtPrice: 199900, StockQuantity: 3, IsOnSale: true,
			CreatedAt: fixtureStart.AddDate(0, 0, 9),
		},
		{
			ID: 6, VendorID: 3, CategoryID: 31, Name: "Standing Desk Pro", Slug: "standing-desk-pro",
			Price: 64900, StockQuantity: 20, IsNew: true, CreatedAt: fixtureStart.AddDate(0, 0, 11),
		},
		{
			ID: 7, VendorID: 3, CategoryID: 32, Name: "ErgoFlex Office Chair", Slug: "ergoflex-office-chair",
			Price: 42900, CompareAtPrice: 49900, StockQuantity: 30, IsOnSale: true,
			CreatedAt: fixtureStart.AddDate(0, 0, 13),
		},
		{
			ID: 8, VendorID: 1, CategoryID: 12, Name: "Glass Side Table", Slug: "glass-side-table",
			Price: 19900, StockQuantity: 12, CreatedAt: fixtureStart.AddDate(0, 0, 15),
		},
	}
}
