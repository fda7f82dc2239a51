package models

import (
	"fmt"
	"time"
)

// All money values are int64 minor units (cents). Commission rates are
// basis points (600 = 6%).

// Vendor represents a marketplace seller
type Vendor struct {
	ID                int64     `db:"id" json:"id"`
	UserID            int64     `db:"user_id" json:"user_id"`
	StoreName         string    `db:"store_name" json:"store_name"`
	Slug              string    `db:"slug" json:"slug"`
	CommissionRateBps int64     `db:"commission_rate_bps" json:"commission_rate_bps"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Customer represents a storefront buyer
type Customer struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Category represents a product category. A nil ParentID means top-level;
// a non-nil ParentID must reference a top-level category (the tree is at
// most two levels deep).
type Category struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Slug     string `db:"slug" json:"slug"`
	ParentID *int64 `db:"parent_id" json:"parent_id,omitempty"`
}

// Product represents a catalog product
type Product struct {
	ID             int64     `db:"id" json:"id"`
	VendorID       int64     `db:"vendor_id" json:"vendor_id"`
	CategoryID     int64     `db:"category_id" json:"category_id"`
	Name           string    `db:"name" json:"name"`
	Slug           string    `db:"slug" json:"slug"`
	Price          int64     `db:"price" json:"price"`
	CompareAtPrice int64     `db:"compare_at_price" json:"compare_at_price,omitempty"`
	StockQuantity  int       `db:"stock_quantity" json:"stock_quantity"`
	IsNew          bool      `db:"is_new" json:"is_new"`
	IsOnSale       bool      `db:"is_on_sale" json:"is_on_sale"`
	IsFeatured     bool      `db:"is_featured" json:"is_featured"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`

	Images   []ProductImage   `db:"-" json:"images,omitempty"`
	Variants []ProductVariant `db:"-" json:"variants,omitempty"`
}

// Validate checks the product invariants: non-negative stock, and an
// on-sale product must carry a compare-at price above its sale price.
func (p *Product) Validate() error {
	if p.StockQuantity < 0 {
		return fmt.Errorf("product %d: negative stock quantity %d", p.ID, p.StockQuantity)
	}
	if p.IsOnSale && p.CompareAtPrice <= p.Price {
		return fmt.Errorf("product %d: on sale but compare_at_price %d <= price %d",
			p.ID, p.CompareAtPrice, p.Price)
	}
	return nil
}

// ProductImage represents a product image stored in blob storage
type ProductImage struct {
	ID        int64  `db:"id" json:"id"`
	ProductID int64  `db:"product_id" json:"product_id"`
	URL       string `db:"url" json:"url"`
	Position  int    `db:"position" json:"position"`
}

// ProductVariant represents a purchasable variation of a product
type ProductVariant struct {
	ID        int64  `db:"id" json:"id"`
	ProductID int64  `db:"product_id" json:"product_id"`
	Name      string `db:"name" json:"name"`
	Price     int64  `db:"price" json:"price"`
	Stock     int    `db:"stock" json:"stock"`
}

// Order represents a customer order. Status transitions go through the
// status package; nothing else mutates Status. Version backs the
// optimistic concurrency check on status updates.
type Order struct {
	ID             int64     `db:"id" json:"id"`
	OrderNumber    string    `db:"order_number" json:"order_number"`
	CustomerID     int64     `db:"customer_id" json:"customer_id"`
	VendorID       int64     `db:"vendor_id" json:"vendor_id"`
	Status         string    `db:"status" json:"status"`
	Subtotal       int64     `db:"subtotal" json:"subtotal"`
	Tax            int64     `db:"tax" json:"tax"`
	ShippingCost   int64     `db:"shipping_cost" json:"shipping_cost"`
	Commission     int64     `db:"commission" json:"commission"`
	Total          int64     `db:"total" json:"total"`
	TrackingNumber string    `db:"tracking_number" json:"tracking_number,omitempty"`
	Note           string    `db:"note" json:"note,omitempty"`
	Version        int64     `db:"version" json:"version"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`

	Items []OrderItem `db:"-" json:"items,omitempty"`
}

// Validate checks the order total invariant. Commission is informational
// (deducted from the vendor payout) and does not enter the total.
func (o *Order) Validate() error {
	if got := o.Subtotal + o.Tax + o.ShippingCost; got != o.Total {
		return fmt.Errorf("order %d: total %d != subtotal+tax+shipping %d", o.ID, o.Total, got)
	}
	return nil
}

// OrderItem is an immutable line item with the unit price snapshotted at
// purchase time.
type OrderItem struct {
	ID        int64  `db:"id" json:"id"`
	OrderID   int64  `db:"order_id" json:"order_id"`
	ProductID int64  `db:"product_id" json:"product_id"`
	VariantID *int64 `db:"variant_id" json:"variant_id,omitempty"`
	Quantity  int    `db:"quantity" json:"quantity"`
	UnitPrice int64  `db:"unit_price" json:"unit_price"`
}

// EarningsEntry is an immutable ledger row recorded when an order is
// delivered, capturing the vendor payout split at that moment.
type EarningsEntry struct {
	ID         int64     `db:"id" json:"id"`
	OrderID    int64     `db:"order_id" json:"order_id"`
	VendorID   int64     `db:"vendor_id" json:"vendor_id"`
	Total      int64     `db:"total" json:"total"`
	Commission int64     `db:"commission" json:"commission"`
	Net        int64     `db:"net" json:"net"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}

// ProcessedEvent for consumer idempotency
type ProcessedEvent struct {
	EventID     string    `db:"event_id"`
	EventType   string    `db:"event_type"`
	ProcessedAt time.Time `db:"processed_at"`
}
