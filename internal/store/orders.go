package store

import (
	"context"
	"database/sql"
	"fmt"

	"marketplace-service/internal/models"
)

// ErrVersionConflict is returned when an optimistic status update loses
// to a concurrent transition on the same order.
var ErrVersionConflict = fmt.Errorf("order version conflict")

// CreateOrder creates a new order
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (order_number, customer_id, vendor_id, status,
			subtotal, tax, shipping_cost, commission, total, tracking_number, note, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)
		RETURNING id, version, created_at, updated_at`

	return s.db.GetContext(ctx, order, query,
		order.OrderNumber, order.CustomerID, order.VendorID, order.Status,
		order.Subtotal, order.Tax, order.ShippingCost, order.Commission,
		order.Total, order.TrackingNumber, order.Note)
}

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus applies a status transition with an optimistic
// version check. The update only lands if the caller saw the current
// version; a concurrent transition surfaces as ErrVersionConflict.
func (s *Store) UpdateOrderStatus(ctx context.Context, order *models.Order, expectedVersion int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, note = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND version = $4`,
		order.Status, order.Note, order.ID, expectedVersion)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVersionConflict
	}
	return nil
}

// GetOrdersByVendorID retrieves orders for a vendor, newest first
func (s *Store) GetOrdersByVendorID(ctx context.Context, vendorID int64) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE vendor_id = $1 ORDER BY created_at DESC", vendorID)
	return orders, err
}

// GetOrders retrieves all orders (admin view), newest first
func (s *Store) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders, "SELECT * FROM orders ORDER BY created_at DESC")
	return orders, err
}

// GetOrdersByStatus retrieves all orders in a given status
func (s *Store) GetOrdersByStatus(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE status = $1 ORDER BY created_at DESC", status)
	return orders, err
}

// GetOrderItemsByOrderID retrieves all items for an order
func (s *Store) GetOrderItemsByOrderID(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.SelectContext(ctx, &items,
		"SELECT * FROM order_items WHERE order_id = $1", orderID)
	return items, err
}

// CreateEarningsEntry records a ledger row for a delivered order.
// The unique constraint on order_id keeps delivery processing idempotent.
func (s *Store) CreateEarningsEntry(ctx context.Context, entry *models.EarningsEntry) error {
	query := `
		INSERT INTO earnings_entries (order_id, vendor_id, total, commission, net)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO NOTHING
		RETURNING id, recorded_at`

	err := s.db.GetContext(ctx, entry, query,
		entry.OrderID, entry.VendorID, entry.Total, entry.Commission, entry.Net)
	if err == sql.ErrNoRows {
		// Already recorded for this order.
		return nil
	}
	return err
}

// GetEarningsByVendorID retrieves the earnings ledger for a vendor
func (s *Store) GetEarningsByVendorID(ctx context.Context, vendorID int64) ([]models.EarningsEntry, error) {
	var entries []models.EarningsEntry
	err := s.db.SelectContext(ctx, &entries,
		"SELECT * FROM earnings_entries WHERE vendor_id = $1 ORDER BY recorded_at DESC", vendorID)
	return entries, err
}

// MonthlyRevenue is one bucket of the admin revenue chart
type MonthlyRevenue struct {
	Month      string `db:"month" json:"month"`
	Total      int64  `db:"total" json:"total"`
	Commission int64  `db:"commission" json:"commission"`
}

// GetMonthlyRevenue aggregates delivered-order revenue by month for the
// admin revenue chart.
func (s *Store) GetMonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenue, error) {
	var rows []MonthlyRevenue
	err := s.db.SelectContext(ctx, &rows, `
		SELECT to_char(date_trunc('month', recorded_at), 'YYYY-MM') AS month,
		       COALESCE(SUM(total), 0) AS total,
		       COALESCE(SUM(commission), 0) AS commission
		FROM earnings_entries
		WHERE recorded_at >= date_trunc('month', NOW()) - ($1::text || ' months')::interval
		GROUP BY 1
		ORDER BY 1`, months)
	return rows, err
}

// IsEventProcessed checks if an event has been processed
func (s *Store) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM processed_events WHERE event_id = $1)", eventID)
	return exists, err
}

// MarkEventProcessed marks an event as processed
func (s *Store) MarkEventProcessed(ctx context.Context, eventID, eventType string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO processed_events (event_id, event_type) VALUES ($1, $2) ON CONFLICT (event_id) DO NOTHING",
		eventID, eventType)
	return err
}
