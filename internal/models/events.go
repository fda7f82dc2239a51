package models

import "time"

// Event types
const (
	EventTypeOrderStatusChanged = "ORDER_STATUS_CHANGED"
	EventTypeOrderDelivered     = "ORDER_DELIVERED"
	EventTypeOrderCancelled     = "ORDER_CANCELLED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent published on every successful status transition
type OrderStatusChangedEvent struct {
	BaseEvent
	OrderID    int64  `json:"order_id"`
	VendorID   int64  `json:"vendor_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ActorRole  string `json:"actor_role"`
	Note       string `json:"note,omitempty"`
}

// OrderDeliveredEvent published when an order reaches DELIVERED; carries
// the payout split the earnings worker records.
type OrderDeliveredEvent struct {
	BaseEvent
	OrderID    int64 `json:"order_id"`
	VendorID   int64 `json:"vendor_id"`
	Total      int64 `json:"total"`
	Commission int64 `json:"commission"`
}

// OrderCancelledEvent published when an order is cancelled
type OrderCancelledEvent struct {
	BaseEvent
	OrderID  int64  `json:"order_id"`
	VendorID int64  `json:"vendor_id"`
	Reason   string `json:"reason,omitempty"`
}
