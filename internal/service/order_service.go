package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-service/internal/broker"
	"marketplace-service/internal/models"
	"marketplace-service/internal/redisclient"
	"marketplace-service/internal/status"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// transitionLockTTL bounds how long a crashed request can hold an
// order's transition lock.
const transitionLockTTL = 10 * time.Second

// ErrTransitionInProgress is returned when another transition currently
// holds the order's lock.
var ErrTransitionInProgress = errors.New("another transition is in progress for this order")

// OrderService handles order listing and status transitions
type OrderService struct {
	store          *store.Store
	redis          *redisclient.Client
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	store *store.Store,
	redis *redisclient.Client,
	eventPublisher *broker.EventPublisher,
) *OrderService {
	return &OrderService{
		store:          store,
		redis:          redis,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// TransitionRequest is the body of a status transition call
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note,omitempty"`
}

// ListVendorOrders returns a vendor's orders, newest first
func (s *OrderService) ListVendorOrders(ctx context.Context, vendorID int64) ([]models.Order, error) {
	return s.store.GetOrdersByVendorID(ctx, vendorID)
}

// ListAllOrders returns orders for the admin dashboard, optionally
// narrowed to one status tab.
func (s *OrderService) ListAllOrders(ctx context.Context, statusFilter string) ([]models.Order, error) {
	if statusFilter == "" {
		return s.store.GetOrders(ctx)
	}
	if !status.IsValid(statusFilter) {
		return nil, &status.UnknownStatusError{Status: statusFilter}
	}
	return s.store.GetOrdersByStatus(ctx, statusFilter)
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.GetOrderItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// Transition moves an order to a target status on behalf of an actor.
// Validation happens before any mutation; the persisted update carries
// an optimistic version check, and a per-order Redis lock serializes
// concurrent requests so neither side loses an update.
func (s *OrderService) Transition(ctx context.Context, orderID int64, req *TransitionRequest, role string) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Transition")
	defer span.End()

	start := time.Now()
	defer func() {
		util.OrderTransitionLatency.Observe(time.Since(start).Seconds())
	}()

	locked, err := s.redis.AcquireOrderLock(ctx, orderID, transitionLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire transition lock: %w", err)
	}
	if !locked {
		util.OrderTransitionsRejected.WithLabelValues("lock_contention").Inc()
		return nil, ErrTransitionInProgress
	}
	defer func() {
		if err := s.redis.ReleaseOrderLock(context.Background(), orderID); err != nil {
			s.logger.Warn("Failed to release transition lock",
				zap.Int64("order_id", orderID), zap.Error(err))
		}
	}()

	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	updated, err := status.ApplyTransition(order, req.Status, role, req.Note)
	if err != nil {
		util.OrderTransitionsRejected.WithLabelValues(rejectReason(err)).Inc()
		return nil, err
	}

	if err := s.store.UpdateOrderStatus(ctx, updated, order.Version); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			util.OrderTransitionsRejected.WithLabelValues("version_conflict").Inc()
		}
		return nil, fmt.Errorf("failed to persist transition: %w", err)
	}

	util.OrderTransitionsTotal.WithLabelValues(order.Status, updated.Status, role).Inc()
	s.logger.Info("Order transitioned",
		zap.Int64("order_id", orderID),
		zap.String("from", order.Status),
		zap.String("to", updated.Status),
		zap.String("role", role))

	s.publishTransitionEvents(ctx, order, updated, role, req.Note)

	return updated, nil
}

func (s *OrderService) publishTransitionEvents(ctx context.Context, before, after *models.Order, role, note string) {
	event := &models.OrderStatusChangedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderStatusChanged,
			Timestamp: time.Now(),
		},
		OrderID:    after.ID,
		VendorID:   after.VendorID,
		FromStatus: before.Status,
		ToStatus:   after.Status,
		ActorRole:  role,
		Note:       note,
	}
	if err := s.eventPublisher.PublishStatusChanged(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderStatusChanged event", zap.Error(err))
	}

	switch after.Status {
	case status.Delivered:
		util.OrdersDeliveredTotal.Inc()
		delivered := &models.OrderDeliveredEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeOrderDelivered,
				Timestamp: time.Now(),
			},
			OrderID:    after.ID,
			VendorID:   after.VendorID,
			Total:      after.Total,
			Commission: after.Commission,
		}
		if err := s.eventPublisher.PublishOrderDelivered(ctx, delivered); err != nil {
			s.logger.Error("Failed to publish OrderDelivered event", zap.Error(err))
		}

	case status.Cancelled:
		util.OrdersCancelledTotal.Inc()
		cancelled := &models.OrderCancelledEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeOrderCancelled,
				Timestamp: time.Now(),
			},
			OrderID:  after.ID,
			VendorID: after.VendorID,
			Reason:   note,
		}
		if err := s.eventPublisher.PublishOrderCancelled(ctx, cancelled); err != nil {
			s.logger.Error("Failed to publish OrderCancelled event", zap.Error(err))
		}
	}
}

func rejectReason(err error) string {
	var illegalErr *status.IllegalTransitionError
	var termErr *status.TerminalStateError
	var unknownErr *status.UnknownStatusError

	switch {
	case errors.As(err, &termErr):
		return "terminal_state"
	case errors.As(err, &illegalErr):
		return "illegal_transition"
	case errors.As(err, &unknownErr):
		return "unknown_status"
	default:
		return "error"
	}
}
