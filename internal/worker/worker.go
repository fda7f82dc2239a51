package worker

import (
	"context"

	"marketplace-service/internal/broker"
	"marketplace-service/internal/models"
	"marketplace-service/internal/service"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"

	"go.uber.org/zap"
)

// EarningsWorker consumes order events and maintains the vendor
// earnings ledger. Delivery events are deduplicated through the
// processed_events table so replays record nothing twice.
type EarningsWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewEarningsWorker creates a new earnings worker
func NewEarningsWorker(
	consumer *broker.Consumer,
	st *store.Store,
	earningsService *service.EarningsService,
) *EarningsWorker {
	logger := util.NamedLogger("worker.earnings")

	eventHandler := broker.NewEventHandler()
	eventHandler.OnStatusChanged(func(ctx context.Context, event *models.OrderStatusChangedEvent) error {
		logger.Info("Order status changed",
			zap.Int64("order_id", event.OrderID),
			zap.String("from", event.FromStatus),
			zap.String("to", event.ToStatus),
			zap.String("actor_role", event.ActorRole))
		return nil
	})
	eventHandler.OnOrderDelivered(func(ctx context.Context, event *models.OrderDeliveredEvent) error {
		processed, err := st.IsEventProcessed(ctx, event.EventID)
		if err != nil {
			return err
		}
		if processed {
			logger.Debug("Skipping already-processed event", zap.String("event_id", event.EventID))
			return nil
		}

		if err := earningsService.RecordDelivery(ctx, event); err != nil {
			return err
		}
		return st.MarkEventProcessed(ctx, event.EventID, event.EventType)
	})

	eventHandler.OnOrderCancelled(func(ctx context.Context, event *models.OrderCancelledEvent) error {
		logger.Info("Order cancelled",
			zap.Int64("order_id", event.OrderID),
			zap.String("reason", event.Reason))
		return nil
	})

	return &EarningsWorker{
		consumer:     consumer,
		eventHandler: eventHandler,
		logger:       logger,
	}
}

// Start starts the worker
func (w *EarningsWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting earnings worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *EarningsWorker) Stop() error {
	w.logger.Info("Stopping earnings worker")
	return w.consumer.Close()
}
