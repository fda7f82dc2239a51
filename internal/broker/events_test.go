package broker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"marketplace-service/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventMessage(t *testing.T, event interface{}) kafka.Message {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Value: payload}
}

func TestHandleMessageRoutesStatusChanged(t *testing.T) {
	handler := NewEventHandler()

	var got *models.OrderStatusChangedEvent
	handler.OnStatusChanged(func(ctx context.Context, event *models.OrderStatusChangedEvent) error {
		got = event
		return nil
	})

	msg := eventMessage(t, &models.OrderStatusChangedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   "evt-1",
			EventType: models.EventTypeOrderStatusChanged,
			Timestamp: time.Now(),
		},
		OrderID:    42,
		VendorID:   7,
		FromStatus: "PENDING",
		ToStatus:   "CONFIRMED",
		ActorRole:  "VENDOR",
	})

	require.NoError(t, handler.HandleMessage(context.Background(), msg))
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.OrderID)
	assert.Equal(t, "PENDING", got.FromStatus)
	assert.Equal(t, "CONFIRMED", got.ToStatus)
}

func TestHandleMessageRoutesOrderDelivered(t *testing.T) {
	handler := NewEventHandler()

	var got *models.OrderDeliveredEvent
	handler.OnOrderDelivered(func(ctx context.Context, event *models.OrderDeliveredEvent) error {
		got = event
		return nil
	})

	msg := eventMessage(t, &models.OrderDeliveredEvent{
		BaseEvent: models.BaseEvent{
			EventID:   "evt-2",
			EventType: models.EventTypeOrderDelivered,
			Timestamp: time.Now(),
		},
		OrderID:    42,
		VendorID:   7,
		Total:      10000,
		Commission: 600,
	})

	require.NoError(t, handler.HandleMessage(context.Background(), msg))
	require.NotNil(t, got)
	assert.Equal(t, int64(10000), got.Total)
	assert.Equal(t, int64(600), got.Commission)
}

func TestHandleMessageUnregisteredTypeIsNoop(t *testing.T) {
	handler := NewEventHandler()

	msg := eventMessage(t, &models.OrderCancelledEvent{
		BaseEvent: models.BaseEvent{
			EventID:   "evt-3",
			EventType: models.EventTypeOrderCancelled,
			Timestamp: time.Now(),
		},
		OrderID: 42,
	})

	assert.NoError(t, handler.HandleMessage(context.Background(), msg))
}

func TestHandleMessageRejectsMalformedPayload(t *testing.T) {
	handler := NewEventHandler()

	err := handler.HandleMessage(context.Background(), kafka.Message{Value: []byte("not json")})
	assert.Error(t, err)
}
