package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sales_analytics/internal/domain/order"
	"sales_analytics/internal/infrastructure/encoding/avro"
)

// RecordProducer sends an encoded payload under a key.
type RecordProducer interface {
	PublishOrder(ctx context.Context, key string, payload []byte) error
}

// OrderEventPublisher emits Avro-encoded OrderCreated events.
type OrderEventPublisher struct {
	producer RecordProducer
	encoder  *avro.Encoder
	now      func() time.Time
}

func NewOrderEventPublisher(producer RecordProducer, encoder *avro.Encoder) *OrderEventPublisher {
	return &OrderEventPublisher{
		producer: producer,
		encoder:  encoder,
		now:      time.Now,
	}
}

func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, view order.View) error {
	native := avro.ToOrderCreatedNative(uuid.NewString(), p.now(), view)
	payload, err := p.encoder.EncodeNative(native)
	if err != nil {
		return fmt.Errorf("encode order created event: %w", err)
	}
	return p.producer.PublishOrder(ctx, view.OrderID, payload)
}
