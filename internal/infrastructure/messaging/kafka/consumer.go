package kafka

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"sales_analytics/internal/config"
	"sales_analytics/internal/domain/order"
	"sales_analytics/pkg/logger"
)

// OrderCreator is the write path the consumer feeds.
type OrderCreator interface {
	CreateOrder(ctx context.Context, payload map[string]any) (order.View, error)
}

// MessageReader is the subset of kafka-go's Reader used by OrderConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
	Close() error
}

// OrderConsumer ingests JSON order payloads from a topic into the store.
// Messages that are not valid orders are logged and skipped.
type OrderConsumer struct {
	reader  MessageReader
	handler OrderCreator
	logger  logger.Logger
}

func NewOrderConsumer(cfg config.KafkaConfig, handler OrderCreator, log logger.Logger) *OrderConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.IngestTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})
	return newOrderConsumer(reader, handler, log)
}

func newOrderConsumer(reader MessageReader, handler OrderCreator, log logger.Logger) *OrderConsumer {
	return &OrderConsumer{
		reader:  reader,
		handler: handler,
		logger:  log,
	}
}

// Start reads until ctx is cancelled or the reader fails.
func (c *OrderConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read message: %w", err)
		}

		if err := c.handle(ctx, msg); err != nil {
			return err
		}
	}
}

func (c *OrderConsumer) handle(ctx context.Context, msg kafkago.Message) error {
	log := c.logger.WithFields(
		logger.String("topic", msg.Topic),
		logger.Int("partition", msg.Partition),
		logger.Int64("offset", msg.Offset),
	)

	dec := json.NewDecoder(bytes.NewReader(msg.Value))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		log.Warn("Skipping undecodable order message", logger.Error(err))
		return nil
	}

	view, err := c.handler.CreateOrder(ctx, payload)
	if errors.Is(err, order.ErrValidation) {
		log.Warn("Skipping invalid order message", logger.Error(err))
		return nil
	}
	if err != nil {
		return fmt.Errorf("handle order: %w", err)
	}

	log.Debug("Ingested order", logger.String("order_id", view.OrderID))
	return nil
}

func (c *OrderConsumer) Close() {
	_ = c.reader.Close()
}
