package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"sales_analytics/internal/config"
	"sales_analytics/pkg/logger"
)

type OrderProducer struct {
	client *kgo.Client
	topic  string
	logger logger.Logger
}

func NewOrderProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderProducer, error) {
	log.Info("Creating Kafka producer",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.EventsTopic),
	)

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.EventsTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &OrderProducer{
		client: client,
		topic:  cfg.EventsTopic,
		logger: log,
	}, nil
}

// PublishOrder produces payload synchronously, keyed by key so that events of one
// order land on the same partition.
func (p *OrderProducer) PublishOrder(ctx context.Context, key string, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}
	if p.client == nil {
		return fmt.Errorf("kafka producer for topic %s is not initialized", p.topic)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(key),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		p.logger.Error("Failed to publish to Kafka",
			logger.String("topic", p.topic),
			logger.Int("payload_bytes", len(payload)),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	p.logger.Debug("Published message", logger.String("topic", p.topic), logger.String("key", key))
	return nil
}

func (p *OrderProducer) Close(ctx context.Context) error {
	p.logger.Info("Closing Kafka producer", logger.String("topic", p.topic))
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
