package kafka

import (
	"context"
	"encoding/json"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// OrderEventProducer publishes order-placed events. Events are keyed by
// email so one user's orders land on the same partition in order.
type OrderEventProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewOrderEventProducer(brokers []string, topic string, logger *zap.Logger) *OrderEventProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	logger.Info("kafka producer initialized",
		zap.String("topic", topic), zap.Strings("brokers", brokers))
	return &OrderEventProducer{writer: w, logger: logger}
}

func (p *OrderEventProducer) PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Email),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("failed to publish order event", zap.Error(err))
		return err
	}
	return nil
}

func (p *OrderEventProducer) Close() {
	_ = p.writer.Close()
}
