// Package kafka publishes order lifecycle events to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventOrderDeleted is the type field of hard-deletion messages.
const EventOrderDeleted = "order.deleted"

var ErrNoBrokers = errors.New("no kafka brokers configured")

var (
	_ ports.OrderEventPublisher = (*Publisher)(nil)
	_ ports.OrderEventPublisher = NoopPublisher{}
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// OrderDeletedMessage is the JSON body of an order.deleted message.
type OrderDeletedMessage struct {
	Type           string    `json:"type"`
	OrderID        int64     `json:"order_id"`
	No             string    `json:"no"`
	DetailsRemoved int64     `json:"details_removed"`
	WasSoftDeleted bool      `json:"was_soft_deleted"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher writes events to a single topic, keyed by order id so that all
// events of one order land on the same partition.
type Publisher struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

// NewPublisher creates a publisher backed by a kafka-go writer.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("empty topic")
	}

	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}

	return newPublisher(writer, topic, logger), nil
}

func newPublisher(writer messageWriter, topic string, logger *zap.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

func (p *Publisher) PublishOrderDeleted(ctx context.Context, event order.DeletedEvent) error {
	body, err := json.Marshal(OrderDeletedMessage{
		Type:           EventOrderDeleted,
		OrderID:        event.OrderID.Int64(),
		No:             event.No,
		DetailsRemoved: event.DetailsRemoved,
		WasSoftDeleted: event.WasSoftDeleted,
		OccurredAt:     event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", EventOrderDeleted, err)
	}

	msg := kafkago.Message{
		Key:   []byte(event.OrderID.String()),
		Value: body,
		Headers: []kafkago.Header{
			{Key: "type", Value: []byte(EventOrderDeleted)},
		},
		Time: event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s to %s: %w", EventOrderDeleted, p.topic, err)
	}

	p.logger.Debug("order event published",
		zap.String("topic", p.topic),
		zap.String("type", EventOrderDeleted),
		zap.Stringer("order_id", event.OrderID),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. It is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderDeleted(context.Context, order.DeletedEvent) error {
	return nil
}
