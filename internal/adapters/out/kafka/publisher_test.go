package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func deletedEvent() order.DeletedEvent {
	return order.DeletedEvent{
		OrderID:        kernel.MustNewID(42),
		No:             "20240101000042",
		DetailsRemoved: 3,
		WasSoftDeleted: true,
		OccurredAt:     time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishOrderDeleted(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newPublisher(writer, "orders", zap.NewNop())

	err := publisher.PublishOrderDeleted(t.Context(), deletedEvent())

	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, []kafkago.Header{{Key: "type", Value: []byte(EventOrderDeleted)}}, msg.Headers)

	var body OrderDeletedMessage
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, OrderDeletedMessage{
		Type:           EventOrderDeleted,
		OrderID:        42,
		No:             "20240101000042",
		DetailsRemoved: 3,
		WasSoftDeleted: true,
		OccurredAt:     time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}, body)
}

func TestPublisher_PublishOrderDeleted_WriteError(t *testing.T) {
	writeErr := errors.New("leader not available")
	publisher := newPublisher(&recordingWriter{err: writeErr}, "orders", zap.NewNop())

	err := publisher.PublishOrderDeleted(t.Context(), deletedEvent())

	require.ErrorIs(t, err, writeErr)
	assert.Contains(t, err.Error(), "write order.deleted to orders")
}

func TestPublisher_Close(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newPublisher(writer, "orders", zap.NewNop())

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestNewPublisher(t *testing.T) {
	_, err := NewPublisher(nil, "orders", zap.NewNop())
	require.ErrorIs(t, err, ErrNoBrokers)

	_, err = NewPublisher([]string{"localhost:9092"}, " ", zap.NewNop())
	require.Error(t, err)

	publisher, err := NewPublisher([]string{"localhost:9092"}, "orders", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestNoopPublisher(t *testing.T) {
	require.NoError(t, NoopPublisher{}.PublishOrderDeleted(t.Context(), deletedEvent()))
}
