package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/models/events"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := &Publisher{writer: w}

	event := events.TransactionGenerated{
		RunID:           "run-1",
		TransactionID:   3,
		CustomerID:      1,
		AccountID:       2,
		Amount:          decimal.RequireFromString("-12.34"),
		TransactionType: "Payment",
		OccurredAt:      time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	err := p.Publish(context.Background(), "payment_transactions", events.Envelope{Key: "2", Payload: event})
	require.NoError(t, err)

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "payment_transactions", w.msgs[0].Topic)
	assert.Equal(t, []byte("2"), w.msgs[0].Key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, "-12.34", decoded["amount"])
	assert.Equal(t, float64(3), decoded["transaction_id"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_PublishNothing(t *testing.T) {
	w := &recordingWriter{err: errors.New("should not be called")}

	assert.NoError(t, (&Publisher{writer: w}).Publish(context.Background(), "t"))
}

func TestPublisher_WriterError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}

	err := (&Publisher{writer: w}).Publish(context.Background(), "t", events.Envelope{Key: "1", Payload: 1})
	assert.EqualError(t, err, "broker down")
}

func TestNewPublisher_Compression(t *testing.T) {
	for _, codec := range []string{"", "none", "gzip", "snappy", "lz4", "zstd"} {
		p, err := NewPublisher([]string{"localhost:9092"}, codec)
		require.NoError(t, err, codec)
		require.NoError(t, p.Close())
	}

	_, err := NewPublisher([]string{"localhost:9092"}, "brotli")
	assert.Error(t, err)
}
