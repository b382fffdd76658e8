package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models/events"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
}

// NewPublisher returns a Publisher writing to brokers. The topic is set per message.
func NewPublisher(brokers []string, compression string) (*Publisher, error) {
	codec, err := parseCompression(compression)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			Compression:            codec,
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}, nil
}

// Publish writes all envelopes to topic in a single call. Envelopes sharing a key land on
// the same partition, in the order given.
func (p *Publisher) Publish(ctx context.Context, topic string, envelopes ...events.Envelope) error {
	if len(envelopes) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(envelopes))
	for _, e := range envelopes {
		data, err := json.Marshal(e.Payload)
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Topic: topic,
			Key:   []byte(e.Key),
			Value: data,
		})
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func parseCompression(name string) (kafka.Compression, error) {
	switch name {
	case "", "none":
		return 0, nil
	case "gzip":
		return kafka.Gzip, nil
	case "snappy":
		return kafka.Snappy, nil
	case "lz4":
		return kafka.Lz4, nil
	case "zstd":
		return kafka.Zstd, nil
	}
	return 0, fmt.Errorf("kafka: unknown compression %q", name)
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
