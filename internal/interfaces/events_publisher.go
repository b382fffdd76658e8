package interfaces

import (
	"context"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/models/events"
)

type EventPublisher interface {
	Publish(ctx context.Context, topic string, envelopes ...events.Envelope) error
}
