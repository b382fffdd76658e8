package export

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models/events"
)

// Sink is a TableSink with a name for logging.
type Sink struct {
	Name string
	interfaces.TableSink
}

// Exporter persists a dataset to every sink and then announces its transactions.
type Exporter struct {
	logger    *zap.Logger
	sinks     []Sink
	publisher interfaces.EventPublisher
	topic     string
}

func NewExporter(logger *zap.Logger, sinks ...Sink) *Exporter {
	return &Exporter{logger: logger, sinks: sinks}
}

// WithPublisher makes Export publish one TransactionGenerated event per transaction to topic.
func (e *Exporter) WithPublisher(publisher interfaces.EventPublisher, topic string) *Exporter {
	e.publisher = publisher
	e.topic = topic
	return e
}

// Export writes every table to every sink, in order, stopping at the first failure.
// Events are only published once all sinks succeeded.
func (e *Exporter) Export(ctx context.Context, ds *models.Dataset) error {
	tables := ds.Tables()

	for _, sink := range e.sinks {
		for _, table := range tables {
			if err := sink.WriteTable(ctx, table); err != nil {
				return fmt.Errorf("export %s to %s: %w", table.Name, sink.Name, err)
			}
			e.logger.Info("table exported",
				zap.String("sink", sink.Name),
				zap.String("table", table.Name),
				zap.Int("rows", len(table.Rows)))
		}
	}

	if e.publisher == nil {
		return nil
	}

	envelopes := make([]events.Envelope, 0, len(ds.Transactions))
	for _, tx := range ds.Transactions {
		envelopes = append(envelopes, events.Envelope{
			Key: strconv.Itoa(tx.AccountID),
			Payload: events.TransactionGenerated{
				RunID:           ds.RunID.String(),
				TransactionID:   tx.TransactionID,
				CustomerID:      tx.CustomerID,
				AccountID:       tx.AccountID,
				Amount:          tx.TransactionAmount,
				TransactionType: string(tx.TransactionType),
				OccurredAt:      tx.TransactionTimestamp,
			},
		})
	}

	if err := e.publisher.Publish(ctx, e.topic, envelopes...); err != nil {
		return fmt.Errorf("publish transactions: %w", err)
	}
	e.logger.Info("transactions published", zap.String("topic", e.topic), zap.Int("events", len(envelopes)))
	return nil
}
