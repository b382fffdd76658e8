package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/config"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/events/kafka"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/export"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/generator"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/logging"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/names"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/random"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/storage/csvfile"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/storage/memory"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/storage/postgres"
)

func main() {
	logger, err := logging.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("generation failed", zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var seed uint64
	rs := random.NewSource()
	if cfg.Seed != nil {
		seed = *cfg.Seed
		rs = random.NewSeededSource(seed)
	}

	ds, err := generator.New(cfg, rs, names.NewFakeProvider(seed), logger).Generate(ctx)
	if err != nil {
		return err
	}

	sinks, cleanup, err := openSinks(ctx, cfg, ds, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	exporter := export.NewExporter(logger, sinks...)
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaCompression)
		if err != nil {
			return err
		}
		defer publisher.Close()
		exporter.WithPublisher(publisher, cfg.KafkaTopic)
	}

	if err := exporter.Export(ctx, ds); err != nil {
		return err
	}

	logger.Info("generation complete",
		zap.String("run_id", ds.RunID.String()),
		zap.Int("customers", len(ds.Customers)),
		zap.Int("accounts", len(ds.ProvisionedAccounts)),
		zap.Int("transactions", len(ds.Transactions)),
		zap.Int("ledger_rows", len(ds.Accounts)))
	return nil
}

func openSinks(ctx context.Context, cfg config.Config, ds *models.Dataset, logger *zap.Logger) ([]export.Sink, func(), error) {
	var (
		sinks   []export.Sink
		closers []func()
	)
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}

	for _, name := range cfg.Sinks {
		switch name {
		case config.SinkCSV:
			store, err := csvfile.NewCSVTableStore(cfg.OutputDir, time.Now())
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			logger.Info("exporting csv", zap.String("dir", store.Dir()))
			sinks = append(sinks, export.Sink{Name: name, TableSink: store})

		case config.SinkPostgres:
			db, err := sql.Open("postgres", cfg.PostgresURL)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			closers = append(closers, func() { db.Close() })
			if err := db.PingContext(ctx); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("postgres: %w", err)
			}
			sinks = append(sinks, export.Sink{Name: name, TableSink: postgres.NewPostgresTableStore(db, ds.RunID)})

		case config.SinkMemory:
			store := memory.NewMemoryTableStore()
			sinks = append(sinks, export.Sink{Name: name, TableSink: store})
			closers = append(closers, func() {
				for _, table := range store.TableNames() {
					t, _ := store.Table(table)
					logger.Debug("dry run table", zap.String("table", table), zap.Int("rows", len(t.Rows)))
				}
			})
		}
	}

	return sinks, cleanup, nil
}
