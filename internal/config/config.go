package config

import (
	"errors"
	"io/fs"
	"slices"
	"time"

	"github.com/joho/godotenv"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/ledger"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

const dateLayout = "2006-01-02"

const (
	SinkCSV      = "csv"
	SinkPostgres = "postgres"
	SinkMemory   = "memory"
)

// Config holds every setting of a generation run
type Config struct {
	NumberOfCustomers    int
	NumberOfTransactions int

	SavingsAccountProbability     float64
	CurrentAccountProbability     float64 // reserved, current accounts are always opened
	MaxSavingsAccountsPerCustomer int
	MaxCurrentAccountsPerCustomer int

	WindowStart time.Time
	WindowEnd   time.Time

	BirthdateLatest   time.Time
	BirthdateEarliest time.Time

	Seed       *uint64 // nil means a non-reproducible run
	LedgerMode ledger.Mode

	Sinks            []string
	OutputDir        string
	PostgresURL      string
	KafkaBrokers     []string
	KafkaTopic       string
	KafkaCompression string
}

// Default returns the settings the generator ships with.
func Default() Config {
	return Config{
		NumberOfCustomers:             100,
		NumberOfTransactions:          2000,
		SavingsAccountProbability:     0,
		CurrentAccountProbability:     1,
		MaxSavingsAccountsPerCustomer: 2,
		MaxCurrentAccountsPerCustomer: 3,
		WindowStart:                   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:                     time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC),
		BirthdateLatest:               time.Date(2004, 12, 31, 0, 0, 0, 0, time.UTC),
		BirthdateEarliest:             time.Date(1934, 12, 31, 0, 0, 0, 0, time.UTC),
		LedgerMode:                    ledger.ModeOrigin,
		Sinks:                         []string{SinkCSV},
		OutputDir:                     "./export",
		KafkaTopic:                    "payment_transactions",
		KafkaCompression:              "lz4",
	}
}

// Load reads an optional .env file and then the environment on top of Default.
// The returned config has been validated.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	cfg := Default()
	r := envReader{}

	cfg.NumberOfCustomers = r.getInt("NUMBER_OF_CUSTOMERS", cfg.NumberOfCustomers)
	cfg.NumberOfTransactions = r.getInt("NUMBER_OF_TRANSACTIONS", cfg.NumberOfTransactions)
	cfg.SavingsAccountProbability = r.getFloat("SAVINGS_ACCOUNT_PROBABILITY", cfg.SavingsAccountProbability)
	cfg.CurrentAccountProbability = r.getFloat("CURRENT_ACCOUNT_PROBABILITY", cfg.CurrentAccountProbability)
	cfg.MaxSavingsAccountsPerCustomer = r.getInt("MAX_SAVINGS_ACCOUNTS_PER_CUSTOMER", cfg.MaxSavingsAccountsPerCustomer)
	cfg.MaxCurrentAccountsPerCustomer = r.getInt("MAX_CURRENT_ACCOUNTS_PER_CUSTOMER", cfg.MaxCurrentAccountsPerCustomer)
	cfg.WindowStart = r.getDate("WINDOW_START", cfg.WindowStart)
	cfg.WindowEnd = r.getDate("WINDOW_END", cfg.WindowEnd)
	cfg.BirthdateLatest = r.getDate("BIRTHDATE_LATEST", cfg.BirthdateLatest)
	cfg.BirthdateEarliest = r.getDate("BIRTHDATE_EARLIEST", cfg.BirthdateEarliest)
	cfg.Seed = r.getSeed("GENERATOR_SEED")
	cfg.LedgerMode = ledger.Mode(r.getString("LEDGER_MODE", string(cfg.LedgerMode)))
	cfg.Sinks = r.getList("SINKS", cfg.Sinks)
	cfg.OutputDir = r.getString("OUTPUT_DIR", cfg.OutputDir)
	cfg.PostgresURL = r.getString("POSTGRES_URL", cfg.PostgresURL)
	cfg.KafkaBrokers = r.getList("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaTopic = r.getString("KAFKA_TOPIC", cfg.KafkaTopic)
	cfg.KafkaCompression = r.getString("KAFKA_COMPRESSION", cfg.KafkaCompression)

	if r.err != nil {
		return Config{}, r.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the generator cannot run with. Every failure is a *models.ConfigurationError.
func (c Config) Validate() error {
	invalid := func(field, reason string) error {
		return &models.ConfigurationError{Field: field, Reason: reason}
	}

	switch {
	case c.NumberOfCustomers <= 0:
		return invalid("numberOfCustomers", "must be positive")
	case c.NumberOfTransactions <= 0:
		return invalid("numberOfTransactions", "must be positive")
	case c.SavingsAccountProbability < 0 || c.SavingsAccountProbability > 1:
		return invalid("savingsAccountProbability", "must be within [0, 1]")
	case c.CurrentAccountProbability < 0 || c.CurrentAccountProbability > 1:
		return invalid("currentAccountProbability", "must be within [0, 1]")
	case c.MaxSavingsAccountsPerCustomer < 1:
		return invalid("maxSavingsAccountsPerCustomer", "must be at least 1")
	case c.MaxCurrentAccountsPerCustomer < 1:
		return invalid("maxCurrentAccountsPerCustomer", "must be at least 1")
	case c.WindowEnd.Before(c.WindowStart):
		return invalid("windowEnd", "must not be before windowStart")
	}

	if _, err := ledger.ParseMode(string(c.LedgerMode)); err != nil {
		return err
	}

	if len(c.Sinks) == 0 {
		return invalid("sinks", "at least one sink is required")
	}
	for _, sink := range c.Sinks {
		if !slices.Contains([]string{SinkCSV, SinkPostgres, SinkMemory}, sink) {
			return invalid("sinks", "unknown sink "+sink)
		}
	}
	if slices.Contains(c.Sinks, SinkPostgres) && c.PostgresURL == "" {
		return invalid("postgresURL", "required by the postgres sink")
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return invalid("kafkaTopic", "required when kafka brokers are set")
	}
	if !slices.Contains([]string{"", "none", "gzip", "snappy", "lz4", "zstd"}, c.KafkaCompression) {
		return invalid("kafkaCompression", "unknown codec "+c.KafkaCompression)
	}
	return nil
}
