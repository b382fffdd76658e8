package models

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks invalid generation settings. Raised before any stage runs.
	ErrConfiguration = errors.New("configuration error")
	// ErrLookup marks a reference to a customer or account that does not exist.
	// It means the pipeline broke its own structural contract.
	ErrLookup = errors.New("lookup error")
)

type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

type LookupError struct {
	Table string
	Key   string
	ID    int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: no %s row with %s=%d", ErrLookup, e.Table, e.Key, e.ID)
}

func (e *LookupError) Unwrap() error { return ErrLookup }
