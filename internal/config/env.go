package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

// envReader reads typed variables and keeps the first parse failure.
type envReader struct {
	err error
}

func (r *envReader) fail(key, reason string) {
	if r.err == nil {
		r.err = &models.ConfigurationError{Field: key, Reason: reason}
	}
}

func (r *envReader) getString(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func (r *envReader) getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, "is not an integer: "+v)
		return def
	}
	return n
}

func (r *envReader) getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, "is not a number: "+v)
		return def
	}
	return f
}

func (r *envReader) getDate(key string, def time.Time) time.Time {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		r.fail(key, "is not a YYYY-MM-DD date: "+v)
		return def
	}
	return d
}

func (r *envReader) getSeed(key string) *uint64 {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	s, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.fail(key, "is not an unsigned integer: "+v)
		return nil
	}
	return &s
}

func (r *envReader) getList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
