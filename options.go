package moneydashboard

import (
	"net/http"
	"time"

	"github.com/MKhiriev/moneydashboard/internal/config"
	"github.com/MKhiriev/moneydashboard/internal/logger"
	"github.com/rs/zerolog"
)

// Option adjusts a Client at construction.
type Option func(*options)

type options struct {
	logger    *logger.Logger
	timeout   *time.Duration
	transport http.RoundTripper
	limit     int
}

func (o *options) apply(cfg *config.ClientConfig) {
	if o.timeout != nil {
		cfg.Adapter.RequestTimeout = *o.timeout
	}
	if o.transport != nil {
		cfg.Adapter.Transport = o.transport
	}
	if o.limit > 0 {
		cfg.App.TransactionsLimit = o.limit
	}
}

// WithLogger sends client logs to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithRequestTimeout bounds every HTTP request. Zero disables the timeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = &d
	}
}

// WithTransport replaces http.DefaultTransport for every session, e.g. to set
// a proxy or TLS configuration.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.transport = rt
	}
}

// WithTransactionsLimit changes the limit used by Transactions when called
// with limit <= 0. Non-positive values are ignored.
func WithTransactionsLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}
