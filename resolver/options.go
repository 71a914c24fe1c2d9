package resolver

import (
	"io"
	"log/slog"
)

type options struct {
	cacheSize int
	logger    *slog.Logger
}

// Option configures Resolver construction.
type Option func(*options)

func defaultOptions() options {
	return options{
		cacheSize: DefaultCacheSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithCacheSize bounds the exact-lookup cache to n entries. The default is
// DefaultCacheSize; eviction is least-recently-used once the bound is
// reached.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithLogger attaches a structured logger. If nil is passed, logging stays
// disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			return
		}
		o.logger = l
	}
}
