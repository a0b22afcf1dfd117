package forge

import (
	"errors"
	"log/slog"

	"github.com/storacha/go-lenext/core/compress"
)

// Option is an option configuring a forgery.
type Option func(cfg *config) error

type config struct {
	compressor compress.Compressor
	logger     *slog.Logger
}

func newConfig(opts []Option) (config, error) {
	cfg := config{
		compressor: compress.Generic,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// WithCompressor configures the SHA-256 compression function used to resume
// hashing. The default is [compress.Generic].
func WithCompressor(c compress.Compressor) Option {
	return func(cfg *config) error {
		if c == nil {
			return errors.New("compressor must not be nil")
		}
		cfg.compressor = c
		return nil
	}
}

// WithLogger configures the logger forgery details are written to at debug
// level. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}
