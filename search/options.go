package search

import (
	"errors"
	"log/slog"

	"github.com/storacha/go-lenext/forge"
)

// DefaultMaxSecretLength is the largest guess tried unless configured.
var DefaultMaxSecretLength uint64 = 64

// DefaultCacheSize is the number of oracle verdicts remembered unless
// configured.
var DefaultCacheSize = 1024

// Option is an option configuring a [Searcher].
type Option func(cfg *config) error

type config struct {
	min, max  uint64
	cacheSize int
	forge     []forge.Option
	logger    *slog.Logger
}

// WithRange configures the inclusive range of secret lengths to try.
func WithRange(lo, hi uint64) Option {
	return func(cfg *config) error {
		cfg.min = lo
		cfg.max = hi
		return nil
	}
}

// WithCacheSize configures how many oracle verdicts are remembered. Pass a
// value less than 1 to use [DefaultCacheSize].
func WithCacheSize(size int) Option {
	return func(cfg *config) error {
		if size <= 0 {
			size = DefaultCacheSize
		}
		cfg.cacheSize = size
		return nil
	}
}

// WithForgeOptions passes options to every [forge.Forge] call.
func WithForgeOptions(opts ...forge.Option) Option {
	return func(cfg *config) error {
		cfg.forge = append(cfg.forge, opts...)
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}
