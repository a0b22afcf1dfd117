package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/storacha/go-lenext/internal/logger"
	"github.com/storacha/go-lenext/mac/naive"
	"github.com/storacha/go-lenext/search"
)

func runSearch(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	secret := fs.String("secret", demoSecret, "secret of the local oracle")
	message := fs.String("message", demoMessage, "message the oracle signs")
	suffix := fs.String("append", demoSuffix, "data to append")
	minLen := fs.Uint64("min", 0, "smallest secret length to try")
	maxLen := fs.Uint64("max", search.DefaultMaxSecretLength, "largest secret length to try")
	cacheSize := fs.Int("cache", search.DefaultCacheSize, "number of oracle verdicts to remember")
	encoding := fs.String("encoding", "", "multibase output encoding (default base16)")
	asJSON := fs.Bool("json", false, "write dag-json output")
	logLevel := fs.String("log-level", "info", "log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	log := logger.New(stderr, *logLevel)

	enc, err := parseEncoding(*encoding)
	if err != nil {
		reportError(stderr, log, *asJSON, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	key := naive.New([]byte(*secret))
	digest := key.Sum([]byte(*message))

	n, res, err := search.SecretLength(
		ctx,
		search.VerifierOracle(key),
		[]byte(*message),
		digest,
		[]byte(*suffix),
		search.WithRange(*minLen, *maxLen),
		search.WithCacheSize(*cacheSize),
		search.WithLogger(log),
	)
	if err != nil {
		reportError(stderr, log, *asJSON, err)
		return 1
	}
	log.Info("secret length found", slog.Uint64("secret_length", n))
	if err := printResult(stdout, res, enc, *asJSON); err != nil {
		reportError(stderr, log, *asJSON, err)
		return 1
	}
	if !*asJSON {
		fmt.Fprintf(stdout, "verified=%t\n", key.Verify(res.Message(), res.Signature()))
	}
	return 0
}
