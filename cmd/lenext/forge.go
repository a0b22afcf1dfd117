package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"

	"github.com/storacha/go-lenext/forge"
	"github.com/storacha/go-lenext/internal/logger"
)

func runForge(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("forge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to JSON scenario file")
	message := fs.String("message", "", "known message")
	messageHex := fs.String("message-hex", "", "known message (hex)")
	macStr := fs.String("mac", "", "known MAC (hex, or multibase raw digest or multihash)")
	suffix := fs.String("append", "", "data to append")
	suffixHex := fs.String("append-hex", "", "data to append (hex)")
	secretLen := fs.Int64("secret-len", -1, "guessed secret length in bytes")
	encoding := fs.String("encoding", "", "multibase output encoding (default base16)")
	compressor := fs.String("compressor", "generic", "compression backend (generic|stdlib|simd)")
	carPath := fs.String("car", "", "write the forgery to a CAR file")
	asJSON := fs.Bool("json", false, "write dag-json output")
	logLevel := fs.String("log-level", "info", "log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	log := logger.New(stderr, *logLevel)

	sc, err := loadScenario(*configPath)
	if err != nil {
		reportError(stderr, log, *asJSON, err)
		return 1
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["message"] || set["message-hex"] {
		sc.Message, sc.MessageHex = *message, *messageHex
	}
	if set["mac"] {
		sc.MAC = *macStr
	}
	if set["append"] || set["append-hex"] {
		sc.Append, sc.AppendHex = *suffix, *suffixHex
	}
	if *secretLen >= 0 {
		l := uint64(*secretLen)
		sc.SecretLength = &l
	}
	if set["encoding"] {
		sc.Encoding = *encoding
	}

	res, err := forgeScenario(sc, *compressor, log)
	if err != nil {
		reportError(stderr, log, *asJSON, err)
		return 1
	}

	enc, err := parseEncoding(sc.Encoding)
	if err != nil {
		reportError(stderr, log, *asJSON, err)
		return 1
	}
	if err := printResult(stdout, res, enc, *asJSON); err != nil {
		reportError(stderr, log, *asJSON, err)
		return 1
	}
	if *carPath != "" {
		if err := writeCAR(*carPath, res); err != nil {
			reportError(stderr, log, *asJSON, err)
			return 1
		}
		log.Info("wrote forgery archive", slog.String("path", *carPath))
	}
	return 0
}

func forgeScenario(sc scenario, compressorName string, log *slog.Logger) (forge.Result, error) {
	if sc.SecretLength == nil {
		return forge.Result{}, errors.New("missing secret length")
	}
	msg, err := decodeBytes(sc.Message, sc.MessageHex)
	if err != nil {
		return forge.Result{}, err
	}
	digest, err := decodeDigest(sc.MAC)
	if err != nil {
		return forge.Result{}, err
	}
	suffix, err := decodeBytes(sc.Append, sc.AppendHex)
	if err != nil {
		return forge.Result{}, err
	}
	c, err := parseCompressor(compressorName)
	if err != nil {
		return forge.Result{}, err
	}
	return forge.Forge(msg, digest, suffix, *sc.SecretLength, forge.WithCompressor(c), forge.WithLogger(log))
}
