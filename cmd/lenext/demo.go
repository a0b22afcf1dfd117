package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/storacha/go-lenext/forge"
	"github.com/storacha/go-lenext/internal/logger"
	"github.com/storacha/go-lenext/mac/hmacsha256"
	"github.com/storacha/go-lenext/mac/naive"
	"github.com/storacha/go-lenext/mac/signature"
)

// Defaults for the local demo server.
const (
	demoSecret  = "supersecretkey!!"
	demoMessage = "user=alice&amount=1000"
	demoSuffix  = "&admin=true"
)

func runDemo(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	secret := fs.String("secret", demoSecret, "server secret")
	message := fs.String("message", demoMessage, "message the server signs")
	suffix := fs.String("append", demoSuffix, "data to append")
	guess := fs.Int64("guess", -1, "guessed secret length (default: the real length)")
	logLevel := fs.String("log-level", "info", "log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	log := logger.New(stderr, *logLevel)

	key := naive.New([]byte(*secret))
	secretLen := uint64(len(*secret))
	if *guess >= 0 {
		secretLen = uint64(*guess)
	}

	sig := key.Sign([]byte(*message))
	fmt.Fprintf(stdout, "message=%q\n", *message)
	fmt.Fprintf(stdout, "naive_mac=%s\n", hex.EncodeToString(sig.Raw()))

	res, err := forge.Forge([]byte(*message), sig.Raw(), []byte(*suffix), secretLen, forge.WithLogger(log))
	if err != nil {
		reportError(stderr, log, false, err)
		return 1
	}
	fmt.Fprintf(stdout, "secret_length_guess=%d\n", secretLen)
	fmt.Fprintf(stdout, "glue=%s\n", hex.EncodeToString(res.Glue()))
	fmt.Fprintf(stdout, "forged_message=%s\n", hex.EncodeToString(res.Message()))
	fmt.Fprintf(stdout, "forged_mac=%s\n", hex.EncodeToString(res.Digest()))

	accepted := key.Verify(res.Message(), res.Signature())
	fmt.Fprintf(stdout, "naive_verified=%t\n", accepted)

	hk := hmacsha256.New([]byte(*secret))
	hsig := hk.Sign([]byte(*message))
	hres, err := forge.Forge([]byte(*message), hsig.Raw(), []byte(*suffix), secretLen, forge.WithLogger(log))
	if err != nil {
		reportError(stderr, log, false, err)
		return 1
	}
	hmacAccepted := hk.Verify(hres.Message(), signature.NewSignature(hmacsha256.Code, hres.Digest()))
	fmt.Fprintf(stdout, "hmac_mac=%s\n", hex.EncodeToString(hsig.Raw()))
	fmt.Fprintf(stdout, "hmac_verified=%t\n", hmacAccepted)

	log.Info("demo finished", slog.Bool("naive_forged", accepted), slog.Bool("hmac_forged", hmacAccepted))
	if !accepted {
		return 1
	}
	return 0
}
