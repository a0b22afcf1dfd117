// Package forge mounts a length extension attack on MAC = SHA256(secret || message).
//
// Given a message, its MAC and the length of the secret, [Forge] produces
// message || glue || suffix together with the MAC the server will compute
// for it, without knowing the secret. The secret length is a guess that is
// never checked: a wrong guess still yields a [Result], it just will not
// verify. Confirming a forgery against the server is up to the caller (see
// package search).
package forge

import (
	"encoding/hex"
	"log/slog"

	"github.com/storacha/go-lenext/core/extend"
	"github.com/storacha/go-lenext/core/padding"
	"github.com/storacha/go-lenext/core/state"
)

// Forge extends message and its known mac with suffix, assuming the secret
// is secretLen bytes long. It fails only when mac is not a 32 byte digest,
// with a [state.MalformedDigest].
func Forge(message, mac, suffix []byte, secretLen uint64, opts ...Option) (Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Result{}, err
	}

	h, err := state.Decode(mac)
	if err != nil {
		return Result{}, err
	}

	// Bytes the server hashed to produce mac, and the glue padding that
	// terminated them.
	total := secretLen + uint64(len(message))
	glue := padding.Compute(total)

	forged := make([]byte, 0, len(message)+len(glue)+len(suffix))
	forged = append(forged, message...)
	forged = append(forged, glue...)
	forged = append(forged, suffix...)

	// h already absorbed secret || message || glue. Hash the suffix and the
	// padding for the full forged length on top of it.
	offset := total + uint64(len(glue))
	tail := make([]byte, 0, len(suffix)+padding.Size(offset+uint64(len(suffix))))
	tail = append(tail, suffix...)
	tail = padding.Append(tail, offset+uint64(len(suffix)))

	digest := state.Encode(extend.Extend(cfg.compressor, h, tail))

	cfg.logger.Debug("forged length extension",
		slog.Uint64("secret_length", secretLen),
		slog.Int("blocks", extend.Blocks(len(tail))),
		slog.String("message", hex.EncodeToString(message)),
		slog.String("glue", hex.EncodeToString(glue)),
		slog.String("suffix", hex.EncodeToString(suffix)),
		slog.String("forged_message", hex.EncodeToString(forged)),
		slog.String("forged_digest", hex.EncodeToString(digest)),
	)

	return Result{
		message:      forged,
		digest:       digest,
		glue:         glue,
		suffix:       append([]byte{}, suffix...),
		secretLength: secretLen,
	}, nil
}
