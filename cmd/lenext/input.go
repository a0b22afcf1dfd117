package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/storacha/go-lenext/core/compress"
	"github.com/storacha/go-lenext/internal/config"
	"github.com/storacha/go-lenext/mac"
)

// scenario is the JSON file accepted by -config. Flags override it.
type scenario struct {
	Message      string  `json:"message"`
	MessageHex   string  `json:"message_hex"`
	MAC          string  `json:"mac"`
	Append       string  `json:"append"`
	AppendHex    string  `json:"append_hex"`
	SecretLength *uint64 `json:"secret_length"`
	Encoding     string  `json:"encoding"`
}

func loadScenario(path string) (scenario, error) {
	var s scenario
	if path == "" {
		return s, nil
	}
	if err := config.LoadJSONFile(path, &s); err != nil {
		return s, err
	}
	return s, nil
}

// decodeBytes returns the hex input if set, the text input otherwise.
func decodeBytes(text, hexStr string) ([]byte, error) {
	if hexStr != "" {
		b, err := hex.DecodeString(hexStr)
		if err != nil {
			return nil, fmt.Errorf("decoding hex: %w", err)
		}
		return b, nil
	}
	return []byte(text), nil
}

// decodeDigest accepts a bare hex string or a multibase string holding a raw
// digest or a sha2-256 multihash.
func decodeDigest(str string) ([]byte, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, errors.New("missing MAC")
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		_, b, err = multibase.Decode(str)
		if err != nil {
			return nil, fmt.Errorf("MAC is neither hex nor multibase: %w", err)
		}
	}
	return mac.ParseDigest(b)
}

func parseEncoding(name string) (multibase.Encoder, error) {
	if name == "" {
		name = "base16"
	}
	enc, err := multibase.EncoderByName(name)
	if err != nil {
		return multibase.Encoder{}, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

func parseCompressor(name string) (compress.Compressor, error) {
	switch name {
	case "", "generic":
		return compress.Generic, nil
	case "stdlib":
		return compress.Stdlib()
	case "simd":
		return compress.SIMD()
	default:
		return nil, fmt.Errorf("unknown compressor: %s", name)
	}
}
