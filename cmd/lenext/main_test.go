package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/storacha/go-lenext/core/car"
	"github.com/storacha/go-lenext/forge"
	"github.com/storacha/go-lenext/mac/naive"
	"github.com/storacha/go-lenext/testing/fixtures"
	"github.com/stretchr/testify/require"
)

func field(t *testing.T, out, key string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, key+"="); ok {
			return v
		}
	}
	t.Fatalf("missing %s in output:\n%s", key, out)
	return ""
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run(nil, &stdout, &stderr))
	require.Contains(t, stderr.String(), "Usage: lenext")
	require.Equal(t, 2, run([]string{"bogus"}, &stdout, &stderr))
	require.Equal(t, 0, run([]string{"help"}, &stdout, &stderr))
}

func TestRunForge(t *testing.T) {
	key := naive.New(fixtures.Secret)
	macHex := hex.EncodeToString(key.Sum(fixtures.Message))

	t.Run("flags", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{
			"forge",
			"-message", string(fixtures.Message),
			"-mac", macHex,
			"-append", string(fixtures.Suffix),
			"-secret-len", "16",
		}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())

		// base16 multibase strings carry an "f" prefix
		msg, err := hex.DecodeString(strings.TrimPrefix(field(t, stdout.String(), "forged_message"), "f"))
		require.NoError(t, err)
		digest, err := hex.DecodeString(strings.TrimPrefix(field(t, stdout.String(), "forged_digest"), "f"))
		require.NoError(t, err)
		require.Equal(t, key.Sum(msg), digest)
		require.Equal(t, "16", field(t, stdout.String(), "secret_length"))
	})

	t.Run("config file and car", func(t *testing.T) {
		dir := t.TempDir()
		cfg := filepath.Join(dir, "scenario.json")
		require.NoError(t, os.WriteFile(cfg, []byte(`{
			"message": "user=alice&amount=1000",
			"mac": "`+macHex+`",
			"append_hex": "`+hex.EncodeToString(fixtures.Suffix)+`",
			"secret_length": 16,
			"encoding": "base64"
		}`), 0o600))
		carPath := filepath.Join(dir, "forgery.car")

		var stdout, stderr bytes.Buffer
		code := run([]string{"forge", "-config", cfg, "-car", carPath, "-compressor", "stdlib"}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		require.True(t, strings.HasPrefix(field(t, stdout.String(), "forged_digest"), "m"))

		f, err := os.Open(carPath)
		require.NoError(t, err)
		defer f.Close()
		roots, blocks, err := car.Decode(f)
		require.NoError(t, err)
		require.Len(t, roots, 1)
		res, err := forge.Load(roots[0], blocks)
		require.NoError(t, err)
		require.Equal(t, key.Sum(res.Message()), res.Digest())
		require.Equal(t, roots[0].String(), field(t, stdout.String(), "link"))
	})

	t.Run("json", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"forge", "-message", "a", "-mac", macHex, "-secret-len", "3", "-json"}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		require.Contains(t, stdout.String(), `"secretLength":3`)
	})

	t.Run("malformed mac", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"forge", "-message", "a", "-mac", "abcd", "-secret-len", "3", "-json"}, &stdout, &stderr)
		require.Equal(t, 1, code)
		require.Contains(t, stderr.String(), `"name":"MalformedDigest"`)
	})

	t.Run("missing secret length", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"forge", "-message", "a", "-mac", macHex}, &stdout, &stderr)
		require.Equal(t, 1, code)
		require.Contains(t, stderr.String(), "missing secret length")
	})
}

func TestRunDemo(t *testing.T) {
	t.Run("correct guess", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"demo"}, &stdout, &stderr), stderr.String())
		require.Equal(t, "true", field(t, stdout.String(), "naive_verified"))
		require.Equal(t, "false", field(t, stdout.String(), "hmac_verified"))
	})

	t.Run("wrong guess", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 1, run([]string{"demo", "-guess", "17"}, &stdout, &stderr))
		require.Equal(t, "false", field(t, stdout.String(), "naive_verified"))
	})

	t.Run("defaults match fixtures", func(t *testing.T) {
		require.Equal(t, string(fixtures.Secret), demoSecret)
		require.Equal(t, string(fixtures.Message), demoMessage)
		require.Equal(t, string(fixtures.Suffix), demoSuffix)

		var stdout, stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"demo"}, &stdout, &stderr), stderr.String())
		require.Equal(t, hex.EncodeToString(naive.New(fixtures.Secret).Sum(fixtures.Message)), field(t, stdout.String(), "naive_mac"))
	})
}

func TestRunSearch(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"search", "-secret", "hunter2", "-max", "32"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, "7", field(t, stdout.String(), "secret_length"))
	require.Equal(t, "true", field(t, stdout.String(), "verified"))

	stdout.Reset()
	stderr.Reset()
	code = run([]string{"search", "-secret", "hunter2", "-max", "3"}, &stdout, &stderr)
	require.Equal(t, 1, code)
}
