package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Message      string  `json:"message"`
	SecretLength *uint64 `json:"secret_length"`
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"message":"user=alice","secret_length":16}`), 0o600))

	var s sample
	require.NoError(t, LoadJSONFile(path, &s))
	require.Equal(t, "user=alice", s.Message)
	require.NotNil(t, s.SecretLength)
	require.Equal(t, uint64(16), *s.SecretLength)
}

func TestDecodeJSON(t *testing.T) {
	var s sample
	require.Error(t, DecodeJSON([]byte(`{"unknown":1}`), &s))
	require.Error(t, DecodeJSON([]byte(`{`), &s))
	require.Error(t, LoadJSONFile(filepath.Join(t.TempDir(), "missing.json"), &s))
}
