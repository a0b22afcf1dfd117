package state

import (
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/storacha/go-lenext/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncode(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		for range 32 {
			d := helpers.RandomBytes(Size)
			h, err := Decode(d)
			require.NoError(t, err)
			require.Equal(t, d, Encode(h))
		}
	})

	t.Run("big endian word order", func(t *testing.T) {
		d := make([]byte, Size)
		d[0], d[3], d[31] = 0x01, 0x02, 0x03
		h, err := Decode(d)
		require.NoError(t, err)
		require.Equal(t, uint32(0x01000002), h[0])
		require.Equal(t, uint32(0x00000003), h[7])
	})

	t.Run("empty message digest", func(t *testing.T) {
		// SHA-256 of the empty string is the compression of the initial
		// state over a single padding block, so it never equals Initial.
		sum := sha256.Sum256(nil)
		h, err := Decode(sum[:])
		require.NoError(t, err)
		require.NotEqual(t, Initial, h)
		require.Equal(t, sum[:], Encode(h))
	})
}

func TestMalformedDigest(t *testing.T) {
	for _, n := range []int{0, 1, 20, 31, 33, 64} {
		_, err := Decode(make([]byte, n))
		require.Error(t, err)

		var md MalformedDigest
		require.True(t, errors.As(err, &md))
		require.Equal(t, n, md.Length())
		require.Equal(t, MalformedDigestName, md.Name())
		require.NotEmpty(t, md.Stack())
	}
}
