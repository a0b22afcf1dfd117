package signature

import (
	"testing"

	"github.com/multiformats/go-multibase"
	"github.com/stretchr/testify/require"
)

const testCode = 0x12

func TestSignature(t *testing.T) {
	raw := []byte("0123456789abcdef0123456789abcdef")

	t.Run("roundtrip", func(t *testing.T) {
		s := NewSignature(testCode, raw)
		d, err := Decode(Encode(s))
		require.NoError(t, err)
		require.Equal(t, testCode, int(d.Code()))
		require.Equal(t, uint64(len(raw)), d.Size())
		require.Equal(t, raw, d.Raw())
	})

	t.Run("multi byte code", func(t *testing.T) {
		s := NewSignature(0x300001, raw)
		require.Equal(t, uint64(0x300001), s.Code())
		require.Equal(t, raw, s.Raw())
	})

	t.Run("format parse", func(t *testing.T) {
		s := NewSignature(testCode, raw)
		str, err := Format(s, multibase.Base64)
		require.NoError(t, err)
		require.Equal(t, byte('m'), str[0])

		p, err := Parse(str)
		require.NoError(t, err)
		require.Equal(t, s.Bytes(), p.Bytes())
	})

	t.Run("truncated", func(t *testing.T) {
		b := NewSignature(testCode, raw).Bytes()
		_, err := Decode(b[:len(b)-1])
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(nil)
		require.Error(t, err)
	})
}
