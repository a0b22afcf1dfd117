package compress

import (
	"crypto/sha256"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"

	simd "github.com/minio/sha256-simd"
	"github.com/storacha/go-lenext/core/state"
)

// Layout of the SHA-256 state produced by MarshalBinary in crypto/sha256 and
// compatible implementations: magic, H0..H7, buffered block, length.
const (
	magic256      = "sha\x03"
	marshaledSize = len(magic256) + state.Size + BlockSize + 8
)

// ErrNotResumable is returned when a hash does not expose a compatible
// marshaled state.
var ErrNotResumable = errors.New("hash state is not resumable")

type resumable interface {
	hash.Hash
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

type marshaled struct {
	newHash func() hash.Hash
}

// NewMarshaled builds a [Compressor] on top of a SHA-256 implementation by
// restoring its marshaled state with an arbitrary H0..H7 and an empty
// buffer, writing one block and reading the state back.
func NewMarshaled(newHash func() hash.Hash) (Compressor, error) {
	h, ok := newHash().(resumable)
	if !ok {
		return nil, ErrNotResumable
	}
	b, err := h.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshaling hash state: %w", err)
	}
	if len(b) != marshaledSize || string(b[:len(magic256)]) != magic256 {
		return nil, fmt.Errorf("%w: unexpected state layout (%d bytes)", ErrNotResumable, len(b))
	}
	return marshaled{newHash}, nil
}

func (m marshaled) Compress(h state.State, block *[BlockSize]byte) state.State {
	d := m.newHash().(resumable)

	b := make([]byte, 0, marshaledSize)
	b = append(b, magic256...)
	b = h.AppendBinary(b)
	b = append(b, make([]byte, BlockSize)...)
	b = binary.BigEndian.AppendUint64(b, 0)
	// The layout was checked in NewMarshaled.
	if err := d.UnmarshalBinary(b); err != nil {
		panic(fmt.Errorf("restoring hash state: %w", err))
	}
	d.Write(block[:])

	out, err := d.MarshalBinary()
	if err != nil {
		panic(fmt.Errorf("marshaling hash state: %w", err))
	}
	next, err := state.Decode(out[len(magic256) : len(magic256)+state.Size])
	if err != nil {
		panic(err)
	}
	return next
}

// Stdlib returns a [Compressor] backed by crypto/sha256.
func Stdlib() (Compressor, error) {
	return NewMarshaled(sha256.New)
}

// SIMD returns a [Compressor] backed by github.com/minio/sha256-simd, which
// uses SHA extensions or AVX2 where the CPU has them.
func SIMD() (Compressor, error) {
	return NewMarshaled(simd.New)
}
