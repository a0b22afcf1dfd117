// Package extend resumes Merkle–Damgård hashing from a known compression
// state.
package extend

import (
	"github.com/storacha/go-lenext/core/compress"
	"github.com/storacha/go-lenext/core/state"
)

// Extend folds data into h one 64-byte block at a time using c. data is
// expected to already carry its trailing padding; a short final block is
// zero filled, which yields a state no honest hasher would produce.
func Extend(c compress.Compressor, h state.State, data []byte) state.State {
	var block [compress.BlockSize]byte
	for len(data) > 0 {
		n := copy(block[:], data)
		clear(block[n:])
		h = c.Compress(h, &block)
		data = data[n:]
	}
	return h
}

// Blocks is the number of compressions Extend performs for n bytes.
func Blocks(n int) int {
	return (n + compress.BlockSize - 1) / compress.BlockSize
}
