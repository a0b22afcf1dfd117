// Package state converts between SHA-256 digests and the eight 32-bit words
// of the compression state they serialize.
package state

import (
	"encoding/binary"
	"fmt"

	"github.com/storacha/go-lenext/core/result/failure"
)

// Words is the number of 32-bit words in the compression state.
const Words = 8

// Size is the size in bytes of a serialized state, i.e. a digest.
const Size = Words * 4

// MalformedDigestName is the failure name of [MalformedDigest].
const MalformedDigestName = "MalformedDigest"

// State is the SHA-256 intermediate hash value H0..H7.
type State [Words]uint32

// Initial is the SHA-256 initial hash value (FIPS 180-4, 5.3.3).
var Initial = State{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// MalformedDigest is returned when a digest is not exactly [Size] bytes.
type MalformedDigest struct {
	failure.NamedWithStackTrace
	length int
}

func NewMalformedDigest(length int) MalformedDigest {
	return MalformedDigest{failure.NamedWithCurrentStackTrace(MalformedDigestName), length}
}

func (e MalformedDigest) Error() string {
	return fmt.Sprintf("malformed digest: got %d bytes, expected %d", e.length, Size)
}

// Length is the length of the rejected digest.
func (e MalformedDigest) Length() int {
	return e.length
}

// Decode reads a digest as eight big-endian words.
func Decode(digest []byte) (State, error) {
	var h State
	if len(digest) != Size {
		return h, NewMalformedDigest(len(digest))
	}
	for i := range h {
		h[i] = binary.BigEndian.Uint32(digest[i*4:])
	}
	return h, nil
}

// Encode serializes the state as a digest. It is the inverse of [Decode].
func Encode(h State) []byte {
	return h.AppendBinary(make([]byte, 0, Size))
}

// AppendBinary appends the big-endian serialization of the state to b.
func (h State) AppendBinary(b []byte) []byte {
	for _, w := range h {
		b = binary.BigEndian.AppendUint32(b, w)
	}
	return b
}
