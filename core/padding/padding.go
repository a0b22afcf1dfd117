package padding

import "encoding/binary"

// BlockSize is the Merkle–Damgård block size in bytes.
const BlockSize = 64

// lengthSize is the size of the big-endian bit-length trailer.
const lengthSize = 8

const marker = 0x80

// Size returns the number of padding bytes Compute(n) produces. It depends
// only on n mod BlockSize.
func Size(n uint64) int {
	m := int((n + 1) % BlockSize)
	zeros := BlockSize - lengthSize - m
	if m > BlockSize-lengthSize {
		zeros += BlockSize
	}
	return 1 + zeros + lengthSize
}

// Compute returns the padding that terminates a message of n bytes: a 0x80
// marker, zero fill up to 56 mod 64 and the message length in bits as a
// big-endian uint64. n+len(Compute(n)) is always a multiple of BlockSize.
func Compute(n uint64) []byte {
	pad := make([]byte, Size(n))
	pad[0] = marker
	binary.BigEndian.PutUint64(pad[len(pad)-lengthSize:], n*8)
	return pad
}

// Append appends the padding for a message of n bytes to b.
func Append(b []byte, n uint64) []byte {
	return append(b, Compute(n)...)
}
