package signature

import (
	"bytes"
	"fmt"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
)

// Signature is a MAC tagged with the algorithm that produced it:
// varint(code) || varint(len(raw)) || raw.
type Signature interface {
	Code() uint64
	Size() uint64
	Bytes() []byte
	// Raw MAC (without algorithm info).
	Raw() []byte
}

func NewSignature(code uint64, raw []byte) Signature {
	cl := varint.UvarintSize(code)
	rl := varint.UvarintSize(uint64(len(raw)))
	sig := make(signature, cl+rl+len(raw))
	varint.PutUvarint(sig, code)
	varint.PutUvarint(sig[cl:], uint64(len(raw)))
	copy(sig[cl+rl:], raw)
	return sig
}

func Encode(s Signature) []byte {
	return s.Bytes()
}

// Decode validates the envelope of an encoded signature.
func Decode(b []byte) (Signature, error) {
	r := bytes.NewReader(b)
	if _, err := varint.ReadUvarint(r); err != nil {
		return nil, fmt.Errorf("reading signature code: %w", err)
	}
	size, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading signature size: %w", err)
	}
	if uint64(r.Len()) != size {
		return nil, fmt.Errorf("invalid signature size: %d, wanted: %d", r.Len(), size)
	}
	sig := make(signature, len(b))
	copy(sig, b)
	return sig, nil
}

// Format encodes the signature as a multibase string.
func Format(s Signature, base multibase.Encoding) (string, error) {
	return multibase.Encode(base, s.Bytes())
}

// Parse decodes a multibase encoded signature.
func Parse(str string) (Signature, error) {
	_, b, err := multibase.Decode(str)
	if err != nil {
		return nil, fmt.Errorf("decoding multibase string: %w", err)
	}
	return Decode(b)
}

type signature []byte

func (s signature) Code() uint64 {
	c, _ := varint.ReadUvarint(bytes.NewReader(s))
	return c
}

func (s signature) Size() uint64 {
	n, _ := varint.ReadUvarint(bytes.NewReader(s[varint.UvarintSize(s.Code()):]))
	return n
}

func (s signature) Raw() []byte {
	cl := varint.UvarintSize(s.Code())
	rl := varint.UvarintSize(s.Size())
	return s[cl+rl:]
}

func (s signature) Bytes() []byte {
	return s
}
