package forge

import (
	"bytes"

	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-lenext/core/ipld/hash/sha256"
	"github.com/storacha/go-lenext/mac/naive"
	"github.com/storacha/go-lenext/mac/signature"
)

// Result is a candidate forgery. Accessors return copies.
type Result struct {
	message      []byte
	digest       []byte
	glue         []byte
	suffix       []byte
	secretLength uint64
}

// Message is the forged message: original message, glue padding, suffix.
func (r Result) Message() []byte {
	return bytes.Clone(r.message)
}

// Digest is the forged MAC of the forged message.
func (r Result) Digest() []byte {
	return bytes.Clone(r.digest)
}

// Glue is the padding that terminated the original secret || message.
func (r Result) Glue() []byte {
	return bytes.Clone(r.glue)
}

// Suffix is the appended data.
func (r Result) Suffix() []byte {
	return bytes.Clone(r.suffix)
}

// SecretLength is the secret length the forgery assumed.
func (r Result) SecretLength() uint64 {
	return r.secretLength
}

// Multihash returns the forged digest as a sha2-256 multihash.
func (r Result) Multihash() (multihash.Multihash, error) {
	d, err := sha256.Wrap(r.Digest())
	if err != nil {
		return nil, err
	}
	return multihash.Multihash(d.Bytes()), nil
}

// Signature returns the forged digest tagged as a [naive] MAC, ready to be
// presented to a verifier of that scheme.
func (r Result) Signature() signature.Signature {
	return signature.NewSignature(naive.Code, r.digest)
}
