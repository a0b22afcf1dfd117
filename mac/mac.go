// Package mac defines keyed message authentication in terms of signers that
// hold a secret and verifiers that check tags produced with it.
package mac

import (
	"fmt"

	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-lenext/core/state"
	"github.com/storacha/go-lenext/mac/signature"
)

type Signer interface {
	Code() uint64
	// Takes byte encoded message and produces a tag over it.
	Sign(msg []byte) signature.Signature
	Verifier() Verifier
}

type Verifier interface {
	Code() uint64
	// Takes byte encoded message and verifies that the tag was produced by
	// the corresponding signer.
	Verify(msg []byte, sig signature.Signature) bool
}

// ParseDigest accepts a raw 32 byte digest or a sha2-256 multihash and
// returns the raw digest.
func ParseDigest(b []byte) ([]byte, error) {
	if len(b) == state.Size {
		return b, nil
	}
	dh, err := multihash.Decode(b)
	if err != nil {
		return nil, state.NewMalformedDigest(len(b))
	}
	if dh.Code != multihash.SHA2_256 {
		return nil, fmt.Errorf("unsupported multihash code: 0x%x", dh.Code)
	}
	return dh.Digest, nil
}
