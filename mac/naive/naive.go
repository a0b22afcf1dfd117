// Package naive implements the secret-prefix MAC SHA256(secret || message).
// It is vulnerable to length extension and exists to demonstrate it.
package naive

import (
	"crypto/hmac"
	"crypto/sha256"

	lensha256 "github.com/storacha/go-lenext/core/ipld/hash/sha256"
	"github.com/storacha/go-lenext/mac"
	"github.com/storacha/go-lenext/mac/signature"
)

// Code tags naive tags with the sha2-256 multicodec, since the tag is a plain
// sha2-256 digest.
const Code = lensha256.Code

// Size is the size of a tag in bytes.
const Size = lensha256.Size

type Key []byte

// New copies secret into a new key.
func New(secret []byte) Key {
	k := make(Key, len(secret))
	copy(k, secret)
	return k
}

func (k Key) Code() uint64 {
	return Code
}

// Sum computes the raw tag SHA256(secret || msg).
func (k Key) Sum(msg []byte) []byte {
	h := sha256.New()
	h.Write(k)
	h.Write(msg)
	return h.Sum(nil)
}

func (k Key) Sign(msg []byte) signature.Signature {
	return signature.NewSignature(Code, k.Sum(msg))
}

func (k Key) Verifier() mac.Verifier {
	return k
}

func (k Key) Verify(msg []byte, sig signature.Signature) bool {
	if sig.Code() != Code {
		return false
	}
	return hmac.Equal(k.Sum(msg), sig.Raw())
}

var _ mac.Signer = Key(nil)
