// Package hmacsha256 implements HMAC-SHA256 (RFC 2104). The secret is mixed
// into both an inner and an outer hash, so a leaked tag does not expose a
// resumable state.
package hmacsha256

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/storacha/go-lenext/mac"
	"github.com/storacha/go-lenext/mac/signature"
)

// Code tags HMAC-SHA256 tags. There is no multicodec entry for HMAC, so it
// lives in the private use range.
const Code = 0x300001

const Size = sha256.Size

type Key []byte

func New(secret []byte) Key {
	k := make(Key, len(secret))
	copy(k, secret)
	return k
}

func (k Key) Code() uint64 {
	return Code
}

func (k Key) Sum(msg []byte) []byte {
	m := hmac.New(sha256.New, k)
	m.Write(msg)
	return m.Sum(nil)
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
