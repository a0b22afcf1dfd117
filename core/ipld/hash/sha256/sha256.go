package sha256

import (
	"crypto/sha256"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-lenext/core/ipld/hash"
)

// sha2-256
const Code = uint64(multicodec.Sha2_256)

// sha2-256 hash has a 32-byte sum
const Size = sha256.Size

type hasher struct{}

func (hasher) Code() uint64 {
	return Code
}

func (hasher) Size() uint64 {
	return Size
}

func (hasher) Sum(b []byte) (hash.Digest, error) {
	sum := sha256.Sum256(b)
	return Wrap(sum[:])
}

// Wrap wraps a raw sha2-256 digest computed elsewhere into a [hash.Digest].
func Wrap(sum []byte) (hash.Digest, error) {
	d, err := multihash.Encode(sum, Code)
	if err != nil {
		return nil, err
	}
	return hash.NewDigest(Code, Size, sum, d), nil
}

var Hasher hash.Hasher = hasher{}
