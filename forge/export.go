package forge

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/ipfs/go-cid"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-lenext/core/ipld"
	"github.com/storacha/go-lenext/core/ipld/codec"
	"github.com/storacha/go-lenext/core/ipld/codec/cbor"
	"github.com/storacha/go-lenext/core/ipld/codec/json"
	"github.com/storacha/go-lenext/core/state"
	"github.com/storacha/go-lenext/forge/datamodel"
)

var rawPrefix = cid.Prefix{
	Version:  1,
	Codec:    uint64(multicodec.Raw),
	MhType:   multihash.SHA2_256,
	MhLength: -1,
}

var reportCodec codec.Codec = cbor.Codec

var reportPrefix = cid.Prefix{
	Version:  1,
	Codec:    reportCodec.Code(),
	MhType:   multihash.SHA2_256,
	MhLength: -1,
}

// report decoders by CID codec
var reportDecoders = map[uint64]codec.Decoder{
	cbor.Code: cbor.Codec,
	json.Code: json.Codec,
}

// Blocks encodes the result as a dag-cbor root block linking to a raw block
// holding the forged message. Blocks are returned leaf first, root last.
func (r Result) Blocks() (ipld.Block, []ipld.Block, error) {
	if r.secretLength > math.MaxInt64 {
		return nil, nil, fmt.Errorf("secret length %d does not fit an IPLD Int", r.secretLength)
	}
	mc, err := rawPrefix.Sum(r.message)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing forged message: %w", err)
	}
	msg := ipld.NewBlockUnsafe(cidlink.Link{Cid: mc}, r.Message())

	model := datamodel.ForgeryModel{
		Message:      msg.Link(),
		Digest:       r.Digest(),
		Glue:         r.Glue(),
		Suffix:       r.Suffix(),
		SecretLength: int64(r.secretLength),
	}
	b, err := reportCodec.Encode(&model, datamodel.ForgeryType())
	if err != nil {
		return nil, nil, fmt.Errorf("encoding forgery: %w", err)
	}
	rc, err := reportPrefix.Sum(b)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing forgery: %w", err)
	}
	root := ipld.NewBlockUnsafe(cidlink.Link{Cid: rc}, b)

	return root, []ipld.Block{msg, root}, nil
}

// Load rebuilds a result from the blocks produced by [Result.Blocks]. The root
// may also be a dag-json encoding of the same report.
func Load(root ipld.Link, blocks []ipld.Block) (Result, error) {
	find := func(l ipld.Link) (ipld.Block, bool) {
		for _, b := range blocks {
			if b.Link().String() == l.String() {
				return b, true
			}
		}
		return nil, false
	}

	rb, ok := find(root)
	if !ok {
		return Result{}, fmt.Errorf("missing root block: %s", root)
	}
	rcid, err := cid.Parse(root.String())
	if err != nil {
		return Result{}, fmt.Errorf("parsing root link: %w", err)
	}
	dec, ok := reportDecoders[rcid.Prefix().Codec]
	if !ok {
		return Result{}, fmt.Errorf("unsupported report codec: 0x%x", rcid.Prefix().Codec)
	}
	var model datamodel.ForgeryModel
	if err := dec.Decode(rb.Bytes(), &model, datamodel.ForgeryType()); err != nil {
		return Result{}, fmt.Errorf("decoding forgery: %w", err)
	}
	if model.SecretLength < 0 {
		return Result{}, errors.New("negative secret length")
	}
	if len(model.Digest) != state.Size {
		return Result{}, state.NewMalformedDigest(len(model.Digest))
	}

	mb, ok := find(model.Message)
	if !ok {
		return Result{}, fmt.Errorf("missing message block: %s", model.Message)
	}
	msg := mb.Bytes()
	if !bytes.HasSuffix(msg, model.Suffix) || !bytes.Contains(msg, model.Glue) {
		return Result{}, errors.New("forged message does not contain glue and suffix")
	}

	return Result{
		message:      bytes.Clone(msg),
		digest:       model.Digest,
		glue:         model.Glue,
		suffix:       model.Suffix,
		secretLength: uint64(model.SecretLength),
	}, nil
}
