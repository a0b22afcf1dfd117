package car

import (
	"bytes"
	"io"
	"testing"

	"github.com/ipfs/go-cid"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-lenext/core/ipld"
	"github.com/storacha/go-lenext/testing/helpers"
	"github.com/stretchr/testify/require"
)

func rawBlock(t *testing.T, data []byte) ipld.Block {
	t.Helper()
	c, err := cid.Prefix{
		Version:  1,
		Codec:    cid.Raw,
		MhType:   multihash.SHA2_256,
		MhLength: -1,
	}.Sum(data)
	require.NoError(t, err)
	return ipld.NewBlockUnsafe(cidlink.Link{Cid: c}, data)
}

func TestEncodeDecode(t *testing.T) {
	a := rawBlock(t, helpers.RandomBytes(59))
	b := rawBlock(t, helpers.RandomBytes(128))

	archive, err := io.ReadAll(Encode([]ipld.Link{b.Link()}, []ipld.Block{a, b}))
	require.NoError(t, err)

	roots, blocks, err := Decode(bytes.NewReader(archive))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Equal(t, b.Link().String(), roots[0].String())
	require.Len(t, blocks, 2)
	require.Equal(t, a.Link().String(), blocks[0].Link().String())
	require.Equal(t, a.Bytes(), blocks[0].Bytes())
	require.Equal(t, b.Bytes(), blocks[1].Bytes())
}

func TestDecodeRejectsTamperedBlock(t *testing.T) {
	data := helpers.RandomBytes(32)
	blk := rawBlock(t, data)
	forged := ipld.NewBlockUnsafe(blk.Link(), helpers.RandomBytes(32))

	archive, err := io.ReadAll(Encode([]ipld.Link{blk.Link()}, []ipld.Block{forged}))
	require.NoError(t, err)

	_, _, err = Decode(bytes.NewReader(archive))
	require.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	_, _, err := Decode(bytes.NewReader(nil))
	require.Error(t, err)
}

func TestEncodeDanglingRoot(t *testing.T) {
	root := helpers.RandomLink()
	archive, err := io.ReadAll(Encode([]ipld.Link{root}, []ipld.Block{rawBlock(t, []byte("x"))}))
	require.NoError(t, err)

	roots, blocks, err := Decode(bytes.NewReader(archive))
	require.NoError(t, err)
	require.Equal(t, root.String(), roots[0].String())
	require.Len(t, blocks, 1)
}
