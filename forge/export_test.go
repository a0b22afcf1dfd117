package forge

import (
	"testing"

	"github.com/ipfs/go-cid"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-lenext/core/ipld"
	"github.com/storacha/go-lenext/core/ipld/codec/json"
	"github.com/storacha/go-lenext/forge/datamodel"
	"github.com/storacha/go-lenext/testing/fixtures"
	"github.com/stretchr/testify/require"
)

func TestBlocksLoad(t *testing.T) {
	mac := secretPrefixMAC(fixtures.Secret, fixtures.Message)
	res, err := Forge(fixtures.Message, mac, fixtures.Suffix, 16)
	require.NoError(t, err)

	root, blocks, err := res.Blocks()
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	require.Equal(t, root.Link().String(), blocks[1].Link().String())
	require.Equal(t, res.Message(), blocks[0].Bytes())

	loaded, err := Load(root.Link(), blocks)
	require.NoError(t, err)
	require.Equal(t, res.Message(), loaded.Message())
	require.Equal(t, res.Digest(), loaded.Digest())
	require.Equal(t, res.Glue(), loaded.Glue())
	require.Equal(t, res.Suffix(), loaded.Suffix())
	require.Equal(t, res.SecretLength(), loaded.SecretLength())

	t.Run("deterministic", func(t *testing.T) {
		again, _, err := res.Blocks()
		require.NoError(t, err)
		require.Equal(t, root.Link().String(), again.Link().String())
	})

	t.Run("missing message", func(t *testing.T) {
		_, err := Load(root.Link(), []ipld.Block{root})
		require.Error(t, err)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := Load(root.Link(), blocks[:1])
		require.Error(t, err)
	})

	t.Run("dag-json root", func(t *testing.T) {
		model := datamodel.ForgeryModel{
			Message:      blocks[0].Link(),
			Digest:       res.Digest(),
			Glue:         res.Glue(),
			Suffix:       res.Suffix(),
			SecretLength: int64(res.SecretLength()),
		}
		b, err := json.Codec.Encode(&model, datamodel.ForgeryType())
		require.NoError(t, err)
		jc, err := cid.Prefix{
			Version:  1,
			Codec:    json.Codec.Code(),
			MhType:   multihash.SHA2_256,
			MhLength: -1,
		}.Sum(b)
		require.NoError(t, err)
		jroot := ipld.NewBlockUnsafe(cidlink.Link{Cid: jc}, b)

		loaded, err := Load(jroot.Link(), []ipld.Block{blocks[0], jroot})
		require.NoError(t, err)
		require.Equal(t, res.Message(), loaded.Message())
		require.Equal(t, res.Digest(), loaded.Digest())
	})

	t.Run("unsupported codec", func(t *testing.T) {
		rc, err := cid.Prefix{
			Version:  1,
			Codec:    uint64(multicodec.Raw),
			MhType:   multihash.SHA2_256,
			MhLength: -1,
		}.Sum(root.Bytes())
		require.NoError(t, err)
		raw := ipld.NewBlockUnsafe(cidlink.Link{Cid: rc}, root.Bytes())

		_, err = Load(raw.Link(), []ipld.Block{blocks[0], raw})
		require.ErrorContains(t, err, "unsupported report codec")
	})
}
