package car

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/ipfs/go-cid"
	cbor "github.com/ipfs/go-ipld-cbor"
	"github.com/ipld/go-car/util"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/storacha/go-lenext/core/ipld"
)

func init() {
	cbor.RegisterCborType(carHeader{})
}

type carHeader struct {
	Roots   []cid.Cid
	Version uint64
}

// Encode writes a CARv1 archive of blocks with the given roots.
func Encode(roots []ipld.Link, blocks []ipld.Block) io.Reader {
	reader, writer := io.Pipe()
	go func() {
		h := carHeader{Version: 1}
		for _, r := range roots {
			c, err := toCid(r)
			if err != nil {
				writer.CloseWithError(fmt.Errorf("writing CAR header: %w", err))
				return
			}
			h.Roots = append(h.Roots, c)
		}
		hb, err := cbor.DumpObject(h)
		if err != nil {
			writer.CloseWithError(fmt.Errorf("writing CAR header: %w", err))
			return
		}
		if err := util.LdWrite(writer, hb); err != nil {
			writer.CloseWithError(err)
			return
		}
		for _, block := range blocks {
			c, err := toCid(block.Link())
			if err != nil {
				writer.CloseWithError(fmt.Errorf("writing CAR blocks: %w", err))
				return
			}
			if err := util.LdWrite(writer, c.Bytes(), block.Bytes()); err != nil {
				writer.CloseWithError(fmt.Errorf("writing CAR blocks: %w", err))
				return
			}
		}
		writer.Close()
	}()
	return reader
}

// Decode reads a CARv1 archive, checking every block against its CID.
func Decode(reader io.Reader) ([]ipld.Link, []ipld.Block, error) {
	br := bufio.NewReader(reader)

	hb, err := util.LdRead(br)
	if err != nil {
		return nil, nil, err
	}

	var ch carHeader
	if err := cbor.DecodeInto(hb, &ch); err != nil {
		return nil, nil, fmt.Errorf("invalid header: %v", err)
	}

	if ch.Version != 1 {
		return nil, nil, fmt.Errorf("invalid car version: %d", ch.Version)
	}

	roots := make([]ipld.Link, 0, len(ch.Roots))
	for _, r := range ch.Roots {
		roots = append(roots, cidlink.Link{Cid: r})
	}

	var blocks []ipld.Block
	for {
		c, bytes, err := util.ReadNode(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, err
		}

		hashed, err := c.Prefix().Sum(bytes)
		if err != nil {
			return nil, nil, err
		}

		if !hashed.Equals(c) {
			return nil, nil, fmt.Errorf("mismatch in content integrity, name: %s, data: %s", c, hashed)
		}

		blocks = append(blocks, ipld.NewBlockUnsafe(cidlink.Link{Cid: c}, bytes))
	}
	return roots, blocks, nil
}

func toCid(l ipld.Link) (cid.Cid, error) {
	if cl, ok := l.(cidlink.Link); ok {
		return cl.Cid, nil
	}
	return cid.Parse(l.String())
}
