package datamodel

import (
	// to use go:embed
	_ "embed"
	"fmt"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/schema"
)

//go:embed forgery.ipldsch
var forgerySchema []byte

// ForgeryModel is the IPLD representation of a forged result. The forged
// message is stored in its own raw block.
type ForgeryModel struct {
	Message      ipld.Link
	Digest       []byte
	Glue         []byte
	Suffix       []byte
	SecretLength int64
}

var typ schema.Type

func init() {
	ts, err := ipld.LoadSchemaBytes(forgerySchema)
	if err != nil {
		panic(fmt.Errorf("loading forgery schema: %w", err))
	}
	typ = ts.TypeByName("Forgery")
}

func ForgeryType() schema.Type {
	return typ
}
