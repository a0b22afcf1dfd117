package ipld

import (
	"errors"

	"github.com/ipld/go-ipld-prime/node/bindnode"
	"github.com/ipld/go-ipld-prime/schema"
)

// WrapWithRecovery wraps a Go value as an IPLD node of the passed schema type,
// converting bindnode panics (schema mismatches) into errors.
func WrapWithRecovery(ptrVal any, typ schema.Type, opts ...bindnode.Option) (nd Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if asStr, ok := r.(string); ok {
				err = errors.New(asStr)
			} else if asErr, ok := r.(error); ok {
				err = asErr
			} else {
				err = errors.New("unknown panic wrapping node")
			}
		}
	}()
	nd = bindnode.Wrap(ptrVal, typ, opts...).Representation()
	return
}
