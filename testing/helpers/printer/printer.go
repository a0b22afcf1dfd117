package printer

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/printer"
	"github.com/storacha/go-lenext/forge"
)

func withIndent(t *testing.T, level int) func(format string, args ...any) {
	indent := strings.Repeat("  ", level)
	return func(format string, args ...any) {
		t.Logf(indent+format, args...)
	}
}

// PrintResult logs a forged result and its IPLD report.
func PrintResult(t *testing.T, res forge.Result, level int) {
	t.Helper()
	log := withIndent(t, level)

	log("Forgery (secret length %d)", res.SecretLength())
	log("  Message: %q", res.Message())
	log("  Glue:    %s", hex.EncodeToString(res.Glue()))
	log("  Digest:  %s", hex.EncodeToString(res.Digest()))

	root, _, err := res.Blocks()
	if err != nil {
		log("  Report: %s", err)
		return
	}
	nd, err := ipld.Decode(root.Bytes(), dagcbor.Decode)
	if err != nil {
		log("  Report: %s", err)
		return
	}
	log("  Report %s:", root.Link())
	for _, line := range strings.Split(printer.Sprint(nd), "\n") {
		log("    %s", line)
	}
}
