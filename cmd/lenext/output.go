package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/ipld/go-ipld-prime/schema"
	"github.com/multiformats/go-multibase"
	"github.com/storacha/go-lenext/core/car"
	lenipld "github.com/storacha/go-lenext/core/ipld"
	"github.com/storacha/go-lenext/core/ipld/codec/json"
	"github.com/storacha/go-lenext/core/result/failure"
	"github.com/storacha/go-lenext/forge"
)

var outputSchema = []byte(`
type Output struct {
  message Bytes
  digest Bytes
  glue Bytes
  secretLength Int
  link Link
}
`)

type outputModel struct {
	Message      []byte
	Digest       []byte
	Glue         []byte
	SecretLength int64
	Link         lenipld.Link
}

var outputType schema.Type

func init() {
	ts, err := ipld.LoadSchemaBytes(outputSchema)
	if err != nil {
		panic(fmt.Errorf("loading output schema: %w", err))
	}
	outputType = ts.TypeByName("Output")
}

func printResult(w io.Writer, res forge.Result, enc multibase.Encoder, asJSON bool) error {
	root, _, err := res.Blocks()
	if err != nil {
		return err
	}
	if asJSON {
		b, err := json.Encode(&outputModel{
			Message:      res.Message(),
			Digest:       res.Digest(),
			Glue:         res.Glue(),
			SecretLength: int64(res.SecretLength()),
			Link:         root.Link(),
		}, outputType)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	fmt.Fprintf(w, "forged_message=%s\n", enc.Encode(res.Message()))
	fmt.Fprintf(w, "forged_digest=%s\n", enc.Encode(res.Digest()))
	fmt.Fprintf(w, "glue=%s\n", enc.Encode(res.Glue()))
	fmt.Fprintf(w, "secret_length=%d\n", res.SecretLength())
	fmt.Fprintf(w, "link=%s\n", root.Link())
	return nil
}

func writeCAR(path string, res forge.Result) error {
	root, blocks, err := res.Blocks()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CAR: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, car.Encode([]lenipld.Link{root.Link()}, blocks)); err != nil {
		return fmt.Errorf("writing CAR: %w", err)
	}
	return f.Close()
}

// reportError writes err to w, as a dag-json failure when asJSON is set.
func reportError(w io.Writer, logger *slog.Logger, asJSON bool, err error) {
	if !asJSON {
		logger.Error("command failed", "err", err)
		return
	}
	nd, nerr := failure.FromError(err).ToIPLD()
	if nerr == nil {
		nerr = dagjson.Encode(nd, w)
	}
	if nerr != nil {
		logger.Error("command failed", "err", err, "encode_err", nerr)
		return
	}
	fmt.Fprintln(w)
}
