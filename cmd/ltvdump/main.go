// Command ltvdump prints a tabular trace of a LiteVector stream, one row
// per tag, in the format of the C implementation's
// examples/ltvdump.c. With --json, it instead prints the stream as JSON via
// [github.com/litevector/litevector/ltvjson].
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/litevector/litevector"
	"github.com/litevector/litevector/ltvjson"
	"github.com/litevector/litevector/ltvutil"
	"github.com/litevector/litevector/wire"
)

var (
	jsonOutput = flag.Bool("json", false, "print the stream as JSON instead of a tabular trace")
	input      = flag.StringP("file", "f", "", "input file (default: stdin)")
)

func main() {
	flag.Parse()

	var r io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ltvdump:", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ltvdump:", err)
		os.Exit(1)
	}

	if *jsonOutput {
		dec := wire.NewDecoder(buf)
		if err := ltvjson.Fprint(os.Stdout, dec); err != nil {
			fmt.Fprintln(os.Stderr, "ltvdump:", err)
			os.Exit(1)
		}
		fmt.Println()
		return
	}

	if err := dump(os.Stdout, buf); err != nil {
		fmt.Fprintln(os.Stderr, "ltvdump:", err)
		os.Exit(1)
	}
}

// dump writes one row per tag to w, tracking byte offsets the way the
// C implementation's stream-based ltv_dump does, but operating on
// an in-memory buffer and the package's own decoder rather than re-parsing
// tags by hand.
func dump(w io.Writer, buf []byte) error {
	fmt.Fprintln(w, "Tag_Offset  Tag   Type     Flag   Length  Value_Offset  Value")

	dec := wire.NewDecoder(buf, wire.WithUTF8Validation(false))
	for {
		tagOffset := dec.Offset()
		var el wire.Element
		err := dec.Next(&el)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Fprintln(w, ltvutil.StatusText(err.(*wire.DecodeError).Status))
			return err
		}

		tagByte := litevector.Tag{Type: el.Type, Size: el.Size}.Encode()
		fmt.Fprintf(w, "  %08X   %02X   %-10s  %d %8d      %08X  ",
			tagOffset, tagByte, el.Type.String(), el.Size, el.Length, dec.Offset()-el.Length)

		switch el.Type {
		case litevector.Nil:
			fmt.Fprint(w, "(nil)")
		case litevector.Struct:
			fmt.Fprint(w, "{")
		case litevector.List:
			fmt.Fprint(w, "[")
		case litevector.End:
			fmt.Fprint(w, "]")
		case litevector.String:
			fmt.Fprintf(w, "%q", string(el.Bytes))
		default:
			printValue(w, el)
		}
		fmt.Fprintln(w)
	}
}

func printValue(w io.Writer, el wire.Element) {
	if el.Size == litevector.SizeSingle {
		printScalar(w, el.Type, el)
		return
	}

	width := el.Type.Width()
	fmt.Fprint(w, "[")
	for i := 0; i < len(el.Bytes); i += width {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		printChunk(w, el.Type, el.Bytes[i:i+width])
	}
	fmt.Fprint(w, "]")
}

func printScalar(w io.Writer, typ litevector.TypeCode, el wire.Element) {
	switch typ {
	case litevector.Bool:
		fmt.Fprint(w, el.Bool)
	case litevector.U8, litevector.U16, litevector.U32, litevector.U64:
		fmt.Fprint(w, el.Uint)
	case litevector.I8, litevector.I16, litevector.I32, litevector.I64:
		fmt.Fprint(w, el.Int)
	case litevector.F32:
		fmt.Fprint(w, el.F32)
	case litevector.F64:
		fmt.Fprint(w, el.F64)
	}
}

func printChunk(w io.Writer, typ litevector.TypeCode, chunk []byte) {
	el := decodeChunk(typ, chunk)
	printScalar(w, typ, el)
}

// decodeChunk decodes a single vector element's raw bytes the same way
// [wire.Decoder] would, for standalone tabular display.
func decodeChunk(typ litevector.TypeCode, chunk []byte) wire.Element {
	scratch := wire.NewDecoder(append([]byte{litevector.Tag{Type: typ, Size: litevector.SizeSingle}.Encode()}, chunk...))
	var el wire.Element
	_ = scratch.Next(&el)
	return el
}
