// Package ltvjson renders a decoded LiteVector stream as JSON, porting the
// C implementation's examples/ltv_json.c. It is a one-way,
// best-effort translation — LiteVector has no JSON equivalent for 64-bit
// integers outside JavaScript's safe integer range, NaN, or ±Infinity, so
// those are each rendered as a quoted string, matching the C implementation.
package ltvjson

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/litevector/litevector"
	"github.com/litevector/litevector/wire"
)

// jsMaxSafeInt and jsMinSafeInt bound the integers JSON/JavaScript can
// represent exactly (see Number.MAX_SAFE_INTEGER). Integers outside this
// range are quoted as strings rather than emitted as a JSON number.
const (
	jsMaxSafeInt = 1<<53 - 1
	jsMinSafeInt = -(1<<53 - 1)
)

// Fprint decodes the next value in dec, including the whole body of a Struct
// or List, and writes it to w as a single JSON document; values after it are
// left unread. An empty stream (a clean [io.EOF]) writes nothing and returns
// nil. Any other decode error stops printing and is returned.
func Fprint(w io.Writer, dec *wire.Decoder) error {
	p := &printer{w: w}
	err := p.valueInline(dec)
	if err == io.EOF {
		return nil
	}
	return err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// object prints a Struct's key/value pairs (already opened by the caller's
// dec.Next call) until the matching END.
func (p *printer) object(dec *wire.Decoder) error {
	p.printf("{")
	first := true
	for {
		var keyEl wire.Element
		if err := dec.Next(&keyEl); err != nil {
			return err
		}
		if keyEl.Type == litevector.End {
			break
		}
		if !first {
			p.printf(",")
		}
		first = false
		p.printString(keyEl.Bytes)
		p.printf(":")
		if err := p.valueInline(dec); err != nil {
			return err
		}
	}
	p.printf("}")
	return p.err
}

// list prints a List's elements (already opened by the caller) until the
// matching END.
func (p *printer) list(dec *wire.Decoder) error {
	p.printf("[")
	first := true
	for {
		var peek wire.Element
		if err := dec.Next(&peek); err != nil {
			return err
		}
		if peek.Type == litevector.End {
			break
		}
		if !first {
			p.printf(",")
		}
		first = false
		if err := p.printElement(dec, peek); err != nil {
			return err
		}
	}
	p.printf("]")
	return p.err
}

// valueInline reads and prints the next top-level value, dispatching into
// object/list for Struct/List.
func (p *printer) valueInline(dec *wire.Decoder) error {
	var el wire.Element
	if err := dec.Next(&el); err != nil {
		return err
	}
	return p.printElement(dec, el)
}

// printElement prints an already-decoded el, recursing into dec for Struct
// and List bodies.
func (p *printer) printElement(dec *wire.Decoder, el wire.Element) error {
	switch el.Type {
	case litevector.Struct:
		return p.object(dec)
	case litevector.List:
		return p.list(dec)
	case litevector.Nil:
		p.printf("null")
	case litevector.Bool:
		if el.Size == litevector.SizeSingle {
			p.printf("%t", el.Bool)
		} else {
			return p.vector(el)
		}
	case litevector.U8, litevector.U16, litevector.U32, litevector.U64:
		if el.Size == litevector.SizeSingle {
			p.printUint(el.Uint)
		} else {
			return p.vector(el)
		}
	case litevector.I8, litevector.I16, litevector.I32, litevector.I64:
		if el.Size == litevector.SizeSingle {
			p.printInt(el.Int)
		} else {
			return p.vector(el)
		}
	case litevector.F32:
		if el.Size == litevector.SizeSingle {
			p.printFloat(float64(el.F32))
		} else {
			return p.vector(el)
		}
	case litevector.F64:
		if el.Size == litevector.SizeSingle {
			p.printFloat(el.F64)
		} else {
			return p.vector(el)
		}
	case litevector.String:
		p.printString(el.Bytes)
	default:
		if el.Size != litevector.SizeSingle {
			return p.vector(el)
		}
	}
	return p.err
}

// vector prints el's raw payload as a JSON array of decoded numbers, per
// the C implementation's print_array. Vectors whose element width
// doesn't evenly divide the decoder's accounting (which should never happen
// for a value that already passed [wire.Decoder.Next]) fall back to
// printBase64 instead of panicking.
func (p *printer) vector(el wire.Element) error {
	width := el.Type.Width()
	if width == 0 || len(el.Bytes)%width != 0 {
		p.printBase64(el.Bytes)
		return p.err
	}

	p.printf("[")
	for i := 0; i < len(el.Bytes); i += width {
		if i > 0 {
			p.printf(",")
		}
		chunk := el.Bytes[i : i+width]
		switch el.Type {
		case litevector.Bool:
			p.printf("%t", chunk[0] != 0)
		case litevector.U8:
			p.printUint(uint64(chunk[0]))
		case litevector.U16:
			p.printUint(uint64(leUint16(chunk)))
		case litevector.U32:
			p.printUint(uint64(leUint32(chunk)))
		case litevector.U64:
			p.printUint(leUint64(chunk))
		case litevector.I8:
			p.printInt(int64(int8(chunk[0])))
		case litevector.I16:
			p.printInt(int64(int16(leUint16(chunk))))
		case litevector.I32:
			p.printInt(int64(int32(leUint32(chunk))))
		case litevector.I64:
			p.printInt(int64(leUint64(chunk)))
		case litevector.F32:
			p.printFloat(float64(math.Float32frombits(leUint32(chunk))))
		case litevector.F64:
			p.printFloat(math.Float64frombits(leUint64(chunk)))
		}
	}
	p.printf("]")
	return p.err
}

// printString prints b as a JSON string. b is guaranteed valid UTF-8 unless
// the decoder was built with [wire.WithUTF8Validation](false); invalid UTF-8
// has no lossless JSON string encoding, so it's rendered as base64 instead,
// porting print_base64.
func (p *printer) printString(b []byte) {
	if !utf8.Valid(b) {
		p.printBase64(b)
		return
	}
	out, err := json.Marshal(string(b))
	if err != nil {
		p.err = err
		return
	}
	p.printf("%s", out)
}

// printBase64 renders b as a base64-encoded JSON string, porting the C
// implementation's print_base64.
func (p *printer) printBase64(b []byte) {
	p.printf("%q", base64.StdEncoding.EncodeToString(b))
}

func (p *printer) printInt(v int64) {
	if v < jsMinSafeInt || v > jsMaxSafeInt {
		p.printf("%q", strconv.FormatInt(v, 10))
		return
	}
	p.printf("%d", v)
}

func (p *printer) printUint(v uint64) {
	if v > jsMaxSafeInt {
		p.printf("%q", strconv.FormatUint(v, 10))
		return
	}
	p.printf("%d", v)
}

func (p *printer) printFloat(v float64) {
	switch {
	case math.IsNaN(v):
		p.printf("%q", "NaN")
	case math.IsInf(v, 1):
		p.printf("%q", "Infinity")
	case math.IsInf(v, -1):
		p.printf("%q", "-Infinity")
	default:
		p.printf("%s", strconv.FormatFloat(v, 'g', -1, 64))
	}
}

func leUint16(b []byte) uint16 { return uint16(b[0]) | uint16(b[1])<<8 }
func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
