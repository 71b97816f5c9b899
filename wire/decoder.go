// Package wire implements the LiteVector streaming codec: [Encoder] and
// [Decoder]. This is the core of the format; everything else in this module
// (the ltvutil, ltvjson packages and the cmd/ltvdump tool) is a collaborator
// that only touches the codec through a [Sink], a byte buffer, and an
// [Element].
package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/litevector/litevector"
)

// Element is a single parsed datum, populated by [Decoder.Next]. Exactly one
// of the value fields is meaningful, selected by Type and Size:
//
//   - Type.Structural() (Nil, Struct, List, End): no value field is set.
//   - Type == Bool, Size == SizeSingle: Bool.
//   - Type in {U8,U16,U32,U64}, Size == SizeSingle: Uint (zero-extended).
//   - Type in {I8,I16,I32,I64}, Size == SizeSingle: Int (sign-extended).
//   - Type == F32, Size == SizeSingle: F32.
//   - Type == F64, Size == SizeSingle: F64.
//   - Type == String, Size == SizeSingle: Bytes is a 1-byte slice.
//   - Any type at a vector Size (including String): Bytes, the raw vector
//     payload, borrowed from the decoder's input buffer.
//
// Bytes aliases the [Decoder]'s input buffer and is only valid until the
// buffer is mutated or freed.
type Element struct {
	Type   litevector.TypeCode
	Size   litevector.SizeCode
	Length int

	Bool  bool
	Int   int64
	Uint  uint64
	F32   float32
	F64   float64
	Bytes []byte
}

// Option configures a [Decoder] or [Encoder]. See [WithMaxNestingDepth],
// [WithUTF8Validation], and [WithVectorAlignment].
type Option func(*config)

type config struct {
	maxDepth     int
	validateUTF8 bool
	alignVectors bool
}

func defaultConfig() config {
	return config{
		maxDepth:     litevector.MaxNestingDepth,
		validateUTF8: true,
		alignVectors: true,
	}
}

// WithMaxNestingDepth overrides the baseline Struct/List nesting ceiling.
// Applies to both [Decoder] and [Encoder], though only the Decoder enforces
// it (the encoder never rejects over-deep input).
func WithMaxNestingDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// WithUTF8Validation toggles STRING payload UTF-8 validation on a [Decoder]
// (on by default). Disabling it is a no-op on an [Encoder].
func WithUTF8Validation(enabled bool) Option {
	return func(c *config) { c.validateUTF8 = enabled }
}

// WithVectorAlignment toggles NOP alignment padding on an [Encoder] (on by
// default). It has no effect on a [Decoder]: readers must tolerate the
// presence or absence of alignment padding identically.
func WithVectorAlignment(enabled bool) Option {
	return func(c *config) { c.alignVectors = enabled }
}

// Decoder is a pull-style parser over a caller-owned, immutable byte buffer.
// A Decoder is not safe for concurrent use; independent Decoders share no
// state and may run in parallel.
type Decoder struct {
	buf []byte
	idx int

	stack nestStack
	cfg   config
}

// NewDecoder creates a Decoder over buf. buf must remain valid and
// unmodified for the lifetime of the Decoder and of any [Element.Bytes]
// slice it returns.
func NewDecoder(buf []byte, opts ...Option) *Decoder {
	d := &Decoder{buf: buf}
	d.cfg = defaultConfig()
	for _, opt := range opts {
		opt(&d.cfg)
	}
	d.stack.reset(d.cfg.maxDepth)
	return d
}

// Depth returns the current Struct/List nesting depth (0 at the root).
func (d *Decoder) Depth() int { return d.stack.depth() }

// Offset returns the byte offset of the next tag to be read.
func (d *Decoder) Offset() int { return d.idx }

// Next parses the next value from the buffer into el and returns nil. At a
// clean top-level end of input it returns [io.EOF]. Any other error is a
// *[DecodeError]; el was not populated (or only partially) and the Decoder
// must not be used again.
//
// Next's record-alternation check (step 5) deliberately runs before an END
// tag is popped from the nesting stack (step 7): a Struct frame expecting a
// value that instead receives END is reported as StatusExpectedStructValue,
// never as a premature StatusNestMismatch.
func (d *Decoder) Next(el *Element) error {
	// Step 1/2: skip NOPs, then check for EOF.
	for {
		if d.idx == len(d.buf) {
			if d.stack.depth() == 0 {
				return io.EOF
			}
			return d.fail(litevector.StatusUnexpectedEOF, d.idx)
		}
		if d.buf[d.idx] != litevector.NOPTag {
			break
		}
		d.idx++
	}

	// Step 3: tag decode.
	tagOffset := d.idx
	tag := litevector.DecodeTag(d.buf[d.idx])
	d.idx++

	// Step 4: size-code validity.
	if !tag.Size.Valid() {
		return d.fail(litevector.StatusInvalidSizeCode, tagOffset)
	}
	if tag.Type.Structural() && tag.Size != litevector.SizeSingle {
		return d.fail(litevector.StatusInvalidSizeCode, tagOffset)
	}

	// Step 5: record-alternation check. This must run before the END-pop
	// below: a struct's alternation state has to be consulted while its
	// frame is still on the stack, so a struct expecting a value that
	// instead sees END is reported as StatusExpectedStructValue, not
	// silently accepted as the struct's own closing tag.
	if top, ok := d.stack.top(); ok {
		switch top {
		case litevector.Struct:
			if tag.Type != litevector.String && tag.Type != litevector.End {
				return d.fail(litevector.StatusInvalidStructKey, tagOffset)
			}
			d.stack.toggle()
		case litevector.End:
			if tag.Type == litevector.End {
				return d.fail(litevector.StatusExpectedStructValue, tagOffset)
			}
			d.stack.toggle()
		}
	}

	// Step 6: nesting push.
	if tag.Type == litevector.Struct || tag.Type == litevector.List {
		if !d.stack.push(tag.Type) {
			return d.fail(litevector.StatusMaxDepthReached, tagOffset)
		}
	}

	// Step 7: nesting pop.
	if tag.Type == litevector.End {
		if !d.stack.pop() {
			return d.fail(litevector.StatusNestMismatch, tagOffset)
		}
	}

	*el = Element{Type: tag.Type, Size: tag.Size}

	// Step 8: structural types return immediately.
	if tag.Type.Structural() {
		return nil
	}

	if tag.Size == litevector.SizeSingle {
		return d.readSingle(el, tagOffset)
	}
	return d.readVector(el, tagOffset)
}

// readSingle decodes a fixed-width scalar payload.
func (d *Decoder) readSingle(el *Element, tagOffset int) error {
	width := el.Type.Width()
	if outOfBounds(d.idx, width, len(d.buf)) {
		return d.fail(litevector.StatusUnexpectedEOF, tagOffset)
	}
	payload := d.buf[d.idx : d.idx+width]
	el.Length = width

	switch el.Type {
	case litevector.Bool:
		el.Bool = payload[0] != 0
	case litevector.U8:
		el.Uint = uint64(payload[0])
	case litevector.U16:
		el.Uint = uint64(binary.LittleEndian.Uint16(payload))
	case litevector.U32:
		el.Uint = uint64(binary.LittleEndian.Uint32(payload))
	case litevector.U64:
		el.Uint = binary.LittleEndian.Uint64(payload)
	case litevector.I8:
		el.Int = int64(int8(payload[0]))
	case litevector.I16:
		el.Int = int64(int16(binary.LittleEndian.Uint16(payload)))
	case litevector.I32:
		el.Int = int64(int32(binary.LittleEndian.Uint32(payload)))
	case litevector.I64:
		el.Int = int64(binary.LittleEndian.Uint64(payload))
	case litevector.F32:
		el.F32 = math.Float32frombits(binary.LittleEndian.Uint32(payload))
	case litevector.F64:
		el.F64 = math.Float64frombits(binary.LittleEndian.Uint64(payload))
	case litevector.String:
		el.Bytes = payload
	}

	d.idx += width
	return nil
}

// readVector decodes a length-prefixed vector payload, validating UTF-8 for
// a STRING vector when enabled.
func (d *Decoder) readVector(el *Element, tagOffset int) error {
	prefixWidth := el.Size.PrefixWidth()
	if outOfBounds(d.idx, prefixWidth, len(d.buf)) {
		return d.fail(litevector.StatusUnexpectedEOF, tagOffset)
	}
	length := readLength(d.buf[d.idx:d.idx+prefixWidth], prefixWidth)
	d.idx += prefixWidth

	width := el.Type.Width()
	if width > 0 && length%uint64(width) != 0 {
		return d.fail(litevector.StatusInvalidVectorLength, tagOffset)
	}
	if length > uint64(len(d.buf)) || outOfBounds(d.idx, int(length), len(d.buf)) {
		return d.fail(litevector.StatusUnexpectedEOF, tagOffset)
	}

	n := int(length)
	el.Length = n
	el.Bytes = d.buf[d.idx : d.idx+n]

	if el.Type == litevector.String && d.cfg.validateUTF8 {
		if !validUTF8(el.Bytes) {
			return d.fail(litevector.StatusInvalidUTF8, tagOffset)
		}
	}

	d.idx += n
	return nil
}

// fail returns a *DecodeError for status at the given offset. The Decoder's
// own cursor is left exactly where the error was detected; the caller must
// not call Next again.
func (d *Decoder) fail(status litevector.Status, offset int) error {
	return &DecodeError{Status: status, Offset: offset}
}

// outOfBounds reports whether cursor+n overflows or exceeds bound.
func outOfBounds(cursor, n, bound int) bool {
	sum := cursor + n
	return sum < cursor || sum > bound
}

// readLength decodes a little-endian length prefix of the given width,
// zero-extending into a uint64.
func readLength(buf []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf))
	case 8:
		return binary.LittleEndian.Uint64(buf)
	default:
		return 0
	}
}
