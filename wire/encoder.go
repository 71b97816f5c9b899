package wire

import (
	"encoding/binary"
	"math"

	"github.com/litevector/litevector"
)

// Sink is the push-style output callback an [Encoder] writes through: it is
// handed successive byte slices and reports how many bytes it accepted,
// along with any error. It need not accept the whole slice in one call; the
// Encoder loops until the slice is exhausted or Sink returns an error.
//
// Sink implementations commonly wrap a bytes.Buffer, an os.File, or (as in
// [litevector/ltvutil.StaticBuffer]) a fixed-capacity byte array.
type Sink func(p []byte) (n int, err error)

// Encoder is a push-style, sink-driven writer for the LiteVector format,
// with a sticky first-error contract: once the sink returns a non-nil
// error, that error is latched in [Encoder.Err] and every subsequent
// emitter call becomes a silent no-op. This lets a caller build up a value
// tree with a long, unbroken chain of emitter calls and check the error
// exactly once at the end, rather than after every call.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	sink Sink
	cfg  config

	stack  nestStack
	offset int
	err    error
}

// NewEncoder creates an Encoder that writes through sink.
func NewEncoder(sink Sink, opts ...Option) *Encoder {
	e := &Encoder{sink: sink}
	e.cfg = defaultConfig()
	for _, opt := range opts {
		opt(&e.cfg)
	}
	e.stack.reset(e.cfg.maxDepth)
	return e
}

// Err returns the first error encountered writing to the sink, or nil if
// none has occurred. Once non-nil, it never changes or clears.
func (e *Encoder) Err() error { return e.err }

// Offset returns the number of bytes written so far, including bytes
// written before Err became non-nil.
func (e *Encoder) Offset() int { return e.offset }

// Depth returns the current Struct/List nesting depth (0 at the root).
func (e *Encoder) Depth() int { return e.stack.depth() }

// write pushes p through the sink, latching the first error and becoming a
// no-op thereafter. It is the single choke point every emitter funnels
// through.
func (e *Encoder) write(p []byte) {
	if e.err != nil || len(p) == 0 {
		return
	}
	for len(p) > 0 {
		n, err := e.sink(p)
		e.offset += n
		if err != nil {
			e.err = err
			return
		}
		if n == 0 {
			e.err = &SinkError{Code: 0}
			return
		}
		p = p[n:]
	}
}

func (e *Encoder) writeTag(tag litevector.Tag) {
	e.write([]byte{tag.Encode()})
}

// Nil writes a NIL value.
func (e *Encoder) Nil() { e.writeTag(litevector.Tag{Type: litevector.Nil, Size: litevector.SizeSingle}) }

// StructStart opens a Struct. Every call must be matched by a later
// [Encoder.End]. Inside the struct, values must alternate STRING key, any
// value; the Encoder does not itself enforce this, but emitting anything
// else will be rejected by a compliant reader.
func (e *Encoder) StructStart() {
	e.writeTag(litevector.Tag{Type: litevector.Struct, Size: litevector.SizeSingle})
	e.stack.push(litevector.Struct)
}

// ListStart opens a List. Every call must be matched by a later
// [Encoder.End].
func (e *Encoder) ListStart() {
	e.writeTag(litevector.Tag{Type: litevector.List, Size: litevector.SizeSingle})
	e.stack.push(litevector.List)
}

// End closes the innermost open Struct or List.
func (e *Encoder) End() {
	e.writeTag(litevector.Tag{Type: litevector.End, Size: litevector.SizeSingle})
	e.stack.pop()
}

// Bool writes a single BOOL value.
func (e *Encoder) Bool(v bool) {
	e.writeTag(litevector.Tag{Type: litevector.Bool, Size: litevector.SizeSingle})
	if v {
		e.write([]byte{1})
	} else {
		e.write([]byte{0})
	}
}

// U8 writes a single U8 value.
func (e *Encoder) U8(v uint8) {
	e.writeTag(litevector.Tag{Type: litevector.U8, Size: litevector.SizeSingle})
	e.write([]byte{v})
}

// U16 writes a single U16 value.
func (e *Encoder) U16(v uint16) {
	e.writeTag(litevector.Tag{Type: litevector.U16, Size: litevector.SizeSingle})
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	e.write(buf[:])
}

// U32 writes a single U32 value.
func (e *Encoder) U32(v uint32) {
	e.writeTag(litevector.Tag{Type: litevector.U32, Size: litevector.SizeSingle})
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	e.write(buf[:])
}

// U64 writes a single U64 value.
func (e *Encoder) U64(v uint64) {
	e.writeTag(litevector.Tag{Type: litevector.U64, Size: litevector.SizeSingle})
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	e.write(buf[:])
}

// I8 writes a single I8 value.
func (e *Encoder) I8(v int8) {
	e.writeTag(litevector.Tag{Type: litevector.I8, Size: litevector.SizeSingle})
	e.write([]byte{byte(v)})
}

// I16 writes a single I16 value.
func (e *Encoder) I16(v int16) {
	e.writeTag(litevector.Tag{Type: litevector.I16, Size: litevector.SizeSingle})
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	e.write(buf[:])
}

// I32 writes a single I32 value.
func (e *Encoder) I32(v int32) {
	e.writeTag(litevector.Tag{Type: litevector.I32, Size: litevector.SizeSingle})
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	e.write(buf[:])
}

// I64 writes a single I64 value.
func (e *Encoder) I64(v int64) {
	e.writeTag(litevector.Tag{Type: litevector.I64, Size: litevector.SizeSingle})
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	e.write(buf[:])
}

// F32 writes a single F32 value.
func (e *Encoder) F32(v float32) {
	e.writeTag(litevector.Tag{Type: litevector.F32, Size: litevector.SizeSingle})
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	e.write(buf[:])
}

// F64 writes a single F64 value.
func (e *Encoder) F64(v float64) {
	e.writeTag(litevector.Tag{Type: litevector.F64, Size: litevector.SizeSingle})
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	e.write(buf[:])
}

// String writes s as a STRING vector (a STRING value is always a vector,
// even when empty; there is no single-byte STRING encoding reachable from
// this method). s must already be valid UTF-8; the Encoder does not
// validate it, leaving UTF-8 enforcement to the reader.
func (e *Encoder) String(s string) {
	e.vector(litevector.String, 1, len(s), func() { e.write([]byte(s)) })
}

// vectorSizeCode picks the narrowest length-prefix size code that can
// represent n, using signed-max thresholds (one bit of range is given up at
// each boundary in exchange for a simpler comparison).
func vectorSizeCode(n int) litevector.SizeCode {
	switch {
	case n < math.MaxInt8:
		return litevector.SizeVec1
	case n < math.MaxInt16:
		return litevector.SizeVec2
	case n < math.MaxInt32:
		return litevector.SizeVec4
	default:
		return litevector.SizeVec8
	}
}

// vector writes a vector tag (with optional alignment padding), its length
// prefix, and then invokes writePayload to emit byteLen bytes of payload.
// elemWidth is the vector's element width in bytes, used only to decide
// alignment padding.
func (e *Encoder) vector(typ litevector.TypeCode, elemWidth, byteLen int, writePayload func()) {
	size := vectorSizeCode(byteLen)
	if e.cfg.alignVectors && elemWidth > 1 {
		e.pad(elemWidth, size.PrefixWidth())
	}
	e.writeTag(litevector.Tag{Type: typ, Size: size})
	e.writeLength(size, byteLen)
	writePayload()
}

// pad emits NOP bytes so that the vector's payload (which begins after a
// 1-byte tag and a length prefix of prefixWidth bytes) lands at an offset
// that is a multiple of elemWidth.
func (e *Encoder) pad(elemWidth, prefixWidth int) {
	payloadStart := e.offset + 1 + prefixWidth
	rem := payloadStart % elemWidth
	if rem == 0 {
		return
	}
	n := elemWidth - rem
	nop := make([]byte, n)
	for i := range nop {
		nop[i] = litevector.NOPTag
	}
	e.write(nop)
}

func (e *Encoder) writeLength(size litevector.SizeCode, n int) {
	switch size {
	case litevector.SizeVec1:
		e.write([]byte{byte(n)})
	case litevector.SizeVec2:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(n))
		e.write(buf[:])
	case litevector.SizeVec4:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(n))
		e.write(buf[:])
	case litevector.SizeVec8:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		e.write(buf[:])
	}
}

// BoolVec writes v as a BOOL vector.
func (e *Encoder) BoolVec(v []bool) {
	e.vector(litevector.Bool, 1, len(v), func() {
		buf := make([]byte, len(v))
		for i, b := range v {
			if b {
				buf[i] = 1
			}
		}
		e.write(buf)
	})
}

// U8Vec writes v as a U8 vector.
func (e *Encoder) U8Vec(v []uint8) {
	e.vector(litevector.U8, 1, len(v), func() { e.write(v) })
}

// U16Vec writes v as a U16 vector.
func (e *Encoder) U16Vec(v []uint16) {
	e.vector(litevector.U16, 2, len(v)*2, func() {
		buf := make([]byte, len(v)*2)
		for i, x := range v {
			binary.LittleEndian.PutUint16(buf[i*2:], x)
		}
		e.write(buf)
	})
}

// U32Vec writes v as a U32 vector.
func (e *Encoder) U32Vec(v []uint32) {
	e.vector(litevector.U32, 4, len(v)*4, func() {
		buf := make([]byte, len(v)*4)
		for i, x := range v {
			binary.LittleEndian.PutUint32(buf[i*4:], x)
		}
		e.write(buf)
	})
}

// U64Vec writes v as a U64 vector.
func (e *Encoder) U64Vec(v []uint64) {
	e.vector(litevector.U64, 8, len(v)*8, func() {
		buf := make([]byte, len(v)*8)
		for i, x := range v {
			binary.LittleEndian.PutUint64(buf[i*8:], x)
		}
		e.write(buf)
	})
}

// I8Vec writes v as an I8 vector.
func (e *Encoder) I8Vec(v []int8) {
	e.vector(litevector.I8, 1, len(v), func() {
		buf := make([]byte, len(v))
		for i, x := range v {
			buf[i] = byte(x)
		}
		e.write(buf)
	})
}

// I16Vec writes v as an I16 vector.
func (e *Encoder) I16Vec(v []int16) {
	e.vector(litevector.I16, 2, len(v)*2, func() {
		buf := make([]byte, len(v)*2)
		for i, x := range v {
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(x))
		}
		e.write(buf)
	})
}

// I32Vec writes v as an I32 vector.
func (e *Encoder) I32Vec(v []int32) {
	e.vector(litevector.I32, 4, len(v)*4, func() {
		buf := make([]byte, len(v)*4)
		for i, x := range v {
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(x))
		}
		e.write(buf)
	})
}

// I64Vec writes v as an I64 vector.
func (e *Encoder) I64Vec(v []int64) {
	e.vector(litevector.I64, 8, len(v)*8, func() {
		buf := make([]byte, len(v)*8)
		for i, x := range v {
			binary.LittleEndian.PutUint64(buf[i*8:], uint64(x))
		}
		e.write(buf)
	})
}

// F32Vec writes v as an F32 vector.
func (e *Encoder) F32Vec(v []float32) {
	e.vector(litevector.F32, 4, len(v)*4, func() {
		buf := make([]byte, len(v)*4)
		for i, x := range v {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(x))
		}
		e.write(buf)
	})
}

// F64Vec writes v as an F64 vector.
func (e *Encoder) F64Vec(v []float64) {
	e.vector(litevector.F64, 8, len(v)*8, func() {
		buf := make([]byte, len(v)*8)
		for i, x := range v {
			binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(x))
		}
		e.write(buf)
	})
}

// RawBytes writes raw as a U8 vector without copying it. The caller must
// not mutate raw afterwards if the sink retains the slice.
func (e *Encoder) RawBytes(raw []byte) {
	e.vector(litevector.U8, 1, len(raw), func() { e.write(raw) })
}
