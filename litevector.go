// Package litevector implements the wire format constants shared by the
// LiteVector streaming encoder and decoder (see [github.com/litevector/litevector/wire]).
//
// LiteVector is a compact, self-describing binary serialization format for
// structured configuration and telemetry exchange between resource
// constrained producers and consumers. Every value is prefixed by a
// single-byte tag declaring both its type and its storage class (a lone
// scalar or a length-prefixed vector); structural composites (ordered
// records and heterogeneous lists) are framed explicitly with an opening tag
// and a matching [End] tag.
//
// This package defines the closed vocabulary of the format: type codes, size
// codes, the element width table, the NOP filler byte, and the decode
// [Status] taxonomy. It does not itself read or write any bytes; see
// [github.com/litevector/litevector/wire] for the streaming codec.
package litevector

import "strconv"

//region Type Codes

// TypeCode is the high nibble of a wire [Tag]. It identifies the shape of the
// value that follows: a structural marker, or one of the twelve scalar/vector
// value types.
type TypeCode uint8

// The sixteen defined type codes. NIL through End are structural: they carry
// no element width of their own and may only appear at [SizeSingle] (see
// [TypeCode.Structural]).
const (
	Nil    TypeCode = 0x0 // no value; present purely as a marker.
	Struct TypeCode = 0x1 // opens a record: (STRING key, any value)* End.
	List   TypeCode = 0x2 // opens a list: value* End.
	End    TypeCode = 0x3 // closes the innermost open Struct or List.

	String TypeCode = 0x4 // UTF-8 (or raw, if validation is disabled) bytes.
	Bool   TypeCode = 0x5

	U8  TypeCode = 0x6
	U16 TypeCode = 0x7
	U32 TypeCode = 0x8
	U64 TypeCode = 0x9

	I8  TypeCode = 0xA
	I16 TypeCode = 0xB
	I32 TypeCode = 0xC
	I64 TypeCode = 0xD

	F32 TypeCode = 0xE
	F64 TypeCode = 0xF
)

// elementWidths gives the byte width of a single scalar element for each type
// code, indexed by TypeCode. Structural codes have width 0.
var elementWidths = [16]uint8{
	Nil: 0, Struct: 0, List: 0, End: 0,
	String: 1, Bool: 1,
	U8: 1, U16: 2, U32: 4, U64: 8,
	I8: 1, I16: 2, I32: 4, I64: 8,
	F32: 4, F64: 8,
}

// Width returns the byte width of one scalar element of type t. For
// structural type codes the width is 0.
func (t TypeCode) Width() int {
	if t > F64 {
		return 0
	}
	return int(elementWidths[t])
}

// Structural reports whether t is one of Nil, Struct, List, or End. Structural
// type codes may only be combined with [SizeSingle]; see the grammar in
// [github.com/litevector/litevector/wire].
func (t TypeCode) Structural() bool {
	return t <= End
}

// String returns the lower-case wire name of the type code (e.g. "u32"), or a
// numeric placeholder for an out-of-range value.
func (t TypeCode) String() string {
	switch t {
	case Nil:
		return "nil"
	case Struct:
		return "struct"
	case List:
		return "list"
	case End:
		return "end"
	case String:
		return "string"
	case Bool:
		return "bool"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "TypeCode(" + strconv.Itoa(int(t)) + ")"
	}
}

//endregion

//region Size Codes

// SizeCode is the low nibble of a wire [Tag]. It selects between a single
// scalar and a length-prefixed vector, and for vectors, the width of the
// length prefix.
type SizeCode uint8

const (
	// SizeSingle indicates that a single scalar of the type's natural width
	// follows the tag (or, for a structural type code, that no payload
	// follows at all).
	SizeSingle SizeCode = 0

	// SizeVec1, SizeVec2, SizeVec4, and SizeVec8 indicate a vector value
	// preceded by a little-endian length prefix of 1, 2, 4, or 8 bytes
	// respectively, counting payload bytes (not elements).
	SizeVec1 SizeCode = 1
	SizeVec2 SizeCode = 2
	SizeVec4 SizeCode = 3
	SizeVec8 SizeCode = 4
)

// PrefixWidth returns the byte width of the vector length prefix associated
// with s, or 0 for [SizeSingle]. The result is only meaningful for s <= 4; see
// [SizeCode.Valid].
func (s SizeCode) PrefixWidth() int {
	if s == SizeSingle {
		return 0
	}
	return 1 << (s - 1)
}

// Valid reports whether s is one of the five defined size codes. Values 5
// through 15 are reserved and always invalid.
func (s SizeCode) Valid() bool {
	return s <= SizeVec8
}

// String returns a short name for the size code.
func (s SizeCode) String() string {
	switch s {
	case SizeSingle:
		return "single"
	case SizeVec1:
		return "vec1"
	case SizeVec2:
		return "vec2"
	case SizeVec4:
		return "vec4"
	case SizeVec8:
		return "vec8"
	default:
		return "SizeCode(" + strconv.Itoa(int(s)) + ")"
	}
}

//endregion

//region Tag

// NOPTag is the single reserved byte (0xFF) that may appear anywhere a tag
// byte is expected. It is consumed silently by the decoder and carries no
// payload; see [github.com/litevector/litevector/wire] for its use as
// alignment padding.
const NOPTag byte = 0xFF

// Tag is a decoded wire tag byte, split into its constituent type and size
// codes. The zero Tag is (Nil, SizeSingle), which is also how the encoder
// represents a nil value on the wire.
type Tag struct {
	Type TypeCode
	Size SizeCode
}

// DecodeTag splits a raw tag byte into its type and size codes. b must not be
// [NOPTag]; NOP bytes are handled separately by the decoder, as they are not
// themselves tags.
func DecodeTag(b byte) Tag {
	return Tag{Type: TypeCode(b >> 4), Size: SizeCode(b & 0x0F)}
}

// Encode combines t back into a raw wire tag byte.
func (t Tag) Encode() byte {
	return byte(t.Type)<<4 | byte(t.Size)
}

func (t Tag) String() string {
	return t.Type.String() + "/" + t.Size.String()
}

//endregion

// MaxNestingDepth is the baseline ceiling on STRUCT/LIST nesting depth, used
// when a [github.com/litevector/litevector/wire.Decoder] is not configured
// with an explicit limit. Constrained deployments may lower it; the decoder
// never allocates more stack slots than the configured limit requires.
const MaxNestingDepth = 32
