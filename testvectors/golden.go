// Package testvectors provides round-trip fixtures, exercised by this
// package's own tests: a golden "one of everything" document (grounded on the
// C implementation's examples/roundtrip.c) and a small suite of
// hand-authored positive/negative byte vectors in the spirit of its
// tests/run_test_vectors.c driver.
package testvectors

import (
	"math"

	"github.com/litevector/litevector/wire"
)

// Golden holds the values written by [Encode] and checked by this
// package's round-trip tests.
type Golden struct {
	String          string
	StringNonASCII  string
	Bools           []bool
	I8s             []int8
	U8s             []uint8
	I16s            []int16
	U16s            []uint16
	I32s            []int32
	U32s            []uint32
	I64s            []int64
	U64s            []uint64
	F32s            []float32
	F64s            []float64
}

// NewGolden returns the fixed value set encoded by [Encode], identical to
// the C implementation's write_test_buf.
func NewGolden() Golden {
	return Golden{
		String:         "HOOP! (There it is)",
		StringNonASCII: "𝐋ṍ𝒓ḝм ℹꝑȿ𝘂м ԁ𝙤ŀ𝖔𝒓 𝘴𝝸ť 𝒂ᵯ𝕖ṯ",
		Bools:          []bool{false, true, true, false, true, false, false, true},
		I8s:            []int8{1, 2, 3, 4, 5, -1, math.MinInt8, math.MaxInt8},
		U8s:            []uint8{1, 2, 3, 7, 8, 9, 0, math.MaxUint8},
		I16s:           []int16{123, -123, 7, 8, 9, -1, math.MinInt16, math.MaxInt16},
		U16s:           []uint16{123, 456, 789, 1011, 1213, 0, 1, math.MaxUint16},
		I32s:           []int32{123, 456, 789, 101112, 131415, -1, math.MinInt32, math.MaxInt32},
		U32s:           []uint32{123, 456, 789, 101112, 131415, 0, 1, math.MaxUint32},
		I64s:           []int64{123, 456, 789, 101112, 131415, -1, math.MinInt64, math.MaxInt64},
		U64s:           []uint64{123, 456, 789, 101112, 131415, 0, 1, math.MaxUint64},
		F32s:           []float32{1.23, 4.56, 7.89, 1.01112, 1.31415, -1.0, math.SmallestNonzeroFloat32, math.MaxFloat32},
		F64s:           []float64{1.23, 4.56, 7.89, 1.01112, 1.31415, -1.0, math.SmallestNonzeroFloat64, math.MaxFloat64},
	}
}

// Encode writes g as a single top-level Struct through enc, covering every
// scalar type, every vector type, nested Struct and List bodies, and the
// boundary-value Struct from the C implementation's fixture.
func Encode(enc *wire.Encoder, g Golden) {
	enc.StructStart()

	enc.String("nil")
	enc.Nil()

	enc.String("bool_false")
	enc.Bool(false)
	enc.String("bool_true")
	enc.Bool(true)

	enc.String("i8")
	enc.I8(-123)
	enc.String("u8")
	enc.U8(225)

	enc.String("i16")
	enc.I16(1234)
	enc.String("u16")
	enc.U16(50000)

	enc.String("i32")
	enc.I32(-40)
	enc.String("u32")
	enc.U32(3000000000)

	enc.String("i64")
	enc.I64(-123456)
	enc.String("u64")
	enc.U64(99)

	enc.String("f32")
	enc.F32(123.45678901234566789)
	enc.String("f64")
	enc.F64(123.45678901234566789)

	enc.String("string")
	enc.String(g.String)
	enc.String("string_non_ascii")
	enc.String(g.StringNonASCII)

	enc.String("bool[]")
	enc.BoolVec(g.Bools)
	enc.String("i8[]")
	enc.I8Vec(g.I8s)
	enc.String("u8[]")
	enc.U8Vec(g.U8s)
	enc.String("i16[]")
	enc.I16Vec(g.I16s)
	enc.String("u16[]")
	enc.U16Vec(g.U16s)
	enc.String("i32[]")
	enc.I32Vec(g.I32s)
	enc.String("u32[]")
	enc.U32Vec(g.U32s)
	enc.String("i64[]")
	enc.I64Vec(g.I64s)
	enc.String("u64[]")
	enc.U64Vec(g.U64s)
	enc.String("f32[]")
	enc.F32Vec(g.F32s)
	enc.String("f64[]")
	enc.F64Vec(g.F64s)

	enc.String("list")
	enc.ListStart()
	enc.U32(123456789)
	enc.Nil()
	enc.Bool(true)
	enc.String("A string")
	enc.End()

	enc.String("map")
	enc.StructStart()
	enc.String("level")
	enc.I8(1)
	enc.String("nested")
	enc.Bool(true)
	enc.String("next")
	enc.StructStart()
	enc.String("level")
	enc.I8(2)
	enc.String("nested")
	enc.Bool(true)
	enc.End()
	enc.End()

	enc.String("boundaries")
	enc.StructStart()
	enc.String("int8_MIN")
	enc.I8(math.MinInt8)
	enc.String("int16_MIN")
	enc.I16(math.MinInt16)
	enc.String("int32_MIN")
	enc.I32(math.MinInt32)
	enc.String("int64_MIN")
	enc.I64(math.MinInt64)

	enc.String("int8_MAX")
	enc.I8(math.MaxInt8)
	enc.String("int16_MAX")
	enc.I16(math.MaxInt16)
	enc.String("int32_MAX")
	enc.I32(math.MaxInt32)
	enc.String("int64_MAX")
	enc.I64(math.MaxInt64)

	enc.String("uint8_MAX")
	enc.U8(math.MaxUint8)
	enc.String("uint16_MAX")
	enc.U16(math.MaxUint16)
	enc.String("uint32_MAX")
	enc.U32(math.MaxUint32)
	enc.String("uint64_MAX")
	enc.U64(math.MaxUint64)

	enc.String("float32_MIN")
	enc.F32(math.SmallestNonzeroFloat32)
	enc.String("float32_MAX")
	enc.F32(math.MaxFloat32)
	enc.String("float32_pos_zero")
	enc.F32(0.0)
	enc.String("float32_neg_zero")
	enc.F32(float32(math.Copysign(0, -1)))
	enc.String("float32_pos_infinity")
	enc.F32(float32(math.Inf(1)))
	enc.String("float32_neg_infinity")
	enc.F32(float32(math.Inf(-1)))
	enc.String("float32_nan")
	enc.F32(float32(math.NaN()))

	enc.String("float64_MIN")
	enc.F64(math.SmallestNonzeroFloat64)
	enc.String("float64_MAX")
	enc.F64(math.MaxFloat64)
	enc.String("float64_pos_zero")
	enc.F64(0.0)
	enc.String("float64_neg_zero")
	enc.F64(math.Copysign(0, -1))
	enc.String("float64_pos_infinity")
	enc.F64(math.Inf(1))
	enc.String("float64_neg_infinity")
	enc.F64(math.Inf(-1))
	enc.String("float64_nan")
	enc.F64(math.NaN())
	enc.End()

	enc.End()
}
