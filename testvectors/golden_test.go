package testvectors

import (
	"io"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litevector/litevector"
	"github.com/litevector/litevector/wire"
)

func encodeGolden(t *testing.T, g Golden) []byte {
	t.Helper()
	var out []byte
	enc := wire.NewEncoder(func(p []byte) (int, error) {
		out = append(out, p...)
		return len(p), nil
	})
	Encode(enc, g)
	require.NoError(t, enc.Err())
	return out
}

func expectString(t *testing.T, dec *wire.Decoder, want string) {
	t.Helper()
	var el wire.Element
	require.NoError(t, dec.Next(&el))
	require.Equal(t, litevector.String, el.Type)
	assert.Equal(t, want, string(el.Bytes))
}

func expectKeyedValue(t *testing.T, dec *wire.Decoder, key string) wire.Element {
	t.Helper()
	expectString(t, dec, key)
	var el wire.Element
	require.NoError(t, dec.Next(&el))
	return el
}

// TestGoldenRoundTrip decodes the golden fixture back and checks it key by
// key up to the "list" entry: scalars and strings by value, the u8[] vector
// byte for byte, and the other vectors by byte length, mirroring the C
// implementation's round_trip_test.c validate().
func TestGoldenRoundTrip(t *testing.T) {
	g := NewGolden()
	data := encodeGolden(t, g)

	dec := wire.NewDecoder(data)

	var top wire.Element
	require.NoError(t, dec.Next(&top))
	require.Equal(t, litevector.Struct, top.Type)

	el := expectKeyedValue(t, dec, "nil")
	assert.Equal(t, litevector.Nil, el.Type)

	el = expectKeyedValue(t, dec, "bool_false")
	assert.False(t, el.Bool)
	el = expectKeyedValue(t, dec, "bool_true")
	assert.True(t, el.Bool)

	el = expectKeyedValue(t, dec, "i8")
	assert.EqualValues(t, -123, el.Int)
	el = expectKeyedValue(t, dec, "u8")
	assert.EqualValues(t, 225, el.Uint)

	el = expectKeyedValue(t, dec, "i16")
	assert.EqualValues(t, 1234, el.Int)
	el = expectKeyedValue(t, dec, "u16")
	assert.EqualValues(t, 50000, el.Uint)

	el = expectKeyedValue(t, dec, "i32")
	assert.EqualValues(t, -40, el.Int)
	el = expectKeyedValue(t, dec, "u32")
	assert.EqualValues(t, 3000000000, el.Uint)

	el = expectKeyedValue(t, dec, "i64")
	assert.EqualValues(t, -123456, el.Int)
	el = expectKeyedValue(t, dec, "u64")
	assert.EqualValues(t, 99, el.Uint)

	el = expectKeyedValue(t, dec, "f32")
	assert.InDelta(t, 123.45678901234566789, el.F32, 1e-2)
	el = expectKeyedValue(t, dec, "f64")
	assert.InDelta(t, 123.45678901234566789, el.F64, 1e-9)

	el = expectKeyedValue(t, dec, "string")
	assert.Equal(t, g.String, string(el.Bytes))
	el = expectKeyedValue(t, dec, "string_non_ascii")
	assert.Equal(t, g.StringNonASCII, string(el.Bytes))

	el = expectKeyedValue(t, dec, "bool[]")
	assert.Equal(t, len(g.Bools), el.Length)

	el = expectKeyedValue(t, dec, "i8[]")
	assert.Equal(t, len(g.I8s), el.Length)
	el = expectKeyedValue(t, dec, "u8[]")
	if diff := cmp.Diff(g.U8s, el.Bytes); diff != "" {
		t.Errorf("u8[] mismatch (-want +got):\n%s", diff)
	}

	el = expectKeyedValue(t, dec, "i16[]")
	assert.Equal(t, len(g.I16s)*2, el.Length)
	el = expectKeyedValue(t, dec, "u16[]")
	assert.Equal(t, len(g.U16s)*2, el.Length)
	el = expectKeyedValue(t, dec, "i32[]")
	assert.Equal(t, len(g.I32s)*4, el.Length)
	el = expectKeyedValue(t, dec, "u32[]")
	assert.Equal(t, len(g.U32s)*4, el.Length)
	el = expectKeyedValue(t, dec, "i64[]")
	assert.Equal(t, len(g.I64s)*8, el.Length)
	el = expectKeyedValue(t, dec, "u64[]")
	assert.Equal(t, len(g.U64s)*8, el.Length)
	el = expectKeyedValue(t, dec, "f32[]")
	assert.Equal(t, len(g.F32s)*4, el.Length)
	el = expectKeyedValue(t, dec, "f64[]")
	assert.Equal(t, len(g.F64s)*8, el.Length)

	expectString(t, dec, "list")
	var listTag wire.Element
	require.NoError(t, dec.Next(&listTag))
	assert.Equal(t, litevector.List, listTag.Type)
}

// TestGoldenBoundaryValues isolates the "boundaries" sub-struct and checks
// a few integer extremes and the float special values after the round trip:
// the sign of negative zero, Infinity of either sign, and NaN.
func TestGoldenBoundaryValues(t *testing.T) {
	g := NewGolden()
	data := encodeGolden(t, g)
	dec := wire.NewDecoder(data)

	// Walk to the "boundaries" struct, skipping everything before it.
	var el wire.Element
	require.NoError(t, dec.Next(&el)) // top struct
	for {
		require.NoError(t, dec.Next(&el))
		if el.Type == litevector.String && string(el.Bytes) == "boundaries" {
			break
		}
		skipValue(t, dec, el)
	}
	require.NoError(t, dec.Next(&el))
	require.Equal(t, litevector.Struct, el.Type)

	values := map[string]wire.Element{}
	for {
		var key wire.Element
		require.NoError(t, dec.Next(&key))
		if key.Type == litevector.End {
			break
		}
		var val wire.Element
		require.NoError(t, dec.Next(&val))
		values[string(key.Bytes)] = val
	}

	assert.EqualValues(t, math.MinInt8, values["int8_MIN"].Int)
	assert.EqualValues(t, math.MaxInt64, values["int64_MAX"].Int)
	assert.EqualValues(t, math.MaxUint64, values["uint64_MAX"].Uint)

	assert.Equal(t, float32(0), values["float32_pos_zero"].F32)
	assert.True(t, math.Signbit(float64(values["float32_neg_zero"].F32)))
	assert.True(t, math.IsInf(float64(values["float32_pos_infinity"].F32), 1))
	assert.True(t, math.IsInf(float64(values["float32_neg_infinity"].F32), -1))
	assert.True(t, math.IsNaN(float64(values["float32_nan"].F32)))

	assert.True(t, math.Signbit(values["float64_neg_zero"].F64))
	assert.True(t, math.IsInf(values["float64_pos_infinity"].F64, 1))
	assert.True(t, math.IsNaN(values["float64_nan"].F64))
}

// skipValue consumes the body of el if it opens a Struct or List; el itself
// has already been read from dec.
func skipValue(t *testing.T, dec *wire.Decoder, el wire.Element) {
	t.Helper()
	if el.Type != litevector.Struct && el.Type != litevector.List {
		return
	}
	depth := 1
	for depth > 0 {
		var child wire.Element
		err := dec.Next(&child)
		if err == io.EOF {
			t.Fatalf("unexpected EOF while skipping nested value")
		}
		require.NoError(t, err)
		switch child.Type {
		case litevector.Struct, litevector.List:
			depth++
		case litevector.End:
			depth--
		}
	}
}
