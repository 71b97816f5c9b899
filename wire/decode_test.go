package wire

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litevector/litevector"
)

func TestDecoder_Scalars(t *testing.T) {
	tt := map[string]struct {
		buf  []byte
		want Element
	}{
		"nil":  {[]byte{0x00}, Element{Type: litevector.Nil}},
		"bool": {[]byte{0x50, 0x01}, Element{Type: litevector.Bool, Length: 1, Bool: true}},
		"u8":   {[]byte{0x60, 0x7F}, Element{Type: litevector.U8, Length: 1, Uint: 0x7F}},
		"u16":  {[]byte{0x70, 0x34, 0x12}, Element{Type: litevector.U16, Length: 2, Uint: 0x1234}},
		"u32":  {[]byte{0x80, 0x78, 0x56, 0x34, 0x12}, Element{Type: litevector.U32, Length: 4, Uint: 0x12345678}},
		"i8":   {[]byte{0xA0, 0x80}, Element{Type: litevector.I8, Length: 1, Int: -128}},
		"i16":  {[]byte{0xB0, 0x00, 0x80}, Element{Type: litevector.I16, Length: 2, Int: -32768}},
		"i32":  {[]byte{0xC0, 0x00, 0x00, 0x00, 0x80}, Element{Type: litevector.I32, Length: 4, Int: -2147483648}},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			dec := NewDecoder(tc.buf)
			var el Element
			require.NoError(t, dec.Next(&el))
			assert.Equal(t, tc.want, el)
			require.ErrorIs(t, dec.Next(&el), io.EOF)
		})
	}
}

func TestDecoder_NOPTransparent(t *testing.T) {
	dec := NewDecoder([]byte{0xFF, 0xFF, 0x00, 0xFF})
	var el Element
	require.NoError(t, dec.Next(&el))
	assert.Equal(t, litevector.Nil, el.Type)
	require.ErrorIs(t, dec.Next(&el), io.EOF)
}

func TestDecoder_StructAlternation(t *testing.T) {
	buf := []byte{
		0x10,            // STRUCT
		0x41, 0x01, 'k', // STRING key
		0x60, 0x07, // U8 value
		0x30, // END
	}
	dec := NewDecoder(buf)
	var el Element

	require.NoError(t, dec.Next(&el))
	assert.Equal(t, litevector.Struct, el.Type)

	require.NoError(t, dec.Next(&el))
	assert.Equal(t, litevector.String, el.Type)
	assert.Equal(t, "k", string(el.Bytes))

	require.NoError(t, dec.Next(&el))
	assert.Equal(t, litevector.U8, el.Type)
	assert.EqualValues(t, 7, el.Uint)

	require.NoError(t, dec.Next(&el))
	assert.Equal(t, litevector.End, el.Type)

	require.ErrorIs(t, dec.Next(&el), io.EOF)
}

func TestDecoder_Errors(t *testing.T) {
	tt := map[string]struct {
		buf        []byte
		wantStatus litevector.Status
	}{
		"truncated single payload":     {[]byte{0x60}, litevector.StatusUnexpectedEOF},
		"truncated vector prefix":      {[]byte{0x61}, litevector.StatusUnexpectedEOF},
		"truncated vector payload":     {[]byte{0x61, 0x04, 0x00}, litevector.StatusUnexpectedEOF},
		"invalid size code":            {[]byte{0x65, 0x00}, litevector.StatusInvalidSizeCode},
		"struct with non-single size":  {[]byte{0x11, 0x00}, litevector.StatusInvalidSizeCode},
		"unmatched end":                {[]byte{0x30}, litevector.StatusNestMismatch},
		"struct key not a string":      {[]byte{0x10, 0x00, 0x30}, litevector.StatusInvalidStructKey},
		"struct value missing":         {[]byte{0x10, 0x41, 0x00, 0x30}, litevector.StatusExpectedStructValue},
		"vector length not a multiple": {[]byte{0x71, 0x03, 0x01, 0x02, 0x03}, litevector.StatusInvalidVectorLength},
		"invalid utf8":                 {[]byte{0x41, 0x01, 0xFF}, litevector.StatusInvalidUTF8},
		"unclosed struct":              {[]byte{0x10}, litevector.StatusUnexpectedEOF},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			dec := NewDecoder(tc.buf)
			var el Element
			var err error
			for {
				err = dec.Next(&el)
				if err != nil {
					break
				}
			}
			var decErr *DecodeError
			require.True(t, errors.As(err, &decErr), "expected *DecodeError, got %T: %v", err, err)
			assert.Equal(t, tc.wantStatus, decErr.Status)
		})
	}
}

func TestDecoder_MaxNestingDepth(t *testing.T) {
	var buf []byte
	for i := 0; i < 3; i++ {
		buf = append(buf, litevector.Tag{Type: litevector.List, Size: litevector.SizeSingle}.Encode())
	}
	dec := NewDecoder(buf, WithMaxNestingDepth(2))
	var el Element
	require.NoError(t, dec.Next(&el))
	require.NoError(t, dec.Next(&el))

	err := dec.Next(&el)
	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, litevector.StatusMaxDepthReached, decErr.Status)
}

func TestDecoder_UTF8ValidationCanBeDisabled(t *testing.T) {
	buf := []byte{0x41, 0x01, 0xFF}
	dec := NewDecoder(buf, WithUTF8Validation(false))
	var el Element
	require.NoError(t, dec.Next(&el))
	assert.Equal(t, []byte{0xFF}, el.Bytes)
}

func TestDecoder_U16Vector(t *testing.T) {
	buf := []byte{0x71, 0x04, 0x01, 0x00, 0x02, 0x00}
	dec := NewDecoder(buf)
	var el Element
	require.NoError(t, dec.Next(&el))
	assert.Equal(t, litevector.U16, el.Type)
	assert.Equal(t, 4, el.Length)
	assert.Equal(t, []byte{0x01, 0x00, 0x02, 0x00}, el.Bytes)
}
