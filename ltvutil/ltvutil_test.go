package ltvutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/litevector/litevector"
	"github.com/litevector/litevector/wire"
)

func TestStringEquals(t *testing.T) {
	el := wire.Element{Type: litevector.String, Bytes: []byte("hello")}
	assert.True(t, StringEquals(el, "hello"))
	assert.False(t, StringEquals(el, "world"))

	notString := wire.Element{Type: litevector.U8, Uint: 1}
	assert.False(t, StringEquals(notString, "1"))
}

func TestIsUintIsInt(t *testing.T) {
	u := wire.Element{Type: litevector.U32, Size: litevector.SizeSingle}
	assert.True(t, IsUint(u))
	assert.False(t, IsInt(u))

	i := wire.Element{Type: litevector.I16, Size: litevector.SizeSingle}
	assert.True(t, IsInt(i))
	assert.False(t, IsUint(i))

	vec := wire.Element{Type: litevector.U32, Size: litevector.SizeVec1}
	assert.False(t, IsUint(vec))
}

func TestIsFloatIsDouble(t *testing.T) {
	f := wire.Element{Type: litevector.F32, Size: litevector.SizeSingle}
	assert.True(t, IsFloat(f))
	assert.False(t, IsDouble(f))

	d := wire.Element{Type: litevector.F64, Size: litevector.SizeSingle}
	assert.True(t, IsDouble(d))
	assert.False(t, IsFloat(d))
}

func TestIsIntBound(t *testing.T) {
	tt := map[string]struct {
		el   wire.Element
		min  int64
		max  int64
		want bool
	}{
		"signed in range":     {wire.Element{Type: litevector.I32, Size: litevector.SizeSingle, Int: 5}, 0, 10, true},
		"signed out of range": {wire.Element{Type: litevector.I32, Size: litevector.SizeSingle, Int: 50}, 0, 10, false},
		"unsigned fits":       {wire.Element{Type: litevector.U32, Size: litevector.SizeSingle, Uint: 5}, 0, 10, true},
		"unsigned too large":  {wire.Element{Type: litevector.U64, Size: litevector.SizeSingle, Uint: math.MaxUint64}, 0, 10, false},
		"not an int":          {wire.Element{Type: litevector.Bool, Size: litevector.SizeSingle}, 0, 10, false},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsIntBound(tc.el, tc.min, tc.max))
		})
	}
}

func TestIsUintBound(t *testing.T) {
	tt := map[string]struct {
		el   wire.Element
		min  uint64
		max  uint64
		want bool
	}{
		"unsigned in range": {wire.Element{Type: litevector.U32, Size: litevector.SizeSingle, Uint: 5}, 0, 10, true},
		"signed negative":   {wire.Element{Type: litevector.I32, Size: litevector.SizeSingle, Int: -1}, 0, 10, false},
		"signed fits":       {wire.Element{Type: litevector.I32, Size: litevector.SizeSingle, Int: 5}, 0, 10, true},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUintBound(tc.el, tc.min, tc.max))
		})
	}
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, litevector.StatusEOF.String(), StatusText(litevector.StatusEOF))
}

func TestStaticBuffer(t *testing.T) {
	buf := NewStaticBuffer(4)

	n, err := buf.Write([]byte{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = buf.Write([]byte{3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = buf.Write([]byte{5})
	assert.ErrorIs(t, err, ErrBufferFull)

	assert.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())
	assert.Equal(t, 4, buf.Len())
	assert.Equal(t, 4, buf.Cap())

	buf.Reset()
	assert.Equal(t, 0, buf.Len())
}
