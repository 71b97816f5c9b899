// Package ltvutil provides small helpers for working with decoded
// LiteVector values. None of this is required to encode or decode the
// format; it exists for callers building inspection tools or value
// validators on top of [github.com/litevector/litevector/wire], mirroring
// the C implementation's litevectors_util.c, which documents itself
// the same way: "not used by the encoder or decoder, and not required to
// use LiteVectors."
package ltvutil

import (
	"math"

	"github.com/litevector/litevector"
	"github.com/litevector/litevector/wire"
)

// StringEquals reports whether el is a STRING element whose bytes equal
// want. The element's size code is not checked, so a single-byte STRING and
// a STRING vector can both satisfy it.
func StringEquals(el wire.Element, want string) bool {
	return el.Type == litevector.String && string(el.Bytes) == want
}

// IsUint reports whether el is a standalone (SINGLE-size) unsigned integer.
func IsUint(el wire.Element) bool {
	return el.Size == litevector.SizeSingle && el.Type >= litevector.U8 && el.Type <= litevector.U64
}

// IsInt reports whether el is a standalone (SINGLE-size) signed integer.
func IsInt(el wire.Element) bool {
	return el.Size == litevector.SizeSingle && el.Type >= litevector.I8 && el.Type <= litevector.I64
}

// IsFloat reports whether el is a standalone 32-bit float.
func IsFloat(el wire.Element) bool {
	return el.Size == litevector.SizeSingle && el.Type == litevector.F32
}

// IsDouble reports whether el is a standalone 64-bit float.
func IsDouble(el wire.Element) bool {
	return el.Size == litevector.SizeSingle && el.Type == litevector.F64
}

// IsIntBound reports whether el is an integer (signed or unsigned) whose
// value falls within [min, max]. An unsigned value larger than
// math.MaxInt64 never satisfies this, since it cannot be compared against a
// signed bound.
func IsIntBound(el wire.Element, min, max int64) bool {
	switch {
	case IsInt(el):
		return el.Int >= min && el.Int <= max
	case IsUint(el):
		if max < 0 || el.Uint > math.MaxInt64 {
			return false
		}
		umin := uint64(0)
		if min > 0 {
			umin = uint64(min)
		}
		umax := uint64(0)
		if max > 0 {
			umax = uint64(max)
		}
		return el.Uint >= umin && el.Uint <= umax
	default:
		return false
	}
}

// IsUintBound reports whether el is an integer (signed or unsigned) whose
// value falls within [min, max]. A negative signed value never satisfies
// this.
func IsUintBound(el wire.Element, min, max uint64) bool {
	switch {
	case IsInt(el):
		if el.Int < 0 {
			return false
		}
		if min > math.MaxInt64 {
			return false
		}
		imin := int64(min)
		imax := int64(math.MaxInt64)
		if max <= math.MaxInt64 {
			imax = int64(max)
		}
		return el.Int >= imin && el.Int <= imax
	case IsUint(el):
		return el.Uint >= min && el.Uint <= max
	default:
		return false
	}
}

// StatusText returns a one-line description of status, in the style of the
// C implementation's ltv_status_text, for use in logs and CLI
// diagnostics.
func StatusText(status litevector.Status) string {
	return status.String()
}
