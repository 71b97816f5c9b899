package wire

import (
	"strconv"

	"github.com/litevector/litevector"
)

// DecodeError reports a malformed LiteVector stream. It wraps a
// [litevector.Status] with the byte offset at which decoding stopped.
//
// The cursor position after a DecodeError is unspecified; the decoder must
// not be used further once Next returns one (see [Decoder.Next]).
type DecodeError struct {
	Status litevector.Status

	// Offset is the byte offset of the tag (or, for a truncated tag/NOP run,
	// the offset at which the buffer ran out) that triggered the error.
	Offset int
}

func (e *DecodeError) Error() string {
	return "litevector: " + e.Status.String() + " at offset " + strconv.Itoa(e.Offset)
}

// Unwrap lets errors.Is(err, litevector.StatusInvalidUTF8) and friends work
// directly against a *DecodeError.
func (e *DecodeError) Unwrap() error { return e.Status }

// SinkError reports a failed sink write as a numeric status. The [Encoder]
// latches a SinkError with Code 0 when its sink accepts zero bytes without
// returning an error; an error the sink returns itself (a *SinkError or any
// other) is latched as is. Only the first failure is stored, and every
// subsequent write is suppressed.
type SinkError struct {
	// Code is 0 when the Encoder latched the error because the sink accepted
	// no bytes, or the application-defined status of a sink that returns its
	// own *SinkError.
	Code int
}

func (e *SinkError) Error() string {
	return "litevector: sink write failed with status " + strconv.Itoa(e.Code)
}
