package litevector

import "strconv"

// Status is the outcome of a single [github.com/litevector/litevector/wire.Decoder.Next]
// call. The zero value, StatusSuccess, indicates a value was parsed.
// StatusEOF is a clean end of stream; every other non-success status
// indicates the input is malformed.
type Status int

const (
	StatusSuccess Status = iota // a value was parsed successfully.
	StatusEOF                   // the buffer was exhausted at a tag boundary, outside any open Struct/List.
	StatusUnexpectedEOF
	StatusInvalidSizeCode
	StatusInvalidVectorLength
	StatusInvalidStructKey
	StatusExpectedStructValue
	StatusInvalidUTF8
	StatusMaxDepthReached
	StatusNestMismatch
)

// statusText mirrors ltv_status_text from the C implementation: a
// fixed diagnostic string per status code.
var statusText = [...]string{
	StatusSuccess:             "value parsed successfully",
	StatusEOF:                 "end of buffer reached (clean)",
	StatusUnexpectedEOF:       "end of buffer reached while a value or struct/list was still open",
	StatusInvalidSizeCode:     "size code is reserved, or a structural type was combined with a non-single size code",
	StatusInvalidVectorLength: "vector byte length is not a multiple of the element width",
	StatusInvalidStructKey:    "expected a STRING key (or END) inside a struct, found another type",
	StatusExpectedStructValue: "expected a value inside a struct, found END",
	StatusInvalidUTF8:         "string payload is not well-formed UTF-8",
	StatusMaxDepthReached:     "struct/list nesting exceeded the configured ceiling",
	StatusNestMismatch:        "an END tag was found with no matching open struct/list",
}

// String returns the fixed diagnostic string associated with s, for
// diagnostic use in logs and error messages.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusText) {
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
	return statusText[s]
}

// Error implements the error interface so a bare Status can be returned,
// compared with errors.Is, and wrapped like any other error.
func (s Status) Error() string { return s.String() }

// Done reports whether s terminates decoding: every status other than
// StatusSuccess stops the caller from making further progress with the same
// decoder state (StatusEOF cleanly; everything else because the cursor
// position after an error is unspecified).
func (s Status) Done() bool { return s != StatusSuccess }
