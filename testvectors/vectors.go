package testvectors

// Vector is a single hand-authored byte sequence used to exercise
// [github.com/litevector/litevector/wire]'s decoder against the format's
// invariants and edge cases, in the spirit of the C implementation's
// tests/run_test_vectors.c: "if positive, all vectors should parse
// successfully; if negative, all vectors should error."
type Vector struct {
	Name  string
	Bytes []byte
	// Positive is true if decoding Bytes to completion must reach a clean
	// EOF. If false, decoding must stop with an error before EOF.
	Positive bool
}

// Positive vectors: every one of these must decode to a clean [io.EOF]
// without producing an error partway through.
var Positive = []Vector{
	{Name: "empty input", Positive: true, Bytes: []byte{}},
	{Name: "single nil", Positive: true, Bytes: []byte{0x00}},
	{Name: "bool true", Positive: true, Bytes: []byte{0x50, 0x01}},
	{Name: "u8 max", Positive: true, Bytes: []byte{0x60, 0xFF}},
	{Name: "i8 min", Positive: true, Bytes: []byte{0xA0, 0x80}},
	{Name: "empty struct", Positive: true, Bytes: []byte{0x10, 0x30}},
	{Name: "empty list", Positive: true, Bytes: []byte{0x20, 0x30}},
	{Name: "nop before tag", Positive: true, Bytes: []byte{0xFF, 0xFF, 0x00}},
	{Name: "nop inside struct", Positive: true, Bytes: []byte{0x10, 0xFF, 0x30}},
	{Name: "struct with one key", Positive: true, Bytes: []byte{
		0x10,             // STRUCT
		0x41, 0x01, 'k',  // STRING key (vec1, length 1)
		0x60, 0x07,       // U8 value
		0x30,             // END
	}},
	{Name: "u8 vector of 3", Positive: true, Bytes: []byte{0x61, 0x03, 0x01, 0x02, 0x03}},
	{Name: "empty string", Positive: true, Bytes: []byte{0x41, 0x00}},
	{Name: "nested list in list", Positive: true, Bytes: []byte{0x20, 0x20, 0x30, 0x30}},
}

// Negative vectors: every one of these must produce a decode error before
// reaching a clean EOF.
var Negative = []Vector{
	{Name: "truncated tag payload", Bytes: []byte{0x60}},                 // U8 with no payload byte
	{Name: "truncated vector prefix", Bytes: []byte{0x61}},               // U8 vector, no length prefix
	{Name: "truncated vector payload", Bytes: []byte{0x61, 0x04, 0x00}},  // length 4, only 1 byte follows
	{Name: "invalid size code 5", Bytes: []byte{0x65, 0x00}},             // size code 5 is reserved
	{Name: "invalid size code 15", Bytes: []byte{0x6F, 0x00}},            // size code 15 is reserved
	{Name: "struct size code non-single", Bytes: []byte{0x11, 0x00}},     // STRUCT combined with VEC1
	{Name: "nil size code non-single", Bytes: []byte{0x01, 0x00}},       // NIL combined with VEC1
	{Name: "unmatched end", Bytes: []byte{0x30}},                         // END at depth 0
	{Name: "struct key not a string", Bytes: []byte{0x10, 0x00, 0x30}},   // NIL where a STRING key is expected
	{Name: "struct missing value", Bytes: []byte{0x10, 0x41, 0x00, 0x30}}, // key present, value is immediately END
	{Name: "unclosed struct", Bytes: []byte{0x10}},                       // STRUCT opened, never closed
	{Name: "vector length not multiple of width", Bytes: []byte{0x71, 0x03, 0x01, 0x02, 0x03}}, // U16 vector, length 3
	{Name: "invalid utf8 string", Bytes: []byte{0x41, 0x01, 0xFF}},
}
