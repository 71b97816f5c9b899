package wire

// Byte-class DFA UTF-8 validator, after Bjoern Hoehrmann's "Flexible and
// Economical UTF-8 Decoder" (http://bjoern.hoehrmann.de/utf-8/decoder/dfa/),
// used under its MIT license. The LiteVector C implementation embeds the
// same table verbatim (litevectors.c); this is a direct port, not a
// reimplementation, so the two validators agree byte-for-byte on every
// input, including the malformed ones.
//
// utf8Accept and utf8Reject are the only two states a caller needs to care
// about: every other state is an intermediate "more continuation bytes
// expected" state.
const (
	utf8Accept = 0
	utf8Reject = 12
)

// utf8Table is the combined byte-class map (first 256 entries) and
// state-transition table (remaining entries, indexed by 256+state+class).
var utf8Table = [...]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, 11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,

	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, 12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// validUTF8 reports whether buf is well-formed UTF-8. It validates the whole
// slice rather than stopping at the first non-ASCII byte, matching the
// C implementation's is_valid_utf8.
func validUTF8(buf []byte) bool {
	state := uint32(utf8Accept)
	for _, b := range buf {
		class := utf8Table[b]
		state = uint32(utf8Table[256+state+uint32(class)])
	}
	return state == utf8Accept
}
