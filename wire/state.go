package wire

import "github.com/litevector/litevector"

// nestStack tracks the open Struct/List frames shared by [Encoder] and
// [Decoder]. Each slot holds one of three sentinel values:
//
//   - litevector.Struct — inside a Struct, the next value must be a STRING
//     key (or END to close the struct).
//   - litevector.End — inside a Struct, the next value must be any
//     non-END value (the key's value).
//   - litevector.List — inside a List; values may follow in any order, with
//     no alternation requirement.
//
// A Struct frame's slot toggles between litevector.Struct and litevector.End
// on every value seen inside it; a List frame's slot is never touched after
// being pushed. This mirrors the C implementation's nest_stack, which reuses
// the LTV_STRUCT/LTV_LIST/LTV_END type-code values themselves as sentinels.
type nestStack struct {
	slots []litevector.TypeCode
	max   int
}

// reset clears s to the empty (root-level) stack. The allocated slice is
// reused.
func (s *nestStack) reset(maxDepth int) {
	if cap(s.slots) < maxDepth {
		s.slots = make([]litevector.TypeCode, 0, maxDepth)
	}
	s.slots = s.slots[:0]
	s.max = maxDepth
}

// depth returns the current nesting depth (0 at the root).
func (s *nestStack) depth() int { return len(s.slots) }

// push opens a new frame for typ (litevector.Struct or litevector.List). It
// reports false if doing so would exceed the configured maximum depth, in
// which case the stack is left unchanged.
func (s *nestStack) push(typ litevector.TypeCode) bool {
	if len(s.slots) >= s.max {
		return false
	}
	s.slots = append(s.slots, typ)
	return true
}

// pop closes the innermost frame. It reports false if the stack was already
// empty (an unmatched END).
func (s *nestStack) pop() bool {
	if len(s.slots) == 0 {
		return false
	}
	s.slots = s.slots[:len(s.slots)-1]
	return true
}

// top returns the sentinel of the innermost open frame and whether one
// exists.
func (s *nestStack) top() (litevector.TypeCode, bool) {
	if len(s.slots) == 0 {
		return 0, false
	}
	return s.slots[len(s.slots)-1], true
}

// toggle flips the innermost frame's sentinel between litevector.Struct and
// litevector.End. It is a no-op for a List frame.
func (s *nestStack) toggle() {
	i := len(s.slots) - 1
	switch s.slots[i] {
	case litevector.Struct:
		s.slots[i] = litevector.End
	case litevector.End:
		s.slots[i] = litevector.Struct
	}
}
