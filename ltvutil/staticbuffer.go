package ltvutil

import "errors"

// ErrBufferFull is returned by [StaticBuffer.Write] once the buffer's fixed
// capacity has been exhausted.
var ErrBufferFull = errors.New("ltvutil: static buffer is full")

// StaticBuffer is a fixed-capacity, pre-allocated sink, for callers that
// want to encode into a known-size buffer without the backing array
// growing, in the style of the C implementation's static_buffer_t.
// It implements [wire.Sink] via its Write method and is not safe for
// concurrent use.
type StaticBuffer struct {
	data []byte
	size int
}

// NewStaticBuffer creates a StaticBuffer with the given fixed capacity.
func NewStaticBuffer(capacity int) *StaticBuffer {
	return &StaticBuffer{data: make([]byte, capacity)}
}

// Write implements [wire.Sink] (and [io.Writer]). It appends p to the
// buffer, or returns [ErrBufferFull] without writing anything if p would
// overflow the fixed capacity.
func (b *StaticBuffer) Write(p []byte) (int, error) {
	if b.size+len(p) > len(b.data) {
		return 0, ErrBufferFull
	}
	copy(b.data[b.size:], p)
	b.size += len(p)
	return len(p), nil
}

// Bytes returns the buffer's contents written so far. The returned slice
// aliases the StaticBuffer's backing array.
func (b *StaticBuffer) Bytes() []byte { return b.data[:b.size] }

// Len returns the number of bytes written so far.
func (b *StaticBuffer) Len() int { return b.size }

// Cap returns the buffer's fixed capacity.
func (b *StaticBuffer) Cap() int { return len(b.data) }

// Reset empties the buffer without releasing its backing array.
func (b *StaticBuffer) Reset() { b.size = 0 }
