package syntax

import (
	"errors"
	"io"
)

// DefaultBufferSize is the size of each half of the double buffer.
const DefaultBufferSize = 4096

// buffer is a double-buffered byte reader. Each half holds at most size-1
// bytes of input; the slot after the last valid byte is reserved for the
// end-of-input mark, which here is the per-half length n.
type buffer struct {
	rd   io.Reader
	data [2][]byte
	n    [2]int // valid bytes per half

	active int  // half the scanner is reading
	loaded bool // first half has been filled
	eof    bool // input exhausted
	err    error
}

// newBuffer creates a double buffer over rd. Sizes below 2 are raised to 2
// so that every fill reads at least one byte.
func newBuffer(rd io.Reader, size int) *buffer {
	if size < 2 {
		size = 2
	}
	return &buffer{
		rd:   rd,
		data: [2][]byte{make([]byte, size), make([]byte, size)},
	}
}

// fill reads up to size-1 bytes into half i. A short read marks end of input.
func (b *buffer) fill(i int) bool {
	if b.eof {
		b.n[i] = 0
		return false
	}
	want := len(b.data[i]) - 1
	n, err := io.ReadFull(b.rd, b.data[i][:want])
	b.n[i] = n
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		b.eof = true
	default:
		b.eof = true
		b.err = err
		return false
	}
	if n < want {
		b.eof = true
	}
	return n > 0
}

// start loads the first half on first use.
func (b *buffer) start() {
	if !b.loaded {
		b.loaded = true
		b.fill(0)
	}
}

// swap refills the inactive half and makes it active.
// It reports false when no further input exists.
func (b *buffer) swap() bool {
	if b.eof {
		return false
	}
	other := 1 - b.active
	b.fill(other)
	b.active = other
	return true
}

// at returns byte i of the active half.
func (b *buffer) at(i int) byte {
	return b.data[b.active][i]
}

// len returns the number of valid bytes in the active half.
func (b *buffer) len() int {
	return b.n[b.active]
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// isDigit reports whether c is a decimal digit (0-9).
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isWhitespace reports whether c is a whitespace character, newline included.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
