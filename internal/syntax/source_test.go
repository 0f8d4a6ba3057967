package syntax

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// readAll drains b the way the scanner does.
func readAll(b *buffer) string {
	var sb strings.Builder
	b.start()
	i := 0
	for {
		for i >= b.len() {
			if !b.swap() {
				return sb.String()
			}
			i = 0
		}
		sb.WriteByte(b.at(i))
		i++
	}
}

func TestBufferSizes(t *testing.T) {
	src := "int a; a = 3 + 4 ."
	for _, size := range []int{0, 1, 2, 3, 4, 7, 18, 19, 20, 4096} {
		b := newBuffer(strings.NewReader(src), size)
		if got := readAll(b); got != src {
			t.Errorf("size %d: read %q, want %q", size, got, src)
		}
		if b.err != nil {
			t.Errorf("size %d: unexpected error %v", size, b.err)
		}
	}
}

func TestBufferFillMarksEOF(t *testing.T) {
	b := newBuffer(strings.NewReader("abc"), 8)
	b.start()
	if b.len() != 3 {
		t.Fatalf("len = %d, want 3", b.len())
	}
	if !b.eof {
		t.Error("short fill should mark end of input")
	}
	if b.swap() {
		t.Error("swap after end of input should fail")
	}
}

func TestBufferExactMultiple(t *testing.T) {
	// Two full halves of 3 bytes, then an empty fill.
	b := newBuffer(strings.NewReader("abcdef"), 4)
	if got := readAll(b); got != "abcdef" {
		t.Errorf("read %q, want %q", got, "abcdef")
	}
}

func TestBufferEmpty(t *testing.T) {
	b := newBuffer(strings.NewReader(""), 16)
	if got := readAll(b); got != "" {
		t.Errorf("read %q, want empty", got)
	}
}

type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestBufferReadError(t *testing.T) {
	boom := errors.New("boom")
	b := newBuffer(&failingReader{data: "ab", err: boom}, 4)
	readAll(b)
	if !errors.Is(b.err, boom) {
		t.Errorf("err = %v, want %v", b.err, boom)
	}

	b = newBuffer(&failingReader{data: "ab", err: io.EOF}, 4)
	if got := readAll(b); got != "ab" {
		t.Errorf("read %q, want %q", got, "ab")
	}
	if b.err != nil {
		t.Errorf("io.EOF must not be reported, got %v", b.err)
	}
}

func TestCharClasses(t *testing.T) {
	for c := 0; c < 128; c++ {
		b := byte(c)
		letter := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		if isLetter(b) != letter {
			t.Errorf("isLetter(%q) = %v", b, isLetter(b))
		}
		if isDigit(b) != (b >= '0' && b <= '9') {
			t.Errorf("isDigit(%q) = %v", b, isDigit(b))
		}
	}
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		if !isWhitespace(c) {
			t.Errorf("isWhitespace(%q) = false", c)
		}
	}
	if isWhitespace('\v') {
		t.Error("vertical tab is not whitespace")
	}
}
