package syntax

import "io"

// Scanner reads characters for the lexer. It keeps the forward position
// inside the double buffer, the text of the lexeme being built and the
// line/column bookkeeping.
//
// Newlines consumed while scanning are counted in pending and only added to
// the committed line at the next token boundary (Reset), so a token's line
// is the line its first character was on.
type Scanner struct {
	rd   io.Reader
	size int
	buf  *buffer

	fwd    int    // forward index into the active half
	lexeme []byte // characters consumed since the last Reset

	line    int // line of the current lexeme start
	pending int // newlines consumed since the last Reset
	col     int // column of the last consumed character
	prevCol int // col before the last Next, for Backup

	ch     byte // last consumed character
	chLine int  // line of ch
	chCol  int  // column of ch
}

// NewScanner creates a Scanner reading from src. The first read happens on
// the first call to Next.
func NewScanner(src io.Reader) *Scanner {
	return &Scanner{
		rd:   src,
		size: DefaultBufferSize,
		line: 1,
	}
}

// SetBufferSize sets the size of each buffer half. It has no effect once
// reading has started.
func (s *Scanner) SetBufferSize(n int) {
	if s.buf == nil && n > 0 {
		s.size = n
	}
}

// Next consumes one character. It returns false at end of input or on a
// read error (see Err).
func (s *Scanner) Next() (byte, bool) {
	if s.buf == nil {
		s.buf = newBuffer(s.rd, s.size)
	}
	s.buf.start()
	for s.fwd >= s.buf.len() {
		if !s.buf.swap() {
			return 0, false
		}
		s.fwd = 0
	}

	c := s.buf.at(s.fwd)
	s.fwd++
	s.lexeme = append(s.lexeme, c)

	s.ch = c
	s.chLine = s.line + s.pending
	s.chCol = s.col + 1
	s.prevCol = s.col
	if c == '\n' {
		s.pending++
		s.col = 0
	} else {
		s.col++
	}
	return c, true
}

// Backup pushes the last consumed character back so the next call to Next
// returns it again. Only one character can be pushed back per Next.
func (s *Scanner) Backup() {
	if len(s.lexeme) == 0 || s.fwd == 0 {
		return
	}
	s.fwd--
	s.lexeme = s.lexeme[:len(s.lexeme)-1]
	s.col = s.prevCol
	if s.ch == '\n' {
		s.pending--
	}
}

// Reset marks a token boundary: the lexeme is cleared and deferred line
// increments are applied.
func (s *Scanner) Reset() {
	s.lexeme = s.lexeme[:0]
	s.line += s.pending
	s.pending = 0
}

// Lexeme returns the text consumed since the last Reset.
func (s *Scanner) Lexeme() string {
	return string(s.lexeme)
}

// Line returns the line the current lexeme started on.
func (s *Scanner) Line() int {
	return s.line
}

// Pos returns the position of the last consumed character.
func (s *Scanner) Pos() Pos {
	return NewPos(uint32(s.chLine), uint32(s.chCol))
}

// Err returns the first read error other than end of input.
func (s *Scanner) Err() error {
	if s.buf == nil {
		return nil
	}
	return s.buf.err
}
