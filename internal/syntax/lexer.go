package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// ErrorHandler is called for each lexical error. pos is the position of the
// offending character.
type ErrorHandler func(pos Pos, msg string)

// Lexer turns a character stream into tokens by running the DFA described by
// a transition table.
type Lexer struct {
	sc   *Scanner
	tbl  *Table
	errh ErrorHandler

	maxTokens int // 0 means unlimited
	dropped   bool
	toks      []Token
}

// NewLexer creates a Lexer reading src with transition table tbl. If tbl is
// nil the built-in table is used. errh may be nil.
func NewLexer(src io.Reader, tbl *Table, errh ErrorHandler) *Lexer {
	if tbl == nil {
		tbl = DefaultTable()
	}
	return &Lexer{
		sc:   NewScanner(src),
		tbl:  tbl,
		errh: errh,
	}
}

// SetBufferSize sets the size of each half of the input double buffer.
func (l *Lexer) SetBufferSize(n int) {
	l.sc.SetBufferSize(n)
}

// SetMaxTokens limits the number of tokens produced. Tokens past the limit
// are dropped and the overflow is reported once.
func (l *Lexer) SetMaxTokens(n int) {
	l.maxTokens = n
}

// Lex scans the whole input. The returned slice is not terminated by the $
// sentinel; see Terminate. The error is non-nil only if reading the input
// failed.
func (l *Lexer) Lex() ([]Token, error) {
	state := StateStart
	for {
		c, ok := l.sc.Next()
		if !ok {
			break
		}
		next := l.tbl.Next(state, c)
		switch {
		case next == StateError:
			pos := l.sc.Pos()
			l.errorf(pos, "Unexpected character '%s' at line %d, column %d!", quoteChar(c), pos.Line(), pos.Col())
			// Rescan the character from Start unless Start rejects it too.
			if state != StateStart && l.tbl.Next(StateStart, c) != StateError {
				l.sc.Backup()
			}
			state = StateStart
			l.sc.Reset()

		case next == StateStart:
			if state != StateStart {
				l.sc.Backup()
				l.emit(state)
			}
			state = StateStart
			l.sc.Reset()

		default:
			state = next
		}
	}
	if err := l.sc.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	l.emit(state)
	l.sc.Reset()
	return l.toks, nil
}

// emit appends the lexeme completed in state s, if s is accepting.
func (l *Lexer) emit(s State) {
	kind, ok := s.Kind()
	if !ok || kind == Whitespace {
		return
	}
	lit := l.sc.Lexeme()
	if s == StateWord {
		kind = LookupWord(lit)
	}
	line := l.sc.Line()
	if l.maxTokens > 0 && len(l.toks) >= l.maxTokens {
		if !l.dropped {
			l.dropped = true
			l.errorf(NewPos(uint32(line), 0), "Token limit of %d reached at line %d, remaining tokens dropped!", l.maxTokens, line)
		}
		return
	}
	l.toks = append(l.toks, Token{Kind: kind, Lit: lit, Line: line})
}

func (l *Lexer) errorf(pos Pos, format string, args ...any) {
	if l.errh != nil {
		l.errh(pos, fmt.Sprintf(format, args...))
	}
}

// quoteChar renders c for a diagnostic. Printable ASCII is shown as is,
// anything else Go-escaped.
func quoteChar(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return string(rune(c))
	}
	q := strconv.QuoteToASCII(string([]byte{c}))
	return q[1 : len(q)-1]
}
