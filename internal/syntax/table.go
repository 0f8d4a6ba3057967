package syntax

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// State is a DFA state. Rows of a transition table are indexed by State.
type State int

// DFA states. The numbering is the row order of the transition table file.
const (
	StateError State = -1
	StateStart State = 0

	StateLt     State = 1  // <
	StateLe     State = 2  // <=
	StateNe     State = 3  // <>
	StateAssign State = 4  // =
	StateEq     State = 5  // ==
	StateGt     State = 6  // >
	StateGe     State = 7  // >=
	StateWord   State = 8  // letters only; keyword or identifier
	StateID     State = 9  // contains a digit or '_'
	StateSemi   State = 10 // ;
	StateComma  State = 11 // ,
	StateLparen State = 12 // (
	StateRparen State = 13 // )
	StateDot    State = 14 // .
	StateSpace  State = 15 // whitespace run
	StateAdd    State = 16 // +
	StateMul    State = 17 // *
	StateDiv    State = 18 // /
	StateMod    State = 19 // %
	StateSub    State = 20 // -
	StateInt    State = 21 // 12
	StateIntDot State = 22 // 12. (needs a digit)
	StateDouble State = 23 // 12.5
	StateExp    State = 24 // 12e (needs a sign or digit)
	StateExpSig State = 25 // 12e- (needs a digit)
	StateExpNum State = 26 // 12e-3
	StateLbrack State = 27 // [
	StateRbrack State = 28 // ]
)

// Table dimensions: one row per state, one column per ASCII code.
const (
	NumStates = 29
	NumCols   = 128
)

// stateKinds maps accepting states to the token kind they produce.
// Whitespace is accepting but never emitted.
var stateKinds = map[State]Kind{
	StateLt:     Lss,
	StateLe:     Leq,
	StateNe:     Neq,
	StateAssign: Assign,
	StateEq:     Eql,
	StateGt:     Gtr,
	StateGe:     Geq,
	StateWord:   Keyword,
	StateID:     ID,
	StateSemi:   Semi,
	StateComma:  Comma,
	StateLparen: Lparen,
	StateRparen: Rparen,
	StateDot:    Dot,
	StateSpace:  Whitespace,
	StateAdd:    Add,
	StateMul:    Mul,
	StateDiv:    Div,
	StateMod:    Mod,
	StateSub:    Sub,
	StateInt:    Int,
	StateDouble: Double,
	StateExpNum: Double,
	StateLbrack: Lbrack,
	StateRbrack: Rbrack,
}

// Kind returns the token kind recognized in state s. It reports false for
// states that do not end a lexeme (start, error and partial numbers).
func (s State) Kind() (Kind, bool) {
	k, ok := stateKinds[s]
	return k, ok
}

// Table is a DFA transition table.
type Table struct {
	rows [][NumCols]State
}

// Next returns the state reached from s on input c. Characters outside the
// ASCII range and out-of-range states lead to StateError.
func (t *Table) Next(s State, c byte) State {
	if s < 0 || int(s) >= len(t.rows) || c >= NumCols {
		return StateError
	}
	return t.rows[s][c]
}

// NumStates returns the number of rows.
func (t *Table) NumStates() int {
	return len(t.rows)
}

// LoadTable reads a transition table: NumStates lines of NumCols
// whitespace-separated integers. Blank lines are ignored and the last row
// may lack a trailing newline. Any negative entry is the error state.
func LoadTable(r io.Reader) (*Table, error) {
	t := &Table{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(t.rows) == NumStates {
			return nil, fmt.Errorf("transition table line %d: more than %d rows", lineNo, NumStates)
		}
		if len(fields) != NumCols {
			return nil, fmt.Errorf("transition table line %d: got %d columns, want %d", lineNo, len(fields), NumCols)
		}
		var row [NumCols]State
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("transition table line %d, column %d: %w", lineNo, i, err)
			}
			if v >= NumStates {
				return nil, fmt.Errorf("transition table line %d, column %d: state %d out of range", lineNo, i, v)
			}
			if v < 0 {
				v = int(StateError)
			}
			row[i] = State(v)
		}
		t.rows = append(t.rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading transition table: %w", err)
	}
	if len(t.rows) != NumStates {
		return nil, fmt.Errorf("transition table: got %d rows, want %d", len(t.rows), NumStates)
	}
	return t, nil
}

// WriteTo writes t in the format read by LoadTable.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, row := range t.rows {
		for c, s := range row {
			if c > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(strconv.Itoa(int(s)))
		}
		buf.WriteByte('\n')
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// DefaultTable returns the built-in EZ# DFA.
func DefaultTable() *Table {
	t := &Table{rows: make([][NumCols]State, NumStates)}

	// Accepting states fall back to Start on any character they cannot
	// extend with; the lexer then emits the lexeme. Start and the partial
	// number states reject anything not listed.
	for s := State(0); s < NumStates; s++ {
		fill := StateStart
		switch s {
		case StateStart, StateIntDot, StateExp, StateExpSig:
			fill = StateError
		}
		for c := range t.rows[s] {
			t.rows[s][c] = fill
		}
	}

	registerWords(t)
	registerNumbers(t)
	registerSpace(t)

	t.set(StateStart, '<', StateLt)
	t.set(StateStart, '=', StateAssign)
	t.set(StateStart, '>', StateGt)
	t.set(StateStart, ';', StateSemi)
	t.set(StateStart, ',', StateComma)
	t.set(StateStart, '(', StateLparen)
	t.set(StateStart, ')', StateRparen)
	t.set(StateStart, '[', StateLbrack)
	t.set(StateStart, ']', StateRbrack)
	t.set(StateStart, '.', StateDot)
	t.set(StateStart, '+', StateAdd)
	t.set(StateStart, '-', StateSub)
	t.set(StateStart, '*', StateMul)
	t.set(StateStart, '/', StateDiv)
	t.set(StateStart, '%', StateMod)

	t.set(StateLt, '=', StateLe)
	t.set(StateLt, '>', StateNe)
	t.set(StateAssign, '=', StateEq)
	t.set(StateGt, '=', StateGe)

	return t
}

func (t *Table) set(s State, c byte, next State) {
	t.rows[s][c] = next
}

func (t *Table) setFunc(s State, match func(byte) bool, next State) {
	for c := byte(0); c < NumCols; c++ {
		if match(c) {
			t.rows[s][c] = next
		}
	}
}

func registerWords(t *Table) {
	t.setFunc(StateStart, isLetter, StateWord)
	t.set(StateStart, '_', StateID)

	t.setFunc(StateWord, isLetter, StateWord)
	t.setFunc(StateWord, isDigit, StateID)
	t.set(StateWord, '_', StateID)

	t.setFunc(StateID, isLetter, StateID)
	t.setFunc(StateID, isDigit, StateID)
	t.set(StateID, '_', StateID)
}

func registerNumbers(t *Table) {
	t.setFunc(StateStart, isDigit, StateInt)

	t.setFunc(StateInt, isDigit, StateInt)
	t.set(StateInt, '.', StateIntDot)
	t.set(StateInt, 'e', StateExp)
	t.set(StateInt, 'E', StateExp)

	t.setFunc(StateIntDot, isDigit, StateDouble)

	t.setFunc(StateDouble, isDigit, StateDouble)
	t.set(StateDouble, 'e', StateExp)
	t.set(StateDouble, 'E', StateExp)

	t.set(StateExp, '+', StateExpSig)
	t.set(StateExp, '-', StateExpSig)
	t.setFunc(StateExp, isDigit, StateExpNum)

	t.setFunc(StateExpSig, isDigit, StateExpNum)

	t.setFunc(StateExpNum, isDigit, StateExpNum)
}

func registerSpace(t *Table) {
	t.setFunc(StateStart, isWhitespace, StateSpace)
	t.setFunc(StateSpace, isWhitespace, StateSpace)
}
