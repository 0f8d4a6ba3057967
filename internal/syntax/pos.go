package syntax

import "fmt"

// Pos represents a character position in a source file.
// The zero value is an invalid position.
type Pos struct {
	line uint32 // 1-based line number
	col  uint32 // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos with the given line and column.
func NewPos(line, col uint32) Pos {
	return Pos{line: line, col: col}
}

// String returns the position in the format "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}
