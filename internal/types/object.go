package types

import (
	"fmt"
	"strings"
)

// EntryKind distinguishes variables from functions.
type EntryKind uint8

const (
	VarEntry EntryKind = iota
	FuncEntry
)

func (k EntryKind) String() string {
	if k == FuncEntry {
		return "function"
	}
	return "variable"
}

// Entry is a symbol table entry.
type Entry struct {
	Name   string
	Line   int // declaration line
	Kind   EntryKind
	Type   Type   // variable type or function result type
	Params []Type // parameter types, functions only
}

// NewVar creates a variable entry.
func NewVar(name string, line int, typ Type) *Entry {
	return &Entry{Name: name, Line: line, Kind: VarEntry, Type: typ}
}

// NewFunc creates a function entry with no parameters yet.
func NewFunc(name string, line int, result Type) *Entry {
	return &Entry{Name: name, Line: line, Kind: FuncEntry, Type: result}
}

// IsFunc reports whether e is a function.
func (e *Entry) IsFunc() bool {
	return e.Kind == FuncEntry
}

// AddParam appends a parameter type to a function entry.
func (e *Entry) AddParam(t Type) {
	e.Params = append(e.Params, t)
}

// ParamCount returns the number of declared parameters.
func (e *Entry) ParamCount() int {
	return len(e.Params)
}

// String returns e in the form "int x" or "double f(int, double)".
func (e *Entry) String() string {
	if !e.IsFunc() {
		return fmt.Sprintf("%s %s", e.Type, e.Name)
	}
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("%s %s(%s)", e.Type, e.Name, strings.Join(params, ", "))
}
