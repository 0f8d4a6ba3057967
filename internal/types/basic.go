// Package types declares the data structures used by semantic analysis:
// expression types, symbol table entries, the scope stack and the call
// frame stack.
package types

import "fmt"

// Type is the type of an expression or declaration.
type Type uint8

const (
	Invalid Type = iota // result of an erroneous expression
	Int
	Double
)

var typeNames = [...]string{
	Invalid: "error",
	Int:     "int",
	Double:  "double",
}

// String returns the type name as used in diagnostics.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", t)
}

// IsValid reports whether t is a real type.
func (t Type) IsValid() bool {
	return t == Int || t == Double
}

// LookupType returns the type named by a type keyword.
func LookupType(word string) (Type, bool) {
	switch word {
	case "int":
		return Int, true
	case "double":
		return Double, true
	}
	return Invalid, false
}
