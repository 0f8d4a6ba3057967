// Package syntax implements lexical analysis for the EZ# language.
package syntax

import "fmt"

// Kind represents the type of a lexical token.
// The numeric values are part of the token/lexeme dump format.
type Kind uint8

const (
	// Arithmetic operators
	Add Kind = iota // +
	Sub             // -
	Mul             // *
	Div             // /
	Mod             // %

	// Delimiters
	Comma  // ,
	Lparen // (
	Rparen // )
	Lbrack // [
	Rbrack // ]
	Semi   // ;
	Dot    // .

	Assign // =

	// Relational operators
	Lss // <
	Leq // <=
	Gtr // >
	Geq // >=
	Eql // ==
	Neq // <>

	// Literals
	Int    // 123
	Double // 1.5, 2e10, 3.0e-2

	ID      // identifier
	Keyword // reserved word

	Whitespace // recognized by the DFA, never emitted
	EOF        // $ sentinel

	kindCount
)

var kindNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",

	Comma:  ",",
	Lparen: "(",
	Rparen: ")",
	Lbrack: "[",
	Rbrack: "]",
	Semi:   ";",
	Dot:    ".",

	Assign: "=",

	Lss: "<",
	Leq: "<=",
	Gtr: ">",
	Geq: ">=",
	Eql: "==",
	Neq: "<>",

	Int:    "INT",
	Double: "DOUBLE",

	ID:      "ID",
	Keyword: "KEYWORD",

	Whitespace: "WHITESPACE",
	EOF:        "$",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsComparison reports whether k is a relational operator.
func (k Kind) IsComparison() bool {
	return k >= Lss && k <= Neq
}

// IsNumber reports whether k is a numeric literal.
func (k Kind) IsNumber() bool {
	return k == Int || k == Double
}

// HasLexeme reports whether the token/lexeme dump prints the lexeme for k.
func (k Kind) HasLexeme() bool {
	return k == ID || k == Keyword
}

// Token is a single lexical token. Tokens are immutable once created.
type Token struct {
	Kind Kind
	Lit  string // lexeme
	Line int    // 1-based line of the first character
}

// String returns a debugging representation such as KEYWORD(int) or INT(3).
func (t Token) String() string {
	switch t.Kind {
	case Int, Double, ID, Keyword:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lit)
	}
	return t.Kind.String()
}

// Is reports whether t is the keyword word.
func (t Token) Is(word string) bool {
	return t.Kind == Keyword && t.Lit == word
}

// keywords is the fixed reserved word list. Matching is case-sensitive.
var keywords = map[string]bool{
	"or":     true,
	"and":    true,
	"not":    true,
	"if":     true,
	"then":   true,
	"else":   true,
	"fi":     true,
	"while":  true,
	"do":     true,
	"od":     true,
	"def":    true,
	"fed":    true,
	"return": true,
	"print":  true,
	"int":    true,
	"double": true,
}

// LookupWord classifies a word lexeme as Keyword or ID.
func LookupWord(word string) Kind {
	if keywords[word] {
		return Keyword
	}
	return ID
}

// Terminate returns toks followed by exactly one $ sentinel.
// An existing sentinel at the end is kept as is. The sentinel carries the
// line of the last real token so end-of-input diagnostics cite a real line.
func Terminate(toks []Token) []Token {
	if n := len(toks); n > 0 && toks[n-1].Kind == EOF {
		return toks
	}
	line := 1
	if n := len(toks); n > 0 {
		line = toks[n-1].Line
	}
	out := make([]Token, len(toks), len(toks)+1)
	copy(out, toks)
	return append(out, Token{Kind: EOF, Lit: "$", Line: line})
}
