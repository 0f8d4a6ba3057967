package parser

import "github.com/you-not-fish/ezsharp/internal/syntax"

// nonterminal identifies a grammar procedure that recovers from syntax
// errors. Each one has its own FOLLOW set.
type nonterminal int

const (
	ntProg nonterminal = iota
	ntFns
	ntFn
	ntParams
	ntFname
	ntDecl
	ntType
	ntStmt
	ntFactor
	ntBfactor
	ntComp
	ntVar
)

var ntNames = [...]string{
	ntProg:    "prog",
	ntFns:     "fns",
	ntFn:      "fn",
	ntParams:  "params",
	ntFname:   "fname",
	ntDecl:    "decl",
	ntType:    "type",
	ntStmt:    "stmt",
	ntFactor:  "factor",
	ntBfactor: "bfactor",
	ntComp:    "comp",
	ntVar:     "var",
}

func (nt nonterminal) String() string {
	return ntNames[nt]
}

// follows reports whether the current token is in the FOLLOW set of nt.
// The $ sentinel is handled by sync.
func (p *parser) follows(nt nonterminal) bool {
	t := p.tok
	switch nt {
	case ntProg:
		return false

	case ntFns:
		switch t.Kind {
		case syntax.Dot, syntax.Semi, syntax.ID:
			return true
		case syntax.Keyword:
			return isOneOf(t.Lit, "def", "int", "double", "if", "while", "print", "return")
		}

	case ntFn:
		return t.Kind == syntax.Semi

	case ntParams:
		return t.Kind == syntax.Rparen

	case ntFname:
		return t.Kind == syntax.Lparen

	case ntDecl:
		switch t.Kind {
		case syntax.Semi, syntax.Dot:
			return true
		case syntax.Keyword:
			return isOneOf(t.Lit, "fed", "if", "while", "print", "return", "int", "double")
		}

	case ntType:
		return t.Kind == syntax.ID

	case ntStmt:
		switch t.Kind {
		case syntax.Dot, syntax.Semi:
			return true
		case syntax.Keyword:
			return isOneOf(t.Lit, "fed", "fi", "od", "else")
		}

	case ntFactor:
		switch t.Kind {
		case syntax.Dot, syntax.Semi, syntax.Rparen, syntax.Comma, syntax.Rbrack,
			syntax.Add, syntax.Sub, syntax.Mul, syntax.Div, syntax.Mod:
			return true
		case syntax.Keyword:
			return isOneOf(t.Lit, "fed", "fi", "od", "else")
		}
		return t.Kind.IsComparison()

	case ntBfactor:
		return t.Kind == syntax.Keyword && isOneOf(t.Lit, "then", "do", "or", "and")

	case ntComp:
		switch t.Kind {
		case syntax.Lparen, syntax.ID, syntax.Int, syntax.Double:
			return true
		}

	case ntVar:
		switch t.Kind {
		case syntax.Semi, syntax.Rparen, syntax.Comma, syntax.Assign, syntax.Rbrack:
			return true
		}
	}
	return false
}

func isOneOf(s string, list ...string) bool {
	for _, x := range list {
		if s == x {
			return true
		}
	}
	return false
}
