// Package parser implements the EZ# parser. Parsing and semantic analysis
// run in a single pass: every grammar procedure consumes tokens, maintains
// the scope and call frame stacks, and computes expression types.
package parser

import (
	"github.com/you-not-fish/ezsharp/internal/syntax"
	"github.com/you-not-fish/ezsharp/internal/types"
)

// Config specifies the configuration for parsing.
type Config struct {
	// Error is called for each syntax and semantic error.
	// If nil, errors are only counted.
	Error ErrorHandler

	// MaxScopeDepth limits the number of open scopes.
	// If zero, types.DefaultMaxDepth is used.
	MaxScopeDepth int

	// MaxEntries limits the number of entries per scope.
	// If zero, types.DefaultMaxEntries is used.
	MaxEntries int
}

// Info holds the results of parsing.
type Info struct {
	// Identifiers lists every identifier matched by the grammar, without
	// duplicates, in first-seen order.
	Identifiers []string

	// Scopes lists every scope opened, in opening order. The first is the
	// global scope.
	Scopes []*types.Scope

	// AtEnd reports whether parsing stopped exactly on the $ sentinel.
	AtEnd bool

	// SyntaxErrors and SemanticErrors count the diagnostics reported.
	SyntaxErrors   int
	SemanticErrors int
}

type parser struct {
	conf *Config
	info *Info

	// Token cursor
	toks []syntax.Token
	pos  int
	tok  syntax.Token

	scopes *types.Stack
	frames types.FrameStack
	seen   map[string]bool // identifiers already recorded

	// Error tracking
	errors int
	first  *Error
}

// Parse parses and checks a token sequence. A $ sentinel is appended if
// tokens does not end with one. It returns the first error encountered,
// or nil if the program is free of syntax and semantic errors.
func Parse(tokens []syntax.Token, conf *Config, info *Info) error {
	if conf == nil {
		conf = &Config{}
	}
	if info == nil {
		info = &Info{}
	}
	toks := syntax.Terminate(tokens)
	p := &parser{
		conf:   conf,
		info:   info,
		toks:   toks,
		tok:    toks[0],
		scopes: types.NewStack(conf.MaxScopeDepth, conf.MaxEntries),
		seen:   make(map[string]bool),
	}

	p.prog()
	p.info.AtEnd = p.atEnd()

	if p.errors > 0 {
		return p.first
	}
	return nil
}

// prog parses
//
//	Prog = Fns Decls Stmts "." .
func (p *parser) prog() {
	global := p.openScope("global", nil)
	p.fns()
	p.decls()
	p.stmts()
	if global {
		p.closeScope()
	}

	if !p.got(syntax.Dot) {
		p.recover("Expected '.' to indicate end of the program", ntProg)
		return
	}
	if !p.atEnd() {
		p.syntaxError("Expected end of input after '.'")
	}
}
