package parser

import (
	"github.com/you-not-fish/ezsharp/internal/syntax"
	"github.com/you-not-fish/ezsharp/internal/types"
)

// fns parses
//
//	Fns = { Fn ";" } .
func (p *parser) fns() {
	for p.isKeyword("def") {
		p.fn()
		if !p.got(syntax.Semi) {
			p.recover("Expected ';' after function definition", ntFns)
			p.got(syntax.Semi)
		}
	}
}

// param is a parsed function parameter.
type param struct {
	name string
	line int
	typ  types.Type
}

// fn parses
//
//	Fn = "def" Type Fname "(" Params ")" Decls Stmts "fed" .
//
// The function is declared in the enclosing scope before its own scope is
// opened, so it can call itself.
func (p *parser) fn() {
	if !p.gotKeyword("def") {
		p.recover("Expected 'def' at the start of function definition", ntFn)
		return
	}

	result := p.typ()
	name, line := p.fname()

	if !p.got(syntax.Lparen) {
		p.recover("Expected '(' after function name", ntFn)
		return
	}
	params := p.params()
	if !p.got(syntax.Rparen) {
		p.recover("Expected ')' after function parameters", ntFn)
		return
	}

	fn := types.NewFunc(name, line, result)
	for _, prm := range params {
		fn.AddParam(prm.typ)
	}
	if name != "" {
		p.declare(fn)
	}

	if p.openScope(name, fn) {
		defer p.closeScope()
	}
	for _, prm := range params {
		if prm.name != "" {
			p.declare(types.NewVar(prm.name, prm.line, prm.typ))
		}
	}

	p.decls()
	p.stmts()

	if !p.gotKeyword("fed") {
		p.recover("Expected 'fed' at the end of function definition", ntFn)
	}
}

// fname parses the function name. It returns "" if the name is missing.
func (p *parser) fname() (string, int) {
	line := p.tok.Line
	if p.tok.Kind != syntax.ID {
		p.recover("Expected function name (identifier)", ntFname)
		return "", line
	}
	name := p.tok.Lit
	p.next()
	return name, line
}

// params parses
//
//	Params = [ Type Var { "," Type Var } ] .
func (p *parser) params() []param {
	if !p.isType() {
		return nil
	}
	var list []param
	for {
		typ := p.typ()
		name, line := p.varName()
		list = append(list, param{name: name, line: line, typ: typ})

		if !p.got(syntax.Comma) {
			return list
		}
		if !p.isType() {
			p.recover("Expected a type ('int' or 'double') after ',' in parameter list", ntParams)
			return list
		}
	}
}

// decls parses
//
//	Decls = { Type Vars ";" } .
func (p *parser) decls() {
	for p.isType() {
		p.decl()
		if !p.got(syntax.Semi) {
			p.recover("Expected ',' or ';' in declaration", ntDecl)
			p.got(syntax.Semi)
		}
	}
}

// decl parses
//
//	Decl = Type Var { "," Var } .
func (p *parser) decl() {
	typ := p.typ()
	for {
		name, line := p.varName()
		if name != "" {
			p.declare(types.NewVar(name, line, typ))
		}
		if !p.got(syntax.Comma) {
			return
		}
	}
}

// typ parses
//
//	Type = "int" | "double" .
func (p *parser) typ() types.Type {
	if p.tok.Kind == syntax.Keyword {
		if t, ok := types.LookupType(p.tok.Lit); ok {
			p.next()
			return t
		}
	}
	p.recover("Expected 'int' or 'double' as type", ntType)
	return types.Invalid
}

// varName parses a declared name
//
//	Var = ID [ "[" Expr "]" ] .
//
// It returns "" if the identifier is missing. The index is parsed but not
// checked.
func (p *parser) varName() (string, int) {
	line := p.tok.Line
	if p.tok.Kind != syntax.ID {
		p.recover("Expected an identifier", ntVar)
		return "", line
	}
	name := p.tok.Lit
	p.next()
	p.index()
	return name, line
}

// index parses an optional "[" Expr "]".
func (p *parser) index() {
	if !p.got(syntax.Lbrack) {
		return
	}
	p.expr()
	if !p.got(syntax.Rbrack) {
		p.recover("Expected ']' after index expression", ntVar)
	}
}
