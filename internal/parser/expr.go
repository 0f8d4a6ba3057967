package parser

import (
	"github.com/you-not-fish/ezsharp/internal/syntax"
	"github.com/you-not-fish/ezsharp/internal/types"
)

// expr parses
//
//	Expr = Term { ( "+" | "-" ) Term } .
//
// A mismatch is reported but the chain keeps the left operand's type.
func (p *parser) expr() types.Type {
	left := p.term()
	for p.tok.Kind == syntax.Add || p.tok.Kind == syntax.Sub {
		op := p.tok
		p.next()
		right := p.term()
		if types.Mismatch(left, right) {
			p.arithMismatch(op.Line, left, right)
		}
	}
	return left
}

// term parses
//
//	Term = Factor { ( "*" | "/" | "%" ) Factor } .
//
// A mismatch is reported and the chain becomes invalid.
func (p *parser) term() types.Type {
	left := p.factor()
	for p.tok.Kind == syntax.Mul || p.tok.Kind == syntax.Div || p.tok.Kind == syntax.Mod {
		op := p.tok
		p.next()
		right := p.factor()
		if types.Mismatch(left, right) {
			p.arithMismatch(op.Line, left, right)
			left = types.Invalid
		}
	}
	return left
}

func (p *parser) arithMismatch(line int, left, right types.Type) {
	p.errorf(line, "Type mismatch in arithmetic operation at line %d. Left operand is '%s', but right operand is '%s'.",
		line, left, right)
}

// factor parses
//
//	Factor = ID "(" Exprs ")" | ID [ "[" Expr "]" ] | NUMBER | "(" Expr ")" .
func (p *parser) factor() types.Type {
	switch p.tok.Kind {
	case syntax.ID:
		if p.peek().Kind == syntax.Lparen {
			return p.call()
		}
		name, line := p.tok.Lit, p.tok.Line
		p.next()
		e := p.use(name, line)
		p.index()
		if e == nil {
			return types.Invalid
		}
		return e.Type

	case syntax.Int:
		p.next()
		return types.Int

	case syntax.Double:
		p.next()
		return types.Double

	case syntax.Lparen:
		p.next()
		typ := p.expr()
		if !p.got(syntax.Rparen) {
			p.recover("Expected ')'", ntFactor)
			return types.Invalid
		}
		return typ
	}

	p.recover("Expected an identifier, number, or '(' to start an expression", ntFactor)
	return types.Invalid
}

// call parses a call expression ID "(" Exprs ")" and validates the
// arguments against the callee's signature.
func (p *parser) call() types.Type {
	name, line := p.tok.Lit, p.tok.Line
	p.next()
	callee := p.use(name, line)
	if callee != nil && !callee.IsFunc() {
		p.errorf(line, "'%s' is not a function but is used as one (line %d).", name, line)
	}

	frame := p.frames.Push()
	defer p.frames.Pop()

	p.next() // (
	p.exprs(frame)
	if !p.got(syntax.Rparen) {
		p.recover("Expected closing parenthesis ')'", ntFactor)
		return types.Invalid
	}

	if callee == nil || !callee.IsFunc() {
		return types.Invalid
	}
	p.checkArgs(callee, frame, line)
	return callee.Type
}

// exprs parses
//
//	Exprs = [ Expr { "," Expr } ] .
//
// collecting argument types into frame.
func (p *parser) exprs(frame *types.Frame) {
	if !p.startsExpr() {
		return
	}
	for {
		frame.Add(p.expr())
		if !p.got(syntax.Comma) {
			return
		}
	}
}

func (p *parser) checkArgs(fn *types.Entry, frame *types.Frame, line int) {
	want, got := fn.ParamCount(), frame.Len()
	switch {
	case got > want:
		p.errorf(line, "Too many arguments for function '%s' (line %d). Expected %d, but got %d.", fn.Name, line, want, got)
	case got < want:
		p.errorf(line, "Too few arguments for function '%s' (line %d). Expected %d, but got %d.", fn.Name, line, want, got)
	}
	for i := 0; i < min(got, want); i++ {
		if types.Mismatch(fn.Params[i], frame.Args[i]) {
			p.errorf(line, "Argument %d of function '%s' (line %d) has incorrect type. Expected '%s', but got '%s'.",
				i+1, fn.Name, line, fn.Params[i], frame.Args[i])
		}
	}
}

// bexpr parses
//
//	Bexpr = Bterm { "or" Bterm } .
//	Bterm = Bfactor { "and" Bfactor } .
func (p *parser) bexpr() {
	p.bterm()
	for p.gotKeyword("or") {
		p.bterm()
	}
}

func (p *parser) bterm() {
	p.bfactor()
	for p.gotKeyword("and") {
		p.bfactor()
	}
}

// bfactor parses
//
//	Bfactor = "not" Bfactor | "(" Expr Comp Expr ")" .
func (p *parser) bfactor() {
	if p.gotKeyword("not") {
		p.bfactor()
		return
	}
	if !p.got(syntax.Lparen) {
		p.recover("Expected 'not' or '(' for boolean factor", ntBfactor)
		return
	}

	left := p.expr()
	line := p.tok.Line
	p.comp()
	right := p.expr()
	if types.Mismatch(left, right) {
		p.errorf(line, "Type mismatch in comparison at line %d. Left operand is '%s', but right operand is '%s'.",
			line, left, right)
	}

	if !p.got(syntax.Rparen) {
		p.recover("Expected closing parenthesis ')'", ntBfactor)
	}
}

// comp parses a relational operator.
func (p *parser) comp() {
	if p.tok.Kind.IsComparison() {
		p.next()
		return
	}
	p.recover("Expected a comparison operator", ntComp)
}
