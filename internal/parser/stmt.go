package parser

import (
	"github.com/you-not-fish/ezsharp/internal/syntax"
	"github.com/you-not-fish/ezsharp/internal/types"
)

// stmts parses
//
//	Stmts = Stmt { ";" Stmt } .
func (p *parser) stmts() {
	p.stmt()
	for p.got(syntax.Semi) {
		p.stmt()
	}
}

// stmt parses
//
//	Stmt = Var "=" Expr
//	     | "if" Bexpr "then" Stmts ( "fi" | "else" Stmts "fi" )
//	     | "while" Bexpr "do" Stmts "od"
//	     | "print" Expr
//	     | "return" Expr
//	     | .
func (p *parser) stmt() {
	switch {
	case p.tok.Kind == syntax.ID:
		p.assignStmt()
	case p.isKeyword("if"):
		p.ifStmt()
	case p.isKeyword("while"):
		p.whileStmt()
	case p.gotKeyword("print"):
		p.expr()
	case p.isKeyword("return"):
		p.returnStmt()
	}
}

func (p *parser) assignStmt() {
	name, line := p.tok.Lit, p.tok.Line
	p.next()
	v := p.use(name, line)
	p.index()

	line = p.tok.Line
	if !p.got(syntax.Assign) {
		p.recover("Expected '=' for assignment", ntStmt)
		return
	}
	rhs := p.expr()

	if v != nil && types.Mismatch(v.Type, rhs) {
		p.errorf(line, "Type mismatch during assignment at line %d. Left operand is '%s', but right operand is '%s'.",
			line, v.Type, rhs)
	}
}

func (p *parser) ifStmt() {
	p.next() // if
	p.bexpr()
	if !p.gotKeyword("then") {
		p.recover("Missing 'then' after 'if' condition", ntStmt)
		return
	}
	p.stmts()

	switch {
	case p.gotKeyword("fi"):
	case p.gotKeyword("else"):
		p.stmts()
		if !p.gotKeyword("fi") {
			p.recover("Expected 'fi' to close 'else' branch", ntStmt)
		}
	default:
		p.recover("Expected 'fi' or 'else' to end 'if' statement", ntStmt)
	}
}

func (p *parser) whileStmt() {
	p.next() // while
	p.bexpr()
	if !p.gotKeyword("do") {
		p.recover("Missing 'do' after 'while' condition", ntStmt)
		return
	}
	p.stmts()
	if !p.gotKeyword("od") {
		p.recover("Expected 'od' at the end of while loop", ntStmt)
	}
}

// returnStmt checks the result against the enclosing function. A return
// in the main program is not checked.
func (p *parser) returnStmt() {
	line := p.tok.Line
	p.next() // return
	typ := p.expr()

	fn := p.scopes.FunctionEntry()
	if fn != nil && types.Mismatch(fn.Type, typ) {
		p.errorf(line, "Function '%s' declared as %s but returning %s (line %d).", fn.Name, fn.Type, typ, line)
	}
}
