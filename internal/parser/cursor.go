package parser

import "github.com/you-not-fish/ezsharp/internal/syntax"

// atEnd reports whether the cursor is on the $ sentinel.
func (p *parser) atEnd() bool {
	return p.tok.Kind == syntax.EOF
}

// skip advances without recording anything. The cursor never moves past $.
func (p *parser) skip() {
	if p.pos < len(p.toks)-1 {
		p.pos++
		p.tok = p.toks[p.pos]
	}
}

// next consumes the current token. Identifiers are recorded for the symbol
// table dump.
func (p *parser) next() {
	if p.tok.Kind == syntax.ID && !p.seen[p.tok.Lit] {
		p.seen[p.tok.Lit] = true
		p.info.Identifiers = append(p.info.Identifiers, p.tok.Lit)
	}
	p.skip()
}

// peek returns the token after the current one.
func (p *parser) peek() syntax.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}

// got reports whether the current token is of kind k.
// If so, it consumes the token and returns true.
func (p *parser) got(k syntax.Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// isKeyword reports whether the current token is the keyword word.
func (p *parser) isKeyword(word string) bool {
	return p.tok.Is(word)
}

// gotKeyword is like got for a keyword.
func (p *parser) gotKeyword(word string) bool {
	if p.tok.Is(word) {
		p.next()
		return true
	}
	return false
}

// isType reports whether the current token starts a type.
func (p *parser) isType() bool {
	return p.isKeyword("int") || p.isKeyword("double")
}

// startsExpr reports whether the current token can start an expression.
func (p *parser) startsExpr() bool {
	switch p.tok.Kind {
	case syntax.ID, syntax.Int, syntax.Double, syntax.Lparen:
		return true
	}
	return false
}
