package parser

import "fmt"

// Error is a syntax or semantic error.
type Error struct {
	Line     int
	Msg      string
	Semantic bool
}

// Error returns the diagnostic line as written to the error logs.
func (e *Error) Error() string {
	if e.Semantic {
		return "Semantic Error: " + e.Msg
	}
	return "Syntax Error: " + e.Msg
}

// ErrorHandler is called for each error.
type ErrorHandler func(err *Error)

func (p *parser) report(err *Error) {
	if p.errors == 0 {
		p.first = err
	}
	p.errors++
	if err.Semantic {
		p.info.SemanticErrors++
	} else {
		p.info.SyntaxErrors++
	}
	if p.conf.Error != nil {
		p.conf.Error(err)
	}
}

// syntaxError reports that the current token is not what the grammar
// expected.
func (p *parser) syntaxError(expected string) {
	p.report(&Error{
		Line: p.tok.Line,
		Msg:  fmt.Sprintf("%s, but found '%s' at line %d", expected, p.tok.Lit, p.tok.Line),
	})
}

// errorf reports a semantic error.
func (p *parser) errorf(line int, format string, args ...interface{}) {
	p.report(&Error{
		Line:     line,
		Msg:      fmt.Sprintf(format, args...),
		Semantic: true,
	})
}

// recover reports a syntax error and skips to a token that may follow nt.
// The caller returns without retrying the production.
func (p *parser) recover(expected string, nt nonterminal) {
	p.syntaxError(expected)
	p.sync(nt)
}

// sync discards tokens until the current token may follow nt or the input
// is exhausted. A token already in the FOLLOW set is not discarded.
func (p *parser) sync(nt nonterminal) {
	for !p.atEnd() && !p.follows(nt) {
		p.skip()
	}
}
