package parser

import (
	"errors"

	"github.com/you-not-fish/ezsharp/internal/types"
)

// openScope pushes a scope and records it. It reports whether the scope was
// opened; if not, declarations go to the enclosing scope.
func (p *parser) openScope(name string, owner *types.Entry) bool {
	s, err := p.scopes.Push(name, owner)
	if err != nil {
		p.scopeError(name, err)
		return false
	}
	p.info.Scopes = append(p.info.Scopes, s)
	return true
}

// closeScope pops the innermost scope.
func (p *parser) closeScope() {
	if _, err := p.scopes.Pop(); err != nil {
		p.scopeError("", err)
	}
}

// declare inserts e into the innermost scope.
func (p *parser) declare(e *types.Entry) {
	err := p.scopes.Insert(e)
	if err == nil {
		return
	}
	var redecl *types.RedeclaredError
	if errors.As(err, &redecl) {
		p.errorf(e.Line, "Redeclaration of '%s' at line %d.", e.Name, e.Line)
		return
	}
	p.scopeError(e.Name, err)
}

func (p *parser) scopeError(name string, err error) {
	switch {
	case errors.Is(err, types.ErrScopeDepth):
		p.errorf(p.tok.Line, "Maximum scope depth of %d reached while opening scope '%s'.", p.scopes.MaxDepth(), name)
	case errors.Is(err, types.ErrScopeFull):
		p.errorf(p.tok.Line, "Maximum of %d entries reached in scope '%s'.", p.scopes.MaxEntries(), p.scopes.Top().Name())
	case errors.Is(err, types.ErrNoScope) && name == "":
		p.errorf(p.tok.Line, "No scope left to pop.")
	case errors.Is(err, types.ErrNoScope):
		p.errorf(p.tok.Line, "No scope open to declare '%s'.", name)
	default:
		p.errorf(p.tok.Line, "%v", err)
	}
}

// use resolves an identifier occurrence. An undeclared name is reported
// and yields nil.
func (p *parser) use(name string, line int) *types.Entry {
	e := p.scopes.Lookup(name)
	if e == nil {
		p.errorf(line, "Undeclared identifier '%s' at line %d.", name, line)
	}
	return e
}
