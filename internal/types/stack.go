package types

import (
	"errors"
	"fmt"
)

// Default limits of a Stack.
const (
	DefaultMaxDepth   = 2 // global scope plus one function
	DefaultMaxEntries = 100
)

var (
	ErrScopeDepth = errors.New("maximum scope depth reached")
	ErrScopeFull  = errors.New("maximum number of scope entries reached")
	ErrNoScope    = errors.New("no scope open")
)

// RedeclaredError reports a second declaration of a name in one scope.
type RedeclaredError struct {
	Entry *Entry // rejected declaration
	Prev  *Entry // declaration kept in the scope
}

func (e *RedeclaredError) Error() string {
	return fmt.Sprintf("%s redeclared at line %d (previous declaration at line %d)",
		e.Entry.Name, e.Entry.Line, e.Prev.Line)
}

// Stack is the scope stack. Push and Insert enforce the configured limits;
// exceeding a limit is an error but leaves the stack usable.
type Stack struct {
	top        *Scope
	depth      int
	maxDepth   int
	maxEntries int
}

// NewStack returns an empty stack. Non-positive limits select the defaults.
func NewStack(maxDepth, maxEntries int) *Stack {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Stack{maxDepth: maxDepth, maxEntries: maxEntries}
}

// MaxDepth returns the depth limit.
func (st *Stack) MaxDepth() int { return st.maxDepth }

// MaxEntries returns the per-scope entry limit.
func (st *Stack) MaxEntries() int { return st.maxEntries }

// Depth returns the number of open scopes.
func (st *Stack) Depth() int { return st.depth }

// Top returns the innermost scope, or nil.
func (st *Stack) Top() *Scope { return st.top }

// Push opens a new innermost scope. owner is the function whose body the
// scope holds, nil for the global scope.
func (st *Stack) Push(name string, owner *Entry) (*Scope, error) {
	if st.depth >= st.maxDepth {
		return nil, fmt.Errorf("opening scope %q: %w", name, ErrScopeDepth)
	}
	st.top = NewScope(st.top, name, owner)
	st.depth++
	return st.top, nil
}

// Pop closes the innermost scope and returns it.
func (st *Stack) Pop() (*Scope, error) {
	if st.top == nil {
		return nil, ErrNoScope
	}
	s := st.top
	st.top = s.parent
	st.depth--
	return s, nil
}

// Insert declares e in the innermost scope.
func (st *Stack) Insert(e *Entry) error {
	if st.top == nil {
		return ErrNoScope
	}
	if st.top.Len() >= st.maxEntries {
		return fmt.Errorf("declaring %q in scope %q: %w", e.Name, st.top.name, ErrScopeFull)
	}
	if prev := st.top.Insert(e); prev != nil {
		return &RedeclaredError{Entry: e, Prev: prev}
	}
	return nil
}

// Lookup resolves name from the innermost scope outwards.
func (st *Stack) Lookup(name string) *Entry {
	if st.top == nil {
		return nil
	}
	e, _ := st.top.LookupParent(name)
	return e
}

// FunctionEntry returns the function owning the innermost function scope,
// or nil outside any function body.
func (st *Stack) FunctionEntry() *Entry {
	for s := st.top; s != nil; s = s.parent {
		if s.owner != nil {
			return s.owner
		}
	}
	return nil
}
