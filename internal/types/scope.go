package types

import (
	"fmt"
	"strings"
)

// Scope is one symbol table. Scopes are chained to their enclosing scope;
// the chain from the innermost scope to the global scope is the scope stack.
type Scope struct {
	parent  *Scope
	name    string
	owner   *Entry // function whose body this is, nil for the global scope
	entries []*Entry
	elems   map[string]*Entry
}

// NewScope creates a scope nested in parent.
func NewScope(parent *Scope, name string, owner *Entry) *Scope {
	return &Scope{
		parent: parent,
		name:   name,
		owner:  owner,
		elems:  make(map[string]*Entry),
	}
}

// Parent returns the enclosing scope, or nil for the outermost scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Name returns the scope's name ("global" or the function name).
func (s *Scope) Name() string {
	return s.name
}

// Owner returns the function entry owning the scope, or nil.
func (s *Scope) Owner() *Entry {
	return s.owner
}

// Entries returns the entries in declaration order.
func (s *Scope) Entries() []*Entry {
	return s.entries
}

// Len returns the number of entries.
func (s *Scope) Len() int {
	return len(s.entries)
}

// Lookup returns the entry named name in this scope only, or nil.
func (s *Scope) Lookup(name string) *Entry {
	return s.elems[name]
}

// LookupParent searches s and then its enclosing scopes for name. It returns
// the first entry found and the scope holding it, or (nil, nil).
func (s *Scope) LookupParent(name string) (*Entry, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if e := scope.elems[name]; e != nil {
			return e, scope
		}
	}
	return nil, nil
}

// Insert adds e to the scope. If an entry with the same name exists, the
// scope is unchanged and the existing entry is returned.
func (s *Scope) Insert(e *Entry) *Entry {
	if existing := s.elems[e.Name]; existing != nil {
		return existing
	}
	s.elems[e.Name] = e
	s.entries = append(s.entries, e)
	return nil
}

// String returns a listing of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "scope %s {\n", s.name)
	for _, e := range s.entries {
		fmt.Fprintf(&buf, "  %s (line %d)\n", e, e.Line)
	}
	buf.WriteString("}\n")
	return buf.String()
}
