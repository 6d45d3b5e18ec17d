package registry

import (
	"fmt"

	"github.com/vk/cligram/internal/syntax"
)

// Module is the interface grammar modules implement to contribute their
// trees to a registry instance.
type Module interface {
	Register(r *Registry) error
}

// Entry is one registered named parse-tree.
type Entry struct {
	name string
	tree *syntax.Tree
}

// Name returns the name the tree was registered under.
func (e *Entry) Name() string { return e.name }

// Tree returns the registered parse-tree.
func (e *Entry) Tree() *syntax.Tree { return e.tree }

// Registry holds the named parse-trees of a single engine instance, in
// registration order.
type Registry struct {
	entries []*Entry
	byName  map[string]*Entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{byName: make(map[string]*Entry)}
}

// Add registers tree under name. Names are unique per registry; a duplicate
// registration is a module wiring error and is rejected.
func (r *Registry) Add(name string, tree *syntax.Tree) (*Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("tree name cannot be empty")
	}
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("tree %q already registered", name)
	}
	e := &Entry{name: name, tree: tree}
	r.entries = append(r.entries, e)
	r.byName[name] = e
	return e, nil
}

// Lookup returns the tree registered under name, or nil.
func (r *Registry) Lookup(name string) *syntax.Tree {
	e, ok := r.byName[name]
	if !ok {
		return nil
	}
	return e.tree
}

// Len returns the number of registered trees.
func (r *Registry) Len() int { return len(r.entries) }

// Each walks the entries in registration order: pass nil to get the first
// entry, then the previously returned entry to get the next; nil marks the
// end. Must not be interleaved with Add.
func (r *Registry) Each(prev *Entry) *Entry {
	if len(r.entries) == 0 {
		return nil
	}
	if prev == nil {
		return r.entries[0]
	}
	for i, e := range r.entries {
		if e == prev && i < len(r.entries)-1 {
			return r.entries[i+1]
		}
	}
	return nil
}
