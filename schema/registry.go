package schema

import (
	"fmt"
	"slices"
	"sync"
)

// Registry holds named schema nodes.
type Registry struct {
	mu    sync.RWMutex
	names []string
	nodes map[string]*Node
}

func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// Register registers n under name.
func (r *Registry) Register(name string, n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: cannot register nil schema %q", ErrSchema, name)
	}
	if name == "" {
		return fmt.Errorf("%w: schema must have a name", ErrSchema)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[name]; exists {
		return fmt.Errorf("%w: schema %q already registered", ErrDuplicate, name)
	}
	r.nodes[name] = n
	r.names = append(r.names, name)
	return nil
}

// Lookup looks up a schema by name
func (r *Registry) Lookup(name string) *Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nodes[name]
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}
