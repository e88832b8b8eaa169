package node

import (
	"errors"
	"fmt"
)

// Registry errors
var (
	ErrDuplicateID = errors.New("node: identifier already registered")
	ErrFrozen      = errors.New("node: registry is frozen")
	ErrNilNode     = errors.New("node: node implementation is nil")
)

// Registry maps unique node identifiers to implementations and display
// names. It is populated explicitly at startup and then frozen; there
// is no package-level mutable state.
type Registry struct {
	nodes  map[string]Node
	names  map[string]string
	order  []string
	frozen bool
}

// NewRegistry returns an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[string]Node),
		names: make(map[string]string),
	}
}

// Register adds a node under id with a human-readable display name.
// Fails on a duplicate id, a nil node, or a frozen registry.
func (r *Registry) Register(id, displayName string, n Node) error {
	if r.frozen {
		return fmt.Errorf("%w: cannot register %q", ErrFrozen, id)
	}
	if n == nil {
		return fmt.Errorf("%w: %q", ErrNilNode, id)
	}
	if _, exists := r.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	r.nodes[id] = n
	r.names[id] = displayName
	r.order = append(r.order, id)
	return nil
}

// Freeze makes the registry immutable. Further Register calls fail.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Get returns the node registered under id.
func (r *Registry) Get(id string) (Node, bool) {
	n, ok := r.nodes[id]
	return n, ok
}

// DisplayName returns the display name registered under id.
func (r *Registry) DisplayName(id string) (string, bool) {
	name, ok := r.names[id]
	return name, ok
}

// IDs returns all registered identifiers in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	return len(r.order)
}
