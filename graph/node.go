//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package graph implements the evaluation core of the form engine: the
// node registry, dependency graph, wiring phase, thunk handler registry,
// evaluation context, invocation adapter, and answer history described by
// the specification. It is deliberately request-agnostic about rendering,
// persistence, and transport — those are external collaborators.
package graph

import "sync"

// Kind distinguishes authored AST nodes from synthesised pseudo-nodes.
type Kind string

const (
	// KindAST marks a node authored by the form builder.
	KindAST Kind = "ast"
	// KindPseudo marks a node synthesised at compile time to model an
	// environmental input.
	KindPseudo Kind = "pseudo"
)

// NodeType is the discriminator for a node's concrete shape.
type NodeType string

// AST node types.
const (
	NodeField       NodeType = "field"
	NodeReference   NodeType = "reference"
	NodeFunction    NodeType = "function"
	NodeConditional NodeType = "conditional"
	NodeFormat      NodeType = "format"
	NodeCollection  NodeType = "collection"
	NodeLiteral     NodeType = "literal"
)

// Pseudo-node types.
const (
	NodePost         NodeType = "post"
	NodeParams       NodeType = "params"
	NodeAnswerLocal  NodeType = "answer_local"
	NodeAnswerRemote NodeType = "answer_remote"
	NodeData         NodeType = "data"
)

// Node is the single sum type for AST nodes and pseudo-nodes: every node
// the engine evaluates has an id, a kind, a type tag, and a properties
// bag whose shape is determined by Type.
type Node struct {
	// ID is the node's globally unique id within a graph snapshot.
	ID string
	// NodeKind distinguishes AST from pseudo-nodes.
	NodeKind Kind
	// Type is the concrete node shape.
	Type NodeType
	// Props holds type-specific properties (e.g. "path" for a reference
	// node, "field" for an ANSWER_LOCAL pseudo-node, "template" for a
	// format node).
	Props map[string]any
}

// Prop returns a typed property from Props, or the zero value and false
// if absent or of the wrong type.
func Prop[T any](n *Node, key string) (T, bool) {
	var zero T
	if n == nil || n.Props == nil {
		return zero, false
	}
	v, ok := n.Props[key]
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// Registry is a read-mostly, insertion-ordered lookup of nodes by id.
// During runtime-node expansion (dynamic collection templates) a handler
// may insert new nodes mid-request; those nodes become visible to
// subsequent lookups within the same request immediately.
type Registry struct {
	mu     sync.RWMutex
	nodes  map[string]*Node
	order  []string
	parent *Registry
}

// NewRegistry creates an empty node registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// NewOverlayRegistry returns a registry scoped to one request: Add writes
// land only in the overlay, and Get/FindByType consult the overlay first
// and fall back to parent. Runtime nodes minted mid-request (spec §9
// "Runtime-node expansion") live only in the overlay, so they never touch
// the shared compile-time registry and disappear with the request's
// EvaluationContext.
func NewOverlayRegistry(parent *Registry) *Registry {
	return &Registry{nodes: make(map[string]*Node), parent: parent}
}

// Add registers a node. It returns ErrNodeIDEmpty or ErrNodeExists on
// misuse; both are programmer errors, not evaluation errors.
func (r *Registry) Add(n *Node) error {
	if n.ID == "" {
		return ErrNodeIDEmpty
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.nodes[n.ID]; exists {
		return ErrNodeExists
	}
	r.nodes[n.ID] = n
	r.order = append(r.order, n.ID)
	return nil
}

// Get looks up a node by id, falling back to parent (if any) when not
// found locally.
func (r *Registry) Get(id string) (*Node, bool) {
	r.mu.RLock()
	n, ok := r.nodes[id]
	r.mu.RUnlock()
	if ok {
		return n, true
	}
	if r.parent != nil {
		return r.parent.Get(id)
	}
	return nil, false
}

// FindByType returns every node of the given type, parent nodes first in
// the parent's insertion order followed by local nodes in local insertion
// order. Callers that need a deterministic order across runs with the
// same insertion order (e.g. wiring) can rely on this directly; callers
// that need a stronger order should sort by id themselves.
func (r *Registry) FindByType(t NodeType) []*Node {
	var out []*Node
	if r.parent != nil {
		out = append(out, r.parent.FindByType(t)...)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		n := r.nodes[id]
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
