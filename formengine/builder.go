//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package formengine

import (
	"fmt"

	"trpc.group/trpc-go/trpc-form-engine/graph"
	"trpc.group/trpc-go/trpc-form-engine/handlers"
)

// Builder provides a fluent interface for assembling a form graph, in
// the shape of the teacher's StateGraph builder: chained Add* calls
// followed by a single Compile(). Unlike StateGraph, nodes here are
// field/expression/pseudo-nodes rather than LLM/tool nodes, and Compile
// runs the wiring phase and the thunk registry's isAsync fixpoint
// instead of graph validation alone.
type Builder struct {
	nodes  *graph.Registry
	deps   *graph.DependencyGraph
	thunks *graph.ThunkRegistry
	wiring *graph.Wiring
	ids    *graph.IDGenerator

	err error
}

// NewBuilder creates an empty builder with the full pseudo-node wirer
// set (POST, PARAMS, ANSWER_LOCAL, ANSWER_REMOTE, DATA) pre-registered.
func NewBuilder() *Builder {
	return &Builder{
		nodes:  graph.NewRegistry(),
		deps:   graph.NewDependencyGraph(),
		thunks: graph.NewThunkRegistry(),
		wiring: graph.NewWiring(
			graph.ParamsWirer{},
			graph.PostWirer{},
			graph.AnswerLocalWirer{},
			graph.AnswerRemoteWirer{},
			graph.DataWirer{},
		),
		ids: graph.NewIDGenerator(),
	}
}

// AddField registers a field block AST node. Field nodes carry no
// handler of their own: a field's resolved value is read through its
// ANSWER_LOCAL pseudo-node, added separately with AddPseudoNode.
func (b *Builder) AddField(id string, props map[string]any) *Builder {
	return b.addNode(id, graph.KindAST, graph.NodeField, props, nil)
}

// AddExpression registers an expression AST node (reference, function,
// conditional, format, collection, or literal) bound to the handler
// that evaluates it.
func (b *Builder) AddExpression(id string, nodeType graph.NodeType, props map[string]any, h graph.Handler) *Builder {
	return b.addNode(id, graph.KindAST, nodeType, props, h)
}

// AddPseudoNode registers a pseudo-node (POST, PARAMS, ANSWER_LOCAL,
// ANSWER_REMOTE, or DATA) and, for ANSWER_LOCAL, its handler. For the
// other kinds a nil h binds the kind's default handler, keyed by props
// ("field" for POST, "name" for PARAMS, "key" for DATA, "step" and
// "field" for ANSWER_REMOTE).
func (b *Builder) AddPseudoNode(id string, nodeType graph.NodeType, props map[string]any, h graph.Handler) *Builder {
	if h == nil {
		str := func(k string) string { s, _ := props[k].(string); return s }
		switch nodeType {
		case graph.NodePost:
			h = &handlers.PostHandler{ID: id, Key: str("field")}
		case graph.NodeParams:
			h = &handlers.ParamsHandler{ID: id, Key: str("name")}
		case graph.NodeData:
			h = &handlers.DataHandler{ID: id, Key: str("key")}
		case graph.NodeAnswerRemote:
			h = &handlers.AnswerRemoteHandler{ID: id, Step: str("step"), Field: str("field")}
		}
	}
	return b.addNode(id, graph.KindPseudo, nodeType, props, h)
}

func (b *Builder) addNode(id string, kind graph.Kind, nodeType graph.NodeType, props map[string]any, h graph.Handler) *Builder {
	if b.err != nil {
		return b
	}
	n := &graph.Node{ID: id, NodeKind: kind, Type: nodeType, Props: props}
	if err := b.nodes.Add(n); err != nil {
		b.err = fmt.Errorf("add node %q: %w", id, err)
		return b
	}
	b.deps.AddNode(id)
	if h != nil {
		b.thunks.Register(id, h)
	}
	return b
}

// NextID mints a fresh compile-time node id in category. Runtime ids
// (minted mid-request for dynamic collection expansion) do not come from
// this generator: ExpandCollection mints them as "runtime_ast:<uuid>".
func (b *Builder) NextID(category graph.Category) string {
	return b.ids.Next(category)
}

// Compile runs the wiring phase and the thunk registry's isAsync
// fixpoint, and returns the assembled CompiledForm. It returns the first
// error recorded by any Add* call, if any.
func (b *Builder) Compile() (*CompiledForm, error) {
	if b.err != nil {
		return nil, fmt.Errorf("compile form: %w", b.err)
	}
	b.wiring.Wire(b.nodes, b.deps)
	b.thunks.Finalize()
	return &CompiledForm{
		Nodes:  b.nodes,
		Deps:   b.deps,
		Thunks: b.thunks,
		Wiring: b.wiring,
		IDs:    b.ids,
	}, nil
}

// MustCompile is Compile, panicking on error. Intended for package
// init-time form construction where a build failure is a programmer
// error, matching the teacher's StateGraph.Compile/MustCompile pairing.
func (b *Builder) MustCompile() *CompiledForm {
	form, err := b.Compile()
	if err != nil {
		panic(err)
	}
	return form
}
