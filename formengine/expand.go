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

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-form-engine/graph"
)

// ExpandCollection registers a runtime AST node minted mid-request (for
// example, a per-element template node a CollectionHandler needs to
// instantiate once the collection size is known) and wires it against
// the existing graph with a scoped WireNodes pass rather than rerunning
// Wire over the whole form.
//
// It mutates only ec's request-scoped overlay (ec.Nodes, ec.RuntimeDeps,
// ec.RuntimeThunks), never the shared, compile-time form.Nodes/Deps/Thunks
// a CompiledForm exposes: those are evaluated repeatedly and concurrently
// by independent requests (formengine.CompiledForm), so writing a runtime
// node into them would race with every other request and accumulate
// forever. ec.Nodes is expected to be an overlay over form.Nodes
// (graph.NewOverlayRegistry) and ec.RuntimeThunks an overlay over
// form.Thunks (graph.NewOverlayThunkRegistry), as Evaluate sets up; only
// form.Wiring, the stateless set of Wirer definitions, is read from form
// itself.
//
// The minted id is "runtime_ast:<uuid>" rather than a counter-based id:
// a counter scoped to ec would still need to avoid colliding with ids a
// concurrent sibling request mints against the same base form, and a
// random suffix sidesteps that without a shared counter to coordinate.
func ExpandCollection(form *CompiledForm, ec *graph.EvaluationContext, nodeType graph.NodeType, props map[string]any, h graph.Handler) (string, error) {
	id := fmt.Sprintf("%s:%s", graph.CategoryRuntimeAST, uuid.NewString())
	n := &graph.Node{ID: id, NodeKind: graph.KindAST, Type: nodeType, Props: props}
	if err := ec.Nodes.Add(n); err != nil {
		return "", fmt.Errorf("expand collection: add node %q: %w", id, err)
	}
	ec.RuntimeDeps.AddNode(id)
	if h != nil {
		ec.RuntimeThunks.Register(id, h)
	}
	form.Wiring.WireNodes(ec.Nodes, ec.RuntimeDeps, []string{id})
	ec.RuntimeThunks.Finalize()
	return id, nil
}
