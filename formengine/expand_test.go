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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-form-engine/graph"
	"trpc.group/trpc-go/trpc-form-engine/handlers"
)

func newOverlayEvalContext(form *CompiledForm) *graph.EvaluationContext {
	ec := graph.NewEvaluationContext(graph.NewOverlayRegistry(form.Nodes), &graph.Request{}, nil)
	ec.RuntimeThunks = graph.NewOverlayThunkRegistry(form.Thunks)
	return ec
}

func TestExpandCollectionRegistersAndWiresRuntimeNode(t *testing.T) {
	b := NewBuilder()
	b.AddPseudoNode("compile_pseudo:params:x", graph.NodeParams, map[string]any{"name": "x"}, nil)
	form, err := b.Compile()
	require.NoError(t, err)
	ec := newOverlayEvalContext(form)

	id, err := ExpandCollection(form, ec, graph.NodeLiteral, nil, &handlers.LiteralHandler{Value: "item-0"})
	require.NoError(t, err)
	assert.Contains(t, id, string(graph.CategoryRuntimeAST)+":")

	h, ok := ec.RuntimeThunks.Get(id)
	require.True(t, ok)
	res, err := h.Evaluate(nil, nil, nil) //nolint:staticcheck // LiteralHandler ignores all three args
	require.NoError(t, err)
	assert.Equal(t, "item-0", res.Value)

	n, ok := ec.Nodes.Get(id)
	require.True(t, ok)
	assert.Equal(t, graph.KindAST, n.NodeKind)
}

func TestExpandCollectionMintsDistinctIDsAcrossCalls(t *testing.T) {
	b := NewBuilder()
	form, err := b.Compile()
	require.NoError(t, err)
	ec := newOverlayEvalContext(form)

	idA, err := ExpandCollection(form, ec, graph.NodeLiteral, nil, &handlers.LiteralHandler{Value: 1})
	require.NoError(t, err)
	idB, err := ExpandCollection(form, ec, graph.NodeLiteral, nil, &handlers.LiteralHandler{Value: 2})
	require.NoError(t, err)

	assert.NotEqual(t, idA, idB)
}

// TestExpandCollectionDoesNotMutateSharedForm verifies runtime-node
// expansion stays confined to the calling request's overlay: the
// compiled form's own Nodes/Thunks registries, which formengine.Evaluate
// hands out to every concurrent request, must be unaffected so a second
// request starts from the same base snapshot as the first.
func TestExpandCollectionDoesNotMutateSharedForm(t *testing.T) {
	b := NewBuilder()
	form, err := b.Compile()
	require.NoError(t, err)
	baseNodeCount := form.Nodes.Len()

	ecA := newOverlayEvalContext(form)
	idA, err := ExpandCollection(form, ecA, graph.NodeLiteral, nil, &handlers.LiteralHandler{Value: "a"})
	require.NoError(t, err)

	_, ok := form.Nodes.Get(idA)
	assert.False(t, ok, "runtime node must not land in the shared form registry")
	_, ok = form.Thunks.Get(idA)
	assert.False(t, ok, "runtime handler must not land in the shared form thunk registry")
	assert.Equal(t, baseNodeCount, form.Nodes.Len())

	ecB := newOverlayEvalContext(form)
	_, ok = ecB.Nodes.Get(idA)
	assert.False(t, ok, "a second request's overlay must not see another request's runtime nodes")
}
