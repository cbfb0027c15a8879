//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyGraphAddEdge(t *testing.T) {
	dg := NewDependencyGraph()
	require.NoError(t, dg.AddEdge("a", "b", EdgeDataFlow, nil))

	edges := dg.EdgesFrom("a", EdgeDataFlow)
	require.Len(t, edges, 1)
	assert.Equal(t, "b", edges[0].Consumer)

	edges = dg.EdgesTo("b", EdgeDataFlow)
	require.Len(t, edges, 1)
	assert.Equal(t, "a", edges[0].Producer)

	assert.Equal(t, 1, dg.EdgeCount())
}

func TestDependencyGraphRejectsSelfLoop(t *testing.T) {
	dg := NewDependencyGraph()
	assert.ErrorIs(t, dg.AddEdge("a", "a", EdgeDataFlow, nil), ErrSelfLoop)
	assert.Equal(t, 0, dg.EdgeCount())
}

func TestDependencyGraphAddEdgeIsIdempotent(t *testing.T) {
	dg := NewDependencyGraph()
	require.NoError(t, dg.AddEdge("a", "b", EdgeDataFlow, map[string]any{"x": 1}))
	require.NoError(t, dg.AddEdge("a", "b", EdgeDataFlow, map[string]any{"y": 2}))

	assert.Equal(t, 1, dg.EdgeCount())
	edges := dg.EdgesFrom("a", EdgeDataFlow)
	require.Len(t, edges, 1)
	assert.Equal(t, 1, edges[0].Metadata["x"])
	assert.Equal(t, 2, edges[0].Metadata["y"])
}

func TestDependencyGraphDistinguishesEdgeKind(t *testing.T) {
	dg := NewDependencyGraph()
	require.NoError(t, dg.AddEdge("a", "b", EdgeDataFlow, nil))
	require.NoError(t, dg.AddEdge("a", "b", EdgeControl, nil))

	assert.Equal(t, 2, dg.EdgeCount())
	assert.Len(t, dg.EdgesFrom("a", EdgeDataFlow), 1)
	assert.Len(t, dg.EdgesFrom("a", EdgeControl), 1)
	assert.Empty(t, dg.EdgesFrom("a", EdgeTransition))
}

func TestDependencyGraphEdgesFromPreservesOrder(t *testing.T) {
	dg := NewDependencyGraph()
	require.NoError(t, dg.AddEdge("a", "b", EdgeDataFlow, nil))
	require.NoError(t, dg.AddEdge("a", "c", EdgeDataFlow, nil))
	require.NoError(t, dg.AddEdge("a", "d", EdgeDataFlow, nil))

	edges := dg.EdgesFrom("a", EdgeDataFlow)
	require.Len(t, edges, 3)
	assert.Equal(t, []string{"b", "c", "d"}, []string{edges[0].Consumer, edges[1].Consumer, edges[2].Consumer})
}
