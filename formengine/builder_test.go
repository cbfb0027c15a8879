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

func TestBuilderCompileWiresParamsReference(t *testing.T) {
	b := NewBuilder()
	b.AddPseudoNode("compile_pseudo:1", graph.NodeParams, map[string]any{"name": "step_id"}, nil)
	b.AddExpression("compile_ast:1", graph.NodeReference,
		map[string]any{"path": []string{"params", "step_id"}},
		&handlers.ReferenceHandler{ID: "compile_ast:1", Path: []string{"params", "step_id"}, TargetNodeID: "compile_pseudo:1"})

	form, err := b.Compile()
	require.NoError(t, err)

	edges := form.Deps.EdgesFrom("compile_pseudo:1", graph.EdgeDataFlow)
	require.Len(t, edges, 1)
	assert.Equal(t, "compile_ast:1", edges[0].Consumer)

	h, ok := form.Thunks.Get("compile_ast:1")
	require.True(t, ok)
	assert.False(t, h.IsAsync())
}

func TestBuilderRejectsDuplicateNodeID(t *testing.T) {
	b := NewBuilder()
	b.AddField("f1", nil)
	b.AddField("f1", nil)

	_, err := b.Compile()
	assert.Error(t, err)
}

func TestBuilderMustCompilePanicsOnError(t *testing.T) {
	b := NewBuilder()
	b.AddField("dup", nil)
	b.AddField("dup", nil)

	assert.Panics(t, func() { b.MustCompile() })
}
