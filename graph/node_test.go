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

func TestRegistryAddAndGet(t *testing.T) {
	r := NewRegistry()
	n := &Node{ID: "compile_ast:1", NodeKind: KindAST, Type: NodeField}
	require.NoError(t, r.Add(n))

	got, ok := r.Get("compile_ast:1")
	require.True(t, ok)
	assert.Same(t, n, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryRejectsEmptyAndDuplicateIDs(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Add(&Node{ID: ""}), ErrNodeIDEmpty)

	require.NoError(t, r.Add(&Node{ID: "compile_ast:1"}))
	assert.ErrorIs(t, r.Add(&Node{ID: "compile_ast:1"}), ErrNodeExists)
}

func TestRegistryFindByTypePreservesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(&Node{ID: "a", Type: NodeField}))
	require.NoError(t, r.Add(&Node{ID: "b", Type: NodeReference}))
	require.NoError(t, r.Add(&Node{ID: "c", Type: NodeField}))

	fields := r.FindByType(NodeField)
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].ID)
	assert.Equal(t, "c", fields[1].ID)
}

func TestProp(t *testing.T) {
	n := &Node{ID: "a", Props: map[string]any{"path": []string{"post", "email"}, "count": 3}}

	path, ok := Prop[[]string](n, "path")
	require.True(t, ok)
	assert.Equal(t, []string{"post", "email"}, path)

	_, ok = Prop[string](n, "path")
	assert.False(t, ok, "wrong type should report not-ok rather than panic")

	_, ok = Prop[string](n, "missing")
	assert.False(t, ok)

	var nilNode *Node
	_, ok = Prop[string](nilNode, "path")
	assert.False(t, ok)
}
