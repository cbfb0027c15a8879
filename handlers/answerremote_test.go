//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-form-engine/graph"
)

func TestAnswerRemoteHandlerReadsLoadedStepAnswer(t *testing.T) {
	req := &graph.Request{Remote: map[string]map[string]any{
		"shipping": {"zip": "12345"},
	}}
	ec := graph.NewEvaluationContext(graph.NewRegistry(), req, nil)
	h := &AnswerRemoteHandler{ID: "remote", Step: "shipping", Field: "zip"}

	res, err := h.Evaluate(context.Background(), ec, nil)
	require.NoError(t, err)
	assert.Equal(t, "12345", res.Value)
}

func TestAnswerRemoteHandlerMissingStepIsUndefined(t *testing.T) {
	ec := graph.NewEvaluationContext(graph.NewRegistry(), &graph.Request{}, nil)
	h := &AnswerRemoteHandler{ID: "remote", Step: "shipping", Field: "zip"}

	res, err := h.Evaluate(context.Background(), ec, nil)
	require.NoError(t, err)
	assert.False(t, res.IsError())
	assert.Nil(t, res.Value)
}

func TestAnswerRemoteHandlerUnsafeKey(t *testing.T) {
	ec := graph.NewEvaluationContext(graph.NewRegistry(), &graph.Request{}, nil)
	h := &AnswerRemoteHandler{ID: "remote", Step: "__proto__", Field: "zip"}

	res, err := h.Evaluate(context.Background(), ec, nil)
	require.NoError(t, err)
	require.True(t, res.IsError())
	assert.Equal(t, graph.ErrorSecurityViolation, res.Err.Kind)
}
