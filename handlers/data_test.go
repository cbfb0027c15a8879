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

func TestDataHandlerReadsDataBag(t *testing.T) {
	ec := graph.NewEvaluationContext(graph.NewRegistry(), &graph.Request{}, nil)
	ec.Data["featureFlag"] = true
	h := &DataHandler{ID: "data", Key: "featureFlag"}

	res, err := h.Evaluate(context.Background(), ec, nil)
	require.NoError(t, err)
	assert.Equal(t, true, res.Value)
}

func TestDataHandlerMissingKeyIsUndefined(t *testing.T) {
	ec := graph.NewEvaluationContext(graph.NewRegistry(), &graph.Request{}, nil)
	h := &DataHandler{ID: "data", Key: "missing"}

	res, err := h.Evaluate(context.Background(), ec, nil)
	require.NoError(t, err)
	assert.False(t, res.IsError())
	assert.Nil(t, res.Value)
}

func TestDataHandlerUnsafeKey(t *testing.T) {
	ec := graph.NewEvaluationContext(graph.NewRegistry(), &graph.Request{}, nil)
	h := &DataHandler{ID: "data", Key: "__proto__"}

	res, err := h.Evaluate(context.Background(), ec, nil)
	require.NoError(t, err)
	require.True(t, res.IsError())
	assert.Equal(t, graph.ErrorSecurityViolation, res.Err.Kind)
}
