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

	"trpc.group/trpc-go/trpc-form-engine/functions"
	"trpc.group/trpc-go/trpc-form-engine/graph"
)

func TestFunctionExpressionHandlerConcat(t *testing.T) {
	nodes := graph.NewRegistry()
	ec := graph.NewEvaluationContext(nodes, &graph.Request{}, nil)
	funcs := functions.NewBuiltinRegistry()

	reg := graph.NewThunkRegistry()
	reg.Register("a", &LiteralHandler{ID: "a", Value: "foo"})
	reg.Register("b", &LiteralHandler{ID: "b", Value: "bar"})
	reg.Register("fn", NewFunctionExpressionHandler("fn", "concat", []string{"a", "b"}, funcs))
	reg.Finalize()
	iv := graph.NewInvocation(reg, ec)

	res, err := iv.Invoke(context.Background(), "fn")
	require.NoError(t, err)
	assert.Equal(t, "foobar", res.Value)
}

func TestFunctionExpressionHandlerUnknownFunction(t *testing.T) {
	nodes := graph.NewRegistry()
	ec := graph.NewEvaluationContext(nodes, &graph.Request{}, nil)
	funcs := functions.NewRegistry()

	reg := graph.NewThunkRegistry()
	reg.Register("fn", NewFunctionExpressionHandler("fn", "ghost", nil, funcs))
	reg.Finalize()
	iv := graph.NewInvocation(reg, ec)

	res, err := iv.Invoke(context.Background(), "fn")
	require.NoError(t, err)
	require.True(t, res.IsError())
	assert.Equal(t, graph.ErrorEvaluationFailed, res.Err.Kind)
}

func TestFunctionExpressionHandlerSurfacesArgError(t *testing.T) {
	nodes := graph.NewRegistry()
	ec := graph.NewEvaluationContext(nodes, &graph.Request{}, nil)
	funcs := functions.NewBuiltinRegistry()

	reg := graph.NewThunkRegistry()
	reg.Register("bad", &AnswerLocalHandler{ID: "bad", Field: "x", FieldNodeID: "missing"})
	reg.Register("fn", NewFunctionExpressionHandler("fn", "trim", []string{"bad"}, funcs))
	reg.Finalize()
	iv := graph.NewInvocation(reg, ec)

	res, err := iv.Invoke(context.Background(), "fn")
	require.NoError(t, err)
	require.True(t, res.IsError())
	assert.Equal(t, graph.ErrorLookupFailed, res.Err.Kind)
}
