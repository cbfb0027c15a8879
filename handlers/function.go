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

	"trpc.group/trpc-go/trpc-form-engine/functions"
	"trpc.group/trpc-go/trpc-form-engine/graph"
)

// FunctionExpressionHandler invokes a named function from an external
// registry, resolving each argument node first (spec §4.6). It is
// synchronous iff the function itself is marked sync and every argument
// node is sync — the latter is computed by the thunk registry's
// fixpoint over Deps(), the former is fixed at construction.
type FunctionExpressionHandler struct {
	ID       string
	Name     string
	ArgIDs   []string
	Registry *functions.Registry

	fnAsync   bool
	depsAsync bool
}

// NewFunctionExpressionHandler looks up name in registry to fix fnAsync
// up front; an unknown name is treated as synchronous (it will fail at
// Evaluate time with EVALUATION_FAILED, not at construction).
func NewFunctionExpressionHandler(id, name string, argIDs []string, registry *functions.Registry) *FunctionExpressionHandler {
	h := &FunctionExpressionHandler{ID: id, Name: name, ArgIDs: argIDs, Registry: registry}
	if fn, ok := registry.Get(name); ok {
		h.fnAsync = fn.IsAsync
	}
	return h
}

// Deps implements graph.Handler.
func (h *FunctionExpressionHandler) Deps() []string { return h.ArgIDs }

// IsAsync implements graph.Handler.
func (h *FunctionExpressionHandler) IsAsync() bool { return h.fnAsync || h.depsAsync }

// SetAsync implements graph.Handler.
func (h *FunctionExpressionHandler) SetAsync(async bool) { h.depsAsync = async }

// Evaluate implements graph.Handler.
func (h *FunctionExpressionHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.run(ctx, ec, func(id string) (graph.Result, error) { return inv.Invoke(ctx, id) })
}

// EvaluateSync implements graph.SyncHandler.
func (h *FunctionExpressionHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	res, _ := h.run(context.Background(), ec, func(id string) (graph.Result, error) { return inv.InvokeSync(id), nil })
	return res
}

func (h *FunctionExpressionHandler) run(ctx context.Context, ec *graph.EvaluationContext, invoke invokeFn) (graph.Result, error) {
	fn, ok := h.Registry.Get(h.Name)
	if !ok {
		return graph.Errf(graph.ErrorEvaluationFailed, h.ID, "unknown function: "+h.Name), nil
	}

	args := make([]any, 0, len(h.ArgIDs))
	for _, aid := range h.ArgIDs {
		res, err := invoke(aid)
		if err != nil {
			return graph.Result{}, err
		}
		if res.IsError() {
			return res, nil
		}
		args = append(args, res.Value)
	}

	val, err := fn.Invoke(ctx, args, ec)
	if err != nil {
		return graph.Errf(graph.ErrorEvaluationFailed, h.ID, err.Error()), nil
	}
	return graph.Ok(val), nil
}
