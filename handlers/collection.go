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

	"trpc.group/trpc-go/trpc-form-engine/graph"
)

// CollectionHandler evaluates CollectionID to an array; for each element
// it pushes an iteration scope frame, evaluates every template node, and
// pops the frame (spec §4.6). The result concatenates the per-element
// template outputs. An empty or non-array collection result emits the
// fallback nodes' outputs instead, or an empty slice if there is no
// fallback.
type CollectionHandler struct {
	ID           string
	CollectionID string
	TemplateIDs  []string
	FallbackIDs  []string

	async bool
}

// Deps implements graph.Handler.
func (h *CollectionHandler) Deps() []string {
	deps := append([]string{h.CollectionID}, h.TemplateIDs...)
	return append(deps, h.FallbackIDs...)
}

// IsAsync implements graph.Handler.
func (h *CollectionHandler) IsAsync() bool { return h.async }

// SetAsync implements graph.Handler.
func (h *CollectionHandler) SetAsync(async bool) { h.async = async }

// Evaluate implements graph.Handler.
func (h *CollectionHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.run(ec, func(id string) (graph.Result, error) { return inv.Invoke(ctx, id) })
}

// EvaluateSync implements graph.SyncHandler.
func (h *CollectionHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	res, _ := h.run(ec, func(id string) (graph.Result, error) { return inv.InvokeSync(id), nil })
	return res
}

func (h *CollectionHandler) run(ec *graph.EvaluationContext, invoke invokeFn) (graph.Result, error) {
	colRes, err := invoke(h.CollectionID)
	if err != nil {
		return graph.Result{}, err
	}
	if colRes.IsError() {
		return colRes, nil
	}

	arr, ok := toSlice(colRes.Value)
	if !ok || len(arr) == 0 {
		return h.runFallback(invoke)
	}

	out := make([]any, 0, len(arr)*len(h.TemplateIDs))
	for i, el := range arr {
		ec.Scope.Push(graph.FrameIteration, map[string]any{"@value": el, "@index": i, "@type": "iteration"})
		for _, tid := range h.TemplateIDs {
			res, err := invoke(tid)
			if err != nil {
				ec.Scope.Pop()
				return graph.Result{}, err
			}
			if !res.IsError() {
				out = append(out, res.Value)
			}
		}
		ec.Scope.Pop()
	}
	return graph.Ok(out), nil
}

func (h *CollectionHandler) runFallback(invoke invokeFn) (graph.Result, error) {
	if len(h.FallbackIDs) == 0 {
		return graph.Ok([]any{}), nil
	}
	out := make([]any, 0, len(h.FallbackIDs))
	for _, fid := range h.FallbackIDs {
		res, err := invoke(fid)
		if err != nil {
			return graph.Result{}, err
		}
		if !res.IsError() {
			out = append(out, res.Value)
		}
	}
	return graph.Ok(out), nil
}
