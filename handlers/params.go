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
	"trpc.group/trpc-go/trpc-form-engine/safety"
)

// ParamsHandler returns a URL route parameter value (spec §4.6). It is
// unconditionally synchronous and has no dependencies.
type ParamsHandler struct {
	ID  string
	Key string
}

// Deps implements graph.Handler.
func (h *ParamsHandler) Deps() []string { return nil }

// IsAsync implements graph.Handler.
func (h *ParamsHandler) IsAsync() bool { return false }

// SetAsync implements graph.Handler; ParamsHandler ignores it.
func (h *ParamsHandler) SetAsync(bool) {}

// Evaluate implements graph.Handler.
func (h *ParamsHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.resolve(ec), nil
}

// EvaluateSync implements graph.SyncHandler.
func (h *ParamsHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	return h.resolve(ec)
}

func (h *ParamsHandler) resolve(ec *graph.EvaluationContext) graph.Result {
	if !safety.SafeKey(h.Key) {
		return graph.Errf(graph.ErrorSecurityViolation, h.ID, "unsafe param key: "+h.Key)
	}
	if ec.Request == nil || ec.Request.Params == nil {
		return graph.Ok(nil)
	}
	v, ok := ec.Request.Params[h.Key]
	if !ok {
		return graph.Ok(nil)
	}
	return graph.Ok(v)
}
