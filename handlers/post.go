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

// PostHandler returns the raw POST body value for a field key (spec
// §4.6). It is unconditionally synchronous and has no dependencies.
type PostHandler struct {
	ID  string
	Key string
}

// Deps implements graph.Handler.
func (h *PostHandler) Deps() []string { return nil }

// IsAsync implements graph.Handler.
func (h *PostHandler) IsAsync() bool { return false }

// SetAsync implements graph.Handler; PostHandler ignores it, it is
// always synchronous.
func (h *PostHandler) SetAsync(bool) {}

// Evaluate implements graph.Handler.
func (h *PostHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.resolve(ec), nil
}

// EvaluateSync implements graph.SyncHandler.
func (h *PostHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	return h.resolve(ec)
}

func (h *PostHandler) resolve(ec *graph.EvaluationContext) graph.Result {
	if !safety.SafeKey(h.Key) {
		return graph.Errf(graph.ErrorSecurityViolation, h.ID, "unsafe post key: "+h.Key)
	}
	if ec.Request == nil || ec.Request.Post == nil {
		return graph.Ok(nil)
	}
	v, ok := ec.Request.Post[h.Key]
	if !ok {
		return graph.Ok(nil)
	}
	return graph.Ok(v)
}
