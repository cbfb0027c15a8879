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

// DataHandler returns an ambient, request-scoped value from the
// evaluation context's data bag (spec §3/§4.3: feature flags, journey
// metadata, or anything else the host application seeds per request). It
// is unconditionally synchronous and has no dependencies.
type DataHandler struct {
	ID  string
	Key string
}

// Deps implements graph.Handler.
func (h *DataHandler) Deps() []string { return nil }

// IsAsync implements graph.Handler.
func (h *DataHandler) IsAsync() bool { return false }

// SetAsync implements graph.Handler; DataHandler ignores it.
func (h *DataHandler) SetAsync(bool) {}

// Evaluate implements graph.Handler.
func (h *DataHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.resolve(ec), nil
}

// EvaluateSync implements graph.SyncHandler.
func (h *DataHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	return h.resolve(ec)
}

func (h *DataHandler) resolve(ec *graph.EvaluationContext) graph.Result {
	if !safety.SafeKey(h.Key) {
		return graph.Errf(graph.ErrorSecurityViolation, h.ID, "unsafe data key: "+h.Key)
	}
	v, ok := ec.Data[h.Key]
	if !ok {
		return graph.Ok(nil)
	}
	return graph.Ok(v)
}
