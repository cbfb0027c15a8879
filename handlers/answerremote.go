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

// AnswerRemoteHandler returns a cross-step answer left behind by a
// different step and loaded ahead of this request rather than computed
// within it (spec §3/§4.3). It has no producers in the graph: the value
// comes from Request.Remote[Step][Field]. Unconditionally synchronous.
type AnswerRemoteHandler struct {
	ID    string
	Step  string
	Field string
}

// Deps implements graph.Handler.
func (h *AnswerRemoteHandler) Deps() []string { return nil }

// IsAsync implements graph.Handler.
func (h *AnswerRemoteHandler) IsAsync() bool { return false }

// SetAsync implements graph.Handler; AnswerRemoteHandler ignores it.
func (h *AnswerRemoteHandler) SetAsync(bool) {}

// Evaluate implements graph.Handler.
func (h *AnswerRemoteHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.resolve(ec), nil
}

// EvaluateSync implements graph.SyncHandler.
func (h *AnswerRemoteHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	return h.resolve(ec)
}

func (h *AnswerRemoteHandler) resolve(ec *graph.EvaluationContext) graph.Result {
	if !safety.SafeKey(h.Step) || !safety.SafeKey(h.Field) {
		return graph.Errf(graph.ErrorSecurityViolation, h.ID, "unsafe remote answer key: "+h.Step+"/"+h.Field)
	}
	if ec.Request == nil || ec.Request.Remote == nil {
		return graph.Ok(nil)
	}
	step, ok := ec.Request.Remote[h.Step]
	if !ok {
		return graph.Ok(nil)
	}
	v, ok := step[h.Field]
	if !ok {
		return graph.Ok(nil)
	}
	return graph.Ok(v)
}
