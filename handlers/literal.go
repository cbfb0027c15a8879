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

// LiteralHandler returns a constant value authored directly in the
// form. Not named in the spec's handler catalogue, but required by the
// NodeLiteral AST kind declared in spec §3 — function, format, and
// conditional arguments need somewhere to point when an argument is a
// constant rather than an expression.
type LiteralHandler struct {
	ID    string
	Value any
}

// Deps implements graph.Handler.
func (h *LiteralHandler) Deps() []string { return nil }

// IsAsync implements graph.Handler.
func (h *LiteralHandler) IsAsync() bool { return false }

// SetAsync implements graph.Handler; LiteralHandler ignores it.
func (h *LiteralHandler) SetAsync(bool) {}

// Evaluate implements graph.Handler.
func (h *LiteralHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return graph.Ok(h.Value), nil
}

// EvaluateSync implements graph.SyncHandler.
func (h *LiteralHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	return graph.Ok(h.Value)
}
