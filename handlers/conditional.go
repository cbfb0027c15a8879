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
	"trpc.group/trpc-go/trpc-form-engine/internal/util"
)

// ConditionalHandler evaluates "when"; on a truthy defined result it
// evaluates and returns "then", otherwise "else" (spec §4.6). Either
// branch may be absent, yielding an undefined result.
type ConditionalHandler struct {
	ID     string
	WhenID string
	ThenID string // empty if absent
	ElseID string // empty if absent

	async bool
}

// Deps implements graph.Handler.
func (h *ConditionalHandler) Deps() []string {
	deps := []string{h.WhenID}
	if h.ThenID != "" {
		deps = append(deps, h.ThenID)
	}
	if h.ElseID != "" {
		deps = append(deps, h.ElseID)
	}
	return deps
}

// IsAsync implements graph.Handler.
func (h *ConditionalHandler) IsAsync() bool { return h.async }

// SetAsync implements graph.Handler.
func (h *ConditionalHandler) SetAsync(async bool) { h.async = async }

// Evaluate implements graph.Handler.
func (h *ConditionalHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.run(func(id string) (graph.Result, error) { return inv.Invoke(ctx, id) })
}

// EvaluateSync implements graph.SyncHandler.
func (h *ConditionalHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	res, _ := h.run(func(id string) (graph.Result, error) { return inv.InvokeSync(id), nil })
	return res
}

func (h *ConditionalHandler) run(invoke invokeFn) (graph.Result, error) {
	whenRes, err := invoke(h.WhenID)
	if err != nil {
		return graph.Result{}, err
	}
	if whenRes.IsError() {
		return whenRes, nil
	}

	branch := util.If(functions.Truthy(whenRes.Value), h.ThenID, h.ElseID)
	if branch == "" {
		return graph.Ok(nil), nil
	}
	return invoke(branch)
}
