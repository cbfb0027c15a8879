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
	"strconv"

	"trpc.group/trpc-go/trpc-form-engine/graph"
)

// ReferenceHandler resolves a reference node's path (spec §4.6, §9): the
// first segment selects either a scope variable ("@value"), an enclosing
// iteration's item ("@parent", addressing Item().parent and repeatable for
// grandparent scopes), or a pseudo-node kind already resolved to a
// concrete node id at compile time (TargetNodeID). A pseudo-node returns
// the whole value for its key, so the segments naming it ([kind, key],
// or ["answers", "remote", step, field]) are not traversed; the remainder
// is property-path traversal through whatever that lookup returned.
type ReferenceHandler struct {
	ID           string
	Path         []string
	TargetNodeID string // empty for scope references ("@value", "@parent")

	async bool
}

// Deps implements graph.Handler.
func (h *ReferenceHandler) Deps() []string {
	if h.TargetNodeID == "" {
		return nil
	}
	return []string{h.TargetNodeID}
}

// IsAsync implements graph.Handler.
func (h *ReferenceHandler) IsAsync() bool { return h.async }

// SetAsync implements graph.Handler.
func (h *ReferenceHandler) SetAsync(async bool) { h.async = async }

// Evaluate implements graph.Handler.
func (h *ReferenceHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.run(ec, func(id string) (graph.Result, error) { return inv.Invoke(ctx, id) })
}

// EvaluateSync implements graph.SyncHandler.
func (h *ReferenceHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	res, _ := h.run(ec, func(id string) (graph.Result, error) { return inv.InvokeSync(id), nil })
	return res
}

func (h *ReferenceHandler) run(ec *graph.EvaluationContext, invoke invokeFn) (graph.Result, error) {
	if len(h.Path) == 0 {
		return graph.Errf(graph.ErrorEvaluationFailed, h.ID, "empty reference path"), nil
	}

	head := h.Path[0]
	rest := h.Path[1:]

	if head == "@value" {
		v, _ := ec.Scope.Lookup(head, "")
		val, terr := traverseProps(h.ID, v, rest)
		if terr != nil {
			return graph.Result{Err: terr}, nil
		}
		return graph.Ok(val), nil
	}

	if head == "@parent" {
		depth := 1
		for len(rest) > 0 && rest[0] == "@parent" {
			depth++
			rest = rest[1:]
		}
		frame, ok := ec.Scope.Parent(depth)
		if !ok {
			return graph.Errf(graph.ErrorLookupFailed, h.ID, "no enclosing iteration frame at depth "+strconv.Itoa(depth)), nil
		}
		val, terr := traverseProps(h.ID, frame.Values["@value"], rest)
		if terr != nil {
			return graph.Result{Err: terr}, nil
		}
		return graph.Ok(val), nil
	}

	if h.TargetNodeID == "" {
		return graph.Errf(graph.ErrorLookupFailed, h.ID, "reference has no wired target for path head: "+head), nil
	}

	res, err := invoke(h.TargetNodeID)
	if err != nil {
		return graph.Result{}, err
	}
	if res.IsError() {
		return res, nil
	}
	keyLen := 2
	if head == "answers" && len(h.Path) >= 4 && h.Path[1] == "remote" {
		keyLen = 4
	}
	if keyLen > len(h.Path) {
		keyLen = len(h.Path)
	}
	val, terr := traverseProps(h.ID, res.Value, h.Path[keyLen:])
	if terr != nil {
		return graph.Result{Err: terr}, nil
	}
	return graph.Ok(val), nil
}
