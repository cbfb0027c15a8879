//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package handlers implements the node-kind-specific evaluators that
// plug into graph.ThunkRegistry: one type per AST/pseudo-node kind,
// each satisfying graph.Handler (and, where the kind can always run
// without suspension, graph.SyncHandler).
package handlers

import (
	"trpc.group/trpc-go/trpc-form-engine/graph"
	"trpc.group/trpc-go/trpc-form-engine/internal/util"
	"trpc.group/trpc-go/trpc-form-engine/safety"
)

// invokeFn abstracts over graph.Invoker's two dispatch modes so a
// handler's control flow can be written once and reused for both
// Evaluate (suspending) and EvaluateSync (non-suspending).
type invokeFn func(id string) (graph.Result, error)

// traverseProps walks path through value, treating each element of
// value as a map[string]any and indexing by the next path segment
// after confirming it with safety.SafeKey. Returns a SECURITY_VIOLATION
// error on the first unsafe segment; a path segment that doesn't match
// a map key yields a nil result, not an error (spec §4.6 "Nested
// property access").
func traverseProps(nodeID string, value any, path []string) (any, *graph.ThunkError) {
	cur := value
	for _, seg := range path {
		if !safety.SafeKey(seg) {
			return nil, graph.NewThunkError(graph.ErrorSecurityViolation, nodeID, "unsafe property key: "+seg)
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, nil
		}
		cur, ok = util.GetMapValue[string, any](m, seg)
		if !ok {
			return nil, nil
		}
	}
	return cur, nil
}

// toSlice reports whether v is a slice/array value CollectionHandler
// can iterate, normalised to []any.
func toSlice(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
