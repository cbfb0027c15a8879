//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

import "context"

// Result is the discriminated outcome of a thunk evaluation: either a
// value or a ThunkError, never both, never thrown (spec §3/§7).
type Result struct {
	Value any
	Err   *ThunkError
}

// Ok builds a successful Result.
func Ok(value any) Result { return Result{Value: value} }

// Errf builds a failed Result.
func Errf(kind ErrorKind, nodeID, message string) Result {
	return Result{Err: NewThunkError(kind, nodeID, message)}
}

// IsError reports whether r carries an error.
func (r Result) IsError() bool { return r.Err != nil }

// Handler is the per-node-id evaluator described in spec §4.4. A handler
// declares its dependency node ids up front so the registry can compute
// IsAsync by a fixpoint pass before any request is served.
type Handler interface {
	// Deps returns the node ids this handler reads when evaluating. The
	// thunk registry uses this purely for the sync/async fixpoint, not as
	// an execution schedule (spec §4.6 "Dependency evaluation ordering").
	Deps() []string

	// IsAsync reports whether Evaluate may suspend. It is only valid
	// after the registry's Finalize pass has called SetAsync (or immediately for handlers that are
	// unconditionally sync, e.g. PostHandler).
	IsAsync() bool

	// SetAsync is called by the registry's fixpoint pass once IsAsync is
	// known; handlers that are unconditionally sync or async should
	// ignore the call (or assert the value matches).
	SetAsync(async bool)

	// Evaluate runs the handler, possibly suspending. Implementations
	// must never panic or return a Go error for ordinary evaluation
	// failures — those go in Result.Err.
	Evaluate(ctx context.Context, ec *EvaluationContext, inv Invoker) (Result, error)
}

// SyncHandler is implemented by handlers that can also run on the
// non-suspending entry point (evaluateSync in spec §4.4).
type SyncHandler interface {
	Handler
	EvaluateSync(ec *EvaluationContext, inv Invoker) Result
}

// ThunkRegistry maps node id to the handler that evaluates it.
type ThunkRegistry struct {
	handlers map[string]Handler
	order    []string
	parent   *ThunkRegistry
}

// NewThunkRegistry creates an empty handler registry.
func NewThunkRegistry() *ThunkRegistry {
	return &ThunkRegistry{handlers: make(map[string]Handler)}
}

// NewOverlayThunkRegistry returns a handler registry scoped to one
// request: Register binds handlers only in the overlay, and Get consults
// the overlay first and falls back to parent. Handlers bound to runtime
// nodes minted mid-request (spec §9) live only in the overlay and are
// discarded with the request's EvaluationContext rather than accumulating
// in the shared, compile-time registry.
func NewOverlayThunkRegistry(parent *ThunkRegistry) *ThunkRegistry {
	return &ThunkRegistry{handlers: make(map[string]Handler), parent: parent}
}

// Register binds a handler to a node id.
func (r *ThunkRegistry) Register(nodeID string, h Handler) {
	if _, exists := r.handlers[nodeID]; !exists {
		r.order = append(r.order, nodeID)
	}
	r.handlers[nodeID] = h
}

// Get returns the handler bound to nodeID, falling back to parent (if
// any) when not found locally.
func (r *ThunkRegistry) Get(nodeID string) (Handler, bool) {
	h, ok := r.handlers[nodeID]
	if ok {
		return h, true
	}
	if r.parent != nil {
		return r.parent.Get(nodeID)
	}
	return nil, false
}

// Finalize computes IsAsync for every locally-registered handler by the
// fixpoint policy in spec §4.4: a handler is synchronous iff all of its
// declared dependencies are synchronous; a dependency that cannot be
// resolved anywhere in the parent chain is conservatively treated as
// async; cycles outside iteration make every participant async. A
// dependency satisfied only by the parent registry is trusted as already
// finalized (the parent's own Finalize has already run) rather than
// re-derived, since overlay handlers may depend on base handlers but
// never the reverse.
func (r *ThunkRegistry) Finalize() {
	// state: 0 = unvisited, 1 = in progress (on the current DFS stack), 2 = done.
	state := make(map[string]int, len(r.order))
	var visit func(id string) bool // returns isAsync
	visit = func(id string) bool {
		h, ok := r.handlers[id]
		if !ok {
			if r.parent != nil {
				if ph, ok := r.parent.Get(id); ok {
					return ph.IsAsync()
				}
			}
			return true
		}
		switch state[id] {
		case 2:
			return h.IsAsync()
		case 1:
			// Cycle: every participant on the stack is conservatively async.
			return true
		}
		state[id] = 1
		async := false
		for _, dep := range h.Deps() {
			if visit(dep) {
				async = true
			}
		}
		h.SetAsync(async)
		state[id] = 2
		return async
	}
	for _, id := range r.order {
		if state[id] == 0 {
			visit(id)
		}
	}
}
