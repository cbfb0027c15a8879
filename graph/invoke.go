//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

import (
	"context"

	"go.opentelemetry.io/otel"
	"trpc.group/trpc-go/trpc-form-engine/event"
	"trpc.group/trpc-go/trpc-form-engine/log"
)

// Invoker is the narrow interface handlers use to invoke their
// dependencies, so handler implementations don't need to import the
// concrete Invocation Adapter type.
type Invoker interface {
	Invoke(ctx context.Context, nodeID string) (Result, error)
	InvokeSync(nodeID string) Result
}

var tracer = otel.Tracer("trpc.group/trpc-go/trpc-form-engine/graph")

// Invocation is the invocation adapter described in spec §4.5: it
// dispatches to the handler bound to a node id, memoising the result
// within the owning request (scoped by the enclosing iteration frames, if
// any). It does not recover handler panics; handlers are contractually
// required never to panic for ordinary evaluation failures (spec §7).
// Errors always propagate as Result values, never thrown.
type Invocation struct {
	registry *ThunkRegistry
	ec       *EvaluationContext
}

// NewInvocation builds an invocation adapter bound to registry and ec.
func NewInvocation(registry *ThunkRegistry, ec *EvaluationContext) *Invocation {
	return &Invocation{registry: registry, ec: ec}
}

// Invoke dispatches nodeID, suspending if the handler is async.
func (iv *Invocation) Invoke(ctx context.Context, nodeID string) (Result, error) {
	if ec := iv.ec; ec.Cancelled {
		return Errf(ErrorCancelled, nodeID, "evaluation cancelled"), nil
	}

	key := iv.ec.memoKey(nodeID)
	if cached, ok := iv.ec.memo[key]; ok {
		iv.recordTrace(nodeID, event.KindMemoized, cached)
		return cached, nil
	}

	h, ok := iv.registry.Get(nodeID)
	if !ok {
		res := Errf(ErrorLookupFailed, nodeID, "no handler registered for node")
		iv.ec.memo[key] = res
		iv.recordTrace(nodeID, event.KindError, res)
		return res, nil
	}

	ctx, span := tracer.Start(ctx, "graph.Invoke")
	defer span.End()

	res, err := h.Evaluate(ctx, iv.ec, iv)
	if err != nil {
		// Programmer/transport error from Evaluate itself (not a Result
		// error) — do not memoise, let the caller decide how to handle it.
		return Result{}, err
	}

	iv.ec.memo[key] = res
	kind := event.KindSync
	if h.IsAsync() {
		kind = event.KindAsync
	}
	if res.IsError() {
		kind = event.KindError
	}
	iv.recordTrace(nodeID, kind, res)
	return res, nil
}

// InvokeSync dispatches nodeID on the non-suspending path. If the bound
// handler is async-marked, it returns NOT_SYNC without invoking anything
// (spec §4.5).
func (iv *Invocation) InvokeSync(nodeID string) Result {
	key := iv.ec.memoKey(nodeID)
	if cached, ok := iv.ec.memo[key]; ok {
		iv.recordTrace(nodeID, event.KindMemoized, cached)
		return cached
	}

	h, ok := iv.registry.Get(nodeID)
	if !ok {
		res := Errf(ErrorLookupFailed, nodeID, "no handler registered for node")
		iv.ec.memo[key] = res
		iv.recordTrace(nodeID, event.KindError, res)
		return res
	}
	if h.IsAsync() {
		res := Errf(ErrorNotSync, nodeID, "handler is async-only")
		return res
	}
	sh, ok := h.(SyncHandler)
	if !ok {
		res := Errf(ErrorNotSync, nodeID, "handler has no sync evaluation path")
		return res
	}

	res := sh.EvaluateSync(iv.ec, iv)
	iv.ec.memo[key] = res
	kind := event.KindSync
	if res.IsError() {
		kind = event.KindError
	}
	iv.recordTrace(nodeID, kind, res)
	return res
}

func (iv *Invocation) recordTrace(nodeID string, kind event.Kind, res Result) {
	if iv.ec.Trace == nil {
		return
	}
	detail := ""
	if res.IsError() {
		detail = res.Err.Message
		log.Debugf("node %s evaluation failed: %s", nodeID, detail)
	}
	iv.ec.Trace.Append(event.NewTrace(nodeID, kind, detail))
}
