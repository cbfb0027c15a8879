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
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-form-engine/event"
)

// Method is the HTTP method of the request driving this evaluation.
type Method string

// Supported request methods.
const (
	MethodGET  Method = "GET"
	MethodPOST Method = "POST"
)

// Request is the inbound request descriptor (spec §6): method, raw POST
// body map (values may be arrays for multi-select inputs), URL route
// parameters, and cross-step answers loaded ahead of evaluation.
type Request struct {
	Method Method
	Post   map[string]any
	Params map[string]string
	// Remote holds previously-loaded cross-step answers, keyed by owning
	// step id then field code (spec §3/§4.3): an answer left behind by a
	// different step, loaded rather than computed within this request.
	Remote map[string]map[string]any
}

// Global is the object exposed to expression evaluation as "global":
// answers, data, and ambient request-scoped values like a CSRF token.
// Global.Answers is mutated in place as the AnswerLocalHandler runs; it is
// the authoritative post-evaluation answer state (spec §6 Outbound).
type Global struct {
	Answers   map[string]*AnswerHistory
	Data      map[string]any
	CSRFToken string
}

// EvaluationContext is the per-request state bag described in spec §3: it
// is created at request entry and discarded at request exit, and is owned
// by exactly one request — nothing else may touch its answer store, scope
// stack, or memoisation map (spec §5).
type EvaluationContext struct {
	Nodes   *Registry
	Request *Request
	Answers *AnswerStore
	Scope   *ScopeStack
	Data    map[string]any
	Global  *Global

	// RuntimeDeps is the request-scoped dependency graph runtime-node
	// expansion (spec §9) wires into instead of a compiled form's shared,
	// compile-time DependencyGraph. Nothing at evaluation time reads it
	// back; it exists so wiring a newly-minted node stays the same
	// Wirer/Wiring machinery used at compile time.
	RuntimeDeps *DependencyGraph

	// RuntimeThunks is the request-scoped handler registry runtime-node
	// expansion registers newly-minted handlers into. Callers that want
	// runtime nodes to resolve against a compiled form's base handlers
	// should set this to NewOverlayThunkRegistry(form.Thunks) before
	// evaluation begins; left at its zero-parent default it simply has no
	// base handlers to fall back to.
	RuntimeThunks *ThunkRegistry

	// Cancelled is checked cooperatively by handlers that support
	// cancellation (spec §5); set it before calling Evaluate to request
	// early abort.
	Cancelled bool

	// Trace records one Trace per invocation for diagnostics; nil by
	// default (tracing has a cost and is opt-in).
	Trace *event.Log

	memo map[string]Result
}

// NewEvaluationContext builds a fresh context for one request. nodes is
// typically an overlay registry (NewOverlayRegistry) over a compiled
// form's shared node registry, so any runtime nodes later added via
// Nodes.Add land only in this request's overlay (spec §5: "[n]othing
// else may touch its answer store, scope stack, or memoisation map" —
// the same isolation extends to runtime-expanded nodes).
func NewEvaluationContext(nodes *Registry, req *Request, answerSeed map[string]any) *EvaluationContext {
	store := NewAnswerStore(answerSeed)
	ec := &EvaluationContext{
		Nodes:         nodes,
		Request:       req,
		Answers:       store,
		Scope:         NewScopeStack(),
		Data:          make(map[string]any),
		RuntimeDeps:   NewDependencyGraph(),
		RuntimeThunks: NewThunkRegistry(),
		memo:          make(map[string]Result),
	}
	ec.Global = &Global{
		Answers: store.Snapshot(),
		Data:    ec.Data,
	}
	return ec
}

// memoKey derives the per-request memoisation key for nodeID, folding in
// the current scope so iteration bodies re-evaluate per item (spec §4.5).
// When the top frame is an iteration frame, the key appends the "@index"
// of every iteration frame on the stack, outermost first, so the same
// inner index under two different outer items keys distinctly.
func (ec *EvaluationContext) memoKey(nodeID string) string {
	frame := ec.Scope.Top()
	if frame == nil || frame.Type != FrameIteration {
		return nodeID
	}
	var b strings.Builder
	b.WriteString(nodeID)
	for _, f := range ec.Scope.frames {
		if f.Type == FrameIteration {
			b.WriteString("#" + strconv.Itoa(toInt(f.Values["@index"])))
		}
	}
	return b.String()
}

func toInt(v any) int {
	i, _ := v.(int)
	return i
}

// Results returns a snapshot of every node result memoised so far this
// request, keyed by the bare node id (the memo key's iteration-bucket
// suffix, if any, is stripped). Used by formengine.Evaluate to build the
// Rendered record once a step entry node has been invoked.
func (ec *EvaluationContext) Results() map[string]Result {
	out := make(map[string]Result, len(ec.memo))
	for key, res := range ec.memo {
		id := key
		if idx := strings.LastIndexByte(key, '#'); idx >= 0 {
			id = key[:idx]
		}
		out[id] = res
	}
	return out
}
