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
	"reflect"

	"trpc.group/trpc-go/trpc-form-engine/functions"
	"trpc.group/trpc-go/trpc-form-engine/graph"
	"trpc.group/trpc-go/trpc-form-engine/safety"
)

// AnswerLocalHandler is the central POST/GET answer resolution state
// machine (spec §4.6). It is bound to one field code and the AST field
// node that carries sanitize/formatters/dependent/defaultValue
// properties; FieldNodeID is resolved lazily so a reference to a
// non-existent field surfaces as LOOKUP_FAILED rather than failing at
// wiring time.
//
// Field node properties read from FieldNodeID's Props:
//
//	sanitize            bool     — default true; false suppresses the sanitized mutation
//	formatters          []string — expression node ids, applied in order
//	dependent           string   — expression node id; falsy clears the value
//	defaultValueNodeID  string   — expression node id for defaultValue
//	defaultValueLiteral any      — used when defaultValueNodeID is absent
type AnswerLocalHandler struct {
	ID          string
	Field       string
	FieldNodeID string
	PostNodeID  string // empty if this field never reads POST

	async bool
}

// Deps implements graph.Handler.
func (h *AnswerLocalHandler) Deps() []string {
	if h.PostNodeID == "" {
		return nil
	}
	return []string{h.PostNodeID}
}

// IsAsync implements graph.Handler.
func (h *AnswerLocalHandler) IsAsync() bool { return h.async }

// SetAsync implements graph.Handler.
func (h *AnswerLocalHandler) SetAsync(async bool) { h.async = async }

// Evaluate implements graph.Handler.
func (h *AnswerLocalHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.run(ec, func(id string) (graph.Result, error) { return inv.Invoke(ctx, id) })
}

// EvaluateSync implements graph.SyncHandler.
func (h *AnswerLocalHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	res, _ := h.run(ec, func(id string) (graph.Result, error) { return inv.InvokeSync(id), nil })
	return res
}

func (h *AnswerLocalHandler) run(ec *graph.EvaluationContext, invoke invokeFn) (graph.Result, error) {
	if !safety.SafeKey(h.Field) {
		return graph.Errf(graph.ErrorSecurityViolation, h.ID, "unsafe field code: "+h.Field), nil
	}
	fieldNode, ok := ec.Nodes.Get(h.FieldNodeID)
	if !ok {
		return graph.Errf(graph.ErrorLookupFailed, h.ID, "field node not found: "+h.FieldNodeID), nil
	}
	history := ec.Answers.Get(h.Field)

	if ec.Request != nil && ec.Request.Method == graph.MethodPOST {
		return h.runPost(ec, fieldNode, history, invoke)
	}
	return h.runGet(fieldNode, history, invoke)
}

func (h *AnswerLocalHandler) runPost(ec *graph.EvaluationContext, fieldNode *graph.Node, history *graph.AnswerHistory, invoke invokeFn) (graph.Result, error) {
	if history.LastSource() == graph.SourceAction {
		return graph.Ok(history.Current), nil
	}

	var raw any
	if h.PostNodeID != "" {
		res, err := invoke(h.PostNodeID)
		if err != nil {
			return graph.Result{}, err
		}
		if !res.IsError() {
			raw = res.Value
		}
		// A POST error is absorbed into an undefined value (spec §4.6 step 2).
	}
	history.Push(raw, graph.SourcePost)
	current := raw

	sanitize := true
	if v, ok := graph.Prop[bool](fieldNode, "sanitize"); ok {
		sanitize = v
	}
	if sanitize {
		if s, ok := current.(string); ok {
			escaped := safety.EscapeHTML(s)
			if escaped != s {
				current = escaped
				history.Push(current, graph.SourceSanitized)
			}
		}
	}

	if formatterIDs, ok := graph.Prop[[]string](fieldNode, "formatters"); ok && len(formatterIDs) > 0 {
		preFormat := current
		for _, fid := range formatterIDs {
			ec.Scope.Push(graph.FrameFormatter, map[string]any{"@value": current, "@type": "formatter"})
			res, err := invoke(fid)
			ec.Scope.Pop()
			if err != nil {
				return graph.Result{}, err
			}
			if !res.IsError() && res.Value != nil {
				current = res.Value
			}
			// errors and undefined results are ignored, previous value survives.
		}
		if !reflect.DeepEqual(current, preFormat) {
			history.Push(current, graph.SourceProcessed)
		}
	}

	if depID, ok := graph.Prop[string](fieldNode, "dependent"); ok && depID != "" {
		res, err := invoke(depID)
		if err != nil {
			return graph.Result{}, err
		}
		if !res.IsError() && !functions.Truthy(res.Value) {
			history.Push(nil, graph.SourceDependent)
			return graph.Ok(nil), nil
		}
		// dependent errors are fail-open: keep the value.
	}

	return graph.Ok(current), nil
}

func (h *AnswerLocalHandler) runGet(fieldNode *graph.Node, history *graph.AnswerHistory, invoke invokeFn) (graph.Result, error) {
	if history.Current != nil {
		return graph.Ok(history.Current), nil
	}

	if defID, ok := graph.Prop[string](fieldNode, "defaultValueNodeID"); ok && defID != "" {
		res, err := invoke(defID)
		if err != nil {
			return graph.Result{}, err
		}
		if !res.IsError() && res.Value != nil {
			history.Push(res.Value, graph.SourceDefault)
			return graph.Ok(res.Value), nil
		}
		history.Push(nil, graph.SourceDefault)
		return graph.Ok(nil), nil
	}

	if lit, ok := fieldNode.Props["defaultValueLiteral"]; ok {
		history.Push(lit, graph.SourceDefault)
		return graph.Ok(lit), nil
	}

	history.Push(nil, graph.SourceDefault)
	return graph.Ok(nil), nil
}
