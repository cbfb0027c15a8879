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
	"fmt"
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-form-engine/graph"
)

// FormatHandler evaluates each argument node, then substitutes into
// Template by replacing %1, %2, … with the corresponding argument's
// string coercion (spec §4.6). Placeholders may repeat; out-of-range
// placeholders resolve to the empty string; a placeholder whose
// argument errors is replaced with the empty string without propagating
// the error.
type FormatHandler struct {
	ID       string
	Template string
	ArgIDs   []string

	async bool
}

// Deps implements graph.Handler.
func (h *FormatHandler) Deps() []string { return h.ArgIDs }

// IsAsync implements graph.Handler.
func (h *FormatHandler) IsAsync() bool { return h.async }

// SetAsync implements graph.Handler.
func (h *FormatHandler) SetAsync(async bool) { h.async = async }

// Evaluate implements graph.Handler.
func (h *FormatHandler) Evaluate(ctx context.Context, ec *graph.EvaluationContext, inv graph.Invoker) (graph.Result, error) {
	return h.run(func(id string) (graph.Result, error) { return inv.Invoke(ctx, id) })
}

// EvaluateSync implements graph.SyncHandler.
func (h *FormatHandler) EvaluateSync(ec *graph.EvaluationContext, inv graph.Invoker) graph.Result {
	res, _ := h.run(func(id string) (graph.Result, error) { return inv.InvokeSync(id), nil })
	return res
}

func (h *FormatHandler) run(invoke invokeFn) (graph.Result, error) {
	args := make([]string, len(h.ArgIDs))
	for i, aid := range h.ArgIDs {
		res, err := invoke(aid)
		if err != nil {
			return graph.Result{}, err
		}
		if res.IsError() {
			args[i] = ""
			continue
		}
		args[i] = coerceString(res.Value)
	}
	return graph.Ok(substitute(h.Template, args)), nil
}

func coerceString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// substitute replaces every "%N" placeholder in template (1-indexed)
// with args[N-1], or the empty string when N is out of range.
func substitute(template string, args []string) string {
	var b strings.Builder
	i := 0
	for i < len(template) {
		if template[i] == '%' {
			j := i + 1
			for j < len(template) && template[j] >= '0' && template[j] <= '9' {
				j++
			}
			if j > i+1 {
				n, _ := strconv.Atoi(template[i+1 : j])
				if n >= 1 && n <= len(args) {
					b.WriteString(args[n-1])
				}
				i = j
				continue
			}
		}
		b.WriteByte(template[i])
		i++
	}
	return b.String()
}
