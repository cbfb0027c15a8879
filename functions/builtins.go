//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package functions

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"trpc.group/trpc-go/trpc-form-engine/graph"
)

// RegisterBuiltins registers the small transformer/condition catalogue
// used throughout the spec's worked examples. The exact catalogue is
// explicitly left open by spec.md §1 ("we do not specify the exact
// catalogue of condition/transformer functions"); this set is the
// minimum needed to exercise AnswerLocalHandler's formatter pipeline and
// ConditionalHandler's "when" expressions end to end.
func RegisterBuiltins(r *Registry) {
	r.Register("trim", Function{Invoke: unary(func(s string) any { return strings.TrimSpace(s) })})
	r.Register("upper", Function{Invoke: unary(func(s string) any { return strings.ToUpper(s) })})
	r.Register("lower", Function{Invoke: unary(func(s string) any { return strings.ToLower(s) })})

	r.Register("concat", Function{Invoke: func(ctx context.Context, args []any, ec *graph.EvaluationContext) (any, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(coerceString(a))
		}
		return b.String(), nil
	}})

	r.Register("eq", Function{Invoke: func(ctx context.Context, args []any, ec *graph.EvaluationContext) (any, error) {
		if len(args) < 2 {
			return false, nil
		}
		return reflect.DeepEqual(args[0], args[1]), nil
	}})

	r.Register("not", Function{Invoke: func(ctx context.Context, args []any, ec *graph.EvaluationContext) (any, error) {
		if len(args) < 1 {
			return true, nil
		}
		return !Truthy(args[0]), nil
	}})

	r.Register("truthy", Function{Invoke: func(ctx context.Context, args []any, ec *graph.EvaluationContext) (any, error) {
		if len(args) < 1 {
			return false, nil
		}
		return Truthy(args[0]), nil
	}})
}

func unary(f func(string) any) func(context.Context, []any, *graph.EvaluationContext) (any, error) {
	return func(ctx context.Context, args []any, ec *graph.EvaluationContext) (any, error) {
		if len(args) < 1 {
			return nil, nil
		}
		return f(coerceString(args[0])), nil
	}
}

// coerceString stringifies a resolved value for string-oriented
// builtins, mirroring the coercion FormatHandler applies to its
// arguments (spec §4.6).
func coerceString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
