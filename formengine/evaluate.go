//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package formengine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"trpc.group/trpc-go/trpc-form-engine/event"
	"trpc.group/trpc-go/trpc-form-engine/graph"
)

var tracer = otel.Tracer("trpc.group/trpc-go/trpc-form-engine/formengine")

// Rendered is the opaque, per-request record produced by Evaluate: every
// node result resolved while answering stepEntryID, keyed by node id,
// plus the mutated answer store for the request (spec §2/§6 "evaluate
// (stepEntryNodeId, context) -> Result<Rendered>").
type Rendered struct {
	Values  map[string]graph.Result
	Answers map[string]*graph.AnswerHistory
	Trace   []event.Trace
}

// Value returns the resolved value for nodeID, and whether it was
// present and error-free. A renderer walks Values keyed by the field ids
// it cares about rather than re-invoking the graph itself.
func (r Rendered) Value(nodeID string) (any, bool) {
	res, ok := r.Values[nodeID]
	if !ok || res.IsError() {
		return nil, false
	}
	return res.Value, true
}

// Evaluate runs one request-scoped pass over form: it invokes
// stepEntryID, which transitively pulls in every node the current step
// needs through the dependency edges wiring established, and returns the
// resulting values and answer history. trace, when true, records one
// event.Trace per node invocation for diagnostics.
func Evaluate(
	ctx context.Context,
	form *CompiledForm,
	stepEntryID string,
	req *graph.Request,
	answerSeed map[string]any,
	trace bool,
) (Rendered, error) {
	ec := graph.NewEvaluationContext(graph.NewOverlayRegistry(form.Nodes), req, answerSeed)
	ec.RuntimeThunks = graph.NewOverlayThunkRegistry(form.Thunks)
	if trace {
		ec.Trace = &event.Log{}
	}

	ctx, span := tracer.Start(ctx, "formengine.Evaluate")
	span.SetAttributes(attribute.String("form.step_entry_id", stepEntryID))
	defer span.End()

	inv := graph.NewInvocation(ec.RuntimeThunks, ec)
	res, err := inv.Invoke(ctx, stepEntryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Rendered{}, fmt.Errorf("evaluate %q: %w", stepEntryID, err)
	}

	values := ec.Results()
	values[stepEntryID] = res

	rendered := Rendered{
		Values:  values,
		Answers: ec.Answers.Snapshot(),
	}
	if ec.Trace != nil {
		rendered.Trace = ec.Trace.Records()
	}
	if res.IsError() {
		span.SetStatus(codes.Error, res.Err.Error())
	}
	return rendered, nil
}
