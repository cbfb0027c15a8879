//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"trpc.group/trpc-go/trpc-form-engine/log"
)

// logSpanExporter forwards finished spans to the package logger. It stands
// in for a real collector exporter (OTLP, Jaeger, ...) that a deployment
// would wire instead; formserver only needs to prove the evaluation core's
// spans are flowing somewhere.
type logSpanExporter struct{}

func (logSpanExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		var sc trace.SpanContext = s.SpanContext()
		log.Infof("span %s trace=%s span=%s duration=%s",
			s.Name(), sc.TraceID(), sc.SpanID(), s.EndTime().Sub(s.StartTime()))
	}
	return nil
}

func (logSpanExporter) Shutdown(context.Context) error { return nil }

// tracingSampleRate controls what fraction of evaluations get traced; 1.0
// samples every request, which is fine at formserver's demo scale.
const tracingSampleRate = 1.0

// setupTracing registers a TracerProvider backed by logSpanExporter as the
// global tracer provider, so the root spans formengine.Evaluate and
// graph.Invocation.Invoke start are actually collected somewhere. Returns a
// shutdown func to flush and stop the batch processor.
func setupTracing() func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(logSpanExporter{}),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(tracingSampleRate))),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
