//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package event records the evaluation trace produced while a form
// evaluation context resolves nodes: one record per invocation, independent
// of the answer history kept for fields.
package event

import (
	"sync"
	"time"

	"trpc.group/trpc-go/trpc-form-engine/internal/util"
)

// Kind identifies what an invocation did.
type Kind string

const (
	// KindSync marks a synchronous handler invocation.
	KindSync Kind = "sync"
	// KindAsync marks an asynchronous handler invocation.
	KindAsync Kind = "async"
	// KindMemoized marks an invocation served from the per-request memo.
	KindMemoized Kind = "memoized"
	// KindError marks an invocation whose Result carried an error.
	KindError Kind = "error"
)

// Trace is one record of a node invocation during evaluation.
type Trace struct {
	// ID uniquely identifies this trace record.
	ID string `json:"id"`
	// NodeID is the node that was invoked.
	NodeID string `json:"nodeId"`
	// Kind describes the outcome of the invocation.
	Kind Kind `json:"kind"`
	// Timestamp is when the invocation completed.
	Timestamp time.Time `json:"timestamp"`
	// Detail is an optional free-form note (e.g. the error message).
	Detail string `json:"detail,omitempty"`
}

// NewTrace creates a trace record for nodeID with a fresh ID and the
// current timestamp.
func NewTrace(nodeID string, kind Kind, detail string) Trace {
	return Trace{
		ID:        util.NewUUIDString(),
		NodeID:    nodeID,
		Kind:      kind,
		Timestamp: time.Now(),
		Detail:    detail,
	}
}

// Log is an append-only, concurrency-safe collection of trace records for
// a single evaluation context. Although a context is only ever touched by
// one goroutine (spec §5), the mutex keeps Log safe to share with a
// supervising caller (e.g. a debug endpoint) that reads it concurrently
// with the evaluation it is observing.
type Log struct {
	mu      sync.Mutex
	records []Trace
}

// Append adds a trace record to the log.
func (l *Log) Append(t Trace) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, t)
}

// Records returns a snapshot of the recorded traces in append order.
func (l *Log) Records() []Trace {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Trace, len(l.records))
	copy(out, l.records)
	return out
}
