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
	"errors"
	"fmt"
)

// ErrorKind enumerates the taxonomy of thunk evaluation errors (spec §7).
type ErrorKind string

const (
	// ErrorLookupFailed marks a referenced node id not present in the registry.
	ErrorLookupFailed ErrorKind = "LOOKUP_FAILED"
	// ErrorSecurityViolation marks an unsafe key used to index request/answer data.
	ErrorSecurityViolation ErrorKind = "SECURITY_VIOLATION"
	// ErrorEvaluationFailed marks a handler's own logic producing an error.
	ErrorEvaluationFailed ErrorKind = "EVALUATION_FAILED"
	// ErrorNotSync marks a synchronous entry point hitting an async-only handler.
	ErrorNotSync ErrorKind = "NOT_SYNC"
	// ErrorCancelled marks cooperative cancellation observed by a handler.
	ErrorCancelled ErrorKind = "CANCELLED"
)

// ThunkError is the error envelope carried by Result. It satisfies the
// error interface so it composes with errors.As/errors.Is while still
// being a plain value that never needs to be thrown across a handler
// boundary (spec §7).
type ThunkError struct {
	Kind    ErrorKind
	NodeID  string
	Message string
}

// Error implements the error interface.
func (e *ThunkError) Error() string {
	return fmt.Sprintf("%s: node %s: %s", e.Kind, e.NodeID, e.Message)
}

// NewThunkError builds a ThunkError for nodeID.
func NewThunkError(kind ErrorKind, nodeID, message string) *ThunkError {
	return &ThunkError{Kind: kind, NodeID: nodeID, Message: message}
}

// Sentinel errors for programmer-facing failures (graph construction,
// wiring misuse) — these are regular Go errors, not part of the Result
// envelope, and are meant to be wrapped with fmt.Errorf("...: %w", err).
var (
	// ErrNodeIDEmpty is returned when a node is registered without an id.
	ErrNodeIDEmpty = errors.New("node id cannot be empty")
	// ErrNodeExists is returned when a node id is registered twice.
	ErrNodeExists = errors.New("node with this id already exists")
	// ErrNodeNotFound is returned by graph construction helpers that
	// require a node to already be registered.
	ErrNodeNotFound = errors.New("node not found")
	// ErrSelfLoop is returned when an edge would connect a node to itself.
	ErrSelfLoop = errors.New("dependency edges cannot be self-loops")
	// ErrUnsafeKey is returned by safety.SafeKey-backed constructors.
	ErrUnsafeKey = errors.New("unsafe property key")
)
