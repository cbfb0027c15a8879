//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package formengine assembles the graph, handlers, and functions
// packages into the form evaluation core's documented external
// interface: a fluent builder that compiles a node graph once, and an
// Evaluate entry point that runs one request-scoped pass over it.
package formengine

import "trpc.group/trpc-go/trpc-form-engine/graph"

// CompiledForm is the output of Builder.Compile(): a node registry,
// dependency graph, and thunk registry that have been wired and
// finalized, ready to be evaluated repeatedly and concurrently by
// independent requests. Nothing in CompiledForm is request-scoped.
type CompiledForm struct {
	Nodes  *graph.Registry
	Deps   *graph.DependencyGraph
	Thunks *graph.ThunkRegistry
	Wiring *graph.Wiring
	IDs    *graph.IDGenerator
}
