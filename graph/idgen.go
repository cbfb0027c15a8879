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
	"fmt"
	"sync"
	"sync/atomic"
)

// Category is one of the four id namespaces a node id can belong to.
type Category string

const (
	// CategoryCompileAST marks an authored node created when a form loads.
	CategoryCompileAST Category = "compile_ast"
	// CategoryCompilePseudo marks a pseudo-node created when a form loads.
	CategoryCompilePseudo Category = "compile_pseudo"
	// CategoryRuntimeAST marks an authored node created mid-request
	// (dynamic collection expansion).
	CategoryRuntimeAST Category = "runtime_ast"
	// CategoryRuntimePseudo marks a pseudo-node created mid-request.
	CategoryRuntimePseudo Category = "runtime_pseudo"
)

// IDGenerator issues stable, categorised node ids of the form
// "<category>:<counter>". Compile-time categories are shared across
// requests (one generator per compiled form); runtime categories are
// typically backed by a fresh generator per request so runtime ids never
// collide with ids minted by a concurrent request against the same form.
type IDGenerator struct {
	mu       sync.Mutex
	counters map[Category]*atomic.Int64
}

// NewIDGenerator creates a generator with independent counters per
// category.
func NewIDGenerator() *IDGenerator {
	g := &IDGenerator{counters: make(map[Category]*atomic.Int64, 4)}
	for _, c := range []Category{
		CategoryCompileAST, CategoryCompilePseudo,
		CategoryRuntimeAST, CategoryRuntimePseudo,
	} {
		g.counters[c] = &atomic.Int64{}
	}
	return g
}

// Next issues the next id in category.
func (g *IDGenerator) Next(category Category) string {
	g.mu.Lock()
	counter, ok := g.counters[category]
	if !ok {
		counter = &atomic.Int64{}
		g.counters[category] = counter
	}
	g.mu.Unlock()
	n := counter.Add(1)
	return fmt.Sprintf("%s:%d", category, n)
}
