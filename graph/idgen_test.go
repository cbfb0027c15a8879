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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDGeneratorFormat(t *testing.T) {
	g := NewIDGenerator()
	assert.Equal(t, "compile_ast:1", g.Next(CategoryCompileAST))
	assert.Equal(t, "compile_ast:2", g.Next(CategoryCompileAST))
	assert.Equal(t, "runtime_pseudo:1", g.Next(CategoryRuntimePseudo))
}

func TestIDGeneratorCategoriesAreIndependent(t *testing.T) {
	g := NewIDGenerator()
	g.Next(CategoryCompileAST)
	g.Next(CategoryCompileAST)
	assert.Equal(t, "compile_pseudo:1", g.Next(CategoryCompilePseudo))
}

func TestIDGeneratorUnknownCategory(t *testing.T) {
	g := NewIDGenerator()
	assert.Equal(t, "custom:1", g.Next(Category("custom")))
	assert.Equal(t, "custom:2", g.Next(Category("custom")))
}

func TestIDGeneratorConcurrentUse(t *testing.T) {
	g := NewIDGenerator()
	var wg sync.WaitGroup
	ids := make(chan string, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- g.Next(CategoryRuntimeAST)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, 200)
}
