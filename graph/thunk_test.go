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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHandler is a minimal Handler/SyncHandler used to exercise
// ThunkRegistry.Finalize without pulling in the handlers package.
type fakeHandler struct {
	deps         []string
	asyncByFiat  bool // if true, IsAsync always reports true regardless of SetAsync
	async        bool
	evaluateFunc func() Result
}

func (f *fakeHandler) Deps() []string { return f.deps }
func (f *fakeHandler) IsAsync() bool {
	if f.asyncByFiat {
		return true
	}
	return f.async
}
func (f *fakeHandler) SetAsync(async bool) {
	if !f.asyncByFiat {
		f.async = async
	}
}
func (f *fakeHandler) Evaluate(ctx context.Context, ec *EvaluationContext, inv Invoker) (Result, error) {
	if f.evaluateFunc != nil {
		return f.evaluateFunc(), nil
	}
	return Ok(nil), nil
}
func (f *fakeHandler) EvaluateSync(ec *EvaluationContext, inv Invoker) Result {
	if f.evaluateFunc != nil {
		return f.evaluateFunc()
	}
	return Ok(nil)
}

func TestResultOkAndErrf(t *testing.T) {
	ok := Ok(42)
	assert.False(t, ok.IsError())
	assert.Equal(t, 42, ok.Value)

	e := Errf(ErrorLookupFailed, "n1", "missing")
	assert.True(t, e.IsError())
	assert.Equal(t, ErrorLookupFailed, e.Err.Kind)
	assert.Equal(t, "n1", e.Err.NodeID)
}

func TestThunkRegistryFinalizeSyncChain(t *testing.T) {
	r := NewThunkRegistry()
	r.Register("a", &fakeHandler{})
	r.Register("b", &fakeHandler{deps: []string{"a"}})
	r.Register("c", &fakeHandler{deps: []string{"b"}})
	r.Finalize()

	for _, id := range []string{"a", "b", "c"} {
		h, ok := r.Get(id)
		require.True(t, ok)
		assert.False(t, h.IsAsync(), "node %s should be sync", id)
	}
}

func TestThunkRegistryFinalizePropagatesAsync(t *testing.T) {
	r := NewThunkRegistry()
	r.Register("a", &fakeHandler{asyncByFiat: true})
	r.Register("b", &fakeHandler{deps: []string{"a"}})
	r.Register("c", &fakeHandler{deps: []string{"b"}})
	r.Finalize()

	hb, _ := r.Get("b")
	hc, _ := r.Get("c")
	assert.True(t, hb.IsAsync())
	assert.True(t, hc.IsAsync())
}

func TestThunkRegistryFinalizeMissingDepIsAsync(t *testing.T) {
	r := NewThunkRegistry()
	r.Register("a", &fakeHandler{deps: []string{"ghost"}})
	r.Finalize()

	ha, _ := r.Get("a")
	assert.True(t, ha.IsAsync(), "a depends on an unresolvable node, so it must be conservatively async")
}

func TestThunkRegistryFinalizeCycleIsAsync(t *testing.T) {
	r := NewThunkRegistry()
	r.Register("a", &fakeHandler{deps: []string{"b"}})
	r.Register("b", &fakeHandler{deps: []string{"a"}})
	r.Finalize()

	ha, _ := r.Get("a")
	hb, _ := r.Get("b")
	assert.True(t, ha.IsAsync())
	assert.True(t, hb.IsAsync())
}
