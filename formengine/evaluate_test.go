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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-form-engine/graph"
	"trpc.group/trpc-go/trpc-form-engine/handlers"
)

// buildEmailForm assembles a single-field form: POST["email"] flows
// through an ANSWER_LOCAL pseudo-node (with HTML sanitisation) into a
// reference node that a renderer would read.
func buildEmailForm(t *testing.T) (*CompiledForm, string) {
	t.Helper()
	b := NewBuilder()

	b.AddField("compile_field:email", map[string]any{"sanitize": true})
	b.AddPseudoNode("compile_pseudo:post:email", graph.NodePost, map[string]any{"field": "email"}, nil)
	b.AddPseudoNode("compile_pseudo:al:email", graph.NodeAnswerLocal, map[string]any{"field": "email"},
		&handlers.AnswerLocalHandler{
			ID:          "compile_pseudo:al:email",
			Field:       "email",
			FieldNodeID: "compile_field:email",
			PostNodeID:  "compile_pseudo:post:email",
		})
	b.AddExpression("compile_ast:email_ref", graph.NodeReference,
		map[string]any{"path": []string{"answers", "email"}},
		&handlers.ReferenceHandler{ID: "compile_ast:email_ref", Path: []string{"answers", "email"}, TargetNodeID: "compile_pseudo:al:email"})

	form, err := b.Compile()
	require.NoError(t, err)
	return form, "compile_ast:email_ref"
}

func TestEvaluateResolvesAnswerLocalThroughReference(t *testing.T) {
	form, entryID := buildEmailForm(t)

	req := &graph.Request{
		Method: graph.MethodPOST,
		Post:   map[string]any{"email": "<b>a@b.com</b>"},
	}

	rendered, err := Evaluate(context.Background(), form, entryID, req, nil, true)
	require.NoError(t, err)

	val, ok := rendered.Value(entryID)
	require.True(t, ok)
	assert.Equal(t, "&lt;b&gt;a@b.com&lt;/b&gt;", val)

	history, ok := rendered.Answers["email"]
	require.True(t, ok)
	sources := make([]graph.Source, len(history.Mutations))
	for i, m := range history.Mutations {
		sources[i] = m.Source
	}
	assert.Equal(t, []graph.Source{graph.SourcePost, graph.SourceSanitized}, sources)
	assert.NotEmpty(t, rendered.Trace, "tracing was requested")
}

func TestEvaluateOmitsTraceWhenNotRequested(t *testing.T) {
	form, entryID := buildEmailForm(t)
	req := &graph.Request{Method: graph.MethodPOST, Post: map[string]any{"email": "plain"}}

	rendered, err := Evaluate(context.Background(), form, entryID, req, nil, false)
	require.NoError(t, err)
	assert.Nil(t, rendered.Trace)
}

func TestEvaluateSurfacesLookupFailure(t *testing.T) {
	form, _ := buildEmailForm(t)
	req := &graph.Request{Method: graph.MethodGET}

	rendered, err := Evaluate(context.Background(), form, "no-such-node", req, nil, false)
	require.NoError(t, err)
	val, ok := rendered.Value("no-such-node")
	assert.False(t, ok)
	assert.Nil(t, val)
	require.Contains(t, rendered.Values, "no-such-node")
	assert.Equal(t, graph.ErrorLookupFailed, rendered.Values["no-such-node"].Err.Kind)
}
