//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Command formserver is an illustrative HTTP adapter around the form
// evaluation core: it builds a Request from an incoming HTTP request and
// calls formengine.Evaluate. It deliberately does no HTML rendering, no
// templating, and no CSRF handling — those are named out of scope and
// are the surrounding application's job, not the core's.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"trpc.group/trpc-go/trpc-form-engine/formengine"
	"trpc.group/trpc-go/trpc-form-engine/graph"
	"trpc.group/trpc-go/trpc-form-engine/handlers"
	"trpc.group/trpc-go/trpc-form-engine/log"
)

func main() {
	addr := flag.String("addr", envOr("FORMSERVER_ADDR", ":8080"), "listen address")
	flag.Parse()

	shutdownTracing := setupTracing()
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Errorf("shutdown tracing: %v", err)
		}
	}()

	form := buildDemoForm()

	r := mux.NewRouter()
	r.HandleFunc("/journeys/{journey_id}/steps/{step_id}", handleStep(form)).Methods(http.MethodGet, http.MethodPost)

	log.Infof("formserver listening on %s", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatalf("formserver: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// handleStep adapts one mux route to a single formengine.Evaluate call.
// The journey_id/step_id route parameters become Request.Params; a POST
// body is parsed as a plain form and becomes Request.Post. Rendered is
// returned as JSON — a stand-in for wherever the real template layer
// would take over.
func handleStep(form *formengine.CompiledForm) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &graph.Request{
			Method: graph.Method(r.Method),
			Params: mux.Vars(r),
			Post:   map[string]any{},
		}
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form body", http.StatusBadRequest)
				return
			}
			for key := range r.PostForm {
				values := r.PostForm[key]
				if len(values) == 1 {
					req.Post[key] = values[0]
				} else {
					req.Post[key] = values
				}
			}
		}

		rendered, err := formengine.Evaluate(r.Context(), form, "compile_ast:city_ref", req, nil, false)
		if err != nil {
			log.Errorf("evaluate step: %v", err)
			http.Error(w, "evaluation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(renderedJSON(rendered))
	}
}

type renderedNode struct {
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func renderedJSON(r formengine.Rendered) map[string]renderedNode {
	out := make(map[string]renderedNode, len(r.Values))
	for id, res := range r.Values {
		if res.IsError() {
			out[id] = renderedNode{Error: res.Err.Error()}
			continue
		}
		out[id] = renderedNode{Value: res.Value}
	}
	return out
}

// buildDemoForm wires a minimal one-field step (city, read from POST,
// exposed through a reference node) so formserver has something to serve
// without an external form-authoring surface, which is out of scope here.
func buildDemoForm() *formengine.CompiledForm {
	b := formengine.NewBuilder()

	b.AddPseudoNode("compile_pseudo:params:journey_id", graph.NodeParams, map[string]any{"name": "journey_id"}, nil)
	b.AddPseudoNode("compile_pseudo:params:step_id", graph.NodeParams, map[string]any{"name": "step_id"}, nil)

	b.AddField("compile_field:city", map[string]any{"sanitize": true})
	b.AddPseudoNode("compile_pseudo:post:city", graph.NodePost, map[string]any{"field": "city"}, nil)
	b.AddPseudoNode("compile_pseudo:al:city", graph.NodeAnswerLocal, map[string]any{"field": "city"},
		&handlers.AnswerLocalHandler{
			ID:          "compile_pseudo:al:city",
			Field:       "city",
			FieldNodeID: "compile_field:city",
			PostNodeID:  "compile_pseudo:post:city",
		})
	b.AddExpression("compile_ast:city_ref", graph.NodeReference,
		map[string]any{"path": []string{"answers", "city"}},
		&handlers.ReferenceHandler{ID: "compile_ast:city_ref", Path: []string{"answers", "city"}, TargetNodeID: "compile_pseudo:al:city"})

	return b.MustCompile()
}
