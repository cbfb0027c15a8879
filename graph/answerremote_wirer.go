//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

// AnswerRemoteWirer wires ANSWER_REMOTE pseudo-nodes (spec §4.3): these
// represent an answer left behind by a different step, loaded rather
// than computed within this request, so the pseudo-node has no producer
// edges at all — only consumers, reading ["answers", "remote", <step>,
// <field>].
//
// Node props read from the ANSWER_REMOTE node:
//
//	step  string — the owning step id
//	field string — the field code within that step
type AnswerRemoteWirer struct{}

// Kind implements Wirer.
func (AnswerRemoteWirer) Kind() NodeType { return NodeAnswerRemote }

// Wire implements Wirer.
func (w AnswerRemoteWirer) Wire(nodes *Registry, dg *DependencyGraph) {
	for _, ar := range nodes.FindByType(NodeAnswerRemote) {
		w.wireOne(nodes, dg, ar)
	}
}

// WireNodes implements Wirer.
func (w AnswerRemoteWirer) WireNodes(nodes *Registry, dg *DependencyGraph, ids []string) {
	for _, ar := range nodes.FindByType(NodeAnswerRemote) {
		if !containsID(ids, ar.ID) {
			continue
		}
		w.wireOne(nodes, dg, ar)
	}
	for _, id := range ids {
		n, ok := nodes.Get(id)
		if !ok || n.Type != NodeReference {
			continue
		}
		w.wireReference(nodes, dg, n)
	}
}

func (w AnswerRemoteWirer) wireOne(nodes *Registry, dg *DependencyGraph, ar *Node) {
	step, ok1 := Prop[string](ar, "step")
	field, ok2 := Prop[string](ar, "field")
	if !ok1 || !ok2 {
		return
	}
	for _, ref := range referenceNodes(nodes, "answers", "remote", step, field) {
		_ = dg.AddEdge(ar.ID, ref.ID, EdgeDataFlow, nil)
	}
}

func (w AnswerRemoteWirer) wireReference(nodes *Registry, dg *DependencyGraph, ref *Node) {
	path := referencePath(ref)
	if len(path) < 4 || path[0] != "answers" || path[1] != "remote" {
		return
	}
	for _, ar := range nodes.FindByType(NodeAnswerRemote) {
		step, ok1 := Prop[string](ar, "step")
		field, ok2 := Prop[string](ar, "field")
		if ok1 && ok2 && step == path[2] && field == path[3] {
			_ = dg.AddEdge(ar.ID, ref.ID, EdgeDataFlow, nil)
		}
	}
}
