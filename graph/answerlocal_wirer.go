//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

// AnswerLocalWirer wires ANSWER_LOCAL pseudo-nodes (spec §4.3/§4.6).
// Producers are whatever can change the field's value: its POST
// pseudo-node (wired separately by PostWirer, since that edge is keyed
// off the POST node), its defaultValue node, its formatter chain, its
// dependent-clearing expression, and any action-effect node that targets
// it. Consumers are every reference reading ["answers", <field>].
//
// Node props read from the ANSWER_LOCAL node itself:
//
//	field            string   — the field code this pseudo-node answers for
//	defaultNodeID    string   — optional, the defaultValue AST node
//	formatterNodeIDs []string — optional, in application order
//	dependentNodeID  string   — optional, the dependent boolean expression
//	actionNodeIDs    []string — optional, action-effect nodes that may clear it
type AnswerLocalWirer struct{}

// Kind implements Wirer.
func (AnswerLocalWirer) Kind() NodeType { return NodeAnswerLocal }

// Wire implements Wirer.
func (w AnswerLocalWirer) Wire(nodes *Registry, dg *DependencyGraph) {
	for _, al := range nodes.FindByType(NodeAnswerLocal) {
		w.wireOne(nodes, dg, al)
	}
}

// WireNodes implements Wirer.
func (w AnswerLocalWirer) WireNodes(nodes *Registry, dg *DependencyGraph, ids []string) {
	for _, al := range nodes.FindByType(NodeAnswerLocal) {
		if !containsID(ids, al.ID) {
			continue
		}
		w.wireOne(nodes, dg, al)
	}
	for _, id := range ids {
		n, ok := nodes.Get(id)
		if !ok || n.Type != NodeReference {
			continue
		}
		w.wireReference(nodes, dg, n)
	}
}

func (w AnswerLocalWirer) wireOne(nodes *Registry, dg *DependencyGraph, al *Node) {
	if def, ok := Prop[string](al, "defaultNodeID"); ok && def != "" {
		_ = dg.AddEdge(def, al.ID, EdgeDataFlow, nil)
	}
	if formatters, ok := Prop[[]string](al, "formatterNodeIDs"); ok {
		for _, f := range formatters {
			_ = dg.AddEdge(f, al.ID, EdgeDataFlow, nil)
		}
	}
	if dep, ok := Prop[string](al, "dependentNodeID"); ok && dep != "" {
		_ = dg.AddEdge(dep, al.ID, EdgeControl, nil)
	}
	if actions, ok := Prop[[]string](al, "actionNodeIDs"); ok {
		for _, a := range actions {
			_ = dg.AddEdge(a, al.ID, EdgeControl, nil)
		}
	}

	field, ok := Prop[string](al, "field")
	if !ok {
		return
	}
	for _, ref := range referenceNodes(nodes, "answers", field) {
		_ = dg.AddEdge(al.ID, ref.ID, EdgeDataFlow, nil)
	}
}

func (w AnswerLocalWirer) wireReference(nodes *Registry, dg *DependencyGraph, ref *Node) {
	path := referencePath(ref)
	if len(path) < 2 || path[0] != "answers" {
		return
	}
	for _, al := range nodes.FindByType(NodeAnswerLocal) {
		if field, ok := Prop[string](al, "field"); ok && field == path[1] {
			_ = dg.AddEdge(al.ID, ref.ID, EdgeDataFlow, nil)
		}
	}
}
