//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

// PostWirer wires POST pseudo-nodes (spec §4.3): no producers — the
// value comes from the request body — consumer edges to every reference
// reading ["post", <field>] and to the ANSWER_LOCAL pseudo-node for the
// same field, since AnswerLocalHandler reads the POST value on a POST
// request (spec §4.6).
type PostWirer struct{}

// Kind implements Wirer.
func (PostWirer) Kind() NodeType { return NodePost }

// Wire implements Wirer.
func (w PostWirer) Wire(nodes *Registry, dg *DependencyGraph) {
	for _, pn := range nodes.FindByType(NodePost) {
		w.wireOne(nodes, dg, pn)
	}
}

// WireNodes implements Wirer.
func (w PostWirer) WireNodes(nodes *Registry, dg *DependencyGraph, ids []string) {
	for _, pn := range nodes.FindByType(NodePost) {
		if !containsID(ids, pn.ID) {
			continue
		}
		w.wireOne(nodes, dg, pn)
	}
	for _, id := range ids {
		n, ok := nodes.Get(id)
		if !ok {
			continue
		}
		switch n.Type {
		case NodeReference:
			w.wireReference(nodes, dg, n)
		case NodeAnswerLocal:
			w.wireAnswerLocal(nodes, dg, n)
		}
	}
}

func (w PostWirer) wireOne(nodes *Registry, dg *DependencyGraph, pn *Node) {
	field, ok := Prop[string](pn, "field")
	if !ok {
		return
	}
	for _, ref := range referenceNodes(nodes, "post", field) {
		_ = dg.AddEdge(pn.ID, ref.ID, EdgeDataFlow, nil)
	}
	for _, al := range nodes.FindByType(NodeAnswerLocal) {
		if alField, ok := Prop[string](al, "field"); ok && alField == field {
			_ = dg.AddEdge(pn.ID, al.ID, EdgeDataFlow, nil)
		}
	}
}

func (w PostWirer) wireReference(nodes *Registry, dg *DependencyGraph, ref *Node) {
	path := referencePath(ref)
	if len(path) < 2 || path[0] != "post" {
		return
	}
	for _, pn := range nodes.FindByType(NodePost) {
		if field, ok := Prop[string](pn, "field"); ok && field == path[1] {
			_ = dg.AddEdge(pn.ID, ref.ID, EdgeDataFlow, nil)
		}
	}
}

func (w PostWirer) wireAnswerLocal(nodes *Registry, dg *DependencyGraph, al *Node) {
	field, ok := Prop[string](al, "field")
	if !ok {
		return
	}
	for _, pn := range nodes.FindByType(NodePost) {
		if pf, ok := Prop[string](pn, "field"); ok && pf == field {
			_ = dg.AddEdge(pn.ID, al.ID, EdgeDataFlow, nil)
		}
	}
}
