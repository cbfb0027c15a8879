//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

// ParamsWirer wires PARAMS pseudo-nodes (spec §4.3): a PARAMS node has no
// producers — its value always comes from the route — only consumer
// edges to references whose path is ["params", <name>].
type ParamsWirer struct{}

// Kind implements Wirer.
func (ParamsWirer) Kind() NodeType { return NodeParams }

// Wire implements Wirer.
func (w ParamsWirer) Wire(nodes *Registry, dg *DependencyGraph) {
	for _, pn := range nodes.FindByType(NodeParams) {
		w.wireOne(nodes, dg, pn)
	}
}

// WireNodes implements Wirer.
func (w ParamsWirer) WireNodes(nodes *Registry, dg *DependencyGraph, ids []string) {
	for _, pn := range nodes.FindByType(NodeParams) {
		if !containsID(ids, pn.ID) {
			continue
		}
		w.wireOne(nodes, dg, pn)
	}
	for _, id := range ids {
		n, ok := nodes.Get(id)
		if !ok || n.Type != NodeReference {
			continue
		}
		w.wireReference(nodes, dg, n)
	}
}

func (w ParamsWirer) wireOne(nodes *Registry, dg *DependencyGraph, pn *Node) {
	name, ok := Prop[string](pn, "name")
	if !ok {
		return
	}
	for _, ref := range referenceNodes(nodes, "params", name) {
		_ = dg.AddEdge(pn.ID, ref.ID, EdgeDataFlow, nil)
	}
}

func (w ParamsWirer) wireReference(nodes *Registry, dg *DependencyGraph, ref *Node) {
	path := referencePath(ref)
	if len(path) < 2 || path[0] != "params" {
		return
	}
	for _, pn := range nodes.FindByType(NodeParams) {
		if name, ok := Prop[string](pn, "name"); ok && name == path[1] {
			_ = dg.AddEdge(pn.ID, ref.ID, EdgeDataFlow, nil)
		}
	}
}
