//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

// DataWirer wires DATA pseudo-nodes (spec §4.3): ambient, request-scoped
// values (feature flags, journey metadata) supplied by the host
// application rather than computed. No producers, consumer edges to
// references reading ["data", <key>].
type DataWirer struct{}

// Kind implements Wirer.
func (DataWirer) Kind() NodeType { return NodeData }

// Wire implements Wirer.
func (w DataWirer) Wire(nodes *Registry, dg *DependencyGraph) {
	for _, dn := range nodes.FindByType(NodeData) {
		w.wireOne(nodes, dg, dn)
	}
}

// WireNodes implements Wirer.
func (w DataWirer) WireNodes(nodes *Registry, dg *DependencyGraph, ids []string) {
	for _, dn := range nodes.FindByType(NodeData) {
		if !containsID(ids, dn.ID) {
			continue
		}
		w.wireOne(nodes, dg, dn)
	}
	for _, id := range ids {
		n, ok := nodes.Get(id)
		if !ok || n.Type != NodeReference {
			continue
		}
		w.wireReference(nodes, dg, n)
	}
}

func (w DataWirer) wireOne(nodes *Registry, dg *DependencyGraph, dn *Node) {
	key, ok := Prop[string](dn, "key")
	if !ok {
		return
	}
	for _, ref := range referenceNodes(nodes, "data", key) {
		_ = dg.AddEdge(dn.ID, ref.ID, EdgeDataFlow, nil)
	}
}

func (w DataWirer) wireReference(nodes *Registry, dg *DependencyGraph, ref *Node) {
	path := referencePath(ref)
	if len(path) < 2 || path[0] != "data" {
		return
	}
	for _, dn := range nodes.FindByType(NodeData) {
		if key, ok := Prop[string](dn, "key"); ok && key == path[1] {
			_ = dg.AddEdge(dn.ID, ref.ID, EdgeDataFlow, nil)
		}
	}
}
