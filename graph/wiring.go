//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

import "trpc.group/trpc-go/trpc-form-engine/log"

// Wirer converts references to a single pseudo-node kind into explicit
// dependency edges (spec §4.3). Full wiring (Wire) walks the whole
// registry; scoped wiring (WireNodes) is used for runtime-node expansion
// and must only touch the ids it is given, in either direction
// (producer or consumer), without duplicating edges already present.
type Wirer interface {
	// Kind is the pseudo-node NodeType this wirer handles.
	Kind() NodeType
	// Wire adds every producer and consumer edge for every pseudo-node of
	// this kind found in nodes.
	Wire(nodes *Registry, dg *DependencyGraph)
	// WireNodes scopes wiring to the given node ids: a newly-added
	// pseudo-node of this kind, or a newly-added reference that might
	// consume an existing pseudo-node of this kind, or both.
	WireNodes(nodes *Registry, dg *DependencyGraph, ids []string)
}

// Wiring runs every registered Wirer over a graph.
type Wiring struct {
	wirers []Wirer
}

// NewWiring builds a Wiring phase from one wirer per pseudo-node kind.
func NewWiring(wirers ...Wirer) *Wiring {
	return &Wiring{wirers: wirers}
}

// Wire runs every wirer's full pass. Calling it twice must produce the
// same edge set as calling it once (spec §8 idempotence law); this holds
// because DependencyGraph.AddEdge is itself idempotent on (src, dst, kind).
func (w *Wiring) Wire(nodes *Registry, dg *DependencyGraph) {
	for _, wr := range w.wirers {
		before := dg.EdgeCount()
		wr.Wire(nodes, dg)
		log.Debugf("wiring: %s added %d edges", wr.Kind(), dg.EdgeCount()-before)
	}
}

// WireNodes runs every wirer's scoped pass over the given new ids. Used
// when a CollectionHandler expands runtime nodes mid-request; it must
// remain surgical (spec §9 "Runtime-node expansion").
func (w *Wiring) WireNodes(nodes *Registry, dg *DependencyGraph, ids []string) {
	for _, wr := range w.wirers {
		wr.WireNodes(nodes, dg, ids)
	}
}

// referencePath returns a reference node's path, or nil if n is not a
// reference node or has no path property.
func referencePath(n *Node) []string {
	if n.Type != NodeReference {
		return nil
	}
	path, _ := Prop[[]string](n, "path")
	return path
}

// referenceNodes returns every reference node in the registry whose path
// begins with prefix, in insertion order (spec §4.3/§8 "findReferenceNodes").
func referenceNodes(nodes *Registry, prefix ...string) []*Node {
	var out []*Node
	for _, n := range nodes.FindByType(NodeReference) {
		path := referencePath(n)
		if pathHasPrefix(path, prefix) {
			out = append(out, n)
		}
	}
	return out
}

func pathHasPrefix(path, prefix []string) bool {
	if len(path) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if path[i] != p {
			return false
		}
	}
	return true
}

func containsID(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
