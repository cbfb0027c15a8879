//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package graph

import "sync"

// EdgeKind is the kind of relationship a dependency edge represents.
type EdgeKind string

const (
	// EdgeDataFlow marks a value produced by the source consumed by the target.
	EdgeDataFlow EdgeKind = "data_flow"
	// EdgeControl marks ordering without a value (e.g. onLoad precedes a read).
	EdgeControl EdgeKind = "control"
	// EdgeTransition marks a load/action/access lifecycle relationship.
	EdgeTransition EdgeKind = "transition"
)

// Edge is a single producer -> consumer dependency.
type Edge struct {
	Producer string
	Consumer string
	Kind     EdgeKind
	Metadata map[string]any
}

type edgeKey struct {
	producer string
	consumer string
	kind     EdgeKind
}

// DependencyGraph holds directed edges between node ids, with producer and
// consumer adjacency indexes so wiring and diagnostics can find either
// side without scanning the whole edge set. It is read-only during
// evaluation (spec §5); the only writer during a request is scoped
// runtime-node wiring (WireNodes).
type DependencyGraph struct {
	mu sync.RWMutex

	nodeIDs map[string]bool
	edges   map[edgeKey]*Edge
	order   []edgeKey

	byProducer map[string][]edgeKey
	byConsumer map[string][]edgeKey
}

// NewDependencyGraph creates an empty dependency graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodeIDs:    make(map[string]bool),
		edges:      make(map[edgeKey]*Edge),
		byProducer: make(map[string][]edgeKey),
		byConsumer: make(map[string][]edgeKey),
	}
}

// AddNode registers a node id as participating in the graph, even before
// any edge touches it. This lets isolated nodes (no producers, no
// consumers) still be discoverable.
func (g *DependencyGraph) AddNode(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodeIDs[id] = true
}

// AddEdge adds a dependency edge. It is idempotent on (src, dst, kind): a
// repeat call with the same triple merges metadata into the existing edge
// rather than adding a duplicate. Self-loops are rejected per spec §3.
func (g *DependencyGraph) AddEdge(src, dst string, kind EdgeKind, metadata map[string]any) error {
	if src == dst {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodeIDs[src] = true
	g.nodeIDs[dst] = true

	key := edgeKey{producer: src, consumer: dst, kind: kind}
	if existing, ok := g.edges[key]; ok {
		for k, v := range metadata {
			if existing.Metadata == nil {
				existing.Metadata = make(map[string]any)
			}
			existing.Metadata[k] = v
		}
		return nil
	}

	e := &Edge{Producer: src, Consumer: dst, Kind: kind, Metadata: metadata}
	g.edges[key] = e
	g.order = append(g.order, key)
	g.byProducer[src] = append(g.byProducer[src], key)
	g.byConsumer[dst] = append(g.byConsumer[dst], key)
	return nil
}

// EdgesFrom returns, in insertion order, every edge of the given kind
// whose producer is id.
func (g *DependencyGraph) EdgesFrom(id string, kind EdgeKind) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.filterLocked(g.byProducer[id], kind)
}

// EdgesTo returns, in insertion order, every edge of the given kind whose
// consumer is id.
func (g *DependencyGraph) EdgesTo(id string, kind EdgeKind) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.filterLocked(g.byConsumer[id], kind)
}

// filterLocked must be called with g.mu held (for reading).
func (g *DependencyGraph) filterLocked(keys []edgeKey, kind EdgeKind) []*Edge {
	var out []*Edge
	for _, k := range keys {
		if k.kind == kind {
			out = append(out, g.edges[k])
		}
	}
	return out
}

// EdgeCount returns the total number of distinct (producer, consumer,
// kind) edges in the graph — used by the wiring-completeness property
// test in spec §8.
func (g *DependencyGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}
