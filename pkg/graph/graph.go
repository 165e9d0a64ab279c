package graph

import (
	"fmt"
	"slices"
)

// Graph is an undirected graph stored as symmetric adjacency lists.
//
// Vertices are non-negative integers kept in insertion order so that every
// traversal, and therefore every seeded random choice, is reproducible.
// Each vertex owns an ordered neighbour list; if v appears in u's list then
// u appears in v's list the same number of times. Repeated entries are
// parallel edges: [Graph.AddEdge] permits them, while [Graph.Edges] and the
// coverage functions collapse them by pair identity.
//
// The zero value is not usable - use [New] to create a graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	order []int
	adj   map[int][]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[int][]int)}
}

// FromAdjacency builds a graph from vertices in the given order and their
// neighbour lists, which are copied. Vertices missing from adj get an empty
// list. The result is checked with [Graph.Validate].
func FromAdjacency(order []int, adj map[int][]int) (*Graph, error) {
	g := New()
	for _, u := range order {
		g.AddVertex(u)
	}
	for _, u := range g.order {
		g.adj[u] = append(g.adj[u], adj[u]...)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Vertices returns every vertex id in insertion order. The slice is a copy.
func (g *Graph) Vertices() []int { return slices.Clone(g.order) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// HasVertex reports whether u is in the graph.
func (g *Graph) HasVertex(u int) bool {
	_, ok := g.adj[u]
	return ok
}

// Neighbors returns u's adjacency list, including repeated entries for
// parallel edges. Returns nil if u does not exist. The slice is a copy.
func (g *Graph) Neighbors(u int) []int { return slices.Clone(g.adj[u]) }

// Edges returns each undirected edge exactly once, oriented as first seen
// while walking vertices in insertion order. Parallel edges are reported once.
func (g *Graph) Edges() []Edge {
	var set EdgeSet
	for _, u := range g.order {
		for _, v := range g.adj[u] {
			set.Add(Edge{U: u, V: v})
		}
	}
	return set.Edges()
}

// EdgeCount returns len(g.Edges()).
func (g *Graph) EdgeCount() int { return len(g.Edges()) }

// AddVertex adds u with an empty neighbour list. It is a no-op if u exists.
func (g *Graph) AddVertex(u int) {
	if _, ok := g.adj[u]; ok {
		return
	}
	g.adj[u] = []int{}
	g.order = append(g.order, u)
}

// AddEdge connects u and v by appending v to u's list and u to v's list.
// Calling it twice for the same pair creates a parallel edge.
//
// Returns a [PreconditionError] wrapping [ErrUnknownVertex] unless both
// vertices exist.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.require("add edge", u, v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// RemoveEdge removes one occurrence of v from u's list and one occurrence of
// u from v's list.
//
// Returns a [PreconditionError] wrapping [ErrUnknownVertex] if either vertex
// is missing, or wrapping [ErrEdgeNotFound] if the edge does not exist. In
// both cases the graph is unchanged.
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.require("remove edge", u, v); err != nil {
		return err
	}
	i := slices.Index(g.adj[u], v)
	j := slices.Index(g.adj[v], u)
	if i < 0 || j < 0 {
		return &PreconditionError{Op: "remove edge", U: u, V: v, Err: ErrEdgeNotFound}
	}
	g.adj[u] = slices.Delete(g.adj[u], i, i+1)
	if j = slices.Index(g.adj[v], u); j >= 0 {
		g.adj[v] = slices.Delete(g.adj[v], j, j+1)
	}
	return nil
}

// IsConnected reports whether v appears in u's neighbour list.
// Returns a [PreconditionError] unless both vertices exist.
func (g *Graph) IsConnected(u, v int) (bool, error) {
	if err := g.require("is connected", u, v); err != nil {
		return false, err
	}
	return slices.Contains(g.adj[u], v), nil
}

// connected is IsConnected for callers that already know both vertices exist.
func (g *Graph) connected(u, v int) bool { return slices.Contains(g.adj[u], v) }

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		order: slices.Clone(g.order),
		adj:   make(map[int][]int, len(g.adj)),
	}
	for u, ns := range g.adj {
		c.adj[u] = slices.Clone(ns)
	}
	return c
}

// Validate checks the invariants that externally supplied adjacency data may
// violate: non-negative ids, every neighbour is a vertex, no self loops, and
// symmetric multiplicity. Graphs built only through this package's mutators
// always validate.
func (g *Graph) Validate() error {
	for _, u := range g.order {
		if u < 0 {
			return fmt.Errorf("vertex %d: %w", u, ErrNegativeVertex)
		}
		counts := make(map[int]int)
		for _, v := range g.adj[u] {
			if v == u {
				return fmt.Errorf("vertex %d: %w", u, ErrSelfLoop)
			}
			if _, ok := g.adj[v]; !ok {
				return &PreconditionError{Op: "validate", U: u, V: v, Err: ErrUnknownVertex}
			}
			counts[v]++
		}
		for v, n := range counts {
			back := 0
			for _, w := range g.adj[v] {
				if w == u {
					back++
				}
			}
			if back != n {
				return fmt.Errorf("edge (%d, %d): %w", u, v, ErrAsymmetric)
			}
		}
	}
	return nil
}

// AdjacencyMatrix returns the |V|x|V| matrix whose rows and columns follow
// [Graph.Vertices] order. Entry [i][j] counts the edges between the i-th and
// j-th vertex, so parallel edges produce values above one.
func (g *Graph) AdjacencyMatrix() [][]int {
	pos := make(map[int]int, len(g.order))
	for i, u := range g.order {
		pos[u] = i
	}
	m := make([][]int, len(g.order))
	for i, u := range g.order {
		m[i] = make([]int, len(g.order))
		for _, v := range g.adj[u] {
			m[i][pos[v]]++
		}
	}
	return m
}

func (g *Graph) require(op string, u, v int) error {
	if _, ok := g.adj[u]; !ok {
		return &PreconditionError{Op: op, U: u, V: v, Err: ErrUnknownVertex}
	}
	if _, ok := g.adj[v]; !ok {
		return &PreconditionError{Op: op, U: u, V: v, Err: ErrUnknownVertex}
	}
	return nil
}
