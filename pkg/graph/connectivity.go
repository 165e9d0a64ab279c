package graph

import (
	"math/rand/v2"
	"slices"
)

// FindSubGraph returns every vertex reachable from start, start included, in
// depth-first discovery order. The walk uses an explicit stack, so component
// size is limited by memory rather than call depth.
//
// Returns a [PreconditionError] if start does not exist.
func (g *Graph) FindSubGraph(start int) ([]int, error) {
	if !g.HasVertex(start) {
		return nil, &PreconditionError{Op: "find sub graph", U: start, V: start, Err: ErrUnknownVertex}
	}
	return g.reach(start), nil
}

func (g *Graph) reach(start int) []int {
	type frame struct {
		v    int
		next int
	}
	seen := map[int]bool{start: true}
	order := []int{start}
	stack := []frame{{v: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		ns := g.adj[top.v]
		if top.next >= len(ns) {
			stack = stack[:len(stack)-1]
			continue
		}
		u := ns[top.next]
		top.next++
		if seen[u] {
			continue
		}
		seen[u] = true
		order = append(order, u)
		stack = append(stack, frame{v: u})
	}
	return order
}

// Components partitions the vertices into connected components, each listed
// in discovery order, components ordered by their first vertex.
func (g *Graph) Components() [][]int {
	seen := make(map[int]bool, len(g.order))
	var comps [][]int
	for _, v := range g.order {
		if seen[v] {
			continue
		}
		comp := g.reach(v)
		for _, u := range comp {
			seen[u] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

// IsConnectedGraph reports whether the graph has at most one component.
func (g *Graph) IsConnectedGraph() bool { return len(g.Components()) <= 1 }

// ConnectAllSubGraphs joins every component to the one containing a randomly
// chosen vertex, one edge per foreign component, until the graph is
// connected. Returns the number of edges added.
func (g *Graph) ConnectAllSubGraphs(rng *rand.Rand) int {
	if len(g.order) == 0 {
		return 0
	}
	vertex := g.order[rng.IntN(len(g.order))]
	added := 0
	for {
		sub := g.reach(vertex)
		if len(sub) == len(g.order) {
			return added
		}
		if !g.bridgeFrom(sub, rng) {
			return added
		}
		added++
	}
}

// ConnectTwoSubGraphs adds a single edge from the component of a random
// vertex to the first vertex outside it. Any further components are left
// alone. Returns false if the graph was already connected.
func (g *Graph) ConnectTwoSubGraphs(rng *rand.Rand) bool {
	if len(g.order) == 0 {
		return false
	}
	vertex := g.order[rng.IntN(len(g.order))]
	return g.bridgeFrom(g.reach(vertex), rng)
}

func (g *Graph) bridgeFrom(sub []int, rng *rand.Rand) bool {
	in := make(map[int]bool, len(sub))
	for _, v := range sub {
		in[v] = true
	}
	for _, v := range g.order {
		if !in[v] {
			u := sub[rng.IntN(len(sub))]
			g.adj[u] = append(g.adj[u], v)
			g.adj[v] = append(g.adj[v], u)
			return true
		}
	}
	return false
}

// saturated reports whether u's neighbour list already has |V|-1 entries.
func (g *Graph) saturated(u int) bool { return len(g.adj[u]) >= len(g.order)-1 }

// ConnectTwoRandomVertices picks a random vertex with spare capacity, then a
// random non-neighbour that also has spare capacity, and connects them.
// Returns false when no such pair exists.
func (g *Graph) ConnectTwoRandomVertices(rng *rand.Rand) bool {
	var open []int
	for _, v := range g.order {
		if !g.saturated(v) {
			open = append(open, v)
		}
	}
	if len(open) == 0 {
		return false
	}
	v1 := open[rng.IntN(len(open))]
	var items []int
	for _, v := range open {
		if v != v1 && !g.connected(v1, v) {
			items = append(items, v)
		}
	}
	if len(items) == 0 {
		return false
	}
	v2 := items[rng.IntN(len(items))]
	g.adj[v1] = append(g.adj[v1], v2)
	g.adj[v2] = append(g.adj[v2], v1)
	return true
}

// ConnectVertexToRandom connects v to a random vertex that has spare capacity
// and is not yet adjacent to v, preferring vertices of degree zero when any
// are eligible. Returns false when no vertex is eligible.
//
// Returns a [PreconditionError] if v does not exist.
func (g *Graph) ConnectVertexToRandom(v int, rng *rand.Rand) (bool, error) {
	if !g.HasVertex(v) {
		return false, &PreconditionError{Op: "connect vertex to random", U: v, V: v, Err: ErrUnknownVertex}
	}
	return g.connectToRandom(v, rng), nil
}

func (g *Graph) connectToRandom(v int, rng *rand.Rand) bool {
	var eligible, bare []int
	for _, u := range g.order {
		if u == v || g.saturated(u) || g.connected(v, u) {
			continue
		}
		eligible = append(eligible, u)
		if len(g.adj[u]) == 0 {
			bare = append(bare, u)
		}
	}
	if len(eligible) == 0 {
		return false
	}
	pool := eligible
	if len(bare) > 0 {
		pool = bare
	}
	u := pool[rng.IntN(len(pool))]
	g.adj[v] = append(g.adj[v], u)
	g.adj[u] = append(g.adj[u], v)
	return true
}

// RemoveRandomEdge removes one random edge incident to v. Returns false if v
// has no edges.
//
// Returns a [PreconditionError] if v does not exist.
func (g *Graph) RemoveRandomEdge(v int, rng *rand.Rand) (bool, error) {
	if !g.HasVertex(v) {
		return false, &PreconditionError{Op: "remove random edge", U: v, V: v, Err: ErrUnknownVertex}
	}
	return g.removeRandomEdge(v, rng), nil
}

func (g *Graph) removeRandomEdge(v int, rng *rand.Rand) bool {
	ns := g.adj[v]
	if len(ns) == 0 {
		return false
	}
	u := ns[rng.IntN(len(ns))]
	return g.RemoveEdge(v, u) == nil
}

// neighborsWhere returns the distinct neighbours of v satisfying keep.
func (g *Graph) neighborsWhere(v int, keep func(int) bool) []int {
	var out []int
	for _, u := range g.adj[v] {
		if u != v && keep(u) && !slices.Contains(out, u) {
			out = append(out, u)
		}
	}
	return out
}
