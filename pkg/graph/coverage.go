package graph

// VertexCover returns the edges reachable from v within depth hops. Every
// hop records the traversed edge unless it is already covered (in either
// orientation) and continues from the far endpoint, so at depth 1 the result
// is exactly v's incident edges. Larger depths let a single vertex claim
// edges further away.
//
// Traversal order matches a recursive depth-first walk over the adjacency
// lists, implemented with an explicit stack. depth <= 0 covers nothing.
//
// Returns a [PreconditionError] if v does not exist.
func (g *Graph) VertexCover(v, depth int) (EdgeSet, error) {
	if !g.HasVertex(v) {
		return EdgeSet{}, &PreconditionError{Op: "vertex cover", U: v, V: v, Err: ErrUnknownVertex}
	}
	return g.coverage(v, depth), nil
}

func (g *Graph) coverage(v, depth int) EdgeSet {
	type frame struct {
		v, hop, next int
	}
	var covered EdgeSet
	stack := []frame{{v: v}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		ns := g.adj[top.v]
		if top.hop >= depth || top.next >= len(ns) {
			stack = stack[:len(stack)-1]
			continue
		}
		u := ns[top.next]
		top.next++
		if covered.Add(Edge{U: top.v, V: u}) {
			stack = append(stack, frame{v: u, hop: top.hop + 1})
		}
	}
	return covered
}

// Degree returns the number of distinct edges incident to v, which equals
// len(Neighbors(v)) when v has no parallel edges. Missing vertices have
// degree 0.
func (g *Graph) Degree(v int) int { return g.DegreeAt(v, 1) }

// DegreeAt returns the size of [Graph.VertexCover] for v at the given depth.
func (g *Graph) DegreeAt(v, depth int) int {
	if !g.HasVertex(v) {
		return 0
	}
	s := g.coverage(v, depth)
	return s.Len()
}

// IsIsolated reports whether v has no edges.
func (g *Graph) IsIsolated(v int) bool { return g.Degree(v) == 0 }

// IsPendant reports whether v has exactly one edge.
func (g *Graph) IsPendant(v int) bool { return g.Degree(v) == 1 }

// IsTops reports whether v has more than k edges.
func (g *Graph) IsTops(v, k int) bool { return g.Degree(v) > k }

// HighestDegreeVertex returns a vertex with the longest neighbour list among
// vertices, or among all vertices when none are given. Ties go to the last
// vertex encountered. The boolean is false when there is nothing to choose
// from.
func (g *Graph) HighestDegreeVertex(vertices ...int) (int, bool) {
	if len(vertices) == 0 {
		vertices = g.order
	}
	best, bestLen, found := 0, -1, false
	for _, v := range vertices {
		if n := len(g.adj[v]); n >= bestLen {
			best, bestLen, found = v, n, true
		}
	}
	return best, found
}
