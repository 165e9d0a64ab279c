package graph

import "fmt"

// Edge is an unordered pair of vertex ids. (u, v) and (v, u) denote the same
// edge; use [Edge.Same] rather than == when comparing.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge) Reverse() Edge { return Edge{U: e.V, V: e.U} }

// Same reports whether e and o connect the same pair of vertices.
func (e Edge) Same(o Edge) bool { return e == o || e == o.Reverse() }

// Has reports whether v is an endpoint of e.
func (e Edge) Has(v int) bool { return e.U == v || e.V == v }

// String returns "(u, v)".
func (e Edge) String() string { return fmt.Sprintf("(%d, %d)", e.U, e.V) }

// EdgeSet is an insertion-ordered set of undirected edges. Membership checks
// both orientations, so adding (v, u) after (u, v) is a no-op.
//
// The zero value is ready to use.
type EdgeSet struct {
	index map[Edge]struct{}
	list  []Edge
}

// NewEdgeSet returns a set holding edges, in order, without duplicates.
func NewEdgeSet(edges ...Edge) EdgeSet {
	var s EdgeSet
	for _, e := range edges {
		s.Add(e)
	}
	return s
}

// Contains reports whether e (in either orientation) is in the set.
func (s *EdgeSet) Contains(e Edge) bool {
	if s.index == nil {
		return false
	}
	if _, ok := s.index[e]; ok {
		return true
	}
	_, ok := s.index[e.Reverse()]
	return ok
}

// Add inserts e unless it is already present and reports whether it was new.
func (s *EdgeSet) Add(e Edge) bool {
	if s.Contains(e) {
		return false
	}
	if s.index == nil {
		s.index = make(map[Edge]struct{})
	}
	s.index[e] = struct{}{}
	s.list = append(s.list, e)
	return true
}

// Merge adds every edge of o that s does not yet contain and returns the
// number of edges added.
func (s *EdgeSet) Merge(o EdgeSet) int {
	added := 0
	for _, e := range o.list {
		if s.Add(e) {
			added++
		}
	}
	return added
}

// Len returns the number of distinct edges.
func (s *EdgeSet) Len() int { return len(s.list) }

// Edges returns the edges in insertion order. The slice is a copy.
func (s *EdgeSet) Edges() []Edge {
	out := make([]Edge, len(s.list))
	copy(out, s.list)
	return out
}

// Clone returns an independent copy of the set.
func (s *EdgeSet) Clone() EdgeSet {
	c := EdgeSet{
		index: make(map[Edge]struct{}, len(s.list)),
		list:  make([]Edge, len(s.list)),
	}
	copy(c.list, s.list)
	for _, e := range s.list {
		c.index[e] = struct{}{}
	}
	return c
}
