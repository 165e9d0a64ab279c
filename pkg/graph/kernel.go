package graph

// Classes partitions vertices by degree for kernelization. Sets are computed
// independently: for k >= 1 they are pairwise disjoint, for k <= 0 the tops
// set also contains the pendant (and for k < 0 the isolated) vertices.
type Classes struct {
	Isolated []int `json:"isolated"` // degree 0
	Pendant  []int `json:"pendant"`  // degree 1
	Tops     []int `json:"tops"`     // degree > k
}

// PerformKernelization classifies every vertex as isolated, pendant and/or
// tops relative to k. The graph is not modified. Each list follows
// [Graph.Vertices] order and is non-nil.
func (g *Graph) PerformKernelization(k int) Classes {
	c := Classes{Isolated: []int{}, Pendant: []int{}, Tops: []int{}}
	for _, v := range g.order {
		d := g.Degree(v)
		if d == 0 {
			c.Isolated = append(c.Isolated, v)
		}
		if d == 1 {
			c.Pendant = append(c.Pendant, v)
		}
		if d > k {
			c.Tops = append(c.Tops, v)
		}
	}
	return c
}

// Isolate removes every edge incident to v and returns how many neighbour
// entries were dropped. Missing vertices are ignored.
func (g *Graph) Isolate(v int) int {
	removed := 0
	for len(g.adj[v]) > 0 {
		if g.RemoveEdge(v, g.adj[v][0]) != nil {
			break
		}
		removed++
	}
	return removed
}
