package graph

import "math/rand/v2"

// Random returns an Erdos-Renyi graph on vertices 0..n-1 where every pair is
// connected independently with probability p. See [Graph.Generate].
func Random(n int, p float64, rng *rand.Rand) *Graph {
	g := New()
	g.Generate(n, p, rng)
	return g
}

// Generate adds vertices 0..n-1 (existing ids are kept) and then, for every
// pair u > v that is not already connected, adds the edge with probability p.
// p <= 0 adds no edges and p >= 1 yields a complete graph.
//
// Randomness is drawn only from rng, so a seeded rng reproduces the graph.
func (g *Graph) Generate(n int, p float64, rng *rand.Rand) {
	for i := range n {
		g.AddVertex(i)
	}
	vs := g.Vertices()
	for _, v := range vs {
		for _, u := range vs {
			if u > v && !g.connected(u, v) && rng.Float64() < p {
				g.adj[u] = append(g.adj[u], v)
				g.adj[v] = append(g.adj[v], u)
			}
		}
	}
}
