package cover

import (
	"math/rand/v2"

	"github.com/matzehuels/vertexcover/pkg/graph"
)

// MatchingApprox returns both endpoints of a maximal matching built over g's
// edges in random order. The result is a cover at most twice the minimum
// size. A nil rng keeps edge order.
func MatchingApprox(g *graph.Graph, rng *rand.Rand) []int {
	edges := g.Edges()
	if rng != nil {
		rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	}
	in := make(map[int]bool)
	out := []int{}
	for _, e := range edges {
		if in[e.U] || in[e.V] {
			continue
		}
		in[e.U], in[e.V] = true, true
		out = append(out, e.U, e.V)
	}
	return out
}

// LeafCover repeatedly takes the neighbour of a pendant vertex and removes
// its edges, falling back to the highest-degree vertex when no pendant is
// left. On forests every step is optimal, so the result is a minimum cover.
// g is not modified.
func LeafCover(g *graph.Graph) []int {
	work := g.Clone()
	out := []int{}
	for work.EdgeCount() > 0 {
		v, ok := leafParent(work)
		if !ok {
			v, _ = work.HighestDegreeVertex()
		}
		work.Isolate(v)
		out = append(out, v)
	}
	return out
}

func leafParent(g *graph.Graph) (int, bool) {
	for _, v := range g.Vertices() {
		if g.IsPendant(v) {
			return g.Neighbors(v)[0], true
		}
	}
	return 0, false
}
