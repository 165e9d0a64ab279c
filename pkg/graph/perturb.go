package graph

import "math/rand/v2"

// Perturbation operators push one random vertex across a structural
// threshold. Each returns whether the graph changed; a graph already in the
// target state is returned untouched rather than reported as an error.

func (g *Graph) pick(rng *rand.Rand, keep func(int) bool) (int, bool) {
	var pool []int
	for _, v := range g.order {
		if keep(v) {
			pool = append(pool, v)
		}
	}
	if len(pool) == 0 {
		return 0, false
	}
	return pool[rng.IntN(len(pool))], true
}

// IncreasePendantVertices picks a random non-pendant vertex and edits its
// neighbourhood until it has degree 1: while its degree exceeds 1 it drops
// an edge, preferring neighbours that are not pendant themselves, and an
// isolated vertex is connected to a random eligible vertex.
func (g *Graph) IncreasePendantVertices(rng *rand.Rand) bool {
	v, ok := g.pick(rng, func(u int) bool { return !g.IsPendant(u) })
	if !ok {
		return false
	}
	changed := false
	for !g.IsPendant(v) {
		var step bool
		if g.Degree(v) > 1 {
			targets := g.neighborsWhere(v, func(u int) bool { return !g.IsPendant(u) })
			if len(targets) == 0 {
				targets = g.neighborsWhere(v, func(int) bool { return true })
			}
			step = g.RemoveEdge(v, targets[rng.IntN(len(targets))]) == nil
		} else {
			step = g.connectToRandom(v, rng)
		}
		if !step {
			break
		}
		changed = true
	}
	return changed
}

// DecreasePendantVertices picks a random pendant vertex and removes its edge.
func (g *Graph) DecreasePendantVertices(rng *rand.Rand) bool {
	v, ok := g.pick(rng, g.IsPendant)
	if !ok {
		return false
	}
	return g.removeRandomEdge(v, rng)
}

// IncreaseTopsVertices picks a random vertex of degree <= k and connects it
// to random eligible vertices until its degree exceeds k or it is adjacent
// to every other vertex.
func (g *Graph) IncreaseTopsVertices(k int, rng *rand.Rand) bool {
	v, ok := g.pick(rng, func(u int) bool { return !g.IsTops(u, k) })
	if !ok {
		return false
	}
	changed := false
	for !g.IsTops(v, k) && g.Degree(v)+1 < len(g.order) {
		if !g.connectToRandom(v, rng) {
			break
		}
		changed = true
	}
	return changed
}

// DecreaseTopsVertices picks a random vertex of degree > k and removes random
// incident edges until its degree is at most k.
func (g *Graph) DecreaseTopsVertices(k int, rng *rand.Rand) bool {
	v, ok := g.pick(rng, func(u int) bool { return g.IsTops(u, k) })
	if !ok {
		return false
	}
	changed := false
	for g.IsTops(v, k) && g.Degree(v) > 0 {
		if !g.removeRandomEdge(v, rng) {
			break
		}
		changed = true
	}
	return changed
}

// IncreaseIsolatedVertices strips every edge from a random non-isolated vertex.
func (g *Graph) IncreaseIsolatedVertices(rng *rand.Rand) bool {
	v, ok := g.pick(rng, func(u int) bool { return !g.IsIsolated(u) })
	if !ok {
		return false
	}
	return g.Isolate(v) > 0
}

// DecreaseIsolatedVertices connects a random isolated vertex to a random
// eligible vertex, preferring other isolated vertices.
func (g *Graph) DecreaseIsolatedVertices(rng *rand.Rand) bool {
	v, ok := g.pick(rng, g.IsIsolated)
	if !ok {
		return false
	}
	return g.connectToRandom(v, rng)
}
