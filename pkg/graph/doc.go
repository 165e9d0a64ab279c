// Package graph provides the undirected graph used throughout vertexcover,
// together with the traversal, coverage, classification and perturbation
// operations the solvers and the HTTP API build on.
//
// # Overview
//
// A [Graph] stores non-negative integer vertices and, for each vertex, an
// ordered neighbour list. The adjacency relation is symmetric: if u lists v
// then v lists u, with matching multiplicity. [Graph.AddEdge] deliberately
// allows parallel edges; [Graph.Edges] and the coverage functions collapse
// them because they compare edges by pair identity ([Edge.Same]), never by
// numeric ordering.
//
//	g := graph.New()
//	g.AddVertex(0)
//	g.AddVertex(1)
//	if err := g.AddEdge(0, 1); err != nil {
//	    return err
//	}
//
// Operations that reference a missing vertex, or [Graph.RemoveEdge] on a
// missing edge, return a [PreconditionError] and leave the graph unchanged.
//
// # Randomness
//
// Every randomized operation takes a *rand.Rand from math/rand/v2. Passing a
// seeded generator makes [Random], the connectivity repairs and the
// perturbation operators reproducible:
//
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	g := graph.Random(10, 0.3, rng)
//
// # Coverage
//
// [Graph.VertexCover] walks outward from a vertex up to a hop limit and
// returns the [EdgeSet] it reaches. At depth 1 this is the vertex's incident
// edges, which is what [Graph.Degree], [Graph.IsPendant] and friends use.
//
// # Kernelization Classes
//
// [Graph.PerformKernelization] splits vertices into isolated (degree 0),
// pendant (degree 1) and tops (degree > k) sets. The reduction itself lives
// in the cover package.
//
// # Perturbation
//
// The Increase*/Decrease* operators pick a random vertex and edit its
// neighbourhood until it crosses the pendant, tops or isolated threshold.
// When no vertex qualifies they return false and change nothing.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Clone a graph before
// handing it to another goroutine.
package graph
