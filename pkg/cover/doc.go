// Package cover finds vertex covers of a [graph.Graph].
//
// # Branch and Bound
//
// [Brute] and [KernelizedBrute] run the same depth-first search and differ
// only in the candidate pool: every vertex, or every vertex with at least
// one edge. The search walks an explicit stack, so its depth is limited by
// memory rather than the goroutine stack.
//
// With K set to [Unbounded] a node is accepted when its vertices cover every
// edge and it is smaller than the incumbent; nodes that cannot produce a
// smaller cover are pruned. With a non-negative K the search keeps the
// K-vertex set that covers the most edges and stops as soon as one covers
// them all. When K is at least the size of the pool every candidate is
// returned without searching.
//
// Candidates are shuffled in every frame using Options.Rand, so different
// seeds may return different covers of the same size:
//
//	res, err := cover.Brute(ctx, g, cover.Options{
//	    K:    cover.Unbounded,
//	    Rand: rand.New(rand.NewPCG(42, 42^0xdeadbeef)),
//	})
//
// Options.Depth widens what a chosen vertex is credited with: at depth 1 it
// covers its incident edges, at depth d every edge within d hops.
//
// # Budgets
//
// The search tree grows factorially with the pool. Options.MaxNodes bounds
// the number of visited nodes; when it runs out the incumbent is returned
// with Complete set to false alongside [ErrBudgetExceeded]. Cancelling the
// context has the same effect with the context's error.
//
// # Kernelization
//
// [Kernelize] shrinks a graph with the pendant, high-degree and isolated
// vertex rules before search, and [SolveKernelized] combines it with
// [KernelizedBrute]. Forced vertices are folded back into the result.
//
// # Approximations
//
// [MatchingApprox] returns a 2-approximation from a maximal matching.
// [LeafCover] is greedy on pendant vertices and exact on forests.
package cover
