package cover

import (
	"context"
	"fmt"
	"slices"

	"github.com/matzehuels/vertexcover/pkg/graph"
)

// Kernel is the result of reducing a graph before search.
type Kernel struct {
	// Reduced holds the vertices that still have edges after the forced
	// vertices were taken.
	Reduced *graph.Graph `json:"-"`

	// Forced vertices belong to every cover the reduction preserves.
	Forced []int `json:"forced"`

	// Dropped vertices were isolated and play no part in any cover.
	Dropped []int `json:"dropped"`

	// K is the budget left for the reduced graph, or [Unbounded].
	K int `json:"k"`

	// Infeasible is set when the reduction proves no cover of size K exists.
	Infeasible bool `json:"infeasible"`
}

// Kernelize applies the classic reduction rules to a copy of g until none
// fires:
//
//   - the neighbour of a pendant vertex is taken into the cover
//   - with a bound, a vertex of degree above the remaining budget is taken
//   - isolated vertices are dropped
//
// With a bound, a reduced graph holding more than K'^2 edges (K' being the
// remaining budget) has no cover of size K'. g is not modified.
func Kernelize(g *graph.Graph, k int) *Kernel {
	work := g.Clone()
	kern := &Kernel{Forced: []int{}, Dropped: []int{}, K: k}
	bounded := k != Unbounded

	take := func(v int) bool {
		work.Isolate(v)
		kern.Forced = append(kern.Forced, v)
		if !bounded {
			return true
		}
		kern.K--
		return kern.K >= 0
	}

	for changed := true; changed && !kern.Infeasible; {
		changed = false
		for _, v := range work.Vertices() {
			switch {
			case work.IsPendant(v):
				u := work.Neighbors(v)[0]
				changed = true
				if !take(u) {
					kern.Infeasible = true
				}
			case bounded && work.IsTops(v, kern.K):
				changed = true
				if !take(v) {
					kern.Infeasible = true
				}
			}
			if kern.Infeasible {
				break
			}
		}
	}

	kern.Reduced = graph.New()
	for _, v := range work.Vertices() {
		if work.IsIsolated(v) {
			if !slices.Contains(kern.Forced, v) {
				kern.Dropped = append(kern.Dropped, v)
			}
			continue
		}
		kern.Reduced.AddVertex(v)
	}
	for _, e := range work.Edges() {
		// Both endpoints are non-isolated, so they exist in Reduced.
		_ = kern.Reduced.AddEdge(e.U, e.V)
	}

	if bounded && kern.Reduced.EdgeCount() > kern.K*kern.K {
		kern.Infeasible = true
	}
	return kern
}

// SolveKernelized reduces g with [Kernelize], searches the reduced graph with
// [KernelizedBrute] under the remaining budget, and folds the forced vertices
// back in. The covered edges are measured on g.
//
// If the kernel is infeasible the forced vertices found so far are returned
// together with [ErrInfeasible].
func SolveKernelized(ctx context.Context, g *graph.Graph, opts Options) (*Result, *Kernel, error) {
	if err := opts.setDefaults(); err != nil {
		return nil, nil, err
	}
	kern := Kernelize(g, opts.K)
	if kern.Infeasible {
		return fold(g, kern.Forced, &Result{}, opts.Depth), kern, fmt.Errorf("%w: k=%d", ErrInfeasible, opts.K)
	}

	sub := opts
	sub.K = kern.K
	res, err := KernelizedBrute(ctx, kern.Reduced, sub)
	if res == nil {
		return nil, kern, err
	}
	return fold(g, kern.Forced, res, opts.Depth), kern, err
}

// fold prepends forced to res and recomputes coverage on g.
func fold(g *graph.Graph, forced []int, res *Result, depth int) *Result {
	out := &Result{
		Vertices: append(slices.Clone(forced), res.Vertices...),
		Nodes:    res.Nodes,
		Complete: res.Complete,
	}
	out.Covered = Covered(g, out.Vertices, depth)
	return out
}
