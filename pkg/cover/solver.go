package cover

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/vertexcover/pkg/graph"
)

// Unbounded is the K value that asks for a minimum-size cover.
const Unbounded = -1

// DefaultDepth is the coverage depth used when Options.Depth is zero.
const DefaultDepth = 1

// checkEvery is how many search nodes pass between context checks.
const checkEvery = 1024

var (
	// ErrBudgetExceeded is returned when the search visits Options.MaxNodes
	// nodes before finishing. The accompanying Result holds the incumbent.
	ErrBudgetExceeded = errors.New("cover: node budget exceeded")

	// ErrInvalidBound is returned for K values below [Unbounded].
	ErrInvalidBound = errors.New("cover: k must be -1 or non-negative")

	// ErrInvalidDepth is returned for negative depths.
	ErrInvalidDepth = errors.New("cover: depth must be positive")

	// ErrInfeasible is returned by [SolveKernelized] when the kernel proves
	// that no cover of size K exists.
	ErrInfeasible = errors.New("cover: no cover within bound")
)

// Options configures a branch-and-bound search.
type Options struct {
	// K bounds the cover size. [Unbounded] searches for a smallest cover; a
	// non-negative K keeps the K-vertex set covering the most edges.
	K int

	// Depth is how many hops a chosen vertex's coverage reaches.
	// Zero means [DefaultDepth].
	Depth int

	// Rand shuffles candidates in every frame. Nil uses a process-seeded
	// source, so results are only reproducible with an explicit seed.
	Rand *rand.Rand

	// MaxNodes caps the number of visited search nodes. Zero is unlimited.
	MaxNodes int
}

func (o *Options) setDefaults() error {
	if o.K < Unbounded {
		return fmt.Errorf("%w: got %d", ErrInvalidBound, o.K)
	}
	if o.Depth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, o.Depth)
	}
	if o.Depth == 0 {
		o.Depth = DefaultDepth
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return nil
}

// Result is the outcome of a search.
type Result struct {
	Vertices []int        `json:"vertices"`
	Covered  []graph.Edge `json:"edges"`
	Nodes    int          `json:"nodes"`
	Complete bool         `json:"complete"`
}

// Brute searches over every vertex of g. See [Options] for the bound
// semantics.
func Brute(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	return search(ctx, g, g.Vertices(), opts)
}

// KernelizedBrute is [Brute] with isolated vertices excluded from the
// candidate pool.
func KernelizedBrute(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	var pool []int
	for _, v := range g.Vertices() {
		if !g.IsIsolated(v) {
			pool = append(pool, v)
		}
	}
	return search(ctx, g, pool, opts)
}

// Covered returns the union of the depth-bounded coverage of vertices, each
// edge once. Vertices missing from g are skipped.
func Covered(g *graph.Graph, vertices []int, depth int) []graph.Edge {
	var set graph.EdgeSet
	for _, v := range vertices {
		reach, err := g.VertexCover(v, depth)
		if err != nil {
			continue
		}
		set.Merge(reach)
	}
	return set.Edges()
}

// Verify reports whether vertices cover every edge of g.
func Verify(g *graph.Graph, vertices []int) bool {
	in := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		in[v] = true
	}
	for _, e := range g.Edges() {
		if !in[e.U] && !in[e.V] {
			return false
		}
	}
	return true
}

// partial is a chosen vertex set together with the edges it covers.
type partial struct {
	vertices []int
	covered  graph.EdgeSet
}

// frame is one expanded search node: its partial solution and the shuffled
// candidates still to try.
type frame struct {
	partial
	candidates []int
	next       int
}

type searcher struct {
	g     *graph.Graph
	pool  []int
	total int
	opts  Options

	best    partial
	hasBest bool
	nodes   int
}

func search(ctx context.Context, g *graph.Graph, pool []int, opts Options) (*Result, error) {
	if err := opts.setDefaults(); err != nil {
		return nil, err
	}
	edges := g.Edges()

	if opts.K >= len(pool) {
		return &Result{
			Vertices: slices.Clone(pool),
			Covered:  edges,
			Complete: true,
		}, nil
	}

	s := &searcher{g: g, pool: pool, total: len(edges), opts: opts}
	err := s.run(ctx)
	return s.result(err == nil), err
}

// run walks the search tree depth first with an explicit stack. A node is
// evaluated when it is entered; only nodes that neither become the
// incumbent nor get pruned are expanded into a frame.
func (s *searcher) run(ctx context.Context) error {
	var stack []frame
	enter := func(p partial) {
		if s.accept(p) {
			return
		}
		if s.expandable(p) {
			stack = append(stack, frame{partial: p, candidates: s.candidates(p.vertices)})
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.visit(ctx); err != nil {
		return err
	}
	enter(partial{})

	for len(stack) > 0 {
		if s.done() {
			return nil
		}
		top := &stack[len(stack)-1]
		if top.next >= len(top.candidates) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.candidates[top.next]
		top.next++

		if err := s.visit(ctx); err != nil {
			return err
		}
		covered := top.covered.Clone()
		reach, _ := s.g.VertexCover(v, s.opts.Depth)
		covered.Merge(reach)
		enter(partial{
			vertices: append(slices.Clone(top.vertices), v),
			covered:  covered,
		})
	}
	return nil
}

// visit counts a node against the budget and polls the context.
func (s *searcher) visit(ctx context.Context) error {
	s.nodes++
	if s.opts.MaxNodes > 0 && s.nodes > s.opts.MaxNodes {
		return ErrBudgetExceeded
	}
	if s.nodes%checkEvery == 0 {
		return ctx.Err()
	}
	return nil
}

// accept installs p as the incumbent when it qualifies. Unbounded search
// takes a full cover smaller than the incumbent; bounded search takes a
// K-vertex set covering strictly more edges than the incumbent.
func (s *searcher) accept(p partial) bool {
	if s.opts.K == Unbounded {
		if p.covered.Len() == s.total && (!s.hasBest || len(p.vertices) < len(s.best.vertices)) {
			s.best, s.hasBest = p, true
			return true
		}
		return false
	}
	if len(p.vertices) == s.opts.K && p.covered.Len() > s.best.covered.Len() {
		s.best, s.hasBest = p, true
		return true
	}
	return false
}

// expandable reports whether p may still lead to a better incumbent.
func (s *searcher) expandable(p partial) bool {
	if s.opts.K != Unbounded && len(p.vertices) >= s.opts.K {
		return false
	}
	if !s.hasBest {
		return true
	}
	if s.opts.K == Unbounded {
		// Children are one vertex larger and must beat the incumbent.
		return len(p.vertices)+1 < len(s.best.vertices)
	}
	return len(p.vertices) < len(s.best.vertices)
}

// done reports whether the incumbent can no longer be improved.
func (s *searcher) done() bool {
	return s.opts.K != Unbounded && s.hasBest && s.best.covered.Len() == s.total
}

// candidates returns the pool minus chosen, shuffled.
func (s *searcher) candidates(chosen []int) []int {
	out := make([]int, 0, len(s.pool)-len(chosen))
	for _, v := range s.pool {
		if !slices.Contains(chosen, v) {
			out = append(out, v)
		}
	}
	s.opts.Rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (s *searcher) result(complete bool) *Result {
	r := &Result{
		Vertices: []int{},
		Covered:  []graph.Edge{},
		Nodes:    s.nodes,
		Complete: complete,
	}
	if s.hasBest {
		r.Vertices = slices.Clone(s.best.vertices)
		r.Covered = s.best.covered.Edges()
	}
	return r
}
