package pipeline

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/vertexcover/pkg/cache"
	"github.com/matzehuels/vertexcover/pkg/cover"
	"github.com/matzehuels/vertexcover/pkg/errors"
	"github.com/matzehuels/vertexcover/pkg/graph"
	"github.com/matzehuels/vertexcover/pkg/io"
	"github.com/matzehuels/vertexcover/pkg/observability"
)

// Runner executes pipeline operations with caching.
//
// The Runner holds no per-request state, so one Runner can serve many
// goroutines as long as each works on its own graph.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses [cache.DefaultKeyer] and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// GraphHash identifies g for cache keys. Vertex order is part of the hash
// because seeded searches depend on it.
func GraphHash(g *graph.Graph) string {
	data, _ := json.Marshal(struct {
		Order []int  `json:"order"`
		Adj   io.Map `json:"adj"`
	}{g.Vertices(), io.EncodeMap(g)})
	return cache.Hash(data)
}

// =============================================================================
// Generate
// =============================================================================

// Generate builds a random graph on n vertices where each pair is joined
// with probability p. It returns the seed that was used.
func (r *Runner) Generate(n int, p float64, seed *uint64) (*graph.Graph, uint64, error) {
	if err := errors.ValidateVertexCount(n); err != nil {
		return nil, 0, err
	}
	if err := errors.ValidateProbability(p); err != nil {
		return nil, 0, err
	}
	s := ResolveSeed(seed)
	g := graph.Random(n, p, NewRand(s))
	r.Logger.Debug("generated graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"seed", s)
	return g, s, nil
}

// =============================================================================
// Solve
// =============================================================================

// SolveWithCacheInfo finds a vertex cover of g and reports whether it came
// from the cache.
//
// Results are cached only when they are reproducible (a pinned seed, or a
// method that uses no randomness) and the search completed. When the node
// budget runs out, the best cover found is returned together with an error
// wrapping [cover.ErrBudgetExceeded].
func (r *Runner) SolveWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (*Solution, bool, error) {
	if err := opts.ValidateForSolve(); err != nil {
		return nil, false, err
	}
	logger := r.logger(opts)

	cacheable := opts.Seed != nil || !opts.Randomized()
	cacheKey := r.Keyer.SolveKey(GraphHash(g), opts.SolveKeyOpts())

	if cacheable && !opts.Refresh {
		if sol, ok := r.cachedSolution(ctx, cacheKey, logger); ok {
			return sol, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnSolveStart(ctx, opts.Method, g.VertexCount())
	start := time.Now()

	sol, err := solve(ctx, g, opts, ResolveSeed(opts.Seed))

	size, nodes := 0, 0
	if sol != nil {
		size, nodes = len(sol.Vertices), sol.Nodes
	}
	hooks.OnSolveComplete(ctx, opts.Method, size, nodes, time.Since(start), err)
	if err != nil {
		if sol != nil {
			logger.Warn("search stopped early", "method", opts.Method, "nodes", nodes, "err", err)
		}
		return sol, false, err
	}

	if cacheable && sol.Complete {
		if data, err := json.Marshal(sol); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLSolve); err == nil {
				observability.Cache().OnCacheSet(ctx, "solve", len(data))
			} else {
				logger.Debug("cache write failed", "key", cacheKey, "err", err)
			}
		}
	}

	logger.Info("solved",
		"method", opts.Method,
		"vertices", g.VertexCount(),
		"cover", len(sol.Vertices),
		"nodes", sol.Nodes,
		"seed", sol.Seed,
		"duration", time.Since(start))
	return sol, false, nil
}

// Solve is SolveWithCacheInfo without the cache hit flag.
func (r *Runner) Solve(ctx context.Context, g *graph.Graph, opts Options) (*Solution, error) {
	sol, _, err := r.SolveWithCacheInfo(ctx, g, opts)
	return sol, err
}

func (r *Runner) cachedSolution(ctx context.Context, key string, logger *log.Logger) (*Solution, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "solve")
		return nil, false
	}
	var sol Solution
	if err := json.Unmarshal(data, &sol); err != nil {
		observability.Cache().OnCacheMiss(ctx, "solve")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "solve")
	logger.Debug("solve cache hit", "key", key)
	return &sol, true
}

type attempt struct {
	sol *Solution
	err error
}

// solve runs opts.Restarts searches from consecutive seeds and keeps the
// best. Each search works on its own clone of g.
func solve(ctx context.Context, g *graph.Graph, opts Options, seed uint64) (*Solution, error) {
	if opts.Restarts == 1 || !opts.Randomized() {
		return runMethod(ctx, g, opts, seed)
	}

	attempts := make([]attempt, opts.Restarts)
	eg, ctx := errgroup.WithContext(ctx)
	for i := range attempts {
		work := g.Clone()
		eg.Go(func() error {
			sol, err := runMethod(ctx, work, opts, seed+uint64(i))
			attempts[i] = attempt{sol, err}
			if err != nil && !stderrors.Is(err, cover.ErrBudgetExceeded) {
				return err
			}
			return nil
		})
	}
	groupErr := eg.Wait()

	var (
		best  attempt
		nodes int
	)
	for _, a := range attempts {
		if a.sol == nil {
			continue
		}
		nodes += a.sol.Nodes
		if best.sol == nil || better(a.sol, best.sol) {
			best = a
		}
	}
	if best.sol == nil {
		return nil, groupErr
	}
	best.sol.Nodes = nodes
	if groupErr != nil {
		return best.sol, groupErr
	}
	return best.sol, best.err
}

// better ranks solutions by covered edges, then by size, then by whether the
// search completed.
func better(a, b *Solution) bool {
	if len(a.Edges) != len(b.Edges) {
		return len(a.Edges) > len(b.Edges)
	}
	if len(a.Vertices) != len(b.Vertices) {
		return len(a.Vertices) < len(b.Vertices)
	}
	return a.Complete && !b.Complete
}

func runMethod(ctx context.Context, g *graph.Graph, opts Options, seed uint64) (*Solution, error) {
	rng := NewRand(seed)
	copts := cover.Options{
		K:        opts.K,
		Depth:    opts.Depth,
		Rand:     rng,
		MaxNodes: opts.MaxNodes,
	}

	var (
		res  *cover.Result
		kern *cover.Kernel
		err  error
	)
	switch opts.Method {
	case MethodBrute:
		res, err = cover.Brute(ctx, g, copts)
	case MethodKernelized:
		res, err = cover.KernelizedBrute(ctx, g, copts)
	case MethodReduced:
		res, kern, err = cover.SolveKernelized(ctx, g, copts)
	case MethodMatching:
		res = approx(g, cover.MatchingApprox(g, rng), opts.Depth)
	case MethodLeaf:
		res = approx(g, cover.LeafCover(g), opts.Depth)
	default:
		return nil, fmt.Errorf("unknown method %q", opts.Method)
	}
	if res == nil {
		return nil, methodErr(opts.Method, err)
	}

	sol := &Solution{
		Method:   opts.Method,
		Vertices: res.Vertices,
		Edges:    res.Covered,
		Nodes:    res.Nodes,
		Complete: res.Complete,
		Seed:     seed,
		Kernel:   kern,
	}
	if err != nil {
		return sol, methodErr(opts.Method, err)
	}
	return sol, nil
}

func approx(g *graph.Graph, vertices []int, depth int) *cover.Result {
	return &cover.Result{
		Vertices: vertices,
		Covered:  cover.Covered(g, vertices, depth),
		Complete: true,
	}
}

// =============================================================================
// Kernelize
// =============================================================================

// KernelizeWithCacheInfo classifies the vertices of g against threshold k
// and applies the reduction rules. k may be [cover.Unbounded], in which case
// only the pendant rule reduces the graph.
func (r *Runner) KernelizeWithCacheInfo(ctx context.Context, g *graph.Graph, k int) (*KernelReport, bool, error) {
	if err := errors.ValidateBound(k); err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.KernelKey(GraphHash(g), k)

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var report KernelReport
		if err := json.Unmarshal(data, &report); err == nil {
			observability.Cache().OnCacheHit(ctx, "kernel")
			return &report, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "kernel")

	report := &KernelReport{
		Classes: g.PerformKernelization(k),
		Kernel:  cover.Kernelize(g, k),
	}
	if data, err := json.Marshal(report); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLKernel); err == nil {
			observability.Cache().OnCacheSet(ctx, "kernel", len(data))
		}
	}

	r.Logger.Info("kernelized",
		"k", k,
		"isolated", len(report.Classes.Isolated),
		"pendant", len(report.Classes.Pendant),
		"tops", len(report.Classes.Tops),
		"forced", len(report.Kernel.Forced),
		"infeasible", report.Kernel.Infeasible)
	return report, false, nil
}

// Kernelize is KernelizeWithCacheInfo without the cache hit flag.
func (r *Runner) Kernelize(ctx context.Context, g *graph.Graph, k int) (*KernelReport, error) {
	report, _, err := r.KernelizeWithCacheInfo(ctx, g, k)
	return report, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// logger returns the per-call logger if set, otherwise the runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
