// Package pipeline runs vertex-cover operations with caching, logging and
// metrics so the CLI and the HTTP server share one implementation.
//
// # Operations
//
//   - Generate: build a random G(n, p) graph
//   - Solve: run one of the cover [Methods] with optional parallel restarts
//   - Kernelize: classify vertices and apply the reduction rules
//   - Apply: run a perturbation or connectivity operator (see [Operators])
//   - Render: draw the graph with Graphviz
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	seed := uint64(7)
//	sol, err := runner.Solve(ctx, g, pipeline.Options{
//	    Method: pipeline.MethodBrute,
//	    K:      cover.Unbounded,
//	    Seed:   &seed,
//	})
//
// Randomized results are cached only when a seed is pinned; without one,
// every call draws a fresh seed and the result is not reproducible.
package pipeline

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vertexcover/pkg/cache"
	"github.com/matzehuels/vertexcover/pkg/cover"
	"github.com/matzehuels/vertexcover/pkg/errors"
	"github.com/matzehuels/vertexcover/pkg/graph"
	"github.com/matzehuels/vertexcover/pkg/render/nodelink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMethod is the solver used when Options.Method is empty.
	DefaultMethod = MethodBrute

	// DefaultMaxNodes caps a single search. It keeps an API request on a
	// dense graph from running for minutes.
	DefaultMaxNodes = 2_000_000

	// DefaultRestarts is the number of independent searches per solve.
	DefaultRestarts = 1

	// MaxRestarts bounds parallel searches per solve.
	MaxRestarts = 16

	// DefaultFormat is the render format used when Options.Format is empty.
	DefaultFormat = nodelink.FormatSVG
)

// Solver methods.
const (
	// MethodBrute is branch and bound over every vertex.
	MethodBrute = "brute"

	// MethodKernelized is branch and bound over the non-isolated vertices.
	MethodKernelized = "kernelized"

	// MethodReduced runs the reduction rules first, then searches the kernel.
	MethodReduced = "reduced"

	// MethodMatching is the maximal-matching 2-approximation.
	MethodMatching = "matching"

	// MethodLeaf is the pendant-neighbour greedy cover.
	MethodLeaf = "leaf"
)

// Methods lists every solver method.
var Methods = []string{MethodBrute, MethodKernelized, MethodReduced, MethodMatching, MethodLeaf}

// Highlight modes for rendering.
const (
	HighlightNone    = "none"
	HighlightCover   = "cover"
	HighlightClasses = "classes"
)

// =============================================================================
// Options
// =============================================================================

// Options configures solving and rendering. The zero value is not a minimum
// cover request: set K to [cover.Unbounded] for that.
type Options struct {
	// Solve options
	Method   string  `json:"method,omitempty"`
	K        int     `json:"k"`
	Depth    int     `json:"depth,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
	MaxNodes int     `json:"max_nodes,omitempty"`
	Restarts int     `json:"restarts,omitempty"`
	Refresh  bool    `json:"refresh,omitempty"`

	// Render options
	Format    string `json:"format,omitempty"`
	Layout    string `json:"layout,omitempty"`
	Highlight string `json:"highlight,omitempty"`
	Cover     []int  `json:"cover,omitempty"`

	// Logger overrides the runner's logger for one call.
	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks every field and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSolve checks the solve fields and applies their defaults.
func (o *Options) ValidateForSolve() error {
	if o.Method == "" {
		o.Method = DefaultMethod
	}
	if !slices.Contains(Methods, o.Method) {
		return errors.New(errors.ErrCodeInvalidInput, "unknown method %q (want one of %v)", o.Method, Methods)
	}
	if err := errors.ValidateBound(o.K); err != nil {
		return err
	}
	if o.Depth == 0 {
		o.Depth = cover.DefaultDepth
	}
	if err := errors.ValidateDepth(o.Depth); err != nil {
		return err
	}
	if o.MaxNodes < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_nodes cannot be negative (got %d)", o.MaxNodes)
	}
	if o.MaxNodes == 0 {
		o.MaxNodes = DefaultMaxNodes
	}
	if o.Restarts == 0 {
		o.Restarts = DefaultRestarts
	}
	if o.Restarts < 1 || o.Restarts > MaxRestarts {
		return errors.New(errors.ErrCodeInvalidInput, "restarts must be within [1, %d] (got %d)", MaxRestarts, o.Restarts)
	}
	return nil
}

// ValidateForRender checks the render fields and applies their defaults.
func (o *Options) ValidateForRender() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := errors.ValidateFormat(o.Format, nodelink.Formats); err != nil {
		return err
	}
	switch o.Highlight {
	case "":
		o.Highlight = HighlightNone
		if len(o.Cover) > 0 {
			o.Highlight = HighlightCover
		}
	case HighlightNone, HighlightCover:
	case HighlightClasses:
		if err := errors.ValidateThreshold(o.K); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown highlight %q", o.Highlight)
	}
	return nil
}

// Randomized reports whether the method's result depends on the seed.
func (o *Options) Randomized() bool {
	return o.Method != MethodLeaf
}

// SolveKeyOpts returns cache key options for a solve.
func (o *Options) SolveKeyOpts() cache.SolveKeyOpts {
	var seed uint64
	if o.Seed != nil {
		seed = *o.Seed
	}
	return cache.SolveKeyOpts{
		Method:   o.Method,
		K:        o.K,
		Depth:    o.Depth,
		Seed:     seed,
		MaxNodes: o.MaxNodes,
		Restarts: o.Restarts,
	}
}

// ArtifactKeyOpts returns cache key options for a rendering.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  o.Format,
		Layout:  o.Layout,
		Cover:   o.Cover,
		K:       o.K,
		Classes: o.Highlight == HighlightClasses,
	}
}

// =============================================================================
// Results
// =============================================================================

// Solution is the outcome of [Runner.Solve].
type Solution struct {
	Method   string       `json:"method"`
	Vertices []int        `json:"vertices"`
	Edges    []graph.Edge `json:"edges"`
	Nodes    int          `json:"nodes"`
	Complete bool         `json:"complete"`
	Seed     uint64       `json:"seed"`

	// Kernel is set for [MethodReduced].
	Kernel *cover.Kernel `json:"kernel,omitempty"`
}

// KernelReport is the outcome of [Runner.Kernelize].
type KernelReport struct {
	Classes graph.Classes `json:"classes"`

	// Kernel is the reduction for the same threshold. Kernel.Reduced is not
	// restored from the cache.
	Kernel *cover.Kernel `json:"kernel"`
}

func methodErr(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
