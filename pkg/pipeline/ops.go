package pipeline

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/matzehuels/vertexcover/pkg/errors"
	"github.com/matzehuels/vertexcover/pkg/graph"
	"github.com/matzehuels/vertexcover/pkg/observability"
)

// Operator kinds.
const (
	KindPerturb = "perturb"
	KindConnect = "connect"
)

// OpArgs carries the parameters some operators need.
type OpArgs struct {
	// K is the degree threshold of the tops operators.
	K int `json:"k"`

	// Vertex is the target of the single-vertex operators.
	Vertex int `json:"vertex"`
}

// Operator is a named graph mutation.
type Operator struct {
	Name  string
	Kind  string
	Usage string

	// NeedsK and NeedsVertex mark which OpArgs fields are read.
	NeedsK      bool
	NeedsVertex bool

	apply func(g *graph.Graph, args OpArgs, rng *rand.Rand) (bool, error)
}

// ShortName is the name without its kind prefix, as used by CLI
// subcommands ("connect-sub" becomes "sub").
func (o Operator) ShortName() string {
	return strings.TrimPrefix(o.Name, o.Kind+"-")
}

func plain(f func(*graph.Graph, *rand.Rand) bool) func(*graph.Graph, OpArgs, *rand.Rand) (bool, error) {
	return func(g *graph.Graph, _ OpArgs, rng *rand.Rand) (bool, error) { return f(g, rng), nil }
}

func withK(f func(*graph.Graph, int, *rand.Rand) bool) func(*graph.Graph, OpArgs, *rand.Rand) (bool, error) {
	return func(g *graph.Graph, args OpArgs, rng *rand.Rand) (bool, error) { return f(g, args.K, rng), nil }
}

func withVertex(f func(*graph.Graph, int, *rand.Rand) (bool, error)) func(*graph.Graph, OpArgs, *rand.Rand) (bool, error) {
	return func(g *graph.Graph, args OpArgs, rng *rand.Rand) (bool, error) { return f(g, args.Vertex, rng) }
}

var operators = []Operator{
	{Name: "increase-pendants", Kind: KindPerturb, Usage: "make a random vertex pendant",
		apply: plain((*graph.Graph).IncreasePendantVertices)},
	{Name: "decrease-pendants", Kind: KindPerturb, Usage: "give a random pendant vertex a second edge",
		apply: plain((*graph.Graph).DecreasePendantVertices)},
	{Name: "increase-tops", Kind: KindPerturb, Usage: "raise a random vertex above degree k", NeedsK: true,
		apply: withK((*graph.Graph).IncreaseTopsVertices)},
	{Name: "decrease-tops", Kind: KindPerturb, Usage: "lower a random tops vertex to degree k", NeedsK: true,
		apply: withK((*graph.Graph).DecreaseTopsVertices)},
	{Name: "increase-isolated", Kind: KindPerturb, Usage: "strip every edge of a random vertex",
		apply: plain((*graph.Graph).IncreaseIsolatedVertices)},
	{Name: "decrease-isolated", Kind: KindPerturb, Usage: "connect a random isolated vertex",
		apply: plain((*graph.Graph).DecreaseIsolatedVertices)},
	{Name: "remove-random-edge", Kind: KindPerturb, Usage: "remove a random edge of a vertex", NeedsVertex: true,
		apply: withVertex((*graph.Graph).RemoveRandomEdge)},
	{Name: "connect-sub", Kind: KindConnect, Usage: "bridge one component to another",
		apply: plain((*graph.Graph).ConnectTwoSubGraphs)},
	{Name: "connect-all-sub", Kind: KindConnect, Usage: "bridge components until the graph is connected",
		apply: plain(func(g *graph.Graph, rng *rand.Rand) bool { return g.ConnectAllSubGraphs(rng) > 0 })},
	{Name: "connect-random", Kind: KindConnect, Usage: "join two random non-adjacent vertices",
		apply: plain((*graph.Graph).ConnectTwoRandomVertices)},
	{Name: "connect-vertex", Kind: KindConnect, Usage: "join a vertex to a random vertex", NeedsVertex: true,
		apply: withVertex((*graph.Graph).ConnectVertexToRandom)},
}

// Operators returns the operators of a kind, or all of them for an empty
// kind.
func Operators(kind string) []Operator {
	var out []Operator
	for _, op := range operators {
		if kind == "" || op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// LookupOperator finds an operator by name.
func LookupOperator(name string) (Operator, bool) {
	i := slices.IndexFunc(operators, func(op Operator) bool { return op.Name == name })
	if i < 0 {
		return Operator{}, false
	}
	return operators[i], true
}

// Apply runs the named operator on g in place and reports whether g
// changed. An operator with nothing to act on returns false, not an error.
func (r *Runner) Apply(ctx context.Context, g *graph.Graph, name string, args OpArgs, rng *rand.Rand) (bool, error) {
	op, ok := LookupOperator(name)
	if !ok {
		return false, errors.New(errors.ErrCodeNotFound, "unknown operator %q", name)
	}
	if op.NeedsK {
		if err := errors.ValidateThreshold(args.K); err != nil {
			return false, err
		}
	}

	changed, err := op.apply(g, args, rng)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodePrecondition, err, "%s", name)
	}
	observability.Pipeline().OnPerturb(ctx, name, changed)
	r.Logger.Debug("applied operator",
		"op", name,
		"changed", changed,
		"edges", g.EdgeCount())
	return changed, nil
}
