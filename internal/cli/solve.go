package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vertexcover/pkg/cover"
	"github.com/matzehuels/vertexcover/pkg/pipeline"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	method   string
	k        int
	depth    int
	seed     uint64
	maxNodes int
	restarts int
	noCache  bool
	refresh  bool
	jsonOut  bool
	output   string
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{method: pipeline.DefaultMethod, k: cover.Unbounded, depth: cover.DefaultDepth}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find a vertex cover",
		Long: `Find a vertex cover of a graph read from file or stdin.

Methods:
  brute       branch and bound over every vertex
  kernelized  branch and bound over the non-isolated vertices
  reduced     apply the reduction rules, then branch and bound the kernel
  matching    maximal matching 2-approximation
  leaf        pendant-neighbour greedy, optimal on forests

With -k -1 (the default) the smallest cover is searched for; with k >= 0 the
k vertices covering the most edges are returned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, argPath(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", opts.method, "solver: "+strings.Join(pipeline.Methods, ", "))
	cmd.Flags().IntVarP(&opts.k, "k", "k", opts.k, "cover size bound (-1 for minimum)")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", opts.depth, "hops a chosen vertex covers")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default: random)")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", 0, "search node budget (default: from config)")
	cmd.Flags().IntVar(&opts.restarts, "restarts", 0, "parallel randomized searches (default: from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "write the full solution as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file for --json (default: stdout)")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, path string, opts solveOpts) error {
	ctx := cmd.Context()
	cfg, err := c.config()
	if err != nil {
		return err
	}
	g, err := readGraph(cmd, path)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Method:   opts.method,
		K:        opts.k,
		Depth:    opts.depth,
		Seed:     seedFlag(cmd, opts.seed),
		MaxNodes: opts.maxNodes,
		Restarts: opts.restarts,
		Refresh:  opts.refresh,
	}
	if popts.MaxNodes == 0 {
		popts.MaxNodes = cfg.Solver.MaxNodes
	}
	if popts.Restarts == 0 {
		popts.Restarts = cfg.Solver.Restarts
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Searching %d vertices (%s)...", g.VertexCount(), opts.method))
	spinner.Start()
	sol, cached, err := runner.SolveWithCacheInfo(ctx, g, popts)
	spinner.Stop()

	switch {
	case err == nil:
	case sol != nil && errors.Is(err, cover.ErrBudgetExceeded):
		printWarning("Node budget exhausted after %d nodes; the cover may not be minimal", sol.Nodes)
	default:
		return err
	}
	prog.done("solved", "method", sol.Method, "nodes", sol.Nodes)

	if opts.jsonOut {
		data, err := json.MarshalIndent(sol, "", "  ")
		if err != nil {
			return err
		}
		return writeOutput(cmd, append(data, '\n'), opts.output)
	}

	printSuccess("Cover of %s vertices", StyleNumber.Render(fmt.Sprint(len(sol.Vertices))))
	printKeyValue("vertices", StyleCover.Render(formatVertices(sol.Vertices)))
	printKeyValue("covered", fmt.Sprintf("%d of %d edges", len(sol.Edges), g.EdgeCount()))
	printKeyValue("seed", fmt.Sprint(sol.Seed))
	if sol.Kernel != nil {
		printKeyValue("forced", formatVertices(sol.Kernel.Forced))
	}
	printStats(g.VertexCount(), g.EdgeCount(), cached)
	if path != stdinPath {
		printNextStep("Draw it", fmt.Sprintf("%s render %s --cover %s -o cover.svg", appName, path, joinInts(sol.Vertices)))
	}
	fmt.Fprintln(cmd.OutOrStdout(), joinInts(sol.Vertices))
	return nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}

// kernelCommand creates the kernel command.
func (c *CLI) kernelCommand() *cobra.Command {
	var (
		k       int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "kernel [file]",
		Short: "Classify vertices and reduce the graph",
		Long: `Classify every vertex as isolated (degree 0), pendant (degree 1) and tops
(degree > k), then apply the reduction rules: take the neighbour of each
pendant vertex, take each tops vertex while budget remains and drop isolated
vertices.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, argPath(args))
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer runner.Close()

			report, cached, err := runner.KernelizeWithCacheInfo(cmd.Context(), g, k)
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printKeyValue("isolated", formatVertices(report.Classes.Isolated))
			printKeyValue("pendant", formatVertices(report.Classes.Pendant))
			printKeyValue("tops", formatVertices(report.Classes.Tops))
			printKeyValue("forced", StyleCover.Render(formatVertices(report.Kernel.Forced)))
			printKeyValue("dropped", formatVertices(report.Kernel.Dropped))
			if k != cover.Unbounded {
				printKeyValue("budget left", fmt.Sprint(report.Kernel.K))
			}
			if report.Kernel.Infeasible {
				printWarning("No cover of size %d exists", k)
			}
			printStats(g.VertexCount(), g.EdgeCount(), cached)
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 1, "degree threshold and cover budget (-1 for no budget)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "write the report as JSON")

	return cmd
}
