package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vertexcover/pkg/cover"
	"github.com/matzehuels/vertexcover/pkg/pipeline"
	"github.com/matzehuels/vertexcover/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string
	format  string
	layout  string
	cover   []int
	solve   bool
	method  string
	classes bool
	k       int
	noCache bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.DefaultFormat, method: pipeline.DefaultMethod, k: 1}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a graph with Graphviz",
		Long: `Draw a graph as SVG, PNG or DOT.

Highlight a cover with --cover 1,4,7 or let --solve find one first.
--classes colours isolated, pendant and tops vertices at threshold -k.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, argPath(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(nodelink.Formats, ", "))
	cmd.Flags().StringVar(&opts.layout, "layout", "", "graphviz engine: neato, circo or dot")
	cmd.Flags().IntSliceVar(&opts.cover, "cover", nil, "vertices to highlight")
	cmd.Flags().BoolVar(&opts.solve, "solve", false, "find a minimum cover and highlight it")
	cmd.Flags().StringVarP(&opts.method, "method", "m", opts.method, "solver used by --solve")
	cmd.Flags().BoolVar(&opts.classes, "classes", false, "colour vertices by class")
	cmd.Flags().IntVarP(&opts.k, "k", "k", opts.k, "degree threshold for --classes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.MarkFlagsMutuallyExclusive("cover", "solve", "classes")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
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
		Format: opts.format,
		Layout: opts.layout,
		Cover:  opts.cover,
		K:      opts.k,
	}
	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering...")
	spinner.Start()
	defer spinner.Stop()

	switch {
	case opts.classes:
		popts.Highlight = pipeline.HighlightClasses
	case opts.solve:
		cfg, err := c.config()
		if err != nil {
			return err
		}
		spinner.SetMessage(fmt.Sprintf("Solving %d vertices...", g.VertexCount()))
		sol, err := runner.Solve(ctx, g, pipeline.Options{
			Method:   opts.method,
			K:        cover.Unbounded,
			MaxNodes: cfg.Solver.MaxNodes,
			Restarts: cfg.Solver.Restarts,
		})
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		popts.Cover = sol.Vertices
		popts.K = cover.Unbounded
		spinner.SetMessage("Rendering...")
	}

	data, cached, err := runner.RenderWithCacheInfo(ctx, g, popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	if opts.solve {
		printInfo("Highlighted cover %s", StyleCover.Render(formatVertices(popts.Cover)))
	}
	prog.done("rendered", "format", opts.format, "bytes", len(data), "cached", cached)
	return writeOutput(cmd, data, opts.output)
}
