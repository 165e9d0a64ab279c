package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/vertexcover/pkg/pipeline"
)

type generateOpts struct {
	vertices    int
	probability float64
	seed        uint64
	connect     bool
	output      string
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{vertices: 10, probability: 0.3}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random graph",
		Long: `Generate a G(n, p) random graph: every pair of the n vertices is joined
with probability p. The graph is written in the {"0":[1],...} wire format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.vertices, "vertices", "n", opts.vertices, "number of vertices")
	cmd.Flags().Float64VarP(&opts.probability, "probability", "p", opts.probability, "edge probability")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default: random)")
	cmd.Flags().BoolVar(&opts.connect, "connect", false, "join components until the graph is connected")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	runner, err := c.newRunner(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer runner.Close()

	g, seed, err := runner.Generate(opts.vertices, opts.probability, seedFlag(cmd, opts.seed))
	if err != nil {
		return err
	}
	if opts.connect {
		if _, err := runner.Apply(cmd.Context(), g, "connect-all-sub", pipeline.OpArgs{}, pipeline.NewRand(seed)); err != nil {
			return err
		}
	}

	c.Logger.Info("generated graph", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", seed)
	return writeGraph(cmd, g, opts.output)
}
