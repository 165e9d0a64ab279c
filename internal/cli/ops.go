package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vertexcover/pkg/pipeline"
)

// operatorCommand creates a parent command with one subcommand per operator
// of the given kind, e.g. "perturb increase-tops" or "connect all-sub".
func (c *CLI) operatorCommand(kind, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
	}
	for _, op := range pipeline.Operators(kind) {
		cmd.AddCommand(c.applyCommand(op))
	}
	return cmd
}

func (c *CLI) applyCommand(op pipeline.Operator) *cobra.Command {
	var (
		args   pipeline.OpArgs
		seed   uint64
		repeat int
		output string
	)

	cmd := &cobra.Command{
		Use:   op.ShortName() + " [file]",
		Short: "Apply " + op.Name + ": " + op.Usage,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			if repeat < 1 {
				return fmt.Errorf("--repeat must be at least 1 (got %d)", repeat)
			}
			g, err := readGraph(cmd, argPath(argv))
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer runner.Close()

			s := pipeline.ResolveSeed(seedFlag(cmd, seed))
			rng := pipeline.NewRand(s)
			changed := 0
			for range repeat {
				ok, err := runner.Apply(cmd.Context(), g, op.Name, args, rng)
				if err != nil {
					return err
				}
				if ok {
					changed++
				}
			}

			c.Logger.Info("applied "+op.Name, "changed", changed, "of", repeat, "edges", g.EdgeCount(), "seed", s)
			if changed == 0 {
				printWarning("%s left the graph unchanged", op.Name)
			}
			return writeGraph(cmd, g, output)
		},
	}

	if op.NeedsK {
		cmd.Flags().IntVarP(&args.K, "k", "k", 1, "degree threshold")
	}
	if op.NeedsVertex {
		cmd.Flags().IntVar(&args.Vertex, "vertex", 0, "target vertex")
		_ = cmd.MarkFlagRequired("vertex")
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: random)")
	cmd.Flags().IntVarP(&repeat, "repeat", "r", 1, "apply the operator this many times")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
