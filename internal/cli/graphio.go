package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vertexcover/pkg/graph"
	pkgio "github.com/matzehuels/vertexcover/pkg/io"
)

// stdinPath names standard input or output in file arguments.
const stdinPath = "-"

// argPath returns the optional file argument, defaulting to stdin.
func argPath(args []string) string {
	if len(args) == 0 {
		return stdinPath
	}
	return args[0]
}

// readGraph reads a wire-format graph from path, or from the command's
// input for "-".
func readGraph(cmd *cobra.Command, path string) (*graph.Graph, error) {
	if path == stdinPath {
		g, err := pkgio.ReadJSON(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return g, nil
	}
	return pkgio.ImportJSON(path)
}

// writeGraph writes g to path, or to the command's output when path is
// empty or "-".
func writeGraph(cmd *cobra.Command, g *graph.Graph, path string) error {
	if path == "" || path == stdinPath {
		return pkgio.WriteJSON(g, cmd.OutOrStdout())
	}
	if err := pkgio.ExportJSON(g, path); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// writeOutput writes data to path, or to the command's output when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, data []byte, path string) error {
	if path == "" || path == stdinPath {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}

// seedFlag returns &seed when --seed was given, nil otherwise.
func seedFlag(cmd *cobra.Command, seed uint64) *uint64 {
	if cmd.Flags().Changed("seed") {
		return &seed
	}
	return nil
}
