package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vertexcover/pkg/cover"
	"github.com/matzehuels/vertexcover/pkg/graph"
	pkgio "github.com/matzehuels/vertexcover/pkg/io"
	"github.com/matzehuels/vertexcover/pkg/pipeline"
)

// Explorer styles
var (
	exploreKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// maxUndo bounds the explorer's undo history.
const maxUndo = 64

// exploreKeys maps keys to operator names.
var exploreKeys = map[string]string{
	"p": "increase-pendants",
	"P": "decrease-pendants",
	"t": "increase-tops",
	"T": "decrease-tops",
	"i": "increase-isolated",
	"I": "decrease-isolated",
	"c": "connect-sub",
	"C": "connect-all-sub",
	"r": "connect-random",
}

// =============================================================================
// ExploreModel - Interactive graph perturbation
// =============================================================================

// solvedMsg carries the result of a background solve for graph revision id.
type solvedMsg struct {
	id  int
	sol *pipeline.Solution
	err error
}

// ExploreModel is the bubbletea model for interactively perturbing a graph
// and watching its classes and minimum cover change.
type ExploreModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	rng    *rand.Rand
	opts   pipeline.Options

	Graph   *graph.Graph
	History []*graph.Graph
	K       int
	Cover   []int
	Path    string

	status  string
	solving bool
	solveID int
}

// NewExploreModel creates an explorer over g. opts configures the solver
// started with "s"; path is where "w" writes the graph.
func NewExploreModel(ctx context.Context, runner *pipeline.Runner, g *graph.Graph, seed uint64, opts pipeline.Options, path string) ExploreModel {
	return ExploreModel{
		ctx:    ctx,
		runner: runner,
		rng:    pipeline.NewRand(seed),
		opts:   opts,
		Graph:  g,
		K:      1,
		Path:   path,
		status: fmt.Sprintf("seed %d", seed),
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case solvedMsg:
		return m.solved(msg), nil
	case tea.KeyMsg:
		key := msg.String()
		if name, ok := exploreKeys[key]; ok {
			return m.apply(name), nil
		}
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.K++
		case "-":
			if m.K > 0 {
				m.K--
			}
		case "u":
			m = m.undo()
		case "s":
			return m.solve()
		case "w":
			m = m.write()
		}
	}
	return m, nil
}

func (m ExploreModel) apply(name string) ExploreModel {
	before := m.Graph.Clone()
	changed, err := m.runner.Apply(m.ctx, m.Graph, name, pipeline.OpArgs{K: m.K}, m.rng)
	switch {
	case err != nil:
		m.status = err.Error()
	case !changed:
		m.status = name + ": no change"
	default:
		m.History = append(m.History, before)
		if len(m.History) > maxUndo {
			m.History = m.History[1:]
		}
		m.Cover = nil
		m.solveID++
		m.status = name
	}
	return m
}

func (m ExploreModel) undo() ExploreModel {
	if len(m.History) == 0 {
		m.status = "nothing to undo"
		return m
	}
	m.Graph = m.History[len(m.History)-1]
	m.History = m.History[:len(m.History)-1]
	m.Cover = nil
	m.solveID++
	m.status = "undone"
	return m
}

// solve searches a snapshot of the graph in the background. Results for a
// graph that has since changed are discarded.
func (m ExploreModel) solve() (ExploreModel, tea.Cmd) {
	if m.solving {
		return m, nil
	}
	m.solving = true
	m.status = "solving..."
	g, id, opts := m.Graph.Clone(), m.solveID, m.opts
	ctx, runner := m.ctx, m.runner
	return m, func() tea.Msg {
		sol, err := runner.Solve(ctx, g, opts)
		return solvedMsg{id: id, sol: sol, err: err}
	}
}

func (m ExploreModel) solved(msg solvedMsg) ExploreModel {
	m.solving = false
	if msg.id != m.solveID {
		m.status = "graph changed during solve; press s again"
		return m
	}
	switch {
	case msg.sol != nil && (msg.err == nil || errors.Is(msg.err, cover.ErrBudgetExceeded)):
		m.Cover = msg.sol.Vertices
		m.status = fmt.Sprintf("cover of %d found in %d nodes", len(m.Cover), msg.sol.Nodes)
		if msg.err != nil {
			m.status += " (budget exhausted)"
		}
	case msg.err != nil:
		m.status = msg.err.Error()
	}
	return m
}

func (m ExploreModel) write() ExploreModel {
	if m.Path == "" {
		m.status = "no output file; start with -o"
		return m
	}
	if err := pkgio.ExportJSON(m.Graph, m.Path); err != nil {
		m.status = err.Error()
		return m
	}
	m.status = "wrote " + m.Path
	return m
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Vertex Cover Explorer"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s vertices  %s edges  %s components  k = %s\n\n",
		StyleNumber.Render(fmt.Sprint(m.Graph.VertexCount())),
		StyleNumber.Render(fmt.Sprint(m.Graph.EdgeCount())),
		StyleNumber.Render(fmt.Sprint(len(m.Graph.Components()))),
		StyleNumber.Render(fmt.Sprint(m.K)))

	classes := m.Graph.PerformKernelization(m.K)
	rows := [][]string{
		{"isolated", fmt.Sprint(len(classes.Isolated)), formatVertices(classes.Isolated)},
		{"pendant", fmt.Sprint(len(classes.Pendant)), formatVertices(classes.Pendant)},
		{"tops", fmt.Sprint(len(classes.Tops)), formatVertices(classes.Tops)},
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Class", "Count", "Vertices").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	if m.Cover != nil {
		fmt.Fprintf(&b, "cover %s\n", StyleCover.Render(formatVertices(m.Cover)))
	} else {
		b.WriteString(listDimStyle.Render("cover: press s to solve"))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render(m.status))
	b.WriteString("\n\n")

	help := []string{
		exploreKeyStyle.Render("p/P") + " pendants",
		exploreKeyStyle.Render("t/T") + " tops",
		exploreKeyStyle.Render("i/I") + " isolated",
		exploreKeyStyle.Render("c/C/r") + " connect",
		exploreKeyStyle.Render("+/-") + " k",
		exploreKeyStyle.Render("s") + " solve",
		exploreKeyStyle.Render("u") + " undo",
		exploreKeyStyle.Render("w") + " write",
		exploreKeyStyle.Render("q") + " quit",
	}
	b.WriteString(listDimStyle.Render(strings.Join(help, "  ")))
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		vertices    int
		probability float64
		seed        uint64
		output      string
	)

	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Perturb a graph interactively",
		Long: `Open an interactive view of a graph. Without a file a random graph is
generated. Keys apply the perturbation and connectivity operators, s solves
for a minimum cover and u undoes the last change.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer runner.Close()

			s := pipeline.ResolveSeed(seedFlag(cmd, seed))
			var g *graph.Graph
			if len(args) == 1 {
				if g, err = pkgio.ImportJSON(args[0]); err != nil {
					return err
				}
				if output == "" {
					output = args[0]
				}
			} else if g, _, err = runner.Generate(vertices, probability, &s); err != nil {
				return err
			}

			opts := pipeline.Options{
				Method:   pipeline.MethodReduced,
				K:        cover.Unbounded,
				Seed:     &s,
				MaxNodes: cfg.Solver.MaxNodes,
				Restarts: cfg.Solver.Restarts,
			}
			model := NewExploreModel(cmd.Context(), runner, g, s, opts, output)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if errors.Is(err, tea.ErrProgramKilled) {
				return context.Canceled
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&vertices, "vertices", "n", 10, "vertices of the generated graph")
	cmd.Flags().Float64VarP(&probability, "probability", "p", 0.3, "edge probability of the generated graph")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: random)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file written by w (default: the input file)")

	return cmd
}
