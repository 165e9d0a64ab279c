package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/vertexcover/pkg/cover"
	pkgio "github.com/matzehuels/vertexcover/pkg/io"
	"github.com/matzehuels/vertexcover/pkg/pipeline"
)

const noCacheConfig = "[cache]\nbackend = \"none\"\n"

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := testCLI(t, noCacheConfig)
	root := c.RootCommand()
	root.SetArgs(append([]string{"--config", c.configPath}, args...))
	root.SetIn(strings.NewReader(stdin))
	var out, stderr bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&stderr)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateThenSolve(t *testing.T) {
	graphJSON, err := execute(t, "", "generate", "-n", "8", "-p", "0.4", "--seed", "7")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	g, err := pkgio.ReadJSON(strings.NewReader(graphJSON))
	if err != nil {
		t.Fatalf("generated graph does not decode: %v", err)
	}
	if g.VertexCount() != 8 {
		t.Fatalf("vertices = %d, want 8", g.VertexCount())
	}

	again, err := execute(t, "", "generate", "-n", "8", "-p", "0.4", "--seed", "7")
	if err != nil {
		t.Fatal(err)
	}
	if again != graphJSON {
		t.Error("generate with the same seed is not reproducible")
	}

	for _, method := range pipeline.Methods {
		t.Run(method, func(t *testing.T) {
			out, err := execute(t, graphJSON, "solve", "--json", "-m", method, "--seed", "1")
			if err != nil {
				t.Fatalf("solve: %v", err)
			}
			var sol pipeline.Solution
			if err := json.Unmarshal([]byte(out), &sol); err != nil {
				t.Fatalf("decode solution: %v\n%s", err, out)
			}
			if !cover.Verify(g, sol.Vertices) {
				t.Errorf("%v does not cover the graph", sol.Vertices)
			}
		})
	}
}

func TestSolvePlainOutput(t *testing.T) {
	// triangle with a pendant on 1: every minimum cover has two vertices
	path := writeFile(t, "g.json", `{"0":[1,2],"1":[0,2,3],"2":[0,1],"3":[1]}`)
	out, err := execute(t, "", "solve", path)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), ",")); n != 2 {
		t.Errorf("cover %q has %d vertices, want 2", out, n)
	}
}

func TestSolveRejectsUnknownMethod(t *testing.T) {
	if _, err := execute(t, `{"0":[1],"1":[0]}`, "solve", "-m", "magic"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestKernelCommand(t *testing.T) {
	star := `{"0":[1,2,3],"1":[0],"2":[0],"3":[0],"4":[]}`
	out, err := execute(t, star, "kernel", "-k", "1", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var report pipeline.KernelReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if got := report.Classes.Pendant; len(got) != 3 {
		t.Errorf("pendant = %v, want [1 2 3]", got)
	}
	if got := report.Classes.Tops; len(got) != 1 || got[0] != 0 {
		t.Errorf("tops = %v, want [0]", got)
	}
	if got := report.Classes.Isolated; len(got) != 1 || got[0] != 4 {
		t.Errorf("isolated = %v, want [4]", got)
	}
	if got := report.Kernel.Forced; len(got) != 1 || got[0] != 0 {
		t.Errorf("forced = %v, want [0]", got)
	}
}

func TestOperatorCommands(t *testing.T) {
	path := `{"0":[1],"1":[0,2],"2":[1]}`
	tests := []struct {
		args  []string
		edges func(int) bool
	}{
		{[]string{"perturb", "increase-isolated", "--seed", "3"}, func(n int) bool { return n < 2 }},
		{[]string{"perturb", "remove-random-edge", "--vertex", "1", "--seed", "3"}, func(n int) bool { return n == 1 }},
		{[]string{"connect", "random", "--seed", "3"}, func(n int) bool { return n == 3 }},
		{[]string{"perturb", "increase-tops", "-k", "1", "--seed", "3"}, func(n int) bool { return n == 3 }},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args[:2], " "), func(t *testing.T) {
			out, err := execute(t, path, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			g, err := pkgio.ReadJSON(strings.NewReader(out))
			if err != nil {
				t.Fatalf("decode: %v\n%s", err, out)
			}
			if !tt.edges(g.EdgeCount()) {
				t.Errorf("unexpected edge count %d", g.EdgeCount())
			}
		})
	}
}

func TestOperatorNeedsVertex(t *testing.T) {
	if _, err := execute(t, `{"0":[1],"1":[0]}`, "perturb", "remove-random-edge"); err == nil {
		t.Error("expected error without --vertex")
	}
	if _, err := execute(t, `{"0":[1],"1":[0]}`, "connect", "vertex", "--vertex", "9"); err == nil {
		t.Error("expected error for unknown vertex")
	}
}

func TestRenderDOT(t *testing.T) {
	out, err := execute(t, `{"0":[1],"1":[0,2],"2":[1]}`, "render", "-f", "dot", "--cover", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "graph G {") {
		t.Errorf("not a DOT graph:\n%s", out)
	}
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, "", "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[server]", "[cache]", `backend = "none"`} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestCacheClearFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := testCLI(t, "[cache]\nbackend = \"file\"\ndir = \""+filepath.ToSlash(dir)+"\"\n")
	root := c.RootCommand()
	root.SetArgs([]string{"--config", c.configPath, "cache", "clear"})
	root.SetOut(&bytes.Buffer{})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
}
