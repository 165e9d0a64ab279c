package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/vertexcover/pkg/graph"
)

func path3(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for v := range 4 {
		g.AddVertex(v)
	}
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(path3(t), Options{})

	for _, want := range []string{"graph G {", "layout=neato;", "0 -- 1;", "1 -- 2;", `3 [label="3"];`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("undirected graph rendered with directed edges")
	}
}

func TestToDOTCover(t *testing.T) {
	dot := ToDOT(path3(t), Options{Cover: []int{1}, Layout: "circo"})

	if !strings.Contains(dot, `1 [label="1", fillcolor="`+colorCover+`"]`) {
		t.Errorf("cover vertex not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, "0 -- 1 [penwidth=2.5];") {
		t.Errorf("covered edge not bold:\n%s", dot)
	}
	if !strings.Contains(dot, "layout=circo;") {
		t.Errorf("layout option ignored:\n%s", dot)
	}
}

func TestToDOTClasses(t *testing.T) {
	g := path3(t)
	classes := g.PerformKernelization(1)
	dot := ToDOT(g, Options{Classes: &classes})

	tests := []struct {
		vertex string
		color  string
	}{
		{"0", colorPendant},
		{"1", colorTops},
		{"3", colorIsolated},
	}
	for _, tt := range tests {
		want := tt.vertex + ` [label="` + tt.vertex + `", fillcolor="` + tt.color + `"]`
		if !strings.Contains(dot, want) {
			t.Errorf("vertex %s: missing %q", tt.vertex, want)
		}
	}
}

func TestRenderDOTPassthrough(t *testing.T) {
	out, err := Render(context.Background(), "graph G {}", FormatDOT)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "graph G {}" {
		t.Errorf("Render(dot) = %q", out)
	}
	if _, err := Render(context.Background(), "graph G {}", "gif"); err == nil {
		t.Error("Render(gif) err = nil")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(path3(t), Options{Cover: []int{1}}))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("output is not SVG: %.80s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="62" height="44"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte("<svg></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("normalizeViewBox without viewBox = %s", got)
	}
}
