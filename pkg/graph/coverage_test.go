package graph

import (
	"errors"
	"testing"
)

func TestVertexCover(t *testing.T) {
	path := func(t *testing.T) *Graph {
		return build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	}
	triangle := func(t *testing.T) *Graph {
		return build(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	}

	tests := []struct {
		name  string
		g     func(*testing.T) *Graph
		v     int
		depth int
		want  int
	}{
		{"path depth 0", path, 0, 0, 0},
		{"path end depth 1", path, 0, 1, 1},
		{"path middle depth 1", path, 1, 1, 2},
		{"path end depth 2", path, 0, 2, 2},
		{"path end depth 3", path, 0, 3, 3},
		{"path end depth 10", path, 0, 10, 3},
		{"triangle depth 1", triangle, 0, 1, 2},
		{"triangle depth 3", triangle, 0, 3, 3},
		{"triangle depth 5", triangle, 2, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.g(t).VertexCover(tt.v, tt.depth)
			if err != nil {
				t.Fatal(err)
			}
			if got.Len() != tt.want {
				t.Errorf("VertexCover(%d, %d) = %v, want %d edges", tt.v, tt.depth, got.Edges(), tt.want)
			}
		})
	}
}

func TestVertexCoverNoDuplicates(t *testing.T) {
	g := Random(12, 0.5, seeded(4))
	for _, v := range g.Vertices() {
		for depth := 1; depth <= 4; depth++ {
			set, _ := g.VertexCover(v, depth)
			edges := set.Edges()
			for i, a := range edges {
				for _, b := range edges[i+1:] {
					if a.Same(b) {
						t.Fatalf("VertexCover(%d, %d) repeats %v", v, depth, a)
					}
				}
			}
			if set.Len() > g.EdgeCount() {
				t.Fatalf("VertexCover(%d, %d) covers %d of %d edges", v, depth, set.Len(), g.EdgeCount())
			}
		}
	}
}

func TestVertexCoverUnknown(t *testing.T) {
	if _, err := New().VertexCover(3, 1); !errors.Is(err, ErrUnknownVertex) {
		t.Errorf("err = %v, want %v", err, ErrUnknownVertex)
	}
}

func TestDegreeMatchesNeighbors(t *testing.T) {
	g := Random(15, 0.4, seeded(8))
	for _, v := range g.Vertices() {
		if got, want := g.Degree(v), len(g.Neighbors(v)); got != want {
			t.Errorf("Degree(%d) = %d, want %d", v, got, want)
		}
	}
	if got := g.Degree(99); got != 0 {
		t.Errorf("Degree(99) = %d, want 0", got)
	}
}

func TestDegreePredicates(t *testing.T) {
	// Star centred on 0 plus an isolated vertex 4.
	g := build(t, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})

	tests := []struct {
		v                 int
		isolated, pendant bool
		topsAt1, topsAt3  bool
	}{
		{0, false, false, true, false},
		{1, false, true, false, false},
		{4, true, false, false, false},
	}

	for _, tt := range tests {
		if got := g.IsIsolated(tt.v); got != tt.isolated {
			t.Errorf("IsIsolated(%d) = %v, want %v", tt.v, got, tt.isolated)
		}
		if got := g.IsPendant(tt.v); got != tt.pendant {
			t.Errorf("IsPendant(%d) = %v, want %v", tt.v, got, tt.pendant)
		}
		if got := g.IsTops(tt.v, 1); got != tt.topsAt1 {
			t.Errorf("IsTops(%d, 1) = %v, want %v", tt.v, got, tt.topsAt1)
		}
		if got := g.IsTops(tt.v, 3); got != tt.topsAt3 {
			t.Errorf("IsTops(%d, 3) = %v, want %v", tt.v, got, tt.topsAt3)
		}
	}
}

func TestHighestDegreeVertex(t *testing.T) {
	g := build(t, 5, [2]int{0, 1}, [2]int{2, 3}, [2]int{2, 4})

	tests := []struct {
		name      string
		among     []int
		want      int
		wantFound bool
	}{
		{"all", nil, 2, true},
		{"tie goes to last", []int{0, 1}, 1, true},
		{"subset", []int{3, 0, 4}, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := g.HighestDegreeVertex(tt.among...)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("HighestDegreeVertex(%v) = %d, %v, want %d, %v", tt.among, got, found, tt.want, tt.wantFound)
			}
		})
	}

	if _, found := New().HighestDegreeVertex(); found {
		t.Error("HighestDegreeVertex on empty graph found a vertex")
	}
}
