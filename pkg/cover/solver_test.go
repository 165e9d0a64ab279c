package cover

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/vertexcover/pkg/graph"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func build(t *testing.T, n int, edges ...[2]int) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := range n {
		g.AddVertex(i)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", e[0], e[1], err)
		}
	}
	return g
}

func triangle(t *testing.T) *graph.Graph {
	return build(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})
}

// bruteMinimum enumerates subsets to find the minimum cover size.
func bruteMinimum(g *graph.Graph) int {
	vs := g.Vertices()
	best := len(vs)
	for mask := 0; mask < 1<<len(vs); mask++ {
		var pick []int
		for i, v := range vs {
			if mask&(1<<i) != 0 {
				pick = append(pick, v)
			}
		}
		if len(pick) < best && Verify(g, pick) {
			best = len(pick)
		}
	}
	return best
}

func TestBruteTriangle(t *testing.T) {
	for seed := range uint64(10) {
		res, err := Brute(context.Background(), triangle(t), Options{K: Unbounded, Rand: seeded(seed)})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(res.Vertices) != 2 {
			t.Errorf("seed %d: Vertices = %v, want two vertices", seed, res.Vertices)
		}
		if len(res.Covered) != 3 {
			t.Errorf("seed %d: Covered = %v, want all three edges", seed, res.Covered)
		}
		if !res.Complete {
			t.Errorf("seed %d: Complete = false", seed)
		}
	}
}

func TestBruteTrivialBound(t *testing.T) {
	g := triangle(t)
	for _, k := range []int{3, 4, 10} {
		res, err := Brute(context.Background(), g, Options{K: k, Rand: seeded(1)})
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(res.Vertices, []int{0, 1, 2}) {
			t.Errorf("k=%d: Vertices = %v, want [0 1 2]", k, res.Vertices)
		}
		if len(res.Covered) != 3 {
			t.Errorf("k=%d: Covered = %v, want 3 edges", k, res.Covered)
		}
		if res.Nodes != 0 {
			t.Errorf("k=%d: Nodes = %d, want 0", k, res.Nodes)
		}
	}
}

func TestBruteFindsMinimum(t *testing.T) {
	for seed := range uint64(8) {
		g := graph.Random(7, 0.4, seeded(seed))
		want := bruteMinimum(g)

		res, err := Brute(context.Background(), g, Options{K: Unbounded, Rand: seeded(seed + 1)})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !Verify(g, res.Vertices) {
			t.Fatalf("seed %d: %v is not a cover", seed, res.Vertices)
		}
		if len(res.Vertices) != want {
			t.Errorf("seed %d: cover size = %d, want %d", seed, len(res.Vertices), want)
		}
	}
}

func TestBruteFixedK(t *testing.T) {
	// Star with centre 0: one vertex covers everything.
	g := build(t, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4})

	res, err := Brute(context.Background(), g, Options{K: 1, Rand: seeded(3)})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Vertices, []int{0}) {
		t.Errorf("Vertices = %v, want [0]", res.Vertices)
	}
	if len(res.Covered) != 4 {
		t.Errorf("Covered = %d edges, want 4", len(res.Covered))
	}
}

func TestBruteFixedKPartial(t *testing.T) {
	// Two disjoint edges: a single vertex covers one of them at best.
	g := build(t, 4, [2]int{0, 1}, [2]int{2, 3})

	res, err := Brute(context.Background(), g, Options{K: 1, Rand: seeded(3)})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Vertices) != 1 || len(res.Covered) != 1 {
		t.Errorf("got %v covering %v, want one vertex covering one edge", res.Vertices, res.Covered)
	}
	if Verify(g, res.Vertices) {
		t.Error("Verify() = true for a partial cover")
	}
}

func TestBruteEmpty(t *testing.T) {
	g := build(t, 3)
	res, err := Brute(context.Background(), g, Options{K: Unbounded})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Vertices) != 0 {
		t.Errorf("Vertices = %v, want none", res.Vertices)
	}
}

func TestKernelizedBruteSkipsIsolated(t *testing.T) {
	// Path 0-1-2 plus isolated 3 and 4. Pool size is 3, so k=3 is trivial
	// for the kernelized search but not for the plain one.
	g := build(t, 5, [2]int{0, 1}, [2]int{1, 2})

	res, err := KernelizedBrute(context.Background(), g, Options{K: 3, Rand: seeded(1)})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Vertices, []int{0, 1, 2}) {
		t.Errorf("Vertices = %v, want [0 1 2]", res.Vertices)
	}

	res, err = KernelizedBrute(context.Background(), g, Options{K: Unbounded, Rand: seeded(1)})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Vertices, []int{1}) {
		t.Errorf("Vertices = %v, want [1]", res.Vertices)
	}
}

func TestBruteOptionsValidation(t *testing.T) {
	g := triangle(t)
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"k below -1", Options{K: -2}, ErrInvalidBound},
		{"negative depth", Options{K: Unbounded, Depth: -1}, ErrInvalidDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Brute(context.Background(), g, tt.opts); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBruteBudget(t *testing.T) {
	g := graph.Random(12, 0.5, seeded(11))
	res, err := Brute(context.Background(), g, Options{K: Unbounded, Rand: seeded(1), MaxNodes: 50})
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("err = %v, want %v", err, ErrBudgetExceeded)
	}
	if res == nil || res.Complete {
		t.Fatalf("res = %+v, want incomplete result", res)
	}
	if res.Nodes > 51 {
		t.Errorf("Nodes = %d, want at most 51", res.Nodes)
	}
}

func TestBruteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := graph.Random(12, 0.5, seeded(11))
	res, err := Brute(ctx, g, Options{K: Unbounded, Rand: seeded(1)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want %v", err, context.Canceled)
	}
	if res.Complete {
		t.Error("Complete = true after cancellation")
	}
}

func TestBruteDepth(t *testing.T) {
	// On a path 0-1-2-3, vertex 1 reaches every edge at depth 2.
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	res, err := Brute(context.Background(), g, Options{K: Unbounded, Depth: 2, Rand: seeded(2)})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Vertices) != 1 {
		t.Errorf("Vertices = %v, want a single vertex", res.Vertices)
	}
}

func TestVerify(t *testing.T) {
	g := triangle(t)
	tests := []struct {
		vertices []int
		want     bool
	}{
		{[]int{0, 1}, true},
		{[]int{0, 1, 2}, true},
		{[]int{0}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := Verify(g, tt.vertices); got != tt.want {
			t.Errorf("Verify(%v) = %v, want %v", tt.vertices, got, tt.want)
		}
	}
}
