package cover_test

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/vertexcover/pkg/cover"
	"github.com/matzehuels/vertexcover/pkg/graph"
)

func ExampleBrute() {
	// Triangle: any two vertices form a minimum cover.
	g := graph.New()
	for v := range 3 {
		g.AddVertex(v)
	}
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 2)

	res, err := cover.Brute(context.Background(), g, cover.Options{
		K:    cover.Unbounded,
		Rand: rand.New(rand.NewPCG(42, 42^0xdeadbeef)),
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(len(res.Vertices), len(res.Covered), cover.Verify(g, res.Vertices))
	// Output: 2 3 true
}

func ExampleLeafCover() {
	// Path 0-1-2-3-4.
	g := graph.New()
	for v := range 5 {
		g.AddVertex(v)
	}
	for v := range 4 {
		_ = g.AddEdge(v, v+1)
	}
	fmt.Println(cover.LeafCover(g))
	// Output: [1 3]
}

func ExampleKernelize() {
	// Star centred on 0 plus an isolated vertex 4.
	g := graph.New()
	for v := range 5 {
		g.AddVertex(v)
	}
	for v := 1; v <= 3; v++ {
		_ = g.AddEdge(0, v)
	}
	kern := cover.Kernelize(g, cover.Unbounded)
	fmt.Println("forced:", kern.Forced)
	fmt.Println("dropped:", kern.Dropped)
	// Output:
	// forced: [0]
	// dropped: [1 2 3 4]
}
