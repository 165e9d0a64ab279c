// Package pkg provides the core libraries for vertexcover.
//
// # Overview
//
// Vertexcover generates random undirected graphs, perturbs their structure
// and searches for minimum vertex covers. The pkg directory is organized
// into three areas:
//
//  1. Domain logic: [graph] (adjacency store, generation, connectivity,
//     coverage, classification, perturbation) and [cover] (branch and bound,
//     kernelization, approximations)
//  2. Infrastructure: [cache], [config], [errors], [io], [observability]
//  3. Orchestration: [pipeline] (cached solve, kernelize, operators,
//     render) and [server] (HTTP API)
//
// # Architecture
//
// The typical data flow:
//
//	{"0":[1],...} wire map
//	         ↓
//	    [io] package (decode and validate)
//	         ↓
//	    [graph] package (perturb, connect, classify)
//	         ↓
//	    [cover] package (kernelize + search)
//	         ↓
//	    vertex list, JSON solution or SVG/PNG/DOT drawing
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/vertexcover/pkg/cover"
//	    "github.com/matzehuels/vertexcover/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	seed := uint64(42)
//	g, _, _ := runner.Generate(20, 0.2, &seed)
//	sol, _ := runner.Solve(context.Background(), g, pipeline.Options{
//	    Method: pipeline.MethodReduced,
//	    K:      cover.Unbounded,
//	    Seed:   &seed,
//	})
//	fmt.Println(sol.Vertices)
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/vertexcover/pkg/graph
// [cover]: https://pkg.go.dev/github.com/matzehuels/vertexcover/pkg/cover
// [cache]: https://pkg.go.dev/github.com/matzehuels/vertexcover/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/vertexcover/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/vertexcover/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/vertexcover/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/vertexcover/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/vertexcover/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/vertexcover/pkg/server
package pkg
