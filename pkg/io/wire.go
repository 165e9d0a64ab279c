package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/matzehuels/vertexcover/pkg/graph"
)

// ErrInvalidKey is returned for map keys that are not non-negative integers.
var ErrInvalidKey = errors.New("io: vertex key must be a non-negative integer")

// Map is the wire form of a graph: decimal vertex ids to neighbour lists.
type Map map[string][]int

// DecodeMap converts m into a graph with vertices in ascending id order.
func DecodeMap(m Map) (*graph.Graph, error) {
	order := make([]int, 0, len(m))
	adj := make(map[int][]int, len(m))
	for key, ns := range m {
		u, err := strconv.Atoi(key)
		if err != nil || u < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		if _, dup := adj[u]; dup {
			return nil, fmt.Errorf("%w: %q duplicates vertex %d", ErrInvalidKey, key, u)
		}
		order = append(order, u)
		adj[u] = ns
	}
	slices.Sort(order)

	g, err := graph.FromAdjacency(order, adj)
	if err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}
	return g, nil
}

// EncodeMap converts g into its wire form. Every list is non-nil.
func EncodeMap(g *graph.Graph) Map {
	m := make(Map, g.VertexCount())
	for _, u := range g.Vertices() {
		ns := g.Neighbors(u)
		if ns == nil {
			ns = []int{}
		}
		m[strconv.Itoa(u)] = ns
	}
	return m
}

// ReadJSON decodes a wire-format graph from r. It does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var m Map
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return DecodeMap(m)
}

// WriteJSON encodes g in the wire format and writes it to w.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(EncodeMap(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ImportJSON reads a wire-format graph from the file at path.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ExportJSON writes g to a file at path.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
