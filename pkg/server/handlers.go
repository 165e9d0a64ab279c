package server

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/matzehuels/vertexcover/pkg/cover"
	"github.com/matzehuels/vertexcover/pkg/errors"
	"github.com/matzehuels/vertexcover/pkg/graph"
	"github.com/matzehuels/vertexcover/pkg/io"
	"github.com/matzehuels/vertexcover/pkg/pipeline"
	"github.com/matzehuels/vertexcover/pkg/render/nodelink"
)

// seedHeader reports the seed a randomized response was produced with.
const seedHeader = "X-Seed"

// =============================================================================
// Request Types
// =============================================================================

type generateRequest struct {
	Vertices    int     `json:"vertices" validate:"gte=0,lte=512"`
	Probability float64 `json:"probability" validate:"gte=0,lte=1"`
	Seed        *uint64 `json:"seed"`
}

type graphRequest struct {
	Graph io.Map `json:"graph" validate:"required"`
}

type operatorRequest struct {
	Graph  io.Map  `json:"graph" validate:"required"`
	K      *int    `json:"k" validate:"omitempty,gte=0"`
	Vertex *int    `json:"vertex" validate:"omitempty,gte=0"`
	Seed   *uint64 `json:"seed"`
}

type solveRequest struct {
	Graph    io.Map  `json:"graph" validate:"required"`
	Method   string  `json:"method" validate:"omitempty,oneof=brute kernelized reduced matching leaf"`
	K        *int    `json:"k" validate:"omitempty,gte=-1"`
	Depth    int     `json:"depth" validate:"omitempty,gte=1,lte=16"`
	Restarts int     `json:"restarts" validate:"omitempty,gte=1,lte=16"`
	Seed     *uint64 `json:"seed"`
}

type kernelRequest struct {
	Graph io.Map `json:"graph" validate:"required"`
	K     *int   `json:"k" validate:"required,gte=-1"`
}

type renderRequest struct {
	Graph     io.Map `json:"graph" validate:"required"`
	Format    string `json:"format" validate:"omitempty,oneof=svg png dot"`
	Layout    string `json:"layout" validate:"omitempty,oneof=neato circo dot fdp sfdp"`
	Highlight string `json:"highlight" validate:"omitempty,oneof=none cover classes"`
	Cover     []int  `json:"cover" validate:"omitempty,dive,gte=0"`
	K         int    `json:"k" validate:"gte=0"`
}

// =============================================================================
// Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body")
	}
	return s.validate.Struct(dst)
}

// decodeGraph converts a wire map into a graph.
func decodeGraph(m io.Map) (*graph.Graph, error) {
	g, err := io.DecodeMap(m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "invalid graph")
	}
	return g, nil
}

func queryBool(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"Hello": "World"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, seed, err := s.runner.Generate(req.Vertices, req.Probability, req.Seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set(seedHeader, strconv.FormatUint(seed, 10))
	writeJSON(w, http.StatusOK, io.EncodeMap(g))
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := decodeGraph(req.Graph)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g.AdjacencyMatrix())
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := decodeGraph(req.Graph)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g.Components())
}

// handleOperator applies op and answers with the resulting graph, changed
// or not.
func (s *Server) handleOperator(op pipeline.Operator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req operatorRequest
		if err := s.decode(w, r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		if op.NeedsK && req.K == nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "%s requires k", op.Name))
			return
		}
		if op.NeedsVertex && req.Vertex == nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "%s requires vertex", op.Name))
			return
		}
		g, err := decodeGraph(req.Graph)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		var args pipeline.OpArgs
		if req.K != nil {
			args.K = *req.K
		}
		if req.Vertex != nil {
			args.Vertex = *req.Vertex
		}
		seed := pipeline.ResolveSeed(req.Seed)
		if _, err := s.runner.Apply(r.Context(), g, op.Name, args, pipeline.NewRand(seed)); err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set(seedHeader, strconv.FormatUint(seed, 10))
		writeJSON(w, http.StatusOK, io.EncodeMap(g))
	}
}

// handleSolve runs a cover search. An empty method takes it from the body.
func (s *Server) handleSolve(method string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req solveRequest
		if err := s.decode(w, r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		g, err := decodeGraph(req.Graph)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		opts := pipeline.Options{
			Method:   method,
			K:        cover.Unbounded,
			Depth:    req.Depth,
			Seed:     req.Seed,
			MaxNodes: s.opts.MaxNodes,
			Restarts: req.Restarts,
		}
		if opts.Method == "" {
			opts.Method = req.Method
		}
		if req.K != nil {
			opts.K = *req.K
		}
		if opts.Restarts == 0 {
			opts.Restarts = s.opts.Restarts
		}

		sol, err := s.runner.Solve(r.Context(), g, opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set(seedHeader, strconv.FormatUint(sol.Seed, 10))
		if queryBool(r, "edges") {
			writeJSON(w, http.StatusOK, sol)
			return
		}
		writeJSON(w, http.StatusOK, sol.Vertices)
	}
}

func (s *Server) handleKernelization(w http.ResponseWriter, r *http.Request) {
	var req kernelRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := decodeGraph(req.Graph)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	report, err := s.runner.Kernelize(r.Context(), g, *req.K)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if queryBool(r, "kernel") {
		writeJSON(w, http.StatusOK, report)
		return
	}
	writeJSON(w, http.StatusOK, report.Classes)
}

var contentTypes = map[string]string{
	nodelink.FormatSVG: "image/svg+xml",
	nodelink.FormatPNG: "image/png",
	nodelink.FormatDOT: "text/vnd.graphviz; charset=utf-8",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := decodeGraph(req.Graph)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := pipeline.Options{
		Format:    req.Format,
		Layout:    req.Layout,
		Highlight: req.Highlight,
		Cover:     req.Cover,
		K:         req.K,
	}
	data, err := s.runner.Render(r.Context(), g, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := req.Format
	if format == "" {
		format = pipeline.DefaultFormat
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// jsonTagName reports JSON field names in validation errors.
func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
