// Package server exposes the pipeline over HTTP.
//
// Routes follow the request and response shapes of the explorer web
// front end: graphs travel as {"0":[1],"1":[0]} maps under a "graph" key,
// operator endpoints answer with the mutated graph and cover endpoints with
// a vertex list. Add ?edges=true to a cover endpoint to receive the full
// solution instead.
//
//	srv := server.New(runner, logger, server.Options{AllowedOrigins: []string{"*"}})
//	err := srv.ListenAndServe(ctx, ":8000")
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/vertexcover/pkg/pipeline"
)

// Defaults for zero-valued [Options] fields.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodyBytes   = 1 << 20
	shutdownTimeout       = 10 * time.Second
)

// Options configures a [Server].
type Options struct {
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string

	// RequestTimeout bounds each request, including solver time.
	RequestTimeout time.Duration

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64

	// MaxNodes and Restarts are applied to every solve.
	MaxNodes int
	Restarts int

	// Metrics serves /metrics when non-nil.
	Metrics http.Handler
}

// Server handles the HTTP API.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	validate *validator.Validate
	opts     Options
}

// New creates a server. A nil logger uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if opts.MaxBodyBytes == 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)
	return &Server{
		runner:   runner,
		logger:   logger,
		validate: validate,
		opts:     opts,
	}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(s.cors)

	r.Get("/", s.handleRoot)
	r.Get("/healthz", s.handleHealth)
	if s.opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.opts.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(s.timeout)

		r.Post("/generate", s.handleGenerate)
		r.Put("/get-matrix", s.handleMatrix)
		r.Post("/components", s.handleComponents)

		for _, op := range pipeline.Operators("") {
			r.Put("/"+op.Name, s.handleOperator(op))
		}

		r.Post("/solve", s.handleSolve(""))
		r.Post("/vertex-cover", s.handleSolve(pipeline.MethodBrute))
		r.Post("/vertex-cover-kernelized", s.handleSolve(pipeline.MethodReduced))
		r.Post("/vertex-cover-approximation", s.handleSolve(pipeline.MethodMatching))
		r.Post("/tree-cover", s.handleSolve(pipeline.MethodLeaf))

		r.Post("/kernelization", s.handleKernelization)
		r.Post("/render", s.handleRender)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
