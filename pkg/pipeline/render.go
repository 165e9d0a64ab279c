package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/vertexcover/pkg/cache"
	"github.com/matzehuels/vertexcover/pkg/errors"
	"github.com/matzehuels/vertexcover/pkg/graph"
	"github.com/matzehuels/vertexcover/pkg/observability"
	"github.com/matzehuels/vertexcover/pkg/render/nodelink"
)

// RenderWithCacheInfo draws g in opts.Format and reports whether the bytes
// came from the cache. With [HighlightCover] the opts.Cover vertices are
// filled; with [HighlightClasses] vertices are coloured by their class at
// threshold opts.K.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	for _, v := range opts.Cover {
		if !g.HasVertex(v) {
			return nil, false, errors.New(errors.ErrCodeInvalidInput, "cover vertex %d is not in the graph", v)
		}
	}
	logger := r.logger(opts)
	cacheKey := r.Keyer.ArtifactKey(GraphHash(g), opts.ArtifactKeyOpts())

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	dopts := nodelink.Options{Layout: opts.Layout}
	switch opts.Highlight {
	case HighlightCover:
		dopts.Cover = opts.Cover
	case HighlightClasses:
		classes := g.PerformKernelization(opts.K)
		dopts.Classes = &classes
	}

	start := time.Now()
	data, err := nodelink.Render(ctx, nodelink.ToDOT(g, dopts), opts.Format)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, time.Since(start), err)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render %s", opts.Format)
	}

	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	logger.Info("rendered",
		"format", opts.Format,
		"bytes", len(data),
		"duration", time.Since(start))
	return data, false, nil
}

// Render is RenderWithCacheInfo without the cache hit flag.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, opts Options) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, g, opts)
	return data, err
}
