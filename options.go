package displaylist

import (
	"log/slog"

	"github.com/gogpu/displaylist/geom"
)

// BuilderOption configures a Builder during creation.
// Use functional options to customize Builder behavior.
//
// Example:
//
//	// Unbounded recording without a spatial index
//	b := displaylist.NewBuilder()
//
//	// Recording limited to a viewport, indexed for culled replay
//	b := displaylist.NewBuilder(
//	    displaylist.WithCullRect(geom.XYWH(0, 0, 800, 600)),
//	    displaylist.WithRTree(),
//	)
type BuilderOption func(*builderOptions)

// builderOptions holds optional configuration for Builder creation.
type builderOptions struct {
	cull   geom.Rect
	rtree  bool
	logger *slog.Logger
}

// defaultOptions returns the default builder options.
func defaultOptions() builderOptions {
	return builderOptions{
		cull: geom.MaxCullRect,
	}
}

// WithCullRect bounds the coordinate space of the recording. Draws that
// fall entirely outside cull are dropped, and unbounded draws contribute
// cull to the bounds. Non-finite or empty rectangles are ignored.
func WithCullRect(cull geom.Rect) BuilderOption {
	return func(o *builderOptions) {
		cull = cull.Sorted()
		if cull.IsFinite() && !cull.IsEmpty() {
			o.cull = cull
		}
	}
}

// WithRTree requests an R-tree over the recorded operations at Build time.
// The index enables DispatchCulled and DisplayList.RTree.
func WithRTree() BuilderOption {
	return func(o *builderOptions) {
		o.rtree = true
	}
}

// WithLogger sets a logger for this builder only. By default builders log
// through the package logger (see SetLogger).
func WithLogger(l *slog.Logger) BuilderOption {
	return func(o *builderOptions) {
		o.logger = l
	}
}
