// Package flametext renders frame labels for flamegraph visualizations.
//
// # Overview
//
// flametext is the text-overlay half of a flamegraph viewer: given a tree of
// stack frames positioned in an abstract coordinate space ("config space"),
// it draws a truncated, legible label inside every visible frame rectangle on
// a 2D surface, fast enough to run on every pan/zoom tick.
//
// The engine does not lay out the rectangles themselves. Frame geometry, the
// viewport, and the config-to-physical transform are supplied by the caller
// each pass; flametext decides, per node, whether to skip, draw the full
// label, or draw a center-elided one.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/flametext"
//	    "github.com/gogpu/flametext/integration/ggsurface"
//	)
//
//	r := flametext.NewRenderer()
//	r.Draw(surface, roots, viewport, transform, config)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Frame, Viewport, Config, Surface
//   - Core: metrics cache (sentinel invalidation), truncation solver
//     (binary search over kept runes), projector, viewport culler
//   - Backends: integration/ggsurface (gg raster), integration/rlsurface
//     (raylib windows), integration/termsurface (terminal cells)
//
// # Coordinate Systems
//
// Config space is the abstract space frame geometry lives in: X is the
// frame's time extent, Y is the stack row (one unit per row). Physical space
// is the surface's pixel space, reached through an affine gg.Matrix that the
// caller recomputes whenever the viewport or surface size changes.
//
// # Performance
//
// One draw pass performs hierarchical viewport culling (a frame outside the
// viewport prunes its whole subtree), projects rectangles without
// intermediate allocation, and measures text only through a memoizing cache,
// so repeated passes over a stable tree do almost no text measurement.
package flametext
