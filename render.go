package flametext

import (
	"math"

	"github.com/gogpu/gg"
)

// Renderer walks a frame tree and draws one label per visible frame.
//
// A Renderer owns its metrics cache, which persists across passes so the
// second and later passes over a stable tree measure almost nothing. Create
// one Renderer per surface; Draw is not safe for concurrent invocation.
type Renderer struct {
	cache *MetricsCache

	// stack is the traversal work list, reused across passes so a steady
	// pan/zoom loop does not allocate per frame.
	stack []*Frame
}

// RendererOption configures a Renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	metricsCapacity int
}

// WithMetricsCapacity bounds the text metrics cache to capacity strings with
// least-recently-used eviction. The default (0) is unbounded, matching the
// naturally small label cardinality of a profiling session.
func WithMetricsCapacity(capacity int) RendererOption {
	return func(c *rendererConfig) {
		c.metricsCapacity = capacity
	}
}

// NewRenderer creates a Renderer with a fresh metrics cache.
func NewRenderer(opts ...RendererOption) *Renderer {
	var cfg rendererConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{
		cache: NewMetricsCache(cfg.metricsCapacity),
	}
}

// Cache returns the renderer's metrics cache, for stats inspection and
// explicit invalidation by callers that observe font changes directly.
func (r *Renderer) Cache() *MetricsCache {
	return r.cache
}

// Draw renders the label of every visible frame in roots onto s.
//
// vp is the visible config-space region, transform the config-to-physical
// affine map recomputed by the caller whenever viewport or surface size
// changes, and cfg the theme parameters for this pass. Draw reads the tree,
// viewport, transform, and config without modifying them; the metrics cache
// is the only state it mutates.
//
// Per frame the decision is: outside the viewport — skip the subtree;
// narrower than the ellipsis after padding — skip the subtree; otherwise
// draw the widest fitting form of the name and descend. Frames partially
// scrolled off-screen are clamped to the viewport first, so a wide frame's
// label stays pinned to its visible portion while panning.
func (r *Renderer) Draw(s Surface, roots []*Frame, vp Viewport, transform gg.Matrix, cfg Config) {
	if s == nil || len(roots) == 0 || vp.Width() <= 0 {
		return
	}

	// Pass-wide surface state, configured once, then the font-change probe.
	s.SetFont(cfg.FontFamily, cfg.FontSizePx())
	s.SetColor(cfg.Color)
	s.SetTextBaseline(BaselineMiddle)
	r.cache.BeginPass(s)

	measure := func(t string) float64 { return r.cache.Measure(s, t) }
	ellipsisPx := measure(ellipsis)
	padPx := cfg.PadPx()

	// Vertical reference: rows count down from the deepest frame when the
	// stacking is inverted, up from zero otherwise.
	maxDepth := 0
	if cfg.Inverted {
		maxDepth = MaxDepth(roots)
	}

	// Pre-order traversal with an explicit stack: a label is drawn before
	// its children are considered, and siblings pop left to right. The
	// explicit stack keeps pathologically deep call stacks from exhausting
	// goroutine stack space.
	stack := r.stack[:0]
	for i := len(roots) - 1; i >= 0; i-- {
		if overlapsViewport(roots[i], vp) {
			stack = append(stack, roots[i])
		}
	}

	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		// Clear the vacated slot: the reused backing array must not pin a
		// swapped-out tree against collection between passes.
		stack[n] = nil
		stack = stack[:n]

		// Clamp to the viewport so off-screen extents neither shift the
		// label origin nor inflate the width budget.
		left := math.Max(f.Start, vp.Left)
		right := math.Min(f.End, vp.Right)

		row := float64(f.Depth)
		if cfg.Inverted {
			row = float64(maxDepth - f.Depth)
		}

		px, py, pw, ph := projectRect(transform, left, row, right-left, 1)
		if tooNarrow(pw, padPx, ellipsisPx) {
			continue
		}

		if label, ok := fitText(measure, f.Name, pw-2*padPx); ok {
			s.FillText(label, px+padPx, py+ph/2)
		}

		for i := len(f.Children) - 1; i >= 0; i-- {
			if overlapsViewport(f.Children[i], vp) {
				stack = append(stack, f.Children[i])
			}
		}
	}

	r.stack = stack[:0]
}
