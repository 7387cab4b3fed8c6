package flametext

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

// testTransform maps config space to physical space the way a pan/zoom
// controller would: x scaled by pxPerUnit after shifting the viewport's left
// edge to zero, y scaled by rowPx.
func testTransform(vp Viewport, pxPerUnit, rowPx float64) gg.Matrix {
	return gg.Scale(pxPerUnit, rowPx).Multiply(gg.Translate(-vp.Left, -vp.Top))
}

func testConfig() Config {
	return Config{
		FontFamily:       "Inter",
		FontSize:         12,
		RowHeight:        16,
		PadX:             2,
		DevicePixelRatio: 1,
		Color:            gg.RGB(1, 1, 1),
	}
}

func TestDrawConfiguresSurfaceOncePerPass(t *testing.T) {
	s := newFakeSurface(10)
	r := NewRenderer()
	vp := Viewport{Left: 0, Right: 100, Height: 10}

	r.Draw(s, []*Frame{{Name: "main", Start: 0, End: 100}}, vp, testTransform(vp, 10, 16), testConfig())

	if s.family != "Inter" || s.size != 12 {
		t.Errorf("font = (%q, %v), want (Inter, 12)", s.family, s.size)
	}
	if s.baseline != BaselineMiddle {
		t.Errorf("baseline = %v, want middle", s.baseline)
	}
	if s.color != gg.RGB(1, 1, 1) {
		t.Errorf("color = %+v, want white", s.color)
	}
	if got := s.measured[widthSentinel]; got != 1 {
		t.Errorf("sentinel probed %d times, want exactly 1 per pass", got)
	}
}

func TestDrawCullsOutsideViewportSubtrees(t *testing.T) {
	s := newFakeSurface(10)
	r := NewRenderer()

	roots := []*Frame{
		{Name: "visible", Start: 0, End: 50, Children: []*Frame{
			{Name: "visibleChild", Start: 10, End: 40, Depth: 1},
		}},
		{Name: "offscreen", Start: 60, End: 100, Children: []*Frame{
			{Name: "offscreenChild", Start: 60, End: 90, Depth: 1},
		}},
	}
	vp := Viewport{Left: 0, Right: 55, Height: 10}

	r.Draw(s, roots, vp, testTransform(vp, 10, 16), testConfig())

	drawn := s.drawnStrings()
	if !slices.Contains(drawn, "visible") || !slices.Contains(drawn, "visibleChild") {
		t.Errorf("visible subtree missing from draw calls: %q", drawn)
	}
	for _, d := range drawn {
		if d == "offscreen" || d == "offscreenChild" {
			t.Errorf("culled frame %q reached the surface", d)
		}
	}
}

func TestDrawSkipsNarrowSubtrees(t *testing.T) {
	s := newFakeSurface(10)
	r := NewRenderer()

	// At 10 px/unit the narrow frame projects to 10 px; minus 2x2 padding
	// that is below the 10 px ellipsis, so the whole subtree is skipped.
	roots := []*Frame{
		{Name: "wide", Start: 0, End: 100},
		{Name: "sliver", Start: 100, End: 101, Children: []*Frame{
			{Name: "sliverChild", Start: 100, End: 101, Depth: 1},
		}},
	}
	vp := Viewport{Left: 0, Right: 200, Height: 10}

	r.Draw(s, roots, vp, testTransform(vp, 10, 16), testConfig())

	drawn := s.drawnStrings()
	if !slices.Contains(drawn, "wide") {
		t.Fatalf("wide frame not drawn: %q", drawn)
	}
	for _, d := range drawn {
		if d == "sliver" || d == "sliverChild" {
			t.Errorf("narrow frame %q reached the surface", d)
		}
	}
}

func TestDrawClampsLabelToVisiblePortion(t *testing.T) {
	s := newFakeSurface(10)
	r := NewRenderer()

	roots := []*Frame{
		{Name: "alpha", Start: 0, End: 50},
		{Name: "beta", Start: 50, End: 100},
	}
	vp := Viewport{Left: 25, Right: 75, Height: 10}
	cfg := testConfig()

	// x' = 10*(x - 25): config 25 lands on physical 0.
	r.Draw(s, roots, vp, testTransform(vp, 10, 16), cfg)

	if len(s.texts) != 2 {
		t.Fatalf("drew %d labels, want 2: %q", len(s.texts), s.drawnStrings())
	}
	first := s.texts[0]
	if first.s != "alpha" {
		t.Fatalf("first drawn label = %q, want alpha", first.s)
	}
	// Pinned to the viewport's left edge plus padding, not to config 0
	// (which would be physical -250).
	wantX := 0 + cfg.PadPx()
	if math.Abs(first.x-wantX) > 1e-9 {
		t.Errorf("alpha drawn at x = %v, want %v (clamped to viewport)", first.x, wantX)
	}
	second := s.texts[1]
	if wantX := 10*(50-25.0) + cfg.PadPx(); math.Abs(second.x-wantX) > 1e-9 {
		t.Errorf("beta drawn at x = %v, want %v", second.x, wantX)
	}
}

func TestDrawTruncatesToVisibleWidth(t *testing.T) {
	s := newFakeSurface(10)
	r := NewRenderer()

	// 40 runes: full width 400 px, but only [25, 34) of [0, 200) is visible,
	// projecting to 90 px; minus padding that is 86, room for 7 runes + "…".
	label := "averyveryverylongfunctionnamepaddedto40c"
	roots := []*Frame{{Name: label, Start: 0, End: 200}}
	vp := Viewport{Left: 25, Right: 34, Height: 10}
	cfg := testConfig()

	r.Draw(s, roots, vp, testTransform(vp, 10, 16), cfg)

	if len(s.texts) != 1 {
		t.Fatalf("drew %d labels, want 1", len(s.texts))
	}
	got := s.texts[0].s
	if got == label {
		t.Fatalf("label was not truncated despite 86 px budget")
	}
	if w := float64(len([]rune(got))) * 10; w > 86 {
		t.Errorf("drawn label %q measures %v px, exceeds the 86 px visible budget", got, w)
	}
}

func TestDrawInvertedMirrorsRows(t *testing.T) {
	roots := []*Frame{
		{Name: "root", Start: 0, End: 100, Children: []*Frame{
			{Name: "child", Start: 0, End: 100, Depth: 1},
		}},
	}
	vp := Viewport{Left: 0, Right: 100, Height: 10}
	transform := testTransform(vp, 10, 16)

	yByName := func(inverted bool) map[string]float64 {
		s := newFakeSurface(10)
		cfg := testConfig()
		cfg.Inverted = inverted
		NewRenderer().Draw(s, roots, vp, transform, cfg)
		out := make(map[string]float64)
		for _, d := range s.texts {
			out[d.s] = d.y
		}
		return out
	}

	normal := yByName(false)
	inverted := yByName(true)

	if normal["root"] >= normal["child"] {
		t.Errorf("normal orientation: root y %v not above child y %v", normal["root"], normal["child"])
	}
	if inverted["root"] <= inverted["child"] {
		t.Errorf("inverted orientation: root y %v not below child y %v", inverted["root"], inverted["child"])
	}
	if normal["root"] != inverted["child"] || normal["child"] != inverted["root"] {
		t.Errorf("rows not mirrored: normal %v, inverted %v", normal, inverted)
	}
}

func TestDrawPreOrderParentBeforeChild(t *testing.T) {
	s := newFakeSurface(10)
	r := NewRenderer()

	roots := []*Frame{
		{Name: "parent", Start: 0, End: 100, Children: []*Frame{
			{Name: "left", Start: 0, End: 40, Depth: 1},
			{Name: "right", Start: 40, End: 100, Depth: 1},
		}},
	}
	vp := Viewport{Left: 0, Right: 100, Height: 10}

	r.Draw(s, roots, vp, testTransform(vp, 10, 16), testConfig())

	want := []string{"parent", "left", "right"}
	if got := s.drawnStrings(); !slices.Equal(got, want) {
		t.Errorf("draw order = %q, want %q", got, want)
	}
}

func TestDrawDegeneratePasses(t *testing.T) {
	r := NewRenderer()
	vp := Viewport{Left: 0, Right: 100}
	transform := testTransform(vp, 10, 16)
	roots := []*Frame{{Name: "main", Start: 0, End: 100}}

	// None of these may panic or draw.
	r.Draw(nil, roots, vp, transform, testConfig())
	s := newFakeSurface(10)
	r.Draw(s, nil, vp, transform, testConfig())
	r.Draw(s, roots, Viewport{Left: 50, Right: 50}, transform, testConfig())
	if len(s.texts) != 0 {
		t.Errorf("degenerate passes drew %d labels, want 0", len(s.texts))
	}
}

func TestDrawReusesCacheAcrossPasses(t *testing.T) {
	s := newFakeSurface(10)
	r := NewRenderer()
	roots := []*Frame{
		{Name: "main", Start: 0, End: 100, Children: []*Frame{
			{Name: "runtime.mallocgc", Start: 10, End: 60, Depth: 1},
		}},
	}
	vp := Viewport{Left: 0, Right: 100, Height: 10}
	transform := testTransform(vp, 10, 16)

	r.Draw(s, roots, vp, transform, testConfig())
	measuredAfterFirst := len(s.measured)
	r.Draw(s, roots, vp, transform, testConfig())

	if len(s.measured) != measuredAfterFirst {
		t.Errorf("second pass measured %d new strings, want 0 (stable font, stable tree)",
			len(s.measured)-measuredAfterFirst)
	}
	if got := len(s.texts); got != 4 {
		t.Errorf("drew %d labels over two passes, want 4", got)
	}
}

func TestDrawReleasesTraversalStack(t *testing.T) {
	s := newFakeSurface(10)
	r := NewRenderer()
	roots := []*Frame{
		{Name: "parent", Start: 0, End: 100, Children: []*Frame{
			{Name: "left", Start: 0, End: 40, Depth: 1},
			{Name: "right", Start: 40, End: 100, Depth: 1},
		}},
	}
	vp := Viewport{Left: 0, Right: 100, Height: 10}

	r.Draw(s, roots, vp, testTransform(vp, 10, 16), testConfig())

	// The work list is kept for its capacity only; a retained frame pointer
	// would pin the whole previous tree after the caller swaps trees.
	for i, f := range r.stack[:cap(r.stack)] {
		if f != nil {
			t.Errorf("stack slot %d still holds %q after the pass", i, f.Name)
		}
	}
}

// buildBenchTree builds a balanced tree of the given depth and fanout with
// proportionally split child intervals.
func buildBenchTree(name string, start, end float64, depth, maxDepth, fanout int) *Frame {
	f := &Frame{Name: name + "fn", Start: start, End: end, Depth: depth}
	if depth == maxDepth {
		return f
	}
	span := (end - start) / float64(fanout)
	for i := 0; i < fanout; i++ {
		childStart := start + span*float64(i)
		f.Children = append(f.Children,
			buildBenchTree(name, childStart, childStart+span*0.9, depth+1, maxDepth, fanout))
	}
	return f
}

func BenchmarkDraw(b *testing.B) {
	s := newFakeSurface(10)
	r := NewRenderer()
	roots := []*Frame{buildBenchTree("pkg.secretlylong", 0, 1e6, 0, 7, 4)}
	vp := Viewport{Left: 2e5, Right: 8e5, Height: 24}
	transform := testTransform(vp, 1920/vp.Width(), 16)
	cfg := testConfig()

	b.ReportAllocs()
	for b.Loop() {
		s.texts = s.texts[:0]
		r.Draw(s, roots, vp, transform, cfg)
	}
}
