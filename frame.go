package flametext

// Frame is one call-stack entry in the flamegraph tree.
//
// Geometry is expressed in config space: [Start, End) is the frame's
// horizontal extent (time or weight), Depth its stack row. Children must be
// contained within the parent's interval and ordered left to right in call
// order; the renderer's subtree culling relies on that containment.
//
// The tree is owned by the caller's model and must not be mutated while a
// draw pass is running. flametext only ever reads it.
type Frame struct {
	// Name is the label drawn inside the frame's rectangle, typically the
	// function name.
	Name string

	// Start and End bound the frame's half-open [Start, End) interval in
	// config space.
	Start, End float64

	// Depth is the stack row, 0 for root frames.
	Depth int

	// Children are the calls made from within this frame, left to right.
	Children []*Frame
}

// Width returns the frame's horizontal extent in config units.
func (f *Frame) Width() float64 {
	return f.End - f.Start
}

// MaxDepth returns the deepest Depth value reachable from roots.
// Returns 0 for an empty forest.
func MaxDepth(roots []*Frame) int {
	maxDepth := 0
	stack := make([]*Frame, len(roots))
	copy(stack, roots)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.Depth > maxDepth {
			maxDepth = f.Depth
		}
		stack = append(stack, f.Children...)
	}
	return maxDepth
}

// Viewport is the currently visible sub-region of config space.
// Pan/zoom logic mutates it between frames; it is read-only during a pass.
type Viewport struct {
	// Left and Right bound the visible half-open [Left, Right) interval on
	// the horizontal axis.
	Left, Right float64

	// Top is the first visible stack row, Height the number of visible rows.
	// The renderer does not cull vertically; these exist so callers can
	// derive the transform and share one viewport value with the engine.
	Top, Height float64
}

// Width returns the visible horizontal extent in config units.
func (v Viewport) Width() float64 {
	return v.Right - v.Left
}
