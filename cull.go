package flametext

// overlapsViewport reports whether the frame's half-open [Start, End)
// interval intersects the viewport's [Left, Right). A frame that fails this
// test is skipped together with its entire subtree: children's intervals
// are contained in the parent's, so none of them can intersect either.
func overlapsViewport(f *Frame, vp Viewport) bool {
	return f.End > vp.Left && f.Start < vp.Right
}

// tooNarrow reports whether a projected frame width, after subtracting the
// side padding, falls at or below the minimum renderable label width (the
// measured ellipsis). A frame that fails this test is skipped together with
// its subtree: a child cannot be wider than its containing parent, so no
// child could show more text than already failed here.
func tooNarrow(pw, padPx, ellipsisPx float64) bool {
	return pw-2*padPx <= ellipsisPx
}
