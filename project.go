package flametext

import "github.com/gogpu/gg"

// projectRect maps the config-space rectangle with origin (x, y) and extent
// (w, h) through m, returning the physical-space origin and extent.
//
// The four results are computed directly from the six affine coefficients so
// the per-node hot loop never constructs intermediate point or rectangle
// values. The extent is the delta of the far corner, which makes the result
// numerically identical to transforming the rectangle's corners for the
// scale-plus-translate transforms pan/zoom produces.
func projectRect(m gg.Matrix, x, y, w, h float64) (px, py, pw, ph float64) {
	px = m.A*x + m.B*y + m.C
	py = m.D*x + m.E*y + m.F
	pw = m.A*w + m.B*h
	ph = m.D*w + m.E*h
	return px, py, pw, ph
}
