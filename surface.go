package flametext

import "github.com/gogpu/gg"

// Baseline selects how a surface interprets the y coordinate of FillText.
type Baseline uint8

const (
	// BaselineAlphabetic places y on the alphabetic baseline (the line most
	// letters sit on). This is the native baseline of raster text APIs.
	BaselineAlphabetic Baseline = iota

	// BaselineMiddle vertically centers the text on y. The renderer uses
	// this to center labels within their row.
	BaselineMiddle

	// BaselineTop places y at the top of the text box.
	BaselineTop
)

// String returns the string representation of the baseline.
func (b Baseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "Alphabetic"
	case BaselineMiddle:
		return "Middle"
	case BaselineTop:
		return "Top"
	default:
		return "Unknown"
	}
}

// Surface is the 2D text-drawing target the renderer draws onto.
//
// It is the minimal canvas-style contract the engine needs: activate a font,
// set a fill color and baseline once per pass, measure string widths under
// the active font, and fill strings at physical positions. Backends under
// integration/ adapt concrete drawing stacks to this interface; tests use
// in-memory fakes.
//
// MeasureText must be consistent for the duration of a pass: the same string
// measured twice under an unchanged font returns the same width. Font or DPI
// changes between passes are fine — the renderer's metrics cache detects
// them with a sentinel probe.
type Surface interface {
	// SetFont activates the named font family at the given pixel size for
	// subsequent MeasureText and FillText calls.
	SetFont(family string, sizePx float64)

	// SetColor sets the fill color for subsequent FillText calls.
	SetColor(c gg.RGBA)

	// SetTextBaseline sets how FillText interprets its y coordinate.
	SetTextBaseline(b Baseline)

	// MeasureText returns the horizontal advance of s in physical pixels
	// under the active font.
	MeasureText(s string) float64

	// FillText draws s at the physical position (x, y), left-aligned, with
	// y interpreted per the active baseline.
	FillText(s string, x, y float64)
}
