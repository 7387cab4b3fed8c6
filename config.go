package flametext

import "github.com/gogpu/gg"

// Config carries the theme-supplied rendering parameters for one draw pass.
// All lengths are in abstract units; the renderer multiplies them by
// DevicePixelRatio to reach physical pixels. The theme source owns the
// value; it is read fresh and left unmodified on every Draw call.
type Config struct {
	// FontFamily names the font the surface should activate for labels.
	FontFamily string

	// FontSize is the base font size before device-pixel-ratio scaling.
	FontSize float64

	// RowHeight is the height of one stack row before scaling. The caller
	// bakes it into the config-to-physical transform; it is carried here so
	// backends and demos can build that transform from one place.
	RowHeight float64

	// PadX is the horizontal padding kept between a frame's edges and its
	// label, before scaling. Applied on both sides.
	PadX float64

	// DevicePixelRatio scales abstract units to physical pixels.
	// Values <= 0 are treated as 1.
	DevicePixelRatio float64

	// Color is the label foreground color.
	Color gg.RGBA

	// Inverted flips the vertical stacking: when true, depth 0 is drawn at
	// the bottom ("icicle" orientation mirrored), rows measured from the
	// tree's maximum depth.
	Inverted bool
}

// dpr returns the device pixel ratio with the defensive default applied.
func (c Config) dpr() float64 {
	if c.DevicePixelRatio <= 0 {
		return 1
	}
	return c.DevicePixelRatio
}

// FontSizePx returns the font size in physical pixels.
func (c Config) FontSizePx() float64 { return c.FontSize * c.dpr() }

// RowHeightPx returns the row height in physical pixels.
func (c Config) RowHeightPx() float64 { return c.RowHeight * c.dpr() }

// PadPx returns the one-sided horizontal label padding in physical pixels.
func (c Config) PadPx() float64 { return c.PadX * c.dpr() }
