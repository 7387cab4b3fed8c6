// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rlsurface

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gogpu/gg"

	"github.com/gogpu/flametext"
)

// letterSpacing is the extra spacing raylib applies between glyphs.
// It must be identical for measuring and drawing or truncation budgets drift.
const letterSpacing = 1.0

// Surface adapts raylib text drawing to flametext.Surface.
//
// Fonts are registered by family name; unknown families fall back to
// raylib's built-in font. The raylib window must be initialized before the
// first draw pass.
type Surface struct {
	fonts map[string]rl.Font

	font     rl.Font
	haveFont bool
	sizePx   float32
	color    rl.Color
	baseline flametext.Baseline
}

// New creates a Surface. Fonts can be registered before the window exists;
// the built-in fallback font is resolved lazily on first use.
func New() *Surface {
	return &Surface{
		fonts: make(map[string]rl.Font),
		color: rl.White,
	}
}

// RegisterFont makes font available under the given family name.
// Load fonts with a generous base size (rl.LoadFontEx with 96 or more) so
// zoomed-in labels stay crisp.
func (s *Surface) RegisterFont(family string, font rl.Font) {
	s.fonts[family] = font
}

// SetFont implements flametext.Surface.
func (s *Surface) SetFont(family string, sizePx float64) {
	s.sizePx = float32(sizePx)
	if font, ok := s.fonts[family]; ok {
		s.font = font
		s.haveFont = true
		return
	}
	flametext.Logger().Debug("rlsurface: unknown font family, using raylib default", "family", family)
	s.font = rl.GetFontDefault()
	s.haveFont = true
}

// SetColor implements flametext.Surface.
func (s *Surface) SetColor(c gg.RGBA) {
	s.color = rl.NewColor(
		uint8(clamp255(c.R*255)),
		uint8(clamp255(c.G*255)),
		uint8(clamp255(c.B*255)),
		uint8(clamp255(c.A*255)),
	)
}

// SetTextBaseline implements flametext.Surface.
func (s *Surface) SetTextBaseline(b flametext.Baseline) {
	s.baseline = b
}

// MeasureText implements flametext.Surface.
func (s *Surface) MeasureText(str string) float64 {
	if !s.haveFont {
		return 0
	}
	return float64(rl.MeasureTextEx(s.font, str, s.sizePx, letterSpacing).X)
}

// FillText implements flametext.Surface. raylib anchors text at its top-left
// corner, so y is shifted according to the active baseline mode.
func (s *Surface) FillText(str string, x, y float64) {
	if !s.haveFont {
		return
	}
	top := float32(y)
	switch s.baseline {
	case flametext.BaselineMiddle:
		top -= s.sizePx / 2
	case flametext.BaselineAlphabetic:
		// The built-in font has no metrics table; 80% of the em square is
		// the conventional ascent approximation.
		top -= s.sizePx * 0.8
	}
	rl.DrawTextEx(s.font, str, rl.NewVector2(float32(x), top), s.sizePx, letterSpacing, s.color)
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
