// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/flametext"
)

// ErrNilContext is returned when a nil gg.Context is passed to New.
var ErrNilContext = errors.New("ggsurface: nil gg.Context")

// faceKey identifies a cached face by family and pixel size.
type faceKey struct {
	family string
	size   float64
}

// Surface adapts a gg.Context to flametext.Surface.
//
// Fonts are registered by family name; SetFont picks the registered source
// and caches one text.Face per (family, size) pair. Measurement uses the
// face's advance directly and never touches the pixmap.
type Surface struct {
	dc    *gg.Context
	fonts map[string]*text.FontSource
	faces map[faceKey]text.Face

	face     text.Face
	baseline flametext.Baseline
}

// New creates a Surface drawing onto dc.
func New(dc *gg.Context) (*Surface, error) {
	if dc == nil {
		return nil, ErrNilContext
	}
	return &Surface{
		dc:    dc,
		fonts: make(map[string]*text.FontSource),
		faces: make(map[faceKey]text.Face),
	}, nil
}

// RegisterFont makes source available under the given family name.
// The first registered source doubles as the fallback for unknown families.
func (s *Surface) RegisterFont(family string, source *text.FontSource) {
	s.fonts[family] = source
}

// SetFont implements flametext.Surface. Unknown families fall back to any
// registered source so a theme typo degrades to a wrong font rather than to
// missing labels.
func (s *Surface) SetFont(family string, sizePx float64) {
	key := faceKey{family: family, size: sizePx}
	if face, ok := s.faces[key]; ok {
		s.face = face
		s.dc.SetFont(face)
		return
	}

	source, ok := s.fonts[family]
	if !ok {
		for name, fallback := range s.fonts {
			flametext.Logger().Debug("ggsurface: unknown font family, using fallback",
				"family", family, "fallback", name)
			source = fallback
			break
		}
	}
	if source == nil {
		s.face = nil
		return
	}

	face := source.Face(sizePx)
	s.faces[key] = face
	s.face = face
	s.dc.SetFont(face)
}

// SetColor implements flametext.Surface.
func (s *Surface) SetColor(c gg.RGBA) {
	s.dc.SetColor(c.Color())
}

// SetTextBaseline implements flametext.Surface.
func (s *Surface) SetTextBaseline(b flametext.Baseline) {
	s.baseline = b
}

// MeasureText implements flametext.Surface. Returns 0 when no font has been
// registered yet, which the engine treats as "everything fits in nothing"
// and draws no text.
func (s *Surface) MeasureText(str string) float64 {
	if s.face == nil {
		return 0
	}
	return s.face.Advance(str)
}

// FillText implements flametext.Surface. gg draws strings on the alphabetic
// baseline, so y is shifted according to the active baseline mode using the
// face's vertical metrics.
func (s *Surface) FillText(str string, x, y float64) {
	if s.face == nil {
		return
	}
	m := s.face.Metrics()
	switch s.baseline {
	case flametext.BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	case flametext.BaselineTop:
		y += m.Ascent
	}
	s.dc.DrawString(str, x, y)
}
