package flametext

import (
	"unicode/utf8"

	"github.com/gogpu/gg"
)

// fakeSurface is an in-memory Surface with deterministic monospace metrics:
// every rune (the ellipsis included) is runeWidth pixels wide. Changing
// runeWidth between passes simulates a font or DPI change. It records every
// measurement and draw call for assertions.
type fakeSurface struct {
	runeWidth float64

	measured map[string]int
	texts    []drawnText

	family   string
	size     float64
	color    gg.RGBA
	baseline Baseline
}

type drawnText struct {
	s    string
	x, y float64
}

func newFakeSurface(runeWidth float64) *fakeSurface {
	return &fakeSurface{
		runeWidth: runeWidth,
		measured:  make(map[string]int),
	}
}

func (f *fakeSurface) SetFont(family string, sizePx float64) {
	f.family = family
	f.size = sizePx
}

func (f *fakeSurface) SetColor(c gg.RGBA) { f.color = c }

func (f *fakeSurface) SetTextBaseline(b Baseline) { f.baseline = b }

func (f *fakeSurface) MeasureText(s string) float64 {
	f.measured[s]++
	return float64(utf8.RuneCountInString(s)) * f.runeWidth
}

func (f *fakeSurface) FillText(s string, x, y float64) {
	f.texts = append(f.texts, drawnText{s: s, x: x, y: y})
}

// drawnStrings returns just the text of every FillText call, in order.
func (f *fakeSurface) drawnStrings() []string {
	out := make([]string, len(f.texts))
	for i, d := range f.texts {
		out[i] = d.s
	}
	return out
}
