// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termsurface

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"github.com/gogpu/flametext"
)

// Surface renders flamegraph labels into an in-memory terminal cell grid.
type Surface struct {
	width, height int
	cells         [][]rune
	style         lipgloss.Style
	baseline      flametext.Baseline
}

// New creates a cleared width x height cell grid.
func New(width, height int) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		style:  lipgloss.NewStyle(),
	}
	s.Clear()
	return s
}

// Clear resets every cell to a space.
func (s *Surface) Clear() {
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		row := make([]rune, s.width)
		for x := range row {
			row[x] = ' '
		}
		s.cells[y] = row
	}
}

// SetFont implements flametext.Surface. Terminals have a single fixed font,
// so the family and size are ignored; cell widths never change, which also
// means the engine's sentinel probe never fires an invalidation.
func (s *Surface) SetFont(family string, sizePx float64) {}

// SetColor implements flametext.Surface.
func (s *Surface) SetColor(c gg.RGBA) {
	hex := fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(max(0, min(1, c.R))*255)),
		uint8(math.Round(max(0, min(1, c.G))*255)),
		uint8(math.Round(max(0, min(1, c.B))*255)))
	s.style = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// SetTextBaseline implements flametext.Surface. Cells have no sub-cell
// baseline; the mode only selects whether y is centered or top-aligned
// before rounding to a row.
func (s *Surface) SetTextBaseline(b flametext.Baseline) {
	s.baseline = b
}

// MeasureText implements flametext.Surface: the label's width in cells,
// wide runes counting double.
func (s *Surface) MeasureText(str string) float64 {
	return float64(lipgloss.Width(str))
}

// FillText implements flametext.Surface. The position is rounded to the
// nearest cell; text running past the right edge is clipped.
func (s *Surface) FillText(str string, x, y float64) {
	row := int(math.Round(y))
	if s.baseline == flametext.BaselineMiddle {
		// A middle-baseline y points at the row's vertical center, half a
		// cell below the row origin.
		row = int(math.Floor(y))
	}
	if row < 0 || row >= s.height {
		return
	}

	col := int(math.Round(x))
	for _, r := range str {
		w := lipgloss.Width(string(r))
		if col >= s.width {
			return
		}
		if col >= 0 {
			s.cells[row][col] = r
			for i := 1; i < w && col+i < s.width; i++ {
				s.cells[row][col+i] = 0 // continuation of a wide rune
			}
		}
		col += w
	}
}

// Row returns the unstyled text of one grid row.
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for _, r := range s.cells[y] {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String renders the grid with the active style applied, one line per row.
func (s *Surface) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.style.Render(s.Row(y))
	}
	return strings.Join(rows, "\n")
}
