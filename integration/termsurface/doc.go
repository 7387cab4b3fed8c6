// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termsurface adapts a terminal cell grid to the flametext Surface
// interface: one cell is one "pixel". Widths are measured with lipgloss, so
// East Asian wide runes count as two cells, and the rendered grid is styled
// with a lipgloss foreground color.
//
// The backend is pure (no terminal I/O); callers print String() themselves.
// That also makes it the reference backend for end-to-end tests.
//
// # Usage
//
//	surface := termsurface.New(120, 40)
//	renderer := flametext.NewRenderer()
//	renderer.Draw(surface, roots, viewport, transform, config)
//	fmt.Print(surface.String())
//
// The config-to-physical transform should map one stack row to one cell of
// height and use a DevicePixelRatio of 1.
package termsurface
