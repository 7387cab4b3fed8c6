// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface adapts a gg drawing context to the flametext Surface
// interface, so flamegraph labels render onto any gg pixmap (software or
// GPU-backed) with real TrueType metrics.
//
// # Usage
//
//	dc := gg.NewContext(1920, 1080)
//	source, err := text.NewFontSourceFromFile("Inter.ttf")
//	if err != nil {
//	    return err
//	}
//
//	surface, err := ggsurface.New(dc)
//	if err != nil {
//	    return err
//	}
//	surface.RegisterFont("Inter", source)
//
//	renderer := flametext.NewRenderer()
//	renderer.Draw(surface, roots, viewport, transform, config)
//
// # Thread Safety
//
// Surface is NOT safe for concurrent use, matching the single-threaded
// contract of flametext.Renderer.
package ggsurface
