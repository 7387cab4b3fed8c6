// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rlsurface adapts a raylib window to the flametext Surface
// interface, for interactive flamegraph viewers built on raylib's
// immediate-mode loop.
//
// # Usage
//
//	rl.InitWindow(1920, 1080, "profile")
//	surface := rlsurface.New()
//	surface.RegisterFont("Inter", rl.LoadFontEx("Inter.ttf", 96, nil))
//
//	renderer := flametext.NewRenderer()
//	for !rl.WindowShouldClose() {
//	    rl.BeginDrawing()
//	    renderer.Draw(surface, roots, viewport, transform, config)
//	    rl.EndDrawing()
//	}
//
// All calls must happen on the thread that owns the raylib window, between
// BeginDrawing and EndDrawing.
package rlsurface
