// Command flamedemo renders a synthetic flamegraph to a PNG, labels drawn
// with the flametext engine over gg rectangles.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/flametext"
	"github.com/gogpu/flametext/integration/ggsurface"
)

func main() {
	var (
		width    = flag.Int("width", 1280, "image width in pixels")
		height   = flag.Int("height", 480, "image height in pixels")
		output   = flag.String("output", "flamegraph.png", "output file")
		fontPath = flag.String("font", "", "TTF font file (default: first system font found)")
		left     = flag.Float64("left", 0, "viewport left edge in profile units")
		right    = flag.Float64("right", 1000, "viewport right edge in profile units")
		inverted = flag.Bool("inverted", false, "draw depth 0 at the bottom")
	)
	flag.Parse()

	path := *fontPath
	if path == "" {
		path = findSystemFont()
	}
	if path == "" {
		log.Fatal("No TTF font found; pass one with -font")
	}
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer func() { _ = source.Close() }()

	roots := sampleProfile()
	cfg := flametext.Config{
		FontFamily:       source.Name(),
		FontSize:         12,
		RowHeight:        18,
		PadX:             3,
		DevicePixelRatio: 1,
		Color:            gg.RGB(1, 1, 1),
		Inverted:         *inverted,
	}
	vp := flametext.Viewport{
		Left:   *left,
		Right:  *right,
		Height: float64(flametext.MaxDepth(roots) + 1),
	}

	// Config space to physical pixels: the viewport's horizontal extent
	// fills the image, one stack row per RowHeight pixels.
	transform := gg.Scale(float64(*width)/vp.Width(), cfg.RowHeightPx()).
		Multiply(gg.Translate(-vp.Left, -vp.Top))

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.RGB(0.08, 0.08, 0.12))
	drawRectangles(dc, roots, vp, transform, cfg)

	surface, err := ggsurface.New(dc)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	surface.RegisterFont(source.Name(), source)

	renderer := flametext.NewRenderer()
	renderer.Draw(surface, roots, vp, transform, cfg)

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Flamegraph saved to %s (%dx%d, font %s)", *output, *width, *height, source.Name())
}

// drawRectangles fills the frame boxes the labels sit on. Box drawing is the
// viewer's job, not the engine's; the demo keeps it deliberately simple.
func drawRectangles(dc *gg.Context, roots []*flametext.Frame, vp flametext.Viewport, transform gg.Matrix, cfg flametext.Config) {
	maxDepth := 0
	if cfg.Inverted {
		maxDepth = flametext.MaxDepth(roots)
	}

	palette := []gg.RGBA{
		gg.RGB(0.85, 0.33, 0.20),
		gg.RGB(0.90, 0.55, 0.16),
		gg.RGB(0.76, 0.42, 0.28),
	}

	var walk func(f *flametext.Frame)
	walk = func(f *flametext.Frame) {
		if f.End <= vp.Left || f.Start >= vp.Right {
			return
		}
		row := float64(f.Depth)
		if cfg.Inverted {
			row = float64(maxDepth - f.Depth)
		}
		origin := transform.TransformPoint(gg.Point{X: max(f.Start, vp.Left), Y: row})
		far := transform.TransformPoint(gg.Point{X: min(f.End, vp.Right), Y: row + 1})

		dc.SetColor(palette[f.Depth%len(palette)].Color())
		dc.DrawRectangle(origin.X, origin.Y, far.X-origin.X-1, far.Y-origin.Y-1)
		_ = dc.Fill()

		for _, c := range f.Children {
			walk(c)
		}
	}
	for _, f := range roots {
		walk(f)
	}
}

// sampleProfile builds a small synthetic call tree spanning [0, 1000).
func sampleProfile() []*flametext.Frame {
	return []*flametext.Frame{
		{Name: "main.main", Start: 0, End: 1000, Children: []*flametext.Frame{
			{Name: "net/http.(*ServeMux).ServeHTTP", Start: 0, End: 620, Depth: 1, Children: []*flametext.Frame{
				{Name: "app.handleQuery", Start: 0, End: 430, Depth: 2, Children: []*flametext.Frame{
					{Name: "database/sql.(*DB).QueryContext", Start: 20, End: 360, Depth: 3},
					{Name: "encoding/json.Marshal", Start: 360, End: 425, Depth: 3},
				}},
				{Name: "app.writeResponse", Start: 430, End: 610, Depth: 2},
			}},
			{Name: "runtime.gcBgMarkWorker", Start: 620, End: 790, Depth: 1, Children: []*flametext.Frame{
				{Name: "runtime.scanobject", Start: 630, End: 770, Depth: 2},
			}},
			{Name: "runtime.mcall", Start: 790, End: 1000, Depth: 1, Children: []*flametext.Frame{
				{Name: "runtime.schedule", Start: 795, End: 990, Depth: 2, Children: []*flametext.Frame{
					{Name: "runtime.findRunnable", Start: 800, End: 970, Depth: 3},
				}},
			}},
		}},
	}
}

// findSystemFont returns the path to a TTF font (TTC collections not
// supported).
func findSystemFont() string {
	candidates := []string{
		// Windows
		"C:\\Windows\\Fonts\\arial.ttf",
		"C:\\Windows\\Fonts\\segoeui.ttf",
		// macOS - Supplemental fonts are TTF
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Monaco.ttf",
		// Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
