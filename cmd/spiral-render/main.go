// Command spiral-render draws the Archimedean and golden spirals to an SVG
// or PNG file.
//
// Usage:
//
//	spiral-render -o spirals.png -zoom 2 -pan-x 40
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	spiral "github.com/ramsesful/spiral-visualization-tool"
	"github.com/ramsesful/spiral-visualization-tool/render"
)

func main() {
	var (
		output   = flag.String("o", "spirals.svg", "output file")
		format   = flag.String("format", "", "output format, svg or png (default: from the output file name)")
		width    = flag.Float64("width", spiral.NormalSurface.Width, "surface width in pixels")
		height   = flag.Float64("height", spiral.NormalSurface.Height, "surface height in pixels")
		large    = flag.Bool("large", false, "use large-display styling and grid")
		zoom     = flag.Float64("zoom", 1, "zoom level around the surface center")
		panX     = flag.Float64("pan-x", 0, "horizontal pan offset in surface pixels")
		panY     = flag.Float64("pan-y", 0, "vertical pan offset in surface pixels")
		samples  = flag.Int("samples", spiral.DefaultSampleCount, "number of sampling steps")
		maxAngle = flag.Float64("max-angle", spiral.DefaultMaxAngleDegrees, "maximum angle in degrees")
		scaleA   = flag.Float64("scale-archimedean", spiral.DefaultScaleArchimedean, "Archimedean radius scale")
		scaleG   = flag.Float64("scale-golden", spiral.DefaultScaleGolden, "golden radius scale")
		ratio    = flag.Float64("ratio", math.Phi, "golden spiral growth ratio per turn")
		startX   = flag.Float64("start-x", spiral.DefaultStartX, "start point x")
		startY   = flag.Float64("start-y", spiral.DefaultStartY, "start point y")
		verbose  = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	spiral.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	p, err := spiral.NewParams(
		spiral.WithSampleCount(*samples),
		spiral.WithMaxAngleDegrees(*maxAngle),
		spiral.WithScales(*scaleA, *scaleG),
		spiral.WithGrowthRatio(*ratio),
		spiral.WithStart(spiral.Pt(*startX, *startY)),
	)
	if err != nil {
		log.Fatal(err)
	}

	surface := spiral.Sz(*width, *height)
	vp := spiral.NewViewport()
	vp.ZoomBy(*zoom, surface.Center(), surface)
	// PanBy moves the view opposite to the pointer, scaled by the zoom.
	vp.PanBy(spiral.Vec(*panX, *panY).Mul(-vp.Zoom()))

	if err := run(p, surface, *large, vp.VisibleRect(surface), *output, *format); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%s, %s)", *output, surface, vp.State())
}

func run(p spiral.Params, surface spiral.Size, large bool, view spiral.Rect, output, format string) error {
	scene, err := spiral.NewScene(p, surface)
	if err != nil {
		return err
	}
	scene.SetSurface(surface, large)
	fr, err := scene.Frame()
	if err != nil {
		return err
	}

	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(output), ".")
	}
	var write func(io.Writer, *spiral.Frame, spiral.Rect, render.Options) error
	switch strings.ToLower(format) {
	case "svg":
		write = render.WriteSVG
	case "png":
		write = render.WritePNG
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := write(f, fr, view, render.DefaultOptions(fr)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
