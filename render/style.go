// Package render paints a [spiral.Frame] through a viewport's visible
// rectangle, either as an SVG document or as a PNG image.
package render

import (
	spiral "github.com/ramsesful/spiral-visualization-tool"
)

// Style holds colours and stroke widths. Widths are in surface pixels and
// scale with the zoom level, like any other geometry.
type Style struct {
	Background       string
	Axis             string
	Grid             string
	Archimedean      string
	Golden           string
	MajorTick        string
	MinorTick        string
	Label            string
	SectorStroke     string
	ArchimedeanWidth float64
	GoldenWidth      float64
	StartRadius      float64
	EndRadius        float64
	AxisFontSize     float64
	WheelFontSize    float64
	StartFontSize    float64
}

// DefaultStyle returns the default style. Large displays use thicker
// strokes and bigger markers.
func DefaultStyle(large bool) Style {
	st := Style{
		Background:       "#ffffff",
		Axis:             "#333333",
		Grid:             "#e0e0e0",
		Archimedean:      "#FF5733",
		Golden:           "#0066FF",
		MajorTick:        "#555555",
		MinorTick:        "#999999",
		Label:            "#555555",
		SectorStroke:     "#cccccc",
		ArchimedeanWidth: 2.5,
		GoldenWidth:      3.5,
		StartRadius:      5,
		EndRadius:        4,
		AxisFontSize:     14,
		WheelFontSize:    10,
		StartFontSize:    12,
	}
	if large {
		st.ArchimedeanWidth = 3
		st.GoldenWidth = 4
		st.StartRadius = 6
		st.EndRadius = 5
		st.AxisFontSize = 16
		st.WheelFontSize = 12
		st.StartFontSize = 14
	}
	return st
}

// SeriesColor returns the stroke colour of family f.
func (st Style) SeriesColor(f spiral.Family) string {
	if f == spiral.Golden {
		return st.Golden
	}
	return st.Archimedean
}

// SeriesWidth returns the stroke width of family f.
func (st Style) SeriesWidth(f spiral.Family) float64 {
	if f == spiral.Golden {
		return st.GoldenWidth
	}
	return st.ArchimedeanWidth
}

// Options configures [WriteSVG] and [WritePNG].
type Options struct {
	Style Style
	// MaxPrecision limits the number of decimals written for SVG
	// coordinates; 0 means as many as needed.
	MaxPrecision int
}

// DefaultOptions returns the default style for fr's display mode and
// coordinates rounded to three decimals.
func DefaultOptions(fr *spiral.Frame) Options {
	return Options{
		Style:        DefaultStyle(fr.Large),
		MaxPrecision: 3,
	}
}

// viewAffine maps surface coordinates inside view onto an output of size
// out, the way an SVG viewBox does with uniform aspect ratio.
func viewAffine(view spiral.Rect, out spiral.Size) spiral.Affine {
	s := min(out.Width/view.Width(), out.Height/view.Height())
	// Center the view window when the aspect ratios differ.
	pad := out.Add(view.Size().Scale(s).AsVec2().Negate()).Scale(0.5)
	return spiral.Translate(spiral.Vec2(view.Origin()).Negate()).
		ThenScale(s, s).
		ThenTranslate(pad.AsVec2())
}
