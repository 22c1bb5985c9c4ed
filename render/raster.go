package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/gg"
	spiral "github.com/ramsesful/spiral-visualization-tool"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// rasterizer draws surface-space geometry onto a gg context through the
// view transform.
type rasterizer struct {
	dc   *gg.Context
	view spiral.Affine
	// zoom is the uniform scale of view; stroke widths and marker radii
	// are multiplied by it.
	zoom float64
}

func (r *rasterizer) appendPath(p spiral.BezPath) {
	for el := range p.Transform(r.view).Elements() {
		switch el.Kind {
		case spiral.MoveToKind:
			r.dc.MoveTo(el.P0.X, el.P0.Y)
		case spiral.LineToKind:
			r.dc.LineTo(el.P0.X, el.P0.Y)
		case spiral.CubicToKind:
			r.dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case spiral.ClosePathKind:
			r.dc.ClosePath()
		}
	}
}

func (r *rasterizer) strokeLine(l spiral.Line, hex string, width float64) error {
	r.dc.SetHexColor(hex)
	r.dc.SetLineWidth(width * r.zoom)
	r.appendPath(l.Path())
	return r.dc.Stroke()
}

func (r *rasterizer) fillCircle(c spiral.Point, radius float64, hex string) error {
	c = c.Transform(r.view)
	r.dc.SetHexColor(hex)
	r.dc.DrawCircle(c.X, c.Y, radius*r.zoom)
	return r.dc.Fill()
}

// Rasterize paints fr, as seen through view, into a new image of the size
// of the drawing surface.
func Rasterize(fr *spiral.Frame, view spiral.Rect, opts Options) (*image.RGBA, error) {
	st := opts.Style
	w := int(math.Round(fr.Surface.Width))
	h := int(math.Round(fr.Surface.Height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rasterize: empty surface %s", fr.Surface)
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()

	aff := viewAffine(view, spiral.Sz(float64(w), float64(h)))
	r := &rasterizer{dc: dc, view: aff, zoom: aff.UniformScale()}
	ov := &fr.Overlay

	dc.ClearWithColor(gg.Hex(st.Background))
	dc.SetLineCap(gg.LineCapRound)

	var err error
	try := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}
	for _, l := range ov.Grid {
		try(r.strokeLine(l, st.Grid, 1))
	}
	try(r.strokeLine(ov.XAxis, st.Axis, 2))
	try(r.strokeLine(ov.YAxis, st.Axis, 2))
	for _, tick := range ov.Wheel.Ticks {
		if tick.Major {
			try(r.strokeLine(tick.Line, st.MajorTick, 2))
		} else {
			try(r.strokeLine(tick.Line, st.MinorTick, 1))
		}
	}
	for _, sector := range ov.Wheel.Sectors {
		r.appendPath(sector)
		dc.SetRGBA(200.0/255, 200.0/255, 200.0/255, 0.1)
		try(dc.FillPreserve())
		dc.SetHexColor(st.SectorStroke)
		dc.SetLineWidth(r.zoom)
		dc.SetDash(3*r.zoom, 3*r.zoom)
		try(dc.Stroke())
		dc.ClearDash()
	}
	for f := range fr.Screen.Families() {
		dc.SetHexColor(st.SeriesColor(f))
		dc.SetLineWidth(st.SeriesWidth(f) * r.zoom)
		r.appendPath(fr.Path(f))
		try(dc.Stroke())
	}
	m := ov.Markers
	try(r.fillCircle(m.Start, st.StartRadius, "#000000"))
	try(r.fillCircle(m.ArchimedeanEnd, st.EndRadius, st.Archimedean))
	try(r.fillCircle(m.GoldenEnd, st.EndRadius, st.Golden))
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)

	// gg's text stack needs font files; the fixed basic face is enough for
	// axis and degree labels.
	labels := []placedLabel{
		{ov.XAxisLabel, st.Axis, false},
		{ov.YAxisLabel, st.Axis, false},
		{spiral.Label{Pos: m.Start.Translate(spiral.Vec(10, -10)), Text: "Start"}, st.Axis, false},
	}
	for _, l := range ov.Wheel.Labels {
		labels = append(labels, placedLabel{l, st.Label, true})
	}
	for _, lb := range labels {
		drawLabel(img, lb.Text, lb.Pos.Transform(aff), gg.Hex(lb.hex).Color(), lb.centered)
	}
	return img, nil
}

type placedLabel struct {
	spiral.Label
	hex      string
	centered bool
}

func drawLabel(img draw.Image, text string, at spiral.Point, col color.Color, centered bool) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	x, y := at.X, at.Y
	if centered {
		x -= float64(d.MeasureString(text).Round()) / 2
		y += float64(basicfont.Face7x13.Ascent) / 2
	}
	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
	d.DrawString(text)
}

// WritePNG rasterizes fr as seen through view and writes it to w as a PNG
// image.
func WritePNG(w io.Writer, fr *spiral.Frame, view spiral.Rect, opts Options) error {
	img, err := Rasterize(fr, view, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
