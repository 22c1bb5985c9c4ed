package render

import (
	"fmt"
	"html"
	"io"

	spiral "github.com/ramsesful/spiral-visualization-tool"
)

// svgWriter remembers the first write error so callers can write a whole
// document and check once.
type svgWriter struct {
	w    io.Writer
	prec int
	err  error
}

func (sw *svgWriter) printf(format string, a ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, a...)
}

func (sw *svgWriter) f(n float64) string {
	return spiral.FormatCoord(n, sw.prec)
}

func (sw *svgWriter) line(l spiral.Line, stroke string, width float64) {
	sw.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		sw.f(l.P0.X), sw.f(l.P0.Y), sw.f(l.P1.X), sw.f(l.P1.Y), stroke, sw.f(width))
}

func (sw *svgWriter) path(p spiral.BezPath, attrs string) {
	if sw.err != nil {
		return
	}
	sw.printf(`<path d="`)
	if sw.err == nil {
		sw.err = p.WriteSVG(sw.w, spiral.SVGOptions{MaxPrecision: sw.prec})
	}
	sw.printf(`" %s/>`+"\n", attrs)
}

func (sw *svgWriter) circle(c spiral.Point, r float64, fill string) {
	sw.printf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n", sw.f(c.X), sw.f(c.Y), sw.f(r), fill)
}

func (sw *svgWriter) text(l spiral.Label, size float64, fill string, centered bool) {
	anchor := ""
	if centered {
		anchor = ` text-anchor="middle" dominant-baseline="middle"`
	}
	sw.printf(`<text x="%s" y="%s" font-size="%s" fill="%s"%s>%s</text>`+"\n",
		sw.f(l.Pos.X), sw.f(l.Pos.Y), sw.f(size), fill, anchor, html.EscapeString(l.Text))
}

// WriteSVG writes fr as a standalone SVG document. The document has the
// size of the drawing surface and shows the part of it given by view,
// normally [spiral.Viewport.VisibleRect].
func WriteSVG(w io.Writer, fr *spiral.Frame, view spiral.Rect, opts Options) error {
	st := opts.Style
	sw := &svgWriter{w: w, prec: opts.MaxPrecision}
	ov := &fr.Overlay

	x, y, vw, vh := view.XYWH()
	sw.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		sw.f(fr.Surface.Width), sw.f(fr.Surface.Height), sw.f(x), sw.f(y), sw.f(vw), sw.f(vh))
	sw.printf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		sw.f(x), sw.f(y), sw.f(vw), sw.f(vh), st.Background)

	for _, l := range ov.Grid {
		sw.line(l, st.Grid, 1)
	}
	sw.line(ov.XAxis, st.Axis, 2)
	sw.line(ov.YAxis, st.Axis, 2)
	sw.text(ov.XAxisLabel, st.AxisFontSize, st.Axis, false)
	sw.text(ov.YAxisLabel, st.AxisFontSize, st.Axis, false)

	for _, tick := range ov.Wheel.Ticks {
		if tick.Major {
			sw.line(tick.Line, st.MajorTick, 2)
		} else {
			sw.line(tick.Line, st.MinorTick, 1)
		}
	}
	for _, l := range ov.Wheel.Labels {
		sw.text(l, st.WheelFontSize, st.Label, true)
	}
	for _, sector := range ov.Wheel.Sectors {
		sw.path(sector, fmt.Sprintf(`fill="rgba(200, 200, 200, 0.1)" stroke="%s" stroke-width="1" stroke-dasharray="3,3"`, st.SectorStroke))
	}

	for f := range fr.Screen.Families() {
		sw.path(fr.Path(f), fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"`,
			st.SeriesColor(f), sw.f(st.SeriesWidth(f))))
	}

	m := ov.Markers
	sw.circle(m.Start, st.StartRadius, "black")
	sw.text(spiral.Label{Pos: m.Start.Translate(spiral.Vec(10, -10)), Text: "Start"}, st.StartFontSize, st.Axis, false)
	sw.circle(m.ArchimedeanEnd, st.EndRadius, st.Archimedean)
	sw.circle(m.GoldenEnd, st.EndRadius, st.Golden)

	sw.printf("</svg>\n")
	return sw.err
}
