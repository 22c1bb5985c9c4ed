package spiral

import (
	"fmt"
	"math"
)

// Degree wheel layout, in surface pixels unless noted.
const (
	wheelRadiusFraction = 0.45
	wheelMinorStep      = 10 // degrees
	wheelMajorStep      = 30 // degrees
	wheelMinorTick      = 8
	wheelMajorTick      = 15
	wheelLabelOffset    = 15
	wheelSectorInset    = 25
	gridMinStep         = 20
)

// WheelSectors are the angles, in degrees, of the shaded wedges drawn on the
// degree wheel.
var WheelSectors = [...]float64{60, 120, 180}

// Label is a short text anchored at a point.
type Label struct {
	Pos  Point
	Text string
}

// Tick is one mark of the degree wheel.
type Tick struct {
	Line
	Degrees int
	Major   bool
}

// DegreeWheel is a protractor centred on the spirals' start point. Angle 0
// points up the screen and angles increase clockwise.
type DegreeWheel struct {
	Center  Point
	Radius  float64
	Ticks   []Tick
	Labels  []Label
	Sectors []BezPath
}

// Markers are the highlighted points of the drawing.
type Markers struct {
	Start          Point
	ArchimedeanEnd Point
	GoldenEnd      Point
}

// Overlay holds the decorations drawn around the spirals, in surface
// coordinates.
type Overlay struct {
	Grid       []Line
	XAxis      Line
	YAxis      Line
	XAxisLabel Label
	YAxisLabel Label
	Wheel      DegreeWheel
	Markers    Markers
}

// GridStep returns the spacing of grid lines on a surface of the given
// width. Large displays use coarser grids on wide surfaces.
func GridStep(width float64, large bool) float64 {
	if !large {
		return gridMinStep
	}
	return max(gridMinStep, math.Floor(width/40))
}

// BuildOverlay computes the decorations for spirals sampled with p and
// fitted into surface with fit. The spirals are in math coordinates.
func BuildOverlay(p Params, sp Spirals, fit FitTransform, surface Size, margin float64, large bool) Overlay {
	w, h := surface.Splat()
	c := surface.Center()
	ov := Overlay{
		Grid:       gridLines(surface, margin, GridStep(w, large)),
		XAxis:      Line{Pt(margin, c.Y), Pt(w-margin, c.Y)},
		YAxis:      Line{Pt(c.X, h-margin), Pt(c.X, margin)},
		XAxisLabel: Label{Pt(w-margin+5, c.Y-10), "X"},
		YAxisLabel: Label{Pt(c.X+10, margin-5), "Y"},
		Markers: Markers{
			Start:          fit.ToScreen(p.Start),
			ArchimedeanEnd: fit.ToScreen(sp.Archimedean.Last()),
			GoldenEnd:      fit.ToScreen(sp.Golden.Last()),
		},
	}
	ov.Wheel = degreeWheel(ov.Markers.Start, wheelRadiusFraction*surface.MinSide(), p.MaxAngleDegrees())
	return ov
}

func gridLines(surface Size, margin, step float64) []Line {
	w, h := surface.Splat()
	c := surface.Center()
	n := int(math.Floor((w / 2) / step))
	lines := make([]Line, 0, 2*(2*n+1))
	for i := -n; i <= n; i++ {
		y := c.Y + float64(i)*step
		lines = append(lines, Line{Pt(margin, y), Pt(w-margin, y)})
	}
	for i := -n; i <= n; i++ {
		x := c.X + float64(i)*step
		lines = append(lines, Line{Pt(x, margin), Pt(x, h-margin)})
	}
	return lines
}

// wheelDirection converts a wheel angle in degrees (0 = up, clockwise) to
// the angle convention of [VecFromAngle] in y-down space.
func wheelDirection(deg float64) float64 {
	return Radians(deg) - math.Pi/2
}

func degreeWheel(center Point, radius, maxDeg float64) DegreeWheel {
	wh := DegreeWheel{Center: center, Radius: radius}
	// maxDeg usually comes from a radians round trip and may fall an ulp
	// short of a whole degree.
	for deg := 0; float64(deg) <= maxDeg+1e-9; deg += wheelMinorStep {
		th := wheelDirection(float64(deg))
		major := deg%wheelMajorStep == 0
		inner := radius - wheelMinorTick
		if major {
			inner = radius - wheelMajorTick
		}
		wh.Ticks = append(wh.Ticks, Tick{
			Line:    Line{center.Polar(inner, th), center.Polar(radius, th)},
			Degrees: deg,
			Major:   major,
		})
		if major {
			wh.Labels = append(wh.Labels, Label{
				Pos:  center.Polar(radius+wheelLabelOffset, th),
				Text: fmt.Sprintf("%d°", deg),
			})
		}
	}
	for _, deg := range WheelSectors {
		arc := CircularArc{
			Center:     center,
			Radius:     radius - wheelSectorInset,
			StartAngle: wheelDirection(0),
			SweepAngle: Radians(deg),
		}
		var sector BezPath
		sector.MoveTo(center)
		sector.LineTo(arc.Start())
		arc.AppendTo(&sector, 0.1)
		sector.ClosePath()
		wh.Sectors = append(wh.Sectors, sector)
	}
	return wh
}
