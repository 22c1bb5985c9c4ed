package spiral

import (
	"math"
	"testing"
)

func TestCircularArcTolerance(t *testing.T) {
	arc := CircularArc{Center: Pt(10, 10), Radius: 100, StartAngle: -math.Pi / 2, SweepAngle: Radians(120)}
	var p BezPath
	p.MoveTo(arc.Start())
	arc.AppendTo(&p, 0.1)

	start := arc.Start()
	for _, el := range p[1:] {
		// Midpoint of the cubic.
		mid := Pt(
			(start.X+3*el.P0.X+3*el.P1.X+el.P2.X)/8,
			(start.Y+3*el.P0.Y+3*el.P1.Y+el.P2.Y)/8,
		)
		if d := math.Abs(mid.Distance(arc.Center) - arc.Radius); d > 0.1 {
			t.Errorf("approximation is off by %g", d)
		}
		start = el.P2
	}
	assertNear(t, start, arc.End(), 1e-9)
}
