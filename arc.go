package spiral

import (
	"math"
)

// CircularArc is a portion of a circle.
//
// Angles are in radians and follow [VecFromAngle]: in the y-down space of a
// drawing surface a positive sweep is clockwise.
type CircularArc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// Start returns the point at which the arc begins.
func (a CircularArc) Start() Point {
	return a.Center.Polar(a.Radius, a.StartAngle)
}

// End returns the point at which the arc ends.
func (a CircularArc) End() Point {
	return a.Center.Polar(a.Radius, a.StartAngle+a.SweepAngle)
}

// AppendTo approximates the arc with cubic Béziers and appends them to p,
// starting from the current pen position, which must be a.Start().
//
// The tolerance parameter bounds the distance between the approximation and
// the true arc. A value of 0.1 is appropriate for drawing in pixels.
func (a CircularArc) AppendTo(p *BezPath, tolerance float64) {
	if a.SweepAngle == 0 || a.Radius == 0 {
		return
	}
	scaledError := math.Abs(a.Radius) / tolerance
	// Number of subdivisions per circle based on error tolerance.
	nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
	n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
	angleStep := a.SweepAngle / n
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle) * a.Radius

	angle0 := a.StartAngle
	p0 := a.Center.Polar(a.Radius, angle0)
	for range int(n) {
		angle1 := angle0 + angleStep
		p3 := a.Center.Polar(a.Radius, angle1)
		p1 := p0.Translate(VecFromAngle(angle0 + math.Pi/2).Mul(armLen))
		p2 := p3.Translate(VecFromAngle(angle1 + math.Pi/2).Mul(-armLen))
		p.CubicTo(p1, p2, p3)
		angle0 = angle1
		p0 = p3
	}
}
