package spiral

// Line represents a line segment, such as a grid line, an axis or a tick of
// the degree wheel.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Translate returns the line moved by v.
func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

// Path returns the line as a path with a single segment.
func (l Line) Path() BezPath {
	return BezPath{MoveTo(l.P0), LineTo(l.P1)}
}
