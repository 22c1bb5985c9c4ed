package spiral

import (
	"iter"
	"math"
)

// Family identifies one of the two spiral families.
type Family int

const (
	// Archimedean spirals grow linearly: r = a·θ.
	Archimedean Family = iota
	// Golden spirals grow exponentially: r = a·(e^(bθ) − 1) with
	// b = ln(ratio)/(2π), so the radius is multiplied by ratio per turn
	// (ignoring the −1 offset that anchors the curve at radius 0).
	Golden
)

// Families lists all spiral families in drawing order.
var Families = [...]Family{Archimedean, Golden}

func (f Family) String() string {
	switch f {
	case Archimedean:
		return "archimedean"
	case Golden:
		return "golden"
	default:
		return "Family(invalid)"
	}
}

// Radius returns the radius of the family's spiral at angle th.
func (f Family) Radius(p Params, th float64) float64 {
	switch f {
	case Archimedean:
		return ArchimedeanRadius(p, th)
	case Golden:
		return GoldenRadius(p, th)
	default:
		panic("invalid spiral family")
	}
}

// ArchimedeanRadius returns ScaleArchimedean·θ.
func ArchimedeanRadius(p Params, th float64) float64 {
	return p.ScaleArchimedean * th
}

// GoldenRadius returns ScaleGolden·(e^(bθ) − 1).
//
// The −1 offset is intentional: it makes the golden spiral start at radius 0
// so that both spirals visibly leave the same start point. The textbook
// logarithmic spiral r = a·e^(bθ) never reaches radius 0.
func GoldenRadius(p Params, th float64) float64 {
	return goldenRadius(p.ScaleGolden, p.GrowthRate(), th)
}

func goldenRadius(a, b, th float64) float64 {
	return a * (math.Exp(b*th) - 1)
}

// SampleAngle returns the angle of sample i, (i/SampleCount)·MaxAngle.
func SampleAngle(p Params, i int) float64 {
	return float64(i) / float64(p.SampleCount) * p.MaxAngle
}

// PolarOffset places a point at radius r and angle th relative to start.
//
// Angle 0 points in the +y direction and angles grow towards −x, that is,
// (start.X − r·sin θ, start.Y + r·cos θ).
func PolarOffset(start Point, r, th float64) Point {
	sin, cos := math.Sincos(th)
	return Point{
		X: start.X - r*sin,
		Y: start.Y + r*cos,
	}
}

// Series is an ordered sequence of sampled points of one spiral. Index 0 is
// always the start point, and the angle parameter increases with the index.
type Series []Point

// Path returns the series as a polyline.
func (s Series) Path() BezPath {
	if len(s) == 0 {
		return nil
	}
	p := make(BezPath, 0, len(s))
	p.MoveTo(s[0])
	for _, pt := range s[1:] {
		p.LineTo(pt)
	}
	return p
}

// First returns the first point of the series, which is the start point.
func (s Series) First() Point {
	return s[0]
}

// Last returns the final sampled point of the series.
func (s Series) Last() Point {
	return s[len(s)-1]
}

// Spirals holds one sampled series per family.
type Spirals struct {
	Archimedean Series
	Golden      Series
}

// Series returns the series of family f.
func (sp Spirals) Series(f Family) Series {
	switch f {
	case Archimedean:
		return sp.Archimedean
	case Golden:
		return sp.Golden
	default:
		panic("invalid spiral family")
	}
}

// Families returns an iterator over the families and their series in drawing
// order.
func (sp Spirals) Families() iter.Seq2[Family, Series] {
	return func(yield func(Family, Series) bool) {
		for _, f := range Families {
			if !yield(f, sp.Series(f)) {
				return
			}
		}
	}
}

// All returns an iterator over the points of both series.
func (sp Spirals) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, s := range sp.Families() {
			for _, pt := range s {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// Slice returns both series as a slice, suitable for [Fit].
func (sp Spirals) Slice() []Series {
	return []Series{sp.Archimedean, sp.Golden}
}

// Sample computes SampleCount+1 points of both spirals.
//
// Sample 0 of both series is p.Start exactly. Sample i > 0 lies at angle
// θ = (i/SampleCount)·MaxAngle and at the family's radius for θ, placed with
// [PolarOffset]. Sample is a pure function of p; p should be valid (see
// [Params.Validate]). A negative SampleCount yields empty series.
func Sample(p Params) Spirals {
	n := p.SampleCount
	if n < 0 {
		return Spirals{}
	}
	sp := Spirals{
		Archimedean: make(Series, n+1),
		Golden:      make(Series, n+1),
	}
	sp.Archimedean[0] = p.Start
	sp.Golden[0] = p.Start
	b := p.GrowthRate()
	for i := 1; i <= n; i++ {
		th := SampleAngle(p, i)
		sp.Archimedean[i] = PolarOffset(p.Start, ArchimedeanRadius(p, th), th)
		sp.Golden[i] = PolarOffset(p.Start, goldenRadius(p.ScaleGolden, b, th), th)
	}
	Logger().Debug("sampled spirals", "samples", n, "maxAngle", p.MaxAngle)
	return sp
}
