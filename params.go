package spiral

import (
	"math"
)

// Default parameter values. They reproduce the classic comparison of a
// 200° Archimedean spiral with a golden spiral, both starting at (−40, 0).
const (
	DefaultSampleCount      = 600
	DefaultMaxAngleDegrees  = 200
	DefaultScaleArchimedean = 2.5
	DefaultScaleGolden      = 2.5
	DefaultStartX           = -40
	DefaultStartY           = 0
)

// Params holds the parameters of both spirals. Params is a value: changing
// any field produces a new parameter set, and the spirals must be resampled.
//
// Use [NewParams] to construct validated parameters.
type Params struct {
	// Start is the shared start point of both spirals.
	Start Point
	// SampleCount is the number of sampling steps. Each series has
	// SampleCount+1 points.
	SampleCount int
	// MaxAngle is the angle, in radians, at which sampling stops.
	MaxAngle float64
	// ScaleArchimedean is the factor a in r = a·θ.
	ScaleArchimedean float64
	// ScaleGolden is the factor a in r = a·(e^(bθ) − 1).
	ScaleGolden float64
	// GrowthRatio is the factor by which the golden spiral's radius grows
	// per full turn. It must be greater than 1.
	GrowthRatio float64
}

// ParamOption configures a [Params] value in [NewParams].
type ParamOption func(*Params)

// WithStart sets the shared start point.
func WithStart(pt Point) ParamOption {
	return func(p *Params) { p.Start = pt }
}

// WithSampleCount sets the number of sampling steps.
func WithSampleCount(n int) ParamOption {
	return func(p *Params) { p.SampleCount = n }
}

// WithMaxAngle sets the maximum angle in radians.
func WithMaxAngle(rad float64) ParamOption {
	return func(p *Params) { p.MaxAngle = rad }
}

// WithMaxAngleDegrees sets the maximum angle in degrees.
func WithMaxAngleDegrees(deg float64) ParamOption {
	return func(p *Params) { p.MaxAngle = Radians(deg) }
}

// WithScales sets the radius scale factors of the Archimedean and the golden
// spiral.
func WithScales(archimedean, golden float64) ParamOption {
	return func(p *Params) {
		p.ScaleArchimedean = archimedean
		p.ScaleGolden = golden
	}
}

// WithGrowthRatio sets the per-turn growth ratio of the golden spiral.
func WithGrowthRatio(ratio float64) ParamOption {
	return func(p *Params) { p.GrowthRatio = ratio }
}

// DefaultParams returns the default parameters: 600 samples over 200°,
// both scales 2.5, growth ratio φ, starting at (−40, 0).
func DefaultParams() Params {
	return Params{
		Start:            Pt(DefaultStartX, DefaultStartY),
		SampleCount:      DefaultSampleCount,
		MaxAngle:         Radians(DefaultMaxAngleDegrees),
		ScaleArchimedean: DefaultScaleArchimedean,
		ScaleGolden:      DefaultScaleGolden,
		GrowthRatio:      math.Phi,
	}
}

// NewParams applies opts on top of [DefaultParams] and validates the result.
// The returned error, if any, is an [*InvalidParameterError].
func NewParams(opts ...ParamOption) (Params, error) {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate reports the first parameter that is outside of its domain.
func (p Params) Validate() error {
	switch {
	case !p.Start.IsFinite():
		return &InvalidParameterError{Field: "Start", Value: p.Start, Reason: "must be finite"}
	case p.SampleCount <= 0:
		return &InvalidParameterError{Field: "SampleCount", Value: p.SampleCount, Reason: "must be positive"}
	case !(p.MaxAngle > 0) || math.IsInf(p.MaxAngle, 0):
		return &InvalidParameterError{Field: "MaxAngle", Value: p.MaxAngle, Reason: "must be positive and finite"}
	case !isFinite(p.ScaleArchimedean):
		return &InvalidParameterError{Field: "ScaleArchimedean", Value: p.ScaleArchimedean, Reason: "must be finite"}
	case !isFinite(p.ScaleGolden):
		return &InvalidParameterError{Field: "ScaleGolden", Value: p.ScaleGolden, Reason: "must be finite"}
	case !(p.GrowthRatio > 1) || math.IsInf(p.GrowthRatio, 0):
		return &InvalidParameterError{Field: "GrowthRatio", Value: p.GrowthRatio, Reason: "must be greater than 1 and finite"}
	}
	return nil
}

// GrowthRate returns b = ln(GrowthRatio)/(2π), the exponent rate of the
// golden spiral.
func (p Params) GrowthRate() float64 {
	return math.Log(p.GrowthRatio) / (2 * math.Pi)
}

// MaxAngleDegrees returns MaxAngle in degrees.
func (p Params) MaxAngleDegrees() float64 {
	return Degrees(p.MaxAngle)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
