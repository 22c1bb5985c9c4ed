package spiral

import (
	"math"
)

// DefaultFill is the default fraction of the drawable region that fitted
// geometry occupies.
const DefaultFill = 0.75

// DefaultMargin returns the default margin for a drawing surface:
// min(50, 0.08·width).
func DefaultMargin(target Size) float64 {
	return min(50, target.Width*0.08)
}

// FitTransform maps mathematical coordinates into drawing-surface
// coordinates with a uniform scale. The math point OriginMath lands on the
// surface point OriginScreen; the y axis is inverted because math space is
// y-up and surfaces are y-down.
type FitTransform struct {
	Scale        float64
	OriginMath   Point
	OriginScreen Point
}

// BoundingBox returns the axis-aligned bounding box of all points of all
// series. It returns false if there are no points at all.
func BoundingBox(series ...Series) (Rect, bool) {
	return BoundingBoxOf(func(yield func(Point) bool) {
		for _, s := range series {
			for _, pt := range s {
				if !yield(pt) {
					return
				}
			}
		}
	})
}

// Fit computes the transform that centers the bounding box of series in a
// surface of size target and scales it uniformly so that it occupies the
// fraction fill of the region left after subtracting margin from each side.
// The smaller of the two per-axis scales is used, so the geometry is never
// distorted.
//
// Fit returns a [*DegenerateGeometryError] if the bounding box has zero width
// or zero height, and an [*InvalidParameterError] if fill is not in (0, 1]
// or if the margins leave no room to draw in. No fallback scale is ever
// substituted.
func Fit(series []Series, target Size, margin, fill float64) (FitTransform, error) {
	if !(fill > 0 && fill <= 1) {
		return FitTransform{}, &InvalidParameterError{Field: "fill", Value: fill, Reason: "must be in (0, 1]"}
	}
	if !(margin >= 0) || math.IsInf(margin, 0) {
		return FitTransform{}, &InvalidParameterError{Field: "margin", Value: margin, Reason: "must be non-negative and finite"}
	}
	region := target.Add(Vec(-2*margin, -2*margin))
	if region.IsEmpty() || region.IsInf() {
		return FitTransform{}, &InvalidParameterError{Field: "target", Value: target, Reason: "no drawable area left after margins"}
	}

	box, ok := BoundingBox(series...)
	if !ok || box.IsDegenerate() {
		err := &DegenerateGeometryError{Box: box}
		Logger().Warn("cannot fit geometry", "error", err, "series", len(series))
		return FitTransform{}, err
	}

	scaleX := region.Width * fill / box.Width()
	scaleY := region.Height * fill / box.Height()
	fit := FitTransform{
		Scale:        min(scaleX, scaleY),
		OriginMath:   box.Center(),
		OriginScreen: target.Center(),
	}
	Logger().Debug("fitted geometry", "box", box, "target", target, "scale", fit.Scale)
	return fit, nil
}
