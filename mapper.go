package spiral

// ToScreen maps a math-space point to drawing-surface coordinates.
func (fit FitTransform) ToScreen(p Point) Point {
	return Point{
		X: fit.OriginScreen.X + (p.X-fit.OriginMath.X)*fit.Scale,
		Y: fit.OriginScreen.Y - (p.Y-fit.OriginMath.Y)*fit.Scale,
	}
}

// ToMath is the inverse of [FitTransform.ToScreen].
func (fit FitTransform) ToMath(p Point) Point {
	return Point{
		X: fit.OriginMath.X + (p.X-fit.OriginScreen.X)/fit.Scale,
		Y: fit.OriginMath.Y - (p.Y-fit.OriginScreen.Y)/fit.Scale,
	}
}

// Affine returns the mapping of [FitTransform.ToScreen] as an affine
// transform.
func (fit FitTransform) Affine() Affine {
	return Translate(Vec2(fit.OriginMath).Negate()).
		ThenScale(fit.Scale, -fit.Scale).
		ThenTranslate(Vec2(fit.OriginScreen))
}

// MapSeries maps every point of s to drawing-surface coordinates. The result
// is a new series.
func (fit FitTransform) MapSeries(s Series) Series {
	out := make(Series, len(s))
	for i, pt := range s {
		out[i] = fit.ToScreen(pt)
	}
	return out
}
