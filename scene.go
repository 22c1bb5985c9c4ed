package spiral

// Frame is everything a renderer needs to paint the static part of the
// drawing: both spirals mapped to surface coordinates, the fit that placed
// them, and the overlay. Pan and zoom are applied on top by the renderer,
// using a [Viewport]'s visible rectangle.
type Frame struct {
	Params  Params
	Surface Size
	Large   bool
	Margin  float64
	Fit     FitTransform
	// Spirals holds the sampled series in math coordinates.
	Spirals Spirals
	// Screen holds the same series in surface coordinates.
	Screen  Spirals
	Overlay Overlay
}

// Path returns the polyline of family f in surface coordinates.
func (fr *Frame) Path(f Family) BezPath {
	return fr.Screen.Series(f).Path()
}

// Scene caches the derived geometry of a parameter set and a surface size.
// Sampling only reruns when the parameters change; fitting, mapping and the
// overlay rerun when either the parameters or the surface change. Viewport
// interaction never invalidates a Scene.
type Scene struct {
	params  Params
	surface Size
	large   bool
	fill    float64

	spirals     Spirals
	frame       *Frame
	needsSample bool
	needsFit    bool
}

// NewScene returns a scene for p on a surface of the given size. It returns
// an [*InvalidParameterError] if p is invalid.
func NewScene(p Params, surface Size) (*Scene, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Scene{
		params:      p,
		surface:     surface,
		fill:        DefaultFill,
		needsSample: true,
		needsFit:    true,
	}, nil
}

// Params returns the current parameters.
func (s *Scene) Params() Params { return s.params }

// Surface returns the current surface size and whether it is a large
// display.
func (s *Scene) Surface() (Size, bool) { return s.surface, s.large }

// SetParams replaces the parameters. Invalid parameters are rejected and
// leave the scene unchanged.
func (s *Scene) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p == s.params {
		return nil
	}
	s.params = p
	s.needsSample = true
	s.needsFit = true
	return nil
}

// SetSurface changes the surface size and display mode.
func (s *Scene) SetSurface(surface Size, large bool) {
	if surface == s.surface && large == s.large {
		return
	}
	s.surface = surface
	s.large = large
	s.needsFit = true
}

// SetFill changes the fraction of the drawable region the spirals occupy.
// The value is checked by the next call to [Scene.Frame].
func (s *Scene) SetFill(fill float64) {
	if fill == s.fill {
		return
	}
	s.fill = fill
	s.needsFit = true
}

// Frame returns the current frame, recomputing whatever is out of date. The
// returned frame must not be modified; it is shared until the next change.
func (s *Scene) Frame() (*Frame, error) {
	if s.needsSample {
		s.spirals = Sample(s.params)
		s.needsSample = false
	}
	if s.needsFit || s.frame == nil {
		margin := DefaultMargin(s.surface)
		fit, err := Fit(s.spirals.Slice(), s.surface, margin, s.fill)
		if err != nil {
			return nil, err
		}
		s.frame = &Frame{
			Params:  s.params,
			Surface: s.surface,
			Large:   s.large,
			Margin:  margin,
			Fit:     fit,
			Spirals: s.spirals,
			Screen: Spirals{
				Archimedean: fit.MapSeries(s.spirals.Archimedean),
				Golden:      fit.MapSeries(s.spirals.Golden),
			},
			Overlay: BuildOverlay(s.params, s.spirals, fit, s.surface, margin, s.large),
		}
		s.needsFit = false
		Logger().Debug("rebuilt frame", "surface", s.surface, "large", s.large)
	}
	return s.frame, nil
}
