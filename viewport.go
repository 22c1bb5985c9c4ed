package spiral

import (
	"fmt"
	"math"
)

// Zoom limits of a [Viewport].
const (
	MinZoom = 0.5
	MaxZoom = 10.0
)

// ViewportState is a snapshot of a viewport's zoom level and pan offset.
// The pan offset is expressed in drawing-surface units, relative to the
// surface center.
type ViewportState struct {
	Zoom float64
	Pan  Vec2
}

func (st ViewportState) String() string {
	return fmt.Sprintf("zoom %g, pan %s", st.Zoom, st.Pan)
}

// Viewport owns the interactive view of a drawing surface. It never draws;
// it computes which part of the surface is visible, as a rectangle in
// surface coordinates (see [Viewport.VisibleRect]).
//
// The zoom level always stays within [MinZoom, MaxZoom]. Inputs that would
// leave the valid range are clamped, and non-finite inputs are ignored, so a
// Viewport cannot reach an invalid state.
//
// A Viewport is not safe for concurrent use. Use [NewViewport] to create
// one.
type Viewport struct {
	state ViewportState
}

// NewViewport returns a viewport at zoom 1 with no pan offset.
func NewViewport() *Viewport {
	vp := &Viewport{}
	vp.Reset()
	return vp
}

// Reset restores zoom 1 and a zero pan offset.
func (vp *Viewport) Reset() {
	vp.state = ViewportState{Zoom: 1}
}

// State returns the current zoom level and pan offset.
func (vp *Viewport) State() ViewportState { return vp.state }

// Zoom returns the current zoom level.
func (vp *Viewport) Zoom() float64 { return vp.state.Zoom }

// Pan returns the current pan offset.
func (vp *Viewport) Pan() Vec2 { return vp.state.Pan }

// ZoomBy multiplies the zoom level by factor, clamped to [MinZoom, MaxZoom],
// and adjusts the pan offset so that the surface point under anchor, a
// screen position on a surface of size surface, stays under anchor.
//
// When the clamp limits the change, the pan adjustment uses the factor that
// was actually applied, so the anchor does not drift at the limits.
// Non-positive and non-finite factors are ignored.
func (vp *Viewport) ZoomBy(factor float64, anchor Point, surface Size) {
	if !(factor > 0) || math.IsInf(factor, 0) || !anchor.IsFinite() {
		return
	}
	old := vp.state.Zoom
	zoom := clampZoom(old * factor)
	applied := zoom / old
	if applied == 1 {
		return
	}
	// Offset of the anchor from the surface center, in pre-zoom view space.
	offset := anchor.Sub(surface.Center()).Div(old)
	vp.state.Pan = vp.state.Pan.Add(offset.Mul(1 - 1/applied))
	vp.state.Zoom = zoom
}

// PanBy moves the view by delta screen pixels. The delta is divided by the
// zoom level so that panning follows the pointer at any zoom.
func (vp *Viewport) PanBy(delta Vec2) {
	if delta.IsInf() || delta.IsNaN() {
		return
	}
	vp.state.Pan = vp.state.Pan.Sub(delta.Div(vp.state.Zoom))
}

// VisibleRect returns the part of a surface of size surface that is visible
// at the current zoom and pan. Renderers use it as their view window (an SVG
// viewBox, for example).
func (vp *Viewport) VisibleRect(surface Size) Rect {
	return NewRectFromCenter(
		surface.Center().Translate(vp.state.Pan),
		surface.Scale(1/vp.state.Zoom),
	)
}

// ScreenToSurface maps a screen position to the surface point displayed
// there.
func (vp *Viewport) ScreenToSurface(p Point, surface Size) Point {
	c := surface.Center()
	return c.Translate(vp.state.Pan).Translate(p.Sub(c).Div(vp.state.Zoom))
}

// SurfaceToScreen is the inverse of [Viewport.ScreenToSurface].
func (vp *Viewport) SurfaceToScreen(q Point, surface Size) Point {
	c := surface.Center()
	return c.Translate(q.Sub(c.Translate(vp.state.Pan)).Mul(vp.state.Zoom))
}

// ViewTransform returns the mapping of [Viewport.SurfaceToScreen] as an
// affine transform. Composed with [FitTransform.Affine] it takes math space
// straight to the screen.
func (vp *Viewport) ViewTransform(surface Size) Affine {
	c := surface.Center()
	z := vp.state.Zoom
	return Translate(Vec2(c.Translate(vp.state.Pan)).Negate()).
		ThenScale(z, z).
		ThenTranslate(Vec2(c))
}

func clampZoom(z float64) float64 {
	return min(max(z, MinZoom), MaxZoom)
}
