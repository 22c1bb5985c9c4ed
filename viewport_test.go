package spiral

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestViewportDefaults(t *testing.T) {
	vp := NewViewport()
	diff(t, ViewportState{Zoom: 1}, vp.State())
	diff(t, Rect{0, 0, 600, 600}, vp.VisibleRect(NormalSurface))
}

func TestViewportZoomClamped(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	vp := NewViewport()
	sz := Sz(800, 500)
	for range 5000 {
		f := math.Exp(rng.NormFloat64() * 2)
		anchor := Pt(rng.Float64()*sz.Width, rng.Float64()*sz.Height)
		vp.ZoomBy(f, anchor, sz)
		if z := vp.Zoom(); z < MinZoom || z > MaxZoom {
			t.Fatalf("zoom %v escaped [%v, %v]", z, MinZoom, MaxZoom)
		}
	}

	vp.Reset()
	vp.ZoomBy(1000, Pt(0, 0), sz)
	diff(t, float64(MaxZoom), vp.Zoom())
	vp.ZoomBy(1e-6, Pt(0, 0), sz)
	diff(t, float64(MinZoom), vp.Zoom())
}

func TestViewportZoomToCursor(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	vp := NewViewport()
	sz := NormalSurface
	factors := []float64{WheelZoomIn, WheelZoomOut, ButtonZoomIn, ButtonZoomOut, 2, 0.5, 3.7}
	for range 2000 {
		anchor := Pt(rng.Float64()*sz.Width, rng.Float64()*sz.Height)
		f := factors[rng.IntN(len(factors))]
		before := vp.ScreenToSurface(anchor, sz)
		vp.ZoomBy(f, anchor, sz)
		// Also holds when the zoom hits a limit, because the pan is adjusted
		// by the factor that was actually applied.
		assertNear(t, vp.ScreenToSurface(anchor, sz), before, 1e-9)
		assertNear(t, vp.SurfaceToScreen(before, sz), anchor, 1e-9)

		if rng.IntN(4) == 0 {
			vp.PanBy(Vec(rng.Float64()*20-10, rng.Float64()*20-10))
		}
	}
}

func TestViewportZoomAtCenterKeepsPan(t *testing.T) {
	vp := NewViewport()
	vp.ZoomBy(2, NormalSurface.Center(), NormalSurface)
	diff(t, ViewportState{Zoom: 2}, vp.State())
	diff(t, Rect{150, 150, 450, 450}, vp.VisibleRect(NormalSurface))
}

func TestViewportInvalidFactorsIgnored(t *testing.T) {
	vp := NewViewport()
	vp.ZoomBy(2, Pt(10, 20), NormalSurface)
	want := vp.State()
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		vp.ZoomBy(f, Pt(10, 20), NormalSurface)
		diff(t, want, vp.State())
	}
	vp.ZoomBy(2, Pt(math.NaN(), 0), NormalSurface)
	diff(t, want, vp.State())
	vp.PanBy(Vec(math.Inf(1), 0))
	diff(t, want, vp.State())
}

func TestViewportPanBy(t *testing.T) {
	vp := NewViewport()
	vp.PanBy(Vec(30, -10))
	diff(t, Vec(-30, 10), vp.Pan())

	vp.Reset()
	vp.ZoomBy(4, NormalSurface.Center(), NormalSurface)
	vp.PanBy(Vec(40, 8))
	diff(t, Vec(-10, -2), vp.Pan())
}

func TestViewportReset(t *testing.T) {
	vp := NewViewport()
	vp.ZoomBy(3, Pt(1, 2), NormalSurface)
	vp.PanBy(Vec(5, 5))
	vp.Reset()
	first := vp.State()
	vp.Reset()
	diff(t, first, vp.State())
	diff(t, ViewportState{Zoom: 1}, first)
}

func TestViewportTransformMatchesVisibleRect(t *testing.T) {
	vp := NewViewport()
	sz := Sz(900, 450)
	vp.ZoomBy(2.5, Pt(100, 400), sz)
	vp.PanBy(Vec(-33, 12))

	view := vp.ViewTransform(sz)
	visible := view.Invert().TransformRectBoundingBox(NewRectFromOrigin(Pt(0, 0), sz))
	diff(t, vp.VisibleRect(sz), visible, approx(1e-9))

	q := Pt(123, 321)
	assertNear(t, q.Transform(view), vp.SurfaceToScreen(q, sz), 1e-9)
}
