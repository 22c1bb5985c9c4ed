package spiral

import (
	"fmt"
	"math"
)

// Size is the extent of a drawing surface or region, in pixels for
// surfaces and in math units for geometry.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

// Center returns the center of a surface of this size whose origin is
// (0, 0).
func (sz Size) Center() Point {
	return Point{
		X: 0.5 * sz.Width,
		Y: 0.5 * sz.Height,
	}
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

func (sz Size) Add(v Vec2) Size {
	return Size{
		Width:  sz.Width + v.X,
		Height: sz.Height + v.Y,
	}
}

// IsEmpty reports whether the size has no positive area. NaN sizes are
// empty.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0 && sz.Height > 0)
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}
