package spiral

import (
	"strings"
	"testing"
)

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		n    float64
		prec int
		want string
	}{
		{1.23456, 3, "1.235"},
		{2.5, 3, "2.5"},
		{10, 3, "10"},
		{-0.0001, 3, "0"},
		{-12.5004, 3, "-12.5"},
		{0.30000000000000004, 0, "0.30000000000000004"},
		{1.5, 0, "1.5"},
	}
	for _, tt := range tests {
		if got := FormatCoord(tt.n, tt.prec); got != tt.want {
			t.Errorf("FormatCoord(%v, %d) = %q, want %q", tt.n, tt.prec, got, tt.want)
		}
	}
}

func TestBezPathSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0.126))
	p.CubicTo(Pt(1, 2), Pt(3, 4), Pt(5, 6))
	p.ClosePath()

	want := "M0,0 L10,0.13 C1,2 3,4 5,6 Z"
	if got := p.SVG(SVGOptions{MaxPrecision: 2}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var sb strings.Builder
	if err := p.Transform(Translate(Vec(1, 1))).WriteSVG(&sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), "M1,1 L11,1.126 C2,3 4,5 6,7 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPathElementEndPoint(t *testing.T) {
	if _, ok := ClosePath().EndPoint(); ok {
		t.Error("close path has no end point")
	}
	pt, ok := CubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 3)).EndPoint()
	if !ok || pt != Pt(3, 3) {
		t.Errorf("got %s, %t", pt, ok)
	}
}
