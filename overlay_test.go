package spiral

import (
	"fmt"
	"testing"
)

func defaultOverlay(t *testing.T, surface Size, large bool) Overlay {
	t.Helper()
	p := DefaultParams()
	sp := Sample(p)
	margin := DefaultMargin(surface)
	fit, err := Fit(sp.Slice(), surface, margin, DefaultFill)
	if err != nil {
		t.Fatal(err)
	}
	return BuildOverlay(p, sp, fit, surface, margin, large)
}

func TestGridStep(t *testing.T) {
	tests := []struct {
		width float64
		large bool
		want  float64
	}{
		{600, false, 20},
		{1880, false, 20},
		{600, true, 20},
		{1880, true, 47},
		{1999, true, 49},
	}
	for _, tt := range tests {
		if got := GridStep(tt.width, tt.large); got != tt.want {
			t.Errorf("GridStep(%v, %t) = %v, want %v", tt.width, tt.large, got, tt.want)
		}
	}
}

func TestOverlayGrid(t *testing.T) {
	ov := defaultOverlay(t, NormalSurface, false)
	if len(ov.Grid) != 62 {
		t.Fatalf("got %d grid lines, want 62", len(ov.Grid))
	}
	// The middle lines of each direction pass through the surface center.
	diff(t, Line{Pt(48, 300), Pt(552, 300)}, ov.Grid[15])
	diff(t, Line{Pt(300, 48), Pt(300, 552)}, ov.Grid[31+15])
	diff(t, Line{Pt(48, 300), Pt(552, 300)}, ov.XAxis)

	ov = defaultOverlay(t, Sz(1880, 930), true)
	if len(ov.Grid) != 2*(2*20+1) {
		t.Fatalf("got %d grid lines in large mode", len(ov.Grid))
	}
}

func TestOverlayWheel(t *testing.T) {
	ov := defaultOverlay(t, NormalSurface, false)
	wh := ov.Wheel
	diff(t, ov.Markers.Start, wh.Center)
	assertClose(t, "radius", wh.Radius, 270, 0)

	if len(wh.Ticks) != 21 {
		t.Fatalf("got %d ticks, want 21", len(wh.Ticks))
	}
	var labels []string
	for _, l := range wh.Labels {
		labels = append(labels, l.Text)
	}
	diff(t, []string{"0°", "30°", "60°", "90°", "120°", "150°", "180°"}, labels)

	const epsilon = 1e-9
	c := wh.Center
	// 0° points up the screen, 90° to the right.
	assertNear(t, wh.Ticks[0].P1, c.Translate(Vec(0, -270)), epsilon)
	assertNear(t, wh.Ticks[0].P0, c.Translate(Vec(0, -255)), epsilon)
	assertNear(t, wh.Ticks[9].P1, c.Translate(Vec(270, 0)), epsilon)
	if wh.Ticks[1].Major || !wh.Ticks[3].Major {
		t.Error("only multiples of 30° should be major ticks")
	}
	assertClose(t, "minor tick", wh.Ticks[1].P0.Distance(c), 262, epsilon)
	assertNear(t, wh.Labels[0].Pos, c.Translate(Vec(0, -285)), epsilon)
}

func TestOverlaySectors(t *testing.T) {
	ov := defaultOverlay(t, NormalSurface, false)
	wh := ov.Wheel
	if len(wh.Sectors) != len(WheelSectors) {
		t.Fatalf("got %d sectors", len(wh.Sectors))
	}
	const r = 245
	for i, sector := range wh.Sectors {
		diff(t, MoveTo(wh.Center), sector[0])
		diff(t, ClosePathKind, sector[len(sector)-1].Kind)

		end, _ := sector[len(sector)-2].EndPoint()
		th := wheelDirection(WheelSectors[i])
		assertNear(t, end, wh.Center.Polar(r, th), 1e-9)

		for _, el := range sector {
			if el.Kind != CubicToKind {
				continue
			}
			assertClose(t, "arc end", el.P2.Distance(wh.Center), r, 1e-9)
		}
	}
}

func TestOverlayMarkers(t *testing.T) {
	p := DefaultParams()
	sp := Sample(p)
	fit, err := Fit(sp.Slice(), NormalSurface, 48, DefaultFill)
	if err != nil {
		t.Fatal(err)
	}
	ov := BuildOverlay(p, sp, fit, NormalSurface, 48, false)
	diff(t, fit.ToScreen(p.Start), ov.Markers.Start)
	diff(t, fit.ToScreen(sp.Archimedean.Last()), ov.Markers.ArchimedeanEnd)
	diff(t, fit.ToScreen(sp.Golden.Last()), ov.Markers.GoldenEnd)
}

func TestDegreeWheelEndTick(t *testing.T) {
	for deg := 10; deg <= 720; deg += 10 {
		p, err := NewParams(WithMaxAngleDegrees(float64(deg)))
		if err != nil {
			t.Fatal(err)
		}
		wh := degreeWheel(Pt(0, 0), 100, p.MaxAngleDegrees())
		if got, want := len(wh.Ticks), deg/10+1; got != want {
			t.Errorf("max %d°: got %d ticks, want %d", deg, got, want)
			continue
		}
		if last := wh.Ticks[len(wh.Ticks)-1]; last.Degrees != deg {
			t.Errorf("max %d°: last tick at %d°", deg, last.Degrees)
		}
		if got, want := len(wh.Labels), deg/30+1; got != want {
			t.Errorf("max %d°: got %d labels, want %d", deg, got, want)
		}
	}
}

func TestOverlayWheelNonDefaultAngles(t *testing.T) {
	for _, deg := range []float64{60, 120} {
		p, err := NewParams(WithMaxAngleDegrees(deg))
		if err != nil {
			t.Fatal(err)
		}
		sp := Sample(p)
		fit, err := Fit(sp.Slice(), NormalSurface, 48, DefaultFill)
		if err != nil {
			t.Fatal(err)
		}
		wh := BuildOverlay(p, sp, fit, NormalSurface, 48, false).Wheel
		last := wh.Labels[len(wh.Labels)-1]
		if want := fmt.Sprintf("%d°", int(deg)); last.Text != want {
			t.Errorf("max %v°: last label %q, want %q", deg, last.Text, want)
		}
	}
}
