package spiral

import (
	"testing"
)

func newTestController() (*Viewport, *Controller) {
	vp := NewViewport()
	return vp, NewController(vp, NormalSurface)
}

func TestControllerDrag(t *testing.T) {
	vp, c := newTestController()
	vp.ZoomBy(2, NormalSurface.Center(), NormalSurface)

	c.PointerDown(ButtonPrimary, Pt(100, 100))
	diff(t, DragState{Active: true, Anchor: Pt(100, 100)}, c.Drag())
	c.PointerMove(Pt(120, 90))
	diff(t, Vec(-10, 5), vp.Pan())
	diff(t, Pt(120, 90), c.Drag().Anchor)

	c.PointerUp()
	diff(t, DragState{}, c.Drag())
	c.PointerMove(Pt(500, 500))
	diff(t, Vec(-10, 5), vp.Pan())
}

func TestControllerDragFollowsPointer(t *testing.T) {
	vp, c := newTestController()
	vp.ZoomBy(3, Pt(50, 400), NormalSurface)

	grab := Pt(200, 200)
	content := vp.ScreenToSurface(grab, NormalSurface)
	c.PointerDown(ButtonPrimary, grab)
	for _, p := range []Point{Pt(210, 190), Pt(260, 250), Pt(10, 580)} {
		c.PointerMove(p)
		assertNear(t, vp.ScreenToSurface(p, NormalSurface), content, 1e-9)
	}
}

func TestControllerIgnoresOtherButtons(t *testing.T) {
	vp, c := newTestController()
	for _, b := range []Button{ButtonAuxiliary, ButtonSecondary} {
		c.PointerDown(b, Pt(1, 1))
		c.PointerMove(Pt(50, 50))
	}
	diff(t, DragState{}, c.Drag())
	diff(t, ViewportState{Zoom: 1}, vp.State())
}

func TestControllerLeaveEndsDrag(t *testing.T) {
	vp, c := newTestController()
	c.PointerDown(ButtonPrimary, Pt(10, 10))
	c.PointerLeave()
	c.PointerMove(Pt(90, 90))
	diff(t, DragState{}, c.Drag())
	diff(t, Vec(0, 0), vp.Pan())
}

func TestControllerWheel(t *testing.T) {
	vp, c := newTestController()
	c.Wheel(-120, Pt(300, 300))
	assertClose(t, "zoom in", vp.Zoom(), 1.1, 1e-12)
	c.Wheel(120, Pt(300, 300))
	assertClose(t, "zoom out", vp.Zoom(), 1.1*0.9, 1e-12)
	c.Wheel(0, Pt(10, 10))
	assertClose(t, "no-op", vp.Zoom(), 1.1*0.9, 1e-12)
}

func TestControllerZoomButtons(t *testing.T) {
	vp, c := newTestController()
	c.ZoomButton(true)
	assertClose(t, "zoom", vp.Zoom(), 1.2, 1e-12)
	c.ZoomButton(false)
	assertClose(t, "zoom", vp.Zoom(), 1.2*0.8, 1e-12)
	diff(t, Vec(0, 0), vp.Pan(), approx(1e-12))
}

func TestControllerAttach(t *testing.T) {
	vp, c := newTestController()
	var bus Bus
	sub := c.Attach(&bus)
	if bus.Len() != 1 {
		t.Fatalf("got %d subscribers, want 1", bus.Len())
	}

	bus.Publish(Event{Kind: ZoomIn})
	bus.Publish(Event{Kind: PointerDown, Button: ButtonPrimary, Pos: Pt(100, 100)})
	bus.Publish(Event{Kind: PointerMove, Pos: Pt(112, 100)})
	bus.Publish(Event{Kind: PointerUp})
	assertClose(t, "zoom", vp.Zoom(), 1.2, 1e-12)
	diff(t, Vec(-10, 0), vp.Pan(), approx(1e-12))

	bus.Publish(Event{Kind: ResetView})
	diff(t, ViewportState{Zoom: 1}, vp.State())

	sub.Unsubscribe()
	sub.Unsubscribe()
	if bus.Len() != 0 {
		t.Fatalf("got %d subscribers, want 0", bus.Len())
	}
	bus.Publish(Event{Kind: Wheel, DeltaY: -1, Pos: Pt(0, 0)})
	diff(t, ViewportState{Zoom: 1}, vp.State())
}

func TestBusUnsubscribeDuringPublish(t *testing.T) {
	var bus Bus
	var got []string
	var sub Subscription
	sub = bus.Subscribe(func(Event) {
		got = append(got, "a")
		sub.Unsubscribe()
	})
	bus.Subscribe(func(Event) { got = append(got, "b") })

	bus.Publish(Event{Kind: PointerUp})
	bus.Publish(Event{Kind: PointerUp})
	diff(t, []string{"a", "b", "b"}, got)
}

func TestParseEventKind(t *testing.T) {
	for k := PointerDown; k <= ResetView; k++ {
		got, ok := ParseEventKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseEventKind(%q) = %v, %t", k.String(), got, ok)
		}
	}
	if _, ok := ParseEventKind("scroll"); ok {
		t.Error("unknown kind should not parse")
	}
}
