package spiral

import (
	"fmt"
)

// Zoom factors applied per input.
const (
	// WheelZoomIn is applied per wheel tick that scrolls up.
	WheelZoomIn = 1.1
	// WheelZoomOut is applied per wheel tick that scrolls down.
	WheelZoomOut = 0.9
	// ButtonZoomIn is applied by the zoom-in button.
	ButtonZoomIn = 1.2
	// ButtonZoomOut is applied by the zoom-out button.
	ButtonZoomOut = 0.8
)

// Button identifies a pointer button, numbered like DOM mouse events.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// EventKind is the kind of an input [Event].
type EventKind int

const (
	PointerDown EventKind = iota + 1
	PointerMove
	PointerUp
	PointerLeave
	Wheel
	ZoomIn
	ZoomOut
	ResetView
)

var eventKindNames = map[EventKind]string{
	PointerDown:  "down",
	PointerMove:  "move",
	PointerUp:    "up",
	PointerLeave: "leave",
	Wheel:        "wheel",
	ZoomIn:       "zoomIn",
	ZoomOut:      "zoomOut",
	ResetView:    "reset",
}

func (k EventKind) String() string {
	if s, ok := eventKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// ParseEventKind is the inverse of [EventKind.String].
func ParseEventKind(s string) (EventKind, bool) {
	for k, name := range eventKindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Event is a raw input event from a drawing surface. Pos is in screen
// coordinates of the surface; DeltaY is only meaningful for wheel events and
// is negative when scrolling up.
type Event struct {
	Kind   EventKind
	Button Button
	Pos    Point
	DeltaY float64
}

// DragState tracks an in-progress drag.
type DragState struct {
	Active bool
	Anchor Point
}

// Controller translates raw input events into [Viewport] updates. Its only
// state is the current drag; it knows nothing about geometry.
type Controller struct {
	viewport *Viewport
	surface  Size
	drag     DragState
}

// NewController returns a controller that drives vp for a surface of the
// given size.
func NewController(vp *Viewport, surface Size) *Controller {
	return &Controller{
		viewport: vp,
		surface:  surface,
	}
}

// SetSurface updates the size of the drawing surface, for example after
// entering or leaving large-display mode.
func (c *Controller) SetSurface(surface Size) {
	c.surface = surface
}

// Surface returns the size of the drawing surface.
func (c *Controller) Surface() Size { return c.surface }

// Drag returns the current drag state.
func (c *Controller) Drag() DragState { return c.drag }

// Viewport returns the viewport driven by c.
func (c *Controller) Viewport() *Viewport { return c.viewport }

// PointerDown starts a drag at p if button is the primary button.
func (c *Controller) PointerDown(button Button, p Point) {
	if button != ButtonPrimary {
		return
	}
	c.drag = DragState{Active: true, Anchor: p}
}

// PointerMove pans the viewport by the distance moved since the previous
// pointer position, if a drag is in progress.
func (c *Controller) PointerMove(p Point) {
	if !c.drag.Active {
		return
	}
	c.viewport.PanBy(p.Sub(c.drag.Anchor))
	c.drag.Anchor = p
}

// PointerUp ends any drag.
func (c *Controller) PointerUp() {
	c.drag = DragState{}
}

// PointerLeave ends any drag. A pointer that leaves the surface with a
// button held must not keep dragging when it returns.
func (c *Controller) PointerLeave() {
	c.drag = DragState{}
}

// Wheel zooms in around p when deltaY is negative and out when it is
// positive.
func (c *Controller) Wheel(deltaY float64, p Point) {
	switch {
	case deltaY < 0:
		c.viewport.ZoomBy(WheelZoomIn, p, c.surface)
	case deltaY > 0:
		c.viewport.ZoomBy(WheelZoomOut, p, c.surface)
	}
}

// ZoomButton zooms in or out around the surface center, as the toolbar
// buttons do.
func (c *Controller) ZoomButton(in bool) {
	f := ButtonZoomOut
	if in {
		f = ButtonZoomIn
	}
	c.viewport.ZoomBy(f, c.surface.Center(), c.surface)
}

// Reset resets the viewport and ends any drag.
func (c *Controller) Reset() {
	c.drag = DragState{}
	c.viewport.Reset()
}

// Dispatch routes ev to the matching handler. Unknown event kinds are
// ignored.
func (c *Controller) Dispatch(ev Event) {
	switch ev.Kind {
	case PointerDown:
		c.PointerDown(ev.Button, ev.Pos)
	case PointerMove:
		c.PointerMove(ev.Pos)
	case PointerUp:
		c.PointerUp()
	case PointerLeave:
		c.PointerLeave()
	case Wheel:
		c.Wheel(ev.DeltaY, ev.Pos)
	case ZoomIn:
		c.ZoomButton(true)
	case ZoomOut:
		c.ZoomButton(false)
	case ResetView:
		c.Reset()
	}
}

// Attach subscribes c to src. Calling Unsubscribe on the result detaches
// it again.
func (c *Controller) Attach(src EventSource) Subscription {
	return src.Subscribe(c.Dispatch)
}
