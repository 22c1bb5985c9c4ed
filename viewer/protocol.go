package viewer

import (
	"fmt"

	spiral "github.com/ramsesful/spiral-visualization-tool"
)

// kindToggleLarge asks the server to enter or leave large display. Its
// Width and Height carry the size of the browser window.
const kindToggleLarge = "toggleLarge"

// clientMessage is a raw input event sent by the browser. Coordinates are
// in drawing-surface pixels.
type clientMessage struct {
	Kind   string  `json:"kind"`
	Button int     `json:"button"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DeltaY float64 `json:"deltaY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (m clientMessage) event() (spiral.Event, error) {
	kind, ok := spiral.ParseEventKind(m.Kind)
	if !ok {
		return spiral.Event{}, fmt.Errorf("unknown event kind %q", m.Kind)
	}
	return spiral.Event{
		Kind:   kind,
		Button: spiral.Button(m.Button),
		Pos:    spiral.Pt(m.X, m.Y),
		DeltaY: m.DeltaY,
	}, nil
}

// viewState is sent to the browser after every event.
type viewState struct {
	// ViewBox is x, y, width and height of the visible rectangle.
	ViewBox [4]float64 `json:"viewBox"`
	Zoom    float64    `json:"zoom"`
	Mode    string     `json:"mode"`
	// Surface is the width and height of the drawing surface.
	Surface [2]float64 `json:"surface"`
}
