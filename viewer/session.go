package viewer

import (
	spiral "github.com/ramsesful/spiral-visualization-tool"
)

// session is the interactive state of one browser connection.
type session struct {
	viewport   *spiral.Viewport
	controller *spiral.Controller
	presenter  *spiral.Presenter
	bus        spiral.Bus
	sub        spiral.Subscription
}

func newSession() *session {
	vp := spiral.NewViewport()
	c := spiral.NewController(vp, spiral.NormalSurface)
	s := &session{
		viewport:   vp,
		controller: c,
		// Browsers handle real fullscreen themselves; the server only
		// tracks the maximized layout.
		presenter: spiral.NewPresenter(nil, c, spiral.NormalSurface),
	}
	s.sub = c.Attach(&s.bus)
	return s
}

func (s *session) close() {
	s.sub.Unsubscribe()
}

// apply handles one message from the browser.
func (s *session) apply(msg clientMessage) error {
	if msg.Kind == kindToggleLarge {
		s.presenter.SetContainer(spiral.Sz(msg.Width, msg.Height))
		s.presenter.Toggle()
		return nil
	}
	ev, err := msg.event()
	if err != nil {
		return err
	}
	s.bus.Publish(ev)
	return nil
}

func (s *session) state() viewState {
	surface := s.controller.Surface()
	x, y, w, h := s.viewport.VisibleRect(surface).XYWH()
	return viewState{
		ViewBox: [4]float64{x, y, w, h},
		Zoom:    s.viewport.Zoom(),
		Mode:    s.presenter.Mode().String(),
		Surface: [2]float64{surface.Width, surface.Height},
	}
}
