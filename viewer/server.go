// Package viewer serves an interactive spiral comparison to a browser. The
// page renders the static SVG frame; every pointer and wheel event travels
// over a websocket to a per-connection viewport, and the server answers with
// the new visible rectangle.
package viewer

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	spiral "github.com/ramsesful/spiral-visualization-tool"
	"github.com/ramsesful/spiral-visualization-tool/render"
)

//go:embed index.html
var indexHTML []byte

// maxSurfaceSide bounds surface sizes requested by clients.
const maxSurfaceSide = 8192

// Options configures a [Server].
type Options struct {
	// OriginPatterns lists additional hosts allowed to open websockets, see
	// [websocket.AcceptOptions].
	OriginPatterns []string
	// Logger receives connection lifecycle and error messages. Nil uses
	// [spiral.Logger].
	Logger *slog.Logger
}

// Server is an http.Handler for the viewer page, the scene and the event
// websocket.
type Server struct {
	opts Options
	log  *slog.Logger
	mux  *http.ServeMux

	mu    sync.Mutex
	scene *spiral.Scene
}

// New returns a server drawing spirals with parameters p.
func New(p spiral.Params, opts Options) (*Server, error) {
	scene, err := spiral.NewScene(p, spiral.NormalSurface)
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}
	s := &Server{
		opts:  opts,
		log:   opts.Logger,
		mux:   http.NewServeMux(),
		scene: scene,
	}
	if s.log == nil {
		s.log = spiral.Logger()
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /scene.svg", s.handleScene)
	s.mux.HandleFunc("GET /ws", s.handleWebsocket)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func parseSide(r *http.Request, name string, def float64) (float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if !(f > 0 && f <= maxSurfaceSide) {
		return 0, fmt.Errorf("%s: %g out of range", name, f)
	}
	return f, nil
}

// handleScene renders the whole surface. The browser applies the view
// window itself by setting the SVG viewBox.
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	svg, err := s.renderScene(r)
	if err != nil {
		s.log.Warn("scene request failed", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *Server) renderScene(r *http.Request) ([]byte, error) {
	width, err := parseSide(r, "w", spiral.NormalSurface.Width)
	if err != nil {
		return nil, err
	}
	height, err := parseSide(r, "h", spiral.NormalSurface.Height)
	if err != nil {
		return nil, err
	}
	surface := spiral.Sz(width, height)
	large := r.URL.Query().Get("large") == "1"

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scene.SetSurface(surface, large)
	fr, err := s.scene.Frame()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	view := spiral.NewRectFromOrigin(spiral.Point{}, surface)
	if err := render.WriteSVG(&buf, fr, view, render.DefaultOptions(fr)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.opts.OriginPatterns,
	})
	if err != nil {
		s.log.Warn("websocket accept failed", "error", err)
		return
	}
	defer c.CloseNow()

	s.log.Info("viewer connected", "remote", r.RemoteAddr)
	err = s.serveSession(r.Context(), c)
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		s.log.Info("viewer disconnected", "remote", r.RemoteAddr)
	default:
		if !errors.Is(err, context.Canceled) {
			s.log.Warn("viewer session ended", "remote", r.RemoteAddr, "error", err)
		}
	}
}

// serveSession applies events in the order they arrive and answers each
// one with the resulting view state.
func (s *Server) serveSession(ctx context.Context, c *websocket.Conn) error {
	sess := newSession()
	defer sess.close()

	if err := writeState(ctx, c, sess.state()); err != nil {
		return err
	}
	for {
		var msg clientMessage
		if err := wsjson.Read(ctx, c, &msg); err != nil {
			return err
		}
		if err := sess.apply(msg); err != nil {
			s.log.Debug("ignoring event", "error", err)
		}
		if err := writeState(ctx, c, sess.state()); err != nil {
			return err
		}
	}
}

func writeState(ctx context.Context, c *websocket.Conn, st viewState) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return wsjson.Write(ctx, c, st)
}
