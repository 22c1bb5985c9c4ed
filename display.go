package spiral

// NormalSurface is the size of the drawing surface outside of large-display
// mode.
var NormalSurface = Sz(600, 600)

// Space reserved around the drawing surface in large-display mode for the
// toolbar, legend and padding.
var largeChrome = Vec(40, 150)

// LargeSurface returns the drawing-surface size for a large display whose
// container has the given size. Containers too small to hold the surface
// fall back to [NormalSurface].
func LargeSurface(container Size) Size {
	sz := container.Add(largeChrome.Negate())
	if sz.IsEmpty() || sz.IsInf() {
		return NormalSurface
	}
	return sz
}

// LargeDisplay is a host capability that presents the drawing surface
// enlarged, such as a fullscreen window.
type LargeDisplay interface {
	RequestLargeDisplay() error
	ExitLargeDisplay() error
}

// MaximizedLayout is the software-only large display: the host simply lays
// the surface out over the whole window. It is always available and never
// fails.
type MaximizedLayout struct {
	active bool
}

func (m *MaximizedLayout) RequestLargeDisplay() error {
	m.active = true
	return nil
}

func (m *MaximizedLayout) ExitLargeDisplay() error {
	m.active = false
	return nil
}

// Active reports whether the maximized layout is in effect.
func (m *MaximizedLayout) Active() bool { return m.active }

// DisplayMode is the presentation mode of the drawing surface.
type DisplayMode int

const (
	ModeNormal DisplayMode = iota
	// ModeFullscreen uses the primary [LargeDisplay] capability.
	ModeFullscreen
	// ModeMaximized uses the [MaximizedLayout] fallback.
	ModeMaximized
)

func (m DisplayMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFullscreen:
		return "fullscreen"
	case ModeMaximized:
		return "maximized"
	default:
		return "DisplayMode(invalid)"
	}
}

// Large reports whether m is one of the enlarged modes.
func (m DisplayMode) Large() bool { return m != ModeNormal }

// Presenter switches a drawing surface between normal and large display.
//
// Entering large display first tries the primary capability; if it is
// missing or fails, the presenter falls back to a [MaximizedLayout]. Every
// mode change resizes the surface and resets the controller's viewport,
// because pan offsets are relative to the surface size. Capability failures
// never affect viewport state beyond that reset.
type Presenter struct {
	primary    LargeDisplay
	fallback   MaximizedLayout
	controller *Controller
	container  Size
	mode       DisplayMode

	// OnResize, if set, is called with the new surface size after every
	// mode change.
	OnResize func(Size)
}

// NewPresenter returns a presenter in normal mode. primary may be nil, in
// which case only the maximized layout is used.
func NewPresenter(primary LargeDisplay, c *Controller, container Size) *Presenter {
	p := &Presenter{
		primary:    primary,
		controller: c,
		container:  container,
	}
	c.SetSurface(NormalSurface)
	return p
}

// Mode returns the current display mode.
func (p *Presenter) Mode() DisplayMode { return p.mode }

// Surface returns the current drawing-surface size.
func (p *Presenter) Surface() Size {
	if p.mode.Large() {
		return LargeSurface(p.container)
	}
	return NormalSurface
}

// Enter switches to large display and returns the mode that was entered.
// It is a no-op in a large mode.
func (p *Presenter) Enter() DisplayMode {
	if p.mode.Large() {
		return p.mode
	}
	mode := ModeMaximized
	if p.primary != nil {
		if err := p.primary.RequestLargeDisplay(); err != nil {
			Logger().Warn("large display unavailable, using maximized layout", "error", err)
		} else {
			mode = ModeFullscreen
		}
	}
	if mode == ModeMaximized {
		_ = p.fallback.RequestLargeDisplay()
	}
	p.setMode(mode)
	return mode
}

// Exit returns to normal display. A failure to leave the primary capability
// is logged; the surface returns to its normal size regardless.
func (p *Presenter) Exit() {
	switch p.mode {
	case ModeNormal:
		return
	case ModeFullscreen:
		if err := p.primary.ExitLargeDisplay(); err != nil {
			Logger().Warn("leaving large display failed", "error", err)
		}
	case ModeMaximized:
		_ = p.fallback.ExitLargeDisplay()
	}
	p.setMode(ModeNormal)
}

// Toggle switches between normal and large display.
func (p *Presenter) Toggle() DisplayMode {
	if p.mode.Large() {
		p.Exit()
	} else {
		p.Enter()
	}
	return p.mode
}

// SetContainer records a new container size. In a large mode the surface is
// resized and the viewport reset.
func (p *Presenter) SetContainer(container Size) {
	p.container = container
	if p.mode.Large() {
		p.setMode(p.mode)
	}
}

func (p *Presenter) setMode(mode DisplayMode) {
	p.mode = mode
	surface := p.Surface()
	p.controller.SetSurface(surface)
	p.controller.Reset()
	Logger().Info("display mode changed", "mode", mode, "surface", surface)
	if p.OnResize != nil {
		p.OnResize(surface)
	}
}
