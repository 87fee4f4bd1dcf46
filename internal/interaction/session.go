package interaction

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/philipparndt/gochair/pkg/geometry"
	"github.com/philipparndt/gochair/pkg/picker"
	"github.com/philipparndt/gochair/pkg/scene"
	"github.com/philipparndt/gochair/pkg/viewer"
)

// ErrUninitializedScene is returned when a session is started before the
// scene and camera exist
var ErrUninitializedScene = errors.New("scene not initialized")

// labelOffset places the label slightly right of and above the pointer
var labelOffset = picker.Pointer{X: 10, Y: -10}

// Options are the tunables of a session
type Options struct {
	PauseDuration  time.Duration
	LabelDuration  time.Duration
	AngleStep      float64
	Radius         float64
	Target         geometry.Vector3
	HighlightColor scene.Color
	Wood           scene.Color // base color of parts the user has not recolored
}

// DefaultOptions returns the stock viewer behavior
func DefaultOptions() Options {
	return Options{
		PauseDuration:  3000 * time.Millisecond,
		LabelDuration:  2000 * time.Millisecond,
		AngleStep:      0.002,
		Radius:         8,
		Target:         geometry.NewVector3(0, 1, 0),
		HighlightColor: 0x444444,
		Wood:           scene.DefaultWoodColor,
	}
}

// Label is the transient name tag shown after a click
type Label struct {
	Text    string
	X, Y    float64
	Visible bool
	expires time.Time
}

// ColorSource yields the next pseudo-random base color
type ColorSource func() scene.Color

// RandomColor draws a uniform 24-bit color
func RandomColor() scene.Color {
	return scene.Color(rand.Uint32()) & scene.ColorMask
}

// Session is the state of one viewing session: the scene, the camera and
// everything the user has done to them. All methods must be called from the
// render thread.
type Session struct {
	Scene    *scene.Scene
	Camera   *viewer.Camera
	Controls *viewer.OrbitControls
	Viewport picker.Viewport

	machine *Machine
	hovered scene.Highlightable
	label   Label
	opts    Options
	colors  ColorSource
	logger  *slog.Logger
}

// NewSession wires a built scene and camera into a session that starts
// auto-rotating
func NewSession(s *scene.Scene, cam *viewer.Camera, vp picker.Viewport, opts Options, logger *slog.Logger) (*Session, error) {
	if s == nil || len(s.Objects()) == 0 || cam == nil {
		return nil, ErrUninitializedScene
	}
	if logger == nil {
		logger = slog.Default()
	}

	cam.Resize(vp.Width, vp.Height)
	cam.LookAt(opts.Target)

	return &Session{
		Scene:    s,
		Camera:   cam,
		Controls: viewer.NewOrbitControls(cam),
		Viewport: vp,
		machine:  NewMachine(opts.PauseDuration, opts.AngleStep, opts.Radius, opts.Target),
		opts:     opts,
		colors:   RandomColor,
		logger:   logger,
	}, nil
}

// SetColorSource replaces the random color generator
func (s *Session) SetColorSource(src ColorSource) {
	s.colors = src
}

// Apply swaps in new options, keeping all interaction state. Parts still
// in the old wood color take the new one; user recolors are kept.
func (s *Session) Apply(opts Options) {
	if opts.Wood != s.opts.Wood {
		for _, m := range s.Scene.Meshes() {
			if m.BaseColor() == s.opts.Wood {
				m.SetBaseColor(opts.Wood)
			}
		}
	}
	s.opts = opts
	s.machine.Pause = opts.PauseDuration
	s.machine.AngleStep = opts.AngleStep
	s.machine.Radius = opts.Radius
	s.machine.Target = opts.Target
	if s.hovered != nil {
		s.hovered.SetHighlight(opts.HighlightColor)
	}
}

// State returns the current interaction state
func (s *Session) State() State { return s.machine.State() }

// Machine exposes the auto-rotation state machine
func (s *Session) Machine() *Machine { return s.machine }

// Hovered returns the highlighted object, or nil
func (s *Session) Hovered() scene.Highlightable { return s.hovered }

// Label returns the click label as of the last event or tick
func (s *Session) Label() Label { return s.label }

// Handle applies one input event
func (s *Session) Handle(ev Event, now time.Time) {
	switch e := ev.(type) {
	case DragStart:
		s.machine.DragStart(now)
		s.logger.Debug("manual control started")
	case DragEnd:
		s.machine.DragEnd(now)
		s.logger.Debug("manual control ended", "pause", s.opts.PauseDuration, "distance", s.Camera.Distance())
	case PointerMove:
		s.hover(e.Pointer)
	case Click:
		s.click(e.Pointer, now)
	case Resize:
		if !s.Camera.Resize(e.Width, e.Height) {
			s.logger.Debug("ignoring degenerate resize", "width", e.Width, "height", e.Height)
			return
		}
		s.Viewport = picker.Viewport{Width: e.Width, Height: e.Height}
	}
}

func (s *Session) pick(p picker.Pointer) (picker.Hit, bool) {
	return picker.Pick(p, s.Viewport, s.Camera, s.Scene.Objects())
}

// hover keeps at most one object highlighted. The old highlight is always
// cleared before a new one is applied.
func (s *Session) hover(p picker.Pointer) {
	hit, _ := s.pick(p)

	var next scene.Highlightable
	if h, ok := hit.Object.(scene.Highlightable); ok {
		next = h
	}
	if next == s.hovered {
		return
	}

	if s.hovered != nil {
		s.hovered.ClearHighlight()
	}
	s.hovered = next
	if next != nil {
		next.SetHighlight(s.opts.HighlightColor)
	}
}

func (s *Session) click(p picker.Pointer, now time.Time) {
	hit, _ := s.pick(p)

	target, ok := hit.Object.(scene.Colorable)
	if !ok {
		s.label.Visible = false
		return
	}

	prior := target.BaseColor()
	next := s.colors() & scene.ColorMask
	if next == prior {
		next = (next + 1) & scene.ColorMask
	}
	target.SetBaseColor(next)
	s.logger.Info("clicked", "object", target.Name(), "color", next, "point", hit.Point)

	x, y := clampToViewport(p, s.Viewport)
	s.label = Label{
		Text:    target.Name(),
		X:       x + labelOffset.X,
		Y:       y + labelOffset.Y,
		Visible: true,
		expires: now.Add(s.opts.LabelDuration),
	}
}

func clampToViewport(p picker.Pointer, vp picker.Viewport) (float64, float64) {
	x := min(max(p.X, 0), float64(vp.Width))
	y := min(max(p.Y, 0), float64(vp.Height))
	return x, y
}

// Tick runs the per-frame update: pause timer, idle orbit, label expiry
// and damped manual control. The caller draws afterwards.
func (s *Session) Tick(now time.Time) {
	if s.machine.Tick(now) {
		s.logger.Debug("auto-rotation resumed")
	}

	if pos, ok := s.machine.Advance(s.Camera.Position); ok {
		s.Camera.Position = pos
		s.Camera.LookAt(s.machine.Target)
	}

	if s.label.Visible && !now.Before(s.label.expires) {
		s.label.Visible = false
	}

	if s.Controls.Pending() {
		s.Controls.Update()
	}
}
