package interaction

import (
	"math"
	"time"

	"github.com/philipparndt/gochair/pkg/geometry"
)

// State is the camera control mode
type State int

const (
	AutoRotating State = iota
	UserControlling
	PausedAfterInteraction
)

func (s State) String() string {
	switch s {
	case AutoRotating:
		return "auto-rotating"
	case UserControlling:
		return "user-controlling"
	case PausedAfterInteraction:
		return "paused"
	}
	return "unknown"
}

// Machine tracks who drives the camera: the idle orbit or the user.
// Manual control always suspends the orbit; the orbit resumes once the
// pause duration has passed since the last interaction.
type Machine struct {
	state           State
	isAutoRotating  bool
	userInteracted  bool
	lastInteraction time.Time
	angle           float64

	Pause     time.Duration
	AngleStep float64 // radians added per frame while auto-rotating
	Radius    float64
	Target    geometry.Vector3
}

// NewMachine starts in AutoRotating at angle zero
func NewMachine(pause time.Duration, angleStep, radius float64, target geometry.Vector3) *Machine {
	return &Machine{
		state:          AutoRotating,
		isAutoRotating: true,
		Pause:          pause,
		AngleStep:      angleStep,
		Radius:         radius,
		Target:         target,
	}
}

// State returns the current state
func (m *Machine) State() State { return m.state }

// Angle is the idle orbit angle in radians
func (m *Machine) Angle() float64 { return m.angle }

// AutoRotating reports whether the idle orbit is running
func (m *Machine) AutoRotating() bool { return m.isAutoRotating }

// UserInteracted reports whether the user has ever taken control
func (m *Machine) UserInteracted() bool { return m.userInteracted }

// LastInteraction is the time of the latest DragStart or DragEnd
func (m *Machine) LastInteraction() time.Time { return m.lastInteraction }

// DragStart hands the camera to the user. It preempts any running pause.
func (m *Machine) DragStart(now time.Time) {
	m.state = UserControlling
	m.isAutoRotating = false
	m.userInteracted = true
	m.lastInteraction = now
}

// DragEnd starts the pause timer. A stray end without a start is ignored.
func (m *Machine) DragEnd(now time.Time) {
	if m.state != UserControlling {
		return
	}
	m.state = PausedAfterInteraction
	m.lastInteraction = now
}

// Tick resumes auto-rotation once the pause has elapsed and reports whether
// it did so on this call
func (m *Machine) Tick(now time.Time) bool {
	if m.state != PausedAfterInteraction {
		return false
	}
	if now.Sub(m.lastInteraction) < m.Pause {
		return false
	}
	m.state = AutoRotating
	m.userInteracted = false
	m.isAutoRotating = true
	return true
}

// Resume returns to the idle orbit immediately, skipping any pause
func (m *Machine) Resume() {
	m.state = AutoRotating
	m.userInteracted = false
	m.isAutoRotating = true
}

// Advance steps the orbit angle and returns the new camera position. The
// height is kept from current, so the orbit stays at whatever elevation the
// camera had. ok is false when not auto-rotating.
func (m *Machine) Advance(current geometry.Vector3) (geometry.Vector3, bool) {
	if m.state != AutoRotating || !m.isAutoRotating || m.userInteracted {
		return current, false
	}
	m.angle += m.AngleStep
	return geometry.NewVector3(
		m.Radius*math.Cos(m.angle),
		current.Y,
		m.Radius*math.Sin(m.angle),
	), true
}
