package interaction

import (
	"math"
	"testing"
	"time"

	"github.com/philipparndt/gochair/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func newTestMachine() *Machine {
	return NewMachine(3000*time.Millisecond, 0.002, 8, geometry.NewVector3(0, 1, 0))
}

func TestMachineStartsAutoRotating(t *testing.T) {
	m := newTestMachine()
	assert.Equal(t, AutoRotating, m.State())
	assert.True(t, m.AutoRotating())
	assert.False(t, m.UserInteracted())
	assert.Zero(t, m.Angle())
}

func TestMachineDragScenario(t *testing.T) {
	m := newTestMachine()

	m.DragStart(at(0))
	assert.Equal(t, UserControlling, m.State())
	assert.True(t, m.UserInteracted())
	assert.False(t, m.AutoRotating())

	m.DragEnd(at(500))
	assert.Equal(t, PausedAfterInteraction, m.State())
	assert.Equal(t, at(500), m.LastInteraction())

	assert.False(t, m.Tick(at(1000)))
	assert.Equal(t, PausedAfterInteraction, m.State())

	assert.False(t, m.Tick(at(3499)))
	assert.Equal(t, PausedAfterInteraction, m.State())

	assert.True(t, m.Tick(at(3501)))
	assert.Equal(t, AutoRotating, m.State())
	assert.True(t, m.AutoRotating())
	assert.False(t, m.UserInteracted())
}

func TestMachineResumesAtExactlyPauseDuration(t *testing.T) {
	m := newTestMachine()
	m.DragStart(at(0))
	m.DragEnd(at(0))

	assert.False(t, m.Tick(at(2999)))
	assert.True(t, m.Tick(at(3000)))
}

func TestMachineNewDragPreemptsPause(t *testing.T) {
	m := newTestMachine()
	m.DragStart(at(0))
	m.DragEnd(at(500))

	m.DragStart(at(2000))
	assert.Equal(t, UserControlling, m.State())

	// Holding the drag never times out
	assert.False(t, m.Tick(at(10000)))
	assert.Equal(t, UserControlling, m.State())

	m.DragEnd(at(10000))
	assert.False(t, m.Tick(at(12999)))
	assert.True(t, m.Tick(at(13000)))
}

func TestMachineIgnoresStrayDragEnd(t *testing.T) {
	m := newTestMachine()
	m.DragEnd(at(100))

	assert.Equal(t, AutoRotating, m.State())
	assert.True(t, m.LastInteraction().IsZero())
}

func TestMachineAdvanceOrbits(t *testing.T) {
	m := newTestMachine()
	start := geometry.NewVector3(5, 5, 5)

	pos, ok := m.Advance(start)
	require.True(t, ok)
	assert.InDelta(t, 0.002, m.Angle(), 1e-12)
	assert.InDelta(t, 8*math.Cos(0.002), pos.X, 1e-12)
	assert.InDelta(t, 8*math.Sin(0.002), pos.Z, 1e-12)
	assert.Equal(t, 5.0, pos.Y, "orbit keeps the current height")

	for i := 0; i < 99; i++ {
		pos, _ = m.Advance(pos)
	}
	assert.InDelta(t, 0.2, m.Angle(), 1e-9)
	assert.InDelta(t, 8, math.Hypot(pos.X, pos.Z), 1e-9)
}

func TestMachineAdvanceStopsWhileNotAutoRotating(t *testing.T) {
	m := newTestMachine()
	start := geometry.NewVector3(5, 5, 5)

	m.DragStart(at(0))
	pos, ok := m.Advance(start)
	assert.False(t, ok)
	assert.Equal(t, start, pos)

	m.DragEnd(at(100))
	_, ok = m.Advance(start)
	assert.False(t, ok)
	assert.Zero(t, m.Angle())

	m.Tick(at(3100))
	_, ok = m.Advance(start)
	assert.True(t, ok)
}

func TestMachineResume(t *testing.T) {
	m := newTestMachine()
	m.DragStart(at(0))
	m.DragEnd(at(10))

	m.Resume()
	assert.Equal(t, AutoRotating, m.State())
	assert.False(t, m.UserInteracted())
	_, ok := m.Advance(geometry.Vector3{})
	assert.True(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "auto-rotating", AutoRotating.String())
	assert.Equal(t, "user-controlling", UserControlling.String())
	assert.Equal(t, "paused", PausedAfterInteraction.String())
	assert.Equal(t, "unknown", State(42).String())
}
