package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gochair/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera() *Camera {
	return NewCamera(geometry.NewVector3(0, 0, 10), geometry.NewVector3(0, 0, 0), 60, 1, 0.1, 1000)
}

func TestCameraCenterRayPointsAtTarget(t *testing.T) {
	cam := newTestCamera()
	r := cam.Ray(0, 0)

	assert.Equal(t, cam.Position, r.Origin)
	assert.InDelta(t, 0, r.Direction.X, 1e-9)
	assert.InDelta(t, 0, r.Direction.Y, 1e-9)
	assert.InDelta(t, -1, r.Direction.Z, 1e-9)
}

func TestCameraRayRoundTripsProject(t *testing.T) {
	cam := NewCamera(geometry.NewVector3(5, 5, 5), geometry.NewVector3(0, 1, 0), 60, 16.0/9.0, 0.1, 1000)

	point := geometry.NewVector3(0.9, 0.5, -0.9)
	x, y, ok := cam.Project(point)
	require.True(t, ok)

	r := cam.Ray(x, y)
	toPoint := point.Sub(r.Origin).Normalize()
	assert.InDelta(t, 1, r.Direction.Dot(toPoint), 1e-9)
}

func TestCameraProjectBehind(t *testing.T) {
	cam := newTestCamera()
	_, _, ok := cam.Project(geometry.NewVector3(0, 0, 20))
	assert.False(t, ok)
}

func TestCameraEdgeRayMatchesFOV(t *testing.T) {
	cam := newTestCamera()
	r := cam.Ray(0, 1)

	// The top edge of the view is half the vertical FOV above the view axis
	angle := math.Acos(r.Direction.Dot(geometry.NewVector3(0, 0, -1)))
	assert.InDelta(t, cam.FOV/2, angle, 1e-9)
	assert.Greater(t, r.Direction.Y, 0.0)
}

func TestCameraResize(t *testing.T) {
	cam := newTestCamera()

	assert.True(t, cam.Resize(1600, 800))
	assert.InDelta(t, 2.0, cam.Aspect, 1e-12)

	assert.False(t, cam.Resize(0, 0))
	assert.InDelta(t, 2.0, cam.Aspect, 1e-12)

	assert.False(t, cam.Resize(800, 0))
	assert.InDelta(t, 2.0, cam.Aspect, 1e-12)
}

func TestOrbitRotateKeepsDistance(t *testing.T) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam)
	controls.EnableDamping = false

	controls.Rotate(100, 0, 600)
	require.True(t, controls.Update())

	assert.InDelta(t, 10, cam.Distance(), 1e-9)
	assert.InDelta(t, 0, cam.Position.Y, 1e-9)
	assert.False(t, controls.Pending())
}

func TestOrbitDampingDecays(t *testing.T) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam)

	controls.Rotate(100, 0, 600)
	require.True(t, controls.Update())
	first := cam.Position

	for i := 0; i < 1000; i++ {
		controls.Update()
	}
	assert.False(t, controls.Pending())
	assert.NotEqual(t, first, cam.Position)
	assert.InDelta(t, 10, cam.Distance(), 1e-9)
}

func TestOrbitClampsPolarAngle(t *testing.T) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam)
	controls.EnableDamping = false

	controls.Rotate(0, 10000, 600)
	controls.Update()

	// Pinned just short of straight overhead rather than flipping over the pole
	assert.InDelta(t, 10, cam.Position.Y, 1e-6)
	assert.Greater(t, cam.Position.Z, 0.0)
	assert.InDelta(t, 10, cam.Distance(), 1e-9)
}

func TestOrbitZoom(t *testing.T) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam)
	controls.EnableDamping = false

	controls.Zoom(1)
	controls.Update()
	assert.InDelta(t, 9.5, cam.Distance(), 1e-9)

	controls.Zoom(-1)
	controls.Update()
	assert.InDelta(t, 10, cam.Distance(), 1e-9)
}
