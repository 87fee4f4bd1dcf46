package viewer

import (
	"math"

	"github.com/philipparndt/gochair/pkg/geometry"
)

const polarEpsilon = 1e-6

// OrbitControls rotates and zooms a camera around its target from pointer
// drags and wheel input. With damping enabled, input accumulates as a
// velocity that decays over the following frames.
type OrbitControls struct {
	camera *Camera

	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64
	MinDistance   float64
	MaxDistance   float64

	thetaDelta float64 // azimuth change pending
	phiDelta   float64 // polar change pending
	scale      float64 // distance multiplier pending
}

// NewOrbitControls attaches controls to a camera
func NewOrbitControls(camera *Camera) *OrbitControls {
	return &OrbitControls{
		camera:        camera,
		EnableDamping: true,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0,
		MaxDistance:   math.Inf(1),
		scale:         1,
	}
}

// Rotate queues a rotation from a pointer drag of (dx, dy) pixels in a
// viewport of the given height. A full-height drag turns the camera 360°.
func (o *OrbitControls) Rotate(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float64(viewportHeight)
	o.thetaDelta -= 2 * math.Pi * dx / h * o.RotateSpeed
	o.phiDelta -= 2 * math.Pi * dy / h * o.RotateSpeed
}

// Zoom queues a dolly step. Positive wheel values move closer.
func (o *OrbitControls) Zoom(wheel float64) {
	if wheel == 0 {
		return
	}
	step := math.Pow(0.95, o.ZoomSpeed*math.Abs(wheel))
	if wheel > 0 {
		o.scale *= step
	} else {
		o.scale /= step
	}
}

// Pending reports whether any queued motion is still being applied
func (o *OrbitControls) Pending() bool {
	return math.Abs(o.thetaDelta) > polarEpsilon || math.Abs(o.phiDelta) > polarEpsilon || o.scale != 1
}

// Update applies queued motion to the camera and reports whether it moved
func (o *OrbitControls) Update() bool {
	c := o.camera
	offset := c.Position.Sub(c.Target)

	radius := offset.Length()
	if radius == 0 {
		return false
	}
	theta := math.Atan2(offset.X, offset.Z)
	phi := math.Acos(math.Max(-1, math.Min(1, offset.Y/radius)))

	factor := 1.0
	if o.EnableDamping {
		factor = o.DampingFactor
	}
	theta += o.thetaDelta * factor
	phi += o.phiDelta * factor
	phi = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, phi))

	radius *= o.scale
	radius = math.Max(o.MinDistance, math.Min(o.MaxDistance, radius))

	sinPhi := math.Sin(phi)
	next := geometry.NewVector3(
		radius*sinPhi*math.Sin(theta),
		radius*math.Cos(phi),
		radius*sinPhi*math.Cos(theta),
	)

	if o.EnableDamping {
		o.thetaDelta *= 1 - o.DampingFactor
		o.phiDelta *= 1 - o.DampingFactor
	} else {
		o.thetaDelta = 0
		o.phiDelta = 0
	}
	o.scale = 1

	moved := next.Sub(offset).Length() > polarEpsilon
	c.Position = c.Target.Add(next)
	return moved
}
