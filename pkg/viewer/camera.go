package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gochair/pkg/geometry"
)

// Camera is a perspective camera looking at a target point
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Vertical field of view in radians
	Aspect   float64 // Width / height
	Near     float64
	Far      float64
}

// NewCamera creates a camera at position looking at target.
// fovDegrees is the vertical field of view.
func NewCamera(position, target geometry.Vector3, fovDegrees, aspect, near, far float64) *Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return &Camera{
		Position: position,
		Target:   target,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      fovDegrees * math.Pi / 180,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// LookAt points the camera at target
func (c *Camera) LookAt(target geometry.Vector3) {
	c.Target = target
}

// Resize updates the aspect ratio for a new viewport size.
// Degenerate sizes are ignored and leave the previous aspect in place.
func (c *Camera) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.Aspect = float64(width) / float64(height)
	return true
}

// Distance returns the distance from the camera to its target
func (c *Camera) Distance() float64 {
	return c.Position.Distance(c.Target)
}

func toVec3(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v mgl64.Vec3) geometry.Vector3 {
	return geometry.NewVector3(v.X(), v.Y(), v.Z())
}

// ViewMatrix returns the world-to-camera transform
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(toVec3(c.Position), toVec3(c.Target), toVec3(c.Up))
}

// ProjectionMatrix returns the camera-to-clip transform
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// Project converts a world point into normalized device coordinates.
// ok is false for points behind the camera.
func (c *Camera) Project(point geometry.Vector3) (ndcX, ndcY float64, ok bool) {
	vp := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	clip := vp.Mul4x1(toVec3(point).Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	return clip.X() / clip.W(), clip.Y() / clip.W(), true
}

// Ray returns the world ray from the camera through the given normalized
// device coordinate (x right, y up, both in [-1, 1])
func (c *Camera) Ray(ndcX, ndcY float64) geometry.Ray {
	inv := c.ProjectionMatrix().Mul4(c.ViewMatrix()).Inv()

	far := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, 1, 1})
	if far.W() == 0 {
		return geometry.NewRay(c.Position, c.Target.Sub(c.Position))
	}
	farPoint := fromVec3(far.Vec3().Mul(1 / far.W()))

	return geometry.NewRay(c.Position, farPoint.Sub(c.Position))
}
