// Package picker resolves which scene object lies under a pointer.
package picker

import (
	"math"

	"github.com/philipparndt/gochair/pkg/geometry"
	"github.com/philipparndt/gochair/pkg/scene"
	"github.com/philipparndt/gochair/pkg/viewer"
)

// Pointer is a position in screen pixels, origin at the top-left corner
type Pointer struct {
	X, Y float64
}

// Viewport is the size of the drawing surface in pixels
type Viewport struct {
	Width, Height int
}

// Valid reports whether the viewport has a usable area
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// NDC converts a pointer position to normalized device coordinates
// (x right, y up, both in [-1, 1]). Positions outside the viewport are
// clamped to its edge.
func (v Viewport) NDC(p Pointer) (x, y float64) {
	if !v.Valid() {
		return 0, 0
	}
	px := clamp(p.X, 0, float64(v.Width))
	py := clamp(p.Y, 0, float64(v.Height))
	x = px/float64(v.Width)*2 - 1
	y = -(py/float64(v.Height))*2 + 1
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// Hit is the result of a successful pick
type Hit struct {
	Object   scene.Object
	Distance float64
	Point    geometry.Vector3
	Index    int // position of Object in the candidate list
}

// Pick returns the nearest object hit by the ray from the camera through the
// pointer. Ties within geometry.Epsilon go to the object listed first. An
// empty object set, missing camera or degenerate viewport is a miss.
func Pick(p Pointer, vp Viewport, cam *viewer.Camera, objects []scene.Object) (Hit, bool) {
	if cam == nil || len(objects) == 0 || !vp.Valid() {
		return Hit{}, false
	}
	x, y := vp.NDC(p)
	return Cast(cam.Ray(x, y), objects)
}

// Cast tests a ray against every object and keeps the closest hit
func Cast(r geometry.Ray, objects []scene.Object) (Hit, bool) {
	best := Hit{Index: -1, Distance: math.Inf(1)}

	for i, obj := range objects {
		if obj == nil {
			continue
		}
		dist, ok := obj.Intersect(r)
		if !ok {
			continue
		}
		// Strictly closer by more than the tolerance, so earlier objects win ties
		if dist < best.Distance-geometry.Epsilon {
			best = Hit{Object: obj, Distance: dist, Index: i}
		}
	}

	if best.Index < 0 {
		return Hit{}, false
	}
	best.Point = r.At(best.Distance)
	return best, true
}
