package geometry

import "math"

// Epsilon is the tolerance used for parallel and tie checks
const Epsilon = 1e-9

// Ray is a half-line starting at Origin. Direction is expected to be normalized
// so that intersection distances are measured in world units.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray and normalizes its direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Shape is anything a ray can be tested against
type Shape interface {
	// Intersect returns the distance to the nearest hit in front of the ray origin
	Intersect(r Ray) (float64, bool)
}

// Box is an axis-aligned box given by its center and full size
type Box struct {
	Center Vector3
	Size   Vector3
}

// Min returns the minimum corner
func (b Box) Min() Vector3 {
	return b.Center.Sub(b.Size.Mul(0.5))
}

// Max returns the maximum corner
func (b Box) Max() Vector3 {
	return b.Center.Add(b.Size.Mul(0.5))
}

// Intersect tests the ray against the box using the slab method
func (b Box) Intersect(r Ray) (float64, bool) {
	lo, hi := b.Min(), b.Max()
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	bmin := [3]float64{lo.X, lo.Y, lo.Z}
	bmax := [3]float64{hi.X, hi.Y, hi.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < Epsilon {
			// Parallel to this slab: must already be inside it
			if origin[i] < bmin[i] || origin[i] > bmax[i] {
				return 0, false
			}
			continue
		}
		t1 := (bmin[i] - origin[i]) / dir[i]
		t2 := (bmax[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// Origin is inside the box
		return tMax, true
	}
	return tMin, true
}

// Cylinder is an upright (Y axis) capped cylinder given by its center
type Cylinder struct {
	Center Vector3
	Radius float64
	Height float64
}

// Intersect tests the ray against the cylinder side and both caps
func (c Cylinder) Intersect(r Ray) (float64, bool) {
	best := math.Inf(1)
	bottom := c.Center.Y - c.Height/2
	top := c.Center.Y + c.Height/2

	// Side: solve |(o + t*d - center).xz|^2 = radius^2
	ox := r.Origin.X - c.Center.X
	oz := r.Origin.Z - c.Center.Z
	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z
	if a > Epsilon {
		b := 2 * (ox*r.Direction.X + oz*r.Direction.Z)
		cc := ox*ox + oz*oz - c.Radius*c.Radius
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				if t < 0 || t >= best {
					continue
				}
				y := r.Origin.Y + t*r.Direction.Y
				if y >= bottom && y <= top {
					best = t
				}
			}
		}
	}

	// Caps
	if math.Abs(r.Direction.Y) > Epsilon {
		for _, capY := range [2]float64{bottom, top} {
			t := (capY - r.Origin.Y) / r.Direction.Y
			if t < 0 || t >= best {
				continue
			}
			p := r.At(t)
			dx := p.X - c.Center.X
			dz := p.Z - c.Center.Z
			if dx*dx+dz*dz <= c.Radius*c.Radius {
				best = t
			}
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// Rect is a horizontal rectangle on the plane y = Center.Y
type Rect struct {
	Center Vector3
	Width  float64 // extent along X
	Depth  float64 // extent along Z
}

// Intersect tests the ray against the upper face of the rectangle.
// Rays travelling upward pass through it.
func (p Rect) Intersect(r Ray) (float64, bool) {
	if r.Direction.Y > -Epsilon {
		return 0, false
	}
	t := (p.Center.Y - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, false
	}
	hit := r.At(t)
	if math.Abs(hit.X-p.Center.X) > p.Width/2 || math.Abs(hit.Z-p.Center.Z) > p.Depth/2 {
		return 0, false
	}
	return t, true
}
