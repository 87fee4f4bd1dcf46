package scene

import (
	"github.com/philipparndt/gochair/pkg/geometry"
)

// Object is a named scene entity that can be targeted by a ray
type Object interface {
	Name() string
	geometry.Shape
}

// Highlightable objects carry a transient emphasis color while hovered
type Highlightable interface {
	Object
	Highlight() Color
	SetHighlight(c Color)
	ClearHighlight()
}

// Colorable objects have a persistent base color that can be changed
type Colorable interface {
	Object
	BaseColor() Color
	SetBaseColor(c Color)
}

// Material holds the mutable color slots of a mesh
type Material struct {
	Color    Color // base color
	Emissive Color // highlight color, Black when not highlighted
}

// ShapeKind tells the renderer how to draw a mesh
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCylinder
)

// Mesh is a solid, pickable object with its own material
type Mesh struct {
	name     string
	Kind     ShapeKind
	Box      geometry.Box
	Cylinder geometry.Cylinder
	Material Material
}

// NewBox creates a box mesh
func NewBox(name string, center, size geometry.Vector3, color Color) *Mesh {
	return &Mesh{
		name:     name,
		Kind:     ShapeBox,
		Box:      geometry.Box{Center: center, Size: size},
		Material: Material{Color: color},
	}
}

// NewCylinder creates an upright cylinder mesh
func NewCylinder(name string, center geometry.Vector3, radius, height float64, color Color) *Mesh {
	return &Mesh{
		name:     name,
		Kind:     ShapeCylinder,
		Cylinder: geometry.Cylinder{Center: center, Radius: radius, Height: height},
		Material: Material{Color: color},
	}
}

func (m *Mesh) Name() string { return m.name }

func (m *Mesh) Intersect(r geometry.Ray) (float64, bool) {
	if m.Kind == ShapeCylinder {
		return m.Cylinder.Intersect(r)
	}
	return m.Box.Intersect(r)
}

func (m *Mesh) Highlight() Color { return m.Material.Emissive }
func (m *Mesh) SetHighlight(c Color) { m.Material.Emissive = c & ColorMask }
func (m *Mesh) ClearHighlight() { m.Material.Emissive = Black }
func (m *Mesh) BaseColor() Color { return m.Material.Color }
func (m *Mesh) SetBaseColor(c Color) { m.Material.Color = c & ColorMask }
func (m *Mesh) Highlighted() bool { return m.Material.Emissive != Black }
func (m *Mesh) DisplayColor() Color { return m.Material.Color.Add(m.Material.Emissive) }

// Shape returns the geometry the mesh is built from
func (m *Mesh) Shape() geometry.Shape {
	if m.Kind == ShapeCylinder {
		return m.Cylinder
	}
	return m.Box
}

// Ground is the shadow-catching floor. It blocks rays but has no color slots,
// so it never takes part in hover or click recoloring.
type Ground struct {
	Rect    geometry.Rect
	Opacity float64
}

func (g *Ground) Name() string { return "Ground" }

func (g *Ground) Intersect(r geometry.Ray) (float64, bool) {
	return g.Rect.Intersect(r)
}
