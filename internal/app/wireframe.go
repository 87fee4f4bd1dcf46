package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochair/pkg/geometry"
	"github.com/philipparndt/gochair/pkg/scene"
)

var outlineColor = rl.NewColor(40, 40, 40, 160)

// drawOutline draws the edges of a mesh on top of its fill
func (app *App) drawOutline(m *scene.Mesh) {
	switch m.Kind {
	case scene.ShapeBox:
		size := m.Box.Size
		rl.DrawCubeWires(toRaylib(m.Box.Center), float32(size.X), float32(size.Y), float32(size.Z), outlineColor)
	case scene.ShapeCylinder:
		c := m.Cylinder
		base := c.Center.Sub(geometry.NewVector3(0, c.Height/2, 0))
		rl.DrawCylinderWires(toRaylib(base), float32(c.Radius), float32(c.Radius), float32(c.Height), cylinderSlices, outlineColor)
	}
}
