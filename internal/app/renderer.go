package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochair/pkg/geometry"
	"github.com/philipparndt/gochair/pkg/scene"
)

// cylinderSlices matches the leg tessellation of the product model
const cylinderSlices = 16

func rlColor(c scene.Color, alpha uint8) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, alpha)
}

// shade applies flat ambient + diffuse lighting to a base color
func shade(c scene.Color, ambient scene.Color, normal, lightDir geometry.Vector3, intensity float64) scene.Color {
	ar, ag, ab := ambient.RGB()
	diffuse := math.Max(0, normal.Dot(lightDir)) * intensity
	r, g, b := c.RGB()
	channel := func(base, amb uint8) uint8 {
		v := float64(base) * (float64(amb)/255 + diffuse)
		return uint8(math.Min(255, v))
	}
	return scene.NewColor(channel(r, ar), channel(g, ag), channel(b, ab))
}

// drawScene draws every object of the session scene from the current camera
func (app *App) drawScene() {
	s := app.Session.Scene
	lightDir := s.Sun.Position.Normalize()
	// Flat shading with a normal halfway between up and the view direction
	viewDir := app.Session.Camera.Position.Sub(app.Session.Camera.Target).Normalize()
	faceNormal := geometry.NewVector3(0, 1, 0).Add(viewDir).Normalize()

	if g := s.Ground(); g != nil {
		rl.DrawPlane(
			toRaylib(g.Rect.Center),
			rl.Vector2{X: float32(g.Rect.Width), Y: float32(g.Rect.Depth)},
			rl.NewColor(0, 0, 0, uint8(g.Opacity*255)),
		)
	}

	for _, m := range s.Meshes() {
		lit := shade(m.BaseColor(), s.Ambient, faceNormal, lightDir, s.Sun.Intensity)
		color := rlColor(lit.Add(m.Highlight()), 255)

		switch m.Kind {
		case scene.ShapeBox:
			size := m.Box.Size
			rl.DrawCube(toRaylib(m.Box.Center), float32(size.X), float32(size.Y), float32(size.Z), color)
		case scene.ShapeCylinder:
			c := m.Cylinder
			// raylib cylinders grow up from their base center
			base := c.Center.Sub(geometry.NewVector3(0, c.Height/2, 0))
			rl.DrawCylinder(toRaylib(base), float32(c.Radius), float32(c.Radius), float32(c.Height), cylinderSlices, color)
		}

		if app.View.showOutline || m.Highlighted() {
			app.drawOutline(m)
		}
	}
}
