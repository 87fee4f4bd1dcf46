package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochair/pkg/geometry"
	"github.com/philipparndt/gochair/pkg/viewer"
)

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// syncCamera copies the session camera into the raylib camera used for drawing
func (app *App) syncCamera(cam *viewer.Camera) {
	app.Camera.camera = rl.Camera3D{
		Position:   toRaylib(cam.Position),
		Target:     toRaylib(cam.Target),
		Up:         toRaylib(cam.Up),
		Fovy:       float32(cam.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}
