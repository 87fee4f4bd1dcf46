package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochair/internal/interaction"
	"github.com/philipparndt/gochair/pkg/picker"
)

// clickThreshold is how far (px) the mouse may travel between press and
// release and still count as a click
const clickThreshold = 4

func pointerOf(v rl.Vector2) picker.Pointer {
	return picker.Pointer{X: float64(v.X), Y: float64(v.Y)}
}

// handleInput translates raylib input into session events
func (app *App) handleInput(now time.Time) {
	s := app.Session

	if rl.IsWindowResized() {
		s.Handle(interaction.Resize{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}, now)
	}

	// View toggles
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyO) {
		app.View.showOutline = !app.View.showOutline
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFPS = !app.View.showFPS
	}

	mousePos := rl.GetMousePosition()
	if mousePos != app.Interaction.lastMousePos {
		app.Interaction.lastMousePos = mousePos
		s.Handle(interaction.PointerMove{Pointer: pointerOf(mousePos)}, now)
	}

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = mousePos
		app.Interaction.mouseMoved = false
		app.Interaction.dragging = true
		s.Handle(interaction.DragStart{}, now)
	}

	// Camera rotation with mouse drag
	if app.Interaction.dragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			s.Controls.Rotate(float64(delta.X), float64(delta.Y), s.Viewport.Height)
		}
		if rl.Vector2Distance(mousePos, app.Interaction.mouseDownPos) > clickThreshold {
			app.Interaction.mouseMoved = true
		}
	}

	if app.Interaction.dragging && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.dragging = false
		s.Handle(interaction.DragEnd{}, now)
		if !app.Interaction.mouseMoved {
			s.Handle(interaction.Click{Pointer: pointerOf(mousePos)}, now)
		}
	}

	// Zoom counts as a short manual interaction
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.Handle(interaction.DragStart{}, now)
		s.Controls.Zoom(float64(wheel))
		if !app.Interaction.dragging {
			s.Handle(interaction.DragEnd{}, now)
		}
	}

	// Home resets the idle orbit immediately
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetView(now)
	}
}

// resetView hands the camera back to the idle orbit at its configured start
func (app *App) resetView(now time.Time) {
	s := app.Session
	s.Camera.Position = app.Config.Camera.Position.Vector()
	s.Camera.LookAt(app.Config.Camera.Target.Vector())
	s.Machine().Resume()
	app.logger.Debug("view reset", "at", now)
}
