package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gochair/internal/interaction"
	"github.com/philipparndt/gochair/version"
)

const (
	labelFontSize = 16
	labelPadding  = 6
	hudFontSize   = 14
)

var (
	labelBackground = rl.NewColor(20, 20, 20, 220)
	labelText       = rl.NewColor(255, 255, 255, 255)
	labelBorder     = rl.NewColor(90, 90, 90, 255)
	hudText         = rl.NewColor(60, 60, 60, 255)
)

// drawLabel renders the click label at its screen position
func drawLabel(label interaction.Label) {
	if !label.Visible {
		return
	}

	textWidth := rl.MeasureText(label.Text, labelFontSize)
	x := int32(label.X)
	y := int32(label.Y)

	rect := rl.Rectangle{
		X:      float32(x - labelPadding),
		Y:      float32(y - labelPadding),
		Width:  float32(textWidth + 2*labelPadding),
		Height: float32(labelFontSize + 2*labelPadding),
	}
	rl.DrawRectangleRec(rect, labelBackground)
	rl.DrawRectangleLinesEx(rect, 1, labelBorder)
	rl.DrawText(label.Text, x, y, labelFontSize, labelText)
}

// drawUI draws the label and the overlay text
func (app *App) drawUI() {
	s := app.Session
	drawLabel(s.Label())

	screenHeight := int32(rl.GetScreenHeight())
	status := fmt.Sprintf("%s  |  H: help", s.State())
	if hovered := s.Hovered(); hovered != nil {
		status = fmt.Sprintf("%s  |  %s", hovered.Name(), status)
	}
	rl.DrawText(status, 10, screenHeight-hudFontSize-10, hudFontSize, hudText)

	if app.View.showFPS {
		rl.DrawFPS(10, 10)
	}

	if app.View.showHelp {
		lines := []string{
			"GoChair " + version.GetFullVersion(),
			"Drag: orbit camera",
			"Wheel: zoom",
			"Click: recolor part",
			"Home: reset view",
			"O: toggle outlines",
			"F: toggle FPS",
		}
		y := int32(40)
		for _, line := range lines {
			rl.DrawText(line, 10, y, hudFontSize, hudText)
			y += hudFontSize + 4
		}
	}
}
