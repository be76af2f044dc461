package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// InteractionState holds mouse drag state
type InteractionState struct {
	isRotating bool
	isPanning  bool
}

// handleInput feeds mouse and keyboard input to the sliders and the orbit
// controls. Clicks that land on a slider never reach the camera.
func (app *App) handleInput() {
	if app.handleSliderInput() {
		return
	}

	controls := app.viewer.Controls
	height := float32(rl.GetScreenHeight())

	if rl.IsKeyPressed(rl.KeyHome) {
		app.viewer.ResetView()
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		// Pan if Shift is pressed
		app.Interaction.isPanning = shiftPressed
		app.Interaction.isRotating = !shiftPressed
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.isPanning = false
		app.Interaction.isRotating = false
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		leftDown := rl.IsMouseButtonDown(rl.MouseLeftButton)
		switch {
		case leftDown && app.Interaction.isRotating:
			controls.Rotate(delta.X, delta.Y, height)
		case leftDown && app.Interaction.isPanning,
			rl.IsMouseButtonDown(rl.MouseMiddleButton),
			rl.IsMouseButtonDown(rl.MouseRightButton):
			controls.Pan(delta.X, delta.Y, height)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		controls.Zoom(wheel)
	}
}
