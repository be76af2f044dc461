package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshcompare/internal/compare"
	"github.com/philipparndt/meshcompare/version"
)

// App is the raylib frontend of the comparison grid
type App struct {
	viewer      *compare.Viewer
	surface     *surface
	Interaction InteractionState
	Sliders     SliderState
}

// Run opens a window of the given width showing every slot of v and blocks
// until it is closed. Loading must already have been started on v.
func Run(v *compare.Viewer, width int) error {
	height := int32(v.Grid.TotalHeight())

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(width), height, fmt.Sprintf("Mesh Compare %s", version.Version))
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open window")
	}
	defer rl.CloseWindow()
	rl.SetWindowMinSize(v.Grid.Columns*200, int(height))
	rl.SetTargetFPS(60)

	app := &App{
		viewer:  v,
		surface: newSurface(v.Grid),
		Sliders: newSliderState(v.Rows()),
	}

	lastWidth := 0
	for !rl.WindowShouldClose() {
		screenWidth := rl.GetScreenWidth()
		if screenWidth != lastWidth {
			lastWidth = screenWidth
			v.Invalidate()
		}

		app.handleInput()
		v.Update()

		rl.BeginDrawing()
		rl.ClearBackground(pageColor)

		app.surface.begin(rl.GetScreenHeight())
		v.Render(app.surface, float64(screenWidth))
		app.surface.end()

		app.drawUI()
		rl.EndDrawing()
	}

	return nil
}
