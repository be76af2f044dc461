package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshcompare/internal/scene"
)

// Slider geometry
const (
	sliderWidth        = float32(220)
	sliderHeight       = float32(6)
	sliderHandleRadius = float32(8)
	sliderOffsetX      = float32(120) // from the heading's left edge
	headingFontSize    = 20
	labelFontSize      = 14
)

var (
	sliderColor = rl.NewColor(70, 110, 200, 255)
	trackColor  = rl.NewColor(210, 214, 222, 255)
)

// SliderState holds the clip slider of every row
type SliderState struct {
	bounds  []rl.Rectangle // interaction bounds, one per row
	hovered int            // -1=none
	active  int            // -1=none
}

func newSliderState(rows int) SliderState {
	return SliderState{
		bounds:  make([]rl.Rectangle, rows),
		hovered: -1,
		active:  -1,
	}
}

// sliderTrack is the track rectangle of row's slider
func (app *App) sliderTrack(row int) rl.Rectangle {
	p := app.viewer.Grid.HeadingPosition(row)
	return rl.Rectangle{
		X:      float32(p.X) + sliderOffsetX,
		Y:      float32(p.Y) + headingFontSize/2 - sliderHeight/2,
		Width:  sliderWidth,
		Height: sliderHeight,
	}
}

// handleSliderInput drags the clip sliders. It reports whether the mouse
// is busy with a slider this frame.
func (app *App) handleSliderInput() bool {
	s := &app.Sliders
	mousePos := rl.GetMousePosition()

	s.hovered = -1
	for row := range s.bounds {
		track := app.sliderTrack(row)
		s.bounds[row] = rl.Rectangle{
			X:      track.X - sliderHandleRadius,
			Y:      track.Y - sliderHandleRadius,
			Width:  track.Width + sliderHandleRadius*2,
			Height: track.Height + sliderHandleRadius*2,
		}
		if rl.CheckCollisionPointRec(mousePos, s.bounds[row]) {
			s.hovered = row
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && s.hovered != -1 {
		s.active = s.hovered
	}
	if s.active == -1 {
		return false
	}

	// Map the pointer to the slider range
	track := app.sliderTrack(s.active)
	t := (mousePos.X - track.X) / track.Width
	t = float32(math.Max(0, math.Min(1, float64(t))))
	app.viewer.SetClip(s.active, scene.ClipMin+float64(t)*(scene.ClipMax-scene.ClipMin))

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		s.active = -1
	}
	return true
}

// drawUI draws headings, sliders and slot labels over the rendered slots
func (app *App) drawUI() {
	v := app.viewer

	for row := 0; row < v.Rows(); row++ {
		p := v.Grid.HeadingPosition(row)
		rl.DrawText(v.Heading(row), int32(p.X), int32(p.Y), headingFontSize, rl.Black)
		app.drawSlider(row)
	}

	for _, l := range app.surface.labels {
		rl.DrawText(l.text, int32(l.at.X), int32(l.at.Y), labelFontSize, labelColor)
	}

	help := "Drag: rotate | Shift/right drag: pan | Wheel: zoom | Home: reset"
	width := rl.MeasureText(help, 10)
	rl.DrawText(help, int32(rl.GetScreenWidth())-width-10, 10, 10, rl.Gray)
}

func (app *App) drawSlider(row int) {
	s := &app.Sliders
	track := app.sliderTrack(row)
	value := float32(app.viewer.Clip.Value(row))

	rl.DrawRectangleRounded(track, 0.5, 8, trackColor)

	normalizedValue := (value - scene.ClipMin) / (scene.ClipMax - scene.ClipMin)
	handleX := track.X + normalizedValue*track.Width

	fill := sliderColor
	fill.A = 100
	rl.DrawRectangleRounded(rl.Rectangle{X: track.X, Y: track.Y, Width: handleX - track.X, Height: track.Height}, 0.5, 8, fill)

	handleColor := sliderColor
	if s.active == row {
		handleColor = rl.DarkBlue
	} else if s.hovered == row {
		// Brighten on hover
		handleColor.R = uint8(math.Min(float64(handleColor.R)+30, 255))
		handleColor.G = uint8(math.Min(float64(handleColor.G)+30, 255))
		handleColor.B = uint8(math.Min(float64(handleColor.B)+30, 255))
	}
	handleY := track.Y + track.Height/2
	rl.DrawCircleV(rl.Vector2{X: handleX, Y: handleY}, sliderHandleRadius, handleColor)
	rl.DrawCircleLines(int32(handleX), int32(handleY), sliderHandleRadius, rl.White)

	valueText := fmt.Sprintf("%.1f", value)
	rl.DrawText(valueText, int32(track.X+track.Width+14), int32(track.Y)-4, labelFontSize, rl.DarkGray)
}
