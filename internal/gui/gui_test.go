package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/meshcompare/internal/compare"
	"github.com/philipparndt/meshcompare/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGUI(t *testing.T) *GUI {
	t.Helper()
	test.NewTempApp(t)
	v, err := compare.New(config.Default())
	require.NoError(t, err)
	return newGUI(v, 600)
}

func TestLayoutFollowsGrid(t *testing.T) {
	g := newTestGUI(t)
	content := g.content()
	content.Resize(fyne.NewSize(1000, 800))

	assert.Equal(t, 1000, g.width)
	assert.Equal(t, float32(800), g.input.Size().Height)

	// slot (1,1) starts at x=500, top=440
	label := g.labels[3]
	assert.Equal(t, "Repaired", label.Text)
	assert.Equal(t, float32(505), label.Position().X)
	assert.Equal(t, float32(437), label.Position().Y)
}

func TestSliderMovesOnlyItsRow(t *testing.T) {
	g := newTestGUI(t)
	g.sliders[1].SetValue(2.5)

	assert.Equal(t, 0.0, g.viewer.Clip.Value(0))
	assert.Equal(t, 2.5, g.viewer.Clip.Value(1))
}

func TestFrameRendersAtLayoutWidth(t *testing.T) {
	g := newTestGUI(t)
	g.content().Resize(fyne.NewSize(400, 800))

	g.frame()
	assert.Equal(t, 400, g.surface.Width())
	assert.Equal(t, 800, g.surface.Image().Bounds().Dy())
}
