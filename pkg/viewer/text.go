package viewer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LoadFace parses a TrueType font and returns a face of the given point
// size at 72 DPI, so one point is one pixel.
func LoadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// SetFace sets the face used by DrawText; nil restores the built-in
// bitmap font.
func (c *Canvas) SetFace(face font.Face) {
	c.face = face
}

func (c *Canvas) textFace() font.Face {
	if c.face == nil {
		return basicfont.Face7x13
	}
	return c.face
}

// DrawText writes text with its top-left corner at (x, y), clipped to the
// scissor rectangle.
func (c *Canvas) DrawText(x, y int, text string, col color.Color) {
	face := c.textFace()
	dst := c.img.SubImage(c.scissor).(*image.RGBA)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + face.Metrics().Ascent.Ceil())},
	}
	d.DrawString(text)
}
