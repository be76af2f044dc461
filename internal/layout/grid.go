// Package layout computes where each slot of the comparison grid lives on
// the shared drawing surface.
package layout

import "math"

// Default grid metrics in pixels.
const (
	DefaultHeadingHeight = 50
	DefaultSubHeight     = 300
	DefaultRowSpacing    = 40
	DefaultMargin        = 20
	DefaultColumns       = 2
)

// Rect is a pixel rectangle. Y is measured bottom-up from the lower edge of
// the surface (GL convention), Top is the same edge measured top-down.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Top           float64
}

// Point is a top-down pixel position.
type Point struct {
	X, Y float64
}

// Grid describes an M-row x N-column arrangement of equally sized slots,
// each row preceded by a heading strip.
type Grid struct {
	Rows          int
	Columns       int
	HeadingHeight float64
	SubHeight     float64
	RowSpacing    float64
	Margin        float64
}

// NewGrid returns a grid with the default metrics.
func NewGrid(rows int) Grid {
	return Grid{
		Rows:          rows,
		Columns:       DefaultColumns,
		HeadingHeight: DefaultHeadingHeight,
		SubHeight:     DefaultSubHeight,
		RowSpacing:    DefaultRowSpacing,
		Margin:        DefaultMargin,
	}
}

// RowHeight is the vertical pitch of one row: heading, viewport and spacing.
func (g Grid) RowHeight() float64 {
	return g.HeadingHeight + g.SubHeight + g.RowSpacing
}

// TotalHeight is the height of the whole drawing surface.
func (g Grid) TotalHeight() float64 {
	return g.RowHeight()*float64(g.Rows) + g.Margin
}

// ColumnWidth splits the surface width evenly between columns.
func (g Grid) ColumnWidth(width float64) float64 {
	return width / float64(g.Columns)
}

// SlotRect computes the viewport rectangle of slot (row, col) on a surface
// of the given width.
func (g Grid) SlotRect(row, col int, width float64) Rect {
	columnWidth := g.ColumnWidth(width)
	top := float64(row)*g.RowHeight() + g.HeadingHeight
	return Rect{
		X:      float64(col) * columnWidth,
		Y:      g.TotalHeight() - (top + g.SubHeight),
		Width:  columnWidth,
		Height: g.SubHeight,
		Top:    top,
	}
}

// Aspect is the aspect ratio every slot camera must use.
func (g Grid) Aspect(width float64) float64 {
	return g.ColumnWidth(width) / g.SubHeight
}

// LabelPosition places the floating slot label just inside the top-left
// corner of its rectangle.
func (g Grid) LabelPosition(r Rect) Point {
	return Point{X: r.X + 5, Y: g.TotalHeight() - r.Y - r.Height + 5}
}

// HeadingPosition is the top-left corner of the heading strip of row.
func (g Grid) HeadingPosition(row int) Point {
	return Point{X: 20, Y: float64(row)*g.RowHeight() + 10}
}

// Span rounds both ends of [start, start+length) to whole pixels, so
// neighbouring rectangles share their edge and together cover the surface.
func Span(start, length float64) (int, int) {
	from := math.Round(start)
	return int(from), int(math.Round(start+length) - from)
}
