package viewer

import (
	"image/color"
	"math"
)

// fillTriangleWithDepth fills a projected triangle using scanlines,
// interpolating depth along the edges and across each span.
func (c *Canvas) fillTriangleWithDepth(vertices [3][3]float64, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1, z1 := vertices[0][0], vertices[0][1], vertices[0][2]
	x2, y2, z2 := vertices[1][0], vertices[1][1], vertices[1][2]
	x3, y3, z3 := vertices[2][0], vertices[2][1], vertices[2][2]

	// Pixel centers sit at +0.5
	yMin := int(math.Max(float64(c.scissor.Min.Y), math.Ceil(y1-0.5)))
	yMax := int(math.Min(float64(c.scissor.Max.Y-1), math.Floor(y3-0.5)))

	for y := yMin; y <= yMax; y++ {
		fy := float64(y) + 0.5
		if y3 == y1 {
			break
		}

		// long edge 1-3
		t := (fy - y1) / (y3 - y1)
		xa, za := x1+t*(x3-x1), z1+t*(z3-z1)

		// short edge, 1-2 above the middle vertex and 2-3 below it
		var xb, zb float64
		if fy < y2 && y2 != y1 {
			t = (fy - y1) / (y2 - y1)
			xb, zb = x1+t*(x2-x1), z1+t*(z2-z1)
		} else if y3 != y2 {
			t = (fy - y2) / (y3 - y2)
			xb, zb = x2+t*(x3-x2), z2+t*(z3-z2)
		} else {
			xb, zb = x2, z2
		}

		if xa > xb {
			xa, xb = xb, xa
			za, zb = zb, za
		}

		xStart := int(math.Max(float64(c.scissor.Min.X), math.Ceil(xa-0.5)))
		xEnd := int(math.Min(float64(c.scissor.Max.X-1), math.Floor(xb-0.5)))
		for x := xStart; x <= xEnd; x++ {
			z := za
			if xb != xa {
				z = za + (float64(x)+0.5-xa)/(xb-xa)*(zb-za)
			}
			c.plot(x, y, z, col)
		}
	}
}

// drawLine draws a line using Bresenham's algorithm with linear depth
func (c *Canvas) drawLine(x1, y1 int, z1 float64, x2, y2 int, z2 float64, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	steps := max(dx, dy)
	err := dx - dy

	for i := 0; ; i++ {
		z := z1
		if steps > 0 {
			z = z1 + (z2-z1)*float64(i)/float64(steps)
		}
		c.plot(x1, y1, z, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
