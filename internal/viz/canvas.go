package viz

import (
	"math"
	"strings"

	"github.com/arunsk/gravlab/internal/geo"
)

// Braille Patterns: 2x4 dots per character cell, unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights a pixel at (x, y) in sub-pixel coordinates. The canvas size in
// sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawQuiver draws field direction ticks on a sub-pixel lattice. Vectors are
// projected onto the XY plane and scaled to a fixed tick length, so the plot
// shows direction, not magnitude.
func (c *Canvas) DrawQuiver(field []geo.Vec3, nx, ny int, tickLen float64) {
	if nx < 1 || ny < 1 {
		return
	}
	subW := float64(c.Width * 2)
	subH := float64(c.Height * 4)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			g := field[j*nx+i]
			mag := math.Hypot(g.X, g.Y)
			if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
				continue
			}
			cx := (float64(i) + 0.5) / float64(nx) * subW
			cy := (1 - (float64(j)+0.5)/float64(ny)) * subH
			ux := g.X / mag * tickLen
			uy := -g.Y / mag * tickLen
			c.DrawLine(int(cx), int(cy), int(cx+ux), int(cy+uy))
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
