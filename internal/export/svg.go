package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/arunsk/gravlab/internal/geo"
	"github.com/arunsk/gravlab/internal/viz"
)

// CanvasToSVG converts a braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// QuiverDotsSVG draws field direction ticks on a braille canvas and renders
// the canvas as dots, the same view the live viewer's quiver mode shows.
// scale is pixels per braille sub-pixel.
func QuiverDotsSVG(field []geo.Vec3, nx, ny int, scale float64) string {
	if nx < 1 || ny < 1 || len(field) < nx*ny {
		return ""
	}
	c := viz.NewCanvas(nx, (ny+3)/4)
	c.DrawQuiver(field, nx, ny, 3)
	return CanvasToSVG(c, scale)
}

// HeatmapSVG renders a row-major scalar grid as colored cells. Values are
// normalized over their finite range; non-finite cells are left black.
func HeatmapSVG(values []float64, nx, ny, cellPx int) string {
	if nx < 1 || ny < 1 || len(values) < nx*ny {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	rng := hi - lo
	if rng == 0 || math.IsInf(rng, 0) {
		rng = 1
	}

	width := nx * cellPx
	height := ny * cellPx

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v := values[j*nx+i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			norm := (v - lo) / rng
			// SVG y runs down; grid row 0 is the lowest y
			y := (ny - 1 - j) * cellPx
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, i*cellPx, y, cellPx, cellPx, rampColor(norm)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// QuiverSVG renders field vectors as line segments with direction, scaled so
// the largest vector spans one cell.
func QuiverSVG(field []geo.Vec3, nx, ny, cellPx int) string {
	if nx < 1 || ny < 1 || len(field) < nx*ny {
		return ""
	}

	maxMag := 0.0
	for _, g := range field {
		m := math.Hypot(g.X, g.Y)
		if !math.IsNaN(m) && !math.IsInf(m, 0) && m > maxMag {
			maxMag = m
		}
	}
	if maxMag == 0 {
		maxMag = 1
	}

	width := nx * cellPx
	height := ny * cellPx

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#00ccff" stroke-width="1">
`, width, height, width, height))

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			g := field[j*nx+i]
			m := math.Hypot(g.X, g.Y)
			if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
				continue
			}
			cx := (float64(i) + 0.5) * float64(cellPx)
			cy := (float64(ny-1-j) + 0.5) * float64(cellPx)
			l := m / maxMag * float64(cellPx)
			dx := g.X / m * l
			dy := -g.Y / m * l
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, cx, cy, cx+dx, cy+dy))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// rampColor maps [0,1] to a blue-to-orange ramp.
func rampColor(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r := int(30 + t*(255-30))
	g := int(60 + t*(140-60))
	b := int(180 - t*160)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
