package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// shade ramp from faint to full block
var shadeChars = []rune{' ', '░', '░', '▒', '▒', '▓', '▓', '█', '█'}

var shadeStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("19")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("32")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("43")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// Heatmap renders a row-major scalar grid as colored shade characters,
// one cell per value, normalized to the finite range of the data. Row 0 of
// the grid (lowest y) ends up at the bottom of the output.
func Heatmap(values []float64, nx, ny int) string {
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

	var b strings.Builder
	for j := ny - 1; j >= 0; j-- {
		for i := 0; i < nx; i++ {
			v := values[j*nx+i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				b.WriteString(singularStyle.Render("×"))
				continue
			}
			norm := (v - lo) / rng
			idx := int(norm * float64(len(shadeChars)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(shadeChars) {
				idx = len(shadeChars) - 1
			}
			b.WriteString(shadeStyles[idx].Render(string(shadeChars[idx])))
		}
		b.WriteString("\n")
	}
	return b.String()
}
