package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arunsk/gravlab/internal/gravity"
	"github.com/arunsk/gravlab/internal/survey"
)

// Quantities the viewer can display, cycled with tab.
var quantities = []string{"gz", "|g|", "potential", "tzz"}

// Model is an interactive viewer for a horizontal slice through the field of
// a point source. The field is closed-form, so every keypress just
// re-evaluates the slice at its new height.
type Model struct {
	src      *gravity.PointMass
	grid     survey.Grid
	step     float64
	selected int
	quiver   bool
	showHelp bool

	result *survey.Result
}

func NewModel(src *gravity.PointMass, grid survey.Grid) Model {
	m := Model{
		src:  src,
		grid: grid,
		step: sliceStep(grid),
	}
	m.recompute()
	return m
}

func sliceStep(g survey.Grid) float64 {
	span := g.XMax - g.XMin
	if span <= 0 {
		return 1
	}
	return span / 20
}

func (m *Model) recompute() {
	m.result = survey.Run(m.src, m.grid.Points())
}

func (m Model) values() []float64 {
	switch quantities[m.selected] {
	case "potential":
		return m.result.Potential
	case "|g|":
		return m.result.FieldMagnitudes()
	case "tzz":
		out := make([]float64, len(m.result.Gradient))
		for i, t := range m.result.Gradient {
			out[i] = t[2][2]
		}
		return out
	default:
		return m.result.VerticalField()
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(quantities)
		case "up", "k", "+", "=":
			m.grid.Z += m.step
			m.recompute()
		case "down", "j", "-", "_":
			m.grid.Z -= m.step
			m.recompute()
		case "v":
			m.quiver = !m.quiver
		case "h", "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m Model) View() string {
	vals := m.values()
	stats := survey.Summarize(vals)

	var plot string
	if m.quiver {
		c := NewCanvas(m.grid.NX, (m.grid.NY+3)/4)
		c.DrawQuiver(m.result.Field, m.grid.NX, m.grid.NY, 3)
		plot = c.String()
	} else {
		plot = Heatmap(vals, m.grid.NX, m.grid.NY)
	}

	header := headerStyle.Render("gravlab · point mass slice viewer")

	panel := fmt.Sprintf(
		"%s %s\n%s %s\n%s %s\n%s %s\n\n%s %s\n%s %s\n%s %s\n%s %s",
		labelStyle.Render("quantity"), quantityStyle.Render(quantities[m.selected]),
		labelStyle.Render("mass"), valueStyle.Render(fmt.Sprintf("%.3e kg", m.src.Mass())),
		labelStyle.Render("source"), valueStyle.Render(fmt.Sprintf("(%.0f, %.0f, %.0f) m", m.src.Location().X, m.src.Location().Y, m.src.Location().Z)),
		labelStyle.Render("slice z"), valueStyle.Render(fmt.Sprintf("%.1f m", m.grid.Z)),
		labelStyle.Render("min"), valueStyle.Render(fmt.Sprintf("%.4e", stats.Min)),
		labelStyle.Render("max"), valueStyle.Render(fmt.Sprintf("%.4e", stats.Max)),
		labelStyle.Render("mean"), valueStyle.Render(fmt.Sprintf("%.4e", stats.Mean)),
		labelStyle.Render("rms"), valueStyle.Render(fmt.Sprintf("%.4e", stats.RMS)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(plot),
		statsStyle.Render(panel),
	)

	help := "tab: quantity · ↑/↓: slice height · v: quiver · q: quit"
	if m.showHelp {
		help = "tab cycles gz → |g| → potential → tzz\n" +
			"↑/k/+ raises the slice, ↓/j/- lowers it\n" +
			"v toggles field-direction ticks\n" +
			"× marks the singular point (observation at the source)\n" +
			"q quits"
	}

	return header + "\n" + body + "\n" + helpStyle.Render(help)
}
