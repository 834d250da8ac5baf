package export

import (
	"math"
	"strings"
	"testing"

	"github.com/arunsk/gravlab/internal/geo"
	"github.com/arunsk/gravlab/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)

	svg := CanvasToSVG(c, 4)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected XML header")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected at least one dot")
	}

	if got := CanvasToSVG(nil, 4); got != "" {
		t.Errorf("expected empty output for nil canvas, got %q", got)
	}
}

func TestQuiverDotsSVG(t *testing.T) {
	field := []geo.Vec3{
		{X: 1}, {Y: 1},
		{X: -1}, {Y: -1},
	}
	svg := QuiverDotsSVG(field, 2, 2, 4)

	if !strings.Contains(svg, "<circle") {
		t.Error("expected braille dots in output")
	}

	if got := QuiverDotsSVG(field, 3, 3, 4); got != "" {
		t.Errorf("expected empty output for undersized field, got %d bytes", len(got))
	}
}

func TestHeatmapSVG(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	svg := HeatmapSVG(values, 3, 2, 10)

	if count := strings.Count(svg, "<rect"); count != 7 { // background + 6 cells
		t.Errorf("expected 7 rects, got %d", count)
	}
	if !strings.Contains(svg, `width="30" height="20"`) {
		t.Error("expected 30x20 viewport")
	}
}

func TestHeatmapSVGSkipsNonFinite(t *testing.T) {
	values := []float64{1, math.Inf(1), 3, 4}
	svg := HeatmapSVG(values, 2, 2, 10)

	if count := strings.Count(svg, "<rect"); count != 4 { // background + 3 finite cells
		t.Errorf("expected 4 rects, got %d", count)
	}
}

func TestQuiverSVG(t *testing.T) {
	field := []geo.Vec3{
		{X: 1}, {Y: 1},
		{X: -1}, {}, // zero vector skipped
	}
	svg := QuiverSVG(field, 2, 2, 10)

	if count := strings.Count(svg, "<line"); count != 3 {
		t.Errorf("expected 3 segments, got %d", count)
	}
}
