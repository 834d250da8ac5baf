package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/arunsk/gravlab/internal/geo"
	"github.com/arunsk/gravlab/internal/gravity"
	"github.com/arunsk/gravlab/internal/survey"
)

func makeResult(t *testing.T) *survey.Result {
	t.Helper()
	src, err := gravity.New(1e9, geo.Vec3{Z: -50})
	if err != nil {
		t.Fatal(err)
	}
	grid := survey.Grid{XMin: -100, XMax: 100, YMin: -100, YMax: 100, Z: 0, NX: 5, NY: 5}
	return survey.Run(src, grid.Points())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	res := makeResult(t)
	meta := RunMetadata{
		Mass:     1e9,
		Location: []float64{0, 0, -50},
		GridZ:    0,
		NX:       5, NY: 5,
		Quantity: "gz",
		Stats:    survey.Summarize(res.VerticalField()).Map("gz"),
	}

	runID, err := st.Save(meta, res)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "survey_") {
		t.Errorf("unexpected run id %q", runID)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Mass != 1e9 {
		t.Errorf("expected mass 1e9, got %e", loaded.Mass)
	}
	if loaded.NX != 5 || loaded.NY != 5 {
		t.Errorf("expected 5x5 grid, got %dx%d", loaded.NX, loaded.NY)
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples.Points) != len(res.Points) {
		t.Fatalf("expected %d samples, got %d", len(res.Points), len(samples.Points))
	}
	for i := range samples.Points {
		if math.Abs(samples.Potential[i]-res.Potential[i]) > math.Abs(res.Potential[i])*1e-8 {
			t.Errorf("potential mismatch at sample %d", i)
		}
		if !samples.Gradient[i].IsSymmetric(0) {
			t.Errorf("expected symmetric tensor after reload at sample %d", i)
		}
	}
}

func TestSaveUniqueRunIDs(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	res := makeResult(t)
	id1, err := st.Save(RunMetadata{Mass: 1e9, Quantity: "gz"}, res)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := st.Save(RunMetadata{Mass: 2e9, Quantity: "gz"}, res)
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Fatalf("expected distinct run ids, got %q twice", id1)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected both runs listed, got %d", len(runs))
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/nonexistent")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	res := makeResult(t)
	if _, err := st.Save(RunMetadata{Mass: 1e9, Quantity: "gz"}, res); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Quantity != "gz" {
		t.Errorf("expected quantity gz, got %s", runs[0].Quantity)
	}
}

func TestExportJSON(t *testing.T) {
	res := makeResult(t)
	meta := &RunMetadata{ID: "survey_test", Mass: 1e9, Location: []float64{0, 0, -50}, Quantity: "gz"}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, res); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatal(err)
	}
	if data.Samples != len(res.Points) {
		t.Errorf("expected %d samples, got %d", len(res.Points), data.Samples)
	}
	if len(data.Gradient) != len(res.Gradient) {
		t.Errorf("expected %d tensors, got %d", len(res.Gradient), len(data.Gradient))
	}
}

func TestExportCSV(t *testing.T) {
	res := makeResult(t)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, res); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(res.Points)+1 {
		t.Fatalf("expected %d lines, got %d", len(res.Points)+1, len(lines))
	}
	if !strings.HasPrefix(lines[0], "x,y,z,u,gx") {
		t.Errorf("unexpected header %q", lines[0])
	}
}
