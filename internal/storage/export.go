package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/arunsk/gravlab/internal/survey"
)

type ExportData struct {
	ID        string             `json:"id"`
	Mass      float64            `json:"mass"`
	Location  []float64          `json:"location"`
	Quantity  string             `json:"quantity"`
	Samples   int                `json:"samples"`
	Points    [][]float64        `json:"points"`
	Potential []float64          `json:"potential"`
	Field     [][]float64        `json:"field"`
	Gradient  [][3][3]float64    `json:"gradient"`
	Stats     map[string]float64 `json:"stats"`
}

// ExportJSON writes a full run (metadata plus every sample) as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, result *survey.Result) error {
	data := ExportData{
		ID:        meta.ID,
		Mass:      meta.Mass,
		Location:  meta.Location,
		Quantity:  meta.Quantity,
		Samples:   len(result.Points),
		Points:    make([][]float64, len(result.Points)),
		Potential: result.Potential,
		Field:     make([][]float64, len(result.Field)),
		Gradient:  make([][3][3]float64, len(result.Gradient)),
		Stats:     meta.Stats,
	}

	for i, p := range result.Points {
		data.Points[i] = p.Slice()
	}
	for i, g := range result.Field {
		data.Field[i] = g.Slice()
	}
	for i, t := range result.Gradient {
		data.Gradient[i] = t
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes the samples of a run in the same column layout as
// samples.csv.
func ExportCSV(w io.Writer, result *survey.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(sampleHeader); err != nil {
		return err
	}

	for i, pt := range result.Points {
		g := result.Field[i]
		t := result.Gradient[i]
		row := make([]string, 0, len(sampleHeader))
		for _, v := range []float64{
			pt.X, pt.Y, pt.Z,
			result.Potential[i],
			g.X, g.Y, g.Z,
			t[0][0], t[0][1], t[0][2], t[1][1], t[1][2], t[2][2],
		} {
			row = append(row, strconv.FormatFloat(v, 'e', 9, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
