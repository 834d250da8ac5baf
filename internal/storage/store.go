package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/arunsk/gravlab/internal/geo"
	"github.com/arunsk/gravlab/internal/survey"
)

// Store persists survey runs under a base directory, one subdirectory per
// run holding metadata.json and samples.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Mass      float64            `json:"mass"`
	Location  []float64          `json:"location"`
	GridZ     float64            `json:"grid_z"`
	NX        int                `json:"nx"`
	NY        int                `json:"ny"`
	Quantity  string             `json:"quantity"`
	Stats     map[string]float64 `json:"stats"`
}

var sampleHeader = []string{
	"x", "y", "z",
	"u",
	"gx", "gy", "gz",
	"txx", "txy", "txz", "tyy", "tyz", "tzz",
}

// Save writes a run directory and returns the run id. IDs carry a
// uniqueness suffix so saves within the same second do not overwrite each
// other.
func (s *Store) Save(meta RunMetadata, result *survey.Result) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	runID := fmt.Sprintf("survey_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	for n := 1; ; n++ {
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", err
		}
		runID = fmt.Sprintf("survey_%d_%d", time.Now().Unix(), n)
		runDir = filepath.Join(s.baseDir, runID)
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(sampleHeader); err != nil {
		return "", err
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
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSamples reads samples.csv back into a survey result. The gradient's
// symmetric off-diagonal entries are mirrored on load.
func (s *Store) LoadSamples(runID string) (*survey.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	res := &survey.Result{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != len(sampleHeader) {
			continue
		}

		vals := make([]float64, len(record))
		ok := true
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		res.Points = append(res.Points, geo.Vec3{X: vals[0], Y: vals[1], Z: vals[2]})
		res.Potential = append(res.Potential, vals[3])
		res.Field = append(res.Field, geo.Vec3{X: vals[4], Y: vals[5], Z: vals[6]})
		res.Gradient = append(res.Gradient, geo.Tensor{
			{vals[7], vals[8], vals[9]},
			{vals[8], vals[10], vals[11]},
			{vals[9], vals[11], vals[12]},
		})
	}

	return res, nil
}
