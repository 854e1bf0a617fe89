package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nceo-airborne/tbsim/internal/config"
	"github.com/nceo-airborne/tbsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
)

var seriesHeader = []string{"vza_deg", "raa_deg", "omega", "continuous_degC", "row_degC"}

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
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Scenario  *config.Config     `json:"scenario"`
	Sun       sim.SunPosition    `json:"sun"`
	Angles    int                `json:"angles"`
	Metrics   map[string]float64 `json:"metrics"`
}

func newRunID(now time.Time) string {
	return fmt.Sprintf("%s_%s", now.UTC().Format("20060102T150405"), uuid.NewString()[:8])
}

// Save writes the scenario, sun position and metrics as metadata.json and
// both series as series.csv under a new run directory.
func (s *Store) Save(cfg *config.Config, result *sim.Result, metrics map[string]float64) (string, error) {
	now := time.Now()
	runID := newRunID(now)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    cfg.Name,
		Timestamp: now.UTC(),
		Scenario:  cfg,
		Sun:       result.Sun,
		Angles:    len(result.Angles),
		Metrics:   metrics,
	}

	// metadata.json marks a complete run, so it is written last.
	if err := writeSeries(filepath.Join(runDir, seriesFile), result); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSeries(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(seriesHeader); err != nil {
		return err
	}

	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for i, a := range result.Angles {
		row := []string{
			format(a.Zenith),
			format(a.RelativeAzimuth),
			format(result.Clumping[i]),
			format(result.Continuous.Points[i].Celsius),
			format(result.Row.Points[i].Celsius),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the metadata of every readable run, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResult rebuilds the series of a saved run.
func (s *Store) LoadResult(runID string) (*sim.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(seriesHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("run %s: empty series file", runID)
	}

	n := len(records) - 1
	res := &sim.Result{
		Sun:        meta.Sun,
		Angles:     make([]sim.ViewingAngleSample, n),
		Clumping:   make([]float64, n),
		Continuous: sim.TemperatureSeries{Scenario: sim.Continuous, Points: make([]sim.Point, n)},
		Row:        sim.TemperatureSeries{Scenario: sim.Row, Points: make([]sim.Point, n)},
	}

	for i, record := range records[1:] {
		var v [5]float64
		for j := range v {
			v[j], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: line %d: %w", runID, i+2, err)
			}
		}
		res.Angles[i] = sim.ViewingAngleSample{Zenith: v[0], RelativeAzimuth: v[1]}
		res.Clumping[i] = v[2]
		res.Continuous.Points[i] = sim.Point{Zenith: v[0], Celsius: v[3]}
		res.Row.Points[i] = sim.Point{Zenith: v[0], Celsius: v[4]}
	}
	return res, nil
}
