package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/nceo-airborne/tbsim/internal/sim"
)

// ExportData is the JSON export layout of a run.
type ExportData struct {
	RunID   string             `json:"run_id,omitempty"`
	Sun     sim.SunPosition    `json:"sun"`
	XLabel  string             `json:"x_label"`
	YLabel  string             `json:"y_label"`
	VZA     []float64          `json:"vza"`
	RAA     []float64          `json:"raa"`
	Omega   []float64          `json:"omega"`
	Series  []ExportSeries     `json:"series"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

type ExportSeries struct {
	Scenario sim.Scenario `json:"scenario"`
	Label    string       `json:"label"`
	Celsius  []float64    `json:"temperature_degC"`
}

const (
	XLabel = "VZA [deg]"
	YLabel = "Brightness temperature [degC]"
)

func NewExportData(runID string, result *sim.Result, metrics map[string]float64) ExportData {
	raa := make([]float64, len(result.Angles))
	for i, a := range result.Angles {
		raa[i] = a.RelativeAzimuth
	}
	return ExportData{
		RunID:  runID,
		Sun:    result.Sun,
		XLabel: XLabel,
		YLabel: YLabel,
		VZA:    result.Continuous.Zeniths(),
		RAA:    raa,
		Omega:  result.Clumping,
		Series: []ExportSeries{
			{Scenario: sim.Continuous, Label: sim.Continuous.Label(), Celsius: result.Continuous.Temperatures()},
			{Scenario: sim.Row, Label: sim.Row.Label(), Celsius: result.Row.Temperatures()},
		},
		Metrics: metrics,
	}
}

func ExportJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes one row per viewing angle with both temperatures.
func ExportCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{XLabel, sim.Continuous.Label(), sim.Row.Label()}); err != nil {
		return err
	}
	for i := range result.Angles {
		row := []string{
			strconv.FormatFloat(result.Angles[i].Zenith, 'f', 4, 64),
			strconv.FormatFloat(result.Continuous.Points[i].Celsius, 'f', 4, 64),
			strconv.FormatFloat(result.Row.Points[i].Celsius, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
