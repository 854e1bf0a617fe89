package sim

import (
	"time"

	"github.com/nceo-airborne/tbsim/internal/physics"
)

// Scenario names one of the two canopy configurations in a run.
type Scenario string

const (
	Continuous Scenario = "continuous"
	Row        Scenario = "row"
)

// Label is the human readable series name.
func (s Scenario) Label() string {
	switch s {
	case Continuous:
		return "Continuous canopy"
	case Row:
		return "Row-oriented canopy"
	default:
		return string(s)
	}
}

// AcquisitionGeometry locates the overpass in space and time.
type AcquisitionGeometry struct {
	Longitude float64
	Latitude  float64
	Time      time.Time
}

// CanopyThermalParameters describes the continuous canopy. Temperatures are
// in degrees Celsius, the wavelength in micrometres, angles in degrees.
type CanopyThermalParameters struct {
	Wavelength       float64
	LAI              float64
	SoilTemp         float64
	LeafTemp         float64
	SoilTempSunlit   float64
	LeafTempSunlit   float64
	VegEmissivity    float64
	SoilEmissivity   float64
	Hotspot          float64
	AverageLeafAngle float64
}

// Model builds the continuous-canopy model instance. The secondary leaf
// angle distribution parameter is left to the provider default.
func (c CanopyThermalParameters) Model() physics.Model {
	return physics.Model{
		Wavelength:     c.Wavelength,
		LAI:            c.LAI,
		SoilTemp:       c.SoilTemp,
		LeafTemp:       c.LeafTemp,
		SoilTempSunlit: c.SoilTempSunlit,
		LeafTempSunlit: c.LeafTempSunlit,
		VegEmissivity:  c.VegEmissivity,
		SoilEmissivity: c.SoilEmissivity,
		Hotspot:        c.Hotspot,
		LIDFa:          c.AverageLeafAngle,
	}
}

// RowGeometry describes the row structure in metres; Angle is the angle in
// degrees between the rows and the view azimuth.
type RowGeometry struct {
	Height     float64
	Width      float64
	Separation float64
	Angle      float64
}

// ViewingAngleSample is one sensor view of the sweep.
type ViewingAngleSample struct {
	Zenith          float64
	RelativeAzimuth float64
}

type Point struct {
	Zenith  float64
	Celsius float64
}

// TemperatureSeries is brightness temperature against viewing zenith angle.
type TemperatureSeries struct {
	Scenario Scenario
	Points   []Point
}

func (ts TemperatureSeries) Len() int { return len(ts.Points) }

func (ts TemperatureSeries) Zeniths() []float64 {
	out := make([]float64, len(ts.Points))
	for i, p := range ts.Points {
		out[i] = p.Zenith
	}
	return out
}

func (ts TemperatureSeries) Temperatures() []float64 {
	out := make([]float64, len(ts.Points))
	for i, p := range ts.Points {
		out[i] = p.Celsius
	}
	return out
}

// SunPosition holds solar zenith and azimuth angles in degrees.
type SunPosition struct {
	Zenith  float64
	Azimuth float64
}

type Result struct {
	Sun        SunPosition
	Angles     []ViewingAngleSample
	Clumping   []float64
	Continuous TemperatureSeries
	Row        TemperatureSeries
}

// Observer receives every evaluated sample once a pass has completed, in
// angle order.
type Observer interface {
	OnSample(scenario Scenario, index int, sample ViewingAngleSample, celsius float64)
}
