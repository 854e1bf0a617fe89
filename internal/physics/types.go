package physics

import (
	"errors"
	"time"
)

// AbsoluteZero is the offset between Kelvin and degrees Celsius.
const AbsoluteZero = 273.15

var (
	// ErrSunBelowHorizon is returned when the sun does not illuminate the scene.
	ErrSunBelowHorizon = errors.New("physics: sun below horizon")

	// ErrDegenerateGeometry indicates a viewing or illumination geometry the
	// model cannot evaluate.
	ErrDegenerateGeometry = errors.New("physics: degenerate geometry")
)

// Model is a thermal canopy radiative-transfer model instance. Temperatures
// are in degrees Celsius, the wavelength in micrometres and LIDFa in degrees.
type Model struct {
	Wavelength     float64
	LAI            float64
	SoilTemp       float64
	LeafTemp       float64
	SoilTempSunlit float64
	LeafTempSunlit float64
	VegEmissivity  float64
	SoilEmissivity float64
	Hotspot        float64
	LIDFa          float64
	// LIDFb is the secondary leaf angle distribution parameter. Nil means
	// the provider default.
	LIDFb *float64
}

// WithLAI returns a copy of m with its leaf area index replaced.
func (m Model) WithLAI(lai float64) Model {
	m.LAI = lai
	return m
}

// Result is the outcome of a single-angle solve.
type Result struct {
	// Radiance at the sensor, W m-2 sr-1 µm-1.
	Radiance float64
	// BrightnessTemperature in Kelvin.
	BrightnessTemperature float64
	// Emissivity is the directional effective emissivity of the scene.
	Emissivity float64
}

// Celsius returns the brightness temperature in degrees Celsius.
func (r Result) Celsius() float64 {
	return r.BrightnessTemperature - AbsoluteZero
}

type Provider interface {
	// SolarPosition returns the solar zenith and azimuth angles in degrees.
	SolarPosition(lon, lat float64, t time.Time) (sza, saa float64, err error)

	// Solve evaluates the model for one sun/view geometry. vza is the
	// absolute viewing zenith angle, raa the relative azimuth.
	Solve(sza, vza, raa float64, m Model) (Result, error)

	// Clumping returns the row clumping factor. The sign is not guaranteed.
	Clumping(height, width, separation, lai, lidfa, vza, rowAngle float64) (float64, error)
}
