package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/nceo-airborne/tbsim/internal/sim"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrMisaligned = errors.New("analysis: series are not angle-aligned")

// Peak is the warmest sample of a series.
type Peak struct {
	Zenith  float64
	Celsius float64
}

// SeriesStats summarises one series.
type SeriesStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Peak   Peak
	// Nadir is the temperature at the sample closest to nadir.
	Nadir float64
}

// Comparison holds row minus continuous differences.
type Comparison struct {
	Continuous SeriesStats
	Row        SeriesStats

	MeanDifference   float64
	MaxAbsDifference float64
	// MaxAbsZenith is where the largest absolute difference occurs.
	MaxAbsZenith float64
	RMSD         float64
}

// Compare checks that both series share their viewing angles and computes
// summary statistics of the row minus continuous difference.
func Compare(continuous, row sim.TemperatureSeries) (*Comparison, error) {
	if continuous.Len() == 0 || continuous.Len() != row.Len() {
		return nil, fmt.Errorf("%w: lengths %d and %d", ErrMisaligned, continuous.Len(), row.Len())
	}

	zc, zr := continuous.Zeniths(), row.Zeniths()
	if !floats.Equal(zc, zr) {
		return nil, ErrMisaligned
	}

	tc, tr := continuous.Temperatures(), row.Temperatures()
	diff := make([]float64, len(tr))
	floats.SubTo(diff, tr, tc)

	i := argMaxAbs(diff)
	return &Comparison{
		Continuous:       summarise(zc, tc),
		Row:              summarise(zr, tr),
		MeanDifference:   stat.Mean(diff, nil),
		MaxAbsDifference: math.Abs(diff[i]),
		MaxAbsZenith:     zc[i],
		RMSD:             floats.Norm(diff, 2) / math.Sqrt(float64(len(diff))),
	}, nil
}

// Metrics flattens the comparison for run metadata.
func (c *Comparison) Metrics() map[string]float64 {
	return map[string]float64{
		"mean_difference":     c.MeanDifference,
		"max_abs_difference":  c.MaxAbsDifference,
		"max_abs_zenith":      c.MaxAbsZenith,
		"rmsd":                c.RMSD,
		"continuous_mean":     c.Continuous.Mean,
		"continuous_nadir":    c.Continuous.Nadir,
		"continuous_peak":     c.Continuous.Peak.Celsius,
		"continuous_peak_vza": c.Continuous.Peak.Zenith,
		"row_mean":            c.Row.Mean,
		"row_nadir":           c.Row.Nadir,
		"row_peak":            c.Row.Peak.Celsius,
		"row_peak_vza":        c.Row.Peak.Zenith,
	}
}

func summarise(zeniths, temps []float64) SeriesStats {
	mean, std := stat.MeanStdDev(temps, nil)
	hi := floats.MaxIdx(temps)
	return SeriesStats{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(temps),
		Max:    temps[hi],
		Peak:   Peak{Zenith: zeniths[hi], Celsius: temps[hi]},
		Nadir:  temps[nearestNadir(zeniths)],
	}
}

func nearestNadir(zeniths []float64) int {
	best := 0
	for i, z := range zeniths {
		if math.Abs(z) < math.Abs(zeniths[best]) {
			best = i
		}
	}
	return best
}

func argMaxAbs(v []float64) int {
	best := 0
	for i, x := range v {
		if math.Abs(x) > math.Abs(v[best]) {
			best = i
		}
	}
	return best
}
