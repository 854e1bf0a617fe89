package sim

import "gonum.org/v1/gonum/floats"

const (
	// NumViewingAngles is the size of the viewing zenith sweep.
	NumViewingAngles = 90

	MinViewingZenith = -90.0
	MaxViewingZenith = 90.0
)

// RelativeAzimuth maps a signed viewing zenith angle to the relative azimuth
// between sun and sensor: 0° for forward views (zenith ≤ 0), 180° for
// backward views.
func RelativeAzimuth(zenith float64) float64 {
	if zenith <= 0 {
		return 0
	}
	return 180
}

// ViewingAngles returns the sweep: NumViewingAngles zenith angles evenly
// spaced over [MinViewingZenith, MaxViewingZenith], both ends included.
func ViewingAngles() []ViewingAngleSample {
	zeniths := floats.Span(make([]float64, NumViewingAngles), MinViewingZenith, MaxViewingZenith)
	// Pin the end point; l + (n-1)*step can round past it.
	zeniths[len(zeniths)-1] = MaxViewingZenith

	samples := make([]ViewingAngleSample, len(zeniths))
	for i, z := range zeniths {
		samples[i] = ViewingAngleSample{Zenith: z, RelativeAzimuth: RelativeAzimuth(z)}
	}
	return samples
}
