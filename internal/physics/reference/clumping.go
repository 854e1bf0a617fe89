package reference

import (
	"fmt"
	"math"

	"github.com/nceo-airborne/tbsim/internal/physics"
)

// Clumping returns the row clumping factor Ω for viewing zenith vza (deg).
//
// Rows of the given height and width repeat every separation metres; rowAngle
// is the angle between the row direction and the view azimuth. The cover
// fraction seen from the view direction grows with the row side walls exposed
// across the line of sight. Ω is the ratio of the row-canopy extinction to
// that of a continuous canopy with the same LAI, so it is in (0, 1].
func (p *Provider) Clumping(height, width, separation, lai, lidfa, vza, rowAngle float64) (float64, error) {
	for _, v := range []float64{height, width, separation, lai, lidfa, vza, rowAngle} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: non-finite clumping input", physics.ErrDegenerateGeometry)
		}
	}
	if separation <= 0 || lai <= 0 || width >= separation {
		return 1, nil
	}

	theta := math.Min(math.Abs(vza), maxZenith) * degToRad
	fc := (width + height*math.Tan(theta)*math.Abs(math.Sin(rowAngle*degToRad))) / separation
	if fc >= 1 {
		return 1, nil
	}
	if fc <= 0 {
		// Zero-width rows never intercept the nadir beam.
		return 1, nil
	}

	k := extinction(vza, lidfa)
	if k == 0 {
		return 1, nil
	}

	gap := (1 - fc) + fc*math.Exp(-k*lai/fc)
	return -math.Log(gap) / (k * lai), nil
}
