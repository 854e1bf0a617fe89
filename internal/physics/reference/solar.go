package reference

import (
	"fmt"
	"math"
	"time"

	"github.com/nceo-airborne/tbsim/internal/physics"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// SolarPosition returns the solar zenith angle and the solar azimuth angle
// (clockwise from north) in degrees. ΔT is neglected; at the accuracy of the
// low-precision solar theory this shifts the result by well under 0.01°.
func (p *Provider) SolarPosition(lon, lat float64, t time.Time) (float64, float64, error) {
	jd := julian.TimeToJD(t.UTC())

	ra, dec := solar.ApparentEquatorial(jd)
	st := sidereal.Apparent(jd)

	// Local hour angle, longitudes positive east.
	h := unit.Angle(st.Rad() + lon*degToRad - ra.Rad()).Mod1()
	phi := unit.AngleFromDeg(lat)

	sinH, cosH := h.Sincos()
	sinPhi, cosPhi := phi.Sincos()
	sinDec, cosDec := dec.Sincos()

	sinAlt := sinPhi*sinDec + cosPhi*cosDec*cosH
	alt := math.Asin(math.Max(-1, math.Min(1, sinAlt)))

	// Meeus (13.5) measures azimuth westward from south.
	azSouth := math.Atan2(sinH, cosH*sinPhi-math.Tan(dec.Rad())*cosPhi)
	saa := unit.PMod(azSouth*radToDeg+180, 360)
	sza := 90 - alt*radToDeg

	if 90-sza <= p.MinElevation {
		return sza, saa, fmt.Errorf("%w: elevation %.2f° at %s", physics.ErrSunBelowHorizon, 90-sza, t.UTC().Format(time.RFC3339))
	}
	return sza, saa, nil
}
