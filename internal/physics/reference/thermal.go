package reference

import (
	"fmt"
	"math"

	"github.com/nceo-airborne/tbsim/internal/physics"
)

// components holds the fractions of the field of view occupied by each
// scene element.
type components struct {
	soilSunlit float64
	soilShaded float64
	leafSunlit float64
	leafShaded float64
}

// viewFractions splits the view into soil and leaf components, sunlit and
// shaded, for the given sun/view geometry in degrees.
func viewFractions(sza, vza, raa float64, m physics.Model) components {
	kv := extinction(vza, m.LIDFa)
	ks := extinction(sza, m.LIDFa)

	pv := math.Exp(-kv * m.LAI)
	ps := math.Exp(-ks * m.LAI)

	c := hotspotCorrelation(sza, vza, raa, m.Hotspot)
	keff := kv + ks - c*math.Sqrt(kv*ks)

	pvs := math.Min(math.Exp(-keff*m.LAI), math.Min(pv, ps))

	leafSunlit := 0.0
	if keff > 0 {
		leafSunlit = kv / keff * (1 - math.Exp(-keff*m.LAI))
	}
	leafSunlit = math.Max(0, math.Min(leafSunlit, 1-pv))

	return components{
		soilSunlit: pvs,
		soilShaded: pv - pvs,
		leafSunlit: leafSunlit,
		leafShaded: 1 - pv - leafSunlit,
	}
}

// hotspotCorrelation is 1 when sun and view directions coincide and decays
// with their separation, scaled by the hotspot parameter.
func hotspotCorrelation(sza, vza, raa, hotspot float64) float64 {
	ts := math.Tan(math.Min(sza, maxZenith) * degToRad)
	tv := math.Tan(math.Min(vza, maxZenith) * degToRad)
	d2 := ts*ts + tv*tv - 2*ts*tv*math.Cos(raa*degToRad)
	d := math.Sqrt(math.Max(0, d2))
	if d == 0 {
		return 1
	}
	if hotspot <= 0 {
		return 0
	}
	return math.Exp(-d / hotspot)
}

// Solve returns the directional brightness temperature of the canopy.
// Emission only: reflected sky radiance is not included.
func (p *Provider) Solve(sza, vza, raa float64, m physics.Model) (physics.Result, error) {
	if sza < 0 || sza >= 90 {
		return physics.Result{}, fmt.Errorf("%w: solar zenith %.3f", physics.ErrSunBelowHorizon, sza)
	}
	if vza < 0 || vza > 90 {
		return physics.Result{}, fmt.Errorf("%w: viewing zenith %.3f", physics.ErrDegenerateGeometry, vza)
	}
	if m.Wavelength <= 0 || m.LAI < 0 {
		return physics.Result{}, fmt.Errorf("%w: wavelength %.3f, lai %.3f", physics.ErrDegenerateGeometry, m.Wavelength, m.LAI)
	}

	f := viewFractions(sza, vza, raa, m)

	emit := func(fraction, emissivity, celsius float64) float64 {
		return fraction * emissivity * planck(m.Wavelength, celsius+physics.AbsoluteZero)
	}

	radiance := emit(f.soilSunlit, m.SoilEmissivity, m.SoilTempSunlit) +
		emit(f.soilShaded, m.SoilEmissivity, m.SoilTemp) +
		emit(f.leafSunlit, m.VegEmissivity, m.LeafTempSunlit) +
		emit(f.leafShaded, m.VegEmissivity, m.LeafTemp)

	emissivity := (f.soilSunlit+f.soilShaded)*m.SoilEmissivity +
		(f.leafSunlit+f.leafShaded)*m.VegEmissivity

	if radiance <= 0 {
		return physics.Result{}, fmt.Errorf("%w: non-positive radiance %g", physics.ErrDegenerateGeometry, radiance)
	}
	tb := inversePlanck(m.Wavelength, radiance)
	if math.IsNaN(tb) || math.IsInf(tb, 0) {
		return physics.Result{}, fmt.Errorf("%w: brightness temperature not finite", physics.ErrDegenerateGeometry)
	}

	return physics.Result{
		Radiance:              radiance,
		BrightnessTemperature: tb,
		Emissivity:            emissivity,
	}, nil
}
