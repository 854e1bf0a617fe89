package reference

import "math"

const (
	// planckC1 is 2hc² in W µm⁴ m⁻² sr⁻¹.
	planckC1 = 1.191042972e8
	// planckC2 is hc/k in µm K.
	planckC2 = 1.4387769e4
)

// planck returns spectral radiance in W m⁻² sr⁻¹ µm⁻¹ at wavelength
// lambda (µm) for temperature t (K).
func planck(lambda, t float64) float64 {
	return planckC1 / (math.Pow(lambda, 5) * math.Expm1(planckC2/(lambda*t)))
}

// inversePlanck returns the brightness temperature in Kelvin of spectral
// radiance l at wavelength lambda (µm).
func inversePlanck(lambda, l float64) float64 {
	return planckC2 / (lambda * math.Log1p(planckC1/(math.Pow(lambda, 5)*l)))
}
