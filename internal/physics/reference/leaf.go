package reference

import "math"

// ellipsoidalX converts an average leaf inclination angle (deg) to the
// Campbell (1990) ellipsoidal distribution parameter x.
func ellipsoidalX(lidfa float64) float64 {
	a := math.Max(0.5, math.Min(89.5, lidfa)) * degToRad
	x := math.Pow(a/9.65, -1/1.65) - 3
	if x < 0 {
		return 0
	}
	return x
}

// extinction returns the ellipsoidal extinction coefficient for a beam at
// zenith theta (deg).
func extinction(theta, lidfa float64) float64 {
	x := ellipsoidalX(lidfa)
	t := math.Tan(math.Min(math.Abs(theta), maxZenith) * degToRad)
	return math.Sqrt(x*x+t*t) / (x + 1.774*math.Pow(x+1.182, -0.733))
}
