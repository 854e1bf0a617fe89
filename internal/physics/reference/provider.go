// Package reference is the built-in physics provider.
//
// It resolves sun position from the Meeus ephemeris and evaluates a compact
// four-component gap-fraction model of thermal emission: sunlit and shaded
// soil, sunlit and shaded leaves, each weighted by its directional fraction
// in the sensor field of view. Row clumping uses the projected row cover
// fraction seen from the viewing direction.
//
// The emission model is an approximation. It is not the thermal SAIL
// radiative transfer model and its brightness temperatures should not be
// read as SAIL output. Supply a Provider backed by a full model for that.
package reference

import (
	"math"

	"github.com/nceo-airborne/tbsim/internal/physics"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// maxZenith caps zenith angles inside the extinction term so tan stays finite.
	maxZenith = 89.9
)

type Provider struct {
	// MinElevation is the lowest solar elevation in degrees that still
	// counts as illuminated.
	MinElevation float64
}

var _ physics.Provider = (*Provider)(nil)

func New() *Provider {
	return &Provider{MinElevation: 0}
}
