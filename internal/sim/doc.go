// Package sim orchestrates directional brightness-temperature simulations.
//
// A [Simulator] sweeps the sensor viewing zenith angle across the closed
// interval [-90°, 90°] and asks a [physics.Provider] for the brightness
// temperature of two canopies at every angle:
//
//   - a continuous canopy with the nominal leaf area index
//   - a row-oriented canopy whose leaf area index is scaled by the
//     magnitude of the row clumping factor Ω at that angle
//
// Both series come back index-aligned in a [Result].
//
// # Example
//
//	s := sim.New(reference.New())
//	res, err := s.Simulate(ctx, geometry, canopy, rows)
//
// # Viewing geometry
//
// The sweep uses a signed zenith convention instead of an azimuth sweep.
// Angles at or below zero are forward views with relative azimuth 0°,
// positive angles are backward views with relative azimuth 180°. See
// [RelativeAzimuth].
//
// # Thread Safety
//
// A Simulator holds no per-run state and may be shared. With more than one
// worker the provider must be safe for concurrent use.
package sim
