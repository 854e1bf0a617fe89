// Package physics defines the contract between the simulation orchestrator
// and a radiative-transfer physics provider.
//
// A [Provider] resolves the sun position for an acquisition, solves the
// directional brightness temperature of a canopy [Model] for one viewing
// geometry, and evaluates the row clumping factor. The orchestrator in
// package sim only ever talks to this interface; the built-in
// implementation lives in package reference.
//
// # Angles
//
// All angles crossing this boundary are in degrees. Viewing zenith angles
// handed to [Provider.Solve] are non-negative; the clumping factor receives
// the signed viewing zenith angle.
//
// # Thread Safety
//
// Implementations used with a parallel simulator must be safe for
// concurrent use. [Model] is a plain value and is copied, never shared.
package physics
