package sim

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors for simulation runs.
var (
	// ErrInvalidParameter indicates malformed or non-finite input.
	ErrInvalidParameter = errors.New("sim: invalid parameter")

	// ErrSolarGeometry indicates the provider could not resolve the sun position.
	ErrSolarGeometry = errors.New("sim: solar geometry unresolved")

	// ErrPhysicsEvaluation indicates a provider failure during a per-angle solve.
	ErrPhysicsEvaluation = errors.New("sim: physics evaluation failed")
)

// InvalidParameterError carries every field violation found in one call.
type InvalidParameterError struct {
	Err error
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidParameter, e.Err)
}

func (e *InvalidParameterError) Unwrap() error        { return e.Err }
func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }

// SolarGeometryError wraps a solar position failure.
type SolarGeometryError struct {
	Longitude float64
	Latitude  float64
	Time      time.Time
	Err       error
}

func (e *SolarGeometryError) Error() string {
	return fmt.Sprintf("%v at lon=%.5f lat=%.5f %s: %v",
		ErrSolarGeometry, e.Longitude, e.Latitude, e.Time.UTC().Format(time.RFC3339), e.Err)
}

func (e *SolarGeometryError) Unwrap() error        { return e.Err }
func (e *SolarGeometryError) Is(target error) bool { return target == ErrSolarGeometry }

// PhysicsEvaluationError identifies the scenario and viewing angle at which
// the provider failed. AngleIndex is zero-based.
type PhysicsEvaluationError struct {
	Scenario   Scenario
	AngleIndex int
	Zenith     float64
	Op         string
	Err        error
}

func (e *PhysicsEvaluationError) Error() string {
	return fmt.Sprintf("%v: %s scenario, angle %d (vza=%.3f): %s: %v",
		ErrPhysicsEvaluation, e.Scenario, e.AngleIndex, e.Zenith, e.Op, e.Err)
}

func (e *PhysicsEvaluationError) Unwrap() error        { return e.Err }
func (e *PhysicsEvaluationError) Is(target error) bool { return target == ErrPhysicsEvaluation }
