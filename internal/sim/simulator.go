package sim

import (
	"context"
	"math"

	"github.com/nceo-airborne/tbsim/internal/physics"
	"go.uber.org/zap"
)

type Simulator struct {
	provider  physics.Provider
	workers   int
	log       *zap.SugaredLogger
	observers []Observer
}

func New(provider physics.Provider) *Simulator {
	return &Simulator{
		provider:  provider,
		workers:   1,
		log:       zap.NewNop().Sugar(),
		observers: make([]Observer, 0),
	}
}

// SetWorkers sets how many viewing angles are evaluated concurrently.
// Values below 1 mean sequential evaluation.
func (s *Simulator) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

func (s *Simulator) SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		s.log = l
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Simulate runs the continuous-canopy and row-canopy sweeps. Either both
// series are returned complete or an error is returned; partial results are
// never exposed. The caller's parameters are not modified.
func (s *Simulator) Simulate(ctx context.Context, geometry AcquisitionGeometry, canopy CanopyThermalParameters, rows RowGeometry) (*Result, error) {
	if err := validate(geometry, canopy, rows); err != nil {
		return nil, err
	}

	sza, saa, err := s.provider.SolarPosition(geometry.Longitude, geometry.Latitude, geometry.Time)
	if err != nil {
		return nil, &SolarGeometryError{
			Longitude: geometry.Longitude,
			Latitude:  geometry.Latitude,
			Time:      geometry.Time,
			Err:       err,
		}
	}
	s.log.Debugw("resolved sun position", "sza", sza, "saa", saa)

	model := canopy.Model()
	angles := ViewingAngles()

	continuous, err := s.continuousPass(ctx, sza, angles, model)
	if err != nil {
		return nil, err
	}

	row, omega, err := s.rowPass(ctx, sza, angles, model, canopy, rows)
	if err != nil {
		return nil, err
	}

	s.notify(continuous, angles)
	s.notify(row, angles)

	s.log.Infow("simulation complete",
		"angles", len(angles),
		"sza", sza,
		"lai", canopy.LAI,
		"workers", s.workers,
	)

	return &Result{
		Sun:        SunPosition{Zenith: sza, Azimuth: saa},
		Angles:     angles,
		Clumping:   omega,
		Continuous: continuous,
		Row:        row,
	}, nil
}

func (s *Simulator) continuousPass(ctx context.Context, sza float64, angles []ViewingAngleSample, model physics.Model) (TemperatureSeries, error) {
	points := make([]Point, len(angles))

	err := forEach(ctx, len(angles), s.workers, func(i int) error {
		a := angles[i]
		res, err := s.provider.Solve(sza, math.Abs(a.Zenith), a.RelativeAzimuth, model)
		if err != nil {
			return &PhysicsEvaluationError{Scenario: Continuous, AngleIndex: i, Zenith: a.Zenith, Op: "solve", Err: err}
		}
		points[i] = Point{Zenith: a.Zenith, Celsius: res.Celsius()}
		return nil
	})
	if err != nil {
		return TemperatureSeries{}, err
	}

	s.log.Debugw("continuous pass complete", "angles", len(points))
	return TemperatureSeries{Scenario: Continuous, Points: points}, nil
}

// rowPass scales the leaf area index by |Ω| per angle. Each evaluation gets
// its own model value, so nothing carries over between angles.
func (s *Simulator) rowPass(ctx context.Context, sza float64, angles []ViewingAngleSample, model physics.Model, canopy CanopyThermalParameters, rows RowGeometry) (TemperatureSeries, []float64, error) {
	points := make([]Point, len(angles))
	omega := make([]float64, len(angles))

	err := forEach(ctx, len(angles), s.workers, func(i int) error {
		a := angles[i]
		o, err := s.provider.Clumping(rows.Height, rows.Width, rows.Separation,
			canopy.LAI, canopy.AverageLeafAngle, a.Zenith, rows.Angle)
		if err != nil {
			return &PhysicsEvaluationError{Scenario: Row, AngleIndex: i, Zenith: a.Zenith, Op: "clumping", Err: err}
		}

		res, err := s.provider.Solve(sza, math.Abs(a.Zenith), a.RelativeAzimuth, model.WithLAI(canopy.LAI*math.Abs(o)))
		if err != nil {
			return &PhysicsEvaluationError{Scenario: Row, AngleIndex: i, Zenith: a.Zenith, Op: "solve", Err: err}
		}

		omega[i] = o
		points[i] = Point{Zenith: a.Zenith, Celsius: res.Celsius()}
		return nil
	})
	if err != nil {
		return TemperatureSeries{}, nil, err
	}

	s.log.Debugw("row pass complete", "angles", len(points))
	return TemperatureSeries{Scenario: Row, Points: points}, omega, nil
}

func (s *Simulator) notify(ts TemperatureSeries, angles []ViewingAngleSample) {
	for _, o := range s.observers {
		for i, p := range ts.Points {
			o.OnSample(ts.Scenario, i, angles[i], p.Celsius)
		}
	}
}
