package sim_test

import (
	"sync"
	"time"

	"github.com/nceo-airborne/tbsim/internal/physics"
)

type solveCall struct {
	sza, vza, raa float64
	model         physics.Model
}

// fakeProvider records every call and answers from configurable functions.
type fakeProvider struct {
	mu sync.Mutex

	sza, saa float64
	solarErr error

	omega  func(vza float64) float64
	kelvin func(vza, raa float64, m physics.Model) float64

	failSolve    func(vza, raa float64, m physics.Model) error
	failClumping func(vza float64) error

	solarCalls    int
	solveCalls    []solveCall
	clumpingCalls []float64
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		sza: 42,
		saa: 250,
		omega: func(vza float64) float64 {
			return 0.5 + vza/360
		},
		kelvin: func(vza, raa float64, m physics.Model) float64 {
			return 300 + vza/10 - m.LAI + raa/1000
		},
	}
}

func (f *fakeProvider) SolarPosition(lon, lat float64, t time.Time) (float64, float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.solarCalls++
	if f.solarErr != nil {
		return 0, 0, f.solarErr
	}
	return f.sza, f.saa, nil
}

func (f *fakeProvider) Solve(sza, vza, raa float64, m physics.Model) (physics.Result, error) {
	f.mu.Lock()
	f.solveCalls = append(f.solveCalls, solveCall{sza: sza, vza: vza, raa: raa, model: m})
	f.mu.Unlock()

	if f.failSolve != nil {
		if err := f.failSolve(vza, raa, m); err != nil {
			return physics.Result{}, err
		}
	}
	return physics.Result{BrightnessTemperature: f.kelvin(vza, raa, m)}, nil
}

func (f *fakeProvider) Clumping(height, width, separation, lai, lidfa, vza, rowAngle float64) (float64, error) {
	f.mu.Lock()
	f.clumpingCalls = append(f.clumpingCalls, vza)
	f.mu.Unlock()

	if f.failClumping != nil {
		if err := f.failClumping(vza); err != nil {
			return 0, err
		}
	}
	return f.omega(vza), nil
}

func (f *fakeProvider) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.solarCalls + len(f.solveCalls) + len(f.clumpingCalls)
}
