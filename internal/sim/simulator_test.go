package sim_test

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/nceo-airborne/tbsim/internal/physics"
	"github.com/nceo-airborne/tbsim/internal/physics/reference"
	"github.com/nceo-airborne/tbsim/internal/sim"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var errBoom = errors.New("boom")

func grosseto() (sim.AcquisitionGeometry, sim.CanopyThermalParameters, sim.RowGeometry) {
	return sim.AcquisitionGeometry{
			Longitude: 11.124,
			Latitude:  42.7635,
			Time:      time.Date(2023, 5, 18, 14, 0, 0, 0, time.UTC),
		}, sim.CanopyThermalParameters{
			Wavelength:       9.5,
			LAI:              2,
			SoilTemp:         35,
			LeafTemp:         25,
			SoilTempSunlit:   45,
			LeafTempSunlit:   33,
			VegEmissivity:    0.98,
			SoilEmissivity:   0.94,
			Hotspot:          0.05,
			AverageLeafAngle: 45,
		}, sim.RowGeometry{
			Height:     1.5,
			Width:      0.5,
			Separation: 1.2,
			Angle:      45,
		}
}

type recordingObserver struct {
	scenarios []sim.Scenario
	indexes   []int
}

func (r *recordingObserver) OnSample(s sim.Scenario, i int, _ sim.ViewingAngleSample, _ float64) {
	r.scenarios = append(r.scenarios, s)
	r.indexes = append(r.indexes, i)
}

var _ = Describe("Simulator", func() {
	var (
		ctx      context.Context
		provider *fakeProvider
		s        *sim.Simulator
		geometry sim.AcquisitionGeometry
		canopy   sim.CanopyThermalParameters
		rows     sim.RowGeometry
	)

	BeforeEach(func() {
		ctx = context.Background()
		provider = newFakeProvider()
		s = sim.New(provider)
		geometry, canopy, rows = grosseto()
	})

	Describe("series shape", func() {
		It("returns two aligned series of 90 samples", func() {
			res, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Continuous.Len()).To(Equal(sim.NumViewingAngles))
			Expect(res.Row.Len()).To(Equal(sim.NumViewingAngles))
			Expect(res.Clumping).To(HaveLen(sim.NumViewingAngles))
			Expect(res.Continuous.Zeniths()).To(Equal(res.Row.Zeniths()))
			Expect(res.Continuous.Scenario).To(Equal(sim.Continuous))
			Expect(res.Row.Scenario).To(Equal(sim.Row))
		})

		It("reports the resolved sun position", func() {
			res, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Sun).To(Equal(sim.SunPosition{Zenith: 42, Azimuth: 250}))
		})
	})

	Describe("continuous pass", func() {
		It("solves with the absolute zenith, derived azimuth and nominal LAI", func() {
			_, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())

			angles := sim.ViewingAngles()
			Expect(provider.solveCalls).To(HaveLen(2 * sim.NumViewingAngles))
			for i, a := range angles {
				call := provider.solveCalls[i]
				Expect(call.sza).To(Equal(42.0))
				Expect(call.vza).To(Equal(math.Abs(a.Zenith)))
				Expect(call.raa).To(Equal(a.RelativeAzimuth))
				Expect(call.model.LAI).To(Equal(canopy.LAI))
				Expect(call.model.LIDFa).To(Equal(canopy.AverageLeafAngle))
				Expect(call.model.LIDFb).To(BeNil())
			}
		})

		It("converts Kelvin to Celsius exactly", func() {
			res, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())

			for i, p := range res.Continuous.Points {
				a := res.Angles[i]
				kelvin := provider.kelvin(math.Abs(a.Zenith), a.RelativeAzimuth, canopy.Model())
				Expect(p.Celsius).To(Equal(kelvin - 273.15))
			}
		})
	})

	Describe("row pass", func() {
		It("scales LAI by |Ω| per angle without carrying values over", func() {
			provider.omega = func(vza float64) float64 { return -(0.25 + math.Abs(vza)/200) }

			res, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())

			rowCalls := provider.solveCalls[sim.NumViewingAngles:]
			for i, a := range res.Angles {
				want := canopy.LAI * math.Abs(provider.omega(a.Zenith))
				Expect(rowCalls[i].model.LAI).To(Equal(want), "angle %d", i)
				Expect(res.Clumping[i]).To(Equal(provider.omega(a.Zenith)))
			}
		})

		It("passes the signed zenith to the clumping formula", func() {
			_, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(provider.clumpingCalls).To(Equal(zeniths(sim.ViewingAngles())))
		})

		It("leaves the caller's parameters untouched", func() {
			before := canopy
			_, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(canopy).To(Equal(before))
		})
	})

	Describe("input validation", func() {
		It("rejects a negative LAI before any provider call", func() {
			canopy.LAI = -1
			res, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(res).To(BeNil())
			Expect(err).To(MatchError(sim.ErrInvalidParameter))

			var ipe *sim.InvalidParameterError
			Expect(errors.As(err, &ipe)).To(BeTrue())
			Expect(provider.totalCalls()).To(BeZero())
		})

		It("rejects non-finite values", func() {
			rows.Separation = math.Inf(1)
			geometry.Latitude = math.NaN()
			_, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).To(MatchError(sim.ErrInvalidParameter))
			Expect(err.Error()).To(ContainSubstring("latitude"))
			Expect(err.Error()).To(ContainSubstring("row_separation"))
			Expect(provider.totalCalls()).To(BeZero())
		})
	})

	Describe("failures", func() {
		It("wraps solar position failures", func() {
			provider.solarErr = physics.ErrSunBelowHorizon
			res, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(res).To(BeNil())
			Expect(err).To(MatchError(sim.ErrSolarGeometry))
			Expect(err).To(MatchError(physics.ErrSunBelowHorizon))
			Expect(provider.solveCalls).To(BeEmpty())
		})

		failAt45 := func(scenario sim.Scenario) {
			target := sim.ViewingAngles()[45]
			switch scenario {
			case sim.Continuous:
				provider.failSolve = func(vza, raa float64, m physics.Model) error {
					if vza == math.Abs(target.Zenith) && raa == target.RelativeAzimuth && m.LAI == canopy.LAI {
						return errBoom
					}
					return nil
				}
			case sim.Row:
				provider.failClumping = func(vza float64) error {
					if vza == target.Zenith {
						return errBoom
					}
					return nil
				}
			}
		}

		DescribeTable("identifies the failing scenario and angle",
			func(scenario sim.Scenario, workers int) {
				failAt45(scenario)
				s.SetWorkers(workers)

				res, err := s.Simulate(ctx, geometry, canopy, rows)
				Expect(res).To(BeNil())
				Expect(err).To(MatchError(sim.ErrPhysicsEvaluation))
				Expect(err).To(MatchError(errBoom))

				var pe *sim.PhysicsEvaluationError
				Expect(errors.As(err, &pe)).To(BeTrue())
				Expect(pe.Scenario).To(Equal(scenario))
				Expect(pe.AngleIndex).To(Equal(45))
			},
			Entry("continuous, sequential", sim.Continuous, 1),
			Entry("row, sequential", sim.Row, 1),
			Entry("continuous, parallel", sim.Continuous, 8),
			Entry("row, parallel", sim.Row, 8),
		)

		It("stops on context cancellation", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			res, err := s.Simulate(cctx, geometry, canopy, rows)
			Expect(res).To(BeNil())
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("parallel evaluation", func() {
		It("matches the sequential result", func() {
			seq, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())

			par := sim.New(newFakeProvider())
			par.SetWorkers(8)
			got, err := par.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(seq))
		})
	})

	Describe("observers", func() {
		It("sees every sample in angle order once both passes finish", func() {
			obs := &recordingObserver{}
			s.AddObserver(obs)

			_, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(obs.indexes).To(HaveLen(2 * sim.NumViewingAngles))
			Expect(obs.scenarios[0]).To(Equal(sim.Continuous))
			Expect(obs.scenarios[sim.NumViewingAngles]).To(Equal(sim.Row))
			for i := 0; i < sim.NumViewingAngles; i++ {
				Expect(obs.indexes[i]).To(Equal(i))
				Expect(obs.indexes[sim.NumViewingAngles+i]).To(Equal(i))
			}
		})

		It("is not called when the run fails", func() {
			obs := &recordingObserver{}
			s.AddObserver(obs)
			provider.failClumping = func(float64) error { return errBoom }

			_, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).To(HaveOccurred())
			Expect(obs.indexes).To(BeEmpty())
		})
	})

	Describe("Grosseto scenario with the reference provider", func() {
		It("separates the two canopies wherever rows clump", func() {
			s = sim.New(reference.New())
			res, err := s.Simulate(ctx, geometry, canopy, rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Continuous.Len()).To(Equal(90))
			Expect(res.Row.Len()).To(Equal(90))

			clumped := 0
			for i, omega := range res.Clumping {
				if omega == 1 {
					continue
				}
				clumped++
				Expect(res.Row.Points[i].Celsius).NotTo(Equal(res.Continuous.Points[i].Celsius), "angle %d", i)
			}
			Expect(clumped).To(BeNumerically(">", 0))
		})
	})
})

func zeniths(angles []sim.ViewingAngleSample) []float64 {
	out := make([]float64, len(angles))
	for i, a := range angles {
		out[i] = a.Zenith
	}
	return out
}
