package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/nceo-airborne/tbsim/internal/analysis"
	"github.com/nceo-airborne/tbsim/internal/log"
	"github.com/nceo-airborne/tbsim/internal/physics/reference"
	"github.com/nceo-airborne/tbsim/internal/sim"
	"github.com/nceo-airborne/tbsim/internal/storage"
	"github.com/nceo-airborne/tbsim/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sampleLogger struct {
	log *zap.SugaredLogger
}

func (s sampleLogger) OnSample(scenario sim.Scenario, i int, a sim.ViewingAngleSample, celsius float64) {
	s.log.Debugw("sample", "scenario", scenario, "index", i, "vza", a.Zenith, "raa", a.RelativeAzimuth, "tb_degC", celsius)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "text", "csv", "json":
	default:
		return fmt.Errorf("unknown format: %s (available: text, csv, json)", format)
	}

	cfg, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	logger := log.Logger()
	for _, w := range cfg.Warnings() {
		fmt.Fprintln(cmd.ErrOrStderr(), viz.Warning.Render("warning: "+w))
	}

	s := sim.New(reference.New())
	s.SetWorkers(cfg.Workers)
	s.SetLogger(logger)
	if debug {
		s.AddObserver(sampleLogger{log: logger})
	}

	start := time.Now()
	res, err := s.Simulate(cmd.Context(), cfg.Geometry(), cfg.CanopyParams(), cfg.RowGeometry())
	if err != nil {
		logger.Debugw("simulation failed", "error", err)
		return err
	}
	elapsed := time.Since(start)

	cmp, err := analysis.Compare(res.Continuous, res.Row)
	if err != nil {
		return err
	}

	runID := ""
	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err = st.Save(cfg, res, cmp.Metrics())
		if err != nil {
			return err
		}
		logger.Infow("run stored", "id", runID, "dir", dataDir)
	}

	switch format {
	case "json":
		return storage.ExportJSON(out, storage.NewExportData(runID, res, cmp.Metrics()))
	case "csv":
		return storage.ExportCSV(out, res)
	}

	fmt.Fprintln(out, report(runID, res, cmp, elapsed))
	if !noChart {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.Chart(res, viz.DefaultChartOptions()))
	}
	if showTable {
		fmt.Fprintln(out)
		return printTable(out, res)
	}
	return nil
}

func report(runID string, res *sim.Result, cmp *analysis.Comparison, elapsed time.Duration) string {
	metrics := []viz.Metric{
		{Label: "SZA", Value: fmt.Sprintf("%6.2f°", res.Sun.Zenith)},
		{Label: "SAA", Value: fmt.Sprintf("%6.2f°", res.Sun.Azimuth)},
		{Label: "nadir continuous", Value: fmt.Sprintf("%6.2f°C", cmp.Continuous.Nadir)},
		{Label: "nadir row", Value: fmt.Sprintf("%6.2f°C", cmp.Row.Nadir)},
		{Label: "mean row - continuous", Value: fmt.Sprintf("%+6.2f K", cmp.MeanDifference)},
		{Label: "max |row - continuous|", Value: fmt.Sprintf("%6.2f K at %+.1f°", cmp.MaxAbsDifference, cmp.MaxAbsZenith)},
		{Label: "rmsd", Value: fmt.Sprintf("%6.2f K", cmp.RMSD)},
	}
	if elapsed > 0 {
		metrics = append(metrics, viz.Metric{Label: "elapsed", Value: elapsed.Round(time.Microsecond).String()})
	}
	if runID != "" {
		metrics = append(metrics, viz.Metric{Label: "run id", Value: runID})
	}
	return viz.Summary("Brightness temperature simulations", metrics)
}

func printTable(out io.Writer, res *sim.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VZA\tRAA\tOMEGA\tCONTINUOUS\tROW\tDIFF")

	for i, a := range res.Angles {
		c := res.Continuous.Points[i].Celsius
		r := res.Row.Points[i].Celsius
		fmt.Fprintf(w, "%+7.2f\t%3.0f\t%.4f\t%.3f\t%.3f\t%+.3f\n",
			a.Zenith, a.RelativeAzimuth, res.Clumping[i], c, r, r-c)
	}

	return w.Flush()
}
