package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/nceo-airborne/tbsim/internal/analysis"
	"github.com/nceo-airborne/tbsim/internal/config"
	"github.com/nceo-airborne/tbsim/internal/storage"
	"github.com/nceo-airborne/tbsim/internal/viz"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, viz.Subtle.Render("no runs found"))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSZA\tLAI\tRMSD")

	for _, run := range runs {
		name := run.Preset
		if name == "" {
			name = "-"
		}
		laiValue := 0.0
		if run.Scenario != nil {
			laiValue = run.Scenario.Canopy.LAI
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%.3f\n",
			run.ID,
			name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Sun.Zenith,
			laiValue,
			run.Metrics["rmsd"],
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadResult(runID)
	if err != nil {
		return err
	}

	cmp, err := analysis.Compare(res.Continuous, res.Row)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, report(runID, res, cmp, 0))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Chart(res, viz.DefaultChartOptions()))
	if showTable {
		fmt.Fprintln(out)
		return printTable(out, res)
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	res, err := storage.New(dataDir).LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(out, res)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	res, err := st.LoadResult(runID)
	if err != nil {
		return err
	}
	return storage.ExportJSON(out, storage.NewExportData(runID, res, meta.Metrics))
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tLAI\tROW H\tROW W\tROW SEP\tROW ANGLE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.0f\n",
			name, p.Canopy.LAI, p.Rows.Height, p.Rows.Width, p.Rows.Separation, p.Rows.Angle)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", args[0])
	return nil
}
