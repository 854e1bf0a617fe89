package main

import (
	"os"

	"github.com/nceo-airborne/tbsim/internal/config"
	"github.com/nceo-airborne/tbsim/internal/log"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	debug   bool

	configFile string
	preset     string
	workers    int
	noSave     bool
	noChart    bool
	showTable  bool
	format     string

	// Acquisition
	lon        float64
	lat        float64
	timestamp  string
	wavelength float64

	// Canopy
	lai       float64
	leafAngle float64
	hotspot   float64

	// Thermal
	soilTemp       float64
	leafTemp       float64
	soilTempSunlit float64
	leafTempSunlit float64
	soilEmissivity float64
	vegEmissivity  float64

	// Rows
	rowHeight     float64
	rowWidth      float64
	rowSeparation float64
	rowAngle      float64
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// main registers the tbsim commands and exits with status 1 when a command
// fails.
func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tbsim",
		Short: "directional brightness temperature simulations for row and continuous canopies",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(debug)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tbsim", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "development logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate continuous and row canopy brightness temperatures",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "concurrent angle evaluations")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	runCmd.Flags().BoolVar(&noChart, "no-chart", false, "skip the ascii chart")
	runCmd.Flags().BoolVar(&showTable, "table", false, "print the per-angle table")
	runCmd.Flags().StringVar(&format, "format", "text", "output format: text, csv or json")

	sunCmd := &cobra.Command{
		Use:   "sun",
		Short: "print the sun position for the acquisition",
		Args:  cobra.NoArgs,
		RunE:  sunPosition,
	}
	addScenarioFlags(sunCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "summarise and chart a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&showTable, "table", false, "print the per-angle table")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run series to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scenario presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a scenario file (yaml or toml by extension)",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	rootCmd.AddCommand(runCmd, sunCmd, listCmd, showCmd, exportCSVCmd, exportJSONCmd, presetsCmd, initCmd)
	return rootCmd
}

func addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "scenario file (yaml or toml)")
	f.StringVar(&preset, "preset", "", "use preset scenario")

	f.Float64Var(&lon, "lon", config.DefaultLongitude, "longitude [deg]")
	f.Float64Var(&lat, "lat", config.DefaultLatitude, "latitude [deg]")
	f.StringVar(&timestamp, "time", config.DefaultTime.Format(timeLayout), "overflight time (RFC3339, UTC)")
	f.Float64Var(&wavelength, "wavelength", config.DefaultWavelength, "wavelength [um]")

	f.Float64Var(&lai, "lai", config.DefaultLAI, "leaf area index [m2/m2]")
	f.Float64Var(&leafAngle, "leaf-angle", config.DefaultLeafAngle, "average leaf angle [deg]")
	f.Float64Var(&hotspot, "hotspot", config.DefaultHotspot, "hotspot parameter [-]")

	f.Float64Var(&soilTemp, "tsoil", config.DefaultSoilTemp, "shaded soil temperature [degC]")
	f.Float64Var(&leafTemp, "tleaf", config.DefaultLeafTemp, "shaded leaf temperature [degC]")
	f.Float64Var(&soilTempSunlit, "tsoil-sunlit", config.DefaultSoilTempSunlit, "sunlit soil temperature [degC]")
	f.Float64Var(&leafTempSunlit, "tleaf-sunlit", config.DefaultLeafTempSunlit, "sunlit leaf temperature [degC]")
	f.Float64Var(&soilEmissivity, "ems", config.DefaultSoilEmissivity, "soil emissivity [-]")
	f.Float64Var(&vegEmissivity, "emv", config.DefaultVegEmissivity, "leaf emissivity [-]")

	f.Float64Var(&rowHeight, "row-height", config.DefaultRowHeight, "row height [m]")
	f.Float64Var(&rowWidth, "row-width", config.DefaultRowWidth, "row width [m]")
	f.Float64Var(&rowSeparation, "row-sep", config.DefaultRowSeparation, "row separation [m]")
	f.Float64Var(&rowAngle, "row-angle", config.DefaultRowAngle, "row angle with view azimuth [deg]")
}
