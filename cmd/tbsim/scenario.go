package main

import (
	"fmt"
	"time"

	"github.com/nceo-airborne/tbsim/internal/config"
	"github.com/spf13/cobra"
)

// resolveScenario layers defaults, preset, scenario file and explicitly set
// flags, in that order.
func resolveScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	overrides := []struct {
		name string
		dst  *float64
		val  float64
	}{
		{"lon", &cfg.Acquisition.Longitude, lon},
		{"lat", &cfg.Acquisition.Latitude, lat},
		{"wavelength", &cfg.Acquisition.Wavelength, wavelength},
		{"lai", &cfg.Canopy.LAI, lai},
		{"leaf-angle", &cfg.Canopy.LeafAngle, leafAngle},
		{"hotspot", &cfg.Canopy.Hotspot, hotspot},
		{"tsoil", &cfg.Thermal.SoilTemp, soilTemp},
		{"tleaf", &cfg.Thermal.LeafTemp, leafTemp},
		{"tsoil-sunlit", &cfg.Thermal.SoilTempSunlit, soilTempSunlit},
		{"tleaf-sunlit", &cfg.Thermal.LeafTempSunlit, leafTempSunlit},
		{"ems", &cfg.Thermal.SoilEmissivity, soilEmissivity},
		{"emv", &cfg.Thermal.VegEmissivity, vegEmissivity},
		{"row-height", &cfg.Rows.Height, rowHeight},
		{"row-width", &cfg.Rows.Width, rowWidth},
		{"row-sep", &cfg.Rows.Separation, rowSeparation},
		{"row-angle", &cfg.Rows.Angle, rowAngle},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.val
		}
	}

	if flags.Changed("time") {
		t, err := time.Parse(timeLayout, timestamp)
		if err != nil {
			return nil, fmt.Errorf("invalid --time %q: %w", timestamp, err)
		}
		cfg.Acquisition.Time = t.UTC()
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Workers = workers
	}

	return cfg, nil
}
