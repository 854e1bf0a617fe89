package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nceo-airborne/tbsim/internal/log"
	"github.com/nceo-airborne/tbsim/internal/physics"
	"github.com/nceo-airborne/tbsim/internal/physics/reference"
	"github.com/spf13/cobra"
)

// sunPosition prints the solar angles in the same layout as the sun
// position pane of the dashboard. A sun below the horizon is reported with
// a warning, not an error.
func sunPosition(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	g := cfg.Geometry()
	sza, saa, err := reference.New().SolarPosition(g.Longitude, g.Latitude, g.Time)
	if err != nil {
		if !errors.Is(err, physics.ErrSunBelowHorizon) {
			return err
		}
		log.Logger().Warnw("sun below horizon", "sza", sza)
	}

	pane := map[string]string{
		"SZA": fmt.Sprintf("%6.2f", sza),
		"SAA": fmt.Sprintf("%6.2f", saa),
		"Lon": fmt.Sprintf("%+8.5f", g.Longitude),
		"Lat": fmt.Sprintf("%+8.5f", g.Latitude),
		"UTC": g.Time.Format("2006-01-02 15:04:05"),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(pane)
}
