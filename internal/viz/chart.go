package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/nceo-airborne/tbsim/internal/sim"
)

type ChartOptions struct {
	Width  int
	Height int
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 90, Height: 15}
}

// Chart plots both series against viewing zenith angle. The x axis spans
// the sweep from -90° on the left to +90° on the right.
func Chart(res *sim.Result, opts ChartOptions) string {
	if res == nil || res.Continuous.Len() == 0 {
		return ""
	}

	zeniths := res.Continuous.Zeniths()
	caption := fmt.Sprintf("Brightness temperature [degC] vs VZA [deg] (%.0f .. %.0f)",
		zeniths[0], zeniths[len(zeniths)-1])

	graph := asciigraph.PlotMany(
		[][]float64{res.Continuous.Temperatures(), res.Row.Temperatures()},
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(caption),
	)
	return graph + "\n" + Legend()
}

func Legend() string {
	return ContinuousStyle.Render("━━ "+sim.Continuous.Label()) + "   " +
		RowStyle.Render("━━ "+sim.Row.Label())
}
