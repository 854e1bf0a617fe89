package config

import "fmt"

// Range is an advisory interval for a scenario value.
type Range struct {
	Name     string
	Min, Max float64
	value    func(*Config) float64
}

// Ranges are the operating envelope the model is tuned for. Values outside
// them are still simulated.
var Ranges = []Range{
	{"wavelength [um]", 7.6, 12.5, func(c *Config) float64 { return c.Acquisition.Wavelength }},
	{"hotspot [-]", 0.01, 0.1, func(c *Config) float64 { return c.Canopy.Hotspot }},
	{"leaf angle [deg]", 0, 90, func(c *Config) float64 { return c.Canopy.LeafAngle }},
	{"lai [m2/m2]", 0, 4, func(c *Config) float64 { return c.Canopy.LAI }},
	{"shaded soil temperature [degC]", -10, 100, func(c *Config) float64 { return c.Thermal.SoilTemp }},
	{"shaded leaf temperature [degC]", -10, 100, func(c *Config) float64 { return c.Thermal.LeafTemp }},
	{"sunlit soil temperature [degC]", -10, 100, func(c *Config) float64 { return c.Thermal.SoilTempSunlit }},
	{"sunlit leaf temperature [degC]", -10, 100, func(c *Config) float64 { return c.Thermal.LeafTempSunlit }},
	{"soil emissivity [-]", 0.9, 1.0, func(c *Config) float64 { return c.Thermal.SoilEmissivity }},
	{"leaf emissivity [-]", 0.9, 1.0, func(c *Config) float64 { return c.Thermal.VegEmissivity }},
	{"row height [m]", 0, 5, func(c *Config) float64 { return c.Rows.Height }},
	{"row width [m]", 0, 5, func(c *Config) float64 { return c.Rows.Width }},
	{"row separation [m]", 0, 10, func(c *Config) float64 { return c.Rows.Separation }},
	{"row angle [deg]", 0, 90, func(c *Config) float64 { return c.Rows.Angle }},
}

// Warnings lists values outside their advisory range.
func (c *Config) Warnings() []string {
	var out []string
	for _, r := range Ranges {
		v := r.value(c)
		if v < r.Min || v > r.Max {
			out = append(out, fmt.Sprintf("%s = %g outside [%g, %g]", r.Name, v, r.Min, r.Max))
		}
	}
	return out
}
