package config

import "sort"

func preset(name string, mod func(*Config)) *Config {
	cfg := DefaultConfig()
	cfg.Name = name
	mod(cfg)
	return cfg
}

var Presets = map[string]*Config{
	"grosseto": preset("grosseto", func(*Config) {}),
	"sparse-vineyard": preset("sparse-vineyard", func(c *Config) {
		c.Canopy.LAI = 1.2
		c.Canopy.LeafAngle = 55
		c.Rows = RowConfig{Height: 1.8, Width: 0.4, Separation: 2.5, Angle: 90}
	}),
	"dense-orchard": preset("dense-orchard", func(c *Config) {
		c.Canopy.LAI = 3.5
		c.Canopy.LeafAngle = 40
		c.Rows = RowConfig{Height: 3.5, Width: 1.5, Separation: 4.0, Angle: 30}
	}),
	"bare-rows": preset("bare-rows", func(c *Config) {
		c.Canopy.LAI = 0.5
		c.Thermal.SoilTempSunlit = 55
		c.Rows = RowConfig{Height: 0.6, Width: 0.2, Separation: 0.75, Angle: 0}
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
