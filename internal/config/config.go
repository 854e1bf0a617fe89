package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nceo-airborne/tbsim/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLongitude  = 11.124
	DefaultLatitude   = 42.7635
	DefaultWavelength = 9.5

	DefaultLAI       = 2.0
	DefaultLeafAngle = 45.0
	DefaultHotspot   = 0.05

	DefaultSoilTemp       = 35.0
	DefaultLeafTemp       = 25.0
	DefaultSoilTempSunlit = 45.0
	DefaultLeafTempSunlit = 33.0
	DefaultSoilEmissivity = 0.94
	DefaultVegEmissivity  = 0.98

	DefaultRowHeight     = 1.5
	DefaultRowWidth      = 0.5
	DefaultRowSeparation = 1.2
	DefaultRowAngle      = 45.0

	DefaultWorkers = 1
)

// DefaultTime is the Grosseto overflight.
var DefaultTime = time.Date(2023, 5, 18, 14, 0, 0, 0, time.UTC)

type Config struct {
	Name        string            `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Acquisition AcquisitionConfig `yaml:"acquisition" toml:"acquisition" json:"acquisition"`
	Canopy      CanopyConfig      `yaml:"canopy" toml:"canopy" json:"canopy"`
	Thermal     ThermalConfig     `yaml:"thermal" toml:"thermal" json:"thermal"`
	Rows        RowConfig         `yaml:"rows" toml:"rows" json:"rows"`
	Workers     int               `yaml:"workers" toml:"workers" json:"workers"`
}

type AcquisitionConfig struct {
	Longitude  float64   `yaml:"longitude" toml:"longitude" json:"longitude"`
	Latitude   float64   `yaml:"latitude" toml:"latitude" json:"latitude"`
	Time       time.Time `yaml:"time" toml:"time" json:"time"`
	Wavelength float64   `yaml:"wavelength" toml:"wavelength" json:"wavelength"`
}

type CanopyConfig struct {
	LAI       float64 `yaml:"lai" toml:"lai" json:"lai"`
	LeafAngle float64 `yaml:"leaf_angle" toml:"leaf_angle" json:"leaf_angle"`
	Hotspot   float64 `yaml:"hotspot" toml:"hotspot" json:"hotspot"`
}

type ThermalConfig struct {
	SoilTemp       float64 `yaml:"soil_temp" toml:"soil_temp" json:"soil_temp"`
	LeafTemp       float64 `yaml:"leaf_temp" toml:"leaf_temp" json:"leaf_temp"`
	SoilTempSunlit float64 `yaml:"soil_temp_sunlit" toml:"soil_temp_sunlit" json:"soil_temp_sunlit"`
	LeafTempSunlit float64 `yaml:"leaf_temp_sunlit" toml:"leaf_temp_sunlit" json:"leaf_temp_sunlit"`
	SoilEmissivity float64 `yaml:"soil_emissivity" toml:"soil_emissivity" json:"soil_emissivity"`
	VegEmissivity  float64 `yaml:"veg_emissivity" toml:"veg_emissivity" json:"veg_emissivity"`
}

type RowConfig struct {
	Height     float64 `yaml:"height" toml:"height" json:"height"`
	Width      float64 `yaml:"width" toml:"width" json:"width"`
	Separation float64 `yaml:"separation" toml:"separation" json:"separation"`
	Angle      float64 `yaml:"angle" toml:"angle" json:"angle"`
}

func DefaultConfig() *Config {
	return &Config{
		Acquisition: AcquisitionConfig{
			Longitude:  DefaultLongitude,
			Latitude:   DefaultLatitude,
			Time:       DefaultTime,
			Wavelength: DefaultWavelength,
		},
		Canopy: CanopyConfig{
			LAI:       DefaultLAI,
			LeafAngle: DefaultLeafAngle,
			Hotspot:   DefaultHotspot,
		},
		Thermal: ThermalConfig{
			SoilTemp:       DefaultSoilTemp,
			LeafTemp:       DefaultLeafTemp,
			SoilTempSunlit: DefaultSoilTempSunlit,
			LeafTempSunlit: DefaultLeafTempSunlit,
			SoilEmissivity: DefaultSoilEmissivity,
			VegEmissivity:  DefaultVegEmissivity,
		},
		Rows: RowConfig{
			Height:     DefaultRowHeight,
			Width:      DefaultRowWidth,
			Separation: DefaultRowSeparation,
			Angle:      DefaultRowAngle,
		},
		Workers: DefaultWorkers,
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a scenario file over the defaults. Files ending in .toml are
// parsed as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
			return err
		}
		data = []byte(sb.String())
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Geometry() sim.AcquisitionGeometry {
	return sim.AcquisitionGeometry{
		Longitude: c.Acquisition.Longitude,
		Latitude:  c.Acquisition.Latitude,
		Time:      c.Acquisition.Time.UTC(),
	}
}

func (c *Config) CanopyParams() sim.CanopyThermalParameters {
	return sim.CanopyThermalParameters{
		Wavelength:       c.Acquisition.Wavelength,
		LAI:              c.Canopy.LAI,
		SoilTemp:         c.Thermal.SoilTemp,
		LeafTemp:         c.Thermal.LeafTemp,
		SoilTempSunlit:   c.Thermal.SoilTempSunlit,
		LeafTempSunlit:   c.Thermal.LeafTempSunlit,
		VegEmissivity:    c.Thermal.VegEmissivity,
		SoilEmissivity:   c.Thermal.SoilEmissivity,
		Hotspot:          c.Canopy.Hotspot,
		AverageLeafAngle: c.Canopy.LeafAngle,
	}
}

func (c *Config) RowGeometry() sim.RowGeometry {
	return sim.RowGeometry{
		Height:     c.Rows.Height,
		Width:      c.Rows.Width,
		Separation: c.Rows.Separation,
		Angle:      c.Rows.Angle,
	}
}
