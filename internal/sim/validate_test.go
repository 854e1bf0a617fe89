package sim

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func validInputs() (AcquisitionGeometry, CanopyThermalParameters, RowGeometry) {
	return AcquisitionGeometry{Longitude: 11.124, Latitude: 42.7635, Time: time.Date(2023, 5, 18, 14, 0, 0, 0, time.UTC)},
		CanopyThermalParameters{
			Wavelength: 9.5, LAI: 2,
			SoilTemp: 35, LeafTemp: 25, SoilTempSunlit: 45, LeafTempSunlit: 33,
			VegEmissivity: 0.98, SoilEmissivity: 0.94, Hotspot: 0.05, AverageLeafAngle: 45,
		},
		RowGeometry{Height: 1.5, Width: 0.5, Separation: 1.2, Angle: 45}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AcquisitionGeometry, *CanopyThermalParameters, *RowGeometry)
		valid  bool
	}{
		{"valid", func(*AcquisitionGeometry, *CanopyThermalParameters, *RowGeometry) {}, true},
		{"zero lai", func(_ *AcquisitionGeometry, c *CanopyThermalParameters, _ *RowGeometry) { c.LAI = 0 }, true},
		{"negative lai", func(_ *AcquisitionGeometry, c *CanopyThermalParameters, _ *RowGeometry) { c.LAI = -0.1 }, false},
		{"longitude high", func(g *AcquisitionGeometry, _ *CanopyThermalParameters, _ *RowGeometry) { g.Longitude = 180.5 }, false},
		{"latitude low", func(g *AcquisitionGeometry, _ *CanopyThermalParameters, _ *RowGeometry) { g.Latitude = -91 }, false},
		{"unset time", func(g *AcquisitionGeometry, _ *CanopyThermalParameters, _ *RowGeometry) { g.Time = time.Time{} }, false},
		{"nan wavelength", func(_ *AcquisitionGeometry, c *CanopyThermalParameters, _ *RowGeometry) { c.Wavelength = math.NaN() }, false},
		{"zero wavelength", func(_ *AcquisitionGeometry, c *CanopyThermalParameters, _ *RowGeometry) { c.Wavelength = 0 }, false},
		{"emissivity above one", func(_ *AcquisitionGeometry, c *CanopyThermalParameters, _ *RowGeometry) { c.SoilEmissivity = 1.01 }, false},
		{"inf leaf temperature", func(_ *AcquisitionGeometry, c *CanopyThermalParameters, _ *RowGeometry) { c.LeafTemp = math.Inf(-1) }, false},
		{"below absolute zero", func(_ *AcquisitionGeometry, c *CanopyThermalParameters, _ *RowGeometry) { c.SoilTemp = -300 }, false},
		{"leaf angle above 90", func(_ *AcquisitionGeometry, c *CanopyThermalParameters, _ *RowGeometry) { c.AverageLeafAngle = 91 }, false},
		{"negative row width", func(_ *AcquisitionGeometry, _ *CanopyThermalParameters, r *RowGeometry) { r.Width = -1 }, false},
		{"nan row angle", func(_ *AcquisitionGeometry, _ *CanopyThermalParameters, r *RowGeometry) { r.Angle = math.NaN() }, false},
		{"negative row angle", func(_ *AcquisitionGeometry, _ *CanopyThermalParameters, r *RowGeometry) { r.Angle = -30 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c, r := validInputs()
			tt.mutate(&g, &c, &r)

			err := validate(g, c, r)
			if tt.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("expected ErrInvalidParameter, got %v", err)
				}
			}
		})
	}
}

func TestValidate_ReportsAllFields(t *testing.T) {
	g, c, r := validInputs()
	c.LAI = -1
	c.VegEmissivity = 2
	r.Height = -1

	err := validate(g, c, r)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, name := range []string{"leaf_area_index", "vegetation_emissivity", "row_height"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("expected %q in %q", name, err.Error())
		}
	}
}
