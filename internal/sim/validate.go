package sim

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

type field struct {
	name  string
	value float64
}

func finite(fields ...field) error {
	var err error
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			err = multierr.Append(err, fmt.Errorf("%s is not finite", f.name))
		}
	}
	return err
}

func within(f field, lo, hi float64) error {
	if f.value < lo || f.value > hi {
		return fmt.Errorf("%s = %g outside [%g, %g]", f.name, f.value, lo, hi)
	}
	return nil
}

func nonNegative(f field) error {
	if f.value < 0 {
		return fmt.Errorf("%s = %g must be non-negative", f.name, f.value)
	}
	return nil
}

func aboveAbsoluteZero(f field) error {
	if f.value <= -273.15 {
		return fmt.Errorf("%s = %g°C below absolute zero", f.name, f.value)
	}
	return nil
}

// Validate reports every invalid field of g.
func (g AcquisitionGeometry) Validate() error {
	lon := field{"longitude", g.Longitude}
	lat := field{"latitude", g.Latitude}
	if err := finite(lon, lat); err != nil {
		return err
	}

	err := multierr.Combine(
		within(lon, -180, 180),
		within(lat, -90, 90),
	)
	if g.Time.IsZero() {
		err = multierr.Append(err, errors.New("timestamp is unset"))
	}
	return err
}

// Validate reports every invalid field of c.
func (c CanopyThermalParameters) Validate() error {
	fields := []field{
		{"wavelength", c.Wavelength},
		{"leaf_area_index", c.LAI},
		{"soil_temperature", c.SoilTemp},
		{"leaf_temperature", c.LeafTemp},
		{"soil_temperature_sunlit", c.SoilTempSunlit},
		{"leaf_temperature_sunlit", c.LeafTempSunlit},
		{"vegetation_emissivity", c.VegEmissivity},
		{"soil_emissivity", c.SoilEmissivity},
		{"hotspot_parameter", c.Hotspot},
		{"average_leaf_angle", c.AverageLeafAngle},
	}
	if err := finite(fields...); err != nil {
		return err
	}

	err := multierr.Combine(
		nonNegative(fields[1]),
		aboveAbsoluteZero(fields[2]),
		aboveAbsoluteZero(fields[3]),
		aboveAbsoluteZero(fields[4]),
		aboveAbsoluteZero(fields[5]),
		within(fields[6], 0, 1),
		within(fields[7], 0, 1),
		nonNegative(fields[8]),
		within(fields[9], 0, 90),
	)
	if c.Wavelength <= 0 {
		err = multierr.Append(err, fmt.Errorf("wavelength = %g must be positive", c.Wavelength))
	}
	return err
}

// Validate reports every invalid field of r.
func (r RowGeometry) Validate() error {
	fields := []field{
		{"row_height", r.Height},
		{"row_width", r.Width},
		{"row_separation", r.Separation},
		{"row_angle", r.Angle},
	}
	if err := finite(fields...); err != nil {
		return err
	}
	return multierr.Combine(
		nonNegative(fields[0]),
		nonNegative(fields[1]),
		nonNegative(fields[2]),
	)
}

func validate(g AcquisitionGeometry, c CanopyThermalParameters, r RowGeometry) error {
	if err := multierr.Combine(g.Validate(), c.Validate(), r.Validate()); err != nil {
		return &InvalidParameterError{Err: err}
	}
	return nil
}
