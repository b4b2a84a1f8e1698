package units

import (
	"fmt"
	"strings"
)

// System is the unit system a user enters and reads values in
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// ParseSystem resolves "metric"/"si" or "imperial"/"us"
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "si":
		return Metric, nil
	case "imperial", "us":
		return Imperial, nil
	}
	return "", fmt.Errorf("%w: unit system %q (use metric or imperial)", ErrUnknownUnit, s)
}

// Label is the human-readable name of the system
func (s System) Label() string {
	if s == Imperial {
		return "Imperial (US)"
	}
	return "Metric (SI)"
}

// LengthUnit is the unit for segment lengths and positions
func (s System) LengthUnit() Unit {
	if s == Imperial {
		return Foot
	}
	return Meter
}

// DiameterUnit is the unit for diameters and wall thicknesses
func (s System) DiameterUnit() Unit {
	if s == Imperial {
		return Inch
	}
	return Millimeter
}

func (s System) MassUnit() Unit {
	if s == Imperial {
		return Pound
	}
	return Kilogram
}

func (s System) VolumeUnit() Unit {
	if s == Imperial {
		return CubicFoot
	}
	return CubicMeter
}

func (s System) DensityUnit() Unit {
	if s == Imperial {
		return PoundPerCubicInch
	}
	return KilogramPerCubicMeter
}
