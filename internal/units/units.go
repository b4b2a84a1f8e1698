package units

import (
	"errors"
	"fmt"
	"strings"
)

// Exact conversion constants (international yard and pound, 1959)
const (
	MillimetersPerInch = 25.4
	MetersPerFoot      = 0.3048
	KilogramsPerPound  = 0.45359237

	metersPerInch = MillimetersPerInch / 1000
)

var (
	// ErrUnitMismatch is returned when a conversion crosses dimensions
	ErrUnitMismatch = errors.New("unit mismatch")

	// ErrUnknownUnit is returned for units outside the supported set
	ErrUnknownUnit = errors.New("unknown unit")
)

// Dimension is the physical quantity a unit measures
type Dimension int

const (
	Length Dimension = iota
	Mass
	Volume
	Density
)

func (d Dimension) String() string {
	switch d {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Volume:
		return "volume"
	case Density:
		return "density"
	}
	return fmt.Sprintf("dimension(%d)", int(d))
}

// Unit is a measurement unit identified by its ASCII symbol
type Unit string

const (
	Millimeter Unit = "mm"
	Inch       Unit = "in"
	Meter      Unit = "m"
	Foot       Unit = "ft"

	Kilogram Unit = "kg"
	Pound    Unit = "lb"

	CubicMeter Unit = "m3"
	CubicFoot  Unit = "ft3"
	CubicInch  Unit = "in3"

	KilogramPerCubicMeter Unit = "kg/m3"
	PoundPerCubicInch     Unit = "lb/in3"
	PoundPerCubicFoot     Unit = "lb/ft3"
)

// unitDef maps a unit onto its dimension and the factor that takes a value
// in this unit to the canonical unit of the dimension (m, kg, m³, kg/m³).
type unitDef struct {
	dim    Dimension
	factor float64
	symbol string
}

var definitions = map[Unit]unitDef{
	Millimeter: {Length, 0.001, "mm"},
	Inch:       {Length, metersPerInch, "in"},
	Meter:      {Length, 1, "m"},
	Foot:       {Length, MetersPerFoot, "ft"},

	Kilogram: {Mass, 1, "kg"},
	Pound:    {Mass, KilogramsPerPound, "lb"},

	CubicMeter: {Volume, 1, "m³"},
	CubicFoot:  {Volume, MetersPerFoot * MetersPerFoot * MetersPerFoot, "ft³"},
	CubicInch:  {Volume, metersPerInch * metersPerInch * metersPerInch, "in³"},

	KilogramPerCubicMeter: {Density, 1, "kg/m³"},
	PoundPerCubicInch:     {Density, KilogramsPerPound / (metersPerInch * metersPerInch * metersPerInch), "lb/in³"},
	PoundPerCubicFoot:     {Density, KilogramsPerPound / (MetersPerFoot * MetersPerFoot * MetersPerFoot), "lb/ft³"},
}

// aliases accepted by ParseUnit in addition to the unit symbols
var aliases = map[string]Unit{
	"millimeter":  Millimeter,
	"millimeters": Millimeter,
	"inch":        Inch,
	"inches":      Inch,
	"\"":          Inch,
	"meter":       Meter,
	"meters":      Meter,
	"metre":       Meter,
	"metres":      Meter,
	"foot":        Foot,
	"feet":        Foot,
	"'":           Foot,
	"kilogram":    Kilogram,
	"kilograms":   Kilogram,
	"pound":       Pound,
	"pounds":      Pound,
	"lbs":         Pound,
	"m^3":         CubicMeter,
	"m³":          CubicMeter,
	"ft^3":        CubicFoot,
	"ft³":         CubicFoot,
	"in^3":        CubicInch,
	"in³":         CubicInch,
}

// ParseUnit resolves a unit symbol or common name (case-insensitive)
func ParseUnit(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if _, ok := definitions[Unit(key)]; ok {
		return Unit(key), nil
	}
	if u, ok := aliases[key]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Dimension returns the quantity measured by u
func (u Unit) Dimension() (Dimension, error) {
	def, ok := definitions[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
	return def.dim, nil
}

// Symbol returns the printable label for u (e.g. "m³")
func (u Unit) Symbol() string {
	if def, ok := definitions[u]; ok {
		return def.symbol
	}
	return string(u)
}

// Convert converts value between two units of the same dimension.
func Convert(value float64, from, to Unit) (float64, error) {
	src, ok := definitions[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(from))
	}
	dst, ok := definitions[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(to))
	}
	if src.dim != dst.dim {
		return 0, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			ErrUnitMismatch, from, src.dim, to, dst.dim)
	}
	if from == to {
		return value, nil
	}
	return value * src.factor / dst.factor, nil
}

// MustConvert is Convert for unit pairs known at compile time to be compatible.
// It panics on a mismatch.
func MustConvert(value float64, from, to Unit) float64 {
	v, err := Convert(value, from, to)
	if err != nil {
		panic(err)
	}
	return v
}
