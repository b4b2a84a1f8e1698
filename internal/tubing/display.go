package tubing

import "github.com/alexiusacademia/gotube/internal/units"

// Display holds a segment's quantities converted to a unit system for
// presentation. The Segment itself always stays in canonical units.
type Display struct {
	System units.System

	Length         float64 // System.LengthUnit()
	OuterDiameter  float64 // System.DiameterUnit()
	InnerDiameter  float64
	WallThickness  float64
	InternalVolume float64 // System.VolumeUnit()
	MaterialVolume float64
	Mass           float64 // System.MassUnit()
	FluidMass      float64
	Density        float64 // System.DensityUnit()
}

// In converts s to the display units of sys
func (s Segment) In(sys units.System) Display {
	d := sys.DiameterUnit()
	v := sys.VolumeUnit()
	return Display{
		System:         sys,
		Length:         units.MustConvert(s.LengthM, units.Meter, sys.LengthUnit()),
		OuterDiameter:  units.MustConvert(s.OuterDiameterMM, units.Millimeter, d),
		InnerDiameter:  units.MustConvert(s.InnerDiameterMM, units.Millimeter, d),
		WallThickness:  units.MustConvert(s.WallThicknessMM, units.Millimeter, d),
		InternalVolume: units.MustConvert(s.InternalVolumeM3, units.CubicMeter, v),
		MaterialVolume: units.MustConvert(s.MaterialVolumeM3, units.CubicMeter, v),
		Mass:           units.MustConvert(s.MassKg, units.Kilogram, sys.MassUnit()),
		FluidMass:      units.MustConvert(s.FluidMassKg, units.Kilogram, sys.MassUnit()),
		Density:        units.MustConvert(s.Material.DensityKgPerM3, units.KilogramPerCubicMeter, sys.DensityUnit()),
	}
}
