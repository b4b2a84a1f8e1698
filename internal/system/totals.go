package system

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/alexiusacademia/gotube/internal/tubing"
	"github.com/alexiusacademia/gotube/internal/units"
)

// Totals is the whole-system aggregate. It is always recomputed from the
// segments and never stored alongside them.
type Totals struct {
	SegmentCount          int     `json:"segment_count" msgpack:"segment_count"`
	TotalLengthM          float64 `json:"total_length_m" msgpack:"total_length_m"`
	TotalInternalVolumeM3 float64 `json:"total_internal_volume_m3" msgpack:"total_internal_volume_m3"`
	TotalMaterialVolumeM3 float64 `json:"total_material_volume_m3" msgpack:"total_material_volume_m3"`
	TotalMassKg           float64 `json:"total_mass_kg" msgpack:"total_mass_kg"`
	TotalFluidMassKg      float64 `json:"total_fluid_mass_kg" msgpack:"total_fluid_mass_kg"`
}

// FilledMassKg is the tube mass plus the mass of the contents
func (t Totals) FilledMassKg() float64 {
	return t.TotalMassKg + t.TotalFluidMassKg
}

// ComputeTotals sums length, volumes and mass over segs. Continuity plays
// no part: every segment's own material and bore are real regardless of
// how it connects to its neighbours.
func ComputeTotals(segs []tubing.Segment) Totals {
	if len(segs) == 0 {
		return Totals{}
	}

	lengths, internal, material, mass := columns(segs)
	fluid := make([]float64, len(segs))
	for i, s := range segs {
		fluid[i] = s.FluidMassKg
	}
	return Totals{
		SegmentCount:          len(segs),
		TotalLengthM:          floats.Sum(lengths),
		TotalInternalVolumeM3: floats.Sum(internal),
		TotalMaterialVolumeM3: floats.Sum(material),
		TotalMassKg:           floats.Sum(mass),
		TotalFluidMassKg:      floats.Sum(fluid),
	}
}

// TotalsDisplay is Totals converted to a unit system for presentation
type TotalsDisplay struct {
	System         units.System
	SegmentCount   int
	Length         float64
	InternalVolume float64
	MaterialVolume float64
	Mass           float64
	FluidMass      float64
}

// In converts t to the display units of sys
func (t Totals) In(sys units.System) TotalsDisplay {
	return TotalsDisplay{
		System:         sys,
		SegmentCount:   t.SegmentCount,
		Length:         units.MustConvert(t.TotalLengthM, units.Meter, sys.LengthUnit()),
		InternalVolume: units.MustConvert(t.TotalInternalVolumeM3, units.CubicMeter, sys.VolumeUnit()),
		MaterialVolume: units.MustConvert(t.TotalMaterialVolumeM3, units.CubicMeter, sys.VolumeUnit()),
		Mass:           units.MustConvert(t.TotalMassKg, units.Kilogram, sys.MassUnit()),
		FluidMass:      units.MustConvert(t.TotalFluidMassKg, units.Kilogram, sys.MassUnit()),
	}
}

// Share is one segment's fraction of the system totals
type Share struct {
	Name                   string  `json:"name" msgpack:"name"`
	LengthFraction         float64 `json:"length_fraction" msgpack:"length_fraction"`
	InternalVolumeFraction float64 `json:"internal_volume_fraction" msgpack:"internal_volume_fraction"`
	MassFraction           float64 `json:"mass_fraction" msgpack:"mass_fraction"`
}

// Breakdown returns per-segment fractions of the totals, in segment order.
// Fractions of a zero total are reported as zero.
func Breakdown(segs []tubing.Segment) []Share {
	if len(segs) == 0 {
		return nil
	}

	lengths, internal, _, mass := columns(segs)
	lf := fractions(lengths)
	vf := fractions(internal)
	mf := fractions(mass)

	shares := make([]Share, len(segs))
	for i, s := range segs {
		shares[i] = Share{
			Name:                   s.Name,
			LengthFraction:         lf[i],
			InternalVolumeFraction: vf[i],
			MassFraction:           mf[i],
		}
	}
	return shares
}

// Stats summarizes the distribution of segment masses
type Stats struct {
	MeanMassKg     float64 `json:"mean_mass_kg"`
	MassStdDevKg   float64 `json:"mass_std_dev_kg"`
	HeaviestIndex  int     `json:"heaviest_index"`
	HeaviestMassKg float64 `json:"heaviest_mass_kg"`
	LongestIndex   int     `json:"longest_index"`
	LongestLengthM float64 `json:"longest_length_m"`
}

// ComputeStats returns mass and length statistics; ok is false for an
// empty list
func ComputeStats(segs []tubing.Segment) (Stats, bool) {
	if len(segs) == 0 {
		return Stats{}, false
	}

	lengths, _, _, mass := columns(segs)
	st := Stats{
		HeaviestIndex: floats.MaxIdx(mass),
		LongestIndex:  floats.MaxIdx(lengths),
	}
	st.HeaviestMassKg = mass[st.HeaviestIndex]
	st.LongestLengthM = lengths[st.LongestIndex]
	if len(mass) > 1 {
		st.MeanMassKg, st.MassStdDevKg = stat.MeanStdDev(mass, nil)
	} else {
		st.MeanMassKg = mass[0]
	}
	return st, true
}

func columns(segs []tubing.Segment) (lengths, internal, material, mass []float64) {
	lengths = make([]float64, len(segs))
	internal = make([]float64, len(segs))
	material = make([]float64, len(segs))
	mass = make([]float64, len(segs))
	for i, s := range segs {
		lengths[i] = s.LengthM
		internal[i] = s.InternalVolumeM3
		material[i] = s.MaterialVolumeM3
		mass[i] = s.MassKg
	}
	return lengths, internal, material, mass
}

func fractions(values []float64) []float64 {
	out := make([]float64, len(values))
	total := floats.Sum(values)
	if total == 0 {
		return out
	}
	floats.ScaleTo(out, 1/total, values)
	return out
}
