package system

import "github.com/alexiusacademia/gotube/internal/tubing"

// SeparationGapM is the blank run drawn before a segment that does not
// continue from its predecessor. It is a presentation spacing only and
// carries no physical meaning.
const SeparationGapM = 1.0

// LayoutEntry places one segment on the 1D position axis
type LayoutEntry struct {
	SegmentName      string  `json:"segment_name" msgpack:"segment_name"`
	StartPositionM   float64 `json:"start_position_m" msgpack:"start_position_m"`
	EndPositionM     float64 `json:"end_position_m" msgpack:"end_position_m"`
	OuterDiameterMM  float64 `json:"outer_diameter_mm" msgpack:"outer_diameter_mm"`
	InnerDiameterMM  float64 `json:"inner_diameter_mm" msgpack:"inner_diameter_mm"`
	MassKg           float64 `json:"mass_kg" msgpack:"mass_kg"`
	FluidMassKg      float64 `json:"fluid_mass_kg" msgpack:"fluid_mass_kg"`
	MaterialVolumeM3 float64 `json:"material_volume_m3" msgpack:"material_volume_m3"`
	InternalVolumeM3 float64 `json:"internal_volume_m3" msgpack:"internal_volume_m3"`

	// Continuous is the effective continuity: always false for the first entry
	Continuous bool `json:"continuous" msgpack:"continuous"`
}

// Layout is the ordered projection of a run for plotting
type Layout []LayoutEntry

// Project lays segments end to end along a cursor starting at zero.
// A segment continuing from its predecessor starts where that one ended;
// any other segment, and always the first, starts SeparationGapM later.
func Project(segs []tubing.Segment) Layout {
	layout := make(Layout, 0, len(segs))
	cursor := 0.0

	for i, s := range segs {
		continuous := i > 0 && s.ContinuousWithPrevious

		start := cursor
		if !continuous {
			start += SeparationGapM
		}
		end := start + s.LengthM
		cursor = end

		layout = append(layout, LayoutEntry{
			SegmentName:      s.Name,
			StartPositionM:   start,
			EndPositionM:     end,
			OuterDiameterMM:  s.OuterDiameterMM,
			InnerDiameterMM:  s.InnerDiameterMM,
			MassKg:           s.MassKg,
			FluidMassKg:      s.FluidMassKg,
			MaterialVolumeM3: s.MaterialVolumeM3,
			InternalVolumeM3: s.InternalVolumeM3,
			Continuous:       continuous,
		})
	}

	return layout
}

// Extent is the end position of the last entry, or zero for an empty layout
func (l Layout) Extent() float64 {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].EndPositionM
}

// MaxOuterDiameterMM is the largest outer diameter in the layout
func (l Layout) MaxOuterDiameterMM() float64 {
	var max float64
	for _, e := range l {
		if e.OuterDiameterMM > max {
			max = e.OuterDiameterMM
		}
	}
	return max
}

// Names returns the segment names in layout order
func (l Layout) Names() []string {
	names := make([]string, len(l))
	for i, e := range l {
		names[i] = e.SegmentName
	}
	return names
}

// HasFluid reports whether any segment carries fluid mass
func (l Layout) HasFluid() bool {
	for _, e := range l {
		if e.FluidMassKg > 0 {
			return true
		}
	}
	return false
}
