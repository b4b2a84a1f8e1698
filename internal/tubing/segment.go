package tubing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gotube/internal/catalog"
	"github.com/alexiusacademia/gotube/internal/log"
	"github.com/alexiusacademia/gotube/internal/units"
)

var (
	// ErrInvalidInput covers empty names, non-positive lengths or
	// thicknesses, and unsupported units or kinds
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidGeometry is returned when the walls meet or cross,
	// i.e. the inner diameter would be zero or negative
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// Input is one segment as entered by the user, before catalog resolution
type Input struct {
	Name                   string       `json:"name" yaml:"name"`
	Kind                   catalog.Kind `json:"kind" yaml:"kind"`
	Size                   string       `json:"size" yaml:"size"`
	Thickness              string       `json:"thickness" yaml:"thickness"`
	Length                 float64      `json:"length" yaml:"length"`
	LengthUnit             units.Unit   `json:"length_unit,omitempty" yaml:"length_unit,omitempty"`
	Material               string       `json:"material" yaml:"material"`
	ContinuousWithPrevious bool         `json:"continuous" yaml:"continuous"`

	// FluidDensity of the bore contents in kg/m³; zero for an empty tube
	FluidDensity float64 `json:"fluid_density,omitempty" yaml:"fluid_density,omitempty"`
}

// Segment is a resolved length of tube or pipe. All quantities are in
// canonical units (mm for diameters, m, m³, kg). A Segment is never
// mutated after Build; edits build a replacement.
type Segment struct {
	Name           string       `json:"name" msgpack:"name"`
	Kind           catalog.Kind `json:"kind" msgpack:"kind"`
	SizeLabel      string       `json:"size" msgpack:"size"`
	ThicknessLabel string       `json:"thickness" msgpack:"thickness"`

	OuterDiameterMM float64 `json:"outer_diameter_mm" msgpack:"outer_diameter_mm"`
	WallThicknessMM float64 `json:"wall_thickness_mm" msgpack:"wall_thickness_mm"`
	InnerDiameterMM float64 `json:"inner_diameter_mm" msgpack:"inner_diameter_mm"`
	LengthM         float64 `json:"length_m" msgpack:"length_m"`

	Material               catalog.Material `json:"material" msgpack:"material"`
	ContinuousWithPrevious bool             `json:"continuous_with_previous" msgpack:"continuous_with_previous"`

	InternalVolumeM3 float64 `json:"internal_volume_m3" msgpack:"internal_volume_m3"`
	MaterialVolumeM3 float64 `json:"material_volume_m3" msgpack:"material_volume_m3"`
	MassKg           float64 `json:"mass_kg" msgpack:"mass_kg"`

	FluidDensityKgPerM3 float64 `json:"fluid_density_kg_m3" msgpack:"fluid_density_kg_m3"`
	FluidMassKg         float64 `json:"fluid_mass_kg" msgpack:"fluid_mass_kg"`
}

// Build resolves in against the catalogs and computes the segment's
// geometry, volumes and mass. No segment is returned on error.
func Build(in Input) (Segment, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Segment{}, fmt.Errorf("%w: segment name is required", ErrInvalidInput)
	}
	if !(in.Length > 0) || math.IsInf(in.Length, 0) {
		return Segment{}, fmt.Errorf("%w: length must be positive, got %g", ErrInvalidInput, in.Length)
	}
	if !(in.FluidDensity >= 0) || math.IsInf(in.FluidDensity, 0) {
		return Segment{}, fmt.Errorf("%w: fluid density must be zero or positive, got %g", ErrInvalidInput, in.FluidDensity)
	}

	size, err := catalog.LookupSize(in.Kind, in.Size)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownKind) {
			return Segment{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return Segment{}, err
	}

	thickness, err := catalog.LookupThickness(in.Thickness)
	if err != nil {
		return Segment{}, err
	}
	if thickness.ThicknessMM <= 0 {
		return Segment{}, fmt.Errorf("%w: wall thickness must be positive, got %g mm", ErrInvalidInput, thickness.ThicknessMM)
	}

	material, err := catalog.LookupMaterial(in.Material)
	if err != nil {
		return Segment{}, err
	}

	lengthUnit := units.Meter
	if in.LengthUnit != "" {
		lengthUnit, err = units.ParseUnit(string(in.LengthUnit))
		if err != nil {
			return Segment{}, fmt.Errorf("%w: length unit: %w", ErrInvalidInput, err)
		}
	}
	lengthM, err := units.Convert(in.Length, lengthUnit, units.Meter)
	if err != nil {
		return Segment{}, fmt.Errorf("length unit: %w", err)
	}

	innerMM := size.OuterDiameterMM - 2*thickness.ThicknessMM
	if innerMM <= 0 {
		return Segment{}, fmt.Errorf("%w: total wall thickness %.3f mm (2 × %s) must be less than the outer diameter %.3f mm of %s",
			ErrInvalidGeometry, 2*thickness.ThicknessMM, thickness.Label, size.OuterDiameterMM, size.Label)
	}

	seg := Segment{
		Name:                   name,
		Kind:                   size.Kind,
		SizeLabel:              size.Label,
		ThicknessLabel:         thickness.Label,
		OuterDiameterMM:        size.OuterDiameterMM,
		WallThicknessMM:        thickness.ThicknessMM,
		InnerDiameterMM:        innerMM,
		LengthM:                lengthM,
		Material:               material,
		ContinuousWithPrevious: in.ContinuousWithPrevious,
	}
	seg.InternalVolumeM3 = circleArea(innerMM) * lengthM
	seg.MaterialVolumeM3 = (circleArea(size.OuterDiameterMM) - circleArea(innerMM)) * lengthM
	seg.MassKg = seg.MaterialVolumeM3 * material.DensityKgPerM3
	seg.FluidDensityKgPerM3 = in.FluidDensity
	seg.FluidMassKg = seg.InternalVolumeM3 * in.FluidDensity

	log.Debugw("segment built",
		"name", seg.Name,
		"size", seg.SizeLabel,
		"thickness", seg.ThicknessLabel,
		"length_m", seg.LengthM,
		"mass_kg", seg.MassKg,
		"fluid_mass_kg", seg.FluidMassKg,
	)

	return seg, nil
}

// circleArea returns the area in m² of a circle with diameter in mm
func circleArea(diameterMM float64) float64 {
	r := diameterMM / 2000
	return math.Pi * r * r
}

// GrossVolumeM3 is the volume enclosed by the outer diameter
func (s Segment) GrossVolumeM3() float64 {
	return circleArea(s.OuterDiameterMM) * s.LengthM
}

// FilledMassKg is the tube mass plus the mass of its contents
func (s Segment) FilledMassKg() float64 {
	return s.MassKg + s.FluidMassKg
}

// Validate checks the geometric invariants of a segment value
func (s Segment) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: segment name is required", ErrInvalidInput)
	}
	if !(s.LengthM > 0) {
		return fmt.Errorf("%w: length must be positive", ErrInvalidInput)
	}
	if !(s.WallThicknessMM > 0) {
		return fmt.Errorf("%w: wall thickness must be positive", ErrInvalidInput)
	}
	if s.InnerDiameterMM != s.OuterDiameterMM-2*s.WallThicknessMM {
		return fmt.Errorf("%w: inner diameter %.4f mm does not match OD %.4f mm and wall %.4f mm",
			ErrInvalidGeometry, s.InnerDiameterMM, s.OuterDiameterMM, s.WallThicknessMM)
	}
	if s.InnerDiameterMM <= 0 {
		return fmt.Errorf("%w: inner diameter must be positive", ErrInvalidGeometry)
	}
	if s.FluidMassKg < 0 {
		return fmt.Errorf("%w: fluid mass must not be negative", ErrInvalidInput)
	}
	return nil
}
