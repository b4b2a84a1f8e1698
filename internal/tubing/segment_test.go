package tubing

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gotube/internal/catalog"
	"github.com/alexiusacademia/gotube/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		Name:       "Feed line",
		Kind:       catalog.Tube,
		Size:       `1"`,
		Thickness:  `0.065"`,
		Length:     2,
		LengthUnit: units.Meter,
		Material:   "Stainless Steel 316L",
	}
}

func TestBuildReferenceSegment(t *testing.T) {
	seg, err := Build(validInput())
	require.NoError(t, err)

	assert.Equal(t, 25.4, seg.OuterDiameterMM)
	assert.Equal(t, 1.65, seg.WallThicknessMM)
	assert.InDelta(t, 22.1, seg.InnerDiameterMM, 1e-9)
	assert.Equal(t, 2.0, seg.LengthM)

	// π×(0.01105)²×2 and π×(0.0127² − 0.01105²)×2
	assert.InDelta(t, 7.6719e-4, seg.InternalVolumeM3, 1e-8)
	assert.InDelta(t, 2.4622e-4, seg.MaterialVolumeM3, 1e-8)
	assert.InDelta(t, 1.96978, seg.MassKg, 1e-4)
	assert.InDelta(t, seg.MaterialVolumeM3*8000, seg.MassKg, 1e-12)

	assert.Equal(t, catalog.Tube, seg.Kind)
	assert.Equal(t, `1"`, seg.SizeLabel)
	assert.Equal(t, `0.065"`, seg.ThicknessLabel)
	assert.NoError(t, seg.Validate())
}

func TestBuildInnerDiameterIdentity(t *testing.T) {
	for _, kind := range []catalog.Kind{catalog.Tube, catalog.Pipe} {
		for _, size := range catalog.Sizes(kind) {
			for _, th := range catalog.Thicknesses() {
				in := validInput()
				in.Kind = kind
				in.Size = size.Label
				in.Thickness = th.Label

				seg, err := Build(in)
				expectedID := size.OuterDiameterMM - 2*th.ThicknessMM
				if expectedID <= 0 {
					assert.ErrorIs(t, err, ErrInvalidGeometry, "%s %s", size.Label, th.Label)
					assert.Equal(t, Segment{}, seg)
					continue
				}
				require.NoError(t, err, "%s %s", size.Label, th.Label)
				assert.Equal(t, expectedID, seg.InnerDiameterMM)

				gross := math.Pi * math.Pow(seg.OuterDiameterMM/2000, 2) * seg.LengthM
				assert.InEpsilon(t, gross, seg.InternalVolumeM3+seg.MaterialVolumeM3, 1e-9)
				assert.InDelta(t, seg.GrossVolumeM3(), gross, 1e-15)
			}
		}
	}
}

func TestBuildInvalidGeometry(t *testing.T) {
	in := validInput()
	in.Size = `1/8"`
	in.Thickness = `0.500"`

	_, err := Build(in)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	// walls that meet exactly leave no bore: 1/2" tube with 0.250" wall
	in.Size = `1/2"`
	in.Thickness = `0.250"`
	_, err = Build(in)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
		target error
	}{
		{"empty name", func(in *Input) { in.Name = "   " }, ErrInvalidInput},
		{"zero length", func(in *Input) { in.Length = 0 }, ErrInvalidInput},
		{"negative length", func(in *Input) { in.Length = -1 }, ErrInvalidInput},
		{"NaN length", func(in *Input) { in.Length = math.NaN() }, ErrInvalidInput},
		{"unknown size", func(in *Input) { in.Size = `9"` }, catalog.ErrNotFound},
		{"pipe label for tube", func(in *Input) { in.Size = `1/8" NPS` }, catalog.ErrNotFound},
		{"unknown thickness", func(in *Input) { in.Thickness = `0.001"` }, catalog.ErrNotFound},
		{"unknown material", func(in *Input) { in.Material = "Cheese" }, catalog.ErrNotFound},
		{"unknown kind", func(in *Input) { in.Kind = "Hose" }, ErrInvalidInput},
		{"unknown unit", func(in *Input) { in.LengthUnit = "furlong" }, ErrInvalidInput},
		{"unknown unit wraps cause", func(in *Input) { in.LengthUnit = "furlong" }, units.ErrUnknownUnit},
		{"mass unit for length", func(in *Input) { in.LengthUnit = units.Kilogram }, units.ErrUnitMismatch},
		{"negative fluid density", func(in *Input) { in.FluidDensity = -1 }, ErrInvalidInput},
		{"NaN fluid density", func(in *Input) { in.FluidDensity = math.NaN() }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)
			seg, err := Build(in)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, Segment{}, seg)
		})
	}
}

func TestBuildImperialLength(t *testing.T) {
	in := validInput()
	in.Length = 10
	in.LengthUnit = units.Foot

	seg, err := Build(in)
	require.NoError(t, err)
	assert.InDelta(t, 3.048, seg.LengthM, 1e-12)

	metric := validInput()
	metric.Length = 3.048
	ref, err := Build(metric)
	require.NoError(t, err)
	assert.InDelta(t, ref.MassKg, seg.MassKg, 1e-12)
}

func TestBuildAcceptsUnitNames(t *testing.T) {
	for _, name := range []units.Unit{"feet", "FT", " foot "} {
		in := validInput()
		in.Length = 10
		in.LengthUnit = name

		seg, err := Build(in)
		require.NoError(t, err, name)
		assert.InDelta(t, 3.048, seg.LengthM, 1e-12, name)
	}

	in := validInput()
	in.LengthUnit = "Meters"
	seg, err := Build(in)
	require.NoError(t, err)
	assert.Equal(t, 2.0, seg.LengthM)
}

func TestBuildDefaultsToMeters(t *testing.T) {
	in := validInput()
	in.LengthUnit = ""
	seg, err := Build(in)
	require.NoError(t, err)
	assert.Equal(t, 2.0, seg.LengthM)
}

func TestBuildKeepsContinuity(t *testing.T) {
	in := validInput()
	in.ContinuousWithPrevious = true
	seg, err := Build(in)
	require.NoError(t, err)
	assert.True(t, seg.ContinuousWithPrevious)
}

func TestBuildFluidMass(t *testing.T) {
	empty, err := Build(validInput())
	require.NoError(t, err)
	assert.Zero(t, empty.FluidMassKg)
	assert.Equal(t, empty.MassKg, empty.FilledMassKg())

	in := validInput()
	in.FluidDensity = 1000
	full, err := Build(in)
	require.NoError(t, err)

	// water in the reference bore: 7.6719e-4 m³ × 1000 kg/m³
	assert.InDelta(t, 0.76719, full.FluidMassKg, 1e-4)
	assert.Equal(t, empty.MassKg, full.MassKg)
	assert.InDelta(t, full.MassKg+full.FluidMassKg, full.FilledMassKg(), 1e-12)
	assert.InDelta(t, full.FluidMassKg/0.45359237, full.In(units.Imperial).FluidMass, 1e-9)
	assert.NoError(t, full.Validate())
}

func TestSegmentIn(t *testing.T) {
	seg, err := Build(validInput())
	require.NoError(t, err)

	metric := seg.In(units.Metric)
	assert.Equal(t, seg.LengthM, metric.Length)
	assert.Equal(t, seg.OuterDiameterMM, metric.OuterDiameter)
	assert.Equal(t, seg.MassKg, metric.Mass)

	imp := seg.In(units.Imperial)
	assert.InDelta(t, 1.0, imp.OuterDiameter, 1e-12)
	assert.InDelta(t, 0.065, imp.WallThickness, 1e-3)
	assert.InDelta(t, 2/0.3048, imp.Length, 1e-9)
	assert.InDelta(t, seg.MassKg/0.45359237, imp.Mass, 1e-9)
	assert.InDelta(t, seg.InternalVolumeM3/0.028316846592, imp.InternalVolume, 1e-12)
	assert.InDelta(t, 0.289, imp.Density, 1e-3)
}

func TestValidateDetectsTampering(t *testing.T) {
	seg, err := Build(validInput())
	require.NoError(t, err)

	bad := seg
	bad.InnerDiameterMM = 20
	assert.ErrorIs(t, bad.Validate(), ErrInvalidGeometry)

	bad = seg
	bad.LengthM = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}
