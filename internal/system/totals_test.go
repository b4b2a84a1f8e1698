package system

import (
	"testing"

	"github.com/alexiusacademia/gotube/internal/tubing"
	"github.com/alexiusacademia/gotube/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalsEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, ComputeTotals(nil))
	assert.Equal(t, Totals{}, ComputeTotals([]tubing.Segment{}))
	assert.Nil(t, Breakdown(nil))

	_, ok := ComputeStats(nil)
	assert.False(t, ok)
}

func TestComputeTotalsSums(t *testing.T) {
	segs := sampleSegments(t)
	totals := ComputeTotals(segs)

	var length, internal, material, mass float64
	for _, s := range segs {
		length += s.LengthM
		internal += s.InternalVolumeM3
		material += s.MaterialVolumeM3
		mass += s.MassKg
	}

	assert.Equal(t, 4, totals.SegmentCount)
	assert.InDelta(t, 7.45, totals.TotalLengthM, 1e-12)
	assert.InDelta(t, length, totals.TotalLengthM, 1e-12)
	assert.InDelta(t, internal, totals.TotalInternalVolumeM3, 1e-15)
	assert.InDelta(t, material, totals.TotalMaterialVolumeM3, 1e-15)
	assert.InDelta(t, mass, totals.TotalMassKg, 1e-12)
}

func TestComputeTotalsIgnoresContinuity(t *testing.T) {
	segs := sampleSegments(t)
	flipped := make([]tubing.Segment, len(segs))
	for i, s := range segs {
		s.ContinuousWithPrevious = !s.ContinuousWithPrevious
		flipped[i] = s
	}
	assert.Equal(t, ComputeTotals(segs), ComputeTotals(flipped))
}

func TestComputeTotalsAdditive(t *testing.T) {
	segs := sampleSegments(t)
	left := ComputeTotals(segs[:2])
	right := ComputeTotals(segs[2:])
	all := ComputeTotals(segs)

	assert.Equal(t, all.SegmentCount, left.SegmentCount+right.SegmentCount)
	assert.InDelta(t, all.TotalLengthM, left.TotalLengthM+right.TotalLengthM, 1e-12)
	assert.InDelta(t, all.TotalInternalVolumeM3, left.TotalInternalVolumeM3+right.TotalInternalVolumeM3, 1e-15)
	assert.InDelta(t, all.TotalMaterialVolumeM3, left.TotalMaterialVolumeM3+right.TotalMaterialVolumeM3, 1e-15)
	assert.InDelta(t, all.TotalMassKg, left.TotalMassKg+right.TotalMassKg, 1e-12)

	reversed := []tubing.Segment{segs[3], segs[2], segs[1], segs[0]}
	rev := ComputeTotals(reversed)
	assert.InDelta(t, all.TotalMassKg, rev.TotalMassKg, 1e-12)
	assert.InDelta(t, all.TotalInternalVolumeM3, rev.TotalInternalVolumeM3, 1e-15)
}

func TestComputeTotalsFluidMass(t *testing.T) {
	var segs []tubing.Segment
	for i, density := range []float64{0, 1000, 1141} {
		seg, err := tubing.Build(tubing.Input{
			Name: string(rune('A' + i)), Kind: "tube", Size: `1"`, Thickness: `0.065"`,
			Length: 2, Material: "Stainless Steel 316L", FluidDensity: density,
		})
		require.NoError(t, err)
		segs = append(segs, seg)
	}

	totals := ComputeTotals(segs)
	assert.InDelta(t, segs[1].FluidMassKg+segs[2].FluidMassKg, totals.TotalFluidMassKg, 1e-12)
	assert.InDelta(t, totals.TotalMassKg+totals.TotalFluidMassKg, totals.FilledMassKg(), 1e-12)
	assert.InDelta(t, totals.TotalFluidMassKg/0.45359237, totals.In(units.Imperial).FluidMass, 1e-9)

	layout := Project(segs)
	assert.True(t, layout.HasFluid())
	assert.Equal(t, segs[2].FluidMassKg, layout[2].FluidMassKg)
	assert.False(t, Project(segs[:1]).HasFluid())
}

func TestTotalsIn(t *testing.T) {
	totals := ComputeTotals(sampleSegments(t))

	metric := totals.In(units.Metric)
	assert.Equal(t, totals.TotalLengthM, metric.Length)
	assert.Equal(t, totals.TotalMassKg, metric.Mass)

	imp := totals.In(units.Imperial)
	assert.InDelta(t, totals.TotalLengthM/0.3048, imp.Length, 1e-9)
	assert.InDelta(t, totals.TotalMassKg/0.45359237, imp.Mass, 1e-9)
	assert.InDelta(t, totals.TotalInternalVolumeM3*35.3146667, imp.InternalVolume, 1e-9)
	assert.Equal(t, 4, imp.SegmentCount)
}

func TestBreakdown(t *testing.T) {
	segs := sampleSegments(t)
	shares := Breakdown(segs)
	require.Len(t, shares, 4)

	var lf, vf, mf float64
	for i, s := range shares {
		assert.Equal(t, segs[i].Name, s.Name)
		lf += s.LengthFraction
		vf += s.InternalVolumeFraction
		mf += s.MassFraction
	}
	assert.InDelta(t, 1, lf, 1e-12)
	assert.InDelta(t, 1, vf, 1e-12)
	assert.InDelta(t, 1, mf, 1e-12)

	totals := ComputeTotals(segs)
	assert.InDelta(t, segs[0].MassKg/totals.TotalMassKg, shares[0].MassFraction, 1e-12)
}

func TestComputeStats(t *testing.T) {
	segs := sampleSegments(t)
	st, ok := ComputeStats(segs)
	require.True(t, ok)

	// 2" Inconel 625 is the heaviest and the longest
	assert.Equal(t, 3, st.HeaviestIndex)
	assert.Equal(t, segs[3].MassKg, st.HeaviestMassKg)
	assert.Equal(t, 3, st.LongestIndex)
	assert.Equal(t, 3.2, st.LongestLengthM)
	assert.InDelta(t, ComputeTotals(segs).TotalMassKg/4, st.MeanMassKg, 1e-12)
	assert.Greater(t, st.MassStdDevKg, 0.0)

	single, ok := ComputeStats(segs[:1])
	require.True(t, ok)
	assert.Equal(t, segs[0].MassKg, single.MeanMassKg)
	assert.Equal(t, 0.0, single.MassStdDevKg)
}
