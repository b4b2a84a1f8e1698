package system

import (
	"testing"

	"github.com/alexiusacademia/gotube/internal/catalog"
	"github.com/alexiusacademia/gotube/internal/tubing"
	"github.com/alexiusacademia/gotube/internal/units"
	"github.com/stretchr/testify/require"
)

// mustSegment builds a tube segment for tests
func mustSegment(t *testing.T, name, size, thickness string, lengthM float64, material string, continuous bool) tubing.Segment {
	t.Helper()
	seg, err := tubing.Build(tubing.Input{
		Name:                   name,
		Kind:                   catalog.Tube,
		Size:                   size,
		Thickness:              thickness,
		Length:                 lengthM,
		LengthUnit:             units.Meter,
		Material:               material,
		ContinuousWithPrevious: continuous,
	})
	require.NoError(t, err)
	return seg
}

func sampleSegments(t *testing.T) []tubing.Segment {
	t.Helper()
	return []tubing.Segment{
		mustSegment(t, "A", `1"`, `0.065"`, 2, "Stainless Steel 316L", false),
		mustSegment(t, "B", `1/2"`, `0.035"`, 1.5, "Aluminum 6061-T6", true),
		mustSegment(t, "C", `3/4"`, `0.049"`, 0.75, "Titanium Ti-6Al-4V", false),
		mustSegment(t, "D", `2"`, `0.083"`, 3.2, "Inconel 625", true),
	}
}
