package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, Sizes(Tube), 26)
	assert.Len(t, Sizes(Pipe), 13)
	assert.Len(t, Thicknesses(), 22)
	assert.Len(t, Materials(), 23)

	assert.Equal(t, `1/8"`, Sizes(Tube)[0].Label)
	assert.Equal(t, `4"`, Sizes(Tube)[25].Label)
	assert.Equal(t, `1/8" NPS`, Sizes(Pipe)[0].Label)
	assert.Equal(t, `4" NPS`, Sizes(Pipe)[12].Label)
	assert.Equal(t, `0.028"`, Thicknesses()[0].Label)
	assert.Equal(t, `0.500"`, Thicknesses()[21].Label)
}

func TestCatalogEntriesPositive(t *testing.T) {
	for _, kind := range []Kind{Tube, Pipe} {
		for _, s := range Sizes(kind) {
			assert.Greater(t, s.OuterDiameterMM, 0.0, s.Label)
			assert.Equal(t, kind, s.Kind, s.Label)
		}
	}
	for _, th := range Thicknesses() {
		assert.Greater(t, th.ThicknessMM, 0.0, th.Label)
	}
	for _, m := range Materials() {
		assert.Greater(t, m.DensityKgPerM3, 0.0, m.Name)
	}
}

func TestLookupSize(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		label string
		odMM  float64
	}{
		{"exact tube", Tube, `1"`, 25.4},
		{"tube without inch mark", Tube, "1-1/2", 38.1},
		{"tube with in suffix", Tube, "1/2in", 12.7},
		{"exact pipe", Pipe, `2" NPS`, 60.3},
		{"pipe without suffix", Pipe, "2", 60.3},
		{"pipe without inch mark", Pipe, "3-1/2 NPS", 101.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := LookupSize(tt.kind, tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.odMM, entry.OuterDiameterMM)
		})
	}
}

func TestLookupSizeNotFound(t *testing.T) {
	_, err := LookupSize(Tube, `5"`)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = LookupSize(Tube, `1-1/16"`)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = LookupSize(Tube, `1/8" NPS`)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = LookupSize(Pipe, `5/16"`)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = LookupSize(Kind("Hose"), `1"`)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLookupThickness(t *testing.T) {
	th, err := LookupThickness(`0.065"`)
	require.NoError(t, err)
	assert.Equal(t, 1.65, th.ThicknessMM)

	th, err = LookupThickness("0.500")
	require.NoError(t, err)
	assert.Equal(t, 12.70, th.ThicknessMM)

	_, err = LookupThickness(`0.066"`)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupMaterial(t *testing.T) {
	m, err := LookupMaterial("Stainless Steel 316L")
	require.NoError(t, err)
	assert.Equal(t, 8000.0, m.DensityKgPerM3)
	assert.Equal(t, StainlessSteel, m.Family)

	m, err = LookupMaterial("  titanium ti-6al-4v ")
	require.NoError(t, err)
	assert.Equal(t, "Titanium Ti-6Al-4V", m.Name)

	_, err = LookupMaterial("Unobtainium")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMaterialFamilies(t *testing.T) {
	seen := map[Family]bool{}
	for _, m := range Materials() {
		seen[m.Family] = true
	}
	for _, f := range []Family{StainlessSteel, AluminumAlloy, TitaniumAlloy, NickelSuperalloy, CopperAlloy, Nickel} {
		assert.True(t, seen[f], f)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("TUBE")
	require.NoError(t, err)
	assert.Equal(t, Tube, k)

	k, err = ParseKind("pipe")
	require.NoError(t, err)
	assert.Equal(t, Pipe, k)

	_, err = ParseKind("duct")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSizesReturnsCopy(t *testing.T) {
	s := Sizes(Tube)
	s[0].OuterDiameterMM = -1
	entry, err := LookupSize(Tube, `1/8"`)
	require.NoError(t, err)
	assert.Equal(t, 3.175, entry.OuterDiameterMM)
}
