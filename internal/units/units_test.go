package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to Unit
		expected float64
	}{
		{"inch to mm", 1, Inch, Millimeter, 25.4},
		{"foot to meter", 1, Foot, Meter, 0.3048},
		{"pound to kg", 1, Pound, Kilogram, 0.45359237},
		{"mm to inch", 50.8, Millimeter, Inch, 2},
		{"meter to foot", 3.048, Meter, Foot, 10},
		{"cubic foot to cubic meter", 1, CubicFoot, CubicMeter, 0.028316846592},
		{"cubic inches per cubic foot", 1, CubicFoot, CubicInch, 1728},
		{"density 316L", 8000, KilogramPerCubicMeter, PoundPerCubicInch, 0.289018},
		{"same unit", 42, Kilogram, Kilogram, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-6)
		})
	}
}

func TestConvertMismatch(t *testing.T) {
	_, err := Convert(1, Meter, Kilogram)
	assert.ErrorIs(t, err, ErrUnitMismatch)

	_, err = Convert(1, CubicMeter, Foot)
	assert.ErrorIs(t, err, ErrUnitMismatch)
}

func TestConvertUnknown(t *testing.T) {
	_, err := Convert(1, Unit("furlong"), Meter)
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = Convert(1, Meter, Unit("cubit"))
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestFeetRoundTrip(t *testing.T) {
	for _, ft := range []float64{0.001, 1, 3.5, 12.25, 1000, 98765.4321} {
		m, err := Convert(ft, Foot, Meter)
		require.NoError(t, err)
		back, err := Convert(m, Meter, Foot)
		require.NoError(t, err)
		assert.InEpsilon(t, ft, back, 1e-12)
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"m", Meter},
		{"Meters", Meter},
		{" feet ", Foot},
		{"FT", Foot},
		{"in", Inch},
		{"lbs", Pound},
		{"m³", CubicMeter},
		{"kg/m3", KilogramPerCubicMeter},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUnit(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseUnit("parsec")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestSystemUnits(t *testing.T) {
	assert.Equal(t, Meter, Metric.LengthUnit())
	assert.Equal(t, Millimeter, Metric.DiameterUnit())
	assert.Equal(t, Kilogram, Metric.MassUnit())
	assert.Equal(t, CubicMeter, Metric.VolumeUnit())

	assert.Equal(t, Foot, Imperial.LengthUnit())
	assert.Equal(t, Inch, Imperial.DiameterUnit())
	assert.Equal(t, Pound, Imperial.MassUnit())
	assert.Equal(t, CubicFoot, Imperial.VolumeUnit())
	assert.Equal(t, PoundPerCubicInch, Imperial.DensityUnit())

	for _, u := range []Unit{Meter, Foot, Kilogram, CubicFoot} {
		d, err := u.Dimension()
		require.NoError(t, err)
		assert.NotEqual(t, "", d.String())
	}
	assert.Equal(t, "ft³", CubicFoot.Symbol())
}

func TestParseSystem(t *testing.T) {
	s, err := ParseSystem("Imperial")
	require.NoError(t, err)
	assert.Equal(t, Imperial, s)

	s, err = ParseSystem("si")
	require.NoError(t, err)
	assert.Equal(t, Metric, s)

	_, err = ParseSystem("cgs")
	assert.Error(t, err)
}
