package catalog

import "fmt"

// ThicknessEntry is a standard wall thickness
type ThicknessEntry struct {
	Label       string  `json:"label"`
	ThicknessMM float64 `json:"thickness_mm"`
	ThicknessIn float64 `json:"thickness_in"`
}

// Standard wall gauges, mm values rounded as published
var thicknesses = []ThicknessEntry{
	{`0.028"`, 0.71, 0.028},
	{`0.035"`, 0.89, 0.035},
	{`0.049"`, 1.24, 0.049},
	{`0.065"`, 1.65, 0.065},
	{`0.083"`, 2.11, 0.083},
	{`0.095"`, 2.41, 0.095},
	{`0.109"`, 2.77, 0.109},
	{`0.120"`, 3.05, 0.120},
	{`0.134"`, 3.40, 0.134},
	{`0.148"`, 3.76, 0.148},
	{`0.165"`, 4.19, 0.165},
	{`0.180"`, 4.57, 0.180},
	{`0.203"`, 5.16, 0.203},
	{`0.220"`, 5.59, 0.220},
	{`0.237"`, 6.02, 0.237},
	{`0.250"`, 6.35, 0.250},
	{`0.280"`, 7.11, 0.280},
	{`0.300"`, 7.62, 0.300},
	{`0.337"`, 8.56, 0.337},
	{`0.375"`, 9.53, 0.375},
	{`0.438"`, 11.13, 0.438},
	{`0.500"`, 12.70, 0.500},
}

var thicknessIndex = func() map[string]ThicknessEntry {
	idx := make(map[string]ThicknessEntry, len(thicknesses))
	for _, t := range thicknesses {
		key, _ := normalizeLabel(t.Label)
		idx[key] = t
	}
	return idx
}()

// LookupThickness resolves a wall thickness label such as 0.065"
func LookupThickness(label string) (ThicknessEntry, error) {
	key, nps := normalizeLabel(label)
	t, ok := thicknessIndex[key]
	if !ok || nps {
		return ThicknessEntry{}, fmt.Errorf("%w: wall thickness %q", ErrNotFound, label)
	}
	return t, nil
}

// Thicknesses returns the thickness catalog, thinnest first
func Thicknesses() []ThicknessEntry {
	out := make([]ThicknessEntry, len(thicknesses))
	copy(out, thicknesses)
	return out
}
