package catalog

import (
	"fmt"
	"strings"
)

// Family groups materials for listing
type Family string

const (
	StainlessSteel   Family = "Stainless steel"
	AluminumAlloy    Family = "Aluminum alloy"
	TitaniumAlloy    Family = "Titanium alloy"
	NickelSuperalloy Family = "Nickel superalloy"
	CopperAlloy      Family = "Copper alloy"
	Nickel           Family = "Nickel"
)

// Material is a tubing material with its room-temperature density
type Material struct {
	Name           string  `json:"name" msgpack:"name"`
	Family         Family  `json:"family" msgpack:"family"`
	DensityKgPerM3 float64 `json:"density_kg_per_m3" msgpack:"density_kg_per_m3"`
}

var materials = []Material{
	{"Stainless Steel 316L", StainlessSteel, 8000},
	{"Stainless Steel 321", StainlessSteel, 8030},
	{"Stainless Steel 347", StainlessSteel, 8030},
	{"Stainless Steel 15-7 PH", StainlessSteel, 7800},
	{"Aluminum 6061-T6", AluminumAlloy, 2700},
	{"Aluminum 2024-T3", AluminumAlloy, 2780},
	{"Aluminum 7075-T6", AluminumAlloy, 2810},
	{"Titanium Ti-6Al-4V", TitaniumAlloy, 4430},
	{"Titanium Grade 2", TitaniumAlloy, 4510},
	{"Titanium Ti-3Al-2.5V", TitaniumAlloy, 4480},
	{"Inconel 625", NickelSuperalloy, 8440},
	{"Inconel 718", NickelSuperalloy, 8220},
	{"Inconel X-750", NickelSuperalloy, 8280},
	{"Monel 400", NickelSuperalloy, 8830},
	{"Monel K-500", NickelSuperalloy, 8440},
	{"Hastelloy C-276", NickelSuperalloy, 8890},
	{"Hastelloy X", NickelSuperalloy, 8220},
	{"Copper C101", CopperAlloy, 8940},
	{"Copper C110", CopperAlloy, 8960},
	{"Brass 360", CopperAlloy, 8500},
	{"Nickel 200", Nickel, 8890},
	{"Nimonic 90", NickelSuperalloy, 8180},
	{"Waspaloy", NickelSuperalloy, 8220},
}

// keyed by lower-cased name
var materialIndex = func() map[string]Material {
	idx := make(map[string]Material, len(materials))
	for _, m := range materials {
		idx[strings.ToLower(m.Name)] = m
	}
	return idx
}()

// LookupMaterial resolves a material by name, ignoring case
func LookupMaterial(name string) (Material, error) {
	m, ok := materialIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Material{}, fmt.Errorf("%w: material %q", ErrNotFound, name)
	}
	return m, nil
}

// Materials returns the material catalog in listing order
func Materials() []Material {
	out := make([]Material, len(materials))
	copy(out, materials)
	return out
}
