package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a label is not in a catalog.
// Lookups never fall back to a nearby size or material.
var ErrNotFound = errors.New("not found in catalog")

// ErrUnknownKind is returned for a kind other than tube or pipe
var ErrUnknownKind = errors.New("unknown kind")

// Kind distinguishes OD-sized tubing from NPS pipe
type Kind string

const (
	Tube Kind = "Tube"
	Pipe Kind = "Pipe"
)

// ParseKind resolves "tube" or "pipe" (case-insensitive)
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tube", "tubing":
		return Tube, nil
	case "pipe", "nps":
		return Pipe, nil
	}
	return "", fmt.Errorf("%w: %q (use tube or pipe)", ErrUnknownKind, s)
}

// SizeEntry is a standard tube or pipe size
type SizeEntry struct {
	Label           string  `json:"label"`
	Kind            Kind    `json:"kind"`
	OuterDiameterMM float64 `json:"outer_diameter_mm"`
	OuterDiameterIn float64 `json:"outer_diameter_in"`
}

// Standard tube sizes, nominal = actual OD
var tubeSizes = []SizeEntry{
	{`1/8"`, Tube, 3.175, 0.125},
	{`3/16"`, Tube, 4.763, 0.1875},
	{`1/4"`, Tube, 6.35, 0.25},
	{`5/16"`, Tube, 7.938, 0.3125},
	{`3/8"`, Tube, 9.525, 0.375},
	{`1/2"`, Tube, 12.7, 0.5},
	{`5/8"`, Tube, 15.875, 0.625},
	{`3/4"`, Tube, 19.05, 0.75},
	{`7/8"`, Tube, 22.225, 0.875},
	{`1"`, Tube, 25.4, 1.0},
	{`1-1/8"`, Tube, 28.575, 1.125},
	{`1-1/4"`, Tube, 31.75, 1.25},
	{`1-3/8"`, Tube, 34.925, 1.375},
	{`1-1/2"`, Tube, 38.1, 1.5},
	{`1-5/8"`, Tube, 41.275, 1.625},
	{`1-3/4"`, Tube, 44.45, 1.75},
	{`1-7/8"`, Tube, 47.625, 1.875},
	{`2"`, Tube, 50.8, 2.0},
	{`2-1/4"`, Tube, 57.15, 2.25},
	{`2-1/2"`, Tube, 63.5, 2.5},
	{`2-3/4"`, Tube, 69.85, 2.75},
	{`3"`, Tube, 76.2, 3.0},
	{`3-1/4"`, Tube, 82.55, 3.25},
	{`3-1/2"`, Tube, 88.9, 3.5},
	{`3-3/4"`, Tube, 95.25, 3.75},
	{`4"`, Tube, 101.6, 4.0},
}

// Nominal Pipe Sizes (ASME B36.10), label is nominal, OD is actual
var pipeSizes = []SizeEntry{
	{`1/8" NPS`, Pipe, 10.3, 0.405},
	{`1/4" NPS`, Pipe, 13.7, 0.540},
	{`3/8" NPS`, Pipe, 17.1, 0.675},
	{`1/2" NPS`, Pipe, 21.3, 0.840},
	{`3/4" NPS`, Pipe, 26.7, 1.050},
	{`1" NPS`, Pipe, 33.4, 1.315},
	{`1-1/4" NPS`, Pipe, 42.2, 1.660},
	{`1-1/2" NPS`, Pipe, 48.3, 1.900},
	{`2" NPS`, Pipe, 60.3, 2.375},
	{`2-1/2" NPS`, Pipe, 73.0, 2.875},
	{`3" NPS`, Pipe, 88.9, 3.500},
	{`3-1/2" NPS`, Pipe, 101.6, 4.000},
	{`4" NPS`, Pipe, 114.3, 4.500},
}

var (
	tubeIndex = indexSizes(tubeSizes)
	pipeIndex = indexSizes(pipeSizes)
)

func indexSizes(entries []SizeEntry) map[string]SizeEntry {
	idx := make(map[string]SizeEntry, len(entries))
	for _, e := range entries {
		key, _ := normalizeLabel(e.Label)
		idx[key] = e
	}
	return idx
}

// normalizeLabel strips notation that does not change which size is meant:
// surrounding space, the inch mark and the NPS suffix. nps reports whether
// the suffix was present so a pipe label never resolves to a tube.
func normalizeLabel(label string) (key string, nps bool) {
	s := strings.TrimSpace(label)
	if len(s) > 3 && strings.EqualFold(s[len(s)-3:], "NPS") {
		s = strings.TrimSpace(s[:len(s)-3])
		nps = true
	}
	s = strings.TrimSuffix(s, `"`)
	s = strings.TrimSuffix(s, "in")
	return strings.TrimSpace(s), nps
}

// LookupSize resolves a size label in the catalog for kind
func LookupSize(kind Kind, label string) (SizeEntry, error) {
	kind, err := ParseKind(string(kind))
	if err != nil {
		return SizeEntry{}, err
	}

	idx := tubeIndex
	if kind == Pipe {
		idx = pipeIndex
	}

	key, nps := normalizeLabel(label)
	entry, ok := idx[key]
	if !ok || (nps && kind != Pipe) {
		return SizeEntry{}, fmt.Errorf("%w: %s size %q", ErrNotFound, strings.ToLower(string(kind)), label)
	}
	return entry, nil
}

// Sizes returns the catalog for kind in ascending order
func Sizes(kind Kind) []SizeEntry {
	var src []SizeEntry
	switch k, _ := ParseKind(string(kind)); k {
	case Tube:
		src = tubeSizes
	case Pipe:
		src = pipeSizes
	}
	out := make([]SizeEntry, len(src))
	copy(out, src)
	return out
}
