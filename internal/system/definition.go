package system

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gotube/internal/catalog"
	"github.com/alexiusacademia/gotube/internal/log"
	"github.com/alexiusacademia/gotube/internal/tubing"
	"github.com/alexiusacademia/gotube/internal/units"
)

// Definition is a tubing run as written in a system file.
//
// Example YAML:
//
//	name: Oxidizer feed
//	units: imperial
//	segments:
//	  - name: Tank outlet
//	    kind: tube
//	    size: 1/2"
//	    thickness: 0.035"
//	    length: 4
//	    material: Stainless Steel 316L
//	  - name: Valve run
//	    kind: tube
//	    size: 1/2"
//	    thickness: 0.049"
//	    length: 1.5
//	    material: Inconel 625
//	    continuous: true
//	    fluid_density: 1141
type Definition struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Units       units.System   `json:"units,omitempty" yaml:"units,omitempty"`
	Segments    []tubing.Input `json:"segments" yaml:"segments"`
}

// ValidationError represents a system definition validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// LoadFromFile reads a definition from a .yaml, .yml, .json or .xlsx file
func LoadFromFile(path string) (*Definition, error) {
	var (
		def *Definition
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		def, err = loadYAML(path)
	case ".json":
		def, err = loadJSON(path)
	case ".xlsx":
		def, err = loadWorkbook(path)
	default:
		return nil, &ValidationError{fmt.Sprintf("unsupported definition file %q (use .yaml, .json or .xlsx)", path)}
	}
	if err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	log.Debugw("definition loaded", "path", path, "name", def.Name, "segments", len(def.Segments))
	return def, nil
}

func loadYAML(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &def, nil
}

func loadJSON(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &def, nil
}

// Workbook columns, header row first:
// Name | Kind | Size | Thickness | Length | Unit | Material | Continuous | Fluid density (kg/m3)
// The first sheet is read. The definition name is the sheet name and the
// unit system defaults to metric; per-row Unit overrides it.
func loadWorkbook(path string) (*Definition, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, &ValidationError{fmt.Sprintf("%s: sheet %q has no segment rows", path, sheet)}
	}

	def := &Definition{Name: sheet, Units: units.Metric}
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		in, err := parseWorkbookRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		def.Segments = append(def.Segments, in)
	}
	return def, nil
}

func parseWorkbookRow(row []string) (tubing.Input, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	length, err := strconv.ParseFloat(cell(4), 64)
	if err != nil {
		return tubing.Input{}, fmt.Errorf("%w: length %q", tubing.ErrInvalidInput, cell(4))
	}

	in := tubing.Input{
		Name:      cell(0),
		Kind:      catalog.Kind(cell(1)),
		Size:      cell(2),
		Thickness: cell(3),
		Length:    length,
		Material:  cell(6),
	}
	if u := cell(5); u != "" {
		unit, err := units.ParseUnit(u)
		if err != nil {
			return tubing.Input{}, fmt.Errorf("%w: %w", tubing.ErrInvalidInput, err)
		}
		in.LengthUnit = unit
	}
	if c := cell(7); c != "" {
		cont, err := parseBool(c)
		if err != nil {
			return tubing.Input{}, err
		}
		in.ContinuousWithPrevious = cont
	}
	if c := cell(8); c != "" {
		density, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return tubing.Input{}, fmt.Errorf("%w: fluid density %q", tubing.ErrInvalidInput, c)
		}
		in.FluidDensity = density
	}
	return in, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "1", "x":
		return true, nil
	case "no", "n", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: continuous %q (use yes or no)", tubing.ErrInvalidInput, s)
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Validate checks the definition before any segment is built
func (d *Definition) Validate() error {
	if d.Units == "" {
		d.Units = units.Metric
	}
	sys, err := units.ParseSystem(string(d.Units))
	if err != nil {
		return &ValidationError{err.Error()}
	}
	d.Units = sys

	if len(d.Segments) == 0 {
		return &ValidationError{"system must have at least one segment"}
	}
	return nil
}

// Build resolves every segment in order. The first rejected segment
// aborts the build; no partial list is returned.
func (d *Definition) Build() (*List, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	list := NewList()
	for i, in := range d.Segments {
		if in.LengthUnit == "" {
			in.LengthUnit = d.Units.LengthUnit()
		}
		seg, err := tubing.Build(in)
		if err == nil {
			err = seg.Validate()
		}
		if err != nil {
			return nil, fmt.Errorf("segment %d (%s): %w", i+1, in.Name, err)
		}
		list.Append(seg)
	}
	return list, nil
}
