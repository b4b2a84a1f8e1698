// Package report snapshots a tubing run and writes it out as a workbook,
// CSV, PDF or MessagePack document.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gotube/internal/system"
	"github.com/alexiusacademia/gotube/internal/tubing"
	"github.com/alexiusacademia/gotube/internal/units"
)

// Report is a point-in-time snapshot of a run. Later edits to the list
// it was taken from do not affect it.
type Report struct {
	ID        uuid.UUID
	Title     string
	Generated time.Time
	System    units.System

	Segments []tubing.Segment
	Displays []tubing.Display
	Totals   system.Totals
	Display  system.TotalsDisplay
	Layout   system.Layout
}

// New takes a snapshot of list for presentation in sys
func New(title string, list *system.List, sys units.System) Report {
	segs := list.Segments()
	displays := make([]tubing.Display, len(segs))
	for i, s := range segs {
		displays[i] = s.In(sys)
	}
	totals := system.ComputeTotals(segs)

	return Report{
		ID:        uuid.New(),
		Title:     title,
		Generated: time.Now(),
		System:    sys,
		Segments:  segs,
		Displays:  displays,
		Totals:    totals,
		Display:   totals.In(sys),
		Layout:    system.Project(segs),
	}
}

// Document is the canonical (SI) form of a report for machine consumers
type Document struct {
	ID        string           `json:"id" msgpack:"id"`
	Title     string           `json:"title" msgpack:"title"`
	Generated time.Time        `json:"generated" msgpack:"generated"`
	Units     units.System     `json:"display_units" msgpack:"display_units"`
	Segments  []tubing.Segment `json:"segments" msgpack:"segments"`
	Totals    system.Totals    `json:"totals" msgpack:"totals"`
	Layout    system.Layout    `json:"layout" msgpack:"layout"`
}

// Document returns the canonical form of r
func (r Report) Document() Document {
	return Document{
		ID:        r.ID.String(),
		Title:     r.Title,
		Generated: r.Generated,
		Units:     r.System,
		Segments:  r.Segments,
		Totals:    r.Totals,
		Layout:    r.Layout,
	}
}

// SegmentHeader is the column header for segment tables; quantity
// columns carry their unit in parentheses.
func SegmentHeader(sys units.System) []string {
	lu, du, vu, mu := sys.LengthUnit(), sys.DiameterUnit(), sys.VolumeUnit(), sys.MassUnit()
	return []string{
		"#",
		"Name",
		"Kind",
		"Size",
		"Thickness",
		"Material",
		fmt.Sprintf("Density (%s)", sys.DensityUnit()),
		fmt.Sprintf("Length (%s)", lu),
		fmt.Sprintf("OD (%s)", du),
		fmt.Sprintf("ID (%s)", du),
		fmt.Sprintf("Wall (%s)", du),
		fmt.Sprintf("Internal volume (%s)", vu),
		fmt.Sprintf("Material volume (%s)", vu),
		fmt.Sprintf("Mass (%s)", mu),
		fmt.Sprintf("Fluid mass (%s)", mu),
		"Continuous",
	}
}

// segmentValues is row i of the segment table, numbers left unformatted
func (r Report) segmentValues(i int) []interface{} {
	s, d := r.Segments[i], r.Displays[i]
	return []interface{}{
		i + 1,
		s.Name,
		string(s.Kind),
		s.SizeLabel,
		s.ThicknessLabel,
		s.Material.Name,
		d.Density,
		d.Length,
		d.OuterDiameter,
		d.InnerDiameter,
		d.WallThickness,
		d.InternalVolume,
		d.MaterialVolume,
		d.Mass,
		d.FluidMass,
		yesNo(r.Layout[i].Continuous),
	}
}

// totalsValues lists the totals as label/value pairs
func (r Report) totalsValues() [][2]interface{} {
	t := r.Display
	return [][2]interface{}{
		{"Segments", t.SegmentCount},
		{fmt.Sprintf("Total length (%s)", r.System.LengthUnit()), t.Length},
		{fmt.Sprintf("Total internal volume (%s)", r.System.VolumeUnit()), t.InternalVolume},
		{fmt.Sprintf("Total material volume (%s)", r.System.VolumeUnit()), t.MaterialVolume},
		{fmt.Sprintf("Total mass (%s)", r.System.MassUnit()), t.Mass},
		{fmt.Sprintf("Total fluid mass (%s)", r.System.MassUnit()), t.FluidMass},
		{fmt.Sprintf("Filled mass (%s)", r.System.MassUnit()), t.Mass + t.FluidMass},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// formatValue renders a table cell; floats keep full precision
func formatValue(v interface{}) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
