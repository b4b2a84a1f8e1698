package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gotube/internal/log"
	"github.com/alexiusacademia/gotube/internal/system"
	"github.com/alexiusacademia/gotube/internal/units"
)

// ErrEmptyLayout is returned when there is nothing to draw
var ErrEmptyLayout = errors.New("layout has no segments")

// Distribution selects the per-segment series of a distribution chart
type Distribution string

const (
	DiameterDistribution Distribution = "diameter"
	MassDistribution     Distribution = "mass"
	VolumeDistribution   Distribution = "volume"
)

// Distributions lists every chart ExportDistributionChart can draw
var Distributions = []Distribution{DiameterDistribution, MassDistribution, VolumeDistribution}

// ParseDistribution resolves a chart name
func ParseDistribution(s string) (Distribution, error) {
	d := Distribution(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Distributions {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown distribution %q (use diameter, mass or volume)", s)
}

var (
	wallColor  = color.RGBA{R: 100, G: 149, B: 237, A: 200}
	wallEdge   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	boreColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	boreEdge   = color.Gray{Y: 128}
	innerColor = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	fluidColor = color.RGBA{R: 240, G: 128, B: 128, A: 255}
)

// ExportLayoutDiagram draws each segment as a wall rectangle of its outer
// diameter with the bore of its inner diameter, placed at its layout
// position. Returns the path written.
func ExportLayoutDiagram(layout system.Layout, sys units.System, filename string) (string, error) {
	if len(layout) == 0 {
		return "", ErrEmptyLayout
	}

	lu, du := sys.LengthUnit(), sys.DiameterUnit()

	p := plot.New()
	p.Title.Text = "System Profile"
	p.X.Label.Text = fmt.Sprintf("Position (%s)", lu.Symbol())
	p.Y.Label.Text = fmt.Sprintf("Diameter (%s)", du.Symbol())

	var labelXYs []plotter.XY
	var labels []string

	for _, e := range layout {
		x0 := units.MustConvert(e.StartPositionM, units.Meter, lu)
		x1 := units.MustConvert(e.EndPositionM, units.Meter, lu)
		ro := units.MustConvert(e.OuterDiameterMM, units.Millimeter, du) / 2
		ri := units.MustConvert(e.InnerDiameterMM, units.Millimeter, du) / 2

		wall, err := plotter.NewPolygon(rect(x0, x1, -ro, ro))
		if err != nil {
			return "", err
		}
		wall.Color = wallColor
		wall.LineStyle.Color = wallEdge
		p.Add(wall)

		bore, err := plotter.NewPolygon(rect(x0, x1, -ri, ri))
		if err != nil {
			return "", err
		}
		bore.Color = boreColor
		bore.LineStyle.Color = boreEdge
		bore.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		p.Add(bore)

		labelXYs = append(labelXYs, plotter.XY{X: (x0 + x1) / 2, Y: ro})
		labels = append(labels, e.SegmentName)
	}

	// Centerline over the full extent
	extent := units.MustConvert(layout.Extent(), units.Meter, lu)
	center, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: extent, Y: 0}})
	if err != nil {
		return "", err
	}
	center.LineStyle.Width = vg.Points(1)
	center.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	center.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(center)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
	if err != nil {
		return "", err
	}
	p.Add(names)

	maxR := units.MustConvert(layout.MaxOuterDiameterMM(), units.Millimeter, du) / 2
	p.X.Min = 0
	p.X.Max = extent
	p.Y.Min = -maxR * 1.5
	p.Y.Max = maxR * 1.5

	return save(p, 10*vg.Inch, 4*vg.Inch, filename)
}

func rect(x0, x1, y0, y1 float64) plotter.XYs {
	return plotter.XYs{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

// ExportDistributionChart draws a per-segment bar chart of kind. Diameter
// and volume charts pair two bars per segment (outer/inner, internal/material);
// the mass chart adds a fluid bar when any segment is filled.
func ExportDistributionChart(kind Distribution, layout system.Layout, sys units.System, filename string) (string, error) {
	if len(layout) == 0 {
		return "", ErrEmptyLayout
	}

	p := plot.New()
	p.X.Label.Text = "Segment"
	p.Legend.Top = true

	var series []barSeries
	switch kind {
	case DiameterDistribution:
		du := sys.DiameterUnit()
		p.Title.Text = "Diameter Distribution"
		p.Y.Label.Text = fmt.Sprintf("Diameter (%s)", du.Symbol())
		series = []barSeries{
			{"Outer diameter", wallColor, column(layout, func(e system.LayoutEntry) float64 {
				return units.MustConvert(e.OuterDiameterMM, units.Millimeter, du)
			})},
			{"Inner diameter", innerColor, column(layout, func(e system.LayoutEntry) float64 {
				return units.MustConvert(e.InnerDiameterMM, units.Millimeter, du)
			})},
		}
	case MassDistribution:
		mu := sys.MassUnit()
		p.Title.Text = "Mass Distribution"
		p.Y.Label.Text = fmt.Sprintf("Mass (%s)", mu.Symbol())
		series = []barSeries{
			{"Tube mass", wallColor, column(layout, func(e system.LayoutEntry) float64 {
				return units.MustConvert(e.MassKg, units.Kilogram, mu)
			})},
		}
		if layout.HasFluid() {
			series = append(series, barSeries{"Fluid mass", fluidColor, column(layout, func(e system.LayoutEntry) float64 {
				return units.MustConvert(e.FluidMassKg, units.Kilogram, mu)
			})})
		}
	case VolumeDistribution:
		vu := sys.VolumeUnit()
		p.Title.Text = "Volume Distribution"
		p.Y.Label.Text = fmt.Sprintf("Volume (%s)", vu.Symbol())
		series = []barSeries{
			{"Internal volume", innerColor, column(layout, func(e system.LayoutEntry) float64 {
				return units.MustConvert(e.InternalVolumeM3, units.CubicMeter, vu)
			})},
			{"Material volume", wallColor, column(layout, func(e system.LayoutEntry) float64 {
				return units.MustConvert(e.MaterialVolumeM3, units.CubicMeter, vu)
			})},
		}
	default:
		return "", fmt.Errorf("unknown distribution %q", kind)
	}

	barWidth := vg.Points(18)
	for i, s := range series {
		bars, err := plotter.NewBarChart(s.values, barWidth)
		if err != nil {
			return "", err
		}
		bars.Color = s.color
		bars.LineStyle.Width = vg.Length(0)
		// center the group of bars on each tick
		bars.Offset = barWidth * vg.Length(2*i-len(series)+1) / 2
		p.Add(bars)
		p.Legend.Add(s.name, bars)
	}
	p.NominalX(layout.Names()...)

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

type barSeries struct {
	name   string
	color  color.Color
	values plotter.Values
}

func column(layout system.Layout, f func(system.LayoutEntry) float64) plotter.Values {
	v := make(plotter.Values, len(layout))
	for i, e := range layout {
		v[i] = f(e)
	}
	return v
}

// save writes p with the format implied by the extension; anything other
// than .png, .svg or .pdf gets .png appended.
func save(p *plot.Plot, w, h vg.Length, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	if err := p.Save(w, h, filename); err != nil {
		return "", err
	}
	log.Infow("diagram written", "path", filename)
	return filename, nil
}
