package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gotube/internal/system"
	"github.com/alexiusacademia/gotube/internal/units"
)

// profileWidth is the number of columns the full run extent is scaled to
const profileWidth = 60

// segment fills alternate so that two continuous segments stay distinguishable
var fills = []string{"█", "▓"}

// DrawLayoutProfile draws the run as a proportional strip: segments as
// filled bars, separation gaps as dotted runs, positions in sys units.
func DrawLayoutProfile(layout system.Layout, sys units.System) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  SYSTEM PROFILE\n")
	sb.WriteString("  ──────────────\n\n")

	if len(layout) == 0 {
		sb.WriteString("  (no segments)\n")
		return sb.String()
	}

	extent := layout.Extent()
	scale := float64(profileWidth) / extent
	col := func(pos float64) int {
		return int(math.Round(pos * scale))
	}

	cells := make([]string, profileWidth)
	for i := range cells {
		cells[i] = "·"
	}
	markers := make([]string, profileWidth)
	for i := range markers {
		markers[i] = " "
	}

	for i, e := range layout {
		from, to := col(e.StartPositionM), col(e.EndPositionM)
		if to <= from {
			to = from + 1
		}
		for c := from; c < to && c < profileWidth; c++ {
			cells[c] = fills[i%len(fills)]
		}
		if from < profileWidth {
			markers[from] = segmentTag(i)
		}
	}

	lu := sys.LengthUnit()
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(markers, "")))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(cells, "")))
	sb.WriteString(fmt.Sprintf("  0%s%.2f %s\n",
		strings.Repeat(" ", profileWidth-1), toLength(extent, lu), lu.Symbol()))

	sb.WriteString("\n")
	du := sys.DiameterUnit()
	for i, e := range layout {
		joint := "gap"
		if e.Continuous {
			joint = "joined"
		}
		sb.WriteString(fmt.Sprintf("  [%s] %-20s %8.3f → %8.3f %s   OD %.3f / ID %.3f %s   (%s)\n",
			segmentTag(i), e.SegmentName,
			toLength(e.StartPositionM, lu), toLength(e.EndPositionM, lu), lu.Symbol(),
			units.MustConvert(e.OuterDiameterMM, units.Millimeter, du),
			units.MustConvert(e.InnerDiameterMM, units.Millimeter, du), du.Symbol(),
			joint))
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  █▓ = Segment (alternating fill)\n")
	sb.WriteString(fmt.Sprintf("  ··· = Separation gap (%.2f %s before each separate segment)\n",
		toLength(system.SeparationGapM, lu), lu.Symbol()))

	return sb.String()
}

// segmentTag is a one-character marker for the i-th segment
func segmentTag(i int) string {
	const tags = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if i < len(tags) {
		return string(tags[i])
	}
	return "+"
}

func toLength(m float64, u units.Unit) float64 {
	return units.MustConvert(m, units.Meter, u)
}

// DrawDistribution plots a per-segment series with asciigraph, followed
// by a labelled value table.
func DrawDistribution(title string, names []string, values []float64, unit string) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len([]rune(title)))))

	if len(values) == 0 {
		sb.WriteString("  (no segments)\n")
		return sb.String()
	}

	// asciigraph needs two points to draw a line
	series := values
	if len(series) == 1 {
		series = []float64{values[0], values[0]}
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(len(series)*8),
		asciigraph.LowerBound(0),
		asciigraph.Precision(3),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("%s by segment (%s)", title, unit)),
	)
	sb.WriteString(graph)
	sb.WriteString("\n\n")

	for i, v := range values {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		sb.WriteString(fmt.Sprintf("  [%s] %-20s %12.6g %s\n", segmentTag(i), name, v, unit))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := width(title)
	for _, line := range lines {
		if w := width(line); w > maxLen {
			maxLen = w
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// width counts runes so unit symbols like m³ do not skew the box
func width(s string) int {
	return len([]rune(s))
}

func pad(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
