package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotube/internal/diagram"
	"github.com/alexiusacademia/gotube/internal/log"
	"github.com/alexiusacademia/gotube/internal/report"
	"github.com/alexiusacademia/gotube/internal/system"
	"github.com/alexiusacademia/gotube/internal/units"
)

var (
	systemAnalyzeFile        string
	systemAnalyzeShowDiagram bool
	systemAnalyzeExportFile  string
	systemAnalyzeCharts      bool
	systemAnalyzeXLSX        string
	systemAnalyzeCSV         string
	systemAnalyzePDF         string
	systemAnalyzeMsgpack     string
	systemAnalyzeJSON        bool
)

var systemAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Calculate totals and profile of a tubing run",
	Long: `Build every segment of a run defined in a YAML, JSON or Excel file
and report per-segment results, system totals and statistics.

Values are shown in the file's unit system unless --units or
GOTUBE_UNITS selects another. Relative export paths are placed under
GOTUBE_OUTPUT_DIR when it is set.

Examples:
  gotube system analyze -f feed.yaml
  gotube system analyze -f feed.yaml --diagram
  gotube system analyze -f feed.yaml -o profile.png --charts
  gotube system analyze -f loop.xlsx --xlsx results.xlsx --pdf results.pdf
  gotube system analyze -f feed.json --json`,
	RunE: runSystemAnalyze,
}

func init() {
	systemCmd.AddCommand(systemAnalyzeCmd)

	systemAnalyzeCmd.Flags().StringVarP(&systemAnalyzeFile, "file", "f", "", "Path to system definition (.yaml, .json, .xlsx) [required]")
	systemAnalyzeCmd.MarkFlagRequired("file")

	// Diagram options
	systemAnalyzeCmd.Flags().BoolVar(&systemAnalyzeShowDiagram, "diagram", false, "Show ASCII profile and distribution plots")
	systemAnalyzeCmd.Flags().StringVarP(&systemAnalyzeExportFile, "output", "o", "", "Export profile diagram to file (png, svg, pdf)")
	systemAnalyzeCmd.Flags().BoolVar(&systemAnalyzeCharts, "charts", false, "With --output, also export diameter, mass and volume charts")

	// Report options
	systemAnalyzeCmd.Flags().StringVar(&systemAnalyzeXLSX, "xlsx", "", "Write an Excel report")
	systemAnalyzeCmd.Flags().StringVar(&systemAnalyzeCSV, "csv", "", "Write the segment table as CSV")
	systemAnalyzeCmd.Flags().StringVar(&systemAnalyzePDF, "pdf", "", "Write a PDF report")
	systemAnalyzeCmd.Flags().StringVar(&systemAnalyzeMsgpack, "msgpack", "", "Write the SI results as MessagePack")
	systemAnalyzeCmd.Flags().BoolVar(&systemAnalyzeJSON, "json", false, "Print the SI results as JSON instead of the text report")
}

func runSystemAnalyze(cmd *cobra.Command, args []string) error {
	def, err := system.LoadFromFile(systemAnalyzeFile)
	if err != nil {
		return fmt.Errorf("loading system: %w", err)
	}

	list, err := def.Build()
	if err != nil {
		return fmt.Errorf("building system: %w", err)
	}

	sys := displaySystem(def.Units)
	title := def.Name
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(systemAnalyzeFile), filepath.Ext(systemAnalyzeFile))
	}
	rep := report.New(title, list, sys)

	if systemAnalyzeJSON {
		if err := printJSON(rep.Document()); err != nil {
			return err
		}
	} else {
		printSystemReport(def, rep)
		if systemAnalyzeShowDiagram {
			printSystemDiagrams(rep)
		}
	}

	if err := exportDiagrams(rep); err != nil {
		return err
	}
	return writeReports(rep)
}

func printSystemReport(def *system.Definition, rep report.Report) {
	sys := rep.System
	lu, du, vu, mu := sys.LengthUnit().Symbol(), sys.DiameterUnit().Symbol(), sys.VolumeUnit().Symbol(), sys.MassUnit().Symbol()

	printBanner(fmt.Sprintf("TUBING SYSTEM ANALYSIS - %s", sys.Label()))
	fmt.Printf("  System: %s\n", rep.Title)
	if def.Description != "" {
		fmt.Printf("  Description: %s\n", def.Description)
	}
	fmt.Printf("  Report ID: %s\n", rep.ID)
	fmt.Println()

	printHeading("SEGMENTS")
	w := newTabWriter()
	fmt.Fprintf(w, "  #\tName\tSize\tWall\tMaterial\tLength (%s)\tOD (%s)\tID (%s)\tMass (%s)\tJoin\n", lu, du, du, mu)
	fmt.Fprintf(w, "  ─\t────\t────\t────\t────────\t──────\t──\t──\t────\t────\n")
	for i, s := range rep.Segments {
		d := rep.Displays[i]
		join := "gap"
		if rep.Layout[i].Continuous {
			join = "cont."
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%.3f\t%.3f\t%.3f\t%.4f\t%s\n",
			i+1, s.Name, s.SizeLabel, s.ThicknessLabel, s.Material.Name,
			d.Length, d.OuterDiameter, d.InnerDiameter, d.Mass, join)
	}
	w.Flush()
	fmt.Println()

	printHeading("VOLUMES")
	w = newTabWriter()
	fmt.Fprintf(w, "  #\tName\tInternal (%s)\tMaterial (%s)\tShare of mass\n", vu, vu)
	fmt.Fprintf(w, "  ─\t────\t────────\t────────\t─────────────\n")
	shares := system.Breakdown(rep.Segments)
	for i, s := range shares {
		d := rep.Displays[i]
		fmt.Fprintf(w, "  %d\t%s\t%.6e\t%.6e\t%5.1f%%\n", i+1, s.Name, d.InternalVolume, d.MaterialVolume, 100*s.MassFraction)
	}
	w.Flush()
	fmt.Println()

	if st, ok := system.ComputeStats(rep.Segments); ok {
		printHeading("STATISTICS")
		w = newTabWriter()
		fmt.Fprintf(w, "  Heaviest segment:\t%s (%.4f %s)\n",
			rep.Segments[st.HeaviestIndex].Name, units.MustConvert(st.HeaviestMassKg, units.Kilogram, sys.MassUnit()), mu)
		fmt.Fprintf(w, "  Longest segment:\t%s (%.3f %s)\n",
			rep.Segments[st.LongestIndex].Name, units.MustConvert(st.LongestLengthM, units.Meter, sys.LengthUnit()), lu)
		fmt.Fprintf(w, "  Mean mass:\t%.4f %s\n", units.MustConvert(st.MeanMassKg, units.Kilogram, sys.MassUnit()), mu)
		fmt.Fprintf(w, "  Mass std. deviation:\t%.4f %s\n", units.MustConvert(st.MassStdDevKg, units.Kilogram, sys.MassUnit()), mu)
		fmt.Fprintf(w, "  Profile extent:\t%.3f %s\n", units.MustConvert(rep.Layout.Extent(), units.Meter, sys.LengthUnit()), lu)
		w.Flush()
		fmt.Println()
	}

	t := rep.Display
	totals := []string{
		fmt.Sprintf("Segments:               %d", t.SegmentCount),
		fmt.Sprintf("Total length:           %.4f %s", t.Length, lu),
		fmt.Sprintf("Total internal volume:  %.6e %s", t.InternalVolume, vu),
		fmt.Sprintf("Total material volume:  %.6e %s", t.MaterialVolume, vu),
		fmt.Sprintf("Total mass:             %.4f %s", t.Mass, mu),
	}
	if rep.Totals.TotalFluidMassKg > 0 {
		totals = append(totals,
			fmt.Sprintf("Total fluid mass:       %.4f %s", t.FluidMass, mu),
			fmt.Sprintf("Filled mass:            %.4f %s", t.Mass+t.FluidMass, mu),
		)
	}
	fmt.Print(diagram.DrawSummaryBox("SYSTEM TOTALS", totals))
	fmt.Println()
}

func printSystemDiagrams(rep report.Report) {
	sys := rep.System
	names := rep.Layout.Names()
	mass := make([]float64, len(rep.Displays))
	internal := make([]float64, len(rep.Displays))
	for i, d := range rep.Displays {
		mass[i] = d.Mass
		internal[i] = d.InternalVolume
	}

	fmt.Println(diagram.DrawLayoutProfile(rep.Layout, sys))
	fmt.Println(diagram.DrawDistribution("Mass", names, mass, sys.MassUnit().Symbol()))
	fmt.Println(diagram.DrawDistribution("Internal volume", names, internal, sys.VolumeUnit().Symbol()))
}

func exportDiagrams(rep report.Report) error {
	if systemAnalyzeExportFile == "" {
		if systemAnalyzeCharts {
			log.Warnw("--charts has no effect without --output")
		}
		return nil
	}

	target := cfg.OutputPath(systemAnalyzeExportFile)
	path, err := diagram.ExportLayoutDiagram(rep.Layout, rep.System, target)
	if err != nil {
		return fmt.Errorf("exporting diagram: %w", err)
	}
	notice("  Profile diagram exported to: %s\n", path)

	if !systemAnalyzeCharts {
		return nil
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for _, kind := range diagram.Distributions {
		chart, err := diagram.ExportDistributionChart(kind, rep.Layout, rep.System, fmt.Sprintf("%s-%s%s", base, kind, ext))
		if err != nil {
			return fmt.Errorf("exporting %s chart: %w", kind, err)
		}
		notice("  %s chart exported to: %s\n", kind, chart)
	}
	return nil
}

func writeReports(rep report.Report) error {
	outputs := []struct {
		path  string
		label string
		write report.Writer
	}{
		{systemAnalyzeXLSX, "Excel report", report.WriteExcel},
		{systemAnalyzeCSV, "CSV table", report.WriteCSV},
		{systemAnalyzePDF, "PDF report", report.WritePDF},
		{systemAnalyzeMsgpack, "MessagePack results", report.WriteMsgpack},
	}

	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		path := cfg.OutputPath(o.path)
		if err := report.WriteFile(path, rep, o.write); err != nil {
			return fmt.Errorf("writing %s: %w", o.label, err)
		}
		notice("  %s written to: %s\n", o.label, path)
	}
	return nil
}

// notice reports a written file unless stdout carries JSON
func notice(format string, args ...interface{}) {
	if systemAnalyzeJSON {
		return
	}
	fmt.Printf(format, args...)
}
