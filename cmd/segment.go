package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotube/internal/catalog"
	"github.com/alexiusacademia/gotube/internal/diagram"
	"github.com/alexiusacademia/gotube/internal/tubing"
	"github.com/alexiusacademia/gotube/internal/units"
)

var (
	segName       string
	segKind       string
	segSize       string
	segThickness  string
	segLength     float64
	segLengthUnit string
	segMaterial   string
	segFluid      float64
	segJSON       bool
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Calculate geometry, volume and mass of a single segment",
	Long: `Resolve one segment against the catalogs and calculate its inner
diameter, internal volume, material volume and mass.

Examples:
  gotube segment --size 1 --thickness 0.065 --length 2 --material "Stainless Steel 316L"
  gotube segment -k pipe -s '2" NPS' -t 0.148 -l 10 --length-unit ft -m "Monel 400" -u imperial
  gotube segment -s 1/2 -t 0.035 -l 3 -m "Inconel 625" --fluid-density 1141`,
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)

	segmentCmd.Flags().StringVarP(&segName, "name", "n", "Segment", "Segment name")
	segmentCmd.Flags().StringVarP(&segKind, "kind", "k", "tube", "Size kind: tube or pipe")
	segmentCmd.Flags().StringVarP(&segSize, "size", "s", "", "Size label, e.g. 1/2\" [required]")
	segmentCmd.Flags().StringVarP(&segThickness, "thickness", "t", "", "Wall thickness label, e.g. 0.035\" [required]")
	segmentCmd.Flags().Float64VarP(&segLength, "length", "l", 0, "Segment length [required]")
	segmentCmd.Flags().StringVar(&segLengthUnit, "length-unit", "", "Length unit (defaults to the display system's: m or ft)")
	segmentCmd.Flags().StringVarP(&segMaterial, "material", "m", "", "Material name [required]")
	segmentCmd.Flags().Float64Var(&segFluid, "fluid-density", 0, "Density of the bore contents in kg/m³ (0 for an empty tube)")
	segmentCmd.Flags().BoolVar(&segJSON, "json", false, "Print the segment as JSON in SI units")

	segmentCmd.MarkFlagRequired("size")
	segmentCmd.MarkFlagRequired("thickness")
	segmentCmd.MarkFlagRequired("length")
	segmentCmd.MarkFlagRequired("material")
}

func runSegment(cmd *cobra.Command, args []string) error {
	sys := cfg.Units

	lengthUnit := sys.LengthUnit()
	if segLengthUnit != "" {
		u, err := units.ParseUnit(segLengthUnit)
		if err != nil {
			return err
		}
		lengthUnit = u
	}

	seg, err := tubing.Build(tubing.Input{
		Name:         segName,
		Kind:         catalog.Kind(segKind),
		Size:         segSize,
		Thickness:    segThickness,
		Length:       segLength,
		LengthUnit:   lengthUnit,
		Material:     segMaterial,
		FluidDensity: segFluid,
	})
	if err != nil {
		return err
	}

	if segJSON {
		return printJSON(seg)
	}

	printSegment(seg, sys)
	return nil
}

func printSegment(seg tubing.Segment, sys units.System) {
	d := seg.In(sys)
	du, lu, vu, mu := sys.DiameterUnit().Symbol(), sys.LengthUnit().Symbol(), sys.VolumeUnit().Symbol(), sys.MassUnit().Symbol()

	printBanner(fmt.Sprintf("SEGMENT CALCULATION - %s", sys.Label()))
	fmt.Printf("  Segment: %s\n\n", seg.Name)

	printHeading("SPECIFICATION")
	w := newTabWriter()
	fmt.Fprintf(w, "  Kind:\t%s\n", seg.Kind)
	fmt.Fprintf(w, "  Size:\t%s\n", seg.SizeLabel)
	fmt.Fprintf(w, "  Wall thickness:\t%s\n", seg.ThicknessLabel)
	fmt.Fprintf(w, "  Material:\t%s (%s)\n", seg.Material.Name, seg.Material.Family)
	fmt.Fprintf(w, "  Density:\t%.4g %s\n", d.Density, sys.DensityUnit().Symbol())
	w.Flush()
	fmt.Println()

	printHeading("GEOMETRY")
	w = newTabWriter()
	fmt.Fprintf(w, "  Outer diameter (OD):\t%.3f %s\n", d.OuterDiameter, du)
	fmt.Fprintf(w, "  Wall thickness (t):\t%.3f %s\n", d.WallThickness, du)
	fmt.Fprintf(w, "  Inner diameter (ID = OD - 2t):\t%.3f %s\n", d.InnerDiameter, du)
	fmt.Fprintf(w, "  Length:\t%.4f %s\n", d.Length, lu)
	w.Flush()
	fmt.Println()

	results := []string{
		fmt.Sprintf("Internal volume:  %.6e %s", d.InternalVolume, vu),
		fmt.Sprintf("Material volume:  %.6e %s", d.MaterialVolume, vu),
		fmt.Sprintf("Mass:             %.4f %s", d.Mass, mu),
	}
	if seg.FluidMassKg > 0 {
		results = append(results,
			fmt.Sprintf("Fluid mass:       %.4f %s", d.FluidMass, mu),
			fmt.Sprintf("Filled mass:      %.4f %s", d.Mass+d.FluidMass, mu),
		)
	}
	fmt.Print(diagram.DrawSummaryBox("RESULTS", results))
	fmt.Println()
}
