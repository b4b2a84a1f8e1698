package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotube/internal/catalog"
	"github.com/alexiusacademia/gotube/internal/units"
)

var (
	catalogKind   string
	catalogFamily string
	catalogJSON   bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in size, thickness and material catalogs",
	Long: `List the reference catalogs segments are resolved against.

Subcommands:
  sizes        - Outer diameters of standard tube or NPS pipe sizes
  thicknesses  - Standard wall thicknesses
  materials    - Materials and their densities

Labels are matched with or without the trailing inch mark, so
1/2" and 1/2 name the same tube size.`,
}

var catalogSizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List tube or pipe sizes",
	Long: `List standard sizes with their outer diameters.

Examples:
  gotube catalog sizes
  gotube catalog sizes --kind pipe`,
	RunE: runCatalogSizes,
}

var catalogThicknessesCmd = &cobra.Command{
	Use:   "thicknesses",
	Short: "List wall thicknesses",
	RunE:  runCatalogThicknesses,
}

var catalogMaterialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List materials and densities",
	Long: `List catalog materials with their densities.

Examples:
  gotube catalog materials
  gotube catalog materials --family "nickel superalloy"`,
	RunE: runCatalogMaterials,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogSizesCmd, catalogThicknessesCmd, catalogMaterialsCmd)

	catalogCmd.PersistentFlags().BoolVar(&catalogJSON, "json", false, "Print the catalog as JSON")
	catalogSizesCmd.Flags().StringVarP(&catalogKind, "kind", "k", "tube", "Size kind: tube or pipe")
	catalogMaterialsCmd.Flags().StringVar(&catalogFamily, "family", "", "Only list materials of this family")
}

func runCatalogSizes(cmd *cobra.Command, args []string) error {
	kind, err := catalog.ParseKind(catalogKind)
	if err != nil {
		return err
	}
	sizes := catalog.Sizes(kind)
	if catalogJSON {
		return printJSON(sizes)
	}

	printBanner(fmt.Sprintf("%s SIZES", strings.ToUpper(string(kind))))
	w := newTabWriter()
	fmt.Fprintf(w, "  Size\tOD (mm)\tOD (in)\n")
	fmt.Fprintf(w, "  ────\t───────\t───────\n")
	for _, s := range sizes {
		fmt.Fprintf(w, "  %s\t%.3f\t%.4f\n", s.Label, s.OuterDiameterMM, s.OuterDiameterIn)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d sizes\n\n", len(sizes))
	return nil
}

func runCatalogThicknesses(cmd *cobra.Command, args []string) error {
	thicknesses := catalog.Thicknesses()
	if catalogJSON {
		return printJSON(thicknesses)
	}

	printBanner("WALL THICKNESSES")
	w := newTabWriter()
	fmt.Fprintf(w, "  Thickness\tmm\tin\n")
	fmt.Fprintf(w, "  ─────────\t──\t──\n")
	for _, t := range thicknesses {
		fmt.Fprintf(w, "  %s\t%.2f\t%.3f\n", t.Label, t.ThicknessMM, t.ThicknessIn)
	}
	w.Flush()
	fmt.Println()
	return nil
}

func runCatalogMaterials(cmd *cobra.Command, args []string) error {
	var materials []catalog.Material
	for _, m := range catalog.Materials() {
		if catalogFamily == "" || strings.EqualFold(string(m.Family), strings.TrimSpace(catalogFamily)) {
			materials = append(materials, m)
		}
	}
	if len(materials) == 0 {
		return fmt.Errorf("%w: material family %q", catalog.ErrNotFound, catalogFamily)
	}
	if catalogJSON {
		return printJSON(materials)
	}

	printBanner("MATERIALS")
	w := newTabWriter()
	fmt.Fprintf(w, "  Material\tFamily\tDensity (kg/m³)\tDensity (lb/in³)\n")
	fmt.Fprintf(w, "  ────────\t──────\t───────────────\t────────────────\n")
	for _, m := range materials {
		fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.4f\n", m.Name, m.Family, m.DensityKgPerM3, units.MustConvert(m.DensityKgPerM3, units.KilogramPerCubicMeter, units.PoundPerCubicInch))
	}
	w.Flush()
	fmt.Println()
	return nil
}
