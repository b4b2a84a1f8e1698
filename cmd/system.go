package cmd

import (
	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Whole-run totals, profile and reports",
	Long: `Analyze a run of tube or pipe segments defined in a YAML, JSON
or Excel file.

Subcommands:
  analyze  - Build every segment, report totals and export results

Segments are laid out in order. A segment marked continuous starts
where the previous one ended; any other segment, including the first,
is drawn after a separation gap.

Example YAML file structure:
name: Oxidizer feed
units: imperial
segments:
  - name: Tank outlet
    kind: tube
    size: 1/2"
    thickness: 0.035"
    length: 4
    material: Stainless Steel 316L
  - name: Valve run
    kind: tube
    size: 1/2"
    thickness: 0.049"
    length: 18
    length_unit: in
    material: Inconel 625
    continuous: true

Excel files use the first sheet with the header row
Name | Kind | Size | Thickness | Length | Unit | Material | Continuous`,
}

func init() {
	rootCmd.AddCommand(systemCmd)
}
