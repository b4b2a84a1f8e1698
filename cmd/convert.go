package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotube/internal/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE FROM TO",
	Short: "Convert a length, mass, volume or density between units",
	Long: `Convert a value between two units of the same dimension.

Units: mm, in, m, ft, kg, lb, m3, ft3, in3, kg/m3, lb/in3, lb/ft3
(common names such as "inches" or "feet" are also accepted).

Examples:
  gotube convert 0.065 in mm
  gotube convert 8000 kg/m3 lb/in3`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	from, err := units.ParseUnit(args[1])
	if err != nil {
		return err
	}
	to, err := units.ParseUnit(args[2])
	if err != nil {
		return err
	}

	result, err := units.Convert(value, from, to)
	if err != nil {
		return err
	}
	fmt.Printf("%g %s = %.6g %s\n", value, from.Symbol(), result, to.Symbol())
	return nil
}
