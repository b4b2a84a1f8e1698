package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotube/internal/config"
	"github.com/alexiusacademia/gotube/internal/log"
	"github.com/alexiusacademia/gotube/internal/units"
	"github.com/alexiusacademia/gotube/internal/version"
)

var (
	unitsFlag   string
	debugFlag   bool
	envFileFlag string

	// cfg is resolved once per invocation before any subcommand runs
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gotube",
	Short: "Tube and Pipe Segment Calculator",
	Long: `gotube - Go Tube and Pipe Segment Calculator

A CLI tool for sizing runs of aerospace tubing and NPS pipe.

This tool helps fluid-system engineers compute:
  - Inner diameter, internal and material volume, and mass per segment
  - Totals for a whole run of segments
  - A profile of the run along its length, with separation gaps
  - Reports as Excel, CSV, PDF or MessagePack

Sizes, wall thicknesses and material densities come from the built-in
catalogs; see 'gotube catalog'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFileFlag)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("units") {
			sys, err := units.ParseSystem(unitsFlag)
			if err != nil {
				return err
			}
			cfg.Units = sys
		}
		if debugFlag {
			cfg.Debug = true
		}

		if err := log.Init(cfg.Debug); err != nil {
			return err
		}
		log.Debugw("configuration loaded", "units", cfg.Units, "output_dir", cfg.OutputDir)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotube v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Tube and Pipe Segment Calculator                     ║")
		fmt.Printf("  ║   %-56s║\n", fmt.Sprintf("%s ©  %s", version.Author, version.Year))
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the geometry, volume and mass of tubing runs")
		fmt.Println("  built from standard tube and pipe sizes.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Tube and NPS pipe size, wall thickness and material catalogs")
		fmt.Println("    • Single segment calculation")
		fmt.Println("    • Whole-system totals, statistics and profile")
		fmt.Println("    • Metric and imperial display units")
		fmt.Println("    • Excel, CSV, PDF, MessagePack and JSON output")
		fmt.Println()
		fmt.Println("  Use 'gotube --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// displaySystem is the configured unit system when the user chose one by
// flag or environment, otherwise fallback.
func displaySystem(fallback units.System) units.System {
	if rootCmd.PersistentFlags().Changed("units") || os.Getenv(config.EnvUnits) != "" {
		return cfg.Units
	}
	return fallback
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		log.Sync()
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVarP(&unitsFlag, "units", "u", "metric", "Display unit system: metric or imperial (env GOTUBE_UNITS)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging to stderr (env GOTUBE_DEBUG)")
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", config.DefaultEnvFile, "Optional dotenv file with GOTUBE_* settings")
}
