package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotube/internal/catalog"
	"github.com/alexiusacademia/gotube/internal/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information and catalog contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		if versionJSON {
			return printJSON(info)
		}

		fmt.Println(info.Short())
		fmt.Println("Tube and Pipe Segment Calculator")
		w := newTabWriter()
		fmt.Fprintf(w, "  Built:\t%s\n", info.BuildTime)
		fmt.Fprintf(w, "  Go:\t%s %s\n", info.GoVersion, info.Platform)
		fmt.Fprintf(w, "  Catalogs:\t%d tube sizes, %d pipe sizes, %d wall thicknesses, %d materials\n",
			len(catalog.Sizes(catalog.Tube)), len(catalog.Sizes(catalog.Pipe)),
			len(catalog.Thicknesses()), len(catalog.Materials()))
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build information as JSON")
}
