package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"labsim/labware"
)

var (
	describePreset  string
	describeRows    int
	describeColumns int
	describeMin     float64
	describeMax     float64
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the well map of a labware geometry",
	Long: `Prints every well id with its grid coordinates and its column-major
position number, for a built-in or configured preset or an explicit
geometry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		preset := describePreset
		if preset == "" && describeRows == 0 {
			preset = cfg.DefaultPreset
		}

		var lw *labware.Labware
		switch {
		case preset != "":
			p, ok := cfg.Presets[preset]
			if !ok {
				p, ok = labware.PresetNamed(preset)
			}
			if !ok {
				return fmt.Errorf("unknown labware preset %q", preset)
			}
			lw, err = p.New(preset)
		case describeRows > 0 && describeColumns > 0:
			lw, err = labware.New("labware", describeRows, describeColumns, describeMin, describeMax)
		default:
			return fmt.Errorf("need --preset or --rows and --columns")
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WELL\tROW\tCOLUMN\tPOSITION")
		indices := lw.Indices()
		positions := lw.Positions()
		for _, id := range lw.Wells() {
			idx := indices[id]
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", id, idx.Row, idx.Column, positions[id])
		}
		return w.Flush()
	},
}

func init() {
	describeCmd.Flags().StringVar(&describePreset, "preset", "", "labware preset name")
	describeCmd.Flags().IntVar(&describeRows, "rows", 0, "number of rows")
	describeCmd.Flags().IntVar(&describeColumns, "columns", 0, "number of columns")
	describeCmd.Flags().Float64Var(&describeMin, "min-volume", 0, "minimum working volume")
	describeCmd.Flags().Float64Var(&describeMax, "max-volume", 0, "maximum working volume")
	rootCmd.AddCommand(describeCmd)
}
