package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"labsim/labware"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in and configured labware presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		merged := make(map[string]labware.Preset)
		for _, name := range labware.PresetNames() {
			merged[name], _ = labware.PresetNamed(name)
		}
		for name, p := range cfg.Presets {
			merged[name] = p
		}
		names := make([]string, 0, len(merged))
		for name := range merged {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PRESET\tROWS\tCOLUMNS\tMIN\tMAX")
		for _, name := range names {
			p := merged[name]
			fmt.Fprintf(w, "%s\t%d\t%d\t%g\t%g\n", name, p.Rows, p.Columns, p.MinVolume, p.MaxVolume)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
