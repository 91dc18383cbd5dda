package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"labsim/labware"
	"labsim/logger"
	"labsim/plan"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <plan.yaml>",
	Short: "Run a pipetting plan and report the resulting volumes",
	Long: `Simulates every step of a plan file against the labware it declares.
On success the full volume history is printed. On overflow or underflow
the offending step is reported along with the state it left behind.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := plan.Load(args[0])
		if err != nil {
			return err
		}
		runner := plan.NewRunner(logger.New(logLevel), cfg.Presets)
		res, err := runner.Run(doc)
		if err != nil {
			var over *labware.OverflowError
			var under *labware.UnderflowError
			if res != nil && (errors.As(err, &over) || errors.As(err, &under)) {
				fmt.Fprintf(cmd.ErrOrStderr(), "plan is not feasible, state after %d committed steps:\n\n%s\n", res.Committed, res.Labware.Report())
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Labware.Report())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
