package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dapub1013/deadstream/internal/domain/model"
	"github.com/dapub1013/deadstream/internal/domain/profile"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in weight presets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

		fmt.Fprint(tw, "PRESET")
		for _, c := range model.Components() {
			fmt.Fprintf(tw, "\t%s", c)
		}
		fmt.Fprintln(tw)

		for _, name := range profile.PresetNames() {
			p, err := profile.Preset(name)
			if err != nil {
				return err
			}
			fmt.Fprint(tw, name)
			for _, c := range model.Components() {
				fmt.Fprintf(tw, "\t%.2f", p.Weight(c))
			}
			fmt.Fprintln(tw)
		}

		return tw.Flush()
	},
}

func init() { //nolint:gochecknoinits // cobra command registration
	rootCmd.AddCommand(presetsCmd)
}
