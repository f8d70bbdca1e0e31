package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dapub1013/deadstream/internal/catalog"
)

var (
	genEvents     int
	genRecordings int
	genOutput     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic catalog dump",
	Long: `Writes a synthetic catalog with deliberately messy metadata (mixed
source spellings, missing ratings, partial lineage) for exercising the
compare and select commands.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		events := catalog.Generate(cmd.Context(), genEvents, genRecordings)
		if err := catalog.WriteFile(genOutput, events); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d events to %s\n", len(events), genOutput)
		return nil
	},
}

func init() { //nolint:gochecknoinits // cobra command registration
	generateCmd.Flags().IntVar(&genEvents, "events", 20, "number of events to generate")
	generateCmd.Flags().IntVar(&genRecordings, "recordings", 8, "max recordings per event")
	generateCmd.Flags().StringVar(&genOutput, "output", "catalog.json", "output file (.json, .yaml)")
	rootCmd.AddCommand(generateCmd)
}
