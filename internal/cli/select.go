package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dapub1013/deadstream/internal/catalog"
	"github.com/dapub1013/deadstream/internal/report"
)

var (
	selectEvent  string
	selectChoose string
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select the best recording of one event",
	Long: `Prints the automatically selected recording for the event under the
active weight profile. With --choose, the named recording is returned
verbatim without scoring; an identifier not present among the event's
recordings is an error, never substituted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := catalog.LoadFile(cmd.Context(), catalogPath)
		if err != nil {
			return err
		}
		ev, err := store.Event(cmd.Context(), selectEvent)
		if err != nil {
			return err
		}

		if selectChoose != "" {
			rec, err := svc.SelectManualRaw(cmd.Context(), ev.Records, selectChoose)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (manual)\n", rec.Identifier)
			return nil
		}

		p, err := activeProfile()
		if err != nil {
			return err
		}
		ranking, err := svc.SelectBestRaw(cmd.Context(), ev.Records, p)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), report.New().RenderWinner(ranking))
		return nil
	},
}

func init() { //nolint:gochecknoinits // cobra command registration
	selectCmd.Flags().StringVar(&selectEvent, "event", "", "event identifier or date, e.g. 1977-05-08")
	selectCmd.Flags().StringVar(&selectChoose, "choose", "", "manual override: recording identifier to select verbatim")
	_ = selectCmd.MarkFlagRequired("event")
	rootCmd.AddCommand(selectCmd)
}
