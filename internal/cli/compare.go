package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dapub1013/deadstream/internal/catalog"
	"github.com/dapub1013/deadstream/internal/report"
)

var (
	compareEvent string
	barWidth     int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Print the ranked comparison table for one event",
	Long: `Scores every recording of the event under the active weight profile
and prints a ranked table with the total score, all five component
scores, and a proportional bar per candidate, plus the winner and its
margin over the runner-up.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := activeProfile()
		if err != nil {
			return err
		}

		store, err := catalog.LoadFile(cmd.Context(), catalogPath)
		if err != nil {
			return err
		}
		ev, err := store.Event(cmd.Context(), compareEvent)
		if err != nil {
			return err
		}

		ranking, err := svc.SelectBestRaw(cmd.Context(), ev.Records, p)
		if err != nil {
			return err
		}

		width := barWidth
		if width <= 0 {
			width = cfg.BarWidth
		}
		r := report.New(report.WithBarWidth(width))

		fmt.Fprintf(cmd.OutOrStdout(), "event %s, profile %s, %d candidates\n\n", ev.ID, p.Name(), len(ev.Records))
		fmt.Fprint(cmd.OutOrStdout(), r.Render(ranking))
		return nil
	},
}

func init() { //nolint:gochecknoinits // cobra command registration
	compareCmd.Flags().StringVar(&compareEvent, "event", "", "event identifier or date, e.g. 1977-05-08")
	compareCmd.Flags().IntVar(&barWidth, "bar-width", 0, "score bar width in characters (default from config)")
	_ = compareCmd.MarkFlagRequired("event")
	rootCmd.AddCommand(compareCmd)
}
