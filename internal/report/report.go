// Package report renders ranked comparisons as plain text for the operator
// CLI. It is pure presentation: it never mutates scoring state and its
// output is deterministic for a given ranking.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dapub1013/deadstream/internal/domain/model"
)

// Default rendering constants.
const (
	defaultBarWidth  = 40
	defaultPrecision = 2
	fullScore        = 100.0

	barFilled = '#'
	barEmpty  = '.'

	tabPadding = 2
)

// Column headers in presentation order, matching model.Components().
var componentHeaders = []string{"SRC", "FMT", "RTG", "LIN", "TPR"} //nolint:gochecknoglobals // fixed header row

// Reporter renders rankings into comparison tables.
type Reporter struct {
	barWidth  int
	precision int
}

// Option applies a configuration option to the Reporter.
type Option func(*Reporter)

// WithBarWidth sets the character width of a full 100-point bar.
func WithBarWidth(width int) Option {
	return func(r *Reporter) {
		if width > 0 {
			r.barWidth = width
		}
	}
}

// WithPrecision sets the number of decimals printed for scores.
func WithPrecision(precision int) Option {
	return func(r *Reporter) {
		if precision >= 0 {
			r.precision = precision
		}
	}
}

// New creates a Reporter with default configuration.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		barWidth:  defaultBarWidth,
		precision: defaultPrecision,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render produces the full comparison table for a ranking: one row per
// candidate with total, per-component scores, and a proportional bar,
// followed by the winner and the margin over the runner-up.
func (r *Reporter) Render(ranking model.Ranking) string {
	var sb strings.Builder

	tw := tabwriter.NewWriter(&sb, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "RANK\tIDENTIFIER\tTOTAL\t%s\tBAR\n", strings.Join(componentHeaders, "\t"))

	for i, entry := range ranking.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%.*f", i+1, entry.Identifier, r.precision, entry.Breakdown.Total)
		for _, component := range model.Components() {
			fmt.Fprintf(tw, "\t%.*f", r.precision, entry.Breakdown.Components[component])
		}
		fmt.Fprintf(tw, "\t%s\n", r.bar(entry.Breakdown.Total))
	}
	tw.Flush()

	if len(ranking.Entries) > 0 {
		fmt.Fprintf(&sb, "\nwinner: %s (%.*f)\n", ranking.Winner().Identifier, r.precision, ranking.Winner().Breakdown.Total)
		if len(ranking.Entries) > 1 {
			fmt.Fprintf(&sb, "margin: %.*f over %s\n", r.precision, ranking.Margin, ranking.Entries[1].Identifier)
		}
	}

	return sb.String()
}

// RenderWinner produces the one-line selection summary used by the select
// command.
func (r *Reporter) RenderWinner(ranking model.Ranking) string {
	w := ranking.Winner()
	if len(ranking.Entries) == 1 {
		return fmt.Sprintf("%s (%.*f)\n", w.Identifier, r.precision, w.Breakdown.Total)
	}
	return fmt.Sprintf("%s (%.*f, margin %.*f)\n", w.Identifier, r.precision, w.Breakdown.Total, r.precision, ranking.Margin)
}

// bar renders a proportional bar where a full barWidth represents 100.
func (r *Reporter) bar(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > fullScore {
		score = fullScore
	}
	filled := int(score/fullScore*float64(r.barWidth) + 0.5)
	return strings.Repeat(string(barFilled), filled) + strings.Repeat(string(barEmpty), r.barWidth-filled)
}
