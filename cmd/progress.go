package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"wagesync/internal/errs"
	"wagesync/internal/usecase/ingest"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// progressPrinter renders ingest progress as one line per fetch.
type progressPrinter struct {
	out io.Writer
}

var _ ingest.Reporter = (*progressPrinter)(nil)

func newProgressPrinter(out io.Writer) *progressPrinter {
	return &progressPrinter{out: out}
}

func (p *progressPrinter) FetchStarted(occupation string, geography string) {
	fmt.Fprintf(p.out, "fetching %s @ %s... ", occupation, geography)
}

func (p *progressPrinter) FetchFinished(_ string, _ string, records int, err error) {
	if err != nil {
		fmt.Fprintf(p.out, "%s %v\n", failStyle.Render("✗"), err)
		return
	}
	fmt.Fprintf(p.out, "%s (%d records)\n", okStyle.Render("✓"), records)
}

func (p *progressPrinter) ImportScanned(sheet string, rows int) {
	fmt.Fprintln(p.out, dimStyle.Render(fmt.Sprintf("scanned %d rows from %q", rows, sheet)))
}

func (p *progressPrinter) SyncSummary(result ingest.SyncResult) error {
	_, err := fmt.Fprintf(p.out, "\n%s %d pairs (%d failed), %d records fetched, %s saved, %s errored\n",
		headerStyle.Render("sync complete:"),
		result.Pairs,
		result.FailedPairs,
		result.Fetched,
		okStyle.Render(strconv.Itoa(result.Saved)),
		errorCount(result.Errored),
	)
	return errs.Wrap(err, "write sync summary")
}

func (p *progressPrinter) ImportSummary(result ingest.ImportResult) error {
	_, err := fmt.Fprintf(p.out,
		"\n%s %d rows from %q\n  wages:      %d matched, %s saved, %s errored\n  industries: %d matched, %s saved, %s errored\n",
		headerStyle.Render("import complete:"),
		result.Rows,
		result.Sheet,
		result.WageRows,
		okStyle.Render(strconv.Itoa(result.Wages.Saved)),
		errorCount(result.Wages.Errored),
		result.IndustryRows,
		okStyle.Render(strconv.Itoa(result.Industries.Saved)),
		errorCount(result.Industries.Errored),
	)
	return errs.Wrap(err, "write import summary")
}

func errorCount(n int) string {
	if n == 0 {
		return dimStyle.Render("0")
	}
	return failStyle.Render(strconv.Itoa(n))
}

func formatCount(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func formatMoney(v *float64) string {
	if v == nil {
		return "-"
	}
	return "$" + strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatPercent(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64) + "%"
}
