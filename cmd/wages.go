package cmd

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wagesync/internal/bootstrap"
	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/errs"
	"wagesync/internal/usecase/ingest"
)

var wagesCmd = &cobra.Command{
	Use:   "wages",
	Short: "Inspect stored wage statistics",
}

var wagesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List stored rows for one occupation",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *ingest.Service) error {
		ctx := cmd.Context()

		slug, _ := cmd.Flags().GetString("profession")
		listing, err := svc.ListWages(ctx, slug)
		if err != nil {
			logging.Error(ctx, "list wages failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "list wages")
		}

		out := cmd.OutOrStdout()
		if _, err := fmt.Fprintf(out, "%s (%s)\n", headerStyle.Render(listing.Occupation.Title), listing.Occupation.Slug); err != nil {
			return errs.Wrap(err, "write wages output")
		}
		if len(listing.Wages) == 0 {
			_, err := fmt.Fprintln(out, dimStyle.Render("no wage rows stored"))
			return errs.Wrap(err, "write wages output")
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "GEOGRAPHY\tYEAR\tEMPLOYMENT\tHOURLY MEDIAN\tANNUAL MEDIAN\tANNUAL MEAN\tSOURCE\tUPDATED")
		for _, row := range listing.Wages {
			f := row.Figures
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				row.GeographyKey,
				row.Key.Year,
				formatCount(f.Employment),
				formatMoney(f.HourlyMedian),
				formatMoney(f.AnnualMedian),
				formatMoney(f.AnnualMean),
				row.Source,
				row.UpdatedAt,
			)
		}
		if err := tw.Flush(); err != nil {
			return errs.Wrap(err, "write wages output")
		}

		if len(listing.Industries) == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(out, "\n%s %d\n", headerStyle.Render("Top industries"), listing.Industries[0].Year); err != nil {
			return errs.Wrap(err, "write wages output")
		}
		tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAICS\tINDUSTRY\tEMPLOYMENT\tPCT OF TOTAL")
		for _, ind := range listing.Industries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ind.IndustryCode, ind.IndustryTitle, formatCount(ind.Employment), formatPercent(ind.PctOfTotal))
		}
		return errs.Wrap(tw.Flush(), "write wages output")
	}),
}

func init() {
	rootCmd.AddCommand(wagesCmd)
	wagesCmd.AddCommand(wagesShowCmd)

	wagesShowCmd.Flags().String("profession", "", "Occupation slug, for example registered-nurse")
	_ = wagesShowCmd.MarkFlagRequired("profession")
}
