package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"wagesync/internal/bootstrap"
	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/errs"
	"wagesync/internal/usecase/ingest"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an OES spreadsheet dump (.xlsx or .csv)",
	Example: "  wagesync import --file all_data_M_2024.xlsx --year 2024\n" +
		"  wagesync import --file all_data_M_2024.xlsx --year 2024 --dry-run",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *ingest.Service) error {
		ctx := cmd.Context()

		path, _ := cmd.Flags().GetString("file")
		year, _ := cmd.Flags().GetInt("year")
		marker, _ := cmd.Flags().GetString("sheet-marker")

		progress := newProgressPrinter(cmd.OutOrStdout())
		result, err := svc.Import(ctx, ingest.ImportInput{
			Path:        path,
			Year:        year,
			SheetMarker: marker,
		}, progress)
		if err != nil {
			logging.Error(ctx, "import failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "import spreadsheet")
		}

		return progress.ImportSummary(result)
	}),
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().String("file", "", "Path to the OES spreadsheet")
	importCmd.Flags().Int("year", 0, "Data year of the spreadsheet (defaults to import.year)")
	importCmd.Flags().String("sheet-marker", "", "Sheet name fragment to prefer (defaults to import.sheet_marker)")
	importCmd.Flags().Bool("dry-run", false, "Print intended writes without opening the database")
	_ = importCmd.MarkFlagRequired("file")
}
