package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"wagesync/internal/bootstrap"
	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/errs"
	"wagesync/internal/usecase/ingest"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch wage series from the BLS API and upsert them",
	Example: "  wagesync sync\n" +
		"  wagesync sync --professions registered-nurse,electrician --states ca,tx\n" +
		"  wagesync sync --all-professions --all-states --start-year 2021 --end-year 2024",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *ingest.Service) error {
		ctx := cmd.Context()

		professions, _ := cmd.Flags().GetStringSlice("professions")
		allProfessions, _ := cmd.Flags().GetBool("all-professions")
		states, _ := cmd.Flags().GetStringSlice("states")
		allStates, _ := cmd.Flags().GetBool("all-states")
		startYear, _ := cmd.Flags().GetInt("start-year")
		endYear, _ := cmd.Flags().GetInt("end-year")

		progress := newProgressPrinter(cmd.OutOrStdout())
		result, err := svc.Sync(ctx, ingest.SyncInput{
			Professions:    professions,
			AllProfessions: allProfessions,
			States:         states,
			AllStates:      allStates,
			StartYear:      startYear,
			EndYear:        endYear,
		}, progress)
		if err != nil {
			logging.Error(ctx, "sync failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "sync wage series")
		}

		return progress.SyncSummary(result)
	}),
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringSlice("professions", nil, "Occupation slugs to sync (comma-separated)")
	syncCmd.Flags().Bool("all-professions", false, "Sync every supported occupation")
	syncCmd.Flags().StringSlice("states", nil, "State codes to sync in addition to the nationwide aggregate")
	syncCmd.Flags().Bool("all-states", false, "Sync every state")
	syncCmd.Flags().Int("start-year", 0, "First data year (defaults to bls.start_year)")
	syncCmd.Flags().Int("end-year", 0, "Last data year (defaults to bls.end_year)")
	syncCmd.MarkFlagsMutuallyExclusive("professions", "all-professions")
	syncCmd.MarkFlagsMutuallyExclusive("states", "all-states")
}
