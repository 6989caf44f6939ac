package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/errs"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wagesync",
	Short: "Sync BLS occupational wage statistics into the site database",
	Long: "wagesync pulls Occupational Employment and Wage Statistics from the BLS\n" +
		"time-series API or from the published OES spreadsheet and upserts them\n" +
		"into the relational store the website reads from.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger := logging.New(cmd.ErrOrStderr(), verbose)
		ctx := logging.WithLogger(cmd.Context(), logger)
		ctx = logging.WithAttrs(ctx, slog.String("app", "wagesync"))
		cmd.SetContext(ctx)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	ctx = logging.WithLogger(ctx, logging.New(rootCmd.ErrOrStderr(), false))
	ctx = logging.WithAttrs(ctx, slog.String("app", "wagesync"))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Error(ctx, "command execution failed", slog.Any("err", errs.Loggable(err)))
		return errs.Wrap(err, "execute root command")
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/config.yaml", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
