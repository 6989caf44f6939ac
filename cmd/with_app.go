package cmd

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"wagesync/internal/bootstrap"
	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/errs"
	"wagesync/internal/usecase/ingest"
)

func withApp(run func(cmd *cobra.Command, app *bootstrap.App, svc *ingest.Service) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dryRun := isDryRun(cmd)
		ctx := logging.WithAttrs(
			cmd.Context(),
			slog.String("command", cmd.CommandPath()),
			slog.String("config_file", cfgFile),
			slog.Bool("dry_run", dryRun),
		)

		module := bootstrap.Module
		if dryRun {
			module = bootstrap.DryRunModule
		}
		fxLogger := fx.NopLogger
		if verbose {
			fxLogger = fx.Options()
		}

		var app *bootstrap.App
		var svc *ingest.Service
		cleanup := &bootstrap.Cleanup{}
		fxApp := fx.New(
			module,
			fxLogger,
			fx.Supply(cleanup),
			fx.Provide(func() context.Context { return ctx }),
			fx.Provide(
				fx.Annotate(
					func() string { return cfgFile },
					fx.ResultTags(`name:"configFile"`),
				),
				fx.Annotate(
					func() io.Writer { return cmd.OutOrStdout() },
					fx.ResultTags(`name:"dryRunOut"`),
				),
			),
			fx.Populate(&app, &svc),
		)

		if err := fxApp.Err(); err != nil {
			if cleanupErr := cleanup.Run(); cleanupErr != nil {
				logging.Warn(ctx, "release partially built application", slog.Any("err", errs.Loggable(cleanupErr)))
			}
			logging.Error(ctx, "bootstrap application failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "build fx application")
		}

		startCtx, cancelStart := context.WithTimeout(ctx, 10*time.Second)
		defer cancelStart()
		if err := fxApp.Start(startCtx); err != nil {
			logging.Error(ctx, "bootstrap application failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "start fx application")
		}

		defer func() {
			stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancelStop()
			if err := fxApp.Stop(stopCtx); err != nil {
				logging.Error(ctx, "fx application stop failed", slog.Any("err", errs.Loggable(err)))
			}
		}()

		cmd.SetContext(ctx)
		if err := run(cmd, app, svc); err != nil {
			return errs.Wrap(err, "run command")
		}
		return nil
	}
}

// isDryRun is false for commands that do not define --dry-run.
func isDryRun(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("dry-run")
	return err == nil && v
}
