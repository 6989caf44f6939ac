package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"wagesync/internal/bootstrap/config"
	"wagesync/internal/bootstrap/database"
	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/errs"
	"wagesync/internal/infrastructure/bls"
	"wagesync/internal/infrastructure/persistence/dryrun"
	gormrepo "wagesync/internal/infrastructure/persistence/gormstore/repository"
	gormuow "wagesync/internal/infrastructure/persistence/gormstore/uow"
	"wagesync/internal/infrastructure/spreadsheet"
	"wagesync/internal/ports"
	"wagesync/internal/usecase/ingest"
)

// Module wires the database-backed runtime.
var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(
		fx.Annotate(
			gormrepo.NewWageRepository,
			fx.As(new(ports.WageRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			gormuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	ingestModule,
)

// DryRunModule wires the same services over the printing store. No
// database connection is opened.
var DryRunModule = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDryRunApp),
	fx.Provide(provideDryRunStore),
	fx.Provide(
		func(s *dryrun.Store) ports.WageRepository { return s },
		func(s *dryrun.Store) ports.UnitOfWork { return s },
	),
	ingestModule,
)

var ingestModule = fx.Options(
	fx.Provide(
		fx.Annotate(
			provideBLSClient,
			fx.As(new(ports.SeriesFetcher)),
		),
	),
	fx.Provide(
		fx.Annotate(
			func() spreadsheet.Opener { return spreadsheet.Opener{} },
			fx.As(new(ports.SheetOpener)),
		),
	),
	fx.Provide(provideIngestSettings),
	fx.Provide(ingest.NewService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

type databaseParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Ctx       context.Context
	Config    config.Config
	Cleanup   *Cleanup `optional:"true"`
}

func provideDatabase(p databaseParams) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, p.Config.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.Wrap(err, "get sql db")
	}

	closeDB := func() error {
		if err := sqlDB.Close(); err != nil {
			return err
		}
		logging.Debug(logCtx, "database connection closed")
		return nil
	}
	// OnStop only runs once the app has started; the cleanup covers a
	// graph that fails after this constructor.
	p.Cleanup.Add(closeDB)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error { return closeDB() },
	})

	return db, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}

func provideDryRunApp(cfg config.Config) *App {
	return &App{Config: cfg}
}

type dryRunParams struct {
	fx.In

	Out io.Writer `name:"dryRunOut"`
}

func provideDryRunStore(p dryRunParams) *dryrun.Store {
	return dryrun.NewStore(p.Out)
}

func provideBLSClient(ctx context.Context, cfg config.Config) *bls.Client {
	if cfg.BLS.APIKey == "" {
		logging.Debug(ctx, "bls client running without registration key")
	}
	return bls.NewClient(cfg.BLS)
}

func provideIngestSettings(cfg config.Config) ingest.Settings {
	return ingest.Settings{
		DefaultProfessions: cfg.Sync.DefaultProfessions,
		StartYear:          cfg.BLS.StartYear,
		EndYear:            cfg.BLS.EndYear,
		RequestDelay:       cfg.BLS.RequestDelay,
		SheetMarker:        cfg.Import.SheetMarker,
		ImportYear:         cfg.Import.Year,
	}
}
