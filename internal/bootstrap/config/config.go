package config

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"wagesync/internal/bootstrap/logging"
	"wagesync/internal/errs"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	BLS      BLSConfig      `mapstructure:"bls"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Import   ImportConfig   `mapstructure:"import"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type BLSConfig struct {
	APIURL       string        `mapstructure:"api_url"`
	APIKey       string        `mapstructure:"api_key"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
	Timeout      time.Duration `mapstructure:"timeout"`
	StartYear    int           `mapstructure:"start_year"`
	EndYear      int           `mapstructure:"end_year"`
}

type SyncConfig struct {
	DefaultProfessions []string `mapstructure:"default_professions"`
}

type ImportConfig struct {
	SheetMarker string `mapstructure:"sheet_marker"`
	Year        int    `mapstructure:"year"`
}

func Load(ctx context.Context, configFile string) (Config, error) {
	if ctx == nil {
		return Config{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Config{}, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.config"))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errs.Wrap(err, "load .env")
	}

	v := viper.New()
	setDefaults(v, time.Now())

	v.SetEnvPrefix("WAGESYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("bls.api_key", "WAGESYNC_BLS_API_KEY", "BLS_API_KEY"); err != nil {
		return Config{}, errs.Wrap(err, "bind bls api key env")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			logging.Warn(logCtx, "config file not found, fallback to defaults and env", slog.String("path", configFile))
		} else {
			return Config{}, errs.Wrap(err, "read config")
		}
	} else {
		logging.Info(logCtx, "using config file", slog.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errs.Wrap(err, "unmarshal config")
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.BLS.APIKey) == "" {
		logging.Warn(logCtx, "BLS registration key is not set; requests fall back to the unregistered rate limit")
	}

	logging.Info(
		logCtx,
		"config loaded",
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Duration("bls_request_delay", cfg.BLS.RequestDelay),
	)

	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	if strings.TrimSpace(c.BLS.APIURL) == "" {
		return errors.New("bls.api_url is required")
	}
	if c.BLS.RequestDelay < 0 {
		return errors.New("bls.request_delay must not be negative")
	}
	if c.BLS.StartYear > c.BLS.EndYear {
		return errors.New("bls.start_year must not be after bls.end_year")
	}
	return nil
}

func setDefaults(v *viper.Viper, now time.Time) {
	lastPublished := now.Year() - 1

	v.SetDefault("app.name", "wagesync")
	v.SetDefault("app.env", "local")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/wages.sqlite")
	v.SetDefault("bls.api_url", "https://api.bls.gov/publicAPI/v2/timeseries/data/")
	v.SetDefault("bls.request_delay", time.Second)
	v.SetDefault("bls.timeout", 30*time.Second)
	v.SetDefault("bls.start_year", lastPublished-2)
	v.SetDefault("bls.end_year", lastPublished)
	v.SetDefault("sync.default_professions", []string{
		"registered-nurse",
		"software-developer",
		"electrician",
		"plumber",
		"truck-driver",
	})
	v.SetDefault("import.sheet_marker", "may")
	v.SetDefault("import.year", lastPublished)
}
