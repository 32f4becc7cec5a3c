package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/guttosm/maps-cache-service/config"
	"github.com/guttosm/maps-cache-service/internal/app"
	"github.com/guttosm/maps-cache-service/internal/service"
)

// flags holds the command line overrides shared by every command.
type flags struct {
	configFile string
	port       string
	storage    string
	logLevel   string
}

func (f *flags) load() (config.Config, error) {
	cfg, err := config.LoadWithOverrides(map[string]string{
		"CONFIG_FILE":     f.configFile,
		"PORT":            f.port,
		"STORAGE_BACKEND": f.storage,
		"LOG_LEVEL":       f.logLevel,
	})
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid configuration")
	}
	app.InitializeLogger(cfg.Log)
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "maps-cache",
		Short:         "Caching proxy for Google Maps lookups",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), f)
		},
	}
	root.PersistentFlags().StringVar(&f.configFile, "config", "", "config file (overrides CONFIG_FILE)")
	root.PersistentFlags().StringVar(&f.storage, "storage", "", "storage backend: sqlite, postgres, mongodb or memory")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), f)
		},
	}
	serve.Flags().StringVar(&f.port, "port", "", "listen port")
	root.Flags().StringVar(&f.port, "port", "", "listen port")

	root.AddCommand(
		serve,
		newCacheCommand(f, "stats", "Print entry counts and sizes per category", func(ctx context.Context, c *service.MapsCache) interface{} {
			return c.GetCacheStats()
		}),
		newCacheCommand(f, "sweep", "Remove expired entries from every category", func(ctx context.Context, c *service.MapsCache) interface{} {
			return map[string]int{"removed": c.CleanExpiredEntries(ctx)}
		}),
		newCacheCommand(f, "clear", "Remove every cached entry", func(ctx context.Context, c *service.MapsCache) interface{} {
			c.ClearAllCaches(ctx)
			return map[string]string{"message": "all caches cleared"}
		}),
	)
	return root
}

func runServe(ctx context.Context, f *flags) error {
	cfg, err := f.load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.InitializeApp(ctx, cfg)
	defer func() {
		if err := application.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	writeTimeout := cfg.Server.RequestTimeout + cfg.Server.RequestTimeout/2
	server := app.NewServer(application.Router, cfg.Server.Port, writeTimeout)
	return server.Run(ctx)
}

// newCacheCommand builds a one-shot maintenance command over the configured
// storage. The result is printed as JSON.
func newCacheCommand(f *flags, use, short string, run func(context.Context, *service.MapsCache) interface{}) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			// No background sweep for one-shot commands.
			cfg.Cache.SweepInterval = 0

			ctx := cmd.Context()
			storage, err := app.OpenStorage(ctx, cfg.Storage)
			if err != nil {
				return errors.Wrapf(err, "failed to open %s storage", cfg.Storage.Backend)
			}
			defer func() { _ = storage.Close(context.Background()) }()

			mapsCache := app.InitializeCache(ctx, cfg.Cache, storage.Store)
			defer mapsCache.Stop()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(run(ctx, mapsCache))
		},
	}
}
