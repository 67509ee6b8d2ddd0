package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/contacts-backend/internal/app"
	"github.com/yungbote/contacts-backend/internal/data/db"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
	"github.com/yungbote/contacts-backend/internal/realtime/bus"
	"github.com/yungbote/contacts-backend/internal/services"
)

var configFile string

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "contacts",
		Short:         "Contact and group management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				return os.Setenv("CONFIG_FILE", configFile)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file (overrides CONFIG_FILE)")
	root.AddCommand(serveCmd(), migrateCmd(), watchCmd())
	return root
}

// setup loads config and builds the logger every command starts from.
func setup() (app.Config, *logger.Logger, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return app.Config{}, nil, err
	}
	log, err := app.NewLogger(cfg)
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			a, err := app.New(cmd.Context(), log, cfg)
			if err != nil {
				log.Error("startup failed", "error", err)
				return err
			}
			defer a.Close()
			return a.Serve(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()
			if err := cfg.Validate(); err != nil {
				return err
			}

			store, err := app.Connect(cmd.Context(), log, cfg)
			if err != nil {
				log.Error("startup failed", "error", err)
				return err
			}
			defer store.Close()

			if err := db.AutoMigrateAll(store.DB()); err != nil {
				return err
			}
			log.Info("schema up to date", "driver", cfg.DBDriver)
			return nil
		},
	}
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Log contact and group change events as they are published",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			b, err := bus.NewRedisBus(ctx, log, bus.RedisOptions{Addr: cfg.RedisAddr, Channel: cfg.RedisChannel})
			if err != nil {
				return err
			}
			defer b.Close()

			watchLog := log.With("component", "watch")
			if err := b.StartForwarder(ctx, func(ev services.ChangeEvent) {
				watchLog.Info("change event", "kind", ev.Kind, "entity_id", ev.EntityID.String(), "occurred_at", ev.OccurredAt)
			}); err != nil {
				return err
			}
			watchLog.Info("watching change events", "channel", cfg.RedisChannel)
			<-ctx.Done()
			return nil
		},
	}
}
