package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/contacts-backend/internal/data/db"
	server "github.com/yungbote/contacts-backend/internal/http"
	"github.com/yungbote/contacts-backend/internal/observability"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
	"github.com/yungbote/contacts-backend/internal/realtime/bus"
	"github.com/yungbote/contacts-backend/internal/services"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	store        *db.Service
	events       bus.Bus
	otelShutdown func(context.Context) error
}

var initOTel = observability.InitOTel

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) (*logger.Logger, error) {
	opts := []logger.Option{logger.WithHashSalt(cfg.LogHashSalt)}
	if !cfg.LogRedactionEnabled {
		opts = append(opts, logger.WithoutRedaction())
	}
	return logger.New(cfg.LogMode, opts...)
}

// Connect opens the store described by cfg. Failure here is fatal for every
// command.
func Connect(ctx context.Context, log *logger.Logger, cfg Config) (*db.Service, error) {
	store, err := db.Connect(ctx, log, cfg.DBOptions())
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	return store, nil
}

// New connects to the store, migrates it and wires every layer. The caller
// owns the returned App and must Close it.
func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	otelShutdown := initOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.OtelEnabled,
		ServiceName: cfg.OtelServiceName,
		Environment: cfg.Environment,
		Endpoint:    cfg.OtelEndpoint,
		Insecure:    cfg.OtelInsecure,
		Headers:     observability.ParseHeaders(cfg.OtelHeaders),
		SampleRatio: cfg.OtelSampleRatio,
	})

	store, err := Connect(ctx, log, cfg)
	if err != nil {
		shutdownOTel(log, otelShutdown)
		return nil, err
	}
	theDB := store.DB()
	if err := db.AutoMigrateAll(theDB); err != nil {
		_ = store.Close()
		shutdownOTel(log, otelShutdown)
		return nil, err
	}

	events := wireEvents(ctx, log, cfg)
	var publisher services.EventPublisher = services.NoopPublisher()
	if events != nil {
		publisher = events
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(log, cfg, reposet, publisher)
	handlerset := wireHandlers(log, cfg, serviceset, store)
	router := wireRouter(log, cfg, handlerset)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		store:        store,
		events:       events,
		otelShutdown: otelShutdown,
	}, nil
}

// wireEvents returns nil when no broker is configured or reachable. Change
// events are best effort, so an unreachable broker never blocks startup.
func wireEvents(ctx context.Context, log *logger.Logger, cfg Config) bus.Bus {
	if cfg.RedisAddr == "" {
		return nil
	}
	b, err := bus.NewRedisBus(ctx, log, bus.RedisOptions{Addr: cfg.RedisAddr, Channel: cfg.RedisChannel})
	if err != nil {
		log.Warn("change events disabled", "error", err)
		return nil
	}
	return b
}

var errShutdownRequested = errors.New("shutdown requested")

// Serve runs the HTTP server until ctx is canceled or the process receives
// SIGINT/SIGTERM, then drains in-flight requests.
func (a *App) Serve(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}

	srv := server.NewServer(a.Router)
	addr := a.Cfg.Addr()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("Server listening", "addr", addr)
		if err := srv.Run(gctx, addr, a.Cfg.ShutdownTimeout); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sig)

		select {
		case s := <-sig:
			a.Log.Info("Shutdown signal received", "signal", s.String())
			return errShutdownRequested
		case <-gctx.Done():
			return nil
		}
	})

	err := g.Wait()
	if errors.Is(err, errShutdownRequested) {
		return nil
	}
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.Log.Warn("event bus close failed", "error", err)
		}
	}
	shutdownOTel(a.Log, a.otelShutdown)
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Log.Warn("store close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

func shutdownOTel(log *logger.Logger, shutdown func(context.Context) error) {
	if shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil && log != nil {
		log.Warn("otel shutdown failed", "error", err)
	}
}
