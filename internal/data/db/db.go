package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Options struct {
	Driver string
	URL    string
	// Name overrides the database named in URL. For sqlite it names the file
	// when URL is empty.
	Name           string
	ConnectTimeout time.Duration
}

// Service owns the single process-wide *gorm.DB handle.
type Service struct {
	db    *gorm.DB
	sqlDB *sql.DB
	log   *logger.Logger
}

// Connect opens the store and pings it, retrying with exponential backoff
// until ConnectTimeout elapses. Callers treat an error as fatal.
func Connect(ctx context.Context, logg *logger.Logger, opts Options) (*Service, error) {
	serviceLog := logg.With("service", "DBService", "driver", opts.Driver)

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	attempt := 0
	svc, err := backoff.Retry(ctx, func() (*Service, error) {
		attempt++
		s, err := open(ctx, serviceLog, opts)
		if err != nil {
			serviceLog.Warn("store connection attempt failed", "attempt", attempt, "error", err)
			if isConfigError(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return s, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", opts.Driver, attempt, err)
	}
	serviceLog.Info("store connected", "attempts", attempt)
	return svc, nil
}

type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func isConfigError(err error) bool {
	var ce configError
	return errors.As(err, &ce)
}

func open(ctx context.Context, serviceLog *logger.Logger, opts Options) (*Service, error) {
	var dialector gorm.Dialector
	var sqlDB *sql.DB

	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverPostgres:
		connCfg, err := pgx.ParseConfig(opts.URL)
		if err != nil {
			return nil, configError{fmt.Errorf("parse postgres url: %w", err)}
		}
		if name := strings.TrimSpace(opts.Name); name != "" {
			connCfg.Database = name
		}
		sqlDB = stdlib.OpenDB(*connCfg)
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(opts))
	default:
		return nil, configError{fmt.Errorf("unsupported db driver %q", opts.Driver)}
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormLog(),
	})
	if err != nil {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	if sqlDB == nil {
		if sqlDB, err = db.DB(); err != nil {
			return nil, err
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Service{db: db, sqlDB: sqlDB, log: serviceLog}, nil
}

func sqliteDSN(opts Options) string {
	if u := strings.TrimSpace(opts.URL); u != "" {
		return u
	}
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = "contacts"
	}
	return name + ".db"
}

func gormLog() gormLogger.Interface {
	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func (s *Service) DB() *gorm.DB { return s.db }

// Ping reports whether the store is reachable right now.
func (s *Service) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("store not initialized")
	}
	return s.sqlDB.PingContext(ctx)
}

func (s *Service) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
