package db

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestConnectSQLiteAndMigrate(t *testing.T) {
	ctx := context.Background()
	svc, err := Connect(ctx, testLogger(t), Options{
		Driver: DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "contacts"),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer svc.Close()

	if err := AutoMigrateAll(svc.DB()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !svc.DB().Migrator().HasIndex("contacts", "idx_contacts_mobile") {
		t.Fatalf("expected unique mobile index")
	}
	if !svc.DB().Migrator().HasIndex("groups", "idx_groups_name") {
		t.Fatalf("expected unique group name index")
	}
	if err := svc.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestConnectConfigErrorsAreNotRetried(t *testing.T) {
	cases := []Options{
		{Driver: "mysql", URL: "whatever"},
		{Driver: DriverPostgres, URL: "postgres://%zz"},
	}
	for _, opts := range cases {
		opts.ConnectTimeout = 10 * time.Second
		start := time.Now()
		_, err := Connect(context.Background(), testLogger(t), opts)
		if err == nil {
			t.Fatalf("%s: expected error", opts.Driver)
		}
		if !strings.Contains(err.Error(), "after 1 attempts") {
			t.Fatalf("%s: expected a single attempt, got %v", opts.Driver, err)
		}
		if time.Since(start) > 5*time.Second {
			t.Fatalf("%s: config error should fail fast", opts.Driver)
		}
	}
}

func TestNilServiceIsSafe(t *testing.T) {
	var s *Service
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error on nil service")
	}
}
