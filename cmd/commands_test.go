package main

import (
	"os"
	"testing"
)

func TestRootRegistersCommands(t *testing.T) {
	root := rootCmd()
	for _, name := range []string{"serve", "migrate", "watch"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("command %q not registered: %v", name, err)
		}
	}
}

func TestMigrateWithSQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("LOG_MODE", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_URL", dir+"/contacts.db")

	root := rootCmd()
	root.SetArgs([]string{"migrate"})
	if err := root.Execute(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := os.Stat(dir + "/contacts.db"); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}
