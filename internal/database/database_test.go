package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ashwinyue/next-support/internal/config"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver  string
		name    string
		wantErr bool
	}{
		{driver: "mysql", name: "mysql"},
		{driver: "", name: "mysql"},
		{driver: "postgres", name: "postgres"},
		{driver: "sqlite", name: "sqlite"},
		{driver: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := Dialector(&config.DatabaseConfig{Driver: tt.driver})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unsupported driver")
				}
				return
			}
			if err != nil {
				t.Fatalf("Dialector() error = %v", err)
			}
			if d.Name() != tt.name {
				t.Errorf("Dialector().Name() = %q, want %q", d.Name(), tt.name)
			}
		})
	}
}

func TestNew_SQLiteIsIdempotent(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:   "sqlite",
			FilePath: filepath.Join(t.TempDir(), "chatbot.db"),
		},
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// 第二次迁移不应报错
	if err := Migrate(db.DB); err != nil {
		t.Fatalf("Migrate() second run error = %v", err)
	}

	for _, table := range []string{"users", "sessions", "chat_logs", "feedback", "intents"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s was not created", table)
		}
	}

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
