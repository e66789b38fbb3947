package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestTypeIsValid(t *testing.T) {
	valid := []Type{SQLiteBackend, FileBackend, MemoryBackend}
	for _, bt := range valid {
		if !bt.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", bt)
		}
	}

	invalid := []Type{"", "postgres", "SQLITE", "redis"}
	for _, bt := range invalid {
		if bt.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", bt)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid sqlite", Config{Type: SQLiteBackend, SQLiteDBPath: "./data/test.db"}, false},
		{"sqlite missing path", Config{Type: SQLiteBackend}, true},
		{"valid file", Config{Type: FileBackend, DataDirectory: "./data"}, false},
		{"file missing directory", Config{Type: FileBackend}, true},
		{"valid memory", Config{Type: MemoryBackend}, false},
		{"unknown type", Config{Type: "redis"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewCreatesWorkingStores(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	configs := []Config{
		{Type: MemoryBackend},
		{Type: FileBackend, DataDirectory: filepath.Join(dir, "files")},
		{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(dir, "test.db")},
	}

	for _, cfg := range configs {
		t.Run(cfg.Type.String(), func(t *testing.T) {
			result, err := New(nil, cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if result.Cleanup != nil {
				defer result.Cleanup()
			}

			if err := result.Store.Set(ctx, "k", "v"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			value, ok, err := result.Store.Get(ctx, "k")
			if err != nil || !ok || value != "v" {
				t.Errorf("Get() = (%q, %v, %v), want (\"v\", true, nil)", value, ok, err)
			}
		})
	}
}
