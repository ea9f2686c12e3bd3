package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	got, err := ExpandPath("~/data/sidebar")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "data/sidebar") {
		t.Errorf("ExpandPath = %q", got)
	}

	got, err = ExpandPath("/absolute/path")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/absolute/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestLoad_AppliesOverrides(t *testing.T) {
	tmp := t.TempDir()
	configPath := filepath.Join(tmp, ConfigFileName)
	content := `
data_dir = "` + tmp + `/custom-data"
socket_path = "` + tmp + `/custom.sock"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{
		ConfigDir:  tmp,
		ConfigPath: configPath,
		DataDir:    "/default/data",
		SocketPath: "/default/sock",
	}
	if err := cfg.Load(); err != nil {
		t.Fatal(err)
	}

	if cfg.DataDir != filepath.Join(tmp, "custom-data") {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.SocketPath != filepath.Join(tmp, "custom.sock") {
		t.Errorf("SocketPath = %q", cfg.SocketPath)
	}
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg := &Config{
		ConfigPath: filepath.Join(t.TempDir(), ConfigFileName),
		DataDir:    "/default/data",
	}
	err := cfg.Load()
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if cfg.DataDir != "/default/data" {
		t.Errorf("DataDir changed: %q", cfg.DataDir)
	}
}

func TestDocumentPath(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	if got := cfg.DocumentPath(TasksFileName); got != "/data/tasks.json" {
		t.Errorf("DocumentPath = %q", got)
	}
}
