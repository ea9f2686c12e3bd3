package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const (
	ConfigFileName = "config.toml"

	// Persisted sidebar documents.
	TasksFileName    = "tasks.json"
	TodosFileName    = "todos.json"
	SelectedFileName = "selected.json"
	ContextFileName  = "context.json"
)

// ConfigFile represents the TOML config file structure.
type ConfigFile struct {
	DataDir    string `toml:"data_dir,omitempty"`
	SocketPath string `toml:"socket_path,omitempty"`
}

// Config holds the runtime configuration. All paths are explicit so that
// components receive them at construction instead of reading process state.
type Config struct {
	ConfigDir  string
	ConfigPath string
	DataDir    string // Sidebar documents and logs live here
	SocketPath string // Unix socket for sidebar IPC
	PaneIDPath string // Cached tmux pane id for the sidebar
	LogPath    string
}

// ExpandPath expands ~ to home directory in a path
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// DefaultConfig returns the default configuration, applying any overrides
// found in the config file.
func DefaultConfig() (*Config, error) {
	configDir := filepath.Join(xdg.ConfigHome, "skillscout")
	dataDir := filepath.Join(xdg.DataHome, "skillscout")

	cfg := &Config{
		ConfigDir:  configDir,
		ConfigPath: filepath.Join(configDir, ConfigFileName),
		DataDir:    dataDir,
		SocketPath: filepath.Join(os.TempDir(), "skillscout-sidebar.sock"),
	}

	if err := cfg.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg.PaneIDPath = filepath.Join(cfg.DataDir, "sidebar-pane-id")
	cfg.LogPath = filepath.Join(cfg.DataDir, "skillscout.log")
	return cfg, nil
}

// Load reads overrides from the config file.
func (c *Config) Load() error {
	var cf ConfigFile
	if _, err := toml.DecodeFile(c.ConfigPath, &cf); err != nil {
		return err
	}

	if cf.DataDir != "" {
		expanded, err := ExpandPath(cf.DataDir)
		if err != nil {
			return err
		}
		c.DataDir = expanded
	}
	if cf.SocketPath != "" {
		expanded, err := ExpandPath(cf.SocketPath)
		if err != nil {
			return err
		}
		c.SocketPath = expanded
	}
	return nil
}

// EnsureDirs creates the directories the app writes into.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.ConfigDir, c.DataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// DocumentPath returns the absolute path of a persisted sidebar document.
func (c *Config) DocumentPath(name string) string {
	return filepath.Join(c.DataDir, name)
}
