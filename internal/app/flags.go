package app

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/sandeepkv93/tasks/internal/config"
)

// Flags holds the global options shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
}

// Env carries what the root Before hook resolved.
type Env struct {
	Config config.Config
	Logger zerolog.Logger
}

// DefaultConfigPath returns the config path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tasks", "config.yaml")
}
