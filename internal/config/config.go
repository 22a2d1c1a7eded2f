// Package config loads the task list settings from an optional YAML file
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/tasks/internal/model"
	"github.com/sandeepkv93/tasks/internal/store"
)

// Config holds the application configuration.
type Config struct {
	Title         string `yaml:"title"`
	InitialFilter string `yaml:"initial_filter"` // todo or completed
	IDPolicy      string `yaml:"id_policy"`      // count or monotonic
	ShowHelp      bool   `yaml:"show_help"`
	Placeholder   string `yaml:"placeholder"`
}

func Default() Config {
	return Config{
		Title:         "Tasks",
		InitialFilter: string(model.StatusTodo),
		IDPolicy:      string(store.IDPolicyCount),
		ShowHelp:      false,
		Placeholder:   "new task title",
	}
}

// Load reads path over the defaults, applies TASKS_* environment overrides
// and validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg = FromEnv(cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("TASKS_TITLE"); ok {
		cfg.Title = v
	}
	if v, ok := getEnvString("TASKS_INITIAL_FILTER"); ok {
		cfg.InitialFilter = v
	}
	if v, ok := getEnvString("TASKS_ID_POLICY"); ok {
		cfg.IDPolicy = v
	}
	if v, ok := getEnvBool("TASKS_SHOW_HELP"); ok {
		cfg.ShowHelp = v
	}
	return cfg
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if strings.TrimSpace(c.Title) == "" {
		c.Title = defaults.Title
	}
	if strings.TrimSpace(c.InitialFilter) == "" {
		c.InitialFilter = defaults.InitialFilter
	}
	if strings.TrimSpace(c.IDPolicy) == "" {
		c.IDPolicy = defaults.IDPolicy
	}
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("initial_filter", c.InitialFilter, validStatus),
		criterio.Run("id_policy", c.IDPolicy, validIDPolicy),
	)
}

func validStatus(v string) error {
	_, err := model.ParseStatus(v)
	return err
}

func validIDPolicy(v string) error {
	_, err := store.ParseIDPolicy(v)
	return err
}

// Filter returns the initial filter. Call after Validate.
func (c Config) Filter() model.Filter {
	s, err := model.ParseStatus(c.InitialFilter)
	if err != nil {
		return model.DefaultFilter()
	}
	return model.NewFilter(s)
}

// Policy returns the id policy. Call after Validate.
func (c Config) Policy() store.IDPolicy {
	p, err := store.ParseIDPolicy(c.IDPolicy)
	if err != nil {
		return store.IDPolicyCount
	}
	return p
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v, true
	}
	switch raw {
	case "yes", "y", "on":
		return true, true
	case "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
