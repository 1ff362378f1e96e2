package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Launch template tokens.
const (
	TokenPath    = "{path}"
	TokenFile    = "{file}"
	TokenSession = "{session}"
)

type Config struct {
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Launch   LaunchConfig   `toml:"launch"`
	UI       UIConfig       `toml:"ui"`
	Confirm  ConfirmConfig  `toml:"confirm"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level   string        `toml:"level"`
	DevFile DevFileConfig `toml:"dev_file"`
}

type DevFileConfig struct {
	Enabled    bool   `toml:"enabled"`
	Dir        string `toml:"dir"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// LaunchConfig holds argv templates for spawned processes.
// Terminal wraps every launch; Editor and Tmux are appended after it.
type LaunchConfig struct {
	Terminal []string `toml:"terminal"`
	Editor   []string `toml:"editor"`
	Tmux     []string `toml:"tmux"`
}

type UIConfig struct {
	DefaultMode  string `toml:"default_mode"` // colored | bland
	ShowLanguage bool   `toml:"show_language"`
}

type ConfirmConfig struct {
	DeleteProject bool `toml:"delete_project"`
}

// validLogLevels stores accepted logging.level values.
var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

func Default(dbPath string) Config {
	return Config{
		Database: DatabaseConfig{
			Path: dbPath,
		},
		Logging: LoggingConfig{
			Level: "info",
			DevFile: DevFileConfig{
				Enabled:    true,
				Dir:        ".projectarium/log",
				MaxSizeMB:  5,
				MaxBackups: 3,
				MaxAgeDays: 14,
			},
		},
		Launch: LaunchConfig{
			Terminal: []string{"gnome-terminal", "--maximize", "--working-directory=" + TokenPath},
			Editor:   []string{"--", "nvim", TokenFile},
			Tmux:     []string{"--", "tmux", "new-session", "-A", "-s", TokenSession, "-c", TokenPath},
		},
		UI: UIConfig{
			DefaultMode:  "colored",
			ShowLanguage: true,
		},
		Confirm: ConfirmConfig{
			DeleteProject: true,
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database path is required")
	}

	level := strings.TrimSpace(strings.ToLower(c.Logging.Level))
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	if c.Logging.DevFile.Enabled && strings.TrimSpace(c.Logging.DevFile.Dir) == "" {
		return errors.New("logging.dev_file.dir is required when enabled")
	}
	if c.Logging.DevFile.MaxSizeMB < 0 || c.Logging.DevFile.MaxBackups < 0 || c.Logging.DevFile.MaxAgeDays < 0 {
		return errors.New("logging.dev_file limits must be >= 0")
	}

	if len(c.Launch.Terminal) == 0 || strings.TrimSpace(c.Launch.Terminal[0]) == "" {
		return errors.New("launch.terminal must name a program")
	}
	if !slices.ContainsFunc(c.Launch.Editor, containsToken(TokenFile)) {
		return fmt.Errorf("launch.editor must reference %s", TokenFile)
	}
	if !slices.ContainsFunc(c.Launch.Tmux, containsToken(TokenSession)) {
		return fmt.Errorf("launch.tmux must reference %s", TokenSession)
	}

	switch strings.TrimSpace(strings.ToLower(c.UI.DefaultMode)) {
	case "colored", "bland":
	default:
		return fmt.Errorf("invalid ui.default_mode: %q", c.UI.DefaultMode)
	}

	return nil
}

// containsToken matches argv entries that reference token.
func containsToken(token string) func(string) bool {
	return func(arg string) bool {
		return strings.Contains(arg, token)
	}
}
