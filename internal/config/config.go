// pattern: Functional Core

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the sweep behavior knobs. Every field has a default; a
// missing config file is not an error.
type Config struct {
	TrashNames   []string `yaml:"trash_names"`   // deleted wholesale, never descended
	SkipNames    []string `yaml:"skip_names"`    // never descended, never recorded
	HiddenPrefix string   `yaml:"hidden_prefix"` // usually "."
	MarkerFile   string   `yaml:"marker_file"`   // file marking a project root

	MaxParallel       int `yaml:"max_parallel"`        // clean-phase workers
	MaxDeleteParallel int `yaml:"max_delete_parallel"` // delete-phase workers

	CleanCommand []string `yaml:"clean_command"`
	FetchCommand []string `yaml:"fetch_command"`

	Theme    string `yaml:"theme"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the stock Flutter-workspace configuration.
func DefaultConfig() Config {
	return Config{
		TrashNames:        []string{"build", ".dart_tool", "node_modules"},
		SkipNames:         []string{"ios", "android", "windows", "linux", "macos", "web"},
		HiddenPrefix:      ".",
		MarkerFile:        "pubspec.yaml",
		MaxParallel:       6,
		MaxDeleteParallel: 15,
		CleanCommand:      []string{"flutter", "clean"},
		FetchCommand:      []string{"flutter", "pub", "get"},
		Theme:             "mocha",
		LogLevel:          "info",
	}
}

// Load reads the config from the default location.
func Load() (Config, error) {
	return LoadFrom(getConfigPath())
}

// LoadFromDir reads config.yaml from the given directory.
func LoadFromDir(dir string) (Config, error) {
	return LoadFrom(filepath.Join(dir, "config.yaml"))
}

// LoadFrom reads the config file at configPath, filling defaults for any
// field the file leaves unset.
func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	cfg.normalize()
	return cfg, nil
}

// normalize repairs values a config file can break.
func (c *Config) normalize() {
	if c.MaxParallel < 1 {
		c.MaxParallel = DefaultConfig().MaxParallel
	}
	if c.MaxDeleteParallel < 1 {
		c.MaxDeleteParallel = DefaultConfig().MaxDeleteParallel
	}
	if c.MarkerFile == "" {
		c.MarkerFile = DefaultConfig().MarkerFile
	}
	if c.Theme == "" {
		c.Theme = DefaultConfig().Theme
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig().LogLevel
	}
}

func getConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "sweeper", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "sweeper", "config.yaml")
	}
	return filepath.Join(home, ".config", "sweeper", "config.yaml")
}

// ResolveDataDir returns the directory for the lock file and log file,
// creating it if needed. An explicit dir overrides the XDG default.
func ResolveDataDir(dir string) string {
	if dir == "" {
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			dir = filepath.Join(xdgData, "sweeper")
		} else if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "share", "sweeper")
		} else {
			dir = ".sweeper"
		}
	}
	_ = os.MkdirAll(dir, 0755)
	return dir
}
