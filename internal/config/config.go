// Package config loads and saves jangbogo's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"jangbogo/internal/session"
)

// Config holds all jangbogo configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Missions   []MissionConfig  `toml:"missions,omitempty"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds file locations and rendering preferences.
type GeneralConfig struct {
	CatalogPath string `toml:"catalog_path"`
	OutputDir   string `toml:"output_dir"`
	WrapWidth   int    `toml:"wrap_width"`
}

// MissionConfig is one configurable budget tier. Teachers edit the config
// file to change the mission set; it is never mutated at runtime.
type MissionConfig struct {
	Label  string `toml:"label"`
	Budget int64  `toml:"budget"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultMissions is the built-in mission set used when the config file
// defines none.
var DefaultMissions = []MissionConfig{
	{Label: "절약형 장보기 (예산 10,000원)", Budget: 10_000},
	{Label: "균형 잡힌 장보기 (예산 20,000원)", Budget: 20_000},
	{Label: "풍성한 장보기 (예산 30,000원)", Budget: 30_000},
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CatalogPath: "products.csv",
			OutputDir:   "submissions",
			WrapWidth:   30,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jangbogo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "jangbogo")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Missions returns the configured mission set, falling back to the built-in
// three when the config defines none.
func Missions(cfg Config) []session.Mission {
	src := cfg.Missions
	if len(src) == 0 {
		src = DefaultMissions
	}

	missions := make([]session.Mission, len(src))
	for i, m := range src {
		missions[i] = session.Mission{Label: m.Label, Budget: m.Budget}
	}
	return missions
}
