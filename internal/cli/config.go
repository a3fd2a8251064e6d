package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-level CLI defaults, loaded from a TOML file.
type Config struct {
	// BaseURL is the base address used when building share links.
	BaseURL string `toml:"base_url"`

	// BudgetKB is the share-link size ceiling reported by inspect.
	BudgetKB float64 `toml:"budget_kb"`

	// CacheDir overrides the render cache location.
	CacheDir string `toml:"cache_dir"`
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() Config {
	return Config{
		BaseURL:  "https://archpad.dev/canvas",
		BudgetKB: 20,
	}
}

// configPath returns the default config file location,
// ~/.config/archpad/config.toml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "archpad", "config.toml")
}

// loadConfig reads the config file at path (or the default location when
// path is empty). A missing file yields the defaults; a malformed file
// is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = configPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// cacheDir returns the configured cache directory, defaulting to
// ~/.cache/archpad.
func (c Config) cacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ".archpad-cache"
	}
	return filepath.Join(base, "archpad")
}
