package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig
	Layout     LayoutConfig
	Site       SiteConfig
	Automation AutomationConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LayoutConfig holds layout persistence settings. StorageKey namespaces
// the stored arrangement; separate keys give separate dashboards.
type LayoutConfig struct {
	StorageKey string `mapstructure:"storage_key"`
}

// SiteConfig holds site presentation settings.
type SiteConfig struct {
	Name string
}

// AutomationConfig holds the user-defined automation rules the
// automations widget displays.
type AutomationConfig struct {
	Rules []RuleConfig
}

// RuleConfig is one automation rule: a name and a boolean condition over
// the site snapshot.
type RuleConfig struct {
	Name string
	When string
}

// Load reads configuration from file and env. Env var overrides use prefix VOLTDECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "voltdeck", "voltdeck.db"))
	v.SetDefault("layout.storage_key", "dashboard")
	v.SetDefault("site.name", "Home")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VOLTDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "voltdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VOLTDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed.
func Save(cfg Config) error {
	path := os.Getenv("VOLTDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "voltdeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("layout.storage_key", cfg.Layout.StorageKey)
	v.Set("site.name", cfg.Site.Name)
	rules := make([]map[string]string, 0, len(cfg.Automation.Rules))
	for _, r := range cfg.Automation.Rules {
		rules = append(rules, map[string]string{"name": r.Name, "when": r.When})
	}
	v.Set("automation.rules", rules)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
