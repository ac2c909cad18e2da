package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VOLTDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dashboard", cfg.Layout.StorageKey)
	require.Equal(t, "Home", cfg.Site.Name)
	require.NotEmpty(t, cfg.Database.Path)
	require.Empty(t, cfg.Automation.Rules)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[database]
path = "/tmp/voltdeck-test.db"

[layout]
storage_key = "bench"

[site]
name = "Workshop"

[[automation.rules]]
name = "low battery"
when = "battery_soc < 0.2"

[[automation.rules]]
name = "exporting"
when = "grid_w < 0"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("VOLTDECK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/voltdeck-test.db", cfg.Database.Path)
	require.Equal(t, "bench", cfg.Layout.StorageKey)
	require.Equal(t, "Workshop", cfg.Site.Name)
	require.Len(t, cfg.Automation.Rules, 2)
	require.Equal(t, "low battery", cfg.Automation.Rules[0].Name)
	require.Equal(t, "battery_soc < 0.2", cfg.Automation.Rules[0].When)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("VOLTDECK_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/saved.db"},
		Layout:   LayoutConfig{StorageKey: "saved"},
		Site:     SiteConfig{Name: "Cabin"},
		Automation: AutomationConfig{Rules: []RuleConfig{
			{Name: "ev plugged", When: "ev_w > 0"},
		}},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want.Database.Path, got.Database.Path)
	require.Equal(t, want.Layout.StorageKey, got.Layout.StorageKey)
	require.Equal(t, want.Site.Name, got.Site.Name)
	require.Len(t, got.Automation.Rules, 1)
	require.Equal(t, "ev plugged", got.Automation.Rules[0].Name)
}
