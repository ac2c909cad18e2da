package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltdeck/voltdeck/internal/catalog"
	"github.com/voltdeck/voltdeck/internal/config"
	"github.com/voltdeck/voltdeck/internal/layout"
	"github.com/voltdeck/voltdeck/internal/site"
	"github.com/voltdeck/voltdeck/internal/store"
	"github.com/voltdeck/voltdeck/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cat := catalog.Default()
	state := layout.New(cat, store.NewSQLite(db), cfg.Layout.StorageKey)
	state.Load()

	app := tui.New(cfg, cat, layout.NewEditor(state), site.Demo())
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
