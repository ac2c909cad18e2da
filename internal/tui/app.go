// Package tui is the bubbletea shell around the layout engine. All
// mutation goes through the layout editor, which rejects anything outside
// edit mode; persistence failures surface on the status line and never
// interrupt the session.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltdeck/voltdeck/internal/automation"
	"github.com/voltdeck/voltdeck/internal/catalog"
	"github.com/voltdeck/voltdeck/internal/config"
	"github.com/voltdeck/voltdeck/internal/layout"
	"github.com/voltdeck/voltdeck/internal/reorder"
	"github.com/voltdeck/voltdeck/internal/site"
)

// headerRows is the number of lines above the pane area; mouse positions
// are translated by this much before hit testing.
const headerRows = 1

type modalState string

const (
	modalNone         modalState = ""
	modalAddWidget    modalState = "addWidget"
	modalConfirmReset modalState = "confirmReset"
)

// App ties the layout editor, reorder controller, and catalog to the
// terminal.
type App struct {
	cfg      config.Config
	cat      *catalog.Catalog
	editor   *layout.Editor
	mover    *reorder.Controller
	overview site.Overview
	rules    []automation.Rule

	keys    keyMap
	panes   []paneGeom
	width   int
	height  int
	cursor  int
	modal   modalState
	picker  *picker
	status  string
	warning bool
}

func New(cfg config.Config, cat *catalog.Catalog, editor *layout.Editor, overview site.Overview) *App {
	rules := make([]automation.Rule, 0, len(cfg.Automation.Rules))
	for _, r := range cfg.Automation.Rules {
		rules = append(rules, automation.Rule{Name: r.Name, When: r.When})
	}
	a := &App{
		cfg:      cfg,
		cat:      cat,
		editor:   editor,
		mover:    reorder.NewController(editor),
		overview: overview,
		rules:    rules,
		keys:     newKeyMap(),
		width:    80,
	}
	a.refreshPanes()
	return a
}

func (a *App) Init() tea.Cmd { return nil }

// currentInstances is what gets rendered: the visible set in view mode,
// the full arrangement (hidden entries dimmed) while editing.
func (a *App) currentInstances() []layout.Instance {
	if a.editor.Editing() {
		return a.editor.Order()
	}
	return a.editor.Visible()
}

func (a *App) refreshPanes() {
	a.panes = packPanes(a.currentInstances(), a.width)
	a.mover.SetBounds(paneBounds(a.panes))
	if a.cursor >= len(a.panes) {
		a.cursor = len(a.panes) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// cursorID is the id under the edit cursor, or "".
func (a *App) cursorID() string {
	if a.cursor < 0 || a.cursor >= len(a.panes) {
		return ""
	}
	return a.panes[a.cursor].Inst.ID
}

func (a *App) helpBindings() []key.Binding {
	if a.modal != modalNone {
		return a.keys.modalHelp()
	}
	if a.editor.Editing() {
		return a.keys.editHelp()
	}
	return a.keys.viewHelp()
}

// setResult folds an operation error into the status line; layout errors
// are warnings, never fatal.
func (a *App) setResult(ok string, err error) {
	if err != nil {
		a.status = "warn: " + err.Error()
		a.warning = true
		return
	}
	a.status = ok
	a.warning = false
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.refreshPanes()
	case tea.MouseMsg:
		a.handleMouse(m)
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.editor.Editing() {
			return a.handleEditKey(m)
		}
		return a.handleViewKey(m)
	}
	return a, nil
}

func (a *App) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Edit):
		a.editor.Enter()
		a.cursor = 0
		a.refreshPanes()
		a.setResult("editing — changes apply live, save to persist", nil)
	}
	return a, nil
}

func (a *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := a.cursorID()
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.panes)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.MoveUp):
		if id != "" {
			a.setResult("moved", a.mover.MoveUp(id))
			a.refreshPanes()
			a.cursor = a.editor.IndexOf(id)
		}
	case key.Matches(msg, a.keys.MoveDown):
		if id != "" {
			a.setResult("moved", a.mover.MoveDown(id))
			a.refreshPanes()
			a.cursor = a.editor.IndexOf(id)
		}
	case key.Matches(msg, a.keys.Hide):
		if id != "" {
			a.setResult("visibility toggled", a.editor.ToggleVisible(id))
		}
	case key.Matches(msg, a.keys.Resize):
		if inst, ok := a.editor.Get(id); ok {
			next := inst.Size.Next()
			a.setResult(fmt.Sprintf("size: %s", next), a.editor.Resize(id, next))
			a.refreshPanes()
		}
	case key.Matches(msg, a.keys.Remove):
		if id != "" {
			a.setResult("widget removed", a.editor.Remove(id))
			a.refreshPanes()
		}
	case key.Matches(msg, a.keys.Add):
		a.openAddPicker()
	case key.Matches(msg, a.keys.Reset):
		a.modal = modalConfirmReset
	case key.Matches(msg, a.keys.Save):
		a.setResult("layout saved", a.editor.SaveAndExit())
		a.cursor = 0
		a.refreshPanes()
	}
	return a, nil
}

func (a *App) openAddPicker() {
	available := a.cat.ListAvailable(a.editor.Types())
	if len(available) == 0 {
		a.setResult("every widget type is already on the dashboard", nil)
		return
	}
	items := make([]pickerItem, 0, len(available))
	for _, d := range available {
		items = append(items, pickerItem{
			Type:  d.Type,
			Label: d.DefaultTitle,
			Meta:  string(d.DefaultSize),
		})
	}
	a.picker = newPicker("Add widget", items)
	a.modal = modalAddWidget
}

func (a *App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalAddWidget:
		res := a.picker.HandleKey(msg.String())
		switch res.Action {
		case pickerActionSelected:
			inst, err := a.editor.Add(res.Item.Type)
			a.setResult(fmt.Sprintf("added %s", res.Item.Label), err)
			a.modal = modalNone
			a.picker = nil
			a.refreshPanes()
			if i := a.editor.IndexOf(inst.ID); i >= 0 {
				a.cursor = i
			}
		case pickerActionCancelled:
			a.modal = modalNone
			a.picker = nil
		}
	case modalConfirmReset:
		switch msg.String() {
		case "y", "enter":
			a.setResult("layout reset to defaults", a.editor.ResetAndExit())
			a.modal = modalNone
			a.cursor = 0
			a.refreshPanes()
		case "n", "esc":
			a.modal = modalNone
		}
	}
	return a, nil
}

// handleMouse feeds drag gestures to the reorder controller. Gestures are
// only recognized while editing; the controller re-resolves the target on
// every motion event and commits once on release.
func (a *App) handleMouse(msg tea.MouseMsg) {
	if !a.editor.Editing() || a.modal != modalNone {
		return
	}
	at := reorder.Point{X: msg.X, Y: msg.Y - headerRows}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if p, ok := paneAt(a.panes, at.X, at.Y); ok {
			a.mover.MoveStart(p.Inst.ID, at)
			a.cursor = a.editor.IndexOf(p.Inst.ID)
		}
	case tea.MouseActionMotion:
		a.mover.MoveOver(at)
	case tea.MouseActionRelease:
		source := a.mover.Source()
		moved := a.mover.Dragging()
		if err := a.mover.MoveEnd(); err != nil {
			a.setResult("", err)
		} else if moved && source != "" {
			a.setResult("widget moved", nil)
		}
		a.refreshPanes()
		if source != "" {
			if i := a.editor.IndexOf(source); i >= 0 {
				a.cursor = i
			}
		}
	}
}
