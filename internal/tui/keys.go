package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit     key.Binding
	Edit     key.Binding
	Save     key.Binding
	Reset    key.Binding
	Add      key.Binding
	Remove   key.Binding
	Hide     key.Binding
	Resize   key.Binding
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Close    key.Binding
	Enter    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit layout")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save & done")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset layout")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add widget")),
		Remove:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Hide:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide/show")),
		Resize:   key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "cycle size")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "select")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("", "")),
		MoveUp:   key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("J/K", "move")),
		MoveDown: key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("", "")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}

func (k keyMap) viewHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Quit}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Up, k.MoveUp, k.Hide, k.Resize, k.Add, k.Remove, k.Reset, k.Save}
}

func (k keyMap) modalHelp() []key.Binding {
	return []key.Binding{k.Up, k.Enter, k.Close}
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
