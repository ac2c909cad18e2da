package layout

import "github.com/voltdeck/voltdeck/internal/catalog"

// Mode gates mutation. View is read-only over the live state; only Edit
// permits structural changes. Mode is process-local and never persisted.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

// Editor wraps a State with the View/Edit state machine. There is no draft
// copy: mutations land on the live state immediately and only persistence
// is deferred, so the exits are save (persist) and reset (rollback to
// defaults, clearing the stored record).
type Editor struct {
	state *State
	mode  Mode
}

func NewEditor(state *State) *Editor {
	return &Editor{state: state, mode: ModeView}
}

func (e *Editor) Mode() Mode    { return e.mode }
func (e *Editor) Editing() bool { return e.mode == ModeEdit }

// Enter switches to edit mode. No snapshot is taken.
func (e *Editor) Enter() { e.mode = ModeEdit }

// SaveAndExit persists the current arrangement and returns to view mode.
// The transition happens even when the write fails; the error is surfaced
// as a warning and the arrangement stays live in memory.
func (e *Editor) SaveAndExit() error {
	if e.mode != ModeEdit {
		return ErrViewMode
	}
	err := e.state.Save()
	e.mode = ModeView
	return err
}

// ResetAndExit restores catalog defaults, clears the stored record, and
// returns to view mode.
func (e *Editor) ResetAndExit() error {
	if e.mode != ModeEdit {
		return ErrViewMode
	}
	err := e.state.Reset()
	e.mode = ModeView
	return err
}

func (e *Editor) Add(t catalog.Type) (Instance, error) {
	if e.mode != ModeEdit {
		return Instance{}, ErrViewMode
	}
	return e.state.Add(t)
}

func (e *Editor) Remove(id string) error {
	if e.mode != ModeEdit {
		return ErrViewMode
	}
	return e.state.Remove(id)
}

func (e *Editor) Reorder(id string, target int) error {
	if e.mode != ModeEdit {
		return ErrViewMode
	}
	return e.state.Reorder(id, target)
}

func (e *Editor) Resize(id string, size catalog.SizeClass) error {
	if e.mode != ModeEdit {
		return ErrViewMode
	}
	return e.state.Resize(id, size)
}

func (e *Editor) ToggleVisible(id string) error {
	if e.mode != ModeEdit {
		return ErrViewMode
	}
	return e.state.ToggleVisible(id)
}

// Read operations pass through in either mode.

func (e *Editor) Order() []Instance           { return e.state.Order() }
func (e *Editor) Visible() []Instance         { return e.state.Visible() }
func (e *Editor) HiddenInstances() []Instance { return e.state.HiddenInstances() }
func (e *Editor) Hidden(id string) bool       { return e.state.Hidden(id) }
func (e *Editor) IndexOf(id string) int       { return e.state.IndexOf(id) }
func (e *Editor) Get(id string) (Instance, bool) {
	return e.state.Get(id)
}
func (e *Editor) Types() map[catalog.Type]bool { return e.state.Types() }
