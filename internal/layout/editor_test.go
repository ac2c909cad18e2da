package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voltdeck/voltdeck/internal/catalog"
	"github.com/voltdeck/voltdeck/internal/store"
)

func TestEditorGatesMutations(t *testing.T) {
	t.Parallel()

	s, _ := newTestState(t)
	e := NewEditor(s)
	pv := s.Order()[1]

	require.Equal(t, ModeView, e.Mode())
	_, err := e.Add(catalog.TypeChart)
	require.ErrorIs(t, err, ErrViewMode)
	require.ErrorIs(t, e.Remove(pv.ID), ErrViewMode)
	require.ErrorIs(t, e.Reorder(pv.ID, 0), ErrViewMode)
	require.ErrorIs(t, e.Resize(pv.ID, catalog.SizeFull), ErrViewMode)
	require.ErrorIs(t, e.ToggleVisible(pv.ID), ErrViewMode)
	require.ErrorIs(t, e.SaveAndExit(), ErrViewMode)
	require.ErrorIs(t, e.ResetAndExit(), ErrViewMode)

	// reads pass through in view mode
	require.Len(t, e.Visible(), 7)
	require.Equal(t, 1, e.IndexOf(pv.ID))
}

func TestEditorSaveAndExit(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	s := New(catalog.Default(), kv, "dashboard")
	e := NewEditor(s)
	pv := s.Order()[1]

	e.Enter()
	require.True(t, e.Editing())
	require.NoError(t, e.Reorder(pv.ID, 0))
	require.NoError(t, e.SaveAndExit())
	require.Equal(t, ModeView, e.Mode())
	require.Equal(t, 1, kv.Len())

	loaded := New(catalog.Default(), kv, "dashboard")
	loaded.Load()
	require.Equal(t, pv.ID, loaded.Order()[0].ID)
}

func TestEditorResetAndExit(t *testing.T) {
	t.Parallel()

	kv := store.NewMemory()
	s := New(catalog.Default(), kv, "dashboard")
	e := NewEditor(s)

	e.Enter()
	require.NoError(t, e.ToggleVisible(s.Order()[2].ID))
	require.NoError(t, e.SaveAndExit())
	require.Equal(t, 1, kv.Len())

	e.Enter()
	require.NoError(t, e.Remove(e.Order()[0].ID))
	require.NoError(t, e.ResetAndExit())
	require.Equal(t, ModeView, e.Mode())
	require.Len(t, e.Visible(), 7)
	require.Equal(t, 0, kv.Len(), "reset removes the stored record")
}

func TestEditorExitsEvenWhenPersistFails(t *testing.T) {
	t.Parallel()

	s := New(catalog.Default(), failingKV{}, "dashboard")
	e := NewEditor(s)

	e.Enter()
	pv := e.Order()[1]
	require.NoError(t, e.Reorder(pv.ID, 0))
	require.Error(t, e.SaveAndExit())
	require.Equal(t, ModeView, e.Mode())
	require.Equal(t, pv.ID, e.Order()[0].ID, "edits stay live in memory")
}
