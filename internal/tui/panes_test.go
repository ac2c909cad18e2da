package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voltdeck/voltdeck/internal/catalog"
	"github.com/voltdeck/voltdeck/internal/layout"
)

func instancesOf(sizes ...catalog.SizeClass) []layout.Instance {
	out := make([]layout.Instance, len(sizes))
	for i, s := range sizes {
		out[i] = layout.Instance{ID: string(rune('a' + i)), Type: catalog.TypeLoad, Size: s}
	}
	return out
}

func TestPackPanesWrapsRows(t *testing.T) {
	t.Parallel()

	panes := packPanes(instancesOf(
		catalog.SizeMedium, // 50
		catalog.SizeMedium, // 50, fills row 0
		catalog.SizeSmall,  // 25, row 1
		catalog.SizeFull,   // 100, row 2
	), 100)
	require.Len(t, panes, 4)
	require.Equal(t, 0, panes[0].Y)
	require.Equal(t, 50, panes[1].X)
	require.Equal(t, 0, panes[1].Y)
	require.Equal(t, 0, panes[2].X)
	require.Equal(t, paneHeight, panes[2].Y)
	require.Equal(t, 2*paneHeight, panes[3].Y)
	require.Equal(t, 100, panes[3].W)
}

func TestPackPanesPreservesArrangementOrder(t *testing.T) {
	t.Parallel()

	panes := packPanes(instancesOf(
		catalog.SizeLarge, catalog.SizeSmall, catalog.SizeSmall,
	), 100)
	require.Equal(t, "a", panes[0].Inst.ID)
	require.Equal(t, "b", panes[1].Inst.ID)
	require.Equal(t, "c", panes[2].Inst.ID)
	// large (75) + small (25) share row 0, second small wraps
	require.Equal(t, 0, panes[1].Y)
	require.Equal(t, 75, panes[1].X)
	require.Equal(t, paneHeight, panes[2].Y)
}

func TestPaneWidthClampsToTerminal(t *testing.T) {
	t.Parallel()

	require.Equal(t, minPaneWidth, paneWidth(catalog.SizeSmall, 60))
	require.Equal(t, 40, paneWidth(catalog.SizeSmall, 160))
	require.Equal(t, 30, paneWidth(catalog.SizeSmall, 120))
	require.Equal(t, 120, paneWidth(catalog.SizeFull, 120))
	// a pane never exceeds the terminal
	require.Equal(t, 18, paneWidth(catalog.SizeFull, 18))
	require.Equal(t, 18, paneWidth(catalog.SizeSmall, 18))
}

func TestPaneAt(t *testing.T) {
	t.Parallel()

	panes := packPanes(instancesOf(catalog.SizeMedium, catalog.SizeMedium), 100)

	p, ok := paneAt(panes, 10, 3)
	require.True(t, ok)
	require.Equal(t, "a", p.Inst.ID)

	p, ok = paneAt(panes, 60, 3)
	require.True(t, ok)
	require.Equal(t, "b", p.Inst.ID)

	_, ok = paneAt(panes, 10, paneHeight+1)
	require.False(t, ok)
}
