package tui

import (
	"github.com/voltdeck/voltdeck/internal/catalog"
	"github.com/voltdeck/voltdeck/internal/layout"
	"github.com/voltdeck/voltdeck/internal/reorder"
)

const (
	paneHeight   = 8
	minPaneWidth = 24
)

// paneGeom is one rendered pane's rectangle plus its instance.
type paneGeom struct {
	Inst       layout.Instance
	X, Y, W, H int
}

// paneWidth maps a size class to cells within the usable width.
func paneWidth(size catalog.SizeClass, total int) int {
	var w int
	switch size {
	case catalog.SizeSmall:
		w = total / 4
	case catalog.SizeMedium:
		w = total / 2
	case catalog.SizeLarge:
		w = total * 3 / 4
	default: // full
		w = total
	}
	if w < minPaneWidth {
		w = minPaneWidth
	}
	if w > total {
		w = total
	}
	return w
}

// packPanes lays instances into rows left to right in arrangement order,
// wrapping when a pane would overflow the usable width.
func packPanes(instances []layout.Instance, width int) []paneGeom {
	if width <= 0 {
		width = 80
	}
	out := make([]paneGeom, 0, len(instances))
	x, y := 0, 0
	for _, inst := range instances {
		w := paneWidth(inst.Size, width)
		if x > 0 && x+w > width {
			x = 0
			y += paneHeight
		}
		out = append(out, paneGeom{Inst: inst, X: x, Y: y, W: w, H: paneHeight})
		x += w
		if x >= width {
			x = 0
			y += paneHeight
		}
	}
	return out
}

func paneAt(panes []paneGeom, x, y int) (paneGeom, bool) {
	for _, p := range panes {
		if x >= p.X && x < p.X+p.W && y >= p.Y && y < p.Y+p.H {
			return p, true
		}
	}
	return paneGeom{}, false
}

func paneBounds(panes []paneGeom) []reorder.Bounds {
	out := make([]reorder.Bounds, 0, len(panes))
	for _, p := range panes {
		out = append(out, reorder.Bounds{ID: p.Inst.ID, X: p.X, Y: p.Y, W: p.W, H: p.H})
	}
	return out
}
