// Package reorder translates drag and keyboard move gestures into layout
// reorder calls. The controller never holds a lock over the arrangement:
// positions are re-read live on every hover, and exactly one reorder is
// committed when the gesture ends.
package reorder

import (
	"fmt"
	"math"

	"github.com/voltdeck/voltdeck/internal/layout"
)

// DefaultActivationDistance is how far, in cells, the pointer must travel
// from the press point before a press is recognized as a drag rather than
// a click.
const DefaultActivationDistance = 2

// Point is a pointer position in screen cells.
type Point struct {
	X, Y int
}

// Bounds is one rendered widget's rectangle. The renderer registers the
// current set on every frame.
type Bounds struct {
	ID   string
	X, Y int
	W, H int
}

func (b Bounds) center() (float64, float64) {
	return float64(b.X) + float64(b.W)/2, float64(b.Y) + float64(b.H)/2
}

// Mutator is the slice of the layout editor the controller drives.
type Mutator interface {
	Order() []layout.Instance
	Hidden(id string) bool
	IndexOf(id string) int
	Reorder(id string, target int) error
}

// Controller tracks one in-flight move gesture.
type Controller struct {
	layout     Mutator
	activation int

	bounds     []Bounds
	sourceID   string
	origin     Point
	active     bool
	lastTarget string
}

func NewController(m Mutator) *Controller {
	return &Controller{layout: m, activation: DefaultActivationDistance}
}

// SetActivationDistance overrides the drag activation threshold.
func (c *Controller) SetActivationDistance(cells int) {
	if cells < 0 {
		cells = 0
	}
	c.activation = cells
}

// SetBounds replaces the rendered widget rectangles used for target
// resolution. Order matters: earlier entries win distance ties, and the
// renderer registers them in arrangement order.
func (c *Controller) SetBounds(b []Bounds) {
	c.bounds = append(c.bounds[:0], b...)
}

// MoveStart begins tracking a press on the given widget. Nothing is
// recognized as a drag until the pointer travels the activation distance.
func (c *Controller) MoveStart(id string, at Point) {
	if c.layout.IndexOf(id) < 0 {
		return
	}
	c.sourceID = id
	c.origin = at
	c.active = false
	c.lastTarget = ""
}

// MoveOver updates the hover target for an in-flight gesture.
func (c *Controller) MoveOver(at Point) {
	if c.sourceID == "" {
		return
	}
	if !c.active {
		dx := at.X - c.origin.X
		dy := at.Y - c.origin.Y
		if dx*dx+dy*dy < c.activation*c.activation {
			return
		}
		c.active = true
	}
	if id, ok := c.targetAt(at); ok {
		c.lastTarget = id
	}
}

// MoveEnd commits the gesture. A reorder fires only when the drag
// activated, the last hovered target differs from the source, and both are
// still present in the arrangement.
func (c *Controller) MoveEnd() error {
	source, target, active := c.sourceID, c.lastTarget, c.active
	c.sourceID = ""
	c.lastTarget = ""
	c.active = false
	if !active || source == "" || target == "" || target == source {
		return nil
	}
	ti := c.layout.IndexOf(target)
	if ti < 0 || c.layout.IndexOf(source) < 0 {
		return nil
	}
	return c.layout.Reorder(source, ti)
}

// Dragging reports whether an activated drag is in flight.
func (c *Controller) Dragging() bool { return c.active }

// Source returns the id being dragged, or "".
func (c *Controller) Source() string { return c.sourceID }

// Target returns the last hovered target id, or "".
func (c *Controller) Target() string { return c.lastTarget }

// targetAt picks the registered widget whose center is nearest the
// pointer. Ties keep the earliest registered widget, which follows the
// established arrangement order.
func (c *Controller) targetAt(at Point) (string, bool) {
	best := ""
	bestDist := math.Inf(1)
	for _, b := range c.bounds {
		if c.layout.IndexOf(b.ID) < 0 {
			continue // unmounted since last render
		}
		cx, cy := b.center()
		dx := float64(at.X) - cx
		dy := float64(at.Y) - cy
		d := dx*dx + dy*dy
		if d < bestDist {
			best = b.ID
			bestDist = d
		}
	}
	return best, best != ""
}

// MoveUp swaps id with its nearest visible predecessor in the
// arrangement. Hidden neighbors are stepped over, so hidden entries keep
// their relative slots among themselves.
func (c *Controller) MoveUp(id string) error {
	return c.moveAdjacent(id, -1)
}

// MoveDown is the downward counterpart of MoveUp.
func (c *Controller) MoveDown(id string) error {
	return c.moveAdjacent(id, +1)
}

func (c *Controller) moveAdjacent(id string, dir int) error {
	order := c.layout.Order()
	i := -1
	for j, inst := range order {
		if inst.ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return fmt.Errorf("%w: %s", layout.ErrNotFound, id)
	}
	j := i + dir
	for j >= 0 && j < len(order) && c.layout.Hidden(order[j].ID) {
		j += dir
	}
	if j < 0 || j >= len(order) {
		return nil // already at the visible edge
	}
	return c.layout.Reorder(id, j)
}
