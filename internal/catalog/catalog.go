// Package catalog is the static registry of widget types the dashboard can
// host. It is the authority on type identity: at most one instance of a
// given type may exist at a time, which is why availability is computed
// here rather than in the layout state.
package catalog

import (
	"errors"
	"fmt"
)

// Type identifies a kind of widget.
type Type string

const (
	TypeLoad        Type = "load"
	TypePV          Type = "pv"
	TypeBattery     Type = "battery"
	TypeGrid        Type = "grid"
	TypeChart       Type = "chart"
	TypeAutomations Type = "automations"
	TypeDER         Type = "der"
)

// SizeClass is a display hint consumed by the renderer. The layout engine
// stores it and cycles through it; it never interprets the value.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
	SizeFull   SizeClass = "full"
)

var sizeOrder = []SizeClass{SizeSmall, SizeMedium, SizeLarge, SizeFull}

// Next returns the following size class, wrapping from full back to small.
func (s SizeClass) Next() SizeClass {
	for i, v := range sizeOrder {
		if v == s {
			return sizeOrder[(i+1)%len(sizeOrder)]
		}
	}
	return SizeSmall
}

// ParseSize validates a stored size string.
func ParseSize(raw string) (SizeClass, error) {
	for _, v := range sizeOrder {
		if string(v) == raw {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown size class %q", raw)
}

// ErrNotFound reports a type absent from the catalog.
var ErrNotFound = errors.New("catalog: type not found")

// Descriptor describes one widget type and its defaults.
type Descriptor struct {
	Type         Type
	DefaultTitle string
	DefaultSize  SizeClass
}

// Catalog is an immutable set of descriptors in default dashboard order.
type Catalog struct {
	entries []Descriptor
	byType  map[Type]Descriptor
}

// New builds a catalog from descriptors; later duplicates of a type are
// ignored.
func New(entries []Descriptor) *Catalog {
	c := &Catalog{byType: make(map[Type]Descriptor, len(entries))}
	for _, d := range entries {
		if _, ok := c.byType[d.Type]; ok {
			continue
		}
		c.entries = append(c.entries, d)
		c.byType[d.Type] = d
	}
	return c
}

// Default returns the built-in catalog for a home energy site.
func Default() *Catalog {
	return New([]Descriptor{
		{Type: TypeLoad, DefaultTitle: "Home Load", DefaultSize: SizeMedium},
		{Type: TypePV, DefaultTitle: "Solar", DefaultSize: SizeMedium},
		{Type: TypeBattery, DefaultTitle: "Battery", DefaultSize: SizeSmall},
		{Type: TypeGrid, DefaultTitle: "Grid", DefaultSize: SizeSmall},
		{Type: TypeChart, DefaultTitle: "Power History", DefaultSize: SizeLarge},
		{Type: TypeAutomations, DefaultTitle: "Automations", DefaultSize: SizeMedium},
		{Type: TypeDER, DefaultTitle: "Devices", DefaultSize: SizeFull},
	})
}

// Lookup returns the descriptor for t.
func (c *Catalog) Lookup(t Type) (Descriptor, error) {
	d, ok := c.byType[t]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrNotFound, t)
	}
	return d, nil
}

// Defaults returns every descriptor in default order.
func (c *Catalog) Defaults() []Descriptor {
	return append([]Descriptor(nil), c.entries...)
}

// ListAvailable returns the descriptors whose type is not in existing, in
// default order. A type already on the dashboard is never offered again.
func (c *Catalog) ListAvailable(existing map[Type]bool) []Descriptor {
	out := make([]Descriptor, 0, len(c.entries))
	for _, d := range c.entries {
		if existing[d.Type] {
			continue
		}
		out = append(out, d)
	}
	return out
}
