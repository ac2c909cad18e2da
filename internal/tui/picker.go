package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/voltdeck/voltdeck/internal/catalog"
)

// pickerItem is one selectable catalog entry.
type pickerItem struct {
	Type  catalog.Type
	Label string
	Meta  string
}

type pickerAction int

const (
	pickerActionNone pickerAction = iota
	pickerActionMoved
	pickerActionSelected
	pickerActionCancelled
)

type pickerResult struct {
	Action pickerAction
	Item   pickerItem
}

// picker is the filter-as-you-type widget chooser. With an empty query it
// shows catalog order; otherwise items are ranked by edit distance to the
// query, substring matches first.
type picker struct {
	title    string
	items    []pickerItem
	filtered []pickerItem
	query    string
	cursor   int
}

func newPicker(title string, items []pickerItem) *picker {
	p := &picker{title: strings.TrimSpace(title)}
	p.items = append([]pickerItem(nil), items...)
	p.rebuild()
	return p
}

func (p *picker) Query() string       { return p.query }
func (p *picker) Cursor() int         { return p.cursor }
func (p *picker) Items() []pickerItem { return append([]pickerItem(nil), p.filtered...) }

// SetQuery re-filters and re-anchors the cursor on the best match.
func (p *picker) SetQuery(q string) {
	p.query = q
	p.cursor = 0
	p.rebuild()
}

func (p *picker) rebuild() {
	q := strings.ToLower(strings.TrimSpace(p.query))
	if q == "" {
		p.filtered = append(p.filtered[:0:0], p.items...)
		p.clampCursor()
		return
	}

	type scored struct {
		item pickerItem
		sub  bool
		dist int
	}
	matches := make([]scored, 0, len(p.items))
	for _, item := range p.items {
		label := strings.ToLower(item.Label)
		sub := strings.Contains(label, q) || strings.Contains(strings.ToLower(string(item.Type)), q)
		dist := levenshtein.ComputeDistance(q, label)
		if !sub && dist > len(label) {
			continue
		}
		matches = append(matches, scored{item: item, sub: sub, dist: dist})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].sub != matches[j].sub {
			return matches[i].sub
		}
		return matches[i].dist < matches[j].dist
	})
	p.filtered = p.filtered[:0]
	for _, m := range matches {
		p.filtered = append(p.filtered, m.item)
	}
	p.clampCursor()
}

func (p *picker) clampCursor() {
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *picker) Current() (pickerItem, bool) {
	if len(p.filtered) == 0 {
		return pickerItem{}, false
	}
	return p.filtered[p.cursor], true
}

// HandleKey drives the picker from raw key names.
func (p *picker) HandleKey(keyName string) pickerResult {
	switch keyName {
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
			return pickerResult{Action: pickerActionMoved}
		}
		return pickerResult{Action: pickerActionNone}
	case "down", "ctrl+n":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return pickerResult{Action: pickerActionMoved}
		}
		return pickerResult{Action: pickerActionNone}
	case "enter":
		item, ok := p.Current()
		if !ok {
			return pickerResult{Action: pickerActionNone}
		}
		return pickerResult{Action: pickerActionSelected, Item: item}
	case "esc":
		return pickerResult{Action: pickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return pickerResult{Action: pickerActionNone}
	default:
		if len(keyName) == 1 && keyName[0] >= ' ' && keyName[0] <= '~' {
			p.SetQuery(p.query + keyName)
		}
		return pickerResult{Action: pickerActionNone}
	}
}
