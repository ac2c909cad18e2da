package layout

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/voltdeck/voltdeck/internal/catalog"
	"github.com/voltdeck/voltdeck/internal/store"
)

// Instance is one configured widget on the dashboard. The id is minted at
// creation and never reused; type is fixed for the instance's lifetime.
type Instance struct {
	ID    string
	Type  catalog.Type
	Title string
	Size  catalog.SizeClass
}

// State holds the full arrangement. order includes hidden entries; every
// id in hidden references an entry in order.
type State struct {
	catalog    *catalog.Catalog
	kv         store.KV
	storageKey string

	order  []Instance
	hidden map[string]bool

	warnf func(format string, args ...any)
}

// New builds a state seeded with catalog defaults. Callers wanting the
// stored arrangement follow up with Load.
func New(cat *catalog.Catalog, kv store.KV, storageKey string) *State {
	s := &State{catalog: cat, kv: kv, storageKey: storageKey, warnf: log.Printf}
	s.applyDefaults()
	return s
}

// SetWarnf redirects the soft-failure log Load writes to. The default is
// log.Printf.
func (s *State) SetWarnf(fn func(format string, args ...any)) {
	s.warnf = fn
}

func (s *State) applyDefaults() {
	s.order = nil
	s.hidden = map[string]bool{}
	for _, d := range s.catalog.Defaults() {
		s.order = append(s.order, newInstance(d))
	}
}

func newInstance(d catalog.Descriptor) Instance {
	return Instance{
		ID:    uuid.NewString(),
		Type:  d.Type,
		Title: d.DefaultTitle,
		Size:  d.DefaultSize,
	}
}

// Order returns the full arrangement, hidden entries included.
func (s *State) Order() []Instance {
	return append([]Instance(nil), s.order...)
}

// Visible returns the arrangement filtered to non-hidden entries, in order.
func (s *State) Visible() []Instance {
	out := make([]Instance, 0, len(s.order))
	for _, inst := range s.order {
		if s.hidden[inst.ID] {
			continue
		}
		out = append(out, inst)
	}
	return out
}

// HiddenInstances returns the hidden entries in arrangement order.
func (s *State) HiddenInstances() []Instance {
	var out []Instance
	for _, inst := range s.order {
		if s.hidden[inst.ID] {
			out = append(out, inst)
		}
	}
	return out
}

// Hidden reports whether id is currently hidden.
func (s *State) Hidden(id string) bool { return s.hidden[id] }

// IndexOf returns id's position in the full arrangement, or -1.
func (s *State) IndexOf(id string) int {
	for i, inst := range s.order {
		if inst.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the instance with the given id.
func (s *State) Get(id string) (Instance, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.order[i], true
	}
	return Instance{}, false
}

// Len is the number of instances, hidden included.
func (s *State) Len() int { return len(s.order) }

// Types returns the set of widget types currently on the dashboard.
func (s *State) Types() map[catalog.Type]bool {
	out := make(map[catalog.Type]bool, len(s.order))
	for _, inst := range s.order {
		out[inst.Type] = true
	}
	return out
}

// Add appends a new instance of t with catalog defaults and
// default-shown visibility.
func (s *State) Add(t catalog.Type) (Instance, error) {
	if s.Types()[t] {
		return Instance{}, fmt.Errorf("%w: %s", ErrDuplicateType, t)
	}
	d, err := s.catalog.Lookup(t)
	if err != nil {
		return Instance{}, err
	}
	inst := newInstance(d)
	s.order = append(s.order, inst)
	return inst, nil
}

// Remove deletes the instance from the arrangement and the hidden set.
func (s *State) Remove(id string) error {
	i := s.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.hidden, id)
	return nil
}

// Reorder moves id to target, shifting the entries in between. Relative
// order of everything else is preserved; moving to the current position is
// a no-op.
func (s *State) Reorder(id string, target int) error {
	i := s.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if target < 0 || target >= len(s.order) {
		return fmt.Errorf("%w: index %d", ErrNotFound, target)
	}
	if i == target {
		return nil
	}
	inst := s.order[i]
	s.order = append(s.order[:i], s.order[i+1:]...)
	s.order = append(s.order, Instance{})
	copy(s.order[target+1:], s.order[target:])
	s.order[target] = inst
	return nil
}

// Resize overwrites the instance's size class in place.
func (s *State) Resize(id string, size catalog.SizeClass) error {
	i := s.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.order[i].Size = size
	return nil
}

// ToggleVisible flips id's membership in the hidden set. Order is never
// affected by visibility.
func (s *State) ToggleVisible(id string) error {
	if s.IndexOf(id) < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if s.hidden[id] {
		delete(s.hidden, id)
	} else {
		s.hidden[id] = true
	}
	return nil
}

// Reset rebuilds the arrangement from catalog defaults and clears the
// stored record. The in-memory state is reset even when the removal fails;
// the error is surfaced as a warning.
func (s *State) Reset() error {
	s.applyDefaults()
	if err := s.kv.Remove(s.storageKey); err != nil {
		return fmt.Errorf("clear stored layout: %w", err)
	}
	return nil
}

// Save writes the current arrangement to the store. On failure the
// in-memory state stays valid and editing may continue.
func (s *State) Save() error {
	payload, err := encodeRecord(s.order, s.hidden)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := s.kv.Set(s.storageKey, payload); err != nil {
		return fmt.Errorf("store layout: %w", err)
	}
	return nil
}

// Load replaces the arrangement with the stored record reconciled against
// the catalog. Any failure (adapter or decode) falls back wholesale to
// catalog defaults and is logged; the state is always usable afterwards.
func (s *State) Load() {
	raw, ok, err := s.kv.Get(s.storageKey)
	if err != nil {
		s.applyDefaults()
		s.warnf("warn: read stored layout, using defaults: %v", err)
		return
	}
	if !ok {
		s.applyDefaults()
		return
	}
	rec, err := decodeRecord(raw)
	if err != nil {
		s.applyDefaults()
		s.warnf("warn: decode stored layout, using defaults: %v", err)
		return
	}
	s.reconcile(rec)
}

// reconcile repairs a stored record against the current catalog: entries
// with unknown types or invalid shape are dropped, surviving entries keep
// their relative order, defaults missing from the record are appended in
// catalog order, and the hidden set is filtered to survivors.
func (s *State) reconcile(rec layoutRecord) {
	seenID := make(map[string]bool, len(rec.Order))
	seenType := make(map[catalog.Type]bool, len(rec.Order))
	order := make([]Instance, 0, len(rec.Order))

	for _, e := range rec.Order {
		t := catalog.Type(e.Type)
		d, err := s.catalog.Lookup(t)
		if err != nil {
			continue // retired type
		}
		if e.ID == "" || seenID[e.ID] || seenType[t] {
			continue
		}
		size, err := catalog.ParseSize(e.Size)
		if err != nil {
			continue
		}
		title := e.Title
		if title == "" {
			title = d.DefaultTitle
		}
		order = append(order, Instance{ID: e.ID, Type: t, Title: title, Size: size})
		seenID[e.ID] = true
		seenType[t] = true
	}

	// newly introduced defaults appear for existing users, at the end
	for _, d := range s.catalog.Defaults() {
		if !seenType[d.Type] {
			order = append(order, newInstance(d))
		}
	}

	hidden := map[string]bool{}
	for _, id := range rec.Hidden {
		if seenID[id] {
			hidden[id] = true
		}
	}

	s.order = order
	s.hidden = hidden
}
