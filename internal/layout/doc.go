// Package layout is the dashboard layout engine: an ordered,
// partially-visible collection of widget instances reconciled against the
// catalog and persisted through a key-value store.
//
// Order always includes hidden entries; Visible is order minus the hidden
// set and is what gets rendered. Edits apply to the live state immediately
// and reach storage only on Save (or Reset, which clears the stored
// record). Load repairs whatever it finds against the current catalog and
// falls back wholesale to catalog defaults when the stored record cannot
// be decoded.
package layout
