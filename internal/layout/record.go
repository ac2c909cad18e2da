package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// recordVersion guards the stored schema. Records with any other version
// are treated as undecodable and fall back to defaults.
const recordVersion = 1

type layoutRecord struct {
	Version int           `json:"version"`
	Order   []recordEntry `json:"order"`
	Hidden  []string      `json:"hidden,omitempty"`
}

type recordEntry struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Size  string `json:"size"`
}

func encodeRecord(order []Instance, hidden map[string]bool) (string, error) {
	rec := layoutRecord{Version: recordVersion, Order: make([]recordEntry, 0, len(order))}
	for _, inst := range order {
		rec.Order = append(rec.Order, recordEntry{
			ID:    inst.ID,
			Type:  string(inst.Type),
			Title: inst.Title,
			Size:  string(inst.Size),
		})
	}
	for id := range hidden {
		rec.Hidden = append(rec.Hidden, id)
	}
	sort.Strings(rec.Hidden)
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeRecord(raw string) (layoutRecord, error) {
	var rec layoutRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return layoutRecord{}, err
	}
	if rec.Version != recordVersion {
		return layoutRecord{}, fmt.Errorf("unsupported layout record version %d", rec.Version)
	}
	if rec.Order == nil {
		return layoutRecord{}, errors.New("layout record missing order")
	}
	return rec, nil
}
