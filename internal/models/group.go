package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MediaGroup maps tab keys to ordered item sequences.
//
// Tab order follows document order of the source payload. Lookups for
// unknown tabs return an empty sequence, never an error.
type MediaGroup struct {
	tabs  []string
	items map[string][]MediaItem
}

// NewMediaGroup builds a group from ordered tab keys and their item lists.
// Keys in tabs without a matching entry resolve to empty sequences.
func NewMediaGroup(tabs []string, items map[string][]MediaItem) *MediaGroup {
	g := &MediaGroup{items: map[string][]MediaItem{}}
	for _, tab := range tabs {
		g.tabs = append(g.tabs, tab)
		g.items[tab] = items[tab]
	}
	return g
}

// Tabs returns the tab keys in document order.
func (g *MediaGroup) Tabs() []string {
	return g.tabs
}

// Items returns the ordered item sequence for a tab.
// Unknown tabs resolve to an empty sequence.
func (g *MediaGroup) Items(tab string) []MediaItem {
	return g.items[tab]
}

// Len returns the number of tabs in the group.
func (g *MediaGroup) Len() int {
	return len(g.tabs)
}

// ParseGroup decodes a grouped section payload into a MediaGroup.
//
// Two payload shapes exist:
//
//	{ "tab": [items] }
//	{ "tab": { "this_week": [items], "coming_soon": [items] } }
//
// The nested shape is flattened: inner bucket keys become tab keys. Tab
// order follows the document, read via the token stream since map decoding
// would lose it.
func ParseGroup(data []byte) (*MediaGroup, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode section payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: section payload must be a JSON object", errBadPayload)
	}

	g := &MediaGroup{items: map[string][]MediaItem{}}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode section payload: %w", err)
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode tab %q: %w", key, err)
		}

		if err := g.addTab(key, raw); err != nil {
			return nil, err
		}
	}

	return g, nil
}

var errBadPayload = fmt.Errorf("malformed section payload")

// addTab handles one top-level key: an array becomes a tab directly, an
// object is flattened one level deep.
func (g *MediaGroup) addTab(key string, raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		g.put(key, nil)
		return nil
	}

	switch trimmed[0] {
	case '[':
		var items []MediaItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("failed to decode items for tab %q: %w", key, err)
		}
		g.put(key, items)
	case '{':
		inner, err := ParseGroup(trimmed)
		if err != nil {
			return fmt.Errorf("failed to decode nested tab %q: %w", key, err)
		}
		for _, tab := range inner.Tabs() {
			g.put(tab, inner.Items(tab))
		}
	default:
		// scalar values (nulls, counts) are not tabs; skip them
	}

	return nil
}

func (g *MediaGroup) put(tab string, items []MediaItem) {
	if _, seen := g.items[tab]; !seen {
		g.tabs = append(g.tabs, tab)
	}
	g.items[tab] = items
}
