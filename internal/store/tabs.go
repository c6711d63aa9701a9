// Package store persists UI state that survives navigation: the last active
// tab per rail.
//
// The store is an explicit subscribe/publish object injected into
// components, replacing ambient window-level listeners. State is written
// atomically to a JSON file so a crash never leaves a torn file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Subscriber receives tab-change notifications.
type Subscriber func(railName, tab string)

// TabStore holds the last active tab per rail with pub/sub change
// notification and atomic JSON persistence.
type TabStore struct {
	path string

	mu      sync.RWMutex
	tabs    map[string]string
	subs    map[int]Subscriber
	nextSub int
}

// NewTabStore opens the store backed by the JSON file at path.
// A missing file yields an empty store and no error; a corrupt file is
// surfaced so callers can log it.
func NewTabStore(path string) (*TabStore, error) {
	s := &TabStore{
		path: path,
		tabs: map[string]string{},
		subs: map[int]Subscriber{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read tab state: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.tabs); err != nil {
			return nil, fmt.Errorf("decode tab state: %w", err)
		}
	}

	return s, nil
}

// Get returns the stored tab for a rail.
func (s *TabStore) Get(railName string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tab, ok := s.tabs[railName]
	return tab, ok
}

// Set stores the active tab for a rail, persists, and notifies subscribers.
func (s *TabStore) Set(railName, tab string) error {
	s.mu.Lock()
	if s.tabs[railName] == tab {
		s.mu.Unlock()
		return nil
	}
	s.tabs[railName] = tab
	subs := make([]Subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	err := s.save()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(railName, tab)
	}

	return err
}

// Subscribe registers fn for change notifications and returns an
// unsubscribe function.
func (s *TabStore) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// save writes the state atomically: temp file, then rename.
// Callers must hold the write lock.
func (s *TabStore) save() error {
	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	data, err := json.MarshalIndent(s.tabs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tab state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}

	return nil
}
