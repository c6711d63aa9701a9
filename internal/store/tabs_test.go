package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTabStore(t *testing.T) {
	t.Run("missing file yields empty store", func(t *testing.T) {
		s, err := NewTabStore(filepath.Join(t.TempDir(), "tabs.json"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := s.Get("box-office"); ok {
			t.Error("expected empty store")
		}
	})

	t.Run("corrupt file surfaces an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tabs.json")
		if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := NewTabStore(path); err == nil {
			t.Error("expected error for corrupt state file")
		}
	})

	t.Run("Set persists across reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tabs.json")

		s, err := NewTabStore(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Set("box-office", "coming_soon"); err != nil {
			t.Fatalf("failed to set: %v", err)
		}

		reopened, err := NewTabStore(path)
		if err != nil {
			t.Fatal(err)
		}
		if tab, ok := reopened.Get("box-office"); !ok || tab != "coming_soon" {
			t.Errorf("expected persisted tab coming_soon, got %q", tab)
		}
	})

	t.Run("subscribers receive changes", func(t *testing.T) {
		s, err := NewTabStore(filepath.Join(t.TempDir(), "tabs.json"))
		if err != nil {
			t.Fatal(err)
		}

		var gotRail, gotTab string
		calls := 0
		unsubscribe := s.Subscribe(func(railName, tab string) {
			gotRail, gotTab = railName, tab
			calls++
		})

		if err := s.Set("tadka-pics", "actress"); err != nil {
			t.Fatal(err)
		}
		if gotRail != "tadka-pics" || gotTab != "actress" {
			t.Errorf("subscriber saw %q/%q", gotRail, gotTab)
		}

		// unchanged value publishes nothing
		if err := s.Set("tadka-pics", "actress"); err != nil {
			t.Fatal(err)
		}
		if calls != 1 {
			t.Errorf("expected 1 notification, got %d", calls)
		}

		unsubscribe()
		if err := s.Set("tadka-pics", "events"); err != nil {
			t.Fatal(err)
		}
		if calls != 1 {
			t.Error("unsubscribed subscriber was notified")
		}
	})
}
