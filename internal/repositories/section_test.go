package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/tadkalabs/tadka/internal/models"
	"github.com/tadkalabs/tadka/internal/shared"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestSectionRepository(t *testing.T) {
	payload := []byte(`{"movies": [{"id": 1, "title": "A"}]}`)

	t.Run("Create and Get", func(t *testing.T) {
		repo := NewSectionRepository(testDB(t))

		snap := models.NewSectionSnapshot(0, "box-office", payload, time.Now())
		if err := repo.Create(snap); err != nil {
			t.Fatalf("failed to create: %v", err)
		}
		if snap.ID() == "" {
			t.Fatal("expected generated id")
		}

		got, err := repo.Get(snap.ID())
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if got.Slug() != "box-office" {
			t.Errorf("expected slug box-office, got %s", got.Slug())
		}
		if string(got.Payload()) != string(payload) {
			t.Error("payload did not round-trip")
		}
		if got.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", got.Sequence())
		}
	})

	t.Run("GetBySlug", func(t *testing.T) {
		repo := NewSectionRepository(testDB(t))

		t.Run("missing slug returns cache miss", func(t *testing.T) {
			if _, err := repo.GetBySlug("nope"); !errors.Is(err, shared.ErrCacheMiss) {
				t.Errorf("expected ErrCacheMiss, got %v", err)
			}
		})

		t.Run("finds live snapshot", func(t *testing.T) {
			if err := repo.Create(models.NewSectionSnapshot(0, "tadka-pics", payload, time.Now())); err != nil {
				t.Fatalf("failed to create: %v", err)
			}

			got, err := repo.GetBySlug("tadka-pics")
			if err != nil {
				t.Fatalf("failed to get by slug: %v", err)
			}
			if got.Slug() != "tadka-pics" {
				t.Errorf("expected tadka-pics, got %s", got.Slug())
			}
		})
	})

	t.Run("Put upserts", func(t *testing.T) {
		repo := NewSectionRepository(testDB(t))
		first := time.Now().Add(-time.Hour)

		if err := repo.Put("box-office", payload, first); err != nil {
			t.Fatalf("initial put failed: %v", err)
		}

		updated := []byte(`{"movies": [{"id": 2, "title": "B"}]}`)
		if err := repo.Put("box-office", updated, time.Now()); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		snaps, err := repo.List(map[string]any{"slug": "box-office"})
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(snaps) != 1 {
			t.Fatalf("expected 1 live snapshot, got %d", len(snaps))
		}
		if string(snaps[0].Payload()) != string(updated) {
			t.Error("expected updated payload")
		}
		if snaps[0].Stale(15*time.Minute, time.Now()) {
			t.Error("upserted snapshot should be fresh")
		}
	})

	t.Run("Delete soft-deletes", func(t *testing.T) {
		repo := NewSectionRepository(testDB(t))

		snap := models.NewSectionSnapshot(0, "viral-shorts", payload, time.Now())
		if err := repo.Create(snap); err != nil {
			t.Fatalf("failed to create: %v", err)
		}

		if err := repo.Delete(snap.ID()); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if _, err := repo.Get(snap.ID()); !errors.Is(err, shared.ErrCacheMiss) {
			t.Errorf("expected cache miss after delete, got %v", err)
		}
		if err := repo.Delete(snap.ID()); err == nil {
			t.Error("second delete should fail")
		}
	})

	t.Run("List", func(t *testing.T) {
		repo := NewSectionRepository(testDB(t))

		for _, slug := range []string{"a", "b", "c"} {
			if err := repo.Create(models.NewSectionSnapshot(0, slug, payload, time.Now())); err != nil {
				t.Fatalf("failed to create %s: %v", slug, err)
			}
		}

		snaps, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(snaps) != 3 {
			t.Fatalf("expected 3 snapshots, got %d", len(snaps))
		}
		// sequence ordering
		for i := 1; i < len(snaps); i++ {
			if snaps[i].Sequence() <= snaps[i-1].Sequence() {
				t.Error("expected snapshots ordered by sequence")
			}
		}
	})

	t.Run("Clear", func(t *testing.T) {
		repo := NewSectionRepository(testDB(t))

		for _, slug := range []string{"a", "b"} {
			if err := repo.Create(models.NewSectionSnapshot(0, slug, payload, time.Now())); err != nil {
				t.Fatalf("failed to create: %v", err)
			}
		}

		n, err := repo.Clear()
		if err != nil {
			t.Fatalf("failed to clear: %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 cleared, got %d", n)
		}

		snaps, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(snaps) != 0 {
			t.Errorf("expected empty cache, got %d", len(snaps))
		}
	})

	t.Run("Put after Clear reuses slug", func(t *testing.T) {
		repo := NewSectionRepository(testDB(t))

		if err := repo.Put("box-office", payload, time.Now()); err != nil {
			t.Fatalf("initial put failed: %v", err)
		}
		if _, err := repo.Clear(); err != nil {
			t.Fatalf("failed to clear: %v", err)
		}

		refreshed := []byte(`{"movies": [{"id": 3, "title": "C"}]}`)
		if err := repo.Put("box-office", refreshed, time.Now()); err != nil {
			t.Fatalf("put after clear failed: %v", err)
		}

		got, err := repo.GetBySlug("box-office")
		if err != nil {
			t.Fatalf("failed to get by slug: %v", err)
		}
		if string(got.Payload()) != string(refreshed) {
			t.Error("expected refreshed payload")
		}
	})

	t.Run("Create validates", func(t *testing.T) {
		repo := NewSectionRepository(testDB(t))
		if err := repo.Create(models.NewSectionSnapshot(0, "", payload, time.Now())); err == nil {
			t.Error("expected validation error for missing slug")
		}
	})
}
