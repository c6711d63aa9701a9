package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tadkalabs/tadka/internal/models"
	"github.com/tadkalabs/tadka/internal/shared"
)

type stubService struct {
	payloads map[string][]byte
	errs     map[string]error
	calls    []string
}

func (s *stubService) FetchSectionRaw(_ context.Context, slug string) ([]byte, error) {
	s.calls = append(s.calls, slug)
	if err, ok := s.errs[slug]; ok {
		return nil, err
	}
	return s.payloads[slug], nil
}

func (s *stubService) FetchSection(_ context.Context, _ string) (*models.MediaGroup, error) {
	return nil, nil
}

func (s *stubService) Name() string { return "stub" }

type recordStore struct {
	puts map[string][]byte
	err  error
}

func (r *recordStore) GetBySlug(string) (*models.SectionSnapshot, error) {
	return nil, shared.ErrCacheMiss
}

func (r *recordStore) Put(slug string, payload []byte, _ time.Time) error {
	if r.err != nil {
		return r.err
	}
	if r.puts == nil {
		r.puts = map[string][]byte{}
	}
	r.puts[slug] = payload
	return nil
}

func TestRefreshEngine(t *testing.T) {
	trending := []byte(`{"videos":[{"id":1},{"id":2}],"photos":[{"id":3}]}`)
	movies := []byte(`{"reviews":[{"id":4}]}`)

	t.Run("refreshes all sections", func(t *testing.T) {
		svc := &stubService{payloads: map[string][]byte{"trending": trending, "movies": movies}}
		store := &recordStore{}
		engine := NewRefreshEngine(svc, store)

		result, err := engine.Run(context.Background(), []string{"trending", "movies"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.SuccessCount != 2 || result.FailedCount != 0 {
			t.Errorf("expected 2 successes, got %d/%d", result.SuccessCount, result.FailedCount)
		}

		if len(store.puts) != 2 {
			t.Errorf("expected 2 cached payloads, got %d", len(store.puts))
		}

		first := result.Sections[0]
		if first.Tabs != 2 || first.Items != 3 {
			t.Errorf("expected 2 tabs and 3 items for trending, got %d/%d", first.Tabs, first.Items)
		}
	})

	t.Run("continues past a failed section", func(t *testing.T) {
		svc := &stubService{
			payloads: map[string][]byte{"movies": movies},
			errs:     map[string]error{"trending": shared.ErrAPIRequest},
		}
		store := &recordStore{}
		engine := NewRefreshEngine(svc, store)

		result, err := engine.Run(context.Background(), []string{"trending", "movies"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.SuccessCount != 1 || result.FailedCount != 1 {
			t.Errorf("expected 1 success and 1 failure, got %d/%d", result.SuccessCount, result.FailedCount)
		}

		if !errors.Is(result.Sections[0].Err, shared.ErrAPIRequest) {
			t.Errorf("expected wrapped API error, got %v", result.Sections[0].Err)
		}

		if _, ok := store.puts["movies"]; !ok {
			t.Error("expected movies to be cached despite trending failure")
		}
	})

	t.Run("records store failures", func(t *testing.T) {
		svc := &stubService{payloads: map[string][]byte{"trending": trending}}
		store := &recordStore{err: errors.New("disk full")}
		engine := NewRefreshEngine(svc, store)

		result, err := engine.Run(context.Background(), []string{"trending"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.FailedCount != 1 {
			t.Errorf("expected store failure to count as failed, got %d", result.FailedCount)
		}
	})

	t.Run("emits ordered progress updates", func(t *testing.T) {
		svc := &stubService{payloads: map[string][]byte{"trending": trending}}
		engine := NewRefreshEngine(svc, &recordStore{})

		progress := make(chan ProgressUpdate, 8)
		if _, err := engine.Run(context.Background(), []string{"trending"}, progress); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		close(progress)

		var phases []Phase
		for u := range progress {
			phases = append(phases, u.Phase)
		}

		want := []Phase{FetchSection, StoreSection, Summarize}
		if len(phases) != len(want) {
			t.Fatalf("expected %d updates, got %d", len(want), len(phases))
		}
		for i, p := range want {
			if phases[i] != p {
				t.Errorf("update %d: expected %s, got %s", i, p, phases[i])
			}
		}
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		svc := &stubService{payloads: map[string][]byte{"trending": trending}}
		engine := NewRefreshEngine(svc, &recordStore{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := engine.Run(ctx, []string{"trending", "movies"}, nil)
		if err == nil {
			t.Fatal("expected cancellation error")
		}
		if result.Total != 2 || len(result.Sections) != 0 {
			t.Errorf("expected no sections processed, got %d", len(result.Sections))
		}
		if len(svc.calls) != 0 {
			t.Errorf("expected no fetches after cancellation, got %d", len(svc.calls))
		}
	})
}
