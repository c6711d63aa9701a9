package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tadkalabs/tadka/internal/models"
	"github.com/tadkalabs/tadka/internal/shared"
)

type fakeFeed struct {
	payloads map[string][]byte
	errs     map[string]error
}

func (f *fakeFeed) FetchSectionRaw(_ context.Context, slug string) ([]byte, error) {
	if err, ok := f.errs[slug]; ok {
		return nil, err
	}
	p, ok := f.payloads[slug]
	if !ok {
		return nil, shared.ErrSectionNotFound
	}
	return p, nil
}

func (f *fakeFeed) FetchSection(ctx context.Context, slug string) (*models.MediaGroup, error) {
	payload, err := f.FetchSectionRaw(ctx, slug)
	if err != nil {
		return nil, err
	}
	return models.ParseGroup(payload)
}

func (f *fakeFeed) Name() string { return "fake" }

func newTestRouter(svc *fakeFeed) *BasicRouter {
	router := NewBasicRouter()
	router.Handler(HealthHandler{})
	router.Handler(NewSectionHandler(svc, log.New(&strings.Builder{})))
	return router
}

func TestBasicRouter(t *testing.T) {
	t.Run("rejects wrong method", func(t *testing.T) {
		router := newTestRouter(&fakeFeed{})

		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})

	t.Run("applies middleware in order", func(t *testing.T) {
		var order []string
		mw := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(mw("first"), mw("second"))
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("unexpected middleware order: %v", order)
		}
	})
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter(&fakeFeed{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected ok status, got %q", body["status"])
	}
}

func TestSectionHandler(t *testing.T) {
	trending := []byte(`{"videos":[{"id":1,"title":"First"},{"id":2,"title":"Second"}],"photos":[]}`)

	svc := &fakeFeed{
		payloads: map[string][]byte{"trending": trending},
		errs:     map[string]error{"broken": shared.ErrServiceUnavailable},
	}
	router := newTestRouter(svc)

	t.Run("serves section payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sections/trending", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); got != "application/json" {
			t.Errorf("expected JSON content type, got %q", got)
		}
		if rec.Body.String() != string(trending) {
			t.Errorf("payload not served verbatim")
		}
	})

	t.Run("serves one tab's items", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sections/trending/tabs/videos", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var items []models.MediaItem
		if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("empty tab serves empty array", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sections/trending/tabs/photos", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Errorf("expected empty array, got %q", got)
		}
	})

	t.Run("unknown tab returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sections/trending/tabs/reviews", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("unknown section returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sections/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("upstream failure returns 502", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sections/broken", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", rec.Code)
		}
	})
}
