package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tadkalabs/tadka/internal/feed"
	"github.com/tadkalabs/tadka/internal/models"
	"github.com/tadkalabs/tadka/internal/shared"
)

// HealthHandler responds to liveness probes.
type HealthHandler struct{}

func (h HealthHandler) Routes() []string {
	return []string{"GET /health"}
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// SectionHandler serves section payloads and per-tab item listings from a
// [feed.Service], typically a caching service backed by the local store.
type SectionHandler struct {
	service feed.Service
	logger  *log.Logger
}

// NewSectionHandler creates a handler over the given service.
func NewSectionHandler(service feed.Service, logger *log.Logger) *SectionHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &SectionHandler{service: service, logger: logger}
}

func (h *SectionHandler) Routes() []string {
	return []string{
		"GET /api/sections/{name}",
		"GET /api/sections/{name}/tabs/{tab}",
	}
}

func (h *SectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if tab := r.PathValue("tab"); tab != "" {
		h.serveTab(w, r, name, tab)
		return
	}
	h.serveSection(w, r, name)
}

func (h *SectionHandler) serveSection(w http.ResponseWriter, r *http.Request, name string) {
	payload, err := h.service.FetchSectionRaw(r.Context(), name)
	if err != nil {
		h.writeError(w, name, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func (h *SectionHandler) serveTab(w http.ResponseWriter, r *http.Request, name, tab string) {
	group, err := h.service.FetchSection(r.Context(), name)
	if err != nil {
		h.writeError(w, name, err)
		return
	}

	known := false
	for _, t := range group.Tabs() {
		if t == tab {
			known = true
			break
		}
	}
	if !known {
		http.Error(w, "tab not found", http.StatusNotFound)
		return
	}

	items := group.Items(tab)
	if items == nil {
		items = []models.MediaItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *SectionHandler) writeError(w http.ResponseWriter, name string, err error) {
	h.logger.Error("section request failed", "section", name, "err", err)

	switch {
	case errors.Is(err, shared.ErrSectionNotFound):
		http.Error(w, "section not found", http.StatusNotFound)
	case errors.Is(err, shared.ErrServiceUnavailable):
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
