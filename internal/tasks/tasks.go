// Package tasks implements bulk operations over portal sections.
//
// The core type is RefreshEngine, which re-fetches configured sections into
// the local cache. Operations emit progress updates via channels for
// non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/tadkalabs/tadka/internal/feed"
	"github.com/tadkalabs/tadka/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchSection Phase = iota
	StoreSection
	Summarize
)

func (p Phase) String() string {
	switch p {
	case FetchSection:
		return "fetch_section"
	case StoreSection:
		return "store_section"
	case Summarize:
		return "summarize"
	default:
		return "unknown"
	}
}

// SectionResult is the outcome of refreshing one section.
type SectionResult struct {
	Slug  string // Section slug
	Tabs  int    // Tab count in the fetched payload
	Items int    // Total items across tabs
	Err   error  // Error if the refresh failed
}

// RefreshRunResult contains all data from a full refresh operation.
type RefreshRunResult struct {
	Sections     []SectionResult // Individual section results
	SuccessCount int             // Number of sections refreshed
	FailedCount  int             // Number of failed sections
	Total        int             // Total sections processed
}

// RefreshEngine re-fetches portal sections into the snapshot store.
type RefreshEngine struct {
	service feed.Service
	store   feed.SnapshotStore
	now     func() time.Time
}

// NewRefreshEngine creates an engine over the given feed service and store.
func NewRefreshEngine(service feed.Service, store feed.SnapshotStore) *RefreshEngine {
	return &RefreshEngine{service: service, store: store, now: time.Now}
}

// Run refreshes every slug in order, sending progress updates when the
// channel is non-nil. Individual section failures are recorded and the run
// continues; the returned error covers only context cancellation.
func (e *RefreshEngine) Run(ctx context.Context, slugs []string, progress chan<- ProgressUpdate) (*RefreshRunResult, error) {
	result := &RefreshRunResult{Total: len(slugs)}

	for i, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("refresh cancelled: %w", err)
		}

		emit(progress, ProgressUpdate{
			Phase:   FetchSection,
			Step:    i + 1,
			Total:   len(slugs),
			Message: fmt.Sprintf("Fetching %s", slug),
		})

		sr := e.refreshOne(ctx, slug)
		result.Sections = append(result.Sections, sr)

		if sr.Err != nil {
			result.FailedCount++
			continue
		}
		result.SuccessCount++

		emit(progress, ProgressUpdate{
			Phase:   StoreSection,
			Step:    i + 1,
			Total:   len(slugs),
			Message: fmt.Sprintf("Cached %s (%d tabs, %d items)", slug, sr.Tabs, sr.Items),
		})
	}

	emit(progress, ProgressUpdate{
		Phase:   Summarize,
		Step:    len(slugs),
		Total:   len(slugs),
		Message: fmt.Sprintf("Refreshed %d/%d sections", result.SuccessCount, result.Total),
		Data:    result,
	})

	return result, nil
}

func (e *RefreshEngine) refreshOne(ctx context.Context, slug string) SectionResult {
	sr := SectionResult{Slug: slug}

	payload, err := e.service.FetchSectionRaw(ctx, slug)
	if err != nil {
		sr.Err = fmt.Errorf("fetch %s: %w", slug, err)
		return sr
	}

	group, err := models.ParseGroup(payload)
	if err != nil {
		sr.Err = fmt.Errorf("parse %s: %w", slug, err)
		return sr
	}

	sr.Tabs = group.Len()
	for _, tab := range group.Tabs() {
		sr.Items += len(group.Items(tab))
	}

	if err := e.store.Put(slug, payload, e.now()); err != nil {
		sr.Err = fmt.Errorf("store %s: %w", slug, err)
	}

	return sr
}

func emit(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress != nil {
		progress <- update
	}
}
