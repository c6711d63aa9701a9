package feed

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tadkalabs/tadka/internal/models"
)

// SnapshotStore persists section snapshots for the caching decorator.
// Implemented by repositories.SectionRepository.
type SnapshotStore interface {
	GetBySlug(slug string) (*models.SectionSnapshot, error)
	Put(slug string, payload []byte, fetchedAt time.Time) error
}

// CachingService decorates a Service with a snapshot store and TTL.
type CachingService struct {
	inner  Service
	store  SnapshotStore
	ttl    time.Duration
	logger *log.Logger
	now    func() time.Time
}

// NewCachingService wraps inner with snapshot caching.
func NewCachingService(inner Service, store SnapshotStore, ttl time.Duration, logger *log.Logger) *CachingService {
	if logger == nil {
		logger = log.Default()
	}
	return &CachingService{
		inner:  inner,
		store:  store,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Name returns the service name.
func (c *CachingService) Name() string {
	return c.inner.Name() + " (cached)"
}

// FetchSection retrieves and parses one section's grouped items, preferring
// fresh cache hits.
func (c *CachingService) FetchSection(ctx context.Context, slug string) (*models.MediaGroup, error) {
	payload, err := c.FetchSectionRaw(ctx, slug)
	if err != nil {
		return nil, err
	}
	return models.ParseGroup(payload)
}

// FetchSectionRaw serves a fresh cached payload when one exists, fetching
// and re-caching otherwise. An upstream failure with a stale snapshot on
// hand serves the stale payload instead of the error.
func (c *CachingService) FetchSectionRaw(ctx context.Context, slug string) ([]byte, error) {
	cached, cacheErr := c.store.GetBySlug(slug)
	if cacheErr == nil && cached != nil && !cached.Stale(c.ttl, c.now()) {
		return cached.Payload(), nil
	}

	payload, err := c.inner.FetchSectionRaw(ctx, slug)
	if err != nil {
		if cacheErr == nil && cached != nil {
			c.logger.Warn("serving stale section after fetch failure", "section", slug, "err", err)
			return cached.Payload(), nil
		}
		return nil, err
	}

	if err := c.store.Put(slug, payload, c.now()); err != nil {
		// a cache write failure never fails the read path
		c.logger.Warn("failed to cache section", "section", slug, "err", err)
	}

	return payload, nil
}
