package models

import (
	"fmt"
	"time"
)

// SectionSnapshot is a cached raw section payload fetched from the portal.
//
// Implements [Model]. The payload stays opaque JSON so the cache round-trips
// exactly what the portal served; parsing happens at read time via
// [ParseGroup].
type SectionSnapshot struct {
	id        string
	sequence  int
	slug      string
	payload   []byte
	fetchedAt time.Time
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewSectionSnapshot creates a snapshot for a section slug with the raw payload and fetch time.
func NewSectionSnapshot(sequence int, slug string, payload []byte, fetchedAt time.Time) *SectionSnapshot {
	now := time.Now()
	return &SectionSnapshot{
		sequence:  sequence,
		slug:      slug,
		payload:   payload,
		fetchedAt: fetchedAt,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreSectionSnapshot rebuilds a snapshot from persisted column values.
func RestoreSectionSnapshot(id string, sequence int, slug string, payload []byte, fetchedAt, createdAt, updatedAt time.Time, deletedAt *time.Time) *SectionSnapshot {
	return &SectionSnapshot{
		id:        id,
		sequence:  sequence,
		slug:      slug,
		payload:   payload,
		fetchedAt: fetchedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: deletedAt,
	}
}

func (s *SectionSnapshot) ID() string           { return s.id }
func (s *SectionSnapshot) Sequence() int        { return s.sequence }
func (s *SectionSnapshot) Slug() string         { return s.slug }
func (s *SectionSnapshot) Payload() []byte      { return s.payload }
func (s *SectionSnapshot) FetchedAt() time.Time { return s.fetchedAt }
func (s *SectionSnapshot) CreatedAt() time.Time { return s.createdAt }
func (s *SectionSnapshot) UpdatedAt() time.Time { return s.updatedAt }
func (s *SectionSnapshot) DeletedAt() *time.Time {
	return s.deletedAt
}

func (s *SectionSnapshot) SetID(id string)           { s.id = id }
func (s *SectionSnapshot) SetPayload(p []byte)       { s.payload = p }
func (s *SectionSnapshot) SetFetchedAt(t time.Time)  { s.fetchedAt = t }
func (s *SectionSnapshot) SetUpdatedAt(t time.Time)  { s.updatedAt = t }
func (s *SectionSnapshot) SetDeletedAt(t *time.Time) { s.deletedAt = t }

// Stale reports whether the snapshot is older than ttl.
func (s *SectionSnapshot) Stale(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.fetchedAt) > ttl
}

// Group parses the cached payload into a MediaGroup.
func (s *SectionSnapshot) Group() (*MediaGroup, error) {
	return ParseGroup(s.payload)
}

// Validate checks if the snapshot's data is valid.
func (s *SectionSnapshot) Validate() error {
	if s.slug == "" {
		return fmt.Errorf("section snapshot requires a slug")
	}
	if len(s.payload) == 0 {
		return fmt.Errorf("section snapshot requires a payload")
	}
	if s.fetchedAt.IsZero() {
		return fmt.Errorf("section snapshot requires a fetch time")
	}
	return nil
}
