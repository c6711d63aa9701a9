// Package repositories provides persistence layer implementations for all model types.
//
// Each repository implements models.Repository[T] for a specific entity type,
// handling CRUD operations, soft deletes, and sequence generation.
// [SectionRepository] additionally satisfies feed.SnapshotStore, wiring the
// section cache into the feed client's caching decorator.
package repositories
