// Package models defines domain entities and persistence interfaces for the tadka portal client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Structs representing portal section data
//   - [MediaItem] : One content card (article, video, or image) with a stable id
//   - [MediaGroup] : Grouped items keyed by tab, with deterministic tab ordering
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [SectionSnapshot] : A cached raw section payload with fetch timestamps
//
// All portal JSON passes through [MediaItem.UnmarshalJSON] and [ParseGroup] at the
// ingestion boundary, so downstream packages always see one canonical shape:
// ids are strings, image lists are string slices, and nested tab buckets
// (this_week / coming_soon) are flattened into suffixed tab keys.
//
// Persistent entities implement the [Model] interface providing ID generation,
// timestamps, validation, and soft delete support. The [Repository] interface
// defines standard CRUD operations for database access.
package models
