package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tadkalabs/tadka/internal/models"
	"github.com/tadkalabs/tadka/internal/shared"
)

// SectionRepository implements models.Repository[*models.SectionSnapshot]
// for the section cache.
//
// Handles snapshot CRUD with soft delete support and slug lookups. One live
// snapshot exists per slug; Put upserts in place.
type SectionRepository struct {
	db *sql.DB
}

// NewSectionRepository creates a new SectionRepository with the given database connection
func NewSectionRepository(db *sql.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// Create inserts a new snapshot into the database with generated ID and sequence
func (r *SectionRepository) Create(snap *models.SectionSnapshot) error {
	sequence, err := NextSequence(r.db, "sections")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	snap.SetID(id)

	if err := snap.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO sections (id, sequence, slug, payload, fetched_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		snap.Slug(),
		string(snap.Payload()),
		snap.FetchedAt(),
		snap.CreatedAt(),
		snap.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert section snapshot: %w", err)
	}

	return nil
}

// Get retrieves a snapshot by ID, excluding soft-deleted rows
func (r *SectionRepository) Get(id string) (*models.SectionSnapshot, error) {
	query := `
		SELECT id, sequence, slug, payload, fetched_at, created_at, updated_at, deleted_at
		FROM sections
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetBySlug retrieves the live snapshot for a section slug.
// Returns shared.ErrCacheMiss when no snapshot exists.
func (r *SectionRepository) GetBySlug(slug string) (*models.SectionSnapshot, error) {
	query := `
		SELECT id, sequence, slug, payload, fetched_at, created_at, updated_at, deleted_at
		FROM sections
		WHERE slug = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, slug))
}

// Put upserts the snapshot for a slug, implementing feed.SnapshotStore.
func (r *SectionRepository) Put(slug string, payload []byte, fetchedAt time.Time) error {
	existing, err := r.GetBySlug(slug)
	if err != nil && !errors.Is(err, shared.ErrCacheMiss) {
		return err
	}

	if existing == nil {
		return r.Create(models.NewSectionSnapshot(0, slug, payload, fetchedAt))
	}

	existing.SetPayload(payload)
	existing.SetFetchedAt(fetchedAt)
	return r.Update(existing)
}

// Update modifies an existing snapshot in the database
func (r *SectionRepository) Update(snap *models.SectionSnapshot) error {
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	snap.SetUpdatedAt(now)

	query := `
		UPDATE sections
		SET payload = ?, fetched_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, string(snap.Payload()), snap.FetchedAt(), now, snap.ID())
	if err != nil {
		return fmt.Errorf("failed to update section snapshot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("section snapshot not found or already deleted: %s", snap.ID())
	}

	return nil
}

// Delete soft-deletes a snapshot by ID
func (r *SectionRepository) Delete(id string) error {
	query := `UPDATE sections SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete section snapshot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("section snapshot not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves snapshots matching the given criteria.
// Supported criteria keys: slug.
func (r *SectionRepository) List(criteria map[string]any) ([]*models.SectionSnapshot, error) {
	query := `
		SELECT id, sequence, slug, payload, fetched_at, created_at, updated_at, deleted_at
		FROM sections
		WHERE deleted_at IS NULL
	`
	args := []any{}

	if slug, ok := criteria["slug"]; ok {
		query += " AND slug = ?"
		args = append(args, slug)
	}

	query += " ORDER BY sequence"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list section snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*models.SectionSnapshot
	for rows.Next() {
		snap, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

// Clear soft-deletes every live snapshot and returns the number removed.
func (r *SectionRepository) Clear() (int, error) {
	result, err := r.db.Exec(`UPDATE sections SET deleted_at = ? WHERE deleted_at IS NULL`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to clear section cache: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(rows), nil
}

type scannable interface {
	Scan(dest ...any) error
}

func (r *SectionRepository) scanOne(row *sql.Row) (*models.SectionSnapshot, error) {
	snap, err := r.scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrCacheMiss
	}
	return snap, err
}

func (r *SectionRepository) scanRow(row scannable) (*models.SectionSnapshot, error) {
	var (
		id, slug, payload               string
		sequence                        int
		fetchedAt, createdAt, updatedAt time.Time
		deletedAt                       *time.Time
	)

	if err := row.Scan(&id, &sequence, &slug, &payload, &fetchedAt, &createdAt, &updatedAt, &deletedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan section snapshot: %w", err)
	}

	return models.RestoreSectionSnapshot(id, sequence, slug, []byte(payload), fetchedAt, createdAt, updatedAt, deletedAt), nil
}
