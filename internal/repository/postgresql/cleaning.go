package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightserv/ops-backend-go/internal/domain/cleaning"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type cleaningEntryRepository struct {
	db *database.DB
}

func NewCleaningEntryRepository(db *database.DB) cleaning.EntryRepository {
	return &cleaningEntryRepository{db: db}
}

const cleaningEntrySelect = `
	SELECT c.id, c.site_id, c.date, c.areas, c.notes, c.completed_by,
		   c.created_at, c.updated_at, s.name, e.display_name
	FROM cleaning_entries c
	JOIN sites s ON s.id = c.site_id
	JOIN employees e ON e.id = c.completed_by
`

func scanCleaningEntry(row pgx.Row) (cleaning.Entry, error) {
	var e cleaning.Entry
	err := row.Scan(
		&e.ID, &e.SiteID, &e.Date, &e.Areas, &e.Notes, &e.CompletedBy,
		&e.CreatedAt, &e.UpdatedAt, &e.SiteName, &e.CompletedByName,
	)
	return e, err
}

func (r *cleaningEntryRepository) Create(ctx context.Context, e cleaning.Entry) (cleaning.Entry, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, `
		INSERT INTO cleaning_entries (id, site_id, date, areas, notes, completed_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, e.ID, e.SiteID, e.Date, e.Areas, e.Notes, e.CompletedBy).Scan(&e.ID)
	if err != nil {
		return cleaning.Entry{}, fmt.Errorf("failed to create cleaning entry: %w", err)
	}

	return r.GetByID(ctx, e.ID)
}

func (r *cleaningEntryRepository) GetByID(ctx context.Context, id string) (cleaning.Entry, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanCleaningEntry(q.QueryRow(ctx, cleaningEntrySelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cleaning.Entry{}, cleaning.ErrEntryNotFound
		}
		return cleaning.Entry{}, fmt.Errorf("failed to get cleaning entry: %w", err)
	}

	return e, nil
}

func (r *cleaningEntryRepository) List(ctx context.Context, filter cleaning.EntryFilter) ([]cleaning.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := cleaningEntrySelect + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.SiteID != nil {
		query += fmt.Sprintf(` AND c.site_id = $%d`, argIdx)
		args = append(args, *filter.SiteID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		query += fmt.Sprintf(` AND c.date >= $%d`, argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		query += fmt.Sprintf(` AND c.date <= $%d`, argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += ` ORDER BY c.date DESC, c.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cleaning entries: %w", err)
	}
	defer rows.Close()

	var entries []cleaning.Entry
	for rows.Next() {
		e, err := scanCleaningEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cleaning entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *cleaningEntryRepository) Update(ctx context.Context, e cleaning.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cleaning_entries
		SET areas = $2, notes = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, e.ID, e.Areas, e.Notes).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cleaning.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update cleaning entry: %w", err)
	}

	return nil
}

func (r *cleaningEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM cleaning_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cleaning entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cleaning.ErrEntryNotFound
	}

	return nil
}
