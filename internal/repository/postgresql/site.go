package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightserv/ops-backend-go/internal/domain/site"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepository{db: db}
}

func scanSite(row pgx.Row) (site.Site, error) {
	var s site.Site
	err := row.Scan(
		&s.ID, &s.ClientID, &s.Name, &s.Address, &s.Latitude, &s.Longitude,
		&s.Notes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt, &s.ClientName,
	)
	return s, err
}

const siteSelect = `
	SELECT s.id, s.client_id, s.name, s.address, s.latitude, s.longitude,
		   s.notes, s.is_active, s.created_at, s.updated_at, c.name
	FROM sites s
	JOIN clients c ON c.id = s.client_id
`

func (r *siteRepository) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO sites (id, client_id, name, address, latitude, longitude, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.ClientID, s.Name, s.Address, s.Latitude, s.Longitude, s.Notes, s.IsActive,
	).Scan(&s.ID)
	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return r.GetByID(ctx, s.ID)
}

func (r *siteRepository) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSite(q.QueryRow(ctx, siteSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return s, nil
}

func (r *siteRepository) List(ctx context.Context, clientID *string, activeOnly bool) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := siteSelect + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if clientID != nil {
		query += fmt.Sprintf(` AND s.client_id = $%d`, argIdx)
		args = append(args, *clientID)
		argIdx++
	}
	if activeOnly {
		query += ` AND s.is_active = true`
	}
	query += ` ORDER BY s.name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	return sites, rows.Err()
}

func (r *siteRepository) Update(ctx context.Context, s site.Site) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sites
		SET name = $2, address = $3, latitude = $4, longitude = $5,
			notes = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.Address, s.Latitude, s.Longitude, s.Notes, s.IsActive,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.ErrSiteNotFound
		}
		return fmt.Errorf("failed to update site: %w", err)
	}

	return nil
}

func (r *siteRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}
