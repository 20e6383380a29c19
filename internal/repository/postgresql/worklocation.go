package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightserv/ops-backend-go/internal/domain/worklocation"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workLocationRepository struct {
	db *database.DB
}

func NewWorkLocationRepository(db *database.DB) worklocation.WorkLocationRepository {
	return &workLocationRepository{db: db}
}

const workLocationSelect = `
	SELECT l.id, l.employee_id, l.site_id, l.latitude, l.longitude, l.radius_meters,
		   l.allow_work_from_anywhere, l.status, l.reviewed_by, l.reviewed_at,
		   l.rejection_reason, l.created_at, l.updated_at, e.display_name, s.name
	FROM work_locations l
	JOIN employees e ON e.id = l.employee_id
	JOIN sites s ON s.id = l.site_id
`

func scanWorkLocation(row pgx.Row) (worklocation.WorkLocation, error) {
	var l worklocation.WorkLocation
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.SiteID, &l.Latitude, &l.Longitude, &l.RadiusMeters,
		&l.AllowWorkFromAnywhere, &l.Status, &l.ReviewedBy, &l.ReviewedAt,
		&l.RejectionReason, &l.CreatedAt, &l.UpdatedAt, &l.EmployeeName, &l.SiteName,
	)
	return l, err
}

func (r *workLocationRepository) Create(ctx context.Context, l worklocation.WorkLocation) (worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	query := `
		INSERT INTO work_locations
			(id, employee_id, site_id, latitude, longitude, radius_meters, allow_work_from_anywhere, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.SiteID, l.Latitude, l.Longitude,
		l.RadiusMeters, l.AllowWorkFromAnywhere, l.Status,
	).Scan(&l.ID)
	if err != nil {
		return worklocation.WorkLocation{}, fmt.Errorf("failed to create work location: %w", err)
	}

	return r.GetByID(ctx, l.ID)
}

func (r *workLocationRepository) GetByID(ctx context.Context, id string) (worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanWorkLocation(q.QueryRow(ctx, workLocationSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worklocation.WorkLocation{}, worklocation.ErrLocationNotFound
		}
		return worklocation.WorkLocation{}, fmt.Errorf("failed to get work location: %w", err)
	}

	return l, nil
}

func (r *workLocationRepository) GetApproved(ctx context.Context, employeeID, siteID string) (*worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := workLocationSelect + `
		WHERE l.employee_id = $1 AND l.site_id = $2 AND l.status = $3
		ORDER BY l.updated_at DESC
		LIMIT 1
	`

	l, err := scanWorkLocation(q.QueryRow(ctx, query, employeeID, siteID, worklocation.StatusApproved))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get approved work location: %w", err)
	}

	return &l, nil
}

func (r *workLocationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]worklocation.WorkLocation, error) {
	return r.list(ctx, workLocationSelect+` WHERE l.employee_id = $1 ORDER BY l.created_at DESC`, employeeID)
}

func (r *workLocationRepository) ListByStatus(ctx context.Context, status worklocation.Status) ([]worklocation.WorkLocation, error) {
	return r.list(ctx, workLocationSelect+` WHERE l.status = $1 ORDER BY l.created_at`, status)
}

func (r *workLocationRepository) list(ctx context.Context, query string, args ...interface{}) ([]worklocation.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work locations: %w", err)
	}
	defer rows.Close()

	var locations []worklocation.WorkLocation
	for rows.Next() {
		l, err := scanWorkLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work location: %w", err)
		}
		locations = append(locations, l)
	}

	return locations, rows.Err()
}

func (r *workLocationRepository) Update(ctx context.Context, l worklocation.WorkLocation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_locations
		SET latitude = $2, longitude = $3, radius_meters = $4, allow_work_from_anywhere = $5,
			status = $6, reviewed_by = $7, reviewed_at = $8, rejection_reason = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		l.ID, l.Latitude, l.Longitude, l.RadiusMeters, l.AllowWorkFromAnywhere,
		l.Status, l.ReviewedBy, l.ReviewedAt, l.RejectionReason,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worklocation.ErrLocationNotFound
		}
		return fmt.Errorf("failed to update work location: %w", err)
	}

	return nil
}

func (r *workLocationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worklocation.ErrLocationNotFound
	}

	return nil
}
