package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/workrecord"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workRecordRepository struct {
	db *database.DB
}

func NewWorkRecordRepository(db *database.DB) workrecord.WorkRecordRepository {
	return &workRecordRepository{db: db}
}

const workRecordSelect = `
	SELECT w.id, w.employee_id, w.site_id, w.date, w.clock_in, w.clock_out,
		   w.minutes_worked, w.is_leave, w.leave_type, w.approval_status,
		   w.clock_in_latitude, w.clock_in_longitude, w.clock_out_latitude, w.clock_out_longitude,
		   w.rejection_reason, w.created_at, w.updated_at, e.display_name, s.name
	FROM work_records w
	JOIN employees e ON e.id = w.employee_id
	LEFT JOIN sites s ON s.id = w.site_id
`

func scanWorkRecord(row pgx.Row) (workrecord.WorkRecord, error) {
	var rec workrecord.WorkRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.SiteID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.MinutesWorked, &rec.IsLeave, &rec.LeaveType, &rec.ApprovalStatus,
		&rec.ClockInLatitude, &rec.ClockInLongitude, &rec.ClockOutLatitude, &rec.ClockOutLongitude,
		&rec.RejectionReason, &rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.SiteName,
	)
	return rec, err
}

func (r *workRecordRepository) Create(ctx context.Context, rec workrecord.WorkRecord) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO work_records
			(id, employee_id, site_id, date, clock_in, clock_out, minutes_worked,
			 is_leave, leave_type, approval_status,
			 clock_in_latitude, clock_in_longitude, clock_out_latitude, clock_out_longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.SiteID, rec.Date, rec.ClockIn, rec.ClockOut, rec.MinutesWorked,
		rec.IsLeave, rec.LeaveType, rec.ApprovalStatus,
		rec.ClockInLatitude, rec.ClockInLongitude, rec.ClockOutLatitude, rec.ClockOutLongitude,
	).Scan(&rec.ID)
	if err != nil {
		if strings.Contains(err.Error(), "work_records_employee_date_key") {
			return workrecord.WorkRecord{}, workrecord.ErrDayAlreadyCovered
		}
		return workrecord.WorkRecord{}, fmt.Errorf("failed to create work record: %w", err)
	}

	return r.GetByID(ctx, rec.ID)
}

func (r *workRecordRepository) GetByID(ctx context.Context, id string) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanWorkRecord(q.QueryRow(ctx, workRecordSelect+` WHERE w.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workrecord.WorkRecord{}, workrecord.ErrRecordNotFound
		}
		return workrecord.WorkRecord{}, fmt.Errorf("failed to get work record: %w", err)
	}

	return rec, nil
}

func (r *workRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := workRecordSelect + ` WHERE w.employee_id = $1 AND w.date = $2`

	rec, err := scanWorkRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work record by day: %w", err)
	}

	return &rec, nil
}

func (r *workRecordRepository) GetOpenSession(ctx context.Context, employeeID string) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := workRecordSelect + `
		WHERE w.employee_id = $1 AND w.clock_in IS NOT NULL AND w.clock_out IS NULL
		ORDER BY w.date DESC
		LIMIT 1
	`

	rec, err := scanWorkRecord(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workrecord.WorkRecord{}, workrecord.ErrNotClockedIn
		}
		return workrecord.WorkRecord{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return rec, nil
}

func (r *workRecordRepository) Update(ctx context.Context, rec workrecord.WorkRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_records
		SET clock_in = $2, clock_out = $3, minutes_worked = $4, approval_status = $5,
			clock_out_latitude = $6, clock_out_longitude = $7, rejection_reason = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		rec.ID, rec.ClockIn, rec.ClockOut, rec.MinutesWorked, rec.ApprovalStatus,
		rec.ClockOutLatitude, rec.ClockOutLongitude, rec.RejectionReason,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workrecord.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update work record: %w", err)
	}

	return nil
}

func (r *workRecordRepository) List(ctx context.Context, filter workrecord.WorkRecordFilter) ([]workrecord.WorkRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(` AND w.employee_id = $%d`, argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.SiteID != nil {
		where += fmt.Sprintf(` AND w.site_id = $%d`, argIdx)
		args = append(args, *filter.SiteID)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(` AND w.approval_status = $%d`, argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(` AND w.date >= $%d`, argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(` AND w.date <= $%d`, argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM work_records w` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work records: %w", err)
	}

	query := workRecordSelect + where + fmt.Sprintf(
		` ORDER BY w.date DESC LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work records: %w", err)
	}
	defer rows.Close()

	var records []workrecord.WorkRecord
	for rows.Next() {
		rec, err := scanWorkRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan work record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

func (r *workRecordRepository) ListForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := workRecordSelect + `
		WHERE w.employee_id = $1 AND w.date >= $2 AND w.date < $3
		ORDER BY w.date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list work records for month: %w", err)
	}
	defer rows.Close()

	var records []workrecord.WorkRecord
	for rows.Next() {
		rec, err := scanWorkRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
