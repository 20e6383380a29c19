package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brightserv/ops-backend-go/internal/domain/cashflow"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type cashflowRepository struct {
	db *database.DB
}

func NewCashflowRepository(db *database.DB) cashflow.RecordRepository {
	return &cashflowRepository{db: db}
}

const cashflowSelect = `
	SELECT c.id, c.type, c.status, c.employee_id, c.client_id,
		   c.period_year, c.period_month, c.total_amount, c.payment_date,
		   c.notes, c.created_at, c.updated_at, e.display_name, cl.name
	FROM cashflow_records c
	LEFT JOIN employees e ON e.id = c.employee_id
	LEFT JOIN clients cl ON cl.id = c.client_id
`

func scanCashflowRecord(row pgx.Row) (cashflow.Record, error) {
	var rec cashflow.Record
	err := row.Scan(
		&rec.ID, &rec.Type, &rec.Status, &rec.EmployeeID, &rec.ClientID,
		&rec.PeriodYear, &rec.PeriodMonth, &rec.TotalAmount, &rec.PaymentDate,
		&rec.Notes, &rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.ClientName,
	)
	return rec, err
}

func (r *cashflowRepository) Create(ctx context.Context, rec cashflow.Record) (cashflow.Record, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO cashflow_records
			(id, type, status, employee_id, client_id, period_year, period_month,
			 total_amount, payment_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.Type, rec.Status, rec.EmployeeID, rec.ClientID,
		rec.PeriodYear, rec.PeriodMonth, rec.TotalAmount, rec.PaymentDate, rec.Notes,
	).Scan(&rec.ID)
	if err != nil {
		if strings.Contains(err.Error(), "cashflow_records_payroll_period_key") {
			return cashflow.Record{}, cashflow.ErrPeriodExists
		}
		return cashflow.Record{}, fmt.Errorf("failed to create cashflow record: %w", err)
	}

	return r.GetByID(ctx, rec.ID)
}

func (r *cashflowRepository) GetByID(ctx context.Context, id string) (cashflow.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanCashflowRecord(q.QueryRow(ctx, cashflowSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cashflow.Record{}, cashflow.ErrRecordNotFound
		}
		return cashflow.Record{}, fmt.Errorf("failed to get cashflow record: %w", err)
	}

	return rec, nil
}

func (r *cashflowRepository) GetPayrollForPeriod(ctx context.Context, employeeID string, year, month int) (*cashflow.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := cashflowSelect + `
		WHERE c.employee_id = $1 AND c.period_year = $2 AND c.period_month = $3
		  AND c.type = ANY($4)
	`

	types := make([]string, len(cashflow.PayrollTypes))
	for i, t := range cashflow.PayrollTypes {
		types[i] = string(t)
	}

	rec, err := scanCashflowRecord(q.QueryRow(ctx, query, employeeID, year, month, types))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll record for period: %w", err)
	}

	return &rec, nil
}

func (r *cashflowRepository) ListPayrollForPeriod(ctx context.Context, year, month int) ([]cashflow.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := cashflowSelect + `
		WHERE c.period_year = $1 AND c.period_month = $2 AND c.type = ANY($3)
		ORDER BY e.display_name
	`

	types := make([]string, len(cashflow.PayrollTypes))
	for i, t := range cashflow.PayrollTypes {
		types[i] = string(t)
	}

	rows, err := q.Query(ctx, query, year, month, types)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []cashflow.Record
	for rows.Next() {
		rec, err := scanCashflowRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cashflow record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *cashflowRepository) List(ctx context.Context, filter cashflow.RecordFilter) ([]cashflow.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Type != nil {
		where += fmt.Sprintf(` AND c.type = $%d`, argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.EmployeeID != nil {
		where += fmt.Sprintf(` AND c.employee_id = $%d`, argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.ClientID != nil {
		where += fmt.Sprintf(` AND c.client_id = $%d`, argIdx)
		args = append(args, *filter.ClientID)
		argIdx++
	}
	if filter.PeriodYear != nil {
		where += fmt.Sprintf(` AND c.period_year = $%d`, argIdx)
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.PeriodMonth != nil {
		where += fmt.Sprintf(` AND c.period_month = $%d`, argIdx)
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(` AND c.status = $%d`, argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM cashflow_records c` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cashflow records: %w", err)
	}

	query := cashflowSelect + where + fmt.Sprintf(
		` ORDER BY c.period_year DESC, c.period_month DESC, c.created_at DESC LIMIT $%d OFFSET $%d`,
		argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cashflow records: %w", err)
	}
	defer rows.Close()

	var records []cashflow.Record
	for rows.Next() {
		rec, err := scanCashflowRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan cashflow record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

func (r *cashflowRepository) Update(ctx context.Context, rec cashflow.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cashflow_records
		SET status = $2, total_amount = $3, payment_date = $4, notes = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		rec.ID, rec.Status, rec.TotalAmount, rec.PaymentDate, rec.Notes,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cashflow.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update cashflow record: %w", err)
	}

	return nil
}

func (r *cashflowRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM cashflow_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cashflow record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cashflow.ErrRecordNotFound
	}

	return nil
}
