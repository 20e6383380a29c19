package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightserv/ops-backend-go/internal/domain/task"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskSelect = `
	SELECT t.id, t.title, t.description, t.site_id, t.assignee_id, t.status,
		   t.position, t.due_date, t.created_by, t.created_at, t.updated_at,
		   e.display_name, s.name
	FROM tasks t
	LEFT JOIN employees e ON e.id = t.assignee_id
	LEFT JOIN sites s ON s.id = t.site_id
`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.SiteID, &t.AssigneeID, &t.Status,
		&t.Position, &t.DueDate, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		&t.AssigneeName, &t.SiteName,
	)
	return t, err
}

func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	// New tasks go to the bottom of their column.
	query := `
		INSERT INTO tasks (id, title, description, site_id, assignee_id, status, position, due_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM tasks WHERE status = $6),
			$7, $8)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.SiteID, t.AssigneeID, t.Status, t.DueDate, t.CreatedBy,
	).Scan(&t.ID)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return r.GetByID(ctx, t.ID)
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTask(q.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) ListBoard(ctx context.Context, siteID *string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := taskSelect
	args := []interface{}{}
	if siteID != nil {
		query += ` WHERE t.site_id = $1`
		args = append(args, *siteID)
	}
	query += ` ORDER BY t.status, t.position`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list board tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $2, description = $3, site_id = $4, assignee_id = $5,
			due_date = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.SiteID, t.AssigneeID, t.DueDate,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (r *taskRepository) Move(ctx context.Context, id string, status task.Status, position int) (task.Task, error) {
	var moved task.Task

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var current task.Status
		err := q.QueryRow(txCtx, `SELECT status FROM tasks WHERE id = $1 FOR UPDATE`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return task.ErrTaskNotFound
			}
			return fmt.Errorf("failed to lock task: %w", err)
		}

		// Close the gap in the source column, then open one in the target.
		_, err = q.Exec(txCtx, `
			UPDATE tasks SET position = position - 1
			WHERE status = $1 AND position > (SELECT position FROM tasks WHERE id = $2)
		`, current, id)
		if err != nil {
			return fmt.Errorf("failed to compact source column: %w", err)
		}

		_, err = q.Exec(txCtx, `
			UPDATE tasks SET position = position + 1
			WHERE status = $1 AND position >= $2 AND id <> $3
		`, status, position, id)
		if err != nil {
			return fmt.Errorf("failed to shift target column: %w", err)
		}

		_, err = q.Exec(txCtx, `
			UPDATE tasks SET status = $2, position = $3, updated_at = NOW() WHERE id = $1
		`, id, status, position)
		if err != nil {
			return fmt.Errorf("failed to move task: %w", err)
		}

		moved, err = r.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return task.Task{}, err
	}

	return moved, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}
