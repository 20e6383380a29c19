package task

import "context"

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	ListBoard(ctx context.Context, siteID *string) ([]Task, error)
	Update(ctx context.Context, t Task) error

	// Move updates status and position atomically, shifting positions of the
	// other tasks in the target column.
	Move(ctx context.Context, id string, status Status, position int) (Task, error)

	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Get(ctx context.Context, id string) (TaskResponse, error)
	Board(ctx context.Context, siteID *string) (BoardResponse, error)
	Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	Move(ctx context.Context, req MoveTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
}
