package task

import (
	"context"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/task"
	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/pkg/authctx"
	"github.com/brightserv/ops-backend-go/internal/pkg/dateutil"
)

type TaskServiceImpl struct {
	task.TaskRepository
}

func NewTaskService(taskRepository task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{TaskRepository: taskRepository}
}

// Create implements task.TaskService. Creating a task is a field edit, so
// cleaners cannot do it.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	actor, ok := authctx.FromContext(ctx)
	if !ok {
		return task.TaskResponse{}, user.ErrUserNotFound
	}
	if !task.CanEditFields(actor.Role) {
		return task.TaskResponse{}, task.ErrFieldEditForbidden
	}

	t := task.Task{
		Title:       req.Title,
		Description: req.Description,
		SiteID:      req.SiteID,
		AssigneeID:  req.AssigneeID,
		Status:      task.Status(req.Status),
		CreatedBy:   actor.UserID,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		if due, ok := dateutil.Parse(*req.DueDate); ok {
			t.DueDate = &due
		}
	}

	created, err := s.TaskRepository.Create(ctx, t)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return toResponse(t), nil
}

// Board implements task.TaskService.
func (s *TaskServiceImpl) Board(ctx context.Context, siteID *string) (task.BoardResponse, error) {
	tasks, err := s.TaskRepository.ListBoard(ctx, siteID)
	if err != nil {
		return task.BoardResponse{}, err
	}

	board := task.BoardResponse{
		Todo:       []task.TaskResponse{},
		InProgress: []task.TaskResponse{},
		Done:       []task.TaskResponse{},
	}
	for _, t := range tasks {
		resp := toResponse(t)
		switch t.Status {
		case task.StatusTodo:
			board.Todo = append(board.Todo, resp)
		case task.StatusInProgress:
			board.InProgress = append(board.InProgress, resp)
		case task.StatusDone:
			board.Done = append(board.Done, resp)
		}
	}

	return board, nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	actor, ok := authctx.FromContext(ctx)
	if !ok {
		return task.TaskResponse{}, user.ErrUserNotFound
	}
	if !task.CanEditFields(actor.Role) {
		return task.TaskResponse{}, task.ErrFieldEditForbidden
	}

	t, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.SiteID != nil {
		t.SiteID = req.SiteID
	}
	if req.AssigneeID != nil {
		t.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			t.DueDate = nil
		} else if due, ok := dateutil.Parse(*req.DueDate); ok {
			t.DueDate = &due
		}
	}

	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return task.TaskResponse{}, err
	}

	updated, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(updated), nil
}

// Move implements task.TaskService. Drag-and-drop: cleaners may only move
// their own tasks, and only between columns.
func (s *TaskServiceImpl) Move(ctx context.Context, req task.MoveTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	actor, ok := authctx.FromContext(ctx)
	if !ok {
		return task.TaskResponse{}, user.ErrUserNotFound
	}

	t, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !t.CanMove(actor.Role, actor.EmployeeID) {
		return task.TaskResponse{}, task.ErrMoveNotAllowed
	}

	moved, err := s.TaskRepository.Move(ctx, req.ID, task.Status(req.Status), req.Position)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(moved), nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	actor, ok := authctx.FromContext(ctx)
	if !ok {
		return user.ErrUserNotFound
	}
	if !task.CanEditFields(actor.Role) {
		return task.ErrFieldEditForbidden
	}

	return s.TaskRepository.Delete(ctx, id)
}

func toResponse(t task.Task) task.TaskResponse {
	resp := task.TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		SiteID:       t.SiteID,
		SiteName:     t.SiteName,
		AssigneeID:   t.AssigneeID,
		AssigneeName: t.AssigneeName,
		Status:       string(t.Status),
		Position:     t.Position,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}

	if t.DueDate != nil {
		due := dateutil.Format(*t.DueDate)
		resp.DueDate = &due
	}

	return resp
}
