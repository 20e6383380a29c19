package task

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidStatus      = errors.New("invalid board column")
	ErrMoveNotAllowed     = errors.New("not allowed to move this task")
	ErrFieldEditForbidden = errors.New("only managers may edit task fields")
)
