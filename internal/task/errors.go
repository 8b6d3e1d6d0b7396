package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("status must be one of: Not Started, In Progress, Completed")
	ErrInvalidPriority = errors.New("priority must be one of: Low, Normal, High")
	ErrTitleRequired   = errors.New("task title is required")
)
