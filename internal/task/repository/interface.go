package repository

import (
	"context"

	"crm-task-bridge/internal/model"
)

// Repository is the composed interface for the task domain data source.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Implementations are pure pass-throughs: one call here is one call against
// the upstream connector, with no caching or retries.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
