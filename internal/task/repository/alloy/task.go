package alloy

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"crm-task-bridge/internal/model"
	"crm-task-bridge/internal/task"
	"crm-task-bridge/internal/task/repository"
	pkgLog "crm-task-bridge/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new connector-backed task repository.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	created, err := r.client.CreateTask(ctx, TaskPayload{
		Subject:     opt.Title,
		Status:      opt.Status,
		Priority:    opt.Priority,
		Description: opt.Notes,
		DueDate:     opt.DueDate,
		Owner:       ownerFromAssignee(opt.Assignee),
	})
	if err != nil {
		r.l.Errorf(ctx, "alloy repository: failed to create task: %v", err)
		return model.Task{}, translateErr(repository.ErrFailedToCreate, err)
	}
	return taskToModel(created), nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	t, err := r.client.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, translateErr(repository.ErrFailedToGet, err)
	}
	return taskToModel(t), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	upstream, err := r.client.ListTasks(ctx, opt.Limit, opt.Page)
	if err != nil {
		return nil, translateErr(repository.ErrFailedToList, err)
	}

	// Reshape only: same records, same order as the connector returned them.
	tasks := make([]model.Task, 0, len(upstream))
	for i := range upstream {
		tasks = append(tasks, taskToModel(&upstream[i]))
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	// Only supplied fields go upstream; TaskPayload's omitempty drops the rest.
	updated, err := r.client.UpdateTask(ctx, opt.ID, TaskPayload{
		Subject:     opt.Title,
		Status:      opt.Status,
		Priority:    opt.Priority,
		Description: opt.Notes,
		DueDate:     opt.DueDate,
		Owner:       ownerFromAssignee(opt.Assignee),
	})
	if err != nil {
		r.l.Errorf(ctx, "alloy repository: failed to update task %s: %v", opt.ID, err)
		return model.Task{}, translateErr(repository.ErrFailedToUpdate, err)
	}
	return taskToModel(updated), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.client.DeleteTask(ctx, id); err != nil {
		r.l.Errorf(ctx, "alloy repository: failed to delete task %s: %v", id, err)
		return translateErr(repository.ErrFailedToDelete, err)
	}
	return nil
}

// translateErr lifts a wire-level client error into the repository contract:
// an upstream 404 becomes the domain's not-found, any other non-success
// response becomes a repository.UpstreamError carrying the connector's
// message intact, and transport failures keep their original cause. The
// operation sentinel wraps everything but not-found so callers can errors.Is
// on which verb failed.
func translateErr(op error, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("%w: %w", op, &repository.UpstreamError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		})
	}
	return fmt.Errorf("%w: %w", op, err)
}

// ownerFromAssignee wraps a non-empty assignee name in Zoho's Owner object.
func ownerFromAssignee(assignee string) *Owner {
	if assignee == "" {
		return nil
	}
	return &Owner{Name: assignee}
}

// taskToModel maps the connector's Zoho-named task object onto model.Task.
// Timestamps pass through untouched.
func taskToModel(t *Task) model.Task {
	assignee := ""
	if t.Owner != nil {
		assignee = t.Owner.Name
	}

	return model.Task{
		ID:        t.ID,
		Title:     t.Subject,
		Status:    t.Status,
		Priority:  t.Priority,
		Notes:     t.Description,
		DueDate:   t.DueDate,
		Assignee:  assignee,
		CreatedAt: t.CreatedTime,
		UpdatedAt: t.ModifiedTime,
	}
}
