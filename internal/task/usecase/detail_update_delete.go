package usecase

import (
	"context"
	"errors"

	"crm-task-bridge/internal/task"
	repo "crm-task-bridge/internal/task/repository"
)

// Detail retrieves a single task by id. The repository already translates an
// upstream 404 into ErrTaskNotFound, so it propagates as-is.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if !errors.Is(err, task.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		}
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update forwards a partial update: only the supplied fields reach the
// connector, everything else stays untouched upstream.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	if err := uc.validateEnums(input.Status, input.Priority); err != nil {
		return task.UpdateTaskOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:       input.ID,
		Title:    input.Title,
		Status:   input.Status,
		Priority: input.Priority,
		Notes:    input.Notes,
		DueDate:  input.DueDate,
		Assignee: input.Assignee,
	})
	if err != nil {
		if !errors.Is(err, task.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		}
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a task by id with exactly one upstream delete call.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if !errors.Is(err, task.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		}
		return err
	}
	return nil
}
