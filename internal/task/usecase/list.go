package usecase

import (
	"context"

	"crm-task-bridge/internal/task"
	repo "crm-task-bridge/internal/task/repository"
)

// List returns every task the connector returns, reshaped but neither
// filtered nor reordered.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Limit: input.Limit,
		Page:  input.Page,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks}, nil
}
