package usecase

import (
	"context"

	"crm-task-bridge/internal/task"
	repo "crm-task-bridge/internal/task/repository"
)

// Create forwards a new task to the connector. Fields travel unchanged;
// validation is limited to what Zoho would reject anyway (missing title,
// unknown enum values), so the round trip fails fast instead of upstream.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if input.Title == "" {
		return task.CreateTaskOutput{}, task.ErrTitleRequired
	}
	if err := uc.validateEnums(input.Status, input.Priority); err != nil {
		return task.CreateTaskOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:    input.Title,
		Status:   input.Status,
		Priority: input.Priority,
		Notes:    input.Notes,
		DueDate:  input.DueDate,
		Assignee: input.Assignee,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}
