package task

import "crm-task-bridge/internal/model"

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title    string
	Status   string
	Priority string
	Notes    string
	DueDate  string
	Assignee string
}

// ListTasksInput carries optional paging hints forwarded to the connector.
// Zero values mean "connector defaults".
type ListTasksInput struct {
	Limit int
	Page  int
}

// UpdateTaskInput is a partial update: empty fields are not forwarded
// upstream, so only supplied fields change.
type UpdateTaskInput struct {
	ID       string
	Title    string
	Status   string
	Priority string
	Notes    string
	DueDate  string
	Assignee string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
