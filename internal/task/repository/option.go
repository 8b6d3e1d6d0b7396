package repository

// CreateTaskOptions holds parameters for creating a new task upstream.
type CreateTaskOptions struct {
	Title    string
	Status   string
	Priority string
	Notes    string
	DueDate  string
	Assignee string
}

// ListTasksOptions holds paging parameters forwarded to the connector.
type ListTasksOptions struct {
	Limit int
	Page  int
}

// UpdateTaskOptions holds parameters for a partial task update.
// Empty fields are omitted from the upstream payload.
type UpdateTaskOptions struct {
	ID       string
	Title    string
	Status   string
	Priority string
	Notes    string
	DueDate  string
	Assignee string
}
