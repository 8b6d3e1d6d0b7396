package http

import (
	"crm-task-bridge/internal/model"
	"crm-task-bridge/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title    string `json:"title"    binding:"required,min=1,max=255"`
	Status   string `json:"status"   binding:"omitempty"`
	Priority string `json:"priority" binding:"omitempty"`
	Notes    string `json:"notes"    binding:"max=32000"`
	DueDate  string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Assignee string `json:"assignee" binding:"max=255"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:    r.Title,
		Status:   r.Status,
		Priority: r.Priority,
		Notes:    r.Notes,
		DueDate:  r.DueDate,
		Assignee: r.Assignee,
	}
}

// ---

type listReq struct {
	Limit int `form:"limit"`
	Page  int `form:"page"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	if r.Limit < 0 {
		r.Limit = 0
	}
	if r.Page < 0 {
		r.Page = 0
	}
	return task.ListTasksInput{
		Limit: r.Limit,
		Page:  r.Page,
	}
}

// ---

type updateReq struct {
	ID       string `json:"-"` // populated from URI param
	Title    string `json:"title"    binding:"omitempty,min=1,max=255"`
	Status   string `json:"status"   binding:"omitempty"`
	Priority string `json:"priority" binding:"omitempty"`
	Notes    string `json:"notes"    binding:"omitempty,max=32000"`
	DueDate  string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Assignee string `json:"assignee" binding:"omitempty,max=255"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:       r.ID,
		Title:    r.Title,
		Status:   r.Status,
		Priority: r.Priority,
		Notes:    r.Notes,
		DueDate:  r.DueDate,
		Assignee: r.Assignee,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes"`
	DueDate   string `json:"due_date"`
	Assignee  string `json:"assignee"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Status:    t.Status,
		Priority:  t.Priority,
		Notes:     t.Notes,
		DueDate:   t.DueDate,
		Assignee:  t.Assignee,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
