package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"crm-task-bridge/internal/model"
	"crm-task-bridge/internal/task"
	"crm-task-bridge/internal/task/repository"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards fields unchanged in one repository call", func(t *testing.T) {
		repo := &mockRepository{task: model.Task{ID: "1", Title: "Write docs"}}
		uc := New(repo, &mockLogger{})

		out, err := uc.Create(ctx, task.CreateTaskInput{
			Title:    "Write docs",
			Status:   model.StatusInProgress,
			Priority: model.PriorityHigh,
			Notes:    "some notes",
			DueDate:  "2024-06-01",
			Assignee: "Pat",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.createCalls) != 1 {
			t.Fatalf("expected exactly 1 create call, got %d", len(repo.createCalls))
		}

		call := repo.createCalls[0]
		if call.Title != "Write docs" || call.Status != model.StatusInProgress ||
			call.Priority != model.PriorityHigh || call.Notes != "some notes" ||
			call.DueDate != "2024-06-01" || call.Assignee != "Pat" {
			t.Errorf("fields changed in flight: %+v", call)
		}
		if out.Task.ID != "1" {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("rejects missing title without calling upstream", func(t *testing.T) {
		repo := &mockRepository{}
		uc := New(repo, &mockLogger{})

		_, err := uc.Create(ctx, task.CreateTaskInput{})
		if !errors.Is(err, task.ErrTitleRequired) {
			t.Fatalf("expected ErrTitleRequired, got %v", err)
		}
		if len(repo.createCalls) != 0 {
			t.Errorf("upstream must not be called on validation failure")
		}
	})

	t.Run("rejects unknown status and priority", func(t *testing.T) {
		repo := &mockRepository{}
		uc := New(repo, &mockLogger{})

		_, err := uc.Create(ctx, task.CreateTaskInput{Title: "x", Status: "Done"})
		if !errors.Is(err, task.ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}

		_, err = uc.Create(ctx, task.CreateTaskInput{Title: "x", Priority: "Urgent"})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("upstream error propagates unswallowed", func(t *testing.T) {
		upstream := &repository.UpstreamError{StatusCode: http.StatusBadGateway, Message: "zoho is down"}
		repo := &mockRepository{err: upstream}
		uc := New(repo, &mockLogger{})

		_, err := uc.Create(ctx, task.CreateTaskInput{Title: "x"})
		if !errors.Is(err, upstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}

		var ue *repository.UpstreamError
		if !errors.As(err, &ue) || ue.Message != "zoho is down" {
			t.Errorf("upstream message must stay intact, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns everything upstream returns, same order", func(t *testing.T) {
		repo := &mockRepository{tasks: []model.Task{
			{ID: "3", Title: "c"},
			{ID: "1", Title: "a"},
			{ID: "2", Title: "b"},
		}}
		uc := New(repo, &mockLogger{})

		out, err := uc.List(ctx, task.ListTasksInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 3 {
			t.Fatalf("expected 3 tasks, got %d", len(out.Tasks))
		}
		// No reordering, no filtering.
		for i, want := range []string{"3", "1", "2"} {
			if out.Tasks[i].ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, out.Tasks[i].ID)
			}
		}
	})

	t.Run("error propagates", func(t *testing.T) {
		repo := &mockRepository{err: repository.ErrFailedToList}
		uc := New(repo, &mockLogger{})

		if _, err := uc.List(ctx, task.ListTasksInput{}); !errors.Is(err, repository.ErrFailedToList) {
			t.Fatalf("expected ErrFailedToList, got %v", err)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("propagates not-found from the repository", func(t *testing.T) {
		repo := &mockRepository{err: task.ErrTaskNotFound}
		uc := New(repo, &mockLogger{})

		_, err := uc.Detail(ctx, "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("returns the task", func(t *testing.T) {
		repo := &mockRepository{task: model.Task{ID: "7", Title: "found"}}
		uc := New(repo, &mockLogger{})

		out, err := uc.Detail(ctx, "7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID != "7" {
			t.Errorf("unexpected task: %+v", out.Task)
		}
		if len(repo.getCalls) != 1 || repo.getCalls[0] != "7" {
			t.Errorf("expected one get for id 7, got %v", repo.getCalls)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards only supplied fields", func(t *testing.T) {
		repo := &mockRepository{task: model.Task{ID: "9", Status: model.StatusCompleted}}
		uc := New(repo, &mockLogger{})

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "9", Status: model.StatusCompleted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.updateCalls) != 1 {
			t.Fatalf("expected exactly 1 update call, got %d", len(repo.updateCalls))
		}

		call := repo.updateCalls[0]
		if call.Status != model.StatusCompleted {
			t.Errorf("status not forwarded: %+v", call)
		}
		if call.Title != "" || call.Notes != "" || call.DueDate != "" || call.Assignee != "" {
			t.Errorf("unsupplied fields must stay empty: %+v", call)
		}
	})

	t.Run("validates enums before calling upstream", func(t *testing.T) {
		repo := &mockRepository{}
		uc := New(repo, &mockLogger{})

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "9", Priority: "ASAP"})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
		if len(repo.updateCalls) != 0 {
			t.Errorf("upstream must not be called on validation failure")
		}
	})

	t.Run("propagates not-found from the repository", func(t *testing.T) {
		repo := &mockRepository{err: task.ErrTaskNotFound}
		uc := New(repo, &mockLogger{})

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "gone", Title: "x"})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("exactly one delete for the given id", func(t *testing.T) {
		repo := &mockRepository{}
		uc := New(repo, &mockLogger{})

		if err := uc.Delete(ctx, "13"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deleteCalls) != 1 || repo.deleteCalls[0] != "13" {
			t.Errorf("expected one delete for id 13, got %v", repo.deleteCalls)
		}
	})

	t.Run("propagates not-found from the repository", func(t *testing.T) {
		repo := &mockRepository{err: task.ErrTaskNotFound}
		uc := New(repo, &mockLogger{})

		if err := uc.Delete(ctx, "gone"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
