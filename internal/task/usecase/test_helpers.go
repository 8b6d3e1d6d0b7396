package usecase

import (
	"context"

	"crm-task-bridge/internal/model"
	"crm-task-bridge/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepository records every call so tests can assert pass-through
// fidelity (one upstream call per operation, fields unchanged).
type mockRepository struct {
	createCalls []repository.CreateTaskOptions
	listCalls   []repository.ListTasksOptions
	getCalls    []string
	updateCalls []repository.UpdateTaskOptions
	deleteCalls []string

	task  model.Task
	tasks []model.Task
	err   error
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.createCalls = append(m.createCalls, opt)
	return m.task, m.err
}

func (m *mockRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	m.getCalls = append(m.getCalls, id)
	return m.task, m.err
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.listCalls = append(m.listCalls, opt)
	return m.tasks, m.err
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.updateCalls = append(m.updateCalls, opt)
	return m.task, m.err
}

func (m *mockRepository) DeleteTask(ctx context.Context, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.err
}
