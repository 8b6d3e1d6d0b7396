package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD — each call is exactly one upstream connector exchange.
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error
}
