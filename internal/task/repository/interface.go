package repository

import (
	"context"

	"tasks-timeline/internal/model"
)

// Repository is the data access interface for tasks stored in markdown notes.
type Repository interface {
	AppendTask(ctx context.Context, opt AppendTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	ListFiles(ctx context.Context) ([]string, error)
}
