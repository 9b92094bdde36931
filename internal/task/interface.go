package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Preview rewrites quick-entry shorthand without committing anything.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)

	// Create appends a new task line to a note, optionally rewriting shorthand first.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Timeline groups the vault's tasks by date.
	Timeline(ctx context.Context, input TimelineInput) (TimelineOutput, error)

	// ListFiles lists the notes new tasks can be added to.
	ListFiles(ctx context.Context) (ListFilesOutput, error)
}
