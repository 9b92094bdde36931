package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput     = errors.New("input text is empty")
	ErrTaskTooShort   = errors.New("task text must be at least 2 characters")
	ErrNoFileSelected = errors.New("no file selected and no default file configured")
	ErrInvalidDate    = errors.New("invalid date expression")
	ErrInvalidRange   = errors.New("timeline start is after its end")
)
