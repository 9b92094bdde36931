package model

import "time"

// TaskStatus is the display status of a task on the timeline.
type TaskStatus string

const (
	StatusTodo      TaskStatus = "todo"
	StatusDone      TaskStatus = "done"
	StatusCancelled TaskStatus = "cancelled"
	StatusProcess   TaskStatus = "process" // in progress, "- [/]"
	StatusOverdue   TaskStatus = "overdue"
	StatusDue       TaskStatus = "due"
	StatusScheduled TaskStatus = "scheduled"
	StatusStart     TaskStatus = "start"
	StatusUnplanned TaskStatus = "unplanned"
)

// TaskPriority is the priority carried by a priority marker.
type TaskPriority string

const (
	PriorityNone   TaskPriority = ""
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Task is a markdown task line parsed from a note in the vault.
type Task struct {
	ID          string       // UUIDv5 of path and line
	Path        string       // Vault-relative slash path of the note
	Line        int          // 1-indexed line number
	Text        string       // Everything after the checkbox
	Description string       // Text without markers, dates and recurrence
	Checkbox    string       // Character inside the brackets
	Status      TaskStatus   // Base status from the checkbox; refined by the timeline
	Priority    TaskPriority // Empty when no priority marker is present
	Due         *time.Time
	Start       *time.Time
	Scheduled   *time.Time
	Done        *time.Time
	Recurrence  string // Rule text after the recurrence marker, e.g. "every week"
	Tags        []string
}

// IsClosed reports whether the task no longer needs attention.
func (t Task) IsClosed() bool {
	return t.Status == StatusDone || t.Status == StatusCancelled
}
