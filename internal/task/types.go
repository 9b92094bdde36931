package task

import (
	"time"

	"tasks-timeline/internal/model"
)

// PreviewInput is the input for a quick-entry preview.
type PreviewInput struct {
	Text string
	Now  string // YYYY-MM-DD, RFC 3339 or a relative expression; empty means the use case clock
}

// PreviewOutput is the rewritten line. Changed is false when no rule fired.
type PreviewOutput struct {
	Text     string
	Original string
	Changed  bool
}

// CreateInput is the input for adding a task to a note.
type CreateInput struct {
	File      string // Vault-relative note path; empty means the default note
	Text      string
	Transform bool // Rewrite quick-entry shorthand before committing
}

// CreateOutput is the result of adding a task.
type CreateOutput struct {
	Task         model.Task
	CalendarLink string // Link to the created calendar event (may be empty)
}

// TimelineInput selects the date range of the timeline. From and To accept
// YYYY-MM-DD or relative expressions such as "today" or "in 2 weeks".
type TimelineInput struct {
	From string    // Empty means today - days_before
	To   string    // Empty means today + days_after
	Now  time.Time // Zero means the use case clock
}

// DateGroup is one day of the timeline.
type DateGroup struct {
	Date     time.Time
	Year     int
	IsToday  bool
	Statuses []model.TaskStatus // Distinct statuses present, in first-seen order
	Tasks    []model.Task
}

// Counters summarizes today's tasks.
type Counters struct {
	Overdue   int
	Due       int
	Scheduled int
	Start     int
	Process   int
	Unplanned int
	Done      int
}

// TimelineOutput is the grouped timeline.
type TimelineOutput struct {
	From     time.Time
	To       time.Time
	Today    time.Time
	Groups   []DateGroup
	Counters Counters
}

// FileOption is one entry of the note picker.
type FileOption struct {
	Path  string
	Label string
}

// ListFilesOutput is the list of notes.
type ListFilesOutput struct {
	Files       []FileOption
	DefaultFile string
}
