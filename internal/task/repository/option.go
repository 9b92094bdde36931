package repository

// AppendTaskOptions holds the parameters for adding a task line to a note.
type AppendTaskOptions struct {
	Path string // Vault-relative note path
	Text string // Task text without the "- [ ] " prefix
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	Paths         []string // Restrict to these notes; empty means every note
	IncludeClosed bool     // Include done and cancelled tasks
}
