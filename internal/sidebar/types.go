package sidebar

// Todo statuses as written by the agent's todo hook.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// TodoItem is one entry in the agent-owned todo list. The sidebar only
// displays these; it never edits them.
type TodoItem struct {
	Content string `json:"content"`
	Status  string `json:"status"`
}

// ContextItem is a file or note the user has pinned for reference.
type ContextItem struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TaskItem is a user-defined task that can be selected as the active one.
type TaskItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
