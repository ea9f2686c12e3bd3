package testing

import (
	"encoding/json"
)

// Sample payloads in the sidebar wire format, for driving the IPC and CLI
// layers without hand-writing JSON in every test.

// SampleTodosJSON returns an agent todo list covering all three statuses
func SampleTodosJSON() json.RawMessage {
	return json.RawMessage(`[
		{"content": "Review pull request #42", "status": "completed"},
		{"content": "Fix authentication bug", "status": "in_progress"},
		{"content": "Write unit tests", "status": "pending"}
	]`)
}

// SampleContextJSON returns a mixed set of context items
func SampleContextJSON() json.RawMessage {
	return json.RawMessage(`[
		{"type": "file", "name": "internal/auth/auth.go", "description": "Authentication module"},
		{"type": "note", "name": "Remember to bump the version"},
		{"type": "info", "name": "Branch: feature/auth", "description": "Current git branch"}
	]`)
}

// SampleTasksJSON returns a small user task list
func SampleTasksJSON() json.RawMessage {
	return json.RawMessage(`[
		{"name": "Run tests", "description": "go test ./..."},
		{"name": "Build"},
		{"name": "Deploy", "description": "Deploy to staging"}
	]`)
}
