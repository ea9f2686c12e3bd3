package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"skillscout/internal/config"
	"skillscout/internal/ipc"
	"skillscout/internal/sidebar"
	"skillscout/internal/store"
	"skillscout/internal/tmux"
)

var sidebarCmd = &cobra.Command{
	Use:   "sidebar",
	Short: "Manage the companion sidebar pane",
	Long: `Manage the sidebar: a companion TUI pane showing agent todos,
pinned context, and your task list.

The sidebar runs in a tmux split and listens on a local socket for
data updates, so hooks and scripts can push state into it while you
work.

Examples:
  skillscout sidebar spawn
  skillscout sidebar update todos '[{"content":"Fix bug","status":"pending"}]'
  skillscout sidebar task`,
}

var sidebarShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the sidebar in the current terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return sidebar.Run(cfg)
	},
}

var sidebarSpawnCmd = &cobra.Command{
	Use:   "spawn",
	Short: "Create a sidebar pane (requires tmux)",
	RunE: func(cmd *cobra.Command, args []string) error {
		paneID, err := spawnSidebarPane(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Sidebar spawned in pane: %s\n", paneID)
		return nil
	},
}

var sidebarCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the sidebar pane",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		client, err := tmux.NewClient(cfg.PaneIDPath)
		if err != nil {
			return err
		}
		if err := client.ClosePane(cmd.Context()); err != nil {
			return fmt.Errorf("failed to close sidebar: %w", err)
		}
		fmt.Println("Sidebar closed")
		return nil
	},
}

var sidebarEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "Show terminal environment info",
	Run: func(cmd *cobra.Command, args []string) {
		env := tmux.DetectEnv()
		fmt.Printf("Terminal environment: %s\n", env.Summary)
		fmt.Printf("In tmux: %v\n", env.InsideTmux)
	},
}

var sidebarUpdateCmd = &cobra.Command{
	Use:   "update <todos|context|tasks|focus> <json>",
	Short: "Push data to a running sidebar",
	Long: `Push data to a running sidebar over its local socket.

The payload must be valid JSON for the given type: an array of items
for todos, context, and tasks, or a tab name string for focus.

Examples:
  skillscout sidebar update todos '[{"content":"Fix bug","status":"pending"}]'
  skillscout sidebar update tasks '[{"name":"Run tests","description":"go test"}]'
  skillscout sidebar update focus '"context"'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		raw := json.RawMessage(args[1])
		if !json.Valid(raw) {
			return fmt.Errorf("payload is not valid JSON")
		}

		resp, err := ipc.Send(cfg.SocketPath, ipc.Message{Type: args[0], Data: raw})
		if err != nil {
			return err
		}
		if !resp.OK {
			return fmt.Errorf("update failed: %s", resp.Error)
		}
		fmt.Println("Updated successfully")
		return nil
	},
}

var sidebarTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Print the currently selected task as JSON",
	Long: `Print the task currently selected in the sidebar as JSON, or
null if none is selected. Useful from scripts and agent prompts that
need to know what the user wants worked on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		var task sidebar.TaskItem
		if !store.New(cfg.DataDir).Load(config.SelectedFileName, &task) || task.Name == "" {
			fmt.Println("null")
			return nil
		}

		out, err := json.MarshalIndent(task, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var sidebarSyncTodosCmd = &cobra.Command{
	Use:   "sync-todos",
	Short: "Sync a todo-tool hook payload to the sidebar",
	Long: `Read a tool hook payload from stdin and sync its todo list to the
sidebar's data directory, notifying a running sidebar over the socket.

Intended to run as a post-tool hook; a sidebar that is not running is
not an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return syncTodos(cfg, cmd.InOrStdin())
	},
}

var sidebarDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Spawn the sidebar with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if _, err := spawnSidebarPane(cmd.Context()); err != nil {
			return err
		}

		// Give the pane a moment to start listening.
		time.Sleep(500 * time.Millisecond)

		todos := []sidebar.TodoItem{
			{Content: "Review pull request #42", Status: sidebar.StatusCompleted},
			{Content: "Fix authentication bug", Status: sidebar.StatusInProgress},
			{Content: "Write unit tests", Status: sidebar.StatusPending},
			{Content: "Update documentation", Status: sidebar.StatusPending},
		}
		contextItems := []sidebar.ContextItem{
			{Type: "file", Name: "src/auth.go", Description: "Authentication module"},
			{Type: "file", Name: "src/api/users.go", Description: "User API endpoints"},
			{Type: "info", Name: "Branch: feature/auth", Description: "Current git branch"},
		}
		tasks := []sidebar.TaskItem{
			{Name: "Run tests", Description: "go test ./..."},
			{Name: "Build", Description: "go build ./..."},
			{Name: "Lint", Description: "golangci-lint run"},
			{Name: "Deploy", Description: "Deploy to staging"},
		}

		if _, err := ipc.SendData(cfg.SocketPath, ipc.TypeTodos, todos); err != nil {
			return err
		}
		if _, err := ipc.SendData(cfg.SocketPath, ipc.TypeContext, contextItems); err != nil {
			return err
		}
		if _, err := ipc.SendData(cfg.SocketPath, ipc.TypeTasks, tasks); err != nil {
			return err
		}

		fmt.Println("Demo sidebar spawned with sample data!")
		return nil
	},
}

// spawnSidebarPane opens a tmux split running this binary's sidebar.
func spawnSidebarPane(ctx context.Context) (string, error) {
	if !tmux.DetectEnv().InsideTmux {
		return "", fmt.Errorf("must be running inside tmux (start one with: tmux new-session)")
	}

	cfg, err := config.DefaultConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	client, err := tmux.NewClient(cfg.PaneIDPath)
	if err != nil {
		return "", err
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve own executable: %w", err)
	}

	paneID, err := client.SpawnPane(ctx, exe+" sidebar show")
	if err != nil {
		return "", fmt.Errorf("failed to spawn sidebar: %w", err)
	}
	return paneID, nil
}

// hookPayload is the shape a post-tool hook writes to stdin. Todos can
// appear under tool_input or at the top level.
type hookPayload struct {
	ToolInput struct {
		Todos []sidebar.TodoItem `json:"todos"`
	} `json:"tool_input"`
	Todos []sidebar.TodoItem `json:"todos"`
}

func syncTodos(cfg *config.Config, in io.Reader) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read hook input: %w", err)
	}
	if len(raw) == 0 {
		fmt.Println("No input received. This command expects a todo-tool hook payload on stdin.")
		return nil
	}

	var payload hookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("invalid hook payload: %w", err)
	}

	todos := payload.ToolInput.Todos
	if len(todos) == 0 {
		todos = payload.Todos
	}
	if len(todos) == 0 {
		return nil
	}

	if err := store.New(cfg.DataDir).Save(config.TodosFileName, todos); err != nil {
		return err
	}

	// Best effort: a sidebar that is not running picks the file up later.
	_, _ = ipc.SendData(cfg.SocketPath, ipc.TypeTodos, todos)
	return nil
}

func init() {
	sidebarCmd.AddCommand(sidebarShowCmd)
	sidebarCmd.AddCommand(sidebarSpawnCmd)
	sidebarCmd.AddCommand(sidebarCloseCmd)
	sidebarCmd.AddCommand(sidebarEnvCmd)
	sidebarCmd.AddCommand(sidebarUpdateCmd)
	sidebarCmd.AddCommand(sidebarTaskCmd)
	sidebarCmd.AddCommand(sidebarSyncTodosCmd)
	sidebarCmd.AddCommand(sidebarDemoCmd)
}
