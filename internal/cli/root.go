package cli

import (
	"github.com/spf13/cobra"
	"skillscout/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "skillscout",
	Short: "Discover agent skills from your terminal",
	Long: `skillscout is an interactive browser for agent skills.

Run it with no arguments to open the discovery TUI: browse popular
skills, explore categories, search the catalog, and look up skill
creators. Selecting a skill shows its details and copies the install
command to your clipboard.

The sidebar subcommands manage a companion pane (tmux) that tracks
agent todos, pinned context, and your own task list, and accepts
updates over a local socket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(sidebarCmd)
}
