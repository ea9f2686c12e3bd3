package views

import (
	"strings"

	"skillscout/internal/tui/styles"
)

// Command is one slash-command menu entry.
type Command struct {
	Name        string
	Description string
}

// Commands is the fixed slash-command list.
var Commands = []Command{
	{Name: "/skills", Description: "Discover and install agent skills"},
}

func filterCommands(buffer string) []Command {
	term := strings.ToLower(strings.TrimPrefix(buffer, "/"))
	var out []Command
	for _, c := range Commands {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Description), term) {
			out = append(out, c)
		}
	}
	return out
}

// CommandCount returns the number of commands matching the input buffer.
func CommandCount(buffer string) int {
	return len(filterCommands(buffer))
}

// CommandAt returns the matching command at index.
func CommandAt(index int, buffer string) (Command, bool) {
	cmds := filterCommands(buffer)
	if index < 0 || index >= len(cmds) {
		return Command{}, false
	}
	return cmds[index], true
}

// RenderCommandMenu renders the filtered command list below the input line.
func RenderCommandMenu(buffer string, cursor int) string {
	cmds := filterCommands(buffer)
	if len(cmds) == 0 {
		return "  " + styles.Muted.Render("No matching commands")
	}

	var b strings.Builder
	for i, cmd := range cmds {
		name := styles.SearchPrompt.Render(cmd.Name)
		if i == cursor {
			name = styles.SelectedItem.Render(cmd.Name)
		}
		b.WriteString("  " + name + "    " + styles.Muted.Render(cmd.Description))
		if i < len(cmds)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
