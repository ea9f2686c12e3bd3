package sidebar

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"skillscout/internal/config"
	"skillscout/internal/store"
	"skillscout/internal/tui/styles"
)

const pollInterval = time.Second

var tabNames = [3]string{"Todos", "Context", "Tasks"}

const (
	tabTodos = iota
	tabContext
	tabTasks
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAddName
	modeAddDesc
)

// Messages
type (
	pollTickMsg struct{}

	// Injected by the IPC server via Program.Send.
	todosMsg   []TodoItem
	contextMsg []ContextItem
	tasksMsg   []TaskItem
	focusMsg   string
)

// Model is the sidebar TUI model
type Model struct {
	store *store.Store
	log   *logrus.Logger

	activeTab int
	cursor    int
	mode      inputMode

	input       textinput.Model
	pendingName string

	todos        []TodoItem
	context      []ContextItem
	tasks        []TaskItem
	selectedTask string
}

// NewModel creates a sidebar model with state loaded from the data dir.
func NewModel(st *store.Store, log *logrus.Logger) *Model {
	input := textinput.New()
	input.Prompt = ""

	m := &Model{
		store:     st,
		log:       log,
		activeTab: tabTasks,
		input:     input,
	}

	st.Load(config.TodosFileName, &m.todos)
	st.Load(config.ContextFileName, &m.context)
	st.Load(config.TasksFileName, &m.tasks)

	var selected TaskItem
	if st.Load(config.SelectedFileName, &selected) && selected.Name != "" {
		m.selectedTask = selected.Name
	}

	return m
}

// Init starts the todos poll loop
func (m *Model) Init() tea.Cmd {
	return pollTick()
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollTickMsg{} })
}

// Update handles all sidebar events
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollTickMsg:
		// The todo file is written by an external hook; pick up changes.
		var todos []TodoItem
		m.store.Load(config.TodosFileName, &todos)
		m.todos = todos
		m.clampCursor()
		return m, pollTick()

	case todosMsg:
		m.todos = msg
		m.persist(config.TodosFileName, m.todos)
		m.clampCursor()
		return m, nil

	case contextMsg:
		m.context = msg
		m.persist(config.ContextFileName, m.context)
		m.clampCursor()
		return m, nil

	case tasksMsg:
		m.tasks = msg
		m.persist(config.TasksFileName, m.tasks)
		m.clampCursor()
		return m, nil

	case focusMsg:
		for i, name := range tabNames {
			if strings.EqualFold(name, string(msg)) {
				m.activeTab = i
				m.cursor = 0
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAddName:
			return m.updateAddName(msg)
		case modeAddDesc:
			return m.updateAddDesc(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEscape:
		return m, tea.Quit

	case tea.KeyTab:
		m.activeTab = (m.activeTab + 1) % len(tabNames)
		m.cursor = 0
		return m, nil

	case tea.KeyShiftTab:
		m.activeTab = (m.activeTab + len(tabNames) - 1) % len(tabNames)
		m.cursor = 0
		return m, nil

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil

	case tea.KeyEnter:
		if m.activeTab == tabTasks && m.cursor < len(m.tasks) {
			task := m.tasks[m.cursor]
			m.selectedTask = task.Name
			m.persist(config.SelectedFileName, task)
		}
		return m, nil

	case tea.KeyRunes:
		// Todos are agent-owned and read only.
		if m.activeTab == tabTodos {
			return m, nil
		}
		switch string(msg.Runes) {
		case "a":
			m.mode = modeAddName
			m.input.SetValue("")
			m.input.Focus()
		case "d":
			m.removeCurrent()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) updateAddName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = modeBrowse
		m.input.SetValue("")
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m, nil
		}
		m.pendingName = name
		m.input.SetValue("")
		m.mode = modeAddDesc
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateAddDesc(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		// The description is optional; save with just the name.
		m.addItem(m.pendingName, "")
		m.resetInput()
		return m, nil

	case tea.KeyEnter:
		m.addItem(m.pendingName, strings.TrimSpace(m.input.Value()))
		m.resetInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resetInput() {
	m.mode = modeBrowse
	m.pendingName = ""
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) addItem(name, description string) {
	switch m.activeTab {
	case tabContext:
		m.context = append(m.context, ContextItem{Type: "note", Name: name, Description: description})
		m.persist(config.ContextFileName, m.context)
	case tabTasks:
		m.tasks = append(m.tasks, TaskItem{Name: name, Description: description})
		m.persist(config.TasksFileName, m.tasks)
	}
}

func (m *Model) removeCurrent() {
	switch m.activeTab {
	case tabContext:
		if m.cursor < len(m.context) {
			m.context = append(m.context[:m.cursor], m.context[m.cursor+1:]...)
			m.persist(config.ContextFileName, m.context)
		}
	case tabTasks:
		if m.cursor < len(m.tasks) {
			m.tasks = append(m.tasks[:m.cursor], m.tasks[m.cursor+1:]...)
			m.persist(config.TasksFileName, m.tasks)
		}
	}
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) persist(name string, v any) {
	if err := m.store.Save(name, v); err != nil {
		m.log.WithError(err).WithField("file", name).Error("failed to persist sidebar state")
	}
}

func (m *Model) listLen() int {
	switch m.activeTab {
	case tabTodos:
		return len(m.todos)
	case tabContext:
		return len(m.context)
	case tabTasks:
		return len(m.tasks)
	}
	return 0
}

func (m *Model) clampCursor() {
	if n := m.listLen(); m.cursor > n-1 {
		if n == 0 {
			m.cursor = 0
		} else {
			m.cursor = n - 1
		}
	}
}

// View renders the sidebar
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Agent Sidebar"))
	b.WriteString("\n")
	if m.selectedTask != "" {
		b.WriteString(styles.SuccessMsg.Render("▶ Active: "))
		b.WriteString(styles.SearchInput.Render(m.selectedTask))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, name := range tabNames {
		if i == m.activeTab {
			b.WriteString(styles.TabActive.Render(name))
		} else {
			b.WriteString(styles.TabInactive.Render(name))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	switch m.activeTab {
	case tabTodos:
		b.WriteString(m.viewTodos())
	case tabContext:
		b.WriteString(m.viewContext())
	case tabTasks:
		b.WriteString(m.viewTasks())
	}

	switch m.mode {
	case modeAddName:
		label := "Task name"
		if m.activeTab == tabContext {
			label = "Add context"
		}
		b.WriteString(m.viewInput(label))
	case modeAddDesc:
		b.WriteString(m.viewInput("Description (optional)"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewHints())
	return b.String()
}

func statusIcon(status string) string {
	switch status {
	case StatusInProgress:
		return styles.StatusInProgress.Render("◐")
	case StatusCompleted:
		return styles.StatusCompleted.Render("●")
	default:
		return styles.StatusPending.Render("○")
	}
}

func (m *Model) viewTodos() string {
	if len(m.todos) == 0 {
		return styles.Muted.Render("No todos from the agent yet.")
	}
	var b strings.Builder
	for i, todo := range m.todos {
		b.WriteString(cursorPrefix(i == m.cursor))
		b.WriteString(statusIcon(todo.Status))
		b.WriteString(" ")
		content := todo.Content
		if todo.Status == StatusCompleted {
			b.WriteString(styles.Strikethrough.Render(content))
		} else if i == m.cursor {
			b.WriteString(styles.SelectedItem.Render(content))
		} else {
			b.WriteString(styles.NormalItem.Render(content))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewContext() string {
	if len(m.context) == 0 {
		return styles.Muted.Render("No context loaded. Press 'a' to add files or notes.")
	}
	var b strings.Builder
	for i, item := range m.context {
		b.WriteString(cursorPrefix(i == m.cursor))
		if item.Type == "file" {
			b.WriteString("□ ")
		} else {
			b.WriteString("◇ ")
		}
		if i == m.cursor {
			b.WriteString(styles.SelectedItem.Render(item.Name))
		} else {
			b.WriteString(styles.NormalItem.Render(item.Name))
		}
		if item.Description != "" {
			b.WriteString(styles.Muted.Render(" - " + item.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewTasks() string {
	if len(m.tasks) == 0 {
		return styles.Muted.Render("No tasks yet. Press 'a' to add a task.")
	}
	var b strings.Builder
	for i, task := range m.tasks {
		b.WriteString(cursorPrefix(i == m.cursor))
		if i == m.cursor {
			b.WriteString(styles.SelectedItem.Render(task.Name))
		} else {
			b.WriteString(styles.NormalItem.Render(task.Name))
		}
		b.WriteString("\n")
		if task.Description != "" {
			b.WriteString(styles.Muted.Render("    " + task.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) viewInput(label string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.SearchPrompt.Render(label + ": "))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Enter to save, Esc to cancel"))
	return b.String()
}

func (m *Model) viewHints() string {
	if m.mode != modeBrowse {
		return styles.FormatHelp("enter", "save", "esc", "cancel")
	}
	switch m.activeTab {
	case tabTodos:
		return styles.FormatHelp("tab", "switch", "↑/↓", "nav", "esc", "quit")
	case tabContext:
		return styles.FormatHelp("tab", "switch", "↑/↓", "nav", "a", "add", "d", "remove", "esc", "quit")
	default:
		return styles.FormatHelp("tab", "switch", "↑/↓", "nav", "a", "add", "d", "remove", "enter", "select", "esc", "quit")
	}
}

func cursorPrefix(selected bool) string {
	if selected {
		return styles.SelectedItem.Render("▸ ")
	}
	return "  "
}
