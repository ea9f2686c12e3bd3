package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"skillscout/internal/catalog"
	"skillscout/internal/tui/styles"
	"skillscout/internal/tui/views"
)

// Mode represents the application mode
type Mode int

const (
	ModeSplash Mode = iota
	ModeInitial
	ModeCommand
	ModeSkills
	ModeSkillDetail
	ModeCategoryDetail
	ModeCreatorDetail
)

// Tab is one of the four skills-browser tabs
type Tab int

const (
	TabPopular Tab = iota
	TabBrowse
	TabSearch
	TabCreators
)

const tabCount = 4

var tabNames = [tabCount]string{"Popular", "Browse", "Search", "Creators"}

const (
	exitWindow  = 2 * time.Second
	copiedFlash = 2 * time.Second
)

// Selection records what the current detail mode is looking at. Which
// fields are set also encodes the path taken into SkillDetail, so Escape
// can return to the right place.
type Selection struct {
	SkillName     string
	Category      string
	CreatorHandle string
}

// App is the main TUI application model
type App struct {
	mode Mode

	// Free-text buffer; its meaning depends on mode (command filter,
	// tab filter, category-detail filter).
	inputBuffer string

	// Independent cursors, each clamped to the list its mode displays.
	activeTab     Tab
	listCursor    int
	detailCursor  int
	commandCursor int

	selection Selection

	// Two-stage exit confirmation. The generation counter invalidates
	// stale timers when the user re-arms within the window.
	exitArmed bool
	exitGen   int

	// Transient "copied" confirmation on the skill detail view.
	copied  bool
	copyGen int

	splash splashState

	width  int
	height int

	// Clipboard writes go through here so tests can intercept them.
	writeClipboard func(string) error
}

// NewApp creates a new TUI application
func NewApp() *App {
	return &App{
		mode:           ModeSplash,
		splash:         newSplashState(),
		writeClipboard: clipboard.WriteAll,
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return splashTick()
}

// Messages
type (
	exitTimeoutMsg struct{ gen int }
	copyTimeoutMsg struct{ gen int }
	splashTickMsg  struct{}
)

// Update handles all application events
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case exitTimeoutMsg:
		if msg.gen == a.exitGen && a.exitArmed {
			a.exitArmed = false
		}
		return a, nil

	case copyTimeoutMsg:
		if msg.gen == a.copyGen && a.copied {
			a.copied = false
		}
		return a, nil

	case splashTickMsg:
		if a.mode != ModeSplash {
			return a, nil
		}
		a.splash.advance()
		if !a.splash.Ready() {
			return a, splashTick()
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a.updateInterrupt()
		}

		switch a.mode {
		case ModeSplash:
			return a.updateSplash(msg)
		case ModeInitial:
			return a.updateInitial(msg)
		case ModeCommand:
			return a.updateCommand(msg)
		case ModeSkills:
			return a.updateSkills(msg)
		case ModeSkillDetail:
			return a.updateSkillDetail(msg)
		case ModeCategoryDetail:
			return a.updateCategoryDetail(msg)
		case ModeCreatorDetail:
			return a.updateCreatorDetail(msg)
		}
	}

	return a, nil
}

// updateInterrupt implements the two-stage quit: the first ctrl+c arms a 2s
// window with a visible warning, a second press inside the window quits.
// Once the window expires the next press arms again.
func (a *App) updateInterrupt() (tea.Model, tea.Cmd) {
	if a.exitArmed {
		return a, tea.Quit
	}
	a.exitArmed = true
	a.exitGen++
	gen := a.exitGen
	return a, tea.Tick(exitWindow, func(time.Time) tea.Msg { return exitTimeoutMsg{gen} })
}

func (a *App) updateSplash(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The splash reacts to a single continue key; everything else is
	// swallowed while the animation runs.
	if msg.Type == tea.KeyEnter {
		if a.splash.Ready() {
			a.mode = ModeInitial
			return a, nil
		}
		a.splash.skip()
	}
	return a, nil
}

func (a *App) updateInitial(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyBackspace:
		if a.inputBuffer != "" {
			a.inputBuffer = trimLastRune(a.inputBuffer)
		}
		return a, nil

	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			a.inputBuffer += string(r)
			if r == '/' {
				a.mode = ModeCommand
				a.commandCursor = 0
			}
		}
		return a, nil
	}
	return a, nil
}

func (a *App) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		a.mode = ModeInitial
		a.inputBuffer = ""
		a.commandCursor = 0
		return a, nil

	case tea.KeyBackspace:
		if a.inputBuffer != "" {
			a.inputBuffer = trimLastRune(a.inputBuffer)
		}
		a.commandCursor = 0
		if !strings.Contains(a.inputBuffer, "/") {
			// The leading slash is gone; this is plain text again.
			a.mode = ModeInitial
		}
		return a, nil

	case tea.KeyUp:
		a.commandCursor = clamp(a.commandCursor-1, views.CommandCount(a.inputBuffer))
		return a, nil

	case tea.KeyDown:
		a.commandCursor = clamp(a.commandCursor+1, views.CommandCount(a.inputBuffer))
		return a, nil

	case tea.KeyEnter:
		cmd, ok := views.CommandAt(a.commandCursor, a.inputBuffer)
		if !ok || cmd.Name != "/skills" {
			return a, nil
		}
		a.mode = ModeSkills
		a.activeTab = TabPopular
		a.inputBuffer = ""
		a.commandCursor = 0
		a.listCursor = 0
		return a, nil

	case tea.KeyRunes, tea.KeySpace:
		a.inputBuffer += string(msg.Runes)
		a.commandCursor = 0
		return a, nil
	}
	return a, nil
}

func (a *App) activeTabCount() int {
	switch a.activeTab {
	case TabPopular:
		return views.PopularCount(a.inputBuffer)
	case TabBrowse:
		return views.BrowseCount(a.inputBuffer)
	case TabSearch:
		return views.SearchCount(a.inputBuffer)
	case TabCreators:
		return views.CreatorsCount(a.inputBuffer)
	}
	return 0
}

func (a *App) updateSkills(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		a.mode = ModeInitial
		a.inputBuffer = ""
		a.activeTab = TabPopular
		a.listCursor = 0
		return a, nil

	case tea.KeyTab:
		a.activeTab = (a.activeTab + 1) % tabCount
		a.listCursor = 0
		return a, nil

	case tea.KeyShiftTab:
		a.activeTab = (a.activeTab + tabCount - 1) % tabCount
		a.listCursor = 0
		return a, nil

	case tea.KeyUp:
		a.listCursor = clamp(a.listCursor-1, a.activeTabCount())
		return a, nil

	case tea.KeyDown:
		a.listCursor = clamp(a.listCursor+1, a.activeTabCount())
		return a, nil

	case tea.KeyBackspace:
		if a.inputBuffer != "" {
			a.inputBuffer = trimLastRune(a.inputBuffer)
		}
		a.listCursor = 0
		return a, nil

	case tea.KeyRunes, tea.KeySpace:
		a.inputBuffer += string(msg.Runes)
		a.listCursor = 0
		return a, nil

	case tea.KeyEnter:
		return a.openSelected()
	}
	return a, nil
}

// openSelected resolves the item under the list cursor for the active tab
// and enters the matching detail mode.
func (a *App) openSelected() (tea.Model, tea.Cmd) {
	switch a.activeTab {
	case TabPopular:
		if skill, ok := views.PopularAt(a.listCursor, a.inputBuffer); ok {
			a.enterSkillDetail(skill.Name)
		}
	case TabBrowse:
		if category, ok := views.CategoryAt(a.listCursor, a.inputBuffer); ok {
			a.selection = Selection{Category: category}
			a.mode = ModeCategoryDetail
			a.inputBuffer = ""
			a.detailCursor = 0
		}
	case TabSearch:
		if skill, ok := views.SearchAt(a.listCursor, a.inputBuffer); ok {
			a.enterSkillDetail(skill.Name)
		}
	case TabCreators:
		if creator, ok := views.CreatorAt(a.listCursor, a.inputBuffer); ok {
			a.selection = Selection{CreatorHandle: creator.Handle}
			a.mode = ModeCreatorDetail
			a.inputBuffer = ""
			a.detailCursor = 0
		}
	}
	return a, nil
}

func (a *App) enterSkillDetail(name string) {
	a.selection.SkillName = name
	a.mode = ModeSkillDetail
	a.inputBuffer = ""
	a.detailCursor = 0
	a.copied = false
}

func (a *App) updateSkillDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		a.selection.SkillName = ""
		a.detailCursor = 0
		a.copied = false
		switch {
		case a.selection.Category != "":
			a.mode = ModeCategoryDetail
		case a.selection.CreatorHandle != "":
			a.mode = ModeCreatorDetail
		default:
			a.mode = ModeSkills
		}
		return a, nil

	case tea.KeyUp:
		a.detailCursor = clamp(a.detailCursor-1, views.SkillDetailActions)
		return a, nil

	case tea.KeyDown:
		a.detailCursor = clamp(a.detailCursor+1, views.SkillDetailActions)
		return a, nil

	case tea.KeyEnter:
		skill, ok := catalog.ByName(a.selection.SkillName)
		if !ok {
			return a, nil
		}
		if a.detailCursor == 0 {
			// Clipboard failure is swallowed: the confirmation simply
			// never shows.
			if err := a.writeClipboard(skill.InstallCommand); err != nil {
				return a, nil
			}
			a.copied = true
			a.copyGen++
			gen := a.copyGen
			return a, tea.Tick(copiedFlash, func(time.Time) tea.Msg { return copyTimeoutMsg{gen} })
		}
		a.selection = Selection{CreatorHandle: skill.Creator}
		a.mode = ModeCreatorDetail
		a.detailCursor = 0
		a.copied = false
		return a, nil
	}
	return a, nil
}

func (a *App) updateCategoryDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	category := a.selection.Category

	switch msg.Type {
	case tea.KeyEscape:
		a.mode = ModeSkills
		a.selection.Category = ""
		a.inputBuffer = ""
		a.listCursor = 0
		return a, nil

	case tea.KeyUp:
		a.detailCursor = clamp(a.detailCursor-1, views.CategorySkillCount(category, a.inputBuffer))
		return a, nil

	case tea.KeyDown:
		a.detailCursor = clamp(a.detailCursor+1, views.CategorySkillCount(category, a.inputBuffer))
		return a, nil

	case tea.KeyBackspace:
		if a.inputBuffer != "" {
			a.inputBuffer = trimLastRune(a.inputBuffer)
		}
		a.detailCursor = 0
		return a, nil

	case tea.KeyRunes, tea.KeySpace:
		a.inputBuffer += string(msg.Runes)
		a.detailCursor = 0
		return a, nil

	case tea.KeyEnter:
		if skill, ok := views.CategorySkillAt(category, a.detailCursor, a.inputBuffer); ok {
			a.selection.SkillName = skill.Name
			a.mode = ModeSkillDetail
			a.detailCursor = 0
			a.copied = false
		}
		return a, nil
	}
	return a, nil
}

func (a *App) updateCreatorDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	handle := a.selection.CreatorHandle

	switch msg.Type {
	case tea.KeyEscape:
		a.mode = ModeSkills
		a.selection.CreatorHandle = ""
		a.listCursor = 0
		return a, nil

	case tea.KeyUp:
		a.detailCursor = clamp(a.detailCursor-1, views.CreatorSkillCount(handle))
		return a, nil

	case tea.KeyDown:
		a.detailCursor = clamp(a.detailCursor+1, views.CreatorSkillCount(handle))
		return a, nil

	case tea.KeyEnter:
		if skill, ok := views.CreatorSkillAt(handle, a.detailCursor); ok {
			a.selection.SkillName = skill.Name
			a.mode = ModeSkillDetail
			a.detailCursor = 0
			a.copied = false
		}
		return a, nil
	}
	return a, nil
}

// trimLastRune removes the last rune from s. The buffer holds UTF-8, so
// popping a byte would leave a partial encoding behind.
func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// clamp keeps a cursor inside [0, count-1]; with an empty list it pins to 0.
func clamp(cursor, count int) int {
	if cursor < 0 {
		return 0
	}
	if count == 0 {
		return 0
	}
	if cursor > count-1 {
		return count - 1
	}
	return cursor
}

// View renders the application
func (a *App) View() string {
	if a.mode == ModeSplash {
		return a.splash.View()
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Skills Discovery"))
	b.WriteString("  ")
	b.WriteString(styles.Subtitle.Render("Find and install agent skills"))
	b.WriteString("\n\n")

	switch a.mode {
	case ModeInitial:
		b.WriteString(a.renderInputLine())
		b.WriteString("\n\n")
		b.WriteString(styles.Muted.Render("Type / for commands"))

	case ModeCommand:
		b.WriteString(a.renderInputLine())
		b.WriteString("\n")
		b.WriteString(views.RenderCommandMenu(a.inputBuffer, a.commandCursor))

	case ModeSkills:
		b.WriteString(a.renderTabBar())
		b.WriteString("\n")
		b.WriteString(a.renderInputLine())
		b.WriteString("\n\n")
		switch a.activeTab {
		case TabPopular:
			b.WriteString(views.RenderPopular(a.listCursor, a.inputBuffer))
		case TabBrowse:
			b.WriteString(views.RenderBrowse(a.listCursor, a.inputBuffer))
		case TabSearch:
			b.WriteString(views.RenderSearch(a.listCursor, a.inputBuffer))
		case TabCreators:
			b.WriteString(views.RenderCreators(a.listCursor, a.inputBuffer))
		}

	case ModeSkillDetail:
		b.WriteString(views.RenderSkillDetail(a.selection.SkillName, a.detailCursor, a.copied))

	case ModeCategoryDetail:
		b.WriteString(views.RenderCategoryDetail(a.selection.Category, a.detailCursor, a.inputBuffer))

	case ModeCreatorDetail:
		b.WriteString(views.RenderCreatorDetail(a.selection.CreatorHandle, a.detailCursor))
	}

	b.WriteString("\n\n")
	if echo := a.commandEcho(); echo != "" {
		b.WriteString(styles.Muted.Render("> " + echo))
		b.WriteString("\n")
	}
	b.WriteString(a.renderHelpBar())

	if a.exitArmed {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render("Press Ctrl-C again to exit"))
	}

	return b.String()
}

func (a *App) renderInputLine() string {
	return styles.SearchPrompt.Render("> ") + styles.SearchInput.Render(a.inputBuffer) + styles.SearchPrompt.Render("▌")
}

func (a *App) renderTabBar() string {
	var parts []string
	for i, name := range tabNames {
		if Tab(i) == a.activeTab {
			parts = append(parts, styles.TabActive.Render(name))
		} else {
			parts = append(parts, styles.TabInactive.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

// commandEcho shows the slash-command equivalent of the current screen.
func (a *App) commandEcho() string {
	switch a.mode {
	case ModeSkills:
		switch a.activeTab {
		case TabBrowse:
			return "/skills browse"
		case TabSearch:
			if a.inputBuffer != "" {
				return "/skills search " + a.inputBuffer
			}
			return "/skills search"
		case TabCreators:
			return "/skills creators"
		default:
			return "/skills popular"
		}
	case ModeSkillDetail:
		return "/skills view " + a.selection.SkillName
	case ModeCategoryDetail:
		return "/skills browse " + a.selection.Category
	case ModeCreatorDetail:
		return "/skills creator @" + a.selection.CreatorHandle
	}
	return ""
}

func (a *App) renderHelpBar() string {
	switch a.mode {
	case ModeInitial:
		return styles.FormatHelp("/", "commands", "ctrl+c", "quit")
	case ModeCommand:
		return styles.FormatHelp("↑/↓", "navigate", "enter", "run", "esc", "cancel")
	case ModeSkills:
		return styles.FormatHelp("tab", "switch tab", "↑/↓", "navigate", "enter", "open", "esc", "back")
	case ModeSkillDetail:
		return styles.FormatHelp("↑/↓", "navigate", "enter", "select", "esc", "back")
	default:
		return styles.FormatHelp("↑/↓", "navigate", "enter", "open", "esc", "back")
	}
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(NewApp(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
