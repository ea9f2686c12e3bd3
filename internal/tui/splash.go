package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"skillscout/internal/tui/styles"
)

const splashFrameInterval = 50 * time.Millisecond

var splashBanner = []string{
	`  ___  _  _  ___  _    _     ___  `,
	` / __|| |/ /|_ _|| |  | |   / __| `,
	` \__ \|   <  | | | |__| |__ \__ \ `,
	` |___/|_|\_\|___||____|____||___/ `,
}

const splashTagline = "Discover agent skills from your terminal"

// splashState drives the typewriter reveal on the start screen. Each tick
// reveals one more column of the banner; once the banner is fully visible
// the tagline and continue hint appear.
type splashState struct {
	cols  int
	ready bool
}

func newSplashState() splashState {
	return splashState{}
}

func (s *splashState) advance() {
	s.cols++
	if s.cols >= len(splashBanner[0]) {
		s.ready = true
	}
}

func (s *splashState) skip() {
	s.cols = len(splashBanner[0])
	s.ready = true
}

func (s *splashState) Ready() bool {
	return s.ready
}

func (s *splashState) View() string {
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range splashBanner {
		visible := line
		if s.cols < len(line) {
			visible = line[:s.cols]
		}
		b.WriteString(styles.Title.Render(visible))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if s.ready {
		b.WriteString(styles.Subtitle.Render(splashTagline))
		b.WriteString("\n\n")
		b.WriteString(styles.Muted.Render("Press Enter to continue"))
	}
	b.WriteString("\n")
	return b.String()
}

func splashTick() tea.Cmd {
	return tea.Tick(splashFrameInterval, func(time.Time) tea.Msg { return splashTickMsg{} })
}
