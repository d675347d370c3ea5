package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/touchtype/internal/stats"
)

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return m, nil
	}
	switch msg.Runes[0] {
	case 'y', 'Y':
		m.startSession(m.mode)
	case 'n', 'N':
		m.session = nil
		m.screen = screenMenu
	}
	return m, nil
}

func (m *Model) viewResult() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("Result\n------"))
	b.WriteString("\n")
	if len(m.results) > 0 {
		for _, line := range stats.ResultLines(m.results[len(m.results)-1]) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("Want to start again? (y/n)"))
	return b.String()
}
