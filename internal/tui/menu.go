package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const menuText = "Whether you're starting from scratch or looking to improve your typing speed,\n" +
	"we've designed a systematic approach to help you master the keyboard.\n" +
	"Choose your skill level below to begin your typing journey."

// updateMenu ignores any key that is not a listed choice.
func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return m, nil
	}
	r := msg.Runes[0]
	switch {
	case r == '0' || r == 'q':
		return m, tea.Quit
	case r >= '1' && r <= '9':
		idx := int(r - '1')
		if idx >= len(m.modes) {
			return m, nil
		}
		return m, m.selectMode(m.modes[idx])
	default:
		return m, nil
	}
}

func (m *Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to TouchType!"))
	b.WriteString("\n\n")
	b.WriteString(menuText)
	b.WriteString("\n\n0. Exit the program\n\n")
	for i, mode := range m.modes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, mode.Name)
	}
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("Select the mode: "))
	return b.String()
}
