package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/touchtype/internal/session"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AB7C8")).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C060C8"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle  = errorStyle.Bold(true)
)

func cellStyle(style session.Style) lipgloss.Style {
	switch style {
	case session.StyleCorrect:
		return correctStyle
	case session.StyleError:
		return errorStyle
	default:
		return pendingStyle
	}
}
