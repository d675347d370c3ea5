package tui

import (
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/touchtype/internal/session"
)

// passageTop is the screen row where the passage starts.
const passageTop = 2

const fallbackWidth = MinWidth

// keyEvents classifies a key message into session events. Pasted text yields
// one event per rune.
func keyEvents(msg tea.KeyMsg) []session.Event {
	switch msg.Type {
	case tea.KeyEsc:
		return []session.Event{{Kind: session.EventCancel}}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []session.Event{{Kind: session.EventBackspace}}
	case tea.KeySpace:
		return []session.Event{session.Printable(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return []session.Event{{Kind: session.EventOther}}
		}
		events := make([]session.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				events = append(events, session.Printable(r))
			} else {
				events = append(events, session.Event{Kind: session.EventOther, Rune: r})
			}
		}
		return events
	default:
		return []session.Event{{Kind: session.EventOther}}
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, ev := range keyEvents(msg) {
		out := m.session.Handle(ev)
		if !out.Changed {
			continue
		}
		m.mistake = out.Mistake
		if out.Mistake {
			cmd = m.bellCmd()
		}
		if out.Completed {
			m.finishSession()
			return m, cmd
		}
		if m.session.State() == session.StateCancelled {
			log.Printf("session cancelled: mode=%s cursor=%d", m.mode.Key, m.session.Cursor())
			m.session = nil
			m.screen = screenMenu
			return m, cmd
		}
	}
	return m, cmd
}

func (m *Model) finishSession() {
	result, err := m.session.Result(m.mode.Name)
	if err != nil {
		log.Printf("compute result: %v", err)
		m.showNotice([]string{fmt.Sprintf("Could not compute the result: %v", err)}, nil)
		return
	}
	log.Printf("session completed: mode=%s wpm=%.2f accuracy=%.2f", m.mode.Key, result.WPM, result.Accuracy)
	m.results = append(m.results, result)
	m.screen = screenResult
}

func (m *Model) bellCmd() tea.Cmd {
	bell := m.bell
	return func() tea.Msg {
		bell()
		return nil
	}
}

func (m *Model) layoutWidth() int {
	if m.width <= 0 {
		return fallbackWidth
	}
	return m.width
}

func (m *Model) viewTyping() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString(strings.Repeat("\n", passageTop))
	b.WriteString(renderCells(m.session.Cells(m.layoutWidth()), m.session.Cursor()))
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderCells joins draw instructions into wrapped lines. Cells arrive in
// index order, so a change of row starts a new line.
func renderCells(cells []session.Cell, cursor int) string {
	var b strings.Builder
	row := 0
	for k, cell := range cells {
		for cell.Row > row {
			b.WriteByte('\n')
			row++
		}
		ch := cell.Char
		if cell.Style == session.StyleError && ch == ' ' {
			ch = '•'
		}
		style := cellStyle(cell.Style)
		if k == cursor {
			style = style.Underline(true)
		}
		b.WriteString(style.Render(string(ch)))
	}
	return b.String()
}

func (m *Model) renderStatus() string {
	elapsed := m.session.Elapsed().Truncate(time.Second)
	status := fmt.Sprintf("Progress %d%%  Errors %d  Elapsed %s  Esc to quit",
		int(m.session.Progress()*100), m.session.Errors(), elapsed)
	status = runewidth.Truncate(status, m.layoutWidth(), "…")
	if m.mistake {
		return errorStyle.Render(status)
	}
	return footerStyle.Render(status)
}
