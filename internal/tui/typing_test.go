package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/touchtype/internal/session"
)

func TestKeyEventsClassification(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		kind session.EventKind
	}{
		{tea.KeyMsg{Type: tea.KeyEsc}, session.EventCancel},
		{tea.KeyMsg{Type: tea.KeyBackspace}, session.EventBackspace},
		{tea.KeyMsg{Type: tea.KeySpace}, session.EventPrintable},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, session.EventPrintable},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true}, session.EventOther},
		{tea.KeyMsg{Type: tea.KeyEnter}, session.EventOther},
		{tea.KeyMsg{Type: tea.KeyLeft}, session.EventOther},
	}
	for _, tc := range cases {
		events := keyEvents(tc.msg)
		if len(events) != 1 || events[0].Kind != tc.kind {
			t.Fatalf("%v: expected kind %v, got %+v", tc.msg, tc.kind, events)
		}
	}
	pasted := keyEvents(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("as d"), Paste: true})
	if len(pasted) != 4 {
		t.Fatalf("expected one event per pasted rune, got %d", len(pasted))
	}
}

func TestRenderCellsWrapsRows(t *testing.T) {
	cells := []session.Cell{
		{Row: 0, Col: 0, Char: 'a'},
		{Row: 0, Col: 1, Char: 's'},
		{Row: 1, Col: 0, Char: 'd'},
	}
	out := renderCells(cells, -1)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "d") {
		t.Fatalf("expected d on the second line: %q", lines[1])
	}
}

func TestViewTypingShowsHeaderAndStatus(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	press(m, keyRunes("1"))
	view := m.View()
	if !strings.Contains(view, "TouchType | Novice - Home Row") {
		t.Fatalf("expected header in view: %s", view)
	}
	if !strings.Contains(view, "Progress 0%") {
		t.Fatalf("expected status line in view: %s", view)
	}
}
