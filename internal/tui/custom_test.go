package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/touchtype/internal/config"
	"github.com/verte-zerg/touchtype/internal/model"
)

func TestResolveCustomModeDefaults(t *testing.T) {
	base := model.Mode{Key: "custom", Name: "Custom - Create your own", Custom: true}
	for _, words := range []string{"", "abc", "0", "-4"} {
		mode, warnings := resolveCustomMode(base, "asdf", words)
		if mode.Words != config.DefaultCustomWords {
			t.Fatalf("input %q: expected default %d words, got %d", words, config.DefaultCustomWords, mode.Words)
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "Using default of 20 words") {
			t.Fatalf("input %q: unexpected warnings %q", words, warnings)
		}
	}
	mode, warnings := resolveCustomMode(base, "", "7")
	if mode.Letters != config.DefaultCustomLetters || mode.Words != 7 || len(warnings) != 1 {
		t.Fatalf("unexpected mode %+v warnings %q", mode, warnings)
	}
	mode, warnings = resolveCustomMode(base, "asd", " 3 ")
	if mode.Letters != "asd" || mode.Words != 3 || len(warnings) != 0 {
		t.Fatalf("unexpected mode %+v warnings %q", mode, warnings)
	}
	if base.Words != 0 || base.Letters != "" {
		t.Fatalf("base mode must not be mutated: %+v", base)
	}
}

func submitCustomForm(m *Model, letters, words string) {
	press(m, keyRunes("6"))
	press(m, keyRunes(letters))
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if words != "" {
		press(m, keyRunes(words))
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestCustomModeStartsSession(t *testing.T) {
	m, _, _ := newTestModel(t)
	submitCustomForm(m, "asdfghjkl;", "5")
	if m.screen != screenTyping {
		t.Fatalf("expected typing screen, got %v", m.screen)
	}
	if got := len(m.session.Passage().Words); got != 5 {
		t.Fatalf("expected 5 words, got %d", got)
	}
	charset := model.NewCharset("asdfghjkl;")
	for _, r := range m.session.Passage().Text {
		if r != ' ' && !charset.Contains(r) {
			t.Fatalf("rune %q outside custom charset", r)
		}
	}
}

func TestCustomModeInvalidCountFallsBack(t *testing.T) {
	m, _, _ := newTestModel(t)
	submitCustomForm(m, "asdfghjkl;", "abc")
	if m.screen != screenNotice {
		t.Fatalf("expected notice, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "Invalid input. Using default of 20 words.") {
		t.Fatalf("unexpected notice: %s", m.View())
	}
	press(m, keyRunes("x"))
	if m.screen != screenTyping {
		t.Fatalf("expected typing after notice, got %v", m.screen)
	}
	if got := len(m.session.Passage().Words); got != 20 {
		t.Fatalf("expected 20 words, got %d", got)
	}
}

func TestCustomModeInsufficientWords(t *testing.T) {
	m, _, _ := newTestModel(t)
	submitCustomForm(m, "asdf", "10")
	if m.screen != screenNotice {
		t.Fatalf("expected notice, got %v", m.screen)
	}
	view := m.View()
	if !strings.Contains(view, "Not enough words found with those characters.") || !strings.Contains(view, "but 10 were requested") {
		t.Fatalf("unexpected notice: %s", view)
	}
	press(m, keyRunes("x"))
	if m.screen != screenMenu {
		t.Fatalf("expected menu, got %v", m.screen)
	}
}

func TestCustomModeEscapeReturnsToMenu(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(m, keyRunes("6"))
	if m.screen != screenCustom {
		t.Fatalf("expected custom form, got %v", m.screen)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("expected menu, got %v", m.screen)
	}
}
