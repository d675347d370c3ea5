package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/touchtype/internal/config"
	"github.com/verte-zerg/touchtype/internal/generator"
	"github.com/verte-zerg/touchtype/internal/model"
)

const (
	fieldLetters = iota
	fieldWords
)

type customForm struct {
	inputs  []textinput.Model
	focused int

	prefillLetters string
	prefillWords   string
}

func newCustomForm(letters string, words int) customForm {
	f := customForm{prefillLetters: letters}
	if words > 0 {
		f.prefillWords = strconv.Itoa(words)
	}
	letterInput := textinput.New()
	letterInput.Prompt = "Enter the characters you want to practice (e.g., asdf123): "
	letterInput.CharLimit = 128
	wordInput := textinput.New()
	wordInput.Prompt = "Enter the number of words to practice: "
	wordInput.CharLimit = 6
	f.inputs = []textinput.Model{letterInput, wordInput}
	f.reset()
	return f
}

func (f *customForm) reset() {
	f.inputs[fieldLetters].SetValue(f.prefillLetters)
	f.inputs[fieldWords].SetValue(f.prefillWords)
	f.focused = fieldLetters
}

func (f *customForm) focus() tea.Cmd {
	for i := range f.inputs {
		if i == f.focused {
			continue
		}
		f.inputs[i].Blur()
	}
	return f.inputs[f.focused].Focus()
}

func (f *customForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (m *Model) updateCustom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenMenu
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.custom.focused = 1 - m.custom.focused
		return m, m.custom.focus()
	case tea.KeyEnter:
		if m.custom.focused == fieldLetters {
			m.custom.focused = fieldWords
			return m, m.custom.focus()
		}
		m.submitCustom()
		return m, nil
	}
	return m, m.custom.update(msg)
}

func (m *Model) submitCustom() {
	mode, warnings := resolveCustomMode(m.mode,
		m.custom.inputs[fieldLetters].Value(),
		m.custom.inputs[fieldWords].Value())
	m.mode = mode

	// Check eligibility here so a hopeless request never reaches a session.
	if eligible := len(m.gen.Eligible(model.NewCharset(mode.Letters))); eligible < mode.Words {
		m.showNotice(passageErrorLines(&generator.InsufficientWordsError{Eligible: eligible, Requested: mode.Words}), nil)
		return
	}
	if len(warnings) > 0 {
		m.showNotice(warnings, &mode)
		return
	}
	m.startSession(mode)
}

// resolveCustomMode builds a fresh mode from form input, substituting
// defaults for unusable values.
func resolveCustomMode(base model.Mode, letters, words string) (model.Mode, []string) {
	var warnings []string
	if letters == "" {
		letters = config.DefaultCustomLetters
		warnings = append(warnings, fmt.Sprintf("No characters entered. Using default %q.", letters))
	}
	count, err := strconv.Atoi(strings.TrimSpace(words))
	if err != nil || count <= 0 {
		count = config.DefaultCustomWords
		warnings = append(warnings, fmt.Sprintf("Invalid input. Using default of %d words.", count))
	}
	return model.Mode{
		Key:     base.Key,
		Name:    base.Name,
		Words:   count,
		Letters: letters,
		Custom:  true,
	}, warnings
}

func passageErrorLines(err error) []string {
	var insufficient *generator.InsufficientWordsError
	if errors.As(err, &insufficient) {
		return []string{
			"Not enough words found with those characters.",
			fmt.Sprintf("Found %d words, but %d were requested.", insufficient.Eligible, insufficient.Requested),
		}
	}
	return []string{err.Error()}
}

func (m *Model) viewCustom() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")
	for _, input := range m.custom.inputs {
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}
	b.WriteString(footerStyle.Render("Enter to continue · Tab to switch field · Esc to go back"))
	return b.String()
}
