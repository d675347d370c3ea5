// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/touchtype/internal/generator"
	"github.com/verte-zerg/touchtype/internal/model"
	"github.com/verte-zerg/touchtype/internal/session"
)

// Minimum terminal size for the practice screens.
const (
	MinWidth  = 80
	MinHeight = 20
)

const maxMenuModes = 9

type screen int

const (
	screenMenu screen = iota
	screenCustom
	screenNotice
	screenTyping
	screenResult
)

// Options configures a Model.
type Options struct {
	Modes     []model.Mode
	Generator *generator.Generator
	// StartMode skips the menu and starts this mode directly.
	StartMode *model.Mode
	// CustomWords and CustomLetters prefill the custom-mode form.
	CustomWords   int
	CustomLetters string
	Clock         func() time.Time
	// Bell is the error feedback for a mistyped key. Nil rings the terminal bell.
	Bell func()
}

// Model implements the Bubble Tea practice UI.
type Model struct {
	modes []model.Mode
	gen   *generator.Generator
	clock func() time.Time
	bell  func()

	width  int
	height int

	screen screen

	custom customForm

	notice      []string
	noticeStart *model.Mode

	mode    model.Mode
	session *session.Session
	mistake bool

	results []model.Result
}

// NewModel constructs the practice UI model.
func NewModel(opts Options) *Model {
	modes := opts.Modes
	if len(modes) > maxMenuModes {
		log.Printf("only the first %d of %d modes fit the menu", maxMenuModes, len(modes))
		modes = modes[:maxMenuModes]
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	bell := opts.Bell
	if bell == nil {
		bell = ringBell
	}
	m := &Model{
		modes:  modes,
		gen:    opts.Generator,
		clock:  clock,
		bell:   bell,
		screen: screenMenu,
		custom: newCustomForm(opts.CustomLetters, opts.CustomWords),
	}
	if opts.StartMode != nil {
		m.selectMode(*opts.StartMode)
	}
	return m
}

// Results returns the results of the sessions completed so far.
func (m *Model) Results() []model.Result {
	return append([]model.Result(nil), m.results...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.screen == screenCustom {
		return m.custom.focus()
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.tooSmall() {
			return m, nil
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenCustom:
			return m.updateCustom(msg)
		case screenNotice:
			return m.updateNotice()
		case screenTyping:
			return m.updateTyping(msg)
		case screenResult:
			return m.updateResult(msg)
		}
		return m, nil
	default:
		if m.screen == screenCustom {
			return m, m.custom.update(msg)
		}
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.tooSmall() {
		return fmt.Sprintf("Terminal window too small. Minimum %dx%d required (current %dx%d).", MinWidth, MinHeight, m.width, m.height)
	}
	switch m.screen {
	case screenCustom:
		return m.viewCustom()
	case screenNotice:
		return m.viewNotice()
	case screenTyping:
		return m.viewTyping()
	case screenResult:
		return m.viewResult()
	default:
		return m.viewMenu()
	}
}

// tooSmall is false until the first WindowSizeMsg arrives.
func (m *Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < MinWidth || m.height < MinHeight
}

func (m *Model) selectMode(mode model.Mode) tea.Cmd {
	m.mode = mode
	if mode.Custom {
		m.custom.reset()
		m.screen = screenCustom
		return m.custom.focus()
	}
	m.startSession(mode)
	return nil
}

func (m *Model) startSession(mode model.Mode) {
	passage, err := m.gen.Build(model.NewCharset(mode.Letters), mode.Words)
	if err != nil {
		log.Printf("build passage for %s: %v", mode.Key, err)
		m.showNotice(passageErrorLines(err), nil)
		return
	}
	m.mode = mode
	m.session = session.New(passage, m.clock)
	m.mistake = false
	m.screen = screenTyping
	// The typing screen renders right after this update.
	m.session.Start()
	log.Printf("session started: mode=%s words=%d chars=%d", mode.Key, len(passage.Words), len([]rune(passage.Text)))
}

func (m *Model) showNotice(lines []string, next *model.Mode) {
	m.notice = lines
	m.noticeStart = next
	m.screen = screenNotice
}

func (m *Model) updateNotice() (tea.Model, tea.Cmd) {
	next := m.noticeStart
	m.notice = nil
	m.noticeStart = nil
	if next != nil {
		m.startSession(*next)
		return m, nil
	}
	m.screen = screenMenu
	return m, nil
}

func (m *Model) viewNotice() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")
	for _, line := range m.notice {
		b.WriteString(noticeStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.noticeStart != nil {
		b.WriteString("Press any key to start.")
	} else {
		b.WriteString("Press any key to return to the menu.")
	}
	return b.String()
}

func (m *Model) header() string {
	if m.mode.Name == "" {
		return "TouchType"
	}
	return "TouchType | " + m.mode.Name
}

func ringBell() {
	if _, err := fmt.Fprint(os.Stderr, "\a"); err != nil {
		// Best-effort terminal bell.
		_ = err
	}
}
