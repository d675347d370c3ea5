// Package session implements the live typing state for one practice run.
package session

import (
	"fmt"
	"time"

	"github.com/verte-zerg/touchtype/internal/model"
	"github.com/verte-zerg/touchtype/internal/stats"
)

// State is the lifecycle stage of a session.
type State int

// Session states.
const (
	StateRunning State = iota
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EventKind classifies a keystroke.
type EventKind int

// Keystroke kinds.
const (
	EventOther EventKind = iota
	EventPrintable
	EventBackspace
	EventCancel
)

// Event is one keystroke delivered by the shell.
type Event struct {
	Kind EventKind
	Rune rune
}

// Printable returns a printable-character event.
func Printable(r rune) Event {
	return Event{Kind: EventPrintable, Rune: r}
}

// Outcome tells the shell what an event did.
type Outcome struct {
	Changed   bool
	Mistake   bool
	Completed bool
}

// Session owns the typed buffer and error count for a passage.
type Session struct {
	passage model.Passage
	target  []rune
	typed   []rune
	errors  int

	state     State
	started   bool
	startedAt time.Time
	endedAt   time.Time

	now func() time.Time
}

// New creates a session for passage. A nil clock uses time.Now.
func New(passage model.Passage, clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{
		passage: passage,
		target:  []rune(passage.Text),
		typed:   make([]rune, 0, len(passage.Text)),
		state:   StateRunning,
		now:     clock,
	}
}

// Start records the start time. It is called on the first render so setup
// time is not counted; later calls are no-ops.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.startedAt = s.now()
}

// Handle applies one keystroke. Events arriving before Start or after the
// session left StateRunning are ignored.
func (s *Session) Handle(ev Event) Outcome {
	if !s.started || s.state != StateRunning {
		return Outcome{}
	}
	switch ev.Kind {
	case EventPrintable:
		return s.typeRune(ev.Rune)
	case EventBackspace:
		return s.backspace()
	case EventCancel:
		s.state = StateCancelled
		return Outcome{Changed: true}
	default:
		return Outcome{}
	}
}

func (s *Session) typeRune(r rune) Outcome {
	pos := len(s.typed)
	if pos >= len(s.target) {
		return Outcome{}
	}
	out := Outcome{Changed: true}
	s.typed = append(s.typed, r)
	if r != s.target[pos] {
		s.errors++
		out.Mistake = true
	}
	if len(s.typed) == len(s.target) {
		s.state = StateCompleted
		s.endedAt = s.now()
		out.Completed = true
	}
	return out
}

// backspace never forgives a recorded error.
func (s *Session) backspace() Outcome {
	if len(s.typed) == 0 {
		return Outcome{}
	}
	s.typed = s.typed[:len(s.typed)-1]
	return Outcome{Changed: true}
}

// State returns the lifecycle stage.
func (s *Session) State() State { return s.state }

// Started reports whether Start has been called.
func (s *Session) Started() bool { return s.started }

// Passage returns the target passage.
func (s *Session) Passage() model.Passage { return s.passage }

// Target returns a copy of the target runes.
func (s *Session) Target() []rune { return append([]rune(nil), s.target...) }

// Typed returns a copy of the typed runes.
func (s *Session) Typed() []rune { return append([]rune(nil), s.typed...) }

// Cursor is the index of the next rune to type.
func (s *Session) Cursor() int { return len(s.typed) }

// Errors is the number of mistakes recorded so far.
func (s *Session) Errors() int { return s.errors }

// Progress returns the typed fraction of the passage in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.target) == 0 {
		return 0
	}
	return float64(len(s.typed)) / float64(len(s.target))
}

// Elapsed is the time since Start, frozen at completion.
func (s *Session) Elapsed() time.Duration {
	if !s.started {
		return 0
	}
	if s.state == StateCompleted {
		return s.endedAt.Sub(s.startedAt)
	}
	return s.now().Sub(s.startedAt)
}

// Result computes the metrics snapshot of a completed session.
func (s *Session) Result(modeName string) (model.Result, error) {
	if s.state != StateCompleted {
		return model.Result{}, fmt.Errorf("session is %s, not completed", s.state)
	}
	return stats.BuildResult(modeName, s.endedAt.Sub(s.startedAt), len(s.target), s.errors)
}
