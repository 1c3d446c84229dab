package quiz

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/mathbreak/internal/core"
)

// Outcome is the state of an answer session.
type Outcome int

const (
	Presenting Outcome = iota
	Correct
	Incorrect
	TimedOut
)

// String returns the outcome name used in logs and the journal.
func (o Outcome) String() string {
	switch o {
	case Presenting:
		return "presenting"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case TimedOut:
		return "timeout"
	default:
		return "unknown"
	}
}

// Resolved reports whether the session has left Presenting.
func (o Outcome) Resolved() bool {
	return o != Presenting
}

// Result describes a finished session.
type Result struct {
	Challenge    Challenge
	Outcome      Outcome
	Given        string // Buffer contents at resolution
	ElapsedTicks int
	TickRate     int
}

// ElapsedMillis converts the elapsed ticks to milliseconds.
func (r Result) ElapsedMillis() int {
	if r.TickRate <= 0 {
		return 0
	}
	return r.ElapsedTicks * 1000 / r.TickRate
}

// Session is one timed attempt at a challenge. It is stepped once per
// simulation tick and owns the answer buffer until it resolves.
type Session struct {
	challenge   Challenge
	budgetTicks int
	tickRate    int
	elapsed     int
	buffer      []rune
	outcome     Outcome
}

// NewSession starts presenting a challenge with the given budget.
func NewSession(ch Challenge, budgetSeconds float64, tickRate int) *Session {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Session{
		challenge:   ch,
		budgetTicks: int(math.Round(budgetSeconds * float64(tickRate))),
		tickRate:    tickRate,
		outcome:     Presenting,
	}
}

// Challenge returns the challenge being presented.
func (s *Session) Challenge() Challenge {
	return s.challenge
}

// Outcome returns the current state.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Answer returns the current answer buffer.
func (s *Session) Answer() string {
	return string(s.buffer)
}

// Remaining returns the whole seconds left on the clock. It truncates
// toward zero and is not clamped, so it may read 0 just before a timeout.
func (s *Session) Remaining() int {
	return (s.budgetTicks - s.elapsed) / s.tickRate
}

// Step consumes one tick of input. Typed runes are applied in order: a
// backspace removes the last rune, enter tries to confirm, anything else is
// appended. The timeout is checked after input, so a confirm on the final
// tick still counts.
func (s *Session) Step(in core.InputFrame) Outcome {
	if s.outcome.Resolved() {
		return s.outcome
	}

	for _, r := range in.Typed {
		switch r {
		case core.RuneBackspace:
			if len(s.buffer) > 0 {
				s.buffer = s.buffer[:len(s.buffer)-1]
			}
		case core.RuneEnter:
			if s.confirm() {
				return s.outcome
			}
		default:
			s.buffer = append(s.buffer, r)
		}
	}

	s.elapsed++
	if s.elapsed > s.budgetTicks {
		s.outcome = TimedOut
	}
	return s.outcome
}

// confirm parses the buffer. Unparseable input is ignored and the session
// keeps presenting with the buffer untouched.
func (s *Session) confirm() bool {
	n, err := strconv.Atoi(strings.TrimSpace(string(s.buffer)))
	if err != nil {
		return false
	}
	if n == s.challenge.Result {
		s.outcome = Correct
	} else {
		s.outcome = Incorrect
	}
	return true
}

// Result returns the session summary. Only meaningful once resolved.
func (s *Session) Result() Result {
	return Result{
		Challenge:    s.challenge,
		Outcome:      s.outcome,
		Given:        string(s.buffer),
		ElapsedTicks: s.elapsed,
		TickRate:     s.tickRate,
	}
}
