// Package interview holds the client's view of a mock interview. The server
// owns the questions and progress; the machine only tracks which responses
// are legal next and the latest counter.
package interview

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fadilmartias/careercraft/internal/dto"
)

type State string

const (
	StateSetup            State = "setup"
	StateAwaitingQuestion State = "awaiting_question"
	StateAwaitingAnswer   State = "awaiting_answer"
	StateReport           State = "report"
)

var (
	ErrInvalidTransition = errors.New("invalid interview transition")
	ErrUnexpectedTurn    = errors.New("An unexpected response was received.")
)

type Machine struct {
	mu       sync.Mutex
	state    State
	question string
	current  int
	total    int
	report   *dto.InterviewReport
	// request in flight while awaiting_question: "start" or "submit"
	pending string
}

func NewMachine() *Machine {
	return &Machine{state: StateSetup}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start marks the first question as requested. Starting again after a report
// begins a fresh interview.
func (m *Machine) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case StateSetup, StateReport:
		m.reset()
		m.state = StateAwaitingQuestion
		m.pending = "start"
		return nil
	}
	return m.invalid("start")
}

// Submit marks an answer as sent.
func (m *Machine) Submit() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAwaitingAnswer {
		return m.invalid("submit")
	}
	m.state = StateAwaitingQuestion
	m.pending = "submit"
	return nil
}

// Apply moves the machine according to the shape of a server reply. A
// question without numbering keeps the previous counter.
func (m *Machine) Apply(turn dto.InterviewTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAwaitingQuestion {
		return m.invalid("apply")
	}
	switch {
	case turn.Report != nil:
		report := *turn.Report
		m.report = &report
		m.state = StateReport
	case turn.Question != "":
		m.question = turn.Question
		if turn.QuestionNumber > 0 {
			m.current = turn.QuestionNumber
		}
		if turn.TotalQuestions > 0 {
			m.total = turn.TotalQuestions
		}
		m.state = StateAwaitingAnswer
	default:
		return ErrUnexpectedTurn
	}
	m.pending = ""
	return nil
}

// Fail rolls back an outstanding request. A failed start returns to setup;
// a failed answer returns to awaiting_answer so the visitor can retry.
func (m *Machine) Fail() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAwaitingQuestion {
		return
	}
	if m.pending == "submit" {
		m.state = StateAwaitingAnswer
	} else {
		m.state = StateSetup
	}
	m.pending = ""
}

// End forces the report state regardless of server-held progress.
func (m *Machine) End(report dto.InterviewReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateSetup {
		return m.invalid("end")
	}
	m.report = &report
	m.state = StateReport
	m.pending = ""
	return nil
}

// Reset returns to setup, discarding any progress.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

func (m *Machine) Question() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.question
}

func (m *Machine) Progress() (current, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.total
}

func (m *Machine) Counter() string {
	current, total := m.Progress()
	return Counter(current, total)
}

func (m *Machine) Report() *dto.InterviewReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report
}

func (m *Machine) reset() {
	m.state = StateSetup
	m.question = ""
	m.current, m.total = 0, 0
	m.report = nil
	m.pending = ""
}

func (m *Machine) invalid(action string) error {
	return fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, action, m.state)
}

func Counter(current, total int) string {
	return fmt.Sprintf("Question %d of %d", current, total)
}
