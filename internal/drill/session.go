package drill

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// State is a session's lifecycle stage.
type State int

const (
	StateSetup State = iota
	StateActive
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	}
	return "setup"
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Feedback is returned for every submitted answer.
type Feedback struct {
	QuestionID string        `json:"question_id"`
	Correct    bool          `json:"correct"`
	Expected   []string      `json:"expected"`
	Elapsed    time.Duration `json:"elapsed"`
	Completed  bool          `json:"completed"`
	Outcome    *Outcome      `json:"outcome,omitempty"`
}

// Session runs one drill's quiz. A Session is not safe for concurrent use.
type Session struct {
	engine *Engine
	def    Definition

	state     State
	cfg       QuizConfig
	questions []Question
	index     int
	answers   map[string]Answer
	hints     map[string]int
	elapsed   map[string]time.Duration

	started         time.Time
	questionStarted time.Time
	outcome         *Outcome
}

func newSession(e *Engine, def Definition) *Session {
	return &Session{engine: e, def: def}
}

// Mode returns the session's drill.
func (s *Session) Mode() Mode { return s.def.Mode }

// State returns the lifecycle stage.
func (s *Session) State() State { return s.state }

// Config returns the effective filters of the current or last quiz.
func (s *Session) Config() QuizConfig { return s.cfg }

// Start generates a new quiz. Starting over an active quiz abandons it.
func (s *Session) Start(cfg QuizConfig) error {
	if s.state == StateActive {
		s.engine.log.Info("abandoning active quiz", zap.String("mode", string(s.def.Mode)), zap.Int("answered", s.index))
	}
	s.clear()

	cfg = cfg.withDefaults()
	qs := s.engine.gen.Generate(s.def, cfg)
	if len(qs) == 0 {
		return fmt.Errorf("%w (mode %s)", ErrCannotStart, s.def.Mode)
	}

	now := s.engine.now()
	s.cfg = cfg
	s.questions = qs
	s.answers = make(map[string]Answer, len(qs))
	s.hints = make(map[string]int)
	s.elapsed = make(map[string]time.Duration, len(qs))
	s.started = now
	s.questionStarted = now
	s.state = StateActive

	s.engine.log.Debug("quiz started",
		zap.String("mode", string(s.def.Mode)),
		zap.Int("questions", len(qs)),
		zap.Stringer("difficulty", cfg.Difficulty))
	s.engine.emit(Event{Kind: EventStarted, Mode: s.def.Mode, State: s.state, Total: len(qs)})
	return nil
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (*Question, error) {
	if s.state != StateActive {
		return nil, ErrNotActive
	}
	return &s.questions[s.index], nil
}

// Questions returns the quiz in order.
func (s *Session) Questions() []Question { return s.questions }

// Progress returns the current 0-based index and the question count.
func (s *Session) Progress() (index, total int) {
	return s.index, len(s.questions)
}

// Submit grades an answer to the current question and advances. Answering
// the last question completes the quiz.
func (s *Session) Submit(a Answer) (Feedback, error) {
	if s.state != StateActive {
		return Feedback{}, ErrNotActive
	}
	q := &s.questions[s.index]
	now := s.engine.now()
	el := now.Sub(s.questionStarted)

	s.answers[q.ID] = a
	s.elapsed[q.ID] += el
	s.questionStarted = now
	s.index++

	fb := Feedback{
		QuestionID: q.ID,
		Correct:    Grade(q, a),
		Expected:   q.Expected(),
		Elapsed:    el,
	}
	s.engine.emit(Event{Kind: EventAnswered, Mode: s.def.Mode, State: s.state, Index: s.index, Total: len(s.questions)})

	if s.index == len(s.questions) {
		out := s.engine.complete(s)
		s.outcome = &out
		s.state = StateCompleted
		fb.Completed = true
		fb.Outcome = s.outcome
		s.engine.emit(Event{Kind: EventCompleted, Mode: s.def.Mode, State: s.state, Index: s.index, Total: len(s.questions), Outcome: s.outcome})
	}
	return fb, nil
}

// Hint reveals the next clue for the current question.
func (s *Session) Hint() (Hint, error) {
	if s.state != StateActive {
		return Hint{}, ErrNotActive
	}
	q := &s.questions[s.index]
	level := s.hints[q.ID] + 1
	if level > MaxHints {
		return Hint{}, ErrNoMoreHints
	}
	s.hints[q.ID] = level
	return hintFor(q, level), nil
}

// HintsUsed returns the hints taken on the current question.
func (s *Session) HintsUsed() int {
	if s.state != StateActive {
		return 0
	}
	return s.hints[s.questions[s.index].ID]
}

// Outcome returns the result of the last completed quiz.
func (s *Session) Outcome() (*Outcome, bool) {
	return s.outcome, s.outcome != nil
}

// Reset returns the session to setup, dropping any quiz.
func (s *Session) Reset() {
	if s.state == StateSetup && s.questions == nil {
		return
	}
	s.clear()
	s.engine.emit(Event{Kind: EventReset, Mode: s.def.Mode, State: s.state})
}

func (s *Session) clear() {
	s.state = StateSetup
	s.cfg = QuizConfig{}
	s.questions = nil
	s.index = 0
	s.answers = nil
	s.hints = nil
	s.elapsed = nil
	s.started = time.Time{}
	s.questionStarted = time.Time{}
	s.outcome = nil
}
