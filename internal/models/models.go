package models

import (
	"errors"
	"time"

	"github.com/LavenderBridge/jazzdrill/internal/algorithm"
)

// ErrNoSnapshot is returned by a gateway that has no saved profile yet.
var ErrNoSnapshot = errors.New("models: no saved snapshot")

// QuestionRecord is the persisted form of one answered question.
type QuestionRecord struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Prompt    string        `json:"prompt"`
	Topic     string        `json:"topic"`
	Key       string        `json:"key"`
	Expected  []string      `json:"expected"`
	Answer    []string      `json:"answer,omitempty"`
	IsCorrect bool          `json:"is_correct"`
	HintsUsed int           `json:"hints_used,omitempty"`
	Elapsed   time.Duration `json:"elapsed"`
}

// QuizResult is the immutable summary of a completed session.
type QuizResult struct {
	ID          string           `json:"id"`
	Mode        string           `json:"mode"`
	Difficulty  string           `json:"difficulty"`
	CompletedAt time.Time        `json:"completed_at"`
	Questions   []QuestionRecord `json:"questions"`
	Correct     int              `json:"correct"`
	Total       int              `json:"total"`
	TotalTime   time.Duration    `json:"total_time"`
	Accuracy    float64          `json:"accuracy"`
	RatingDelta int              `json:"rating_delta"`
}

// CorrectnessMap returns question ID to correctness.
func (r QuizResult) CorrectnessMap() map[string]bool {
	out := make(map[string]bool, len(r.Questions))
	for _, q := range r.Questions {
		out[q.ID] = q.IsCorrect
	}
	return out
}

// AverageTime is the mean time spent per question.
func (r QuizResult) AverageTime() time.Duration {
	if r.Total == 0 {
		return 0
	}
	return r.TotalTime / time.Duration(r.Total)
}

// Tally counts answers for one template symbol or key.
type Tally struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// Accuracy is Correct/Answered, 0 when nothing was answered.
func (t Tally) Accuracy() float64 {
	if t.Answered == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Answered)
}

// SessionLog is one line of the recent-session history.
type SessionLog struct {
	ResultID    string        `json:"result_id"`
	CompletedAt time.Time     `json:"completed_at"`
	Difficulty  string        `json:"difficulty"`
	Total       int           `json:"total"`
	Correct     int           `json:"correct"`
	Accuracy    float64       `json:"accuracy"`
	TotalTime   time.Duration `json:"total_time"`
	RatingDelta int           `json:"rating_delta"`
}

// RecentSessionLimit bounds LifetimeStats.RecentSessions.
const RecentSessionLimit = 100

// LifetimeStats aggregates every completed session of one drill mode.
type LifetimeStats struct {
	TotalQuestionsAnswered int              `json:"total_questions_answered"`
	TotalCorrectAnswers    int              `json:"total_correct_answers"`
	TotalPracticeTime      time.Duration    `json:"total_practice_time"`
	CurrentRating          int              `json:"current_rating"`
	PeakRating             int              `json:"peak_rating"`
	PerSymbol              map[string]Tally `json:"per_symbol"`
	PerKey                 map[string]Tally `json:"per_key"`
	RecentSessions         []SessionLog     `json:"recent_sessions"`
}

// NewLifetimeStats returns empty stats with initialized maps.
func NewLifetimeStats() *LifetimeStats {
	return &LifetimeStats{
		PerSymbol: make(map[string]Tally),
		PerKey:    make(map[string]Tally),
	}
}

// Accumulate folds a completed result into the aggregate. Rating fields are
// owned by the caller.
func (s *LifetimeStats) Accumulate(r QuizResult) {
	if s.PerSymbol == nil {
		s.PerSymbol = make(map[string]Tally)
	}
	if s.PerKey == nil {
		s.PerKey = make(map[string]Tally)
	}

	s.TotalQuestionsAnswered += r.Total
	s.TotalCorrectAnswers += r.Correct
	s.TotalPracticeTime += r.TotalTime

	for _, q := range r.Questions {
		bump(s.PerSymbol, q.Topic, q.IsCorrect)
		bump(s.PerKey, q.Key, q.IsCorrect)
	}

	s.RecentSessions = append(s.RecentSessions, SessionLog{
		ResultID:    r.ID,
		CompletedAt: r.CompletedAt,
		Difficulty:  r.Difficulty,
		Total:       r.Total,
		Correct:     r.Correct,
		Accuracy:    r.Accuracy,
		TotalTime:   r.TotalTime,
		RatingDelta: r.RatingDelta,
	})
	if over := len(s.RecentSessions) - RecentSessionLimit; over > 0 {
		s.RecentSessions = append([]SessionLog(nil), s.RecentSessions[over:]...)
	}
}

// Accuracy is the lifetime share of correct answers.
func (s *LifetimeStats) Accuracy() float64 {
	return Tally{Answered: s.TotalQuestionsAnswered, Correct: s.TotalCorrectAnswers}.Accuracy()
}

func bump(m map[string]Tally, key string, correct bool) {
	if key == "" {
		return
	}
	t := m[key]
	t.Answered++
	if correct {
		t.Correct++
	}
	m[key] = t
}

// Snapshot is everything persisted for one profile. It is always saved and
// loaded whole.
type Snapshot struct {
	Version      int                           `json:"version"`
	SavedAt      time.Time                     `json:"saved_at"`
	Leaderboards map[string]Leaderboard        `json:"leaderboards"`
	Stats        map[string]*LifetimeStats     `json:"stats"`
	Schedules    map[string]algorithm.Schedule `json:"schedules"`
}

// SnapshotVersion is the current payload layout.
const SnapshotVersion = 1

// NewSnapshot returns an empty first-run snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:      SnapshotVersion,
		Leaderboards: make(map[string]Leaderboard),
		Stats:        make(map[string]*LifetimeStats),
		Schedules:    make(map[string]algorithm.Schedule),
	}
}

// Normalize fills nil maps left by older or partial payloads.
func (s *Snapshot) Normalize() {
	if s.Leaderboards == nil {
		s.Leaderboards = make(map[string]Leaderboard)
	}
	if s.Stats == nil {
		s.Stats = make(map[string]*LifetimeStats)
	}
	if s.Schedules == nil {
		s.Schedules = make(map[string]algorithm.Schedule)
	}
	for mode, st := range s.Stats {
		if st == nil {
			s.Stats[mode] = NewLifetimeStats()
		}
	}
}

// StatsFor returns the stats of mode, creating them if absent.
func (s *Snapshot) StatsFor(mode string) *LifetimeStats {
	st, ok := s.Stats[mode]
	if !ok || st == nil {
		st = NewLifetimeStats()
		s.Stats[mode] = st
	}
	return st
}

// Review is one scheduler review, logged for history and stats.
type Review struct {
	ID           int       `json:"id"`
	Mode         string    `json:"mode"`
	Item         string    `json:"item"`
	Correct      bool      `json:"correct"`
	ResponseMS   int64     `json:"response_ms"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays float64   `json:"interval_days"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}

type ReviewStats struct {
	TotalReviews      int
	ReviewsLast7Days  int
	Accuracy          float64
	AverageResponseMS float64
	CountByMode       map[string]int
}
