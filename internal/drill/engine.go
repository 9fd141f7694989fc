package drill

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LavenderBridge/jazzdrill/internal/algorithm"
	"github.com/LavenderBridge/jazzdrill/internal/models"
	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

// Gateway loads and saves the whole persisted snapshot.
type Gateway interface {
	Load() (*models.Snapshot, error)
	Save(*models.Snapshot) error
}

// ReviewRecorder is implemented by gateways that keep a review log.
type ReviewRecorder interface {
	RecordReviews([]models.Review) error
}

// MemoryGateway keeps the snapshot in memory.
type MemoryGateway struct {
	mu       sync.Mutex
	snapshot *models.Snapshot
	saves    int
	reviews  []models.Review
}

// Load returns models.ErrNoSnapshot until the first Save.
func (g *MemoryGateway) Load() (*models.Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.snapshot == nil {
		return nil, models.ErrNoSnapshot
	}
	return g.snapshot, nil
}

func (g *MemoryGateway) Save(s *models.Snapshot) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.snapshot = s
	g.saves++
	return nil
}

func (g *MemoryGateway) RecordReviews(rs []models.Review) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reviews = append(g.reviews, rs...)
	return nil
}

// Saves returns how many times Save was called.
func (g *MemoryGateway) Saves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves
}

// Reviews returns every recorded review.
func (g *MemoryGateway) Reviews() []models.Review {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.Review(nil), g.reviews...)
}

// EventKind names a session transition.
type EventKind string

const (
	EventStarted   EventKind = "started"
	EventAnswered  EventKind = "answered"
	EventCompleted EventKind = "completed"
	EventReset     EventKind = "reset"
)

// Event is published to Options.OnEvent on every session transition.
type Event struct {
	Kind    EventKind
	Mode    Mode
	State   State
	Index   int
	Total   int
	Outcome *Outcome
}

// Outcome is what a completed quiz produced.
type Outcome struct {
	Result          models.QuizResult    `json:"result"`
	Rating          RatingChange         `json:"rating"`
	LeaderboardRank int                  `json:"leaderboard_rank"`
	Schedules       []algorithm.Schedule `json:"schedules"`
	Saved           bool                 `json:"saved"`
}

// Options configures NewEngine. Zero values fall back to defaults.
type Options struct {
	Library     *theory.Library
	Gateway     Gateway
	Logger      *zap.Logger
	Rand        *rand.Rand
	Clock       func() time.Time
	Definitions []Definition
	OnEvent     func(Event)
}

// Engine owns the catalogs, one session per drill and the loaded snapshot.
// It is not safe for concurrent use.
type Engine struct {
	lib      *theory.Library
	gen      *Generator
	sched    *algorithm.Scheduler
	gateway  Gateway
	snapshot *models.Snapshot

	defs     []Definition
	sessions map[Mode]*Session

	log     *zap.Logger
	now     func() time.Time
	onEvent func(Event)
}

// NewEngine builds an engine and loads the saved snapshot. A missing or
// unreadable snapshot starts a fresh profile.
func NewEngine(opts Options) (*Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	lib := opts.Library
	if lib == nil {
		var err error
		if lib, err = theory.NewLibrary(log.Named("theory")); err != nil {
			return nil, fmt.Errorf("load theory library: %w", err)
		}
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	gw := opts.Gateway
	if gw == nil {
		gw = &MemoryGateway{}
	}
	defs := opts.Definitions
	if len(defs) == 0 {
		defs = Definitions()
	}

	e := &Engine{
		lib:      lib,
		gen:      NewGenerator(lib, opts.Rand),
		sched:    algorithm.NewScheduler(now),
		gateway:  gw,
		defs:     defs,
		sessions: make(map[Mode]*Session, len(defs)),
		log:      log,
		now:      now,
		onEvent:  opts.OnEvent,
	}
	for _, d := range defs {
		e.sessions[d.Mode] = newSession(e, d)
	}
	e.load()
	return e, nil
}

func (e *Engine) load() {
	snap, err := e.gateway.Load()
	switch {
	case errors.Is(err, models.ErrNoSnapshot):
		e.log.Info("no saved progress, starting fresh")
	case err != nil:
		e.log.Warn("saved progress unreadable, starting fresh", zap.Error(err))
	}
	if err != nil || snap == nil {
		snap = models.NewSnapshot()
	}
	snap.Normalize()
	e.snapshot = snap
	e.sched.Restore(snap.Schedules)
}

func (e *Engine) emit(ev Event) {
	if e.onEvent != nil {
		e.onEvent(ev)
	}
}

// Library returns the shared catalogs.
func (e *Engine) Library() *theory.Library { return e.lib }

// Definitions returns the registered drills.
func (e *Engine) Definitions() []Definition { return e.defs }

// Definition returns the drill registered for mode.
func (e *Engine) Definition(mode Mode) (Definition, error) {
	s, err := e.Session(mode)
	if err != nil {
		return Definition{}, err
	}
	return s.def, nil
}

// Session returns the drill's session.
func (e *Engine) Session(mode Mode) (*Session, error) {
	s, ok := e.sessions[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return s, nil
}

// Start begins a quiz in mode.
func (e *Engine) Start(mode Mode, cfg QuizConfig) (*Session, error) {
	s, err := e.Session(mode)
	if err != nil {
		return nil, err
	}
	if err := s.Start(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Leaderboard returns a copy of the drill's top results.
func (e *Engine) Leaderboard(mode Mode) models.Leaderboard {
	return append(models.Leaderboard(nil), e.snapshot.Leaderboards[string(mode)]...)
}

// Stats returns the drill's lifetime statistics.
func (e *Engine) Stats(mode Mode) models.LifetimeStats {
	return *e.snapshot.StatsFor(string(mode))
}

// Rating returns the drill's rating and rank.
func (e *Engine) Rating(mode Mode) (int, Rank) {
	r := e.snapshot.StatsFor(string(mode)).CurrentRating
	return r, RankFor(r)
}

// DueItems lists review items due by asOf. An empty mode lists every drill.
func (e *Engine) DueItems(mode Mode, asOf time.Time) []algorithm.Schedule {
	return e.sched.DueItems(string(mode), asOf)
}

// ResetSchedules drops the review schedules of mode, or of every drill when
// mode is empty, and saves.
func (e *Engine) ResetSchedules(mode Mode) (int, error) {
	n := e.sched.Reset(string(mode))
	e.snapshot.Schedules = e.sched.Export()
	if err := e.Save(); err != nil {
		return n, err
	}
	return n, nil
}

// ResetProgress clears leaderboards, stats and schedules of mode, or of every
// drill when mode is empty, and saves.
func (e *Engine) ResetProgress(mode Mode) error {
	if mode == "" {
		e.snapshot = models.NewSnapshot()
		e.sched.Restore(nil)
	} else {
		delete(e.snapshot.Leaderboards, string(mode))
		delete(e.snapshot.Stats, string(mode))
		e.sched.Reset(string(mode))
		e.snapshot.Schedules = e.sched.Export()
	}
	return e.Save()
}

// Save persists the snapshot.
func (e *Engine) Save() error {
	e.snapshot.SavedAt = e.now()
	if err := e.gateway.Save(e.snapshot); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// complete grades the finished session and folds it into the snapshot.
func (e *Engine) complete(s *Session) Outcome {
	now := e.now()
	mode := string(s.def.Mode)
	res := models.QuizResult{
		ID:          uuid.NewString(),
		Mode:        mode,
		Difficulty:  s.cfg.Difficulty.String(),
		CompletedAt: now,
		Total:       len(s.questions),
		TotalTime:   now.Sub(s.started),
		Questions:   make([]models.QuestionRecord, 0, len(s.questions)),
	}

	score := 0.0
	for i := range s.questions {
		q := &s.questions[i]
		a, answered := s.answers[q.ID]
		ok := answered && Grade(q, a)
		if ok {
			res.Correct++
		}
		score += credit(ok, s.hints[q.ID])
		res.Questions = append(res.Questions, models.QuestionRecord{
			ID:        q.ID,
			Type:      string(q.Type),
			Prompt:    q.Prompt,
			Topic:     q.Topic,
			Key:       q.Key,
			Expected:  q.Expected(),
			Answer:    a.Strings(),
			IsCorrect: ok,
			HintsUsed: s.hints[q.ID],
			Elapsed:   s.elapsed[q.ID],
		})
	}
	if res.Total > 0 {
		res.Accuracy = score / float64(res.Total)
	}
	res.RatingDelta = s.def.Rating.Delta(res.Accuracy, s.cfg.Difficulty, res.Total, res.AverageTime())

	stats := e.snapshot.StatsFor(mode)
	change := ApplyRating(stats.CurrentRating, res.RatingDelta)
	stats.CurrentRating = change.After
	if change.After > stats.PeakRating {
		stats.PeakRating = change.After
	}
	stats.Accumulate(res)

	lb, rank := e.snapshot.Leaderboards[mode].Insert(res)
	e.snapshot.Leaderboards[mode] = lb

	out := Outcome{Result: res, Rating: change, LeaderboardRank: rank}
	reviews := make([]models.Review, 0, len(res.Questions))
	for i := range s.questions {
		rec := res.Questions[i]
		sch := e.sched.RecordResult(s.questions[i].ItemID(), rec.IsCorrect, rec.Elapsed)
		out.Schedules = append(out.Schedules, sch)
		reviews = append(reviews, models.Review{
			Mode:         mode,
			Item:         sch.Item.String(),
			Correct:      rec.IsCorrect,
			ResponseMS:   rec.Elapsed.Milliseconds(),
			EaseFactor:   sch.EaseFactor,
			IntervalDays: sch.IntervalDays,
			ReviewedAt:   now,
		})
	}
	e.snapshot.Schedules = e.sched.Export()

	if err := e.Save(); err != nil {
		e.log.Warn("could not save progress", zap.String("mode", mode), zap.Error(err))
	} else {
		out.Saved = true
	}
	if rec, ok := e.gateway.(ReviewRecorder); ok {
		if err := rec.RecordReviews(reviews); err != nil {
			e.log.Warn("could not record reviews", zap.String("mode", mode), zap.Error(err))
		}
	}

	e.log.Info("quiz completed",
		zap.String("mode", mode),
		zap.Int("correct", res.Correct),
		zap.Int("total", res.Total),
		zap.Float64("accuracy", res.Accuracy),
		zap.Int("rating_delta", res.RatingDelta),
		zap.Int("rating", change.After),
		zap.Bool("rank_up", change.DidRankUp))
	return out
}
