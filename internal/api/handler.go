package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/LavenderBridge/jazzdrill/internal/drill"
	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

// Handler serves the drill engine over HTTP. The engine is single-threaded,
// so every handler holds mu while it touches it.
type Handler struct {
	mu     sync.Mutex
	engine *drill.Engine
	log    *zap.Logger
	now    func() time.Time
}

// NewHandler returns a handler over engine.
func NewHandler(engine *drill.Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, log: logger, now: time.Now}
}

func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResponse(w http.ResponseWriter, message string, status int) {
	jsonResponse(w, map[string]string{"error": message}, status)
}

// drillError maps engine errors onto HTTP statuses.
func drillError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, drill.ErrUnknownMode):
		errorResponse(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, drill.ErrNotActive), errors.Is(err, drill.ErrNoMoreHints):
		errorResponse(w, err.Error(), http.StatusConflict)
	default:
		errorResponse(w, err.Error(), http.StatusBadRequest)
	}
}

// questionView is a question without its answer.
type questionView struct {
	ID          string             `json:"id"`
	Type        drill.QuestionType `json:"type"`
	Prompt      string             `json:"prompt"`
	Positional  bool               `json:"positional"`
	Positions   int                `json:"positions,omitempty"`
	Index       int                `json:"index"`
	Total       int                `json:"total"`
	TimeLimitMS int64              `json:"time_limit_ms"`
	HintsUsed   int                `json:"hints_used"`
}

func viewOf(s *drill.Session, q *drill.Question) questionView {
	idx, total := s.Progress()
	v := questionView{
		ID:          q.ID,
		Type:        q.Type,
		Prompt:      q.Prompt,
		Positional:  q.Type.Positional(),
		Index:       idx,
		Total:       total,
		TimeLimitMS: q.TimeLimit.Milliseconds(),
		HintsUsed:   s.HintsUsed(),
	}
	if v.Positional {
		v.Positions = len(q.CorrectPositions)
	}
	return v
}

// === System Endpoints ===

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]interface{}{
		"status":    "ok",
		"timestamp": h.now(),
	}, http.StatusOK)
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	lib := h.engine.Library()
	switch kind := mux.Vars(r)["kind"]; kind {
	case "chords":
		jsonResponse(w, lib.Chords.All(), http.StatusOK)
	case "scales":
		jsonResponse(w, lib.Scales.All(), http.StatusOK)
	case "intervals":
		jsonResponse(w, lib.Intervals.All(), http.StatusOK)
	case "progressions":
		jsonResponse(w, lib.Progressions.All(), http.StatusOK)
	default:
		errorResponse(w, "unknown catalog "+strconv.Quote(kind), http.StatusNotFound)
	}
}

// === Drill Endpoints ===

func (h *Handler) GetDrills(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	type drillView struct {
		Mode          drill.Mode           `json:"mode"`
		Title         string               `json:"title"`
		QuestionTypes []drill.QuestionType `json:"question_types"`
		State         drill.State          `json:"state"`
		Rating        int                  `json:"rating"`
		Rank          string               `json:"rank"`
	}
	var out []drillView
	for _, d := range h.engine.Definitions() {
		s, err := h.engine.Session(d.Mode)
		if err != nil {
			continue
		}
		rating, rank := h.engine.Rating(d.Mode)
		out = append(out, drillView{d.Mode, d.Title, d.QuestionTypes, s.State(), rating, rank.Title})
	}
	jsonResponse(w, out, http.StatusOK)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*drill.Session, bool) {
	mode, err := drill.ParseMode(mux.Vars(r)["mode"])
	if err != nil {
		drillError(w, err)
		return nil, false
	}
	s, err := h.engine.Session(mode)
	if err != nil {
		drillError(w, err)
		return nil, false
	}
	return s, true
}

func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	var cfg drill.QuizConfig
	// an empty body, chunked or not, means the drill defaults
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		errorResponse(w, "invalid quiz config: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.Start(cfg); err != nil {
		drillError(w, err)
		return
	}
	q, err := s.Current()
	if err != nil {
		drillError(w, err)
		return
	}
	h.log.Debug("quiz started over http", zap.String("mode", string(s.Mode())))
	jsonResponse(w, viewOf(s, q), http.StatusCreated)
}

func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	q, err := s.Current()
	if err != nil {
		drillError(w, err)
		return
	}
	jsonResponse(w, viewOf(s, q), http.StatusOK)
}

// answerRequest carries notes as text, e.g. "C E G Bb". Positional answers
// send one string per chord.
type answerRequest struct {
	Notes     string   `json:"notes"`
	Positions []string `json:"positions"`
}

func (req answerRequest) parse() (drill.Answer, error) {
	var a drill.Answer
	var err error
	if len(req.Positions) > 0 {
		a.Positions = make([][]theory.Note, len(req.Positions))
		for i, p := range req.Positions {
			if a.Positions[i], err = theory.ParseNotes(p); err != nil {
				return drill.Answer{}, err
			}
		}
		return a, nil
	}
	a.Notes, err = theory.ParseNotes(req.Notes)
	return a, err
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "invalid answer: "+err.Error(), http.StatusBadRequest)
		return
	}
	answer, err := req.parse()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	fb, err := s.Submit(answer)
	if err != nil {
		drillError(w, err)
		return
	}

	resp := map[string]interface{}{"feedback": fb}
	if !fb.Completed {
		if q, err := s.Current(); err == nil {
			resp["next"] = viewOf(s, q)
		}
	}
	jsonResponse(w, resp, http.StatusOK)
}

func (h *Handler) GetHint(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	hint, err := s.Hint()
	if err != nil {
		drillError(w, err)
		return
	}
	jsonResponse(w, hint, http.StatusOK)
}

func (h *Handler) ResetQuiz(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	jsonResponse(w, h.engine.Leaderboard(s.Mode()), http.StatusOK)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	rating, rank := h.engine.Rating(s.Mode())
	stats := h.engine.Stats(s.Mode())
	jsonResponse(w, map[string]interface{}{
		"stats":    stats,
		"rating":   rating,
		"rank":     rank,
		"accuracy": stats.Accuracy(),
	}, http.StatusOK)
}

// === Spaced Repetition ===

func (h *Handler) GetDueReviews(w http.ResponseWriter, r *http.Request) {
	var mode drill.Mode
	if m := r.URL.Query().Get("mode"); m != "" {
		var err error
		if mode, err = drill.ParseMode(m); err != nil {
			drillError(w, err)
			return
		}
	}
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			errorResponse(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	due := h.engine.DueItems(mode, h.now())
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	jsonResponse(w, map[string]interface{}{
		"count": len(due),
		"items": due,
	}, http.StatusOK)
}
