package drill

import (
	"fmt"
	"strings"
	"time"

	"github.com/LavenderBridge/jazzdrill/internal/algorithm"
	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

// QuestionType selects what a question asks for and how it is graded.
type QuestionType string

const (
	SingleTone            QuestionType = "single_tone"
	AllTones              QuestionType = "all_tones"
	GuideTones            QuestionType = "guide_tones"
	IntervalTarget        QuestionType = "interval_target"
	CommonTones           QuestionType = "common_tones"
	ResolutionTarget      QuestionType = "resolution_target"
	ProgressionSpelling   QuestionType = "progression_spelling"
	ProgressionGuideTones QuestionType = "progression_guide_tones"
	ProgressionRoots      QuestionType = "progression_roots"
)

// IsValid reports whether qt has a grading rule.
func (qt QuestionType) IsValid() bool {
	_, ok := graders[qt]
	return ok
}

// Positional reports whether answers to qt are one note group per chord.
func (qt QuestionType) Positional() bool {
	switch qt {
	case ProgressionSpelling, ProgressionGuideTones, ProgressionRoots:
		return true
	}
	return false
}

// Question is one generated prompt and its expected answer. Exactly one of
// Correct and CorrectPositions is set, depending on Type.Positional.
type Question struct {
	ID     string       `json:"id"`
	Mode   Mode         `json:"mode"`
	Type   QuestionType `json:"type"`
	Prompt string       `json:"prompt"`

	Instance    *theory.Instance    `json:"instance,omitempty"`
	Other       *theory.Instance    `json:"other,omitempty"`
	Progression *theory.Progression `json:"progression,omitempty"`
	Target      *theory.ToneSpec    `json:"target,omitempty"`
	Position    int                 `json:"position,omitempty"`

	Correct          []theory.Note   `json:"-"`
	CorrectPositions [][]theory.Note `json:"-"`

	TimeLimit time.Duration `json:"time_limit"`
	Topic     string        `json:"topic"`
	Key       string        `json:"key"`
}

// ItemID identifies the question's spaced-repetition item.
func (q *Question) ItemID() algorithm.ItemID {
	return algorithm.ItemID{Mode: string(q.Mode), Topic: q.Topic, Key: q.Key, Variant: string(q.Type)}
}

// Expected renders the expected answer, one string per note or per position.
func (q *Question) Expected() []string {
	if q.Type.Positional() {
		out := make([]string, len(q.CorrectPositions))
		for i, pos := range q.CorrectPositions {
			out[i] = joinNotes(pos)
		}
		return out
	}
	return noteNames(q.Correct)
}

// Answer is a user response. Notes is used by flat question types, Positions
// by positional ones.
type Answer struct {
	Notes     []theory.Note   `json:"notes,omitempty"`
	Positions [][]theory.Note `json:"positions,omitempty"`
}

// Strings renders the answer the same way Question.Expected does.
func (a Answer) Strings() []string {
	if len(a.Positions) > 0 {
		out := make([]string, len(a.Positions))
		for i, pos := range a.Positions {
			out[i] = joinNotes(pos)
		}
		return out
	}
	return noteNames(a.Notes)
}

func noteNames(ns []theory.Note) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Name
	}
	return out
}

func joinNotes(ns []theory.Note) string {
	return strings.Join(noteNames(ns), " ")
}

// KeyTier groups roots by how many accidentals their keys carry.
type KeyTier string

const (
	KeysEasy   KeyTier = "easy"
	KeysMedium KeyTier = "medium"
	KeysHard   KeyTier = "hard"
	KeysExpert KeyTier = "expert"
	KeysAll    KeyTier = "all"
)

var keyTierRoots = map[KeyTier][]string{
	KeysEasy:   {"C", "F", "G"},
	KeysMedium: {"Bb", "Eb", "D", "A"},
	KeysHard:   {"Ab", "Db", "E", "B"},
	KeysExpert: {"F#"},
	KeysAll:    {"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"},
}

// Roots returns the tier's roots. Unknown tiers return nil.
func (k KeyTier) Roots() []theory.Note {
	names, ok := keyTierRoots[k]
	if !ok {
		return nil
	}
	out := make([]theory.Note, 0, len(names))
	for _, n := range names {
		out = append(out, theory.MustNote(n))
	}
	return out
}

// DefaultQuestionCount is used when QuizConfig.Count is not positive.
const DefaultQuestionCount = 10

// MaxQuestionCount caps one quiz.
const MaxQuestionCount = 100

// QuizConfig is the user's filter set for one quiz.
type QuizConfig struct {
	Count         int                `json:"count"`
	Difficulty    theory.Difficulty  `json:"difficulty"`
	QuestionTypes []QuestionType     `json:"question_types,omitempty"`
	KeyTier       KeyTier            `json:"key_tier,omitempty"`
	Roots         []string           `json:"roots,omitempty"`
	Symbols       []string           `json:"symbols,omitempty"`
	Directions    []theory.Direction `json:"directions,omitempty"`
}

func (c QuizConfig) withDefaults() QuizConfig {
	if c.Count <= 0 {
		c.Count = DefaultQuestionCount
	}
	if c.Count > MaxQuestionCount {
		c.Count = MaxQuestionCount
	}
	if !c.Difficulty.IsValid() {
		c.Difficulty = theory.Beginner
	}
	if c.KeyTier == "" {
		c.KeyTier = KeysAll
	}
	if len(c.Directions) == 0 {
		c.Directions = []theory.Direction{theory.Up, theory.Down}
	}
	return c
}

// candidateRoots resolves explicit roots first, then the key tier.
func (c QuizConfig) candidateRoots() []theory.Note {
	if len(c.Roots) == 0 {
		return c.KeyTier.Roots()
	}
	var out []theory.Note
	for _, name := range c.Roots {
		if n, ok := theory.NoteByName(name); ok {
			out = append(out, n)
		}
	}
	return out
}

// candidateTypes keeps the requested types the drill supports, in request
// order. No request means every type of the drill.
func (c QuizConfig) candidateTypes(def Definition) []QuestionType {
	if len(c.QuestionTypes) == 0 {
		return def.QuestionTypes
	}
	var out []QuestionType
	for _, qt := range c.QuestionTypes {
		if def.Supports(qt) {
			out = append(out, qt)
		}
	}
	return out
}

func (c QuizConfig) allowsSymbol(symbol string) bool {
	if len(c.Symbols) == 0 {
		return true
	}
	for _, s := range c.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

func (q *Question) String() string {
	return fmt.Sprintf("%s [%s] %s", q.ID, q.Type, q.Prompt)
}
