package drill

import (
	"fmt"
	"strings"
	"time"

	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

// Mode names one drill.
type Mode string

const (
	ModeChord       Mode = "chord"
	ModeScale       Mode = "scale"
	ModeInterval    Mode = "interval"
	ModeCadence     Mode = "cadence"
	ModeProgression Mode = "progression"
)

// Modes lists every drill in menu order.
var Modes = []Mode{ModeChord, ModeScale, ModeInterval, ModeCadence, ModeProgression}

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Source selects the catalog a drill samples from.
type Source int

const (
	SourceChords Source = iota
	SourceScales
	SourceIntervals
	SourceCadences
	SourceProgressions
)

// Definition parametrizes the shared engine for one drill.
type Definition struct {
	Mode          Mode
	Title         string
	Source        Source
	QuestionTypes []QuestionType
	TimeLimit     time.Duration
	Rating        RatingTable
}

// Supports reports whether the drill can generate questions of type qt.
func (d Definition) Supports(qt QuestionType) bool {
	for _, t := range d.QuestionTypes {
		if t == qt {
			return true
		}
	}
	return false
}

// Definitions returns the five built-in drills.
func Definitions() []Definition {
	return []Definition{
		{
			Mode:          ModeChord,
			Title:         "Chord Spelling",
			Source:        SourceChords,
			QuestionTypes: []QuestionType{SingleTone, AllTones, GuideTones, CommonTones},
			TimeLimit:     30 * time.Second,
			Rating: RatingTable{
				Steps:          defaultSteps(30, 20),
				Multipliers:    multipliers(0.75, 1.0, 1.25, 1.5),
				SpeedThreshold: 5 * time.Second,
				SpeedBonus:     1.1,
			},
		},
		{
			Mode:          ModeScale,
			Title:         "Scale Degrees",
			Source:        SourceScales,
			QuestionTypes: []QuestionType{SingleTone, AllTones},
			TimeLimit:     45 * time.Second,
			Rating: RatingTable{
				Steps:          defaultSteps(35, 25),
				Multipliers:    multipliers(0.8, 1.0, 1.3, 1.6),
				SpeedThreshold: 8 * time.Second,
				SpeedBonus:     1.15,
			},
		},
		{
			Mode:          ModeInterval,
			Title:         "Intervals",
			Source:        SourceIntervals,
			QuestionTypes: []QuestionType{IntervalTarget},
			TimeLimit:     15 * time.Second,
			Rating: RatingTable{
				Steps:          defaultSteps(30, 20),
				Multipliers:    multipliers(0.5, 1.0, 1.5, 2.0),
				SpeedThreshold: 3 * time.Second,
				SpeedBonus:     1.2,
			},
		},
		{
			Mode:          ModeCadence,
			Title:         "ii-V-I Cadences",
			Source:        SourceCadences,
			QuestionTypes: []QuestionType{ProgressionSpelling, ProgressionGuideTones, ResolutionTarget, CommonTones},
			TimeLimit:     60 * time.Second,
			Rating: RatingTable{
				Steps:          defaultSteps(35, 25),
				Multipliers:    multipliers(0.8, 1.1, 1.4, 1.8),
				SpeedThreshold: 15 * time.Second,
				SpeedBonus:     1.15,
			},
		},
		{
			Mode:          ModeProgression,
			Title:         "Progressions",
			Source:        SourceProgressions,
			QuestionTypes: []QuestionType{ProgressionSpelling, ProgressionRoots, ProgressionGuideTones},
			TimeLimit:     90 * time.Second,
			Rating: RatingTable{
				Steps:          defaultSteps(35, 25),
				Multipliers:    multipliers(0.8, 1.2, 1.5, 2.0),
				SpeedThreshold: 20 * time.Second,
				SpeedBonus:     1.2,
			},
		},
	}
}

// defaultSteps is the shared accuracy ladder with drill-specific top rungs.
func defaultSteps(perfect, excellent float64) []AccuracyStep {
	return []AccuracyStep{
		{MinAccuracy: 1.0, Points: perfect},
		{MinAccuracy: 0.9, Points: excellent},
		{MinAccuracy: 0.8, Points: 15},
		{MinAccuracy: 0.7, Points: 10},
		{MinAccuracy: 0.6, Points: 5},
		{MinAccuracy: 0.5, Points: 0},
		{MinAccuracy: 0.3, Points: -5},
		{MinAccuracy: 0, Points: -10},
	}
}

func multipliers(beginner, intermediate, advanced, expert float64) map[theory.Difficulty]float64 {
	return map[theory.Difficulty]float64{
		theory.Beginner:     beginner,
		theory.Intermediate: intermediate,
		theory.Advanced:     advanced,
		theory.Expert:       expert,
	}
}
