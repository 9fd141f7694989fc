package drill

import "github.com/LavenderBridge/jazzdrill/internal/theory"

type gradeFunc func(q *Question, a Answer) bool

// graders has one rule per question type. Pitch classes are compared, so
// octave and enharmonic spelling never matter.
var graders = map[QuestionType]gradeFunc{
	SingleTone:            sameSet,
	AllTones:              sameSet,
	GuideTones:            sameSet,
	IntervalTarget:        sameSet,
	CommonTones:           sameSet,
	ResolutionTarget:      exactlyOne,
	ProgressionSpelling:   everyPosition,
	ProgressionGuideTones: everyPosition,
	ProgressionRoots:      everyPosition,
}

// Grade reports whether a answers q. Unknown types and malformed answers are
// graded incorrect.
func Grade(q *Question, a Answer) bool {
	if q == nil {
		return false
	}
	f, ok := graders[q.Type]
	if !ok {
		return false
	}
	return f(q, a)
}

func sameSet(q *Question, a Answer) bool {
	if len(a.Notes) == 0 {
		return false
	}
	return theory.PitchClassesOf(a.Notes...) == theory.PitchClassesOf(q.Correct...)
}

func exactlyOne(q *Question, a Answer) bool {
	if len(a.Notes) != 1 || len(q.Correct) != 1 {
		return false
	}
	return a.Notes[0].SamePitch(q.Correct[0])
}

func everyPosition(q *Question, a Answer) bool {
	if len(a.Positions) != len(q.CorrectPositions) || len(a.Positions) == 0 {
		return false
	}
	for i, want := range q.CorrectPositions {
		got := a.Positions[i]
		if len(got) == 0 || theory.PitchClassesOf(got...) != theory.PitchClassesOf(want...) {
			return false
		}
	}
	return true
}
