package cmd

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LavenderBridge/jazzdrill/internal/algorithm"
	"github.com/LavenderBridge/jazzdrill/internal/drill"
	"github.com/LavenderBridge/jazzdrill/internal/models"
	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

func newTestEngine(t *testing.T) (*drill.Engine, *drill.MemoryGateway) {
	t.Helper()
	gw := &drill.MemoryGateway{}
	e, err := drill.NewEngine(drill.Options{
		Gateway: gw,
		Rand:    rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)
	return e, gw
}

func answerLine(q drill.Question) string {
	if !q.Type.Positional() {
		return joinNames(q.Correct)
	}
	parts := make([]string, len(q.CorrectPositions))
	for i, p := range q.CorrectPositions {
		parts[i] = joinNames(p)
	}
	return strings.Join(parts, " | ")
}

// wrongLine returns a single note that is not part of the expected answer.
func wrongLine(q drill.Question) string {
	for _, n := range theory.Notes() {
		hit := false
		for _, c := range q.Correct {
			if c.SamePitch(n) {
				hit = true
				break
			}
		}
		if !hit {
			return n.Name
		}
	}
	return ""
}

func TestRunQuizAllCorrect(t *testing.T) {
	e, gw := newTestEngine(t)
	s, err := e.Start(drill.ModeChord, drill.QuizConfig{Count: 3, Difficulty: theory.Beginner})
	require.NoError(t, err)

	var in strings.Builder
	for _, q := range s.Questions() {
		in.WriteString(answerLine(q) + "\n")
	}
	var out bytes.Buffer
	require.NoError(t, runQuiz(s, strings.NewReader(in.String()), &out))

	assert.Equal(t, drill.StateCompleted, s.State())
	assert.Equal(t, 3, strings.Count(out.String(), "✅ Correct!"))
	assert.Contains(t, out.String(), "🎉 Quiz complete!")
	assert.Contains(t, out.String(), "Score:   3/3 (100%)")
	assert.NotContains(t, out.String(), "could not be saved")
	assert.Equal(t, 1, gw.Saves())
}

func TestRunQuizHintWrongAndQuit(t *testing.T) {
	e, _ := newTestEngine(t)
	s, err := e.Start(drill.ModeChord, drill.QuizConfig{
		Count:         2,
		Difficulty:    theory.Beginner,
		QuestionTypes: []drill.QuestionType{drill.AllTones},
	})
	require.NoError(t, err)
	first := s.Questions()[0]

	input := "?\nnot-a-note\n" + wrongLine(first) + "\nq\n"
	var out bytes.Buffer
	require.NoError(t, runQuiz(s, strings.NewReader(input), &out))

	text := out.String()
	assert.Contains(t, text, "💡 Hint 1: Formula:")
	assert.Contains(t, text, "⚠️ ")
	assert.Contains(t, text, "❌ Expected: "+joinNames(first.Correct))
	assert.Contains(t, text, "👋 Quiz abandoned.")
	assert.Equal(t, drill.StateSetup, s.State())
}

func TestRunQuizEOFAbandons(t *testing.T) {
	e, gw := newTestEngine(t)
	s, err := e.Start(drill.ModeInterval, drill.QuizConfig{Count: 2})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runQuiz(s, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "Quiz abandoned.")
	assert.Equal(t, drill.StateSetup, s.State())
	assert.Zero(t, gw.Saves())
}

func TestRunQuizPositionalAnswers(t *testing.T) {
	e, _ := newTestEngine(t)
	s, err := e.Start(drill.ModeProgression, drill.QuizConfig{
		Count:         1,
		Difficulty:    theory.Expert,
		QuestionTypes: []drill.QuestionType{drill.ProgressionRoots},
	})
	require.NoError(t, err)
	q := s.Questions()[0]

	var out bytes.Buffer
	require.NoError(t, runQuiz(s, strings.NewReader(answerLine(q)+"\n"), &out))
	assert.Contains(t, out.String(), "separate them with |")
	assert.Contains(t, out.String(), "✅ Correct!")
	assert.Equal(t, drill.StateCompleted, s.State())
}

func TestParseAnswer(t *testing.T) {
	q := &drill.Question{Type: drill.ProgressionRoots}
	a, err := parseAnswer(q, "D | G| C")
	require.NoError(t, err)
	require.Len(t, a.Positions, 3)
	assert.Equal(t, "G", a.Positions[1][0].Name)

	_, err = parseAnswer(&drill.Question{Type: drill.AllTones}, "C H")
	assert.Error(t, err)
}

func TestSpell(t *testing.T) {
	lib, err := theory.NewLibrary(zap.NewNop())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, spell(lib, &out, "chord", "C", "maj7", false))
	assert.Contains(t, out.String(), "Cmaj7 (Major 7th)")
	assert.Contains(t, out.String(), "Notes:   C E G B")
	assert.Contains(t, out.String(), "Formula: 1 3 5 7")
	assert.Contains(t, out.String(), "Guide:   E B")

	out.Reset()
	require.NoError(t, spell(lib, &out, "progression", "F", "ii-V-I", false))
	assert.Contains(t, out.String(), "G Bb D F")
	assert.Contains(t, out.String(), "Fmaj7")

	assert.ErrorIs(t, spell(lib, &out, "chord", "C", "nope", false), theory.ErrUnknownSymbol)
	assert.Error(t, spell(lib, &out, "mode", "C", "maj7", false))
	assert.Error(t, spell(lib, &out, "chord", "H", "maj7", false))
}

func TestListCatalog(t *testing.T) {
	lib, err := theory.NewLibrary(zap.NewNop())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, listCatalog(lib, &out, "chords", theory.Beginner))
	assert.Contains(t, out.String(), "Major 7th")
	assert.NotContains(t, out.String(), "Half-Diminished")

	out.Reset()
	require.NoError(t, listCatalog(lib, &out, "progressions", theory.Expert))
	assert.Contains(t, out.String(), "Bird Changes")

	assert.Error(t, listCatalog(lib, &out, "modes", theory.Expert))
}

func TestPrintDue(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var out bytes.Buffer
	printDue(&out, nil, now)
	assert.Contains(t, out.String(), "Nothing due")

	out.Reset()
	s := algorithm.NewSchedule(algorithm.ItemID{Mode: "chord", Topic: "maj7", Key: "C", Variant: "all_tones"})
	s.DueDate = now.Add(-2 * time.Hour)
	printDue(&out, []algorithm.Schedule{s}, now)
	assert.Contains(t, out.String(), "1 items due")
	assert.Contains(t, out.String(), "maj7")
	assert.Contains(t, out.String(), "2h0m0s")
}

func TestPrintLeaderboard(t *testing.T) {
	var out bytes.Buffer
	printLeaderboard(&out, drill.ModeScale, nil)
	assert.Contains(t, out.String(), "No scale quizzes completed yet.")

	out.Reset()
	lb := models.Leaderboard{{
		Correct: 9, Total: 10, Accuracy: 0.9, Difficulty: "beginner",
		RatingDelta: 17, CompletedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}}
	printLeaderboard(&out, drill.ModeScale, lb)
	assert.Contains(t, out.String(), "90%")
	assert.Contains(t, out.String(), "9/10")
	assert.Contains(t, out.String(), "+17")
	assert.Contains(t, out.String(), "2024-05-01")
}

func TestWeakest(t *testing.T) {
	tallies := map[string]models.Tally{
		"maj7": {Answered: 10, Correct: 9},
		"m7b5": {Answered: 4, Correct: 1},
		"7":    {Answered: 5, Correct: 3},
		"dim7": {},
	}
	assert.Equal(t, []string{"m7b5", "7"}, weakest(tallies, 2))
}
