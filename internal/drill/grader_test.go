package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

func notes(t *testing.T, s string) []theory.Note {
	t.Helper()
	ns, err := theory.ParseNotes(s)
	require.NoError(t, err)
	return ns
}

func TestGradeSingleToneIgnoresSpelling(t *testing.T) {
	q := &Question{Type: SingleTone, Correct: notes(t, "Eb")}
	assert.True(t, Grade(q, Answer{Notes: notes(t, "Eb")}))
	assert.True(t, Grade(q, Answer{Notes: notes(t, "D#")}))
	assert.True(t, Grade(q, Answer{Notes: notes(t, "Eb5")}))
	assert.False(t, Grade(q, Answer{Notes: notes(t, "E")}))
}

func TestGradeAllTonesNeedsEveryNote(t *testing.T) {
	lib, err := theory.NewLibrary(nil)
	require.NoError(t, err)
	c7, _ := lib.Chords.BySymbol("7")
	in := theory.BuildChord(theory.MustNote("C"), c7)
	q := &Question{Type: AllTones, Correct: in.Notes}

	assert.True(t, Grade(q, Answer{Notes: notes(t, "C E G Bb")}))
	assert.True(t, Grade(q, Answer{Notes: notes(t, "Bb G E C")}))
	assert.True(t, Grade(q, Answer{Notes: notes(t, "C E G A#")}))
	assert.False(t, Grade(q, Answer{Notes: notes(t, "C E G")}))
	assert.False(t, Grade(q, Answer{Notes: notes(t, "C E G Bb D")}))
	assert.False(t, Grade(q, Answer{}))
}

func TestGradeGuideTonesRejectsExtras(t *testing.T) {
	q := &Question{Type: GuideTones, Correct: notes(t, "F C")}
	assert.True(t, Grade(q, Answer{Notes: notes(t, "C F")}))
	assert.False(t, Grade(q, Answer{Notes: notes(t, "F C A")}))
	assert.False(t, Grade(q, Answer{Notes: notes(t, "F")}))
}

func TestGradeResolutionTargetExactlyOne(t *testing.T) {
	q := &Question{Type: ResolutionTarget, Correct: notes(t, "Eb")}
	assert.True(t, Grade(q, Answer{Notes: notes(t, "Eb")}))
	assert.True(t, Grade(q, Answer{Notes: notes(t, "D#3")}))
	assert.False(t, Grade(q, Answer{Notes: notes(t, "Eb Eb")}))
	assert.False(t, Grade(q, Answer{Notes: notes(t, "Eb G")}))
	assert.False(t, Grade(q, Answer{}))
}

func TestGradePositional(t *testing.T) {
	q := &Question{
		Type: ProgressionGuideTones,
		CorrectPositions: [][]theory.Note{
			notes(t, "F C"),
			notes(t, "B F"),
			notes(t, "E B"),
		},
	}
	ok := Answer{Positions: [][]theory.Note{notes(t, "C F"), notes(t, "F B"), notes(t, "E B")}}
	assert.True(t, Grade(q, ok))

	extra := Answer{Positions: [][]theory.Note{notes(t, "F C A"), notes(t, "B F"), notes(t, "E B")}}
	assert.False(t, Grade(q, extra))

	short := Answer{Positions: [][]theory.Note{notes(t, "F C"), notes(t, "B F")}}
	assert.False(t, Grade(q, short))

	assert.False(t, Grade(q, Answer{Notes: notes(t, "F C B E")}))
}

func TestGradeIsTotal(t *testing.T) {
	assert.False(t, Grade(nil, Answer{}))
	assert.False(t, Grade(&Question{Type: "unknown"}, Answer{Notes: notes(t, "C")}))
	for qt := range graders {
		assert.True(t, qt.IsValid())
		assert.NotPanics(t, func() { Grade(&Question{Type: qt}, Answer{}) })
	}
}
