package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchClass(t *testing.T) {
	tests := []struct {
		note Note
		want int
	}{
		{Note{"C", 60}, 0},
		{Note{"Eb", 75}, 3},
		{Note{"B", 47}, 11},
		{Note{"C", -12}, 0},
		{Note{"B", -1}, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.note.PitchClass(), "%s/%d", tt.note.Name, tt.note.MIDI)
	}
}

func TestEnharmonicsShareAPitchClass(t *testing.T) {
	assert.True(t, MustNote("C#").SamePitch(MustNote("Db")))
	assert.True(t, MustNote("A#").SamePitch(MustNote("Bb")))
	assert.NotEqual(t, MustNote("C#"), MustNote("Db"))
}

func TestParseNote(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantMIDI int
	}{
		{"Eb", "Eb", 63},
		{"Eb5", "Eb", 75},
		{"eb5", "Eb", 75},
		{"bb", "Bb", 70},
		{"b", "B", 71},
		{"F#3", "F#", 54},
		{"E♭", "Eb", 63},
		{"C♯4", "C#", 61},
		{" G ", "G", 67},
		{"C-1", "C", 0},
		{"G9", "G", 127},
	}
	for _, tt := range tests {
		n, err := ParseNote(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.wantName, n.Name, tt.in)
		assert.Equal(t, tt.wantMIDI, n.MIDI, tt.in)
	}
}

func TestParseNoteRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "H", "Cx", "E#", "Db?", "C10", "C-2", "C100000000000000000"} {
		_, err := ParseNote(in)
		assert.ErrorIs(t, err, ErrUnknownNote, in)
	}
}

func TestParseNotes(t *testing.T) {
	ns, err := ParseNotes("C, E  G\tBb")
	require.NoError(t, err)
	require.Len(t, ns, 4)
	assert.Equal(t, "Bb", ns[3].Name)

	_, err = ParseNotes("C Q")
	assert.Error(t, err)
}

func TestTransposeSpelling(t *testing.T) {
	c := MustNote("C")
	assert.Equal(t, "C#", Transpose(c, 1, true).Name)
	assert.Equal(t, "Db", Transpose(c, 1, false).Name)
	assert.Equal(t, "E", Transpose(c, 4, false).Name)
	assert.Equal(t, "Bb", Transpose(c, -2, false).Name)
	assert.Equal(t, "A#", Transpose(c, 22, true).Name)
}

func TestTransposeReducesToBaseOctave(t *testing.T) {
	n := Transpose(Note{"G", 79}, 7, true)
	assert.Equal(t, "D", n.Name)
	assert.Equal(t, 62, n.MIDI)
}

func TestPitchClassSet(t *testing.T) {
	s := PitchClassesOf(MustNote("C"), Note{"C", 72}, MustNote("E"), MustNote("G"))
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(4))
	assert.False(t, s.Has(5))
	assert.Equal(t, []int{0, 4, 7}, s.Classes())

	other := PitchClassesOf(MustNote("G"), MustNote("E"), MustNote("C"))
	assert.Equal(t, s, other)
	assert.Equal(t, PitchClassesOf(MustNote("G")), s.Intersect(PitchClassesOf(MustNote("G"), MustNote("B"))))
}
