package drill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

func chordTable(t *testing.T) RatingTable {
	t.Helper()
	for _, d := range Definitions() {
		if d.Mode == ModeChord {
			return d.Rating
		}
	}
	t.Fatal("chord drill not defined")
	return RatingTable{}
}

func TestRatingDelta(t *testing.T) {
	rt := chordTable(t)
	tests := []struct {
		name     string
		accuracy float64
		diff     theory.Difficulty
		count    int
		avg      time.Duration
		want     int
	}{
		{"fast beginner ninety percent", 0.9, theory.Beginner, 10, 4 * time.Second, 17},
		{"slow beginner ninety percent", 0.9, theory.Beginner, 10, 10 * time.Second, 15},
		{"perfect expert", 1.0, theory.Expert, 10, 20 * time.Second, 45},
		{"half credit scores zero", 0.5, theory.Advanced, 10, time.Second, 0},
		{"poor intermediate", 0.4, theory.Intermediate, 10, time.Second, -5},
		{"fast but inaccurate gets no bonus", 0.2, theory.Intermediate, 10, time.Second, -10},
		{"short quiz scales down", 1.0, theory.Intermediate, 5, 20 * time.Second, 15},
		{"long quiz scales up", 1.0, theory.Intermediate, 20, 20 * time.Second, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rt.Delta(tt.accuracy, tt.diff, tt.count, tt.avg))
		})
	}
}

func TestRankFor(t *testing.T) {
	assert.Equal(t, "Practice Room Rookie", RankFor(0).Title)
	assert.Equal(t, "Practice Room Rookie", RankFor(99).Title)
	assert.Equal(t, "Jam Session Regular", RankFor(100).Title)
	assert.Equal(t, "Sideman", RankFor(250).Title)
	assert.Equal(t, "Section Leader", RankFor(999).Title)
	assert.Equal(t, "Bandleader", RankFor(1000).Title)
	assert.Equal(t, "Jazz Master", RankFor(4999).Title)
	assert.Equal(t, "Living Legend", RankFor(100000).Title)
}

func TestApplyRating(t *testing.T) {
	c := ApplyRating(95, 17)
	assert.Equal(t, 112, c.After)
	assert.True(t, c.DidRankUp)
	assert.Equal(t, "Jam Session Regular", c.RankAfter.Title)

	c = ApplyRating(5, -10)
	assert.Equal(t, 0, c.After)
	assert.Equal(t, -10, c.Delta)
	assert.False(t, c.DidRankUp)

	c = ApplyRating(105, -10)
	assert.Equal(t, "Practice Room Rookie", c.RankAfter.Title)
	assert.False(t, c.DidRankUp)

	c = ApplyRating(10, 5)
	assert.False(t, c.DidRankUp)
}
