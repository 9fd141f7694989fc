package drill

import (
	"math"
	"time"

	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

// AccuracyStep awards Points when accuracy is at least MinAccuracy.
type AccuracyStep struct {
	MinAccuracy float64
	Points      float64
}

// RatingTable holds one drill's rating constants. Steps are ordered by
// descending MinAccuracy.
type RatingTable struct {
	Steps          []AccuracyStep
	Multipliers    map[theory.Difficulty]float64
	SpeedThreshold time.Duration
	SpeedBonus     float64
}

// speedBonusMinAccuracy gates the speed bonus.
const speedBonusMinAccuracy = 0.7

// Delta computes the rating change for a finished quiz.
func (rt RatingTable) Delta(accuracy float64, d theory.Difficulty, count int, avg time.Duration) int {
	base := 0.0
	for _, s := range rt.Steps {
		if accuracy >= s.MinAccuracy {
			base = s.Points
			break
		}
	}

	mult, ok := rt.Multipliers[d]
	if !ok {
		mult = 1
	}
	speed := 1.0
	if rt.SpeedBonus > 0 && avg < rt.SpeedThreshold && accuracy >= speedBonusMinAccuracy {
		speed = rt.SpeedBonus
	}

	return int(math.Round(base * mult * float64(count) / 10 * speed))
}

// Rank is a title held over a rating band. MaxRating < 0 means unbounded.
type Rank struct {
	Title     string `json:"title"`
	MinRating int    `json:"min_rating"`
	MaxRating int    `json:"max_rating"`
}

// Ranks is the ascending rank ladder shared by every drill.
var Ranks = []Rank{
	{"Practice Room Rookie", 0, 99},
	{"Jam Session Regular", 100, 249},
	{"Sideman", 250, 499},
	{"Section Leader", 500, 999},
	{"Bandleader", 1000, 1999},
	{"Jazz Master", 2000, 4999},
	{"Living Legend", 5000, -1},
}

// RankFor maps a rating to its rank.
func RankFor(rating int) Rank {
	r := Ranks[0]
	for _, band := range Ranks {
		if rating >= band.MinRating {
			r = band
		}
	}
	return r
}

// RatingChange describes one rating update.
type RatingChange struct {
	Before     int  `json:"before"`
	After      int  `json:"after"`
	Delta      int  `json:"delta"`
	RankBefore Rank `json:"rank_before"`
	RankAfter  Rank `json:"rank_after"`
	DidRankUp  bool `json:"did_rank_up"`
}

// ApplyRating adds delta to current, flooring the result at zero.
func ApplyRating(current, delta int) RatingChange {
	after := current + delta
	if after < 0 {
		after = 0
	}
	c := RatingChange{
		Before:     current,
		After:      after,
		Delta:      delta,
		RankBefore: RankFor(current),
		RankAfter:  RankFor(after),
	}
	c.DidRankUp = delta > 0 && c.RankAfter.Title != c.RankBefore.Title
	return c
}
