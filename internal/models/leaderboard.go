package models

import "sort"

// LeaderboardSize bounds every leaderboard.
const LeaderboardSize = 10

// Leaderboard holds the best results, accuracy descending then time ascending.
type Leaderboard []QuizResult

// Insert adds r, re-sorts and truncates to LeaderboardSize. It returns the
// new board and r's 1-based rank, or 0 if r did not make the cut.
func (lb Leaderboard) Insert(r QuizResult) (Leaderboard, int) {
	out := append(append(Leaderboard(nil), lb...), r)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy > out[j].Accuracy
		}
		return out[i].TotalTime < out[j].TotalTime
	})
	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	for i, e := range out {
		if e.ID == r.ID {
			return out, i + 1
		}
	}
	return out, 0
}
