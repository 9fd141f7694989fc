package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavenderBridge/jazzdrill/internal/algorithm"
	"github.com/LavenderBridge/jazzdrill/internal/models"
)

var drivers = []string{DriverCGO, DriverPure}

func openMemory(t *testing.T, driver string) *Store {
	t.Helper()
	s, err := Open(driver, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSnapshot(at time.Time) *models.Snapshot {
	snap := models.NewSnapshot()
	snap.SavedAt = at
	st := snap.StatsFor("chord")
	st.CurrentRating = 120
	st.PeakRating = 140
	st.Accumulate(models.QuizResult{ID: "r1", Total: 2, Correct: 1, Accuracy: 0.5, TotalTime: 20 * time.Second,
		Questions: []models.QuestionRecord{{ID: "q1", Topic: "m7", Key: "D", IsCorrect: true}, {ID: "q2", Topic: "7", Key: "G"}}})
	snap.Leaderboards["chord"], _ = snap.Leaderboards["chord"].Insert(models.QuizResult{ID: "r1", Accuracy: 0.5, TotalTime: 20 * time.Second})

	id := algorithm.ItemID{Mode: "chord", Topic: "m7", Key: "D", Variant: "all_tones"}
	snap.Schedules[id.String()] = algorithm.Review(algorithm.NewSchedule(id), true, time.Second, at)
	return snap
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			s := openMemory(t, driver)
			at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

			_, err := s.LoadSnapshot("alice")
			require.ErrorIs(t, err, models.ErrNoSnapshot)

			require.NoError(t, s.SaveSnapshot("alice", sampleSnapshot(at)))
			got, err := s.LoadSnapshot("alice")
			require.NoError(t, err)

			assert.Equal(t, models.SnapshotVersion, got.Version)
			assert.Equal(t, 120, got.StatsFor("chord").CurrentRating)
			assert.Equal(t, models.Tally{Answered: 1, Correct: 1}, got.StatsFor("chord").PerSymbol["m7"])
			require.Len(t, got.Leaderboards["chord"], 1)
			assert.Len(t, got.Schedules, 1)
			for _, sc := range got.Schedules {
				assert.Equal(t, 1.0, sc.IntervalDays)
				assert.True(t, sc.DueDate.Equal(at.Add(24*time.Hour)))
			}

			// Saving again replaces the row.
			next := sampleSnapshot(at)
			next.StatsFor("chord").CurrentRating = 200
			require.NoError(t, s.SaveSnapshot("alice", next))
			got, err = s.LoadSnapshot("alice")
			require.NoError(t, err)
			assert.Equal(t, 200, got.StatsFor("chord").CurrentRating)

			profiles, err := s.Profiles()
			require.NoError(t, err)
			assert.Equal(t, []string{"alice"}, profiles)
		})
	}
}

func TestLoadCorruptSnapshot(t *testing.T) {
	s := openMemory(t, DriverPure)
	_, err := s.db.Exec(`INSERT INTO snapshots (profile, version, payload, saved_at) VALUES ('bob', 1, '{not json', '')`)
	require.NoError(t, err)

	_, err = s.LoadSnapshot("bob")
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNoSnapshot)
}

func TestReviewsAndStats(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			s := openMemory(t, driver)
			now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
			s.now = func() time.Time { return now }

			rs := []models.Review{
				{Mode: "chord", Item: "chord/m7/D/all_tones", Correct: true, ResponseMS: 2000, EaseFactor: 2.6, IntervalDays: 1, ReviewedAt: now.Add(-time.Hour)},
				{Mode: "chord", Item: "chord/7/G/all_tones", Correct: false, ResponseMS: 4000, EaseFactor: 2.3, IntervalDays: 1, ReviewedAt: now.Add(-2 * time.Hour)},
				{Mode: "scale", Item: "scale/dorian/D/single_tone", Correct: true, ResponseMS: 3000, EaseFactor: 2.5, IntervalDays: 6, ReviewedAt: now.Add(-10 * 24 * time.Hour)},
			}
			require.NoError(t, s.AddReviews("alice", rs))
			require.NoError(t, s.AddReviews("bob", rs[:1]))
			require.NoError(t, s.AddReviews("alice", nil))

			stats, err := s.GetReviewStats("alice")
			require.NoError(t, err)
			assert.Equal(t, 3, stats.TotalReviews)
			assert.Equal(t, 2, stats.ReviewsLast7Days)
			assert.InDelta(t, 2.0/3, stats.Accuracy, 1e-9)
			assert.InDelta(t, 3000, stats.AverageResponseMS, 1e-9)
			assert.Equal(t, map[string]int{"chord": 2, "scale": 1}, stats.CountByMode)

			list, err := s.ListReviews("alice", "chord", 0)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "chord/m7/D/all_tones", list[0].Item)
			assert.True(t, list[0].Correct)
			assert.True(t, list[0].ReviewedAt.Equal(now.Add(-time.Hour)))

			list, err = s.ListReviews("alice", "", 1)
			require.NoError(t, err)
			assert.Len(t, list, 1)

			require.NoError(t, s.DeleteProfile("alice"))
			stats, err = s.GetReviewStats("alice")
			require.NoError(t, err)
			assert.Zero(t, stats.TotalReviews)
			assert.Zero(t, stats.Accuracy)
		})
	}
}

func TestProfileGateway(t *testing.T) {
	s := openMemory(t, DriverPure)
	gw := s.Gateway("")
	assert.Equal(t, DefaultProfile, gw.Profile())

	_, err := gw.Load()
	require.ErrorIs(t, err, models.ErrNoSnapshot)

	require.NoError(t, gw.Save(sampleSnapshot(time.Now())))
	snap, err := gw.Load()
	require.NoError(t, err)
	assert.Equal(t, 120, snap.StatsFor("chord").CurrentRating)

	require.NoError(t, gw.RecordReviews([]models.Review{{Mode: "interval", Item: "interval/m3/C/interval_target", ReviewedAt: time.Now()}}))
	stats, err := s.GetReviewStats(DefaultProfile)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalReviews)
}

func TestOpenFileAndUnknownDriver(t *testing.T) {
	_, err := Open("postgres", ":memory:")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "nested", "drill.db")
	s, err := Open(DriverPure, path)
	require.NoError(t, err)
	require.NoError(t, s.SaveSnapshot("p", models.NewSnapshot()))
	require.NoError(t, s.Close())

	s, err = Open(DriverPure, path)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.LoadSnapshot("p")
	assert.NoError(t, err)
}
