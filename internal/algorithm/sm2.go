package algorithm

import (
	"math"
	"time"
)

// Default settings for new items
const (
	InitialInterval   = 1.0
	SecondInterval    = 6.0
	InitialEaseFactor = 2.5
	MinEaseFactor     = 1.3
	FailurePenalty    = 0.2
)

// ItemID identifies one reviewable item. Key and Variant are optional.
type ItemID struct {
	Mode    string `json:"mode"`
	Topic   string `json:"topic"`
	Key     string `json:"key,omitempty"`
	Variant string `json:"variant,omitempty"`
}

// String is the stable map key for the item.
func (id ItemID) String() string {
	return id.Mode + "/" + id.Topic + "/" + id.Key + "/" + id.Variant
}

// Schedule is the SM-2 state of one item.
type Schedule struct {
	Item         ItemID    `json:"item"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays float64   `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	DueDate      time.Time `json:"due_date"`
	LastReviewed time.Time `json:"last_reviewed"`
	TotalReviews int       `json:"total_reviews"`
	TotalCorrect int       `json:"total_correct"`
}

// NewSchedule returns the state of an item that has never been reviewed.
func NewSchedule(id ItemID) Schedule {
	return Schedule{Item: id, EaseFactor: InitialEaseFactor}
}

// Quality maps response latency to an SM-2 quality score for a correct answer.
func Quality(responseTime time.Duration) float64 {
	switch {
	case responseTime < 2*time.Second:
		return 5
	case responseTime < 5*time.Second:
		return 4
	case responseTime < 10*time.Second:
		return 3
	case responseTime < 20*time.Second:
		return 2.5
	default:
		return 2.0
	}
}

// Review applies one graded review to s and returns the updated schedule.
func Review(s Schedule, correct bool, responseTime time.Duration, now time.Time) Schedule {
	if s.EaseFactor == 0 {
		s.EaseFactor = InitialEaseFactor
	}

	if correct {
		// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02))
		q := Quality(responseTime)
		s.EaseFactor = math.Max(MinEaseFactor, s.EaseFactor+(0.1-(5-q)*(0.08+(5-q)*0.02)))
		s.Repetitions++
		switch s.Repetitions {
		case 1:
			s.IntervalDays = InitialInterval
		case 2:
			s.IntervalDays = SecondInterval
		default:
			s.IntervalDays = s.IntervalDays * s.EaseFactor
		}
		s.TotalCorrect++
	} else {
		s.Repetitions = 0
		s.IntervalDays = InitialInterval
		s.EaseFactor = math.Max(MinEaseFactor, s.EaseFactor-FailurePenalty)
	}

	s.TotalReviews++
	s.LastReviewed = now
	s.DueDate = now.Add(days(s.IntervalDays))
	return s
}

// Overdue returns how long past due s is at asOf; negative when not yet due.
func (s Schedule) Overdue(asOf time.Time) time.Duration {
	return asOf.Sub(s.DueDate)
}

// Accuracy is the share of correct reviews, 0 before the first review.
func (s Schedule) Accuracy() float64 {
	if s.TotalReviews == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalReviews)
}

func days(d float64) time.Duration {
	return time.Duration(d * float64(24*time.Hour))
}
