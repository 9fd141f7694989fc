package algorithm

import (
	"sort"
	"time"
)

// Scheduler keeps one Schedule per item. It knows nothing about what the
// items are; callers feed it (item, correctness, latency) tuples.
type Scheduler struct {
	items map[string]Schedule
	now   func() time.Time
}

// NewScheduler returns an empty scheduler. A nil clock means time.Now.
func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{items: make(map[string]Schedule), now: now}
}

// RecordResult reviews the item, creating its schedule on first sight.
func (s *Scheduler) RecordResult(id ItemID, correct bool, responseTime time.Duration) Schedule {
	cur, ok := s.items[id.String()]
	if !ok {
		cur = NewSchedule(id)
	}
	next := Review(cur, correct, responseTime, s.now())
	s.items[id.String()] = next
	return next
}

// Get returns the schedule for id, if it has been reviewed.
func (s *Scheduler) Get(id ItemID) (Schedule, bool) {
	sc, ok := s.items[id.String()]
	return sc, ok
}

// Len returns the number of tracked items.
func (s *Scheduler) Len() int { return len(s.items) }

// DueItems returns items due at asOf, most overdue first. An empty mode
// matches every item.
func (s *Scheduler) DueItems(mode string, asOf time.Time) []Schedule {
	var out []Schedule
	for _, sc := range s.items {
		if mode != "" && sc.Item.Mode != mode {
			continue
		}
		if !sc.DueDate.After(asOf) {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].DueDate.Before(out[j].DueDate)
		}
		return out[i].Item.String() < out[j].Item.String()
	})
	return out
}

// Reset forgets every item of mode, or everything when mode is empty. It
// returns the number of schedules removed.
func (s *Scheduler) Reset(mode string) int {
	n := 0
	for k, sc := range s.items {
		if mode == "" || sc.Item.Mode == mode {
			delete(s.items, k)
			n++
		}
	}
	return n
}

// Export copies the schedules for persistence.
func (s *Scheduler) Export() map[string]Schedule {
	out := make(map[string]Schedule, len(s.items))
	for k, v := range s.items {
		out[k] = v
	}
	return out
}

// Restore replaces the scheduler state with a persisted copy. Keys are
// rebuilt from each schedule's item.
func (s *Scheduler) Restore(items map[string]Schedule) {
	s.items = make(map[string]Schedule, len(items))
	for _, v := range items {
		s.items[v.Item.String()] = v
	}
}
