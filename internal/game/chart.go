package game

import "sort"

// Chart is the converted, time ordered event list. It owns every event and
// every child part.
type Chart struct {
	Events     []*Event
	Difficulty Difficulty
	Sum        string // identity of the source chart

	NoteCount   int64
	HoldCount   int64
	HazardCount int64
	BossCount   int64
}

func NewChart(events []*Event, difficulty Difficulty) *Chart {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime() < events[j].StartTime()
	})
	c := &Chart{Events: events, Difficulty: difficulty}
	for _, e := range events {
		switch e.Kind() {
		case KindSawblade:
			c.HazardCount++
		case KindNoteSheet, KindStarSheet:
			c.HoldCount++
		case KindMiniBoss:
			c.BossCount++
		default:
			c.NoteCount++
		}
	}
	return c
}

func (c *Chart) Count(k Kind) int {
	n := 0
	for _, e := range c.Events {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

// EndTime is the latest end time of any event.
func (c *Chart) EndTime() float64 {
	end := 0.0
	for _, e := range c.Events {
		if e.EndTime() > end {
			end = e.EndTime()
		}
	}
	return end
}
