package game

import "math"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// SourceEvent is a hit event of the generic input chart. It is never
// modified by the converter.
type SourceEvent struct {
	StartTime float64 // ms
	Duration  float64 // ms, 0 for instant events
	HasPath   bool    // durational with an inferable path (slider-like)
	Position  *Vec2
	SpanCount int // repeat structure, <= 1 means none
	NewCombo  bool
	Kiai      bool
	Samples   []string
}

func (s *SourceEvent) EndTime() float64 {
	return s.StartTime + s.Duration
}

func (s *SourceEvent) IsDurational() bool {
	return s.Duration > 0
}

func (s *SourceEvent) HasRepeats() bool {
	return s.SpanCount > 1
}
