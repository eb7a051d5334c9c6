package game

import "math"

// Kind is the closed set of output event variants.
type Kind uint8

const (
	KindMinion Kind = iota
	KindHeart
	KindSawblade
	KindDualHit
	KindNoteSheet
	KindStarSheet
	KindMiniBoss
	KindDualOrb
)

var kindNames = [...]string{
	KindMinion:    "minion",
	KindHeart:     "heart",
	KindSawblade:  "sawblade",
	KindDualHit:   "dual hit",
	KindNoteSheet: "note sheet",
	KindStarSheet: "star sheet",
	KindMiniBoss:  "mini boss",
	KindDualOrb:   "dual orb",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Laned reports whether events of this kind belong to a single lane.
func (k Kind) Laned() bool {
	switch k {
	case KindMinion, KindHeart, KindSawblade, KindNoteSheet, KindStarSheet:
		return true
	}
	return false
}

func (k Kind) IsSheet() bool {
	return k == KindNoteSheet || k == KindStarSheet
}

// PartKind identifies a child sub-event of a composite event.
type PartKind uint8

const (
	PartDualHit PartKind = iota
	PartHead
	PartBody
	PartTail
	PartTick
	PartDualOrb
)

// Part is plain data derived from its parent; it is recomputed whenever the
// parent's time or lane changes.
type Part struct {
	Kind      PartKind
	StartTime float64
	Lane      Lane
}

const (
	bossTickPeriod = 500.0
)

// Event is a converted chart event. Its fields are private so that the
// parent stays the only source of truth for lane and time.
type Event struct {
	kind         Kind
	start        float64
	duration     float64
	lane         Lane
	requiredHits int
	parts        []Part
}

func NewMinion(start float64, lane Lane) *Event {
	return &Event{kind: KindMinion, start: start, lane: lane}
}

func NewHeart(start float64, lane Lane) *Event {
	return &Event{kind: KindHeart, start: start, lane: lane}
}

func NewSawblade(start float64, lane Lane) *Event {
	return &Event{kind: KindSawblade, start: start, lane: lane}
}

func NewDualHit(start float64) *Event {
	e := &Event{kind: KindDualHit, start: start, parts: make([]Part, 2)}
	e.sync()
	return e
}

func NewDualOrb(start float64) *Event {
	e := &Event{kind: KindDualOrb, start: start, parts: make([]Part, 2)}
	e.sync()
	return e
}

func NewNoteSheet(start, end float64, lane Lane) *Event {
	e := &Event{kind: KindNoteSheet, start: start, duration: end - start, lane: lane, parts: make([]Part, 3)}
	e.sync()
	return e
}

func NewStarSheet(start, end float64, lane Lane) *Event {
	e := &Event{kind: KindStarSheet, start: start, duration: end - start, lane: lane, parts: make([]Part, 2)}
	e.sync()
	return e
}

// NewMiniBoss creates a boss whose tick count is fixed here and never resized.
func NewMiniBoss(start, duration, hitsPerSecond float64) *Event {
	if duration < 0 {
		duration = 0
	}
	required := int(math.Ceil(duration/bossTickPeriod) * hitsPerSecond * 0.5)
	if required < 0 {
		required = 0
	}
	e := &Event{
		kind:         KindMiniBoss,
		start:        start,
		duration:     duration,
		requiredHits: required,
		parts:        make([]Part, required),
	}
	e.sync()
	return e
}

func (e *Event) Kind() Kind { return e.kind }
func (e *Event) StartTime() float64 { return e.start }
func (e *Event) Duration() float64 { return e.duration }
func (e *Event) EndTime() float64 { return e.start + e.duration }
func (e *Event) Lane() Lane { return e.lane }
func (e *Event) RequiredHits() int { return e.requiredHits }
func (e *Event) PartCount() int { return len(e.parts) }
func (e *Event) Part(i int) Part { return e.parts[i] }
func (e *Event) HasPart(k PartKind) bool {
	return e.partIndex(k) >= 0
}

// PartIndex returns the index of the first part of kind k, or -1.
func (e *Event) PartIndex(k PartKind) int {
	return e.partIndex(k)
}

func (e *Event) partIndex(k PartKind) int {
	for i := range e.parts {
		if e.parts[i].Kind == k {
			return i
		}
	}
	return -1
}

// SetStartTime moves the event keeping its duration, so every child part
// shifts by the same amount.
func (e *Event) SetStartTime(t float64) {
	e.start = t
	e.sync()
}

// SetEndTime changes the extent of durational events. Instant kinds ignore it.
func (e *Event) SetEndTime(t float64) {
	switch e.kind {
	case KindNoteSheet, KindStarSheet, KindMiniBoss:
		d := t - e.start
		if d < 0 {
			d = 0
		}
		e.duration = d
		e.sync()
	}
}

// SetLane moves a laned event and its children. Laneless kinds ignore it.
func (e *Event) SetLane(l Lane) {
	if !e.kind.Laned() {
		return
	}
	e.lane = l
	e.sync()
}

func (e *Event) sync() {
	switch e.kind {
	case KindDualHit, KindDualOrb:
		pk := PartDualHit
		if e.kind == KindDualOrb {
			pk = PartDualOrb
		}
		e.parts[0] = Part{Kind: pk, StartTime: e.start, Lane: LaneAir}
		e.parts[1] = Part{Kind: pk, StartTime: e.start, Lane: LaneGround}
	case KindNoteSheet:
		e.parts[0] = Part{Kind: PartHead, StartTime: e.start, Lane: e.lane}
		e.parts[1] = Part{Kind: PartBody, StartTime: e.start, Lane: e.lane}
		e.parts[2] = Part{Kind: PartTail, StartTime: e.EndTime(), Lane: e.lane}
	case KindStarSheet:
		e.parts[0] = Part{Kind: PartHead, StartTime: e.start, Lane: e.lane}
		e.parts[1] = Part{Kind: PartTail, StartTime: e.EndTime(), Lane: e.lane}
	case KindMiniBoss:
		n := len(e.parts)
		for i := range e.parts {
			e.parts[i] = Part{Kind: PartTick, StartTime: e.start + e.duration*float64(i)/float64(n)}
		}
	}
}
