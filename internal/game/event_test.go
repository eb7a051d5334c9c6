package game

import "testing"

func TestSheetParts(t *testing.T) {
	e := NewNoteSheet(1000, 1500, LaneAir)
	expected := []Part{
		{PartHead, 1000, LaneAir},
		{PartBody, 1000, LaneAir},
		{PartTail, 1500, LaneAir},
	}
	if e.PartCount() != len(expected) {
		t.Fatal("part count", e.PartCount())
	}
	for i, p := range expected {
		if e.Part(i) != p {
			t.Log("part    ", i)
			t.Log("out     ", e.Part(i))
			t.Log("expected", p)
			t.Fail()
		}
	}

	e.SetEndTime(1200)
	if e.Part(2).StartTime != 1200 || e.Duration() != 200 {
		t.Error("tail did not follow the parent", e.Part(2))
	}
	e.SetLane(LaneGround)
	for i := 0; i < e.PartCount(); i++ {
		if e.Part(i).Lane != LaneGround {
			t.Error("part did not follow the parent lane", e.Part(i))
		}
	}
	e.SetStartTime(1100)
	if e.Part(0).StartTime != 1100 || e.Part(2).StartTime != 1300 || e.Duration() != 200 {
		t.Error("moving the start must keep the duration", e.Part(0), e.Part(2))
	}

	e.SetEndTime(0)
	if e.Duration() != 0 {
		t.Error("negative duration", e.Duration())
	}
}

func TestStarSheetHasNoBody(t *testing.T) {
	e := NewStarSheet(0, 100, LaneGround)
	if e.HasPart(PartBody) || !e.HasPart(PartHead) || e.PartIndex(PartTail) != 1 {
		t.Error("unexpected star sheet layout")
	}
}

func TestDualParts(t *testing.T) {
	for _, e := range []*Event{NewDualHit(10), NewDualOrb(10)} {
		if e.PartCount() != 2 || e.Part(0).Lane != LaneAir || e.Part(1).Lane != LaneGround {
			t.Error(e.Kind(), "parts", e.Part(0), e.Part(1))
		}
		e.SetLane(LaneGround)
		if e.Part(0).Lane != LaneAir {
			t.Error(e.Kind(), "is laneless and must ignore SetLane")
		}
		e.SetStartTime(20)
		if e.Part(1).StartTime != 20 {
			t.Error(e.Kind(), "part did not follow start", e.Part(1))
		}
	}
}

func TestMiniBossTicks(t *testing.T) {
	tests := map[float64]int{
		0:    0,
		1:    2,
		500:  2,
		501:  5,
		2000: 10,
	}
	for duration, expected := range tests {
		e := NewMiniBoss(0, duration, 5)
		if e.RequiredHits() != expected || e.PartCount() != expected {
			t.Log("duration", duration)
			t.Log("out     ", e.RequiredHits())
			t.Log("expected", expected)
			t.Fail()
		}
	}

	e := NewMiniBoss(1000, 2000, 5)
	for i := 1; i < e.PartCount(); i++ {
		if e.Part(i).StartTime != 1000+200*float64(i) {
			t.Error("tick", i, e.Part(i).StartTime)
		}
	}
	e.SetEndTime(2000)
	if e.PartCount() != 10 || e.Part(9).StartTime != 1900 {
		t.Error("ticks must be respaced, not resized", e.PartCount(), e.Part(9))
	}
}

func TestInstantKindsIgnoreEnd(t *testing.T) {
	e := NewMinion(100, LaneAir)
	e.SetEndTime(500)
	if e.Duration() != 0 || e.EndTime() != 100 {
		t.Error("minion gained a duration")
	}
}

func TestActionLanes(t *testing.T) {
	tests := map[Action]Lane{
		ActionGroundPrimary:    LaneGround,
		ActionGroundQuaternary: LaneGround,
		ActionAirPrimary:       LaneAir,
		ActionAirQuaternary:    LaneAir,
	}
	for a, expected := range tests {
		if l, ok := a.Lane(); !ok || l != expected {
			t.Error(a, "maps to", l, ok)
		}
	}
	if _, ok := ActionFever.Lane(); ok {
		t.Error("fever has no lane")
	}
	for _, l := range Lanes {
		p, _ := PrimaryAction(l).Lane()
		s, _ := SecondaryAction(l).Lane()
		if p != l || s != l || PrimaryAction(l) == SecondaryAction(l) {
			t.Error("automation slots for", l)
		}
	}
}

func TestChartCounts(t *testing.T) {
	c := NewChart([]*Event{
		NewMinion(300, LaneAir),
		NewSawblade(100, LaneGround),
		NewNoteSheet(200, 400, LaneGround),
		NewMiniBoss(500, 1000, 5),
		NewMinion(100, LaneAir),
	}, DefaultDifficulty)
	if c.Events[0].Kind() != KindSawblade || c.Events[1].Kind() != KindMinion {
		t.Error("sort must be stable for equal start times")
	}
	if c.HazardCount != 1 || c.HoldCount != 1 || c.BossCount != 1 || c.NoteCount != 2 {
		t.Error("counts", c.NoteCount, c.HoldCount, c.HazardCount, c.BossCount)
	}
	if c.EndTime() != 1500 {
		t.Error("end time", c.EndTime())
	}
}
