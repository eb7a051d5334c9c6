package score

import (
	"testing"

	"git.lost.host/meutraa/rush/internal/convert"
	"git.lost.host/meutraa/rush/internal/game"
	"git.lost.host/meutraa/rush/internal/judge"
	"git.lost.host/meutraa/rush/internal/parser"
	"git.lost.host/meutraa/rush/internal/replay"
	"git.lost.host/meutraa/rush/internal/testdata"
)

func sampleChart(tb testing.TB) *game.Chart {
	tb.Helper()
	b, err := parser.Decode(testdata.Beatmap())
	if nil != err {
		tb.Fatal("unable to parse chart", err)
	}
	chart, err := convert.NewConverter(convert.DefaultConfig()).Convert(b.Events, b.Difficulty)
	if nil != err {
		tb.Fatal("unable to convert chart", err)
	}
	chart.Sum = b.Sum
	return chart
}

func TestAutoReplayClearsChart(t *testing.T) {
	chart := sampleChart(t)
	frames := replay.Generate(chart, replay.DefaultConfig())
	s := Summarize(Apply(chart, frames, judge.DefaultConfig()))
	if s.Count(game.OutcomeMiss) != 0 || s.Judged != s.Total || s.Health != 1 || s.Failed {
		t.Log("misses  ", s.Count(game.OutcomeMiss))
		t.Log("judged  ", s.Judged, "of", s.Total)
		t.Log("health  ", s.Health)
		t.Fail()
	}
	if s.MaxCombo == 0 || s.TotalError != 0 {
		t.Error("max combo", s.MaxCombo, "error", s.TotalError)
	}
}

func TestAutoReplayAfterMiniBoss(t *testing.T) {
	// The hold ends as the boss starts, and punches near the end of the
	// boss come within reach of the notes that follow it in both lanes.
	chart := game.NewChart([]*game.Event{
		game.NewNoteSheet(400, 1000, game.LaneGround),
		game.NewMiniBoss(1000, 1000, 5),
		game.NewMinion(2050, game.LaneAir),
		game.NewMinion(2120, game.LaneGround),
		game.NewDualHit(2400),
	}, game.DefaultDifficulty)
	frames := replay.Generate(chart, replay.DefaultConfig())
	p, end := Apply(chart, frames, judge.DefaultConfig())
	s := Summarize(p, end)
	if s.Count(game.OutcomeMiss) != 0 || s.Count(game.OutcomeMeh) != 0 || s.Judged != s.Total {
		for _, r := range p.Results() {
			t.Log(r.Time, r.Target.Kind, r.Target.Time, r.Outcome)
		}
		t.Fail()
	}
	for _, r := range p.Results() {
		if r.Target.Kind == judge.KindHit && r.Outcome != game.OutcomePerfect {
			t.Error("note judged by a boss punch", r.Time, r.Target.Time, r.Outcome)
		}
	}
}

// generated builds a long chart mixing streams, sliders with repeats and
// spinners followed closely by circles.
func generated(n int) []game.SourceEvent {
	gaps := []float64{60, 80, 95, 110, 130, 200, 400, 75, 150}
	events := make([]game.SourceEvent, 0, n)
	t := 1000.0
	for i := 0; i < n; i++ {
		ev := game.SourceEvent{
			StartTime: t,
			NewCombo:  i%8 == 0,
			Kiai:      (i/50)%3 == 1,
			Position:  &game.Vec2{X: float64((i * 37) % 512), Y: float64((i * 53) % 384)},
			Samples:   []string{"hitnormal"},
		}
		switch {
		case i%97 == 0:
			ev.Duration = 1500
			ev.Position = nil
		case i%11 == 0:
			ev.Duration = 300 + float64((i*13)%2500)
			ev.HasPath = true
			ev.SpanCount = 1 + i%5
		case i%13 == 0:
			ev.Duration = 120
			ev.HasPath = true
		}
		events = append(events, ev)
		t = ev.EndTime() + gaps[i%len(gaps)]
	}
	return events
}

func TestAutoReplayClearsGeneratedChart(t *testing.T) {
	busy := convert.DefaultConfig()
	busy.SuggestionProbability = 0.5
	busy.DoubleHitProbability = 0.5
	busy.HazardProbability = 0.5
	busy.MirrorHoldProbability = 0.5
	busy.MinHazardInterval = 100
	busy.MinDoubleHitInterval = 100

	tests := map[string]convert.Config{
		"default": convert.DefaultConfig(),
		"busy":    busy,
	}
	for name, cfg := range tests {
		chart, err := convert.NewConverter(cfg).Convert(generated(3000), game.DefaultDifficulty)
		if nil != err {
			t.Fatal(err)
		}
		p, end := Apply(chart, replay.Generate(chart, replay.DefaultConfig()), judge.DefaultConfig())
		s := Summarize(p, end)
		if s.Count(game.OutcomeMiss) != 0 || s.Count(game.OutcomeMeh) != 0 || s.Judged != s.Total {
			t.Log(name, "judged", s.Judged, "of", s.Total, "miss", s.Count(game.OutcomeMiss), "meh", s.Count(game.OutcomeMeh))
			for _, r := range p.Results() {
				if r.Outcome == game.OutcomeMiss {
					t.Log("first miss", r.Time, r.Target.Kind, r.Target.Time)
					break
				}
			}
			t.Fail()
		}
	}
}

func TestEmptyReplay(t *testing.T) {
	chart := sampleChart(t)
	s := Summarize(Apply(chart, nil, judge.DefaultConfig()))
	if s.Judged != s.Total || s.MaxCombo != 0 {
		t.Error("judged", s.Judged, "of", s.Total, "combo", s.MaxCombo)
	}
	if s.Count(game.OutcomePerfect) != int(chart.HazardCount) {
		t.Error("only avoided hazards should be perfect", s.Count(game.OutcomePerfect), chart.HazardCount)
	}
}

func TestReplayThroughBlob(t *testing.T) {
	chart := sampleChart(t)
	cfg := replay.DefaultConfig()
	cfg.AutoFever = true
	frames := replay.Generate(chart, cfg)
	restored, err := replay.UnmarshalFrames(replay.MarshalFrames(frames))
	if nil != err {
		t.Fatal(err)
	}
	a := Summarize(Apply(chart, frames, judge.DefaultConfig()))
	b := Summarize(Apply(chart, restored, judge.DefaultConfig()))
	if a != b {
		t.Log("out     ", b)
		t.Log("expected", a)
		t.Fail()
	}
}

func TestHashChart(t *testing.T) {
	s := DefaultScorer{}
	chart := sampleChart(t)
	if s.hashChart(chart) != chart.Sum {
		t.Error("source sum should identify the chart")
	}

	one := game.NewChart([]*game.Event{game.NewMinion(100, game.LaneAir)}, game.DefaultDifficulty)
	same := game.NewChart([]*game.Event{game.NewMinion(100, game.LaneAir)}, game.DefaultDifficulty)
	moved := game.NewChart([]*game.Event{game.NewMinion(100, game.LaneGround)}, game.DefaultDifficulty)
	if s.hashChart(one) != s.hashChart(same) || s.hashChart(one) == s.hashChart(moved) {
		t.Error("event hash")
	}
}

func BenchmarkApply(b *testing.B) {
	chart := sampleChart(b)
	frames := replay.Generate(chart, replay.DefaultConfig())
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Apply(chart, frames, judge.DefaultConfig())
	}
}
