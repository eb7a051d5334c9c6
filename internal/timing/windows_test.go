package timing

import (
	"testing"

	"git.lost.host/meutraa/rush/internal/game"
)

var rangeTests = map[float64]float64{
	0:   200,
	2.5: 175,
	5:   150,
	7.5: 125,
	10:  100,
}

func TestDifficultyRange(t *testing.T) {
	r := Range{200, 150, 100}
	for od, expected := range rangeTests {
		if out := DifficultyRange(od, r); out != expected {
			t.Log("od      ", od)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

var resultTests = map[float64]game.Outcome{
	0:    game.OutcomePerfect,
	35:   game.OutcomePerfect,
	-35:  game.OutcomePerfect,
	36:   game.OutcomeGreat,
	-50:  game.OutcomeGreat,
	80:   game.OutcomeGood,
	-100: game.OutcomeGood,
	120:  game.OutcomeMiss,
	-150: game.OutcomeMiss,
	151:  game.OutcomeNone,
	-400: game.OutcomeNone,
}

func TestResultFor(t *testing.T) {
	w := NewWindows(5)
	for offset, expected := range resultTests {
		if out := w.ResultFor(offset); out != expected {
			t.Errorf("offset %v: got %v, expected %v", offset, out, expected)
		}
	}
}

func TestWindowMonotonicity(t *testing.T) {
	severity := []game.Outcome{game.OutcomePerfect, game.OutcomeGreat, game.OutcomeGood, game.OutcomeMiss}
	for od := 0.0; od <= 10; od += 0.5 {
		w := NewWindows(od)
		for i := 1; i < len(severity); i++ {
			if w.WindowFor(severity[i]) < w.WindowFor(severity[i-1]) {
				t.Errorf("od %v: %v window narrower than %v", od, severity[i], severity[i-1])
			}
		}
	}
}

func TestCanBeHitConsistency(t *testing.T) {
	for od := 0.0; od <= 10; od += 2.5 {
		w := NewWindows(od)
		miss := w.WindowFor(game.OutcomeMiss)
		for offset := -miss; offset <= miss; offset += 1 {
			if !w.CanBeHit(offset) {
				t.Fatalf("od %v offset %v: inside miss window but cannot be hit", od, offset)
			}
			if w.ResultFor(offset) == game.OutcomeNone {
				t.Fatalf("od %v offset %v: can be hit but no outcome", od, offset)
			}
		}
		if w.CanBeHit(miss + 1) {
			t.Errorf("od %v: late offset still hittable", od)
		}
	}
}

func TestReleaseLenience(t *testing.T) {
	w := NewWindows(5).WithLenience(2)
	if out := w.ReleaseResultFor(70); out != game.OutcomePerfect {
		t.Errorf("release at 70ms: got %v", out)
	}
	if out := w.ResultFor(70); out != game.OutcomeGood {
		t.Errorf("press at 70ms: got %v", out)
	}
	if !w.CanBeReleased(250) || w.CanBeReleased(301) {
		t.Error("release bound not scaled by lenience")
	}
}

func TestAsymmetric(t *testing.T) {
	w, err := New(1.5,
		Window{Outcome: game.OutcomePerfect, Early: 10, Late: 30},
		Window{Outcome: game.OutcomeMiss, Early: 50, Late: 100},
	)
	if nil != err {
		t.Fatal(err)
	}
	if w.ResultFor(-20) != game.OutcomeMiss || w.ResultFor(20) != game.OutcomePerfect {
		t.Error("asymmetric lookup")
	}
	if w.WindowFor(game.OutcomePerfect) != 30 {
		t.Error("window for perfect should be the wider side")
	}

	_, err = New(1.5,
		Window{Outcome: game.OutcomePerfect, Early: 60, Late: 60},
		Window{Outcome: game.OutcomeMiss, Early: 50, Late: 100},
	)
	if err != ErrWindowOrder {
		t.Error("expected ErrWindowOrder, got", err)
	}
}

func TestHazardOutcome(t *testing.T) {
	if HazardOutcome(true) != game.OutcomeMiss || HazardOutcome(false) != game.OutcomePerfect {
		t.Fail()
	}
}

var result game.Outcome

func BenchmarkResultFor(b *testing.B) {
	w := NewWindows(7)
	var o game.Outcome
	for n := 0; n < b.N; n++ {
		o = w.ResultFor(float64(n%300 - 150))
	}
	result = o
}
