package theme

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/rush/internal/game"
)

func TestPlainOutcome(t *testing.T) {
	th := &DefaultTheme{Plain: true}
	for _, o := range game.Outcomes {
		s := th.RenderOutcome(o)
		if strings.TrimSpace(s) != o.String() || strings.Contains(s, "\033") {
			t.Logf("%q", s)
			t.Fail()
		}
	}
}

func TestPlainEvent(t *testing.T) {
	th := &DefaultTheme{Plain: true}
	tests := map[*game.Event][]string{
		game.NewMinion(1000, game.LaneAir):             {"1000", "minion", "air"},
		game.NewSawblade(1500, game.LaneGround):        {"1500", "sawblade", "ground"},
		game.NewDualHit(2000):                          {"2000", "dual hit", "both"},
		game.NewNoteSheet(2500, 3000, game.LaneGround): {"2500", "note sheet", "500ms"},
		game.NewMiniBoss(4000, 2000, 5):                {"4000", "mini boss", "x10"},
	}
	for e, want := range tests {
		s := th.RenderEvent(e)
		for _, w := range want {
			if !strings.Contains(s, w) {
				t.Logf("%q missing %q", s, w)
				t.Fail()
			}
		}
	}
}

func TestHeader(t *testing.T) {
	th := &DefaultTheme{Plain: true}
	if th.RenderHeader("Summary") != "Summary" {
		t.Fail()
	}
}
