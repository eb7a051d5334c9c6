package timing

import (
	"errors"
	"math"

	"git.lost.host/meutraa/rush/internal/game"
)

// DefaultReleaseLenience divides release offsets before lookup, making
// hold tails more forgiving than presses.
const DefaultReleaseLenience = 2.0

var ErrWindowOrder = errors.New("timing windows must widen as outcomes get worse")

type Window struct {
	Outcome game.Outcome
	Early   float64 // ms before the nominal time
	Late    float64 // ms after the nominal time
}

// Range is a window size at difficulty 0, 5 and 10.
type Range struct {
	Min, Mid, Max float64
}

var DefaultRanges = []struct {
	Outcome game.Outcome
	Range   Range
}{
	{game.OutcomePerfect, Range{50, 35, 20}},
	{game.OutcomeGreat, Range{80, 50, 30}},
	{game.OutcomeGood, Range{140, 100, 60}},
	{game.OutcomeMiss, Range{200, 150, 100}},
}

// DifficultyRange interpolates linearly between the three points of r.
func DifficultyRange(difficulty float64, r Range) float64 {
	if difficulty > 5 {
		return r.Mid + (r.Max-r.Mid)*(difficulty-5)/5
	}
	if difficulty < 5 {
		return r.Mid - (r.Mid-r.Min)*(5-difficulty)/5
	}
	return r.Mid
}

// Windows is an ordered table of windows, tightest first. The last entry
// is always the miss window.
type Windows struct {
	windows  []Window
	lenience float64
}

// NewWindows builds the symmetric default table for an overall difficulty.
func NewWindows(overallDifficulty float64) *Windows {
	ws := make([]Window, 0, len(DefaultRanges))
	for _, r := range DefaultRanges {
		ms := DifficultyRange(overallDifficulty, r.Range)
		ws = append(ws, Window{Outcome: r.Outcome, Early: ms, Late: ms})
	}
	return &Windows{windows: ws, lenience: DefaultReleaseLenience}
}

// New builds a table from explicit, possibly asymmetric windows.
func New(lenience float64, windows ...Window) (*Windows, error) {
	if len(windows) == 0 || windows[len(windows)-1].Outcome != game.OutcomeMiss {
		return nil, errors.New("timing windows must end with a miss window")
	}
	for i := 1; i < len(windows); i++ {
		if windows[i].Early < windows[i-1].Early || windows[i].Late < windows[i-1].Late {
			return nil, ErrWindowOrder
		}
	}
	if lenience <= 0 {
		lenience = DefaultReleaseLenience
	}
	return &Windows{windows: append([]Window(nil), windows...), lenience: lenience}, nil
}

func (w *Windows) WithLenience(lenience float64) *Windows {
	if lenience <= 0 {
		lenience = DefaultReleaseLenience
	}
	return &Windows{windows: w.windows, lenience: lenience}
}

// ResultFor returns the tightest outcome whose window contains offset
// (press time minus nominal time), or None when outside every window.
func (w *Windows) ResultFor(offset float64) game.Outcome {
	for _, win := range w.windows {
		if offset >= -win.Early && offset <= win.Late {
			return win.Outcome
		}
	}
	return game.OutcomeNone
}

// ReleaseResultFor evaluates a release, scaled by the lenience.
func (w *Windows) ReleaseResultFor(offset float64) game.Outcome {
	return w.ResultFor(offset / w.lenience)
}

// CanBeHit is true until offset passes the late bound of the miss window.
func (w *Windows) CanBeHit(offset float64) bool {
	return offset <= w.miss().Late
}

func (w *Windows) CanBeReleased(offset float64) bool {
	return w.CanBeHit(offset / w.lenience)
}

// WindowFor returns the wider side of the window for an outcome, or 0 when
// the table has no such tier.
func (w *Windows) WindowFor(o game.Outcome) float64 {
	for _, win := range w.windows {
		if win.Outcome == o {
			return math.Max(win.Early, win.Late)
		}
	}
	return 0
}

func (w *Windows) Lenience() float64 {
	return w.lenience
}

func (w *Windows) miss() Window {
	return w.windows[len(w.windows)-1]
}

// HazardOutcome is the inverted policy for events that must be avoided.
func HazardOutcome(collided bool) game.Outcome {
	if collided {
		return game.OutcomeMiss
	}
	return game.OutcomePerfect
}
