package judge

// Progress this close to full counts as full, so accumulated rounding never
// leaves the meter one judgement short.
const feverEpsilon = 1e-6

type Period struct {
	Start, End float64
}

// FeverState is a copy of the meter as seen at one point of the timeline.
type FeverState struct {
	Progress float64
	Active   bool
	Periods  []Period
}

type Fever struct {
	duration float64
	fill     float64
	progress float64
	periods  []Period
}

func NewFever(duration, fill float64) *Fever {
	return &Fever{duration: duration, fill: fill}
}

// Active reports whether t falls inside the latest activation.
func (f *Fever) Active(t float64) bool {
	n := len(f.periods)
	return n > 0 && t >= f.periods[n-1].Start && t < f.periods[n-1].End
}

// Progress drains from 1 to 0 across an activation.
func (f *Fever) Progress(t float64) float64 {
	if f.Active(t) {
		p := f.periods[len(f.periods)-1]
		return 1 - (t-p.Start)/(p.End-p.Start)
	}
	return f.progress
}

func (f *Fever) State(t float64) FeverState {
	return FeverState{
		Progress: f.Progress(t),
		Active:   f.Active(t),
		Periods:  append([]Period(nil), f.periods...),
	}
}

func (f *Fever) add(t, numeric, max float64) {
	if f.Active(t) || max <= 0 || f.fill <= 0 {
		return
	}
	f.progress += numeric / max / f.fill
	if f.progress >= 1-feverEpsilon {
		f.progress = 1
	}
}

func (f *Fever) canActivate(t float64) bool {
	return f.progress == 1 && !f.Active(t)
}

func (f *Fever) activate(t float64) {
	f.periods = append(f.periods, Period{Start: t, End: t + f.duration})
	f.progress = 0
}

func (f *Fever) dropLast() {
	if len(f.periods) > 0 {
		f.periods = f.periods[:len(f.periods)-1]
	}
}
