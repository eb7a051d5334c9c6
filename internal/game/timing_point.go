package game

type TimingPoint struct {
	Time       float64 // ms
	BeatLength float64 // ms per beat for uninherited points
	Multiplier float64 // slider velocity for inherited points
	Inherited  bool
	Kiai       bool
}
