package game

// Lane is one of the two mutually exclusive input targets.
type Lane uint8

const (
	LaneAir Lane = iota
	LaneGround
)

var Lanes = [...]Lane{LaneAir, LaneGround}

func (l Lane) Opposite() Lane {
	if l == LaneAir {
		return LaneGround
	}
	return LaneAir
}

func (l Lane) String() string {
	if l == LaneAir {
		return "air"
	}
	return "ground"
}
