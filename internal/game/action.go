package game

// Action identifies a discrete input. The numeric value is the bit index
// used by the replay frame encoding, so the order must not change.
type Action uint8

const (
	ActionGroundPrimary Action = iota
	ActionGroundSecondary
	ActionGroundTertiary
	ActionGroundQuaternary
	ActionAirPrimary
	ActionAirSecondary
	ActionAirTertiary
	ActionAirQuaternary
	ActionFever

	ActionCount = int(ActionFever) + 1
)

// Lane maps an action to its lane. The fever action has no lane.
func (a Action) Lane() (Lane, bool) {
	switch {
	case a <= ActionGroundQuaternary:
		return LaneGround, true
	case a <= ActionAirQuaternary:
		return LaneAir, true
	}
	return LaneGround, false
}

// PrimaryAction and SecondaryAction are the two slots used by automation.
func PrimaryAction(l Lane) Action {
	if l == LaneAir {
		return ActionAirPrimary
	}
	return ActionGroundPrimary
}

func SecondaryAction(l Lane) Action {
	if l == LaneAir {
		return ActionAirSecondary
	}
	return ActionGroundSecondary
}
