package replay

import "git.lost.host/meutraa/rush/internal/game"

// AutoFeverBit is the reserved flag bit that records whether auto-fever was
// on when the frame was recorded.
const AutoFeverBit = 31

const actionMask = uint32(1)<<game.ActionCount - 1

// Frame is the full set of actions held from Time until the next frame.
type Frame struct {
	Time      float64
	Held      []game.Action
	AutoFever bool
}

func NewFrame(t float64, flags uint32) Frame {
	held, autoFever := Decode(flags)
	return Frame{Time: t, Held: held, AutoFever: autoFever}
}

func (f Frame) Flags() uint32 {
	return Encode(f.Held, f.AutoFever)
}

// Encode packs held actions as one bit per action value.
func Encode(held []game.Action, autoFever bool) uint32 {
	var flags uint32
	for _, a := range held {
		if int(a) < game.ActionCount {
			flags |= 1 << a
		}
	}
	if autoFever {
		flags |= 1 << AutoFeverBit
	}
	return flags
}

// Decode unpacks flags into ascending actions. Bits that name no action are
// dropped.
func Decode(flags uint32) ([]game.Action, bool) {
	held := []game.Action{}
	for a := game.Action(0); int(a) < game.ActionCount; a++ {
		if flags&(1<<a) != 0 {
			held = append(held, a)
		}
	}
	return held, flags&(1<<AutoFeverBit) != 0
}

// Representable reports whether flags survive a decode and encode unchanged.
func Representable(flags uint32) bool {
	return flags&^(actionMask|1<<AutoFeverBit) == 0
}
