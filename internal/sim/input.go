package sim

import "github.com/tomz197/skyraid/internal/physics"

// Input is the normalized, level-triggered input snapshot for one frame.
// PointerX and PointerY are in field coordinates; NaN means the pointer
// position is unknown.
type Input struct {
	MoveUp, MoveDown, MoveLeft, MoveRight bool

	Fire bool

	PointerActive    bool
	PointerX         float64
	PointerY         float64
	RestartRequested bool
}

// pointerFollow reports whether the pointer should drive the player.
func (in Input) pointerFollow() bool {
	return in.PointerActive && physics.IsFinite(in.PointerX, in.PointerY)
}

// firing reports whether a shot is requested. A held pointer auto-fires.
func (in Input) firing() bool {
	return in.Fire || in.PointerActive
}
