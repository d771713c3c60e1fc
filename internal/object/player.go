package object

import "github.com/tomz197/skyraid/internal/config"

// Player is the player-controlled ship. There is exactly one per game; it is
// repositioned on respawn, never destroyed.
type Player struct {
	Body

	Cooldown     float64 // Seconds until the next shot; may go negative
	Invulnerable float64 // Seconds of immunity left; <= 0 means vulnerable
	DoubleShot   float64 // Seconds of double-shot left, floored at 0
}

// NewPlayer creates a player ship with its top-left corner at (x, y).
func NewPlayer(x, y float64) *Player {
	return &Player{
		Body: Body{
			X: x,
			Y: y,
			W: config.PlayerWidth,
			H: config.PlayerHeight,
		},
	}
}

// IsInvulnerable returns true while the immunity window is open.
func (p *Player) IsInvulnerable() bool {
	return p.Invulnerable > 0
}

// HasDoubleShot returns true while the double-shot power-up is active.
func (p *Player) HasDoubleShot() bool {
	return p.DoubleShot > 0
}

// CanFire returns true once the shot cooldown has expired.
func (p *Player) CanFire() bool {
	return p.Cooldown <= 0
}
