package object

import "github.com/tomz197/skyraid/internal/config"

// PowerUpKind identifies the effect granted on pickup.
type PowerUpKind uint8

const (
	PowerUpDoubleShot PowerUpKind = iota
)

// String returns the display name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpDoubleShot:
		return "double-shot"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible that drifts down the field.
type PowerUp struct {
	Body
	VY   float64
	Kind PowerUpKind
}

// NewPowerUp creates a double-shot power-up with its top-left corner at (x, y).
func NewPowerUp(x, y float64) *PowerUp {
	return &PowerUp{
		Body: Body{
			X: x,
			Y: y,
			W: config.PowerUpSize,
			H: config.PowerUpSize,
		},
		VY:   config.PowerUpSpeed,
		Kind: PowerUpDoubleShot,
	}
}

// Move advances the power-up by dt seconds.
func (p *PowerUp) Move(dt float64) {
	p.Y += p.VY * dt
}

// Escaped returns true once the power-up has passed the bottom of the field.
func (p *PowerUp) Escaped(height float64) bool {
	return p.Y > height
}
